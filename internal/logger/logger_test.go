package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, 0, "json")

	l.Info("card created", "card_id", "abc")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "card created", rec["msg"])
	assert.Equal(t, "abc", rec["card_id"])
}

func TestNewWithWriter_TextAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, 4, "text")

	l.Info("dropped")
	assert.Empty(t, buf.String())

	l.Warn("kept")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, 0, "text").With("component", "transfer")

	l.Info("done")
	assert.Contains(t, buf.String(), "component=transfer")
}
