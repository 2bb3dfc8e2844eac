package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRecorder(t *testing.T) {
	rec, lg := NewLogRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lg.Debug("tick", "card_id", "c1")
		}()
	}
	wg.Wait()
	lg.Warn("master admin skipped", "username", "admin")

	records := rec.Records(t)
	require.Len(t, records, 9)

	got, ok := rec.Find(t, "master admin skipped")
	require.True(t, ok)
	assert.Equal(t, "WARN", got.Level())
	assert.Equal(t, "admin", got.String("username"))
	assert.Equal(t, "", got.String("missing"))

	_, ok = rec.Find(t, "never logged")
	assert.False(t, ok)
}

func TestMakeNoopLogger(t *testing.T) {
	lg := MakeNoopLogger()
	require.NotNil(t, lg)
	assert.NotPanics(t, func() { lg.Error("dropped", "error", "boom") })
}
