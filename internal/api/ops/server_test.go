package ops

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/bankcards-server/internal/mocks"
	"github.com/dtroode/bankcards-server/internal/testutil"
)

func TestServer_StartStop(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	sec := mocks.NewSecurityLayer(t)
	sec.On("Listen", "tcp", ":0").Return(ln, nil)

	srv := NewServer(NewRouter(mocks.NewPinger(t), testutil.MakeNoopLogger()), ":0")
	assert.Equal(t, ":0", srv.Address())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(sec) }()

	var body []byte
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/livez")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ = io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK
	}, time.Second, 10*time.Millisecond)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	require.NoError(t, srv.Stop(context.Background()))
	assert.NoError(t, <-errCh)
}
