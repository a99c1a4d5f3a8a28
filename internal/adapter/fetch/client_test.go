package fetch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGet(t *testing.T) {
	t.Run("returns body on 200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("hello"))
		}))
		defer srv.Close()

		c := New(time.Second, 0, testLogger())
		body, err := c.Get(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "hello", body)
	})

	t.Run("retries transient server errors", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte("recovered"))
		}))
		defer srv.Close()

		c := New(time.Second, 3, testLogger())
		body, err := c.Get(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "recovered", body)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("404 is an error without retries", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := New(time.Second, 3, testLogger())
		_, err := c.Get(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 404")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("unreachable host is an error", func(t *testing.T) {
		c := New(200*time.Millisecond, 0, testLogger())
		_, err := c.Get(context.Background(), "http://127.0.0.1:1/nope")

		require.Error(t, err)
	})
}
