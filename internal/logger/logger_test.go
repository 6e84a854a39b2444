package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerTo(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	require.NoError(t, InitLoggerTo(&buf, ""))

	assert.Equal(t, zerolog.InfoLevel, log.Logger.GetLevel())

	log.Debug().Msg("hidden")
	log.Info().Msg("test message")

	logStr := buf.String()
	assert.Contains(t, logStr, "time")
	assert.Contains(t, logStr, "test message")
	assert.NotContains(t, logStr, "hidden")
}

func TestInitLoggerLevel(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	require.NoError(t, InitLoggerTo(&buf, "debug"))
	assert.Equal(t, zerolog.DebugLevel, log.Logger.GetLevel())

	assert.Error(t, InitLoggerTo(&buf, "loud"))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer

	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	log.Logger = zerolog.New(&buf).Level(zerolog.InfoLevel)

	req := httptest.NewRequest(http.MethodPost, "/api/share/buttons/abc/click", nil)
	rr := httptest.NewRecorder()

	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not found"))
	}))

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	logs := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, logs, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(logs[0], &entry))

	assert.Equal(t, "Request processed", entry["message"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/share/buttons/abc/click", entry["uri"])
	assert.Equal(t, float64(404), entry["status"])
	assert.Equal(t, float64(9), entry["size"])
	assert.Contains(t, entry, "duration")
}

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := NewResponseWriter(rr)

	assert.Equal(t, http.StatusOK, rw.Status())
	assert.Equal(t, 0, rw.Size())

	rw.WriteHeader(http.StatusCreated)
	assert.Equal(t, http.StatusCreated, rw.Status())

	n, err := rw.Write([]byte("bit.ly"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	_, err = rw.Write([]byte("/abc"))
	require.NoError(t, err)
	assert.Equal(t, 10, rw.Size())
	assert.Equal(t, "bit.ly/abc", rr.Body.String())
}
