package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diegoclair/slack-decision-bot/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	t.Run("passes through without panic", func(t *testing.T) {
		wrapped := handlers.Recover(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		recorder := httptest.NewRecorder()
		wrapped(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTeapot, recorder.Code)
	})

	t.Run("panic becomes a 500", func(t *testing.T) {
		wrapped := handlers.Recover(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		recorder := httptest.NewRecorder()
		wrapped(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusInternalServerError, recorder.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "internal server error", body["error"])
		assert.NotContains(t, recorder.Body.String(), "boom")
	})
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		handler := handlers.Health(func() error { return nil })

		recorder := httptest.NewRecorder()
		handler(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("degraded on ping failure", func(t *testing.T) {
		handler := handlers.Health(func() error { return errors.New("db down") })

		recorder := httptest.NewRecorder()
		handler(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "degraded", body["status"])
	})
}
