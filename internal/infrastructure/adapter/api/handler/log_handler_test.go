package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/logsnack/logsnack/internal/domain/logger"
	"github.com/logsnack/logsnack/internal/domain/port/core"
	"github.com/logsnack/logsnack/internal/infrastructure/adapter/api/dto"
	"github.com/logsnack/logsnack/internal/infrastructure/adapter/sink"
	timeProvider "github.com/logsnack/logsnack/internal/infrastructure/adapter/time"
)

func setupHandler(threshold core.Level) (*gin.Engine, *logger.Logger, *sink.MemorySink) {
	gin.SetMode(gin.TestMode)

	tp := timeProvider.NewRealTimeProvider()
	memSink := sink.NewMemorySink(16, tp)
	logs := logger.New(threshold, memSink)

	h := NewLogHandler(logs, memSink)

	router := gin.New()
	router.POST("/log", h.Submit)
	router.GET("/logs", h.Recent)
	router.GET("/config/level", h.GetLevel)
	router.PUT("/config/level", h.SetLevel)

	return router, logs, memSink
}

func performJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitDispatchesThroughFacade(t *testing.T) {
	router, _, memSink := setupHandler(core.LevelDebug)

	w := performJSON(router, http.MethodPost, "/log", dto.LogRequest{
		Level:   "warn",
		Message: "remote warning",
	})

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 1, memSink.Len())
}

func TestSubmitBelowThresholdIsSuppressed(t *testing.T) {
	router, _, memSink := setupHandler(core.LevelError)

	w := performJSON(router, http.MethodPost, "/log", dto.LogRequest{
		Level:   "info",
		Message: "too quiet",
	})

	// Accepted by the API, suppressed by the facade.
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 0, memSink.Len())
}

func TestSubmitRejectsUnknownLevel(t *testing.T) {
	router, _, _ := setupHandler(core.LevelDebug)

	w := performJSON(router, http.MethodPost, "/log", dto.LogRequest{
		Level:   "verbose",
		Message: "nope",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4001, resp.Code)
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	router, logs, _ := setupHandler(core.LevelDebug)

	logs.Info("first")
	logs.Warn("second")

	w := performJSON(router, http.MethodGet, "/logs?limit=10", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EntriesResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	if assert.Equal(t, 2, resp.Count) {
		assert.Equal(t, "second", resp.Entries[0].Message)
		assert.Equal(t, "warn", resp.Entries[0].Level)
		assert.Equal(t, "first", resp.Entries[1].Message)
	}
}

func TestRecentRejectsInvalidLimit(t *testing.T) {
	router, _, _ := setupHandler(core.LevelDebug)

	w := performJSON(router, http.MethodGet, "/logs?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(router, http.MethodGet, "/logs?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLevelRoundTrip(t *testing.T) {
	router, logs, _ := setupHandler(core.LevelInfo)

	w := performJSON(router, http.MethodGet, "/config/level", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LevelResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "info", resp.Level)

	w = performJSON(router, http.MethodPut, "/config/level", dto.LevelRequest{Level: "error"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, core.LevelError, logs.Threshold())
}

func TestSetLevelRejectsUnknownLevel(t *testing.T) {
	router, logs, _ := setupHandler(core.LevelInfo)

	w := performJSON(router, http.MethodPut, "/config/level", dto.LevelRequest{Level: "loudest"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, core.LevelInfo, logs.Threshold())
}
