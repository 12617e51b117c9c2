package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	errs "github.com/logsnack/logsnack/internal/domain/error"
	"github.com/logsnack/logsnack/internal/domain/logger"
	"github.com/logsnack/logsnack/internal/domain/port/core"
	"github.com/logsnack/logsnack/internal/domain/port/persistence"
	"github.com/logsnack/logsnack/internal/infrastructure/adapter/api/dto"
)

// defaultRecentLimit caps GET /logs when no limit is given
const defaultRecentLimit = 50

// LogHandler handles log ingestion and query HTTP requests
type LogHandler struct {
	logs    *logger.Logger
	entries persistence.EntryRepository
}

// NewLogHandler creates a new log handler instance
func NewLogHandler(logs *logger.Logger, entries persistence.EntryRepository) *LogHandler {
	return &LogHandler{
		logs:    logs,
		entries: entries,
	}
}

// Submit handles the POST /log endpoint: a remote process dispatches one
// message through the facade.
func (h *LogHandler) Submit(c *gin.Context) {
	var req dto.LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	level, err := core.ParseLevel(req.Level)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.ErrorCode(err),
			Message: "Unknown log level: " + req.Level,
		})
		return
	}

	h.logs.Log(level, req.Message)
	c.Status(http.StatusAccepted)
}

// Recent handles the GET /logs endpoint
func (h *LogHandler) Recent(c *gin.Context) {
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    errs.ErrorCode(errs.ErrInvalidLimit),
				Message: "Limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	entries, err := h.entries.Recent(c.Request.Context(), limit)
	if err != nil {
		h.logs.Error("failed to query recent entries: " + err.Error())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    errs.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	resp := dto.EntriesResponse{
		Entries: make([]dto.EntryResponse, 0, len(entries)),
		Count:   len(entries),
	}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, dto.EntryResponse{
			Time:    entry.Time,
			Level:   entry.Level.String(),
			Message: entry.Message,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// GetLevel handles the GET /config/level endpoint
func (h *LogHandler) GetLevel(c *gin.Context) {
	c.JSON(http.StatusOK, dto.LevelResponse{
		Level: h.logs.Threshold().String(),
	})
}

// SetLevel handles the PUT /config/level endpoint. The facade republishes
// its snapshot, so replacing the threshold is safe even after bootstrap.
func (h *LogHandler) SetLevel(c *gin.Context) {
	var req dto.LevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	level, err := core.ParseLevel(req.Level)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.ErrorCode(err),
			Message: "Unknown log level: " + req.Level,
		})
		return
	}

	h.logs.SetThreshold(level)
	h.logs.Info("log threshold set to " + level.String())
	c.JSON(http.StatusOK, dto.LevelResponse{Level: level.String()})
}
