package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/apk-analysis/dexkit-go/internal/bridge"
	"github.com/apk-analysis/dexkit-go/internal/domain"
	"github.com/apk-analysis/dexkit-go/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SessionHandler 会话处理器
type SessionHandler struct {
	sessions service.SessionService
	logger   *logrus.Logger
}

// NewSessionHandler 创建会话处理器实例
func NewSessionHandler(sessions service.SessionService, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		logger:   logger,
	}
}

type loadArchiveRequest struct {
	Path         string `json:"path" binding:"required"`
	UnzipThreads int    `json:"unzip_threads"`
}

type threadCountRequest struct {
	Count int `json:"count" binding:"required,min=1"`
}

type exportRequest struct {
	Dir string `json:"dir"`
}

// sessionError 将会话层错误映射为 HTTP 状态码
func sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, bridge.ErrHandleClosed):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// CreateSession 创建会话
// POST /api/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	sess, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to create session")
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess.Info())
}

// ListSessions GET /api/sessions
func (h *SessionHandler) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": h.sessions.List()})
}

// GetSession GET /api/sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Info())
}

// DeleteSession 销毁会话
// DELETE /api/sessions/:id
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	if err := h.sessions.Close(c.Param("id")); err != nil {
		sessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// LoadArchive 加载归档，失败时返回 422 以及加载记录
// POST /api/sessions/:id/archives
func (h *SessionHandler) LoadArchive(c *gin.Context) {
	var req loadArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.sessions.LoadArchive(c.Request.Context(), c.Param("id"), req.Path, req.UnzipThreads, domain.LoadSourceAPI)
	if record == nil {
		sessionError(c, err)
		return
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  err.Error(),
			"record": record,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": record})
}

// SetThreadCount PUT /api/sessions/:id/threads
func (h *SessionHandler) SetThreadCount(c *gin.Context) {
	var req threadCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.sessions.SetThreadCount(c.Param("id"), req.Count); err != nil {
		sessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BuildCache POST /api/sessions/:id/cache
func (h *SessionHandler) BuildCache(c *gin.Context) {
	if err := h.sessions.BuildFullCache(c.Param("id")); err != nil {
		sessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Export 导出已加载的 dex
// POST /api/sessions/:id/export
func (h *SessionHandler) Export(c *gin.Context) {
	var req exportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if err := h.sessions.ExportArchives(c.Param("id"), req.Dir); err != nil {
		h.logger.WithError(err).WithField("session_id", c.Param("id")).Warn("Failed to export dex files")
		sessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListArchives 加载历史
// GET /api/archives?page=1&page_size=20&status=failed
func (h *SessionHandler) ListArchives(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page <= 0 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	records, total, err := h.sessions.History(c.Request.Context(), page, pageSize, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list archive records"})
		return
	}
	if records == nil {
		records = []*domain.ArchiveRecord{}
	}
	c.JSON(http.StatusOK, gin.H{
		"records":   records,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// ArchiveStats 各加载状态的记录数
// GET /api/archives/stats
func (h *SessionHandler) ArchiveStats(c *gin.Context) {
	counts, err := h.sessions.HistoryStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count archive records"})
		return
	}
	var total int64
	for _, n := range counts {
		total += n
	}
	c.JSON(http.StatusOK, gin.H{
		"status_counts": counts,
		"total":         total,
	})
}
