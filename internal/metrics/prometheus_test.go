package metrics

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestMetrics 每个测试使用独立的 Registry，避免重复注册
func setupTestMetrics(t *testing.T) *PrometheusMetrics {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewPrometheusMetrics(logger, "test", prometheus.NewRegistry())
}

// TestPrometheusMetrics_Initialization 测试指标初始化
func TestPrometheusMetrics_Initialization(t *testing.T) {
	pm := setupTestMetrics(t)

	assert.NotNil(t, pm.httpRequestsTotal)
	assert.NotNil(t, pm.operationsTotal)
	assert.NotNil(t, pm.outstandingBytes)
	assert.NotNil(t, pm.retryAttemptsTotal)
}

// TestHTTPMiddleware 测试 HTTP 中间件按路由模板计数
func TestHTTPMiddleware(t *testing.T) {
	pm := setupTestMetrics(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(pm.HTTPMiddleware())
	router.GET("/api/sessions/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sessions/"+id, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, 2.0, testutil.ToFloat64(pm.httpRequestsTotal.WithLabelValues("GET", "/api/sessions/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.httpRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

// TestObserve 测试句柄操作计数
func TestObserve(t *testing.T) {
	pm := setupTestMetrics(t)

	pm.Observe("find_class", "found", 512, 3*time.Millisecond)
	pm.Observe("find_class", "not_found", 0, time.Millisecond)
	pm.Observe("find_class", "found", 128, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(pm.operationsTotal.WithLabelValues("find_class", "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.operationsTotal.WithLabelValues("find_class", "not_found")))
	assert.Equal(t, 1, testutil.CollectAndCount(pm.resultBytes))
}

// TestSessionsAndLoads 测试会话与加载计数
func TestSessionsAndLoads(t *testing.T) {
	pm := setupTestMetrics(t)

	pm.SessionOpened()
	pm.SessionOpened()
	pm.SessionClosed()
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.sessionsActive))

	pm.RecordArchiveLoad("api", nil)
	pm.RecordArchiveLoad("watcher", errors.New("bad dex"))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.archiveLoadsTotal.WithLabelValues("api", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.archiveLoadsTotal.WithLabelValues("watcher", "failure")))
}

// TestUpdateWorkerPoolStats 测试 Worker Pool 统计
func TestUpdateWorkerPoolStats(t *testing.T) {
	pm := setupTestMetrics(t)

	pm.UpdateWorkerPoolStats(4, 2, 7)

	assert.Equal(t, 4.0, testutil.ToFloat64(pm.workerPoolSize))
	assert.Equal(t, 2.0, testutil.ToFloat64(pm.workerPoolActive))
	assert.Equal(t, 7.0, testutil.ToFloat64(pm.workerPoolQueueSize))
}

// TestRetryMetrics 测试重试指标
func TestRetryMetrics(t *testing.T) {
	pm := setupTestMetrics(t)

	pm.RecordRetryAttempt("load_archive", 1)
	pm.RecordRetryAttempt("load_archive", 2)
	pm.RecordRetrySuccess("load_archive")

	assert.Equal(t, 2, testutil.CollectAndCount(pm.retryAttemptsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.retrySuccessTotal.WithLabelValues("load_archive")))
}

// TestHandler 测试 /metrics 输出
func TestHandler(t *testing.T) {
	pm := setupTestMetrics(t)
	pm.SetOutstandingBytes(2048)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/metrics/prometheus", pm.Handler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics/prometheus", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "test_bridge_outstanding_bytes 2048"))
}

// TestMemoryMonitor 测试采样与导出
func TestMemoryMonitor(t *testing.T) {
	pm := setupTestMetrics(t)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mon := NewMemoryMonitor(logger, time.Hour, func() int64 { return 4096 })
	mon.Export(pm)
	stats := mon.Sample()

	assert.Equal(t, int64(4096), stats.Outstanding)
	assert.Greater(t, stats.Goroutines, 0)
	assert.Equal(t, stats, mon.GetStats())
	assert.Equal(t, 4096.0, testutil.ToFloat64(pm.outstandingBytes))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/metrics", mon.MetricsEndpoint())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	var body struct {
		Memory MemoryStats `json:"memory"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(4096), body.Memory.Outstanding)

	mon.Start()
	mon.Stop()
	mon.Stop()
}
