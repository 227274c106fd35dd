package metrics

import (
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MemoryStats 内存统计
type MemoryStats struct {
	Alloc       uint64 `json:"alloc"`       // 当前分配的内存 (字节)
	TotalAlloc  uint64 `json:"total_alloc"` // 累计分配的内存
	Sys         uint64 `json:"sys"`         // 从系统获取的内存
	NumGC       uint32 `json:"num_gc"`      // GC 次数
	Goroutines  int    `json:"goroutines"`  // Goroutine 数量
	AllocMB     uint64 `json:"alloc_mb"`    // 当前分配 (MB)
	SysMB       uint64 `json:"sys_mb"`      // 系统内存 (MB)
	Outstanding int64  `json:"outstanding"` // 未释放的结果缓冲区 (字节)
}

// MemoryMonitor 内存监控器
type MemoryMonitor struct {
	logger      *logrus.Logger
	stats       MemoryStats
	mutex       sync.RWMutex
	stopChan    chan struct{}
	stopOnce    sync.Once
	interval    time.Duration
	outstanding func() int64
	sink        func(MemoryStats)
	warnMB      uint64
}

// NewMemoryMonitor 创建内存监控器。outstanding 返回分配器中未释放的字节数，可为 nil
func NewMemoryMonitor(logger *logrus.Logger, interval time.Duration, outstanding func() int64) *MemoryMonitor {
	return &MemoryMonitor{
		logger:      logger,
		stopChan:    make(chan struct{}),
		interval:    interval,
		outstanding: outstanding,
		warnMB:      1536,
	}
}

// Export 每次采样后把统计写入 Prometheus
func (m *MemoryMonitor) Export(pm *PrometheusMetrics) {
	m.sink = pm.UpdateMemoryStats
}

// Start 启动内存监控
func (m *MemoryMonitor) Start() {
	m.Sample()
	go m.monitor()
}

// Stop 停止内存监控，可重复调用
func (m *MemoryMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

func (m *MemoryMonitor) monitor() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopChan:
			return
		case <-ticker.C:
			m.logStats(m.Sample())
		}
	}
}

// Sample 立即采样一次并返回结果
func (m *MemoryMonitor) Sample() MemoryStats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	stats := MemoryStats{
		Alloc:      ms.Alloc,
		TotalAlloc: ms.TotalAlloc,
		Sys:        ms.Sys,
		NumGC:      ms.NumGC,
		Goroutines: runtime.NumGoroutine(),
		AllocMB:    ms.Alloc / 1024 / 1024,
		SysMB:      ms.Sys / 1024 / 1024,
	}
	if m.outstanding != nil {
		stats.Outstanding = m.outstanding()
	}

	m.mutex.Lock()
	m.stats = stats
	m.mutex.Unlock()

	if m.sink != nil {
		m.sink(stats)
	}
	return stats
}

func (m *MemoryMonitor) logStats(stats MemoryStats) {
	m.logger.WithFields(logrus.Fields{
		"alloc_mb":    stats.AllocMB,
		"sys_mb":      stats.SysMB,
		"num_gc":      stats.NumGC,
		"goroutines":  stats.Goroutines,
		"outstanding": stats.Outstanding,
	}).Debug("Memory stats")

	if stats.AllocMB > m.warnMB {
		m.logger.WithFields(logrus.Fields{
			"alloc_mb": stats.AllocMB,
			"sys_mb":   stats.SysMB,
		}).Warn("High memory usage detected")
	}
}

// GetStats 获取最近一次采样
func (m *MemoryMonitor) GetStats() MemoryStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.stats
}

// MetricsEndpoint 返回最近一次采样的 JSON
func (m *MemoryMonitor) MetricsEndpoint() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"memory": m.GetStats(),
		})
	}
}
