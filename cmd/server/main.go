package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apk-analysis/dexkit-go/internal/api"
	"github.com/apk-analysis/dexkit-go/internal/config"
	"github.com/apk-analysis/dexkit-go/internal/domain"
	"github.com/apk-analysis/dexkit-go/internal/metrics"
	"github.com/apk-analysis/dexkit-go/internal/repository"
	"github.com/apk-analysis/dexkit-go/internal/service"
	"github.com/apk-analysis/dexkit-go/internal/watcher"
	"github.com/apk-analysis/dexkit-go/internal/worker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// 1. 打印版本信息
	fmt.Printf("DexKit Server\n")
	fmt.Printf("Version: %s\n", api.Version)
	fmt.Printf("Build Time: %s\n", BuildTime)
	fmt.Printf("Git Commit: %s\n\n", GitCommit)

	// 2. 加载配置
	configPath := "./configs/config.yaml"
	if len(os.Args) > 1 && os.Args[1] == "--config" && len(os.Args) > 2 {
		configPath = os.Args[2]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 3. 初始化日志
	logger := config.InitLogger(&cfg.Log)
	logger.Infof("Starting DexKit server %s", api.Version)
	logger.Infof("Config loaded from: %s", configPath)

	// 4. 初始化数据库
	db, err := repository.InitDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatalf("Failed to init database: %v", err)
	}
	logger.WithField("type", cfg.Database.Type).Info("Database connected successfully")
	archiveRepo := repository.NewArchiveRepository(db)

	// 5. 初始化 Prometheus 指标
	promMetrics := metrics.NewPrometheusMetrics(logger, cfg.Metrics.Namespace, prometheus.DefaultRegisterer)

	// 6. 会话服务，所有会话共享一个结果分配器
	sessions := service.NewSessionService(cfg.Engine, archiveRepo, promMetrics, logger)

	// 7. 启动内存监控
	memMonitor := metrics.NewMemoryMonitor(logger, 30*time.Second, sessions.Allocator().Outstanding)
	memMonitor.Export(promMetrics)
	memMonitor.Start()
	defer memMonitor.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 8. Worker Pool 与目录监听
	workerPool := worker.NewPool(cfg.Worker, worker.SessionLoader(sessions), promMetrics, logger)
	workerPool.Start(ctx)

	var fileWatcher *watcher.FileWatcher
	if cfg.Watcher.Enabled {
		fileWatcher, err = watcher.NewFileWatcher(cfg.Watcher, createFileHandler(workerPool, logger), logger)
		if err != nil {
			logger.Fatalf("Failed to create file watcher: %v", err)
		}
		if err := fileWatcher.Start(ctx, cfg.Watcher.ScanExisting); err != nil {
			logger.Fatalf("Failed to start file watcher: %v", err)
		}
		logger.Infof("File watcher started for directory: %s", cfg.Watcher.Dir)
	}

	// 9. 定期清理过期的加载记录
	if cfg.Database.RetentionDays > 0 {
		go purgeHistory(ctx, sessions, cfg.Database.RetentionDays, logger)
	}

	// 10. 设置 HTTP Server
	router := api.SetupRouter(cfg, logger, sessions, memMonitor, promMetrics)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Infof("HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server error: %v", err)
		}
	}()

	// 11. 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")

	// 12. 优雅关闭 (30秒超时)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("HTTP server shutdown error: %v", err)
	}
	if fileWatcher != nil {
		if err := fileWatcher.Stop(); err != nil {
			logger.WithError(err).Warn("File watcher stop error")
		}
	}
	cancel()
	workerPool.Stop()
	sessions.CloseAll()

	if outstanding := sessions.Allocator().Outstanding(); outstanding > 0 {
		logger.WithField("bytes", outstanding).Warn("Result buffers still outstanding at shutdown")
	}

	// 关闭数据库连接
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("Server stopped")
}

// createFileHandler 监听到的归档提交到 Worker Pool，由其加载到默认会话
func createFileHandler(pool *worker.Pool, logger *logrus.Logger) watcher.FileHandler {
	return func(ctx context.Context, filePath string) error {
		task := &worker.Task{
			Path:   filePath,
			Source: domain.LoadSourceWatcher,
		}
		if err := pool.Submit(task); err != nil {
			return fmt.Errorf("submit %s: %w", filePath, err)
		}
		logger.WithFields(logrus.Fields{
			"task_id": task.ID,
			"path":    filePath,
		}).Info("Archive submitted to worker pool")
		return nil
	}
}

// purgeHistory 每天清理一次超过保留期的加载记录
func purgeHistory(ctx context.Context, sessions service.SessionService, retentionDays int, logger *logrus.Logger) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		before := time.Now().UTC().AddDate(0, 0, -retentionDays)
		if _, err := sessions.PurgeHistory(ctx, before); err != nil {
			logger.WithError(err).Warn("Failed to purge archive records")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
