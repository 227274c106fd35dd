package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/apk-analysis/dexkit-go/internal/archive"
	"github.com/apk-analysis/dexkit-go/internal/bridge"
	"github.com/apk-analysis/dexkit-go/internal/config"
	"github.com/apk-analysis/dexkit-go/internal/dex"
	"github.com/apk-analysis/dexkit-go/internal/domain"
	"github.com/apk-analysis/dexkit-go/internal/retry"
	"github.com/apk-analysis/dexkit-go/internal/service"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrQueueFull   = errors.New("task queue is full")
	ErrPoolStopped = errors.New("worker pool stopped")
)

// Loader 加载一个归档并返回加载记录
type Loader func(ctx context.Context, path string, source domain.LoadSource) (*domain.ArchiveRecord, error)

// SessionLoader 把归档加载进默认会话
func SessionLoader(sessions service.SessionService) Loader {
	return func(ctx context.Context, path string, source domain.LoadSource) (*domain.ArchiveRecord, error) {
		sess, err := sessions.Default(ctx)
		if err != nil {
			return nil, err
		}
		return sessions.LoadArchive(ctx, sess.ID, path, 0, source)
	}
}

// Metrics 池状态与重试指标
type Metrics interface {
	retry.Observer
	UpdateWorkerPoolStats(size, active, queueSize int)
}

// Pool Worker 池
type Pool struct {
	workers  int
	taskChan chan *Task
	loader   Loader
	retryCfg retry.Config
	metrics  Metrics
	logger   *logrus.Logger

	active   atomic.Int32
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Task 加载任务
type Task struct {
	ID       string
	Path     string
	Source   domain.LoadSource
	resultCh chan error // 用于同步等待任务完成
}

// NewPool 创建 Worker 池。metrics 可为 nil
func NewPool(cfg config.WorkerConfig, loader Loader, metrics Metrics, logger *logrus.Logger) *Pool {
	workers := max(cfg.Concurrency, 1)
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 100
	}

	retryCfg := *retry.DefaultConfig()
	retryCfg.Operation = "load_archive"
	retryCfg.InitialInterval = 500 * time.Millisecond
	retryCfg.MaxInterval = 5 * time.Second
	retryCfg.Classify = IsRetryableLoadError
	retryCfg.Logger = logger
	if metrics != nil {
		retryCfg.Observer = metrics
	}

	return &Pool{
		workers:  workers,
		taskChan: make(chan *Task, queueSize),
		loader:   loader,
		retryCfg: retryCfg,
		metrics:  metrics,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// SetRetry 覆盖重试次数与初始间隔
func (p *Pool) SetRetry(attempts int, interval time.Duration) {
	p.retryCfg.MaxAttempts = attempts
	p.retryCfg.InitialInterval = interval
	p.retryCfg.MaxInterval = 10 * interval
}

// IsRetryableLoadError 格式错误与文件缺失不重试，截断的镜像可能仍在写入
func IsRetryableLoadError(err error) bool {
	switch {
	case errors.Is(err, dex.ErrInvalidMagic),
		errors.Is(err, dex.ErrBigEndian),
		errors.Is(err, archive.ErrUnsupported),
		errors.Is(err, archive.ErrInvalidDex),
		errors.Is(err, os.ErrNotExist),
		errors.Is(err, bridge.ErrHandleClosed),
		errors.Is(err, service.ErrSessionNotFound):
		return false
	}
	return retry.IsRetryable(err)
}

// Start 启动 Worker 池
func (p *Pool) Start(ctx context.Context) {
	p.logger.WithField("workers", p.workers).Info("Starting worker pool")

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	p.reportStats()
}

// worker Worker 协程
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			p.logger.WithField("worker_id", id).Debug("Worker shutting down")
			return
		case <-p.done:
			return
		case task := <-p.taskChan:
			p.run(ctx, id, task)
		}
	}
}

func (p *Pool) run(ctx context.Context, workerID int, task *Task) {
	p.active.Add(1)
	p.reportStats()

	var err error
	// 先更新计数再发送结果，等待方返回时任务已不计入 active
	defer func() {
		p.active.Add(-1)
		p.reportStats()
		if task.resultCh != nil {
			task.resultCh <- err
			close(task.resultCh)
		}
	}()

	log := p.logger.WithFields(logrus.Fields{
		"worker_id": workerID,
		"task_id":   task.ID,
		"path":      task.Path,
	})
	log.Info("Processing task")

	var record *domain.ArchiveRecord
	err = retry.Do(ctx, &p.retryCfg, func(ctx context.Context) error {
		var lerr error
		record, lerr = p.loader(ctx, task.Path, task.Source)
		return lerr
	})

	if err != nil {
		log.WithError(err).Error("Task execution failed")
	} else {
		fields := logrus.Fields{}
		if record != nil {
			fields["dex_added"] = record.DexAdded()
		}
		log.WithFields(fields).Info("Task completed successfully")
	}
}

func (p *Pool) enqueue(task *Task) {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Source == "" {
		task.Source = domain.LoadSourceWatcher
	}
}

// Submit 提交任务（异步，不等待结果）
func (p *Pool) Submit(task *Task) error {
	p.enqueue(task)
	select {
	case <-p.done:
		return ErrPoolStopped
	default:
	}

	select {
	case p.taskChan <- task:
		p.logger.WithField("task_id", task.ID).Debug("Task submitted to pool")
		p.reportStats()
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrQueueFull, task.Path)
	}
}

// SubmitAndWait 提交任务并等待完成
func (p *Pool) SubmitAndWait(ctx context.Context, task *Task) error {
	p.enqueue(task)
	task.resultCh = make(chan error, 1)

	select {
	case p.taskChan <- task:
		p.logger.WithField("task_id", task.ID).Debug("Task submitted to pool (sync)")
		p.reportStats()
	case <-p.done:
		return ErrPoolStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-task.resultCh:
		return err
	case <-p.done:
		return ErrPoolStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop 停止 Worker 池，队列中未开始的任务被丢弃。可重复调用
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.logger.Info("Stopping worker pool")
		close(p.done)
		p.wg.Wait()
		if n := len(p.taskChan); n > 0 {
			p.logger.WithField("dropped", n).Warn("Worker pool stopped with queued tasks")
		}
		p.logger.Info("Worker pool stopped")
	})
}

// GetQueueSize 获取队列中任务数
func (p *Pool) GetQueueSize() int {
	return len(p.taskChan)
}

// Active 正在执行的任务数
func (p *Pool) Active() int {
	return int(p.active.Load())
}

func (p *Pool) reportStats() {
	if p.metrics != nil {
		p.metrics.UpdateWorkerPoolStats(p.workers, p.Active(), len(p.taskChan))
	}
}
