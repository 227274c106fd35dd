package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/apk-analysis/dexkit-go/internal/bridge"
	"github.com/apk-analysis/dexkit-go/internal/config"
	"github.com/apk-analysis/dexkit-go/internal/domain"
	"github.com/apk-analysis/dexkit-go/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

// Metrics 会话层上报的指标
type Metrics interface {
	bridge.Recorder
	SessionOpened()
	SessionClosed()
	RecordArchiveLoad(source string, err error)
}

type nopMetrics struct{}

func (nopMetrics) Observe(string, string, int, time.Duration) {}
func (nopMetrics) SessionOpened()                             {}
func (nopMetrics) SessionClosed()                             {}
func (nopMetrics) RecordArchiveLoad(string, error)            {}

// Session 持有一个句柄。加载、线程数、缓存构建与导出走写锁，查询走读锁。
type Session struct {
	ID        string
	CreatedAt time.Time

	mu     sync.RWMutex
	handle *bridge.Handle
}

// SessionInfo 会话概要
type SessionInfo struct {
	ID        string    `json:"id"`
	State     string    `json:"state"`
	DexCount  int       `json:"dex_count"`
	CreatedAt time.Time `json:"created_at"`
}

// Query 在读锁下执行查询，可与其他查询并发
func (s *Session) Query(fn func(h *bridge.Handle) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.handle)
}

// Mutate 在写锁下执行修改句柄状态的操作
func (s *Session) Mutate(fn func(h *bridge.Handle) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.handle)
}

func (s *Session) Info() SessionInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, _ := s.handle.ArchiveCount()
	return SessionInfo{
		ID:        s.ID,
		State:     s.handle.State().String(),
		DexCount:  n,
		CreatedAt: s.CreatedAt,
	}
}

// SessionService 会话服务接口
type SessionService interface {
	// 创建会话
	Create(ctx context.Context) (*Session, error)

	// 获取会话
	Get(id string) (*Session, error)

	// 默认会话，不存在时创建
	Default(ctx context.Context) (*Session, error)

	// 会话列表，按创建时间排序
	List() []SessionInfo

	// 关闭会话，已转出的结果不受影响
	Close(id string) error

	CloseAll()

	// 加载归档并记录结果，加载失败时仍返回记录
	LoadArchive(ctx context.Context, id, path string, unzipThreads int, source domain.LoadSource) (*domain.ArchiveRecord, error)

	SetThreadCount(id string, n int) error
	BuildFullCache(id string) error
	ExportArchives(id, dir string) error

	// 加载历史
	History(ctx context.Context, page, pageSize int, status string) ([]*domain.ArchiveRecord, int64, error)

	// 各加载状态的记录数
	HistoryStats(ctx context.Context) (map[string]int64, error)

	// 删除 before 之前的加载记录
	PurgeHistory(ctx context.Context, before time.Time) (int64, error)

	// 所有会话共享的结果分配器
	Allocator() *bridge.HeapAllocator
}

type sessionService struct {
	cfg     config.EngineConfig
	repo    repository.ArchiveRepository
	metrics Metrics
	logger  *logrus.Logger
	alloc   *bridge.HeapAllocator

	mu        sync.RWMutex
	sessions  map[string]*Session
	defaultID string
}

// NewSessionService 创建会话服务。repo 为 nil 时不持久化加载记录，metrics 为 nil 时不上报
func NewSessionService(cfg config.EngineConfig, repo repository.ArchiveRepository, metrics Metrics, logger *logrus.Logger) SessionService {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &sessionService{
		cfg:      cfg,
		repo:     repo,
		metrics:  metrics,
		logger:   logger,
		alloc:    bridge.NewHeapAllocator(cfg.MaxResultBytes),
		sessions: make(map[string]*Session),
	}
}

func (s *sessionService) newSession() *Session {
	return &Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		handle: bridge.New(
			bridge.WithLogger(s.logger),
			bridge.WithAllocator(s.alloc),
			bridge.WithRecorder(s.metrics),
			bridge.WithThreadCount(s.cfg.ThreadNum),
		),
	}
}

func (s *sessionService) Create(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sess := s.newSession()

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.metrics.SessionOpened()
	s.logger.WithField("session_id", sess.ID).Info("Session created")
	return sess, nil
}

func (s *sessionService) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, nil
}

func (s *sessionService) Default(ctx context.Context) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[s.defaultID]
	s.mu.RUnlock()
	if ok {
		return sess, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[s.defaultID]; ok {
		return sess, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sess = s.newSession()
	s.sessions[sess.ID] = sess
	s.defaultID = sess.ID
	s.metrics.SessionOpened()
	s.logger.WithField("session_id", sess.ID).Info("Default session created")
	return sess, nil
}

func (s *sessionService) List() []SessionInfo {
	s.mu.RLock()
	sessions := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.RUnlock()

	infos := make([]SessionInfo, len(sessions))
	for i, sess := range sessions {
		infos[i] = sess.Info()
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].CreatedAt.Equal(infos[j].CreatedAt) {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].CreatedAt.Before(infos[j].CreatedAt)
	})
	return infos
}

func (s *sessionService) Close(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	// 等待进行中的查询结束
	_ = sess.Mutate(func(h *bridge.Handle) error {
		h.Destroy()
		return nil
	})
	s.metrics.SessionClosed()
	s.logger.WithField("session_id", id).Info("Session closed")
	return nil
}

func (s *sessionService) CloseAll() {
	s.mu.RLock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	for _, id := range ids {
		_ = s.Close(id)
	}
}

func (s *sessionService) LoadArchive(ctx context.Context, id, path string, unzipThreads int, source domain.LoadSource) (*domain.ArchiveRecord, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if unzipThreads <= 0 {
		unzipThreads = s.cfg.UnzipThreadNum
	}

	record := &domain.ArchiveRecord{
		SessionID: id,
		Path:      path,
		Source:    source,
	}
	start := time.Now()
	loadErr := sess.Mutate(func(h *bridge.Handle) error {
		before, err := h.ArchiveCount()
		if err != nil {
			return err
		}
		record.DexBefore = before
		record.DexAfter = before

		if err := h.LoadArchive(path, unzipThreads); err != nil {
			return err
		}
		record.DexAfter, _ = h.ArchiveCount()
		if s.cfg.FullCache {
			if err := h.BuildFullCache(); err != nil {
				s.logger.WithError(err).WithField("session_id", id).Warn("Failed to build full cache")
			}
		}
		return nil
	})
	record.DurationMs = time.Since(start).Milliseconds()
	record.Status = domain.LoadStatusLoaded
	if loadErr != nil {
		record.Status = domain.LoadStatusFailed
		record.Error = loadErr.Error()
	}
	s.metrics.RecordArchiveLoad(string(source), loadErr)

	if s.repo != nil {
		if err := s.repo.Create(ctx, record); err != nil {
			s.logger.WithError(err).WithField("path", path).Warn("Failed to persist archive record")
		}
	}

	log := s.logger.WithFields(logrus.Fields{
		"session_id": id,
		"path":       path,
		"source":     source,
		"dex_added":  record.DexAdded(),
	})
	if loadErr != nil {
		log.WithError(loadErr).Warn("Archive load failed")
		return record, loadErr
	}
	log.Info("Archive loaded into session")
	return record, nil
}

func (s *sessionService) mutate(id string, fn func(h *bridge.Handle) error) error {
	sess, err := s.Get(id)
	if err != nil {
		return err
	}
	return sess.Mutate(fn)
}

func (s *sessionService) SetThreadCount(id string, n int) error {
	if n <= 0 {
		return fmt.Errorf("thread count must be positive, got %d", n)
	}
	return s.mutate(id, func(h *bridge.Handle) error {
		return h.SetThreadCount(n)
	})
}

func (s *sessionService) BuildFullCache(id string) error {
	return s.mutate(id, (*bridge.Handle).BuildFullCache)
}

func (s *sessionService) ExportArchives(id, dir string) error {
	if dir == "" {
		dir = s.cfg.ExportDir
	}
	return s.mutate(id, func(h *bridge.Handle) error {
		return h.ExportArchives(dir)
	})
}

func (s *sessionService) History(ctx context.Context, page, pageSize int, status string) ([]*domain.ArchiveRecord, int64, error) {
	if s.repo == nil {
		return nil, 0, nil
	}
	records, total, err := s.repo.ListWithPagination(ctx, page, pageSize, status)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list archive records")
		return nil, 0, fmt.Errorf("list archive records: %w", err)
	}
	return records, total, nil
}

func (s *sessionService) HistoryStats(ctx context.Context) (map[string]int64, error) {
	if s.repo == nil {
		return map[string]int64{}, nil
	}
	counts, err := s.repo.GetStatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count archive records: %w", err)
	}
	return counts, nil
}

func (s *sessionService) PurgeHistory(ctx context.Context, before time.Time) (int64, error) {
	if s.repo == nil {
		return 0, nil
	}
	n, err := s.repo.DeleteBefore(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("purge archive records: %w", err)
	}
	if n > 0 {
		s.logger.WithFields(logrus.Fields{
			"deleted": n,
			"before":  before.Format(time.RFC3339),
		}).Info("Purged archive records")
	}
	return n, nil
}

func (s *sessionService) Allocator() *bridge.HeapAllocator {
	return s.alloc
}
