// Package bridge 是调用方与 dex 分析引擎之间的边界层：
// 句柄生命周期、结构化查询的载荷传入，以及结果缓冲区的所有权转移。
package bridge

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/apk-analysis/dexkit-go/internal/engine"
	"github.com/apk-analysis/dexkit-go/internal/query"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/sirupsen/logrus"
)

var (
	ErrHandleClosed      = errors.New("bridge: handle destroyed")
	ErrInvalidDescriptor = errors.New("bridge: invalid descriptor")
)

// Engine 是句柄背后的分析引擎。查询返回 nil 表示无结果，
// 非 nil 的 builder 在结果复制完成后通过 ReleaseBuilder 归还。
type Engine interface {
	AddArchive(path string, unzipThreads int) error
	SetThreadNum(n int)
	InitFullCache() error
	DexNum() int
	ExportDexFiles(dir string) error

	FindClass(q *query.FindClass) *flatbuffers.Builder
	FindMethod(q *query.FindMethod) *flatbuffers.Builder
	FindField(q *query.FindField) *flatbuffers.Builder
	BatchFindClassUsingStrings(q *query.BatchFindClassUsingStrings) *flatbuffers.Builder
	BatchFindMethodUsingStrings(q *query.BatchFindMethodUsingStrings) *flatbuffers.Builder

	ClassData(descriptor string) *flatbuffers.Builder
	MethodData(descriptor string) *flatbuffers.Builder
	FieldData(descriptor string) *flatbuffers.Builder
	ClassesByIDs(ids []int64) *flatbuffers.Builder
	MethodsByIDs(ids []int64) *flatbuffers.Builder
	FieldsByIDs(ids []int64) *flatbuffers.Builder

	ClassAnnotations(classID int64) *flatbuffers.Builder
	FieldAnnotations(fieldID int64) *flatbuffers.Builder
	MethodAnnotations(methodID int64) *flatbuffers.Builder
	ParameterAnnotations(methodID int64) *flatbuffers.Builder
	FieldReaders(fieldID int64) *flatbuffers.Builder
	FieldWriters(fieldID int64) *flatbuffers.Builder
	CallerMethods(methodID int64) *flatbuffers.Builder
	InvokeMethods(methodID int64) *flatbuffers.Builder
	MethodUsingFields(methodID int64) *flatbuffers.Builder

	ParameterNames(methodID int64) []*string
	MethodUsingStrings(methodID int64) []string
	MethodOpCodes(methodID int64) []byte

	ReleaseBuilder(b *flatbuffers.Builder)
}

// State 句柄状态
type State int32

const (
	StateEmpty State = iota
	StateLoaded
	StateIndexed
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoaded:
		return "loaded"
	case StateIndexed:
		return "indexed"
	case StateDestroyed:
		return "destroyed"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Recorder 接收每次操作的结果，用于指标采集。
// outcome 为结果状态或 "ok"、"error"
type Recorder interface {
	Observe(op, outcome string, size int, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) Observe(string, string, int, time.Duration) {}

// Handle 拥有一个引擎实例。句柄本身不加锁：
// 加载、线程数、缓存构建与销毁不得与其他调用并发，查询之间可以并发。
type Handle struct {
	engine   Engine
	alloc    Allocator
	logger   *logrus.Logger
	recorder Recorder
	threads  int
	state    atomic.Int32
}

type Option func(*Handle)

func WithEngine(e Engine) Option {
	return func(h *Handle) { h.engine = e }
}

// WithAllocator 指定结果缓冲区的分配器，释放必须经过同一个分配器
func WithAllocator(a Allocator) Option {
	return func(h *Handle) { h.alloc = a }
}

func WithLogger(l *logrus.Logger) Option {
	return func(h *Handle) { h.logger = l }
}

func WithRecorder(r Recorder) Option {
	return func(h *Handle) { h.recorder = r }
}

func WithThreadCount(n int) Option {
	return func(h *Handle) { h.threads = n }
}

// New 创建空句柄，不会失败
func New(opts ...Option) *Handle {
	h := &Handle{}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = logrus.StandardLogger()
	}
	if h.engine == nil {
		h.engine = engine.New(h.logger)
	}
	if h.alloc == nil {
		h.alloc = NewHeapAllocator(0)
	}
	if h.recorder == nil {
		h.recorder = nopRecorder{}
	}
	if h.threads > 0 {
		h.engine.SetThreadNum(h.threads)
	}
	return h
}

// State 返回当前状态
func (h *Handle) State() State {
	return State(h.state.Load())
}

func (h *Handle) usable() error {
	if h.State() == StateDestroyed {
		return ErrHandleClosed
	}
	return nil
}

// Allocator 返回句柄使用的分配器
func (h *Handle) Allocator() Allocator {
	return h.alloc
}

// Destroy 销毁句柄，重复调用无效果。已转出的结果缓冲区不受影响。
func (h *Handle) Destroy() {
	prev := State(h.state.Swap(int32(StateDestroyed)))
	if prev == StateDestroyed {
		return
	}
	h.logger.WithField("previous_state", prev.String()).Debug("Handle destroyed")
}

// LoadArchive 加载归档。失败时句柄保持可用，dex 数量不变。
func (h *Handle) LoadArchive(path string, unzipThreads int) error {
	if err := h.usable(); err != nil {
		return err
	}
	start := time.Now()
	err := h.engine.AddArchive(path, unzipThreads)
	h.recorder.Observe("load_archive", outcomeOf(err), 0, time.Since(start))
	if err != nil {
		h.logger.WithError(err).WithField("path", path).Warn("Failed to load archive")
		return fmt.Errorf("load archive %s: %w", path, err)
	}
	h.state.Store(int32(StateLoaded))
	return nil
}

// SetThreadCount 设置引擎并行度
func (h *Handle) SetThreadCount(n int) error {
	if err := h.usable(); err != nil {
		return err
	}
	h.engine.SetThreadNum(n)
	return nil
}

// BuildFullCache 预先构建全部交叉引用
func (h *Handle) BuildFullCache() error {
	if err := h.usable(); err != nil {
		return err
	}
	start := time.Now()
	err := h.engine.InitFullCache()
	h.recorder.Observe("build_full_cache", outcomeOf(err), 0, time.Since(start))
	if err != nil {
		return fmt.Errorf("build full cache: %w", err)
	}
	if h.State() != StateEmpty {
		h.state.Store(int32(StateIndexed))
	}
	return nil
}

// ArchiveCount 返回已加载的 dex 数量
func (h *Handle) ArchiveCount() (int, error) {
	if err := h.usable(); err != nil {
		return 0, err
	}
	return h.engine.DexNum(), nil
}

// ExportArchives 将已加载的 dex 写入目录
func (h *Handle) ExportArchives(dir string) error {
	if err := h.usable(); err != nil {
		return err
	}
	if err := h.engine.ExportDexFiles(dir); err != nil {
		return fmt.Errorf("export dex files: %w", err)
	}
	return nil
}

func outcomeOf(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
