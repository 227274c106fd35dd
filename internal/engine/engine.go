// Package engine 在已加载的 dex 镜像上执行类、方法、字段的查找，并以 schema 结果返回
package engine

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/apk-analysis/dexkit-go/internal/archive"
	"github.com/apk-analysis/dexkit-go/internal/dex"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const initialBuilderSize = 1024

// Engine 持有全部已加载的 dex 及其索引。
// 查询之间可以并发，AddArchive 与查询互斥。
type Engine struct {
	logger    *logrus.Logger
	threadNum atomic.Int32

	mu     sync.RWMutex
	images []*image
	// 描述符 -> 定义位置，先加载的定义优先；未定义的类型与成员记录首次引用的位置
	classByDesc  map[string]ref
	methodByDesc map[string]ref
	fieldByDesc  map[string]ref
	reverse      *reverseIndex

	builders sync.Pool
}

// New 创建空引擎
func New(logger *logrus.Logger) *Engine {
	e := &Engine{
		logger:       logger,
		classByDesc:  make(map[string]ref),
		methodByDesc: make(map[string]ref),
		fieldByDesc:  make(map[string]ref),
		reverse:      new(reverseIndex),
	}
	e.threadNum.Store(int32(runtime.NumCPU()))
	e.builders.New = func() any {
		return flatbuffers.NewBuilder(initialBuilderSize)
	}
	return e
}

// SetThreadNum 设置搜索与缓存构建的并行度，n <= 0 时使用 CPU 数
func (e *Engine) SetThreadNum(n int) {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	e.threadNum.Store(int32(n))
}

func (e *Engine) threads() int {
	return int(e.threadNum.Load())
}

// AddArchive 加载归档中的全部 dex。任一镜像解析失败时不做任何修改。
func (e *Engine) AddArchive(path string, unzipThreads int) error {
	images, err := archive.Open(path, unzipThreads)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}

	files := make([]*dex.File, len(images))
	for i, img := range images {
		f, err := dex.Parse(img.Data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", img.Name, err)
		}
		files[i] = f
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i, f := range files {
		img := newImage(len(e.images), images[i].Name, f, e.logger)
		e.images = append(e.images, img)
		e.register(img)
	}
	e.reverse = new(reverseIndex)

	e.logger.WithFields(logrus.Fields{
		"path":      path,
		"dex_count": len(files),
		"total":     len(e.images),
	}).Info("Archive loaded")
	return nil
}

// register 将镜像中的类型与成员登记到全局描述符表
func (e *Engine) register(img *image) {
	for i := range img.classes {
		c := &img.classes[i]
		prev, ok := e.classByDesc[c.desc]
		if !ok || !e.images[prev.dex].defines(prev.idx) {
			e.classByDesc[c.desc] = ref{dex: img.id, idx: c.def.ClassIdx}
		}
	}
	for idx := range img.file.Types {
		desc := img.file.TypeDescriptor(uint32(idx))
		if _, ok := e.classByDesc[desc]; !ok {
			e.classByDesc[desc] = ref{dex: img.id, idx: uint32(idx)}
		}
	}

	for _, idx := range img.methodOrder {
		desc := img.methodDesc[idx]
		prev, ok := e.methodByDesc[desc]
		if !ok || !e.images[prev.dex].definesMethod(prev.idx) {
			e.methodByDesc[desc] = ref{dex: img.id, idx: idx}
		}
	}
	for idx, desc := range img.methodDesc {
		if _, ok := e.methodByDesc[desc]; !ok {
			e.methodByDesc[desc] = ref{dex: img.id, idx: uint32(idx)}
		}
	}

	for _, idx := range img.fieldOrder {
		desc := img.fieldDesc[idx]
		prev, ok := e.fieldByDesc[desc]
		if !ok || !e.images[prev.dex].definesField(prev.idx) {
			e.fieldByDesc[desc] = ref{dex: img.id, idx: idx}
		}
	}
	for idx, desc := range img.fieldDesc {
		if _, ok := e.fieldByDesc[desc]; !ok {
			e.fieldByDesc[desc] = ref{dex: img.id, idx: uint32(idx)}
		}
	}
}

// DexNum 返回已加载的 dex 数量
func (e *Engine) DexNum() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.images)
}

// InitFullCache 预先构建全部交叉引用
func (e *Engine) InitFullCache() error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	g := new(errgroup.Group)
	g.SetLimit(e.threads())
	for _, img := range e.images {
		g.Go(func() error {
			_, err := img.code()
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	e.reverseRefs()

	e.logger.WithField("dex_count", len(e.images)).Info("Full cache built")
	return nil
}

// ExportDexFiles 将已加载的 dex 写入 dir
func (e *Engine) ExportDexFiles(dir string) error {
	e.mu.RLock()
	data := make([][]byte, len(e.images))
	for i, img := range e.images {
		data[i] = img.file.Bytes()
	}
	e.mu.RUnlock()

	paths, err := archive.Export(dir, data)
	if err != nil {
		return err
	}
	e.logger.WithFields(logrus.Fields{"dir": dir, "files": len(paths)}).Info("Dex files exported")
	return nil
}

func (e *Engine) builder() *flatbuffers.Builder {
	return e.builders.Get().(*flatbuffers.Builder)
}

// ReleaseBuilder 归还查询返回的 builder，之后不得再访问其内容
func (e *Engine) ReleaseBuilder(b *flatbuffers.Builder) {
	if b == nil {
		return
	}
	b.Reset()
	e.builders.Put(b)
}

// forEachImage 按线程数并行处理每个 dex，结果按 dex 顺序返回
func forEachImage[T any](e *Engine, fn func(img *image) []T) []T {
	parts := make([][]T, len(e.images))
	g := new(errgroup.Group)
	g.SetLimit(e.threads())
	for i, img := range e.images {
		g.Go(func() error {
			parts[i] = fn(img)
			return nil
		})
	}
	_ = g.Wait()

	var out []T
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
