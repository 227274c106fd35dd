package bridge

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrOutOfMemory 结果缓冲区分配失败，与无结果区分
var ErrOutOfMemory = errors.New("bridge: out of memory")

// Allocator 分配与释放结果缓冲区。Alloc 返回的切片长度恰为 n，
// 只能由同一个 Allocator 的 Free 释放。
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Free(b []byte)
}

// HeapAllocator 在 Go 堆上分配，limit > 0 时限制未释放的总字节数
type HeapAllocator struct {
	limit       int64
	outstanding atomic.Int64
}

func NewHeapAllocator(limit int64) *HeapAllocator {
	return &HeapAllocator{limit: limit}
}

func (a *HeapAllocator) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrOutOfMemory, n)
	}
	total := a.outstanding.Add(int64(n))
	if a.limit > 0 && total > a.limit {
		a.outstanding.Add(-int64(n))
		return nil, fmt.Errorf("%w: %d bytes exceeds limit %d", ErrOutOfMemory, n, a.limit)
	}
	return make([]byte, n), nil
}

func (a *HeapAllocator) Free(b []byte) {
	a.outstanding.Add(-int64(len(b)))
}

// Outstanding 返回尚未释放的字节数
func (a *HeapAllocator) Outstanding() int64 {
	return a.outstanding.Load()
}

// Status 是查询结果的标记
type Status uint8

const (
	StatusNotFound Status = iota
	StatusFound
	StatusOutOfMemory
)

func (s Status) String() string {
	switch s {
	case StatusNotFound:
		return "not_found"
	case StatusFound:
		return "found"
	case StatusOutOfMemory:
		return "out_of_memory"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Result 是 NotFound | OutOfMemory | Found(bytes) 的标记结果。
// Found 时持有一块由句柄分配器分配的缓冲区，Release 将其归还。
// 值拷贝共享同一块所有权，任一拷贝 Release 或 Detach 后其余拷贝都看到空结果。
type Result struct {
	status Status
	own    *block
}

// block 是被 Result 拷贝共享的缓冲区所有权，缓冲区只会被交出一次
type block struct {
	mu    sync.Mutex
	buf   []byte
	alloc Allocator
}

func (b *block) bytes() []byte {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf
}

// take 交出缓冲区并清空，之后返回 nil
func (b *block) take() []byte {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	buf := b.buf
	b.buf = nil
	return buf
}

// Status 缓冲区被释放或交出后返回 StatusNotFound
func (r *Result) Status() Status {
	if r == nil {
		return StatusNotFound
	}
	if r.status == StatusFound && r.own.bytes() == nil {
		return StatusNotFound
	}
	return r.status
}

// Found 是否持有缓冲区
func (r *Result) Found() bool {
	return r != nil && r.own.bytes() != nil
}

// Bytes 返回缓冲区内容，Release 之后不得再使用
func (r *Result) Bytes() []byte {
	if r == nil {
		return nil
	}
	return r.own.bytes()
}

func (r *Result) Len() int {
	return len(r.Bytes())
}

// Release 归还缓冲区。nil、已释放或已交出的结果上调用无效果。
func (r *Result) Release() {
	if r == nil {
		return
	}
	if buf := r.own.take(); buf != nil {
		r.own.alloc.Free(buf)
	}
}

// Detach 交出缓冲区所有权，之后任何拷贝的 Release 都不再释放它。
// 调用方必须用句柄的 Allocator 释放返回的切片。
func (r *Result) Detach() []byte {
	if r == nil {
		return nil
	}
	return r.own.take()
}

// StringsResult 是可为空的字符串数组。Absent 表示引擎没有给出结果，
// 否则 Len 等于槽位数，nil 槽位表示该位置的值缺失。
type StringsResult struct {
	values []*string
	absent bool
}

func absentStrings() StringsResult {
	return StringsResult{absent: true}
}

func (r StringsResult) Absent() bool {
	return r.absent
}

func (r StringsResult) Len() int {
	return len(r.values)
}

// Values 返回槽位，调用方不得修改
func (r StringsResult) Values() []*string {
	return r.values
}

// Present 返回非 nil 槽位的数量
func (r StringsResult) Present() int {
	n := 0
	for _, v := range r.values {
		if v != nil {
			n++
		}
	}
	return n
}

// Strings 返回槽位的值，缺失位置为空串
func (r StringsResult) Strings() []string {
	out := make([]string, len(r.values))
	for i, v := range r.values {
		if v != nil {
			out[i] = *v
		}
	}
	return out
}
