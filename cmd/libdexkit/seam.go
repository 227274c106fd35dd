package main

/*
#include <string.h>
#include "dexkit.h"

// cgo 把 C.malloc 的失败变成进程退出，经由这里调用时失败返回 NULL
static void* dexkit_try_malloc(size_t n) {
	return malloc(n);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"os"
	"runtime/cgo"
	"unsafe"

	"github.com/apk-analysis/dexkit-go/internal/bridge"
	"github.com/apk-analysis/dexkit-go/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	statusError       = int(C.DEXKIT_ERROR)
	statusNotFound    = int(C.DEXKIT_NOT_FOUND)
	statusFound       = int(C.DEXKIT_FOUND)
	statusOutOfMemory = int(C.DEXKIT_OUT_OF_MEMORY)
)

var logger = newLogger()

// newLogger 库默认只输出 warn 以上，写到 stderr
func newLogger() *logrus.Logger {
	level := os.Getenv("DEXKIT_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	return config.NewLogger(&config.LogConfig{
		Level:  level,
		Format: os.Getenv("DEXKIT_LOG_FORMAT"),
	}, os.Stderr)
}

// cAllocator 用 C 堆分配结果缓冲区，调用方用 free 或 dexkit_free_buffer 释放
type cAllocator struct{}

func (cAllocator) Alloc(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: invalid size %d", bridge.ErrOutOfMemory, n)
	}
	p := C.dexkit_try_malloc(C.size_t(n))
	if p == nil {
		return nil, fmt.Errorf("%w: malloc(%d)", bridge.ErrOutOfMemory, n)
	}
	return unsafe.Slice((*byte)(p), n), nil
}

func (cAllocator) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	C.free(unsafe.Pointer(unsafe.SliceData(b)))
}

func openHandle() cgo.Handle {
	return cgo.NewHandle(bridge.New(
		bridge.WithAllocator(cAllocator{}),
		bridge.WithLogger(logger),
	))
}

func handleOf(h cgo.Handle) *bridge.Handle {
	return h.Value().(*bridge.Handle)
}

// closeHandle 销毁句柄并释放 cgo 引用，0 被忽略
func closeHandle(h cgo.Handle) {
	if h == 0 {
		return
	}
	handleOf(h).Destroy()
	h.Delete()
}

func goBytes(p unsafe.Pointer, n C.size_t) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), int(n))
}

func goIDs(p *C.int64_t, n C.size_t) []int64 {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*int64)(unsafe.Pointer(p)), int(n))
}

func statusOf(st bridge.Status, err error) int {
	switch {
	case errors.Is(err, bridge.ErrOutOfMemory):
		return statusOutOfMemory
	case err != nil:
		return statusError
	case st == bridge.StatusFound:
		return statusFound
	}
	return statusNotFound
}

// detach 把结果缓冲区的所有权交给 C 调用方。无结果时返回 (nil, 0)
func detach(res bridge.Result, err error) (unsafe.Pointer, int, int) {
	status := statusOf(res.Status(), err)
	if err != nil {
		logger.WithError(err).Debug("Query failed at the C boundary")
	}
	b := res.Detach()
	if len(b) == 0 {
		return nil, 0, status
	}
	return unsafe.Pointer(unsafe.SliceData(b)), len(b), status
}

// stringsOut 分配 char* 数组，缺失的值保留为 NULL 槽位。
// 零槽位的数组同样输出 (NULL, 0)，返回值仍为 DEXKIT_FOUND
func stringsOut(res bridge.StringsResult, err error) (unsafe.Pointer, int, int) {
	if err != nil {
		logger.WithError(err).Debug("Query failed at the C boundary")
		return nil, 0, statusOf(bridge.StatusNotFound, err)
	}
	if res.Absent() {
		return nil, 0, statusNotFound
	}
	n := res.Len()
	if n == 0 {
		return nil, 0, statusFound
	}

	arr := C.calloc(C.size_t(n), C.size_t(unsafe.Sizeof(uintptr(0))))
	if arr == nil {
		return nil, 0, statusOutOfMemory
	}
	slots := unsafe.Slice((**C.char)(arr), n)
	for i, v := range res.Values() {
		if v == nil {
			continue
		}
		s := C.dexkit_try_malloc(C.size_t(len(*v) + 1))
		if s == nil {
			freeStrings(&arr, n)
			return nil, 0, statusOutOfMemory
		}
		if len(*v) > 0 {
			C.memcpy(s, unsafe.Pointer(unsafe.StringData(*v)), C.size_t(len(*v)))
		}
		*(*byte)(unsafe.Add(s, len(*v))) = 0
		slots[i] = (*C.char)(s)
	}
	return arr, n, statusFound
}

func freeBlock(p unsafe.Pointer) {
	if p != nil {
		C.free(p)
	}
}

// freeBuffer 释放 *slot 并置空，slot 或 *slot 为 NULL 时无效果
func freeBuffer(slot *unsafe.Pointer) {
	if slot == nil || *slot == nil {
		return
	}
	C.free(*slot)
	*slot = nil
}

// freeStrings 先释放每个非 NULL 槽位，再释放数组本身并置空
func freeStrings(slot *unsafe.Pointer, n int) {
	if slot == nil || *slot == nil {
		return
	}
	if n > 0 {
		for _, s := range unsafe.Slice((**C.char)(*slot), n) {
			if s != nil {
				C.free(unsafe.Pointer(s))
			}
		}
	}
	C.free(*slot)
	*slot = nil
}
