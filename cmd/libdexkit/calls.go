package main

/*
#include "dexkit.h"
*/
import "C"

import "unsafe"

// 以 Go 类型调用导出函数表，供 Go 侧驱动 C 边界

// outMode 控制传给导出函数的输出参数，模拟调用方传入 NULL
type outMode int

const (
	outBoth outMode = iota
	outNoBuf
	outNoLen
)

func callNew() uintptr {
	return uintptr(dexkit_new())
}

func callFree(h uintptr) {
	dexkit_free(C.dexkit_handle(h))
}

func callAddZipPath(h uintptr, path string, unzipThreads int) int {
	p := C.CString(path)
	defer C.free(unsafe.Pointer(p))
	return int(dexkit_add_zip_path(C.dexkit_handle(h), p, C.int(unzipThreads)))
}

func callSetThreadNum(h uintptr, n int) {
	dexkit_set_thread_num(C.dexkit_handle(h), C.int(n))
}

func callInitFullCache(h uintptr) int {
	return int(dexkit_init_full_cache(C.dexkit_handle(h)))
}

func callDexNum(h uintptr) int {
	return int(dexkit_get_dex_num(C.dexkit_handle(h)))
}

func callExport(h uintptr, dir string) int {
	p := C.CString(dir)
	defer C.free(unsafe.Pointer(p))
	return int(dexkit_export_dex_file(C.dexkit_handle(h), p))
}

func callBuffer(mode outMode, fn func(*unsafe.Pointer, *C.size_t) C.int) (unsafe.Pointer, int, int) {
	var p unsafe.Pointer
	var n C.size_t
	bp, np := &p, &n
	switch mode {
	case outNoBuf:
		bp = nil
	case outNoLen:
		np = nil
	}
	status := fn(bp, np)
	return p, int(n), int(status)
}

func callFindClass(h uintptr, payload []byte, mode outMode) (unsafe.Pointer, int, int) {
	var buf unsafe.Pointer
	if len(payload) > 0 {
		buf = unsafe.Pointer(&payload[0])
	}
	return callBuffer(mode, func(out *unsafe.Pointer, outLen *C.size_t) C.int {
		return dexkit_find_class(C.dexkit_handle(h), buf, C.size_t(len(payload)), out, outLen)
	})
}

func callDescriptor(h uintptr, descriptor string, fn func(C.dexkit_handle, *C.char, *unsafe.Pointer, *C.size_t) C.int) (unsafe.Pointer, int, int) {
	d := C.CString(descriptor)
	defer C.free(unsafe.Pointer(d))
	return callBuffer(outBoth, func(out *unsafe.Pointer, outLen *C.size_t) C.int {
		return fn(C.dexkit_handle(h), d, out, outLen)
	})
}

func callClassData(h uintptr, descriptor string) (unsafe.Pointer, int, int) {
	return callDescriptor(h, descriptor, dexkit_get_class_data)
}

func callMethodData(h uintptr, descriptor string) (unsafe.Pointer, int, int) {
	return callDescriptor(h, descriptor, dexkit_get_method_data)
}

func callMethodsByIDs(h uintptr, ids []int64) (unsafe.Pointer, int, int) {
	var p *C.int64_t
	if len(ids) > 0 {
		p = (*C.int64_t)(unsafe.Pointer(&ids[0]))
	}
	return callBuffer(outBoth, func(out *unsafe.Pointer, outLen *C.size_t) C.int {
		return dexkit_get_method_by_ids(C.dexkit_handle(h), p, C.size_t(len(ids)), out, outLen)
	})
}

func callOpCodes(h uintptr, methodID int64) (unsafe.Pointer, int, int) {
	return callBuffer(outBoth, func(out *unsafe.Pointer, outLen *C.size_t) C.int {
		return dexkit_get_method_op_codes(C.dexkit_handle(h), C.int64_t(methodID), out, outLen)
	})
}

func callParameterNames(h uintptr, methodID int64, mode outMode) (unsafe.Pointer, int, int) {
	var arr **C.char
	var n C.size_t
	ap, np := &arr, &n
	switch mode {
	case outNoBuf:
		ap = nil
	case outNoLen:
		np = nil
	}
	status := dexkit_get_parameter_names(C.dexkit_handle(h), C.int64_t(methodID), ap, np)
	return unsafe.Pointer(arr), int(n), int(status)
}

func callFreeStrings(slot *unsafe.Pointer, n int) {
	dexkit_free_string_array((***C.char)(unsafe.Pointer(slot)), C.size_t(n))
}
