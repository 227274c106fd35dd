// Command libdexkit 以 c-shared 方式导出扁平函数表:
//
//	go build -buildmode=c-shared -o libdexkit.so ./cmd/libdexkit
package main

/*
#include "dexkit.h"
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/apk-analysis/dexkit-go/internal/bridge"
)

func main() {}

//export dexkit_new
func dexkit_new() C.dexkit_handle {
	return C.dexkit_handle(openHandle())
}

//export dexkit_free
func dexkit_free(h C.dexkit_handle) {
	closeHandle(cgo.Handle(h))
}

//export dexkit_add_zip_path
func dexkit_add_zip_path(h C.dexkit_handle, path *C.char, unzipThreadNum C.int) C.int {
	return cBool(handleOf(cgo.Handle(h)).LoadArchive(C.GoString(path), int(unzipThreadNum)))
}

//export dexkit_set_thread_num
func dexkit_set_thread_num(h C.dexkit_handle, threadNum C.int) {
	_ = handleOf(cgo.Handle(h)).SetThreadCount(int(threadNum))
}

//export dexkit_init_full_cache
func dexkit_init_full_cache(h C.dexkit_handle) C.int {
	return cBool(handleOf(cgo.Handle(h)).BuildFullCache())
}

//export dexkit_get_dex_num
func dexkit_get_dex_num(h C.dexkit_handle) C.int {
	n, _ := handleOf(cgo.Handle(h)).ArchiveCount()
	return C.int(n)
}

//export dexkit_export_dex_file
func dexkit_export_dex_file(h C.dexkit_handle, outDir *C.char) C.int {
	return cBool(handleOf(cgo.Handle(h)).ExportArchives(C.GoString(outDir)))
}

// 结构化查询。buffer 为调用期间有效的查询载荷，结果用 dexkit_free_buffer 释放

//export dexkit_find_class
func dexkit_find_class(h C.dexkit_handle, buffer unsafe.Pointer, size C.size_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).FindClass(goBytes(buffer, size))))
}

//export dexkit_find_method
func dexkit_find_method(h C.dexkit_handle, buffer unsafe.Pointer, size C.size_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).FindMethod(goBytes(buffer, size))))
}

//export dexkit_find_field
func dexkit_find_field(h C.dexkit_handle, buffer unsafe.Pointer, size C.size_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).FindField(goBytes(buffer, size))))
}

//export dexkit_batch_find_class_using_strings
func dexkit_batch_find_class_using_strings(h C.dexkit_handle, buffer unsafe.Pointer, size C.size_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).BatchFindClassUsingStrings(goBytes(buffer, size))))
}

//export dexkit_batch_find_method_using_strings
func dexkit_batch_find_method_using_strings(h C.dexkit_handle, buffer unsafe.Pointer, size C.size_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).BatchFindMethodUsingStrings(goBytes(buffer, size))))
}

// 描述符查找

//export dexkit_get_class_data
func dexkit_get_class_data(h C.dexkit_handle, descriptor *C.char, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).ClassData(C.GoString(descriptor))))
}

//export dexkit_get_method_data
func dexkit_get_method_data(h C.dexkit_handle, descriptor *C.char, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).MethodData(C.GoString(descriptor))))
}

//export dexkit_get_field_data
func dexkit_get_field_data(h C.dexkit_handle, descriptor *C.char, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).FieldData(C.GoString(descriptor))))
}

// id 批量查找，ids 在调用返回前被复制

//export dexkit_get_class_by_ids
func dexkit_get_class_by_ids(h C.dexkit_handle, ids *C.int64_t, count C.size_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).ClassesByIDs(goIDs(ids, count))))
}

//export dexkit_get_method_by_ids
func dexkit_get_method_by_ids(h C.dexkit_handle, ids *C.int64_t, count C.size_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).MethodsByIDs(goIDs(ids, count))))
}

//export dexkit_get_field_by_ids
func dexkit_get_field_by_ids(h C.dexkit_handle, ids *C.int64_t, count C.size_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).FieldsByIDs(goIDs(ids, count))))
}

// 单 id 查找

//export dexkit_get_class_annotations
func dexkit_get_class_annotations(h C.dexkit_handle, classID C.int64_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).ClassAnnotations(int64(classID))))
}

//export dexkit_get_field_annotations
func dexkit_get_field_annotations(h C.dexkit_handle, fieldID C.int64_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).FieldAnnotations(int64(fieldID))))
}

//export dexkit_get_method_annotations
func dexkit_get_method_annotations(h C.dexkit_handle, methodID C.int64_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).MethodAnnotations(int64(methodID))))
}

//export dexkit_get_parameter_annotations
func dexkit_get_parameter_annotations(h C.dexkit_handle, methodID C.int64_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).ParameterAnnotations(int64(methodID))))
}

//export dexkit_field_get_methods
func dexkit_field_get_methods(h C.dexkit_handle, fieldID C.int64_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).FieldReaders(int64(fieldID))))
}

//export dexkit_field_put_methods
func dexkit_field_put_methods(h C.dexkit_handle, fieldID C.int64_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).FieldWriters(int64(fieldID))))
}

//export dexkit_get_caller_methods
func dexkit_get_caller_methods(h C.dexkit_handle, methodID C.int64_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).CallerMethods(int64(methodID))))
}

//export dexkit_get_invoke_methods
func dexkit_get_invoke_methods(h C.dexkit_handle, methodID C.int64_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).InvokeMethods(int64(methodID))))
}

//export dexkit_get_method_using_fields
func dexkit_get_method_using_fields(h C.dexkit_handle, methodID C.int64_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).MethodUsingFields(int64(methodID))))
}

// 操作码以原始字节返回，用 dexkit_free_buffer 释放

//export dexkit_get_method_op_codes
func dexkit_get_method_op_codes(h C.dexkit_handle, methodID C.int64_t, outBuf *unsafe.Pointer, outLen *C.size_t) C.int {
	return setBuffer(outBuf, outLen)(detach(handleOf(cgo.Handle(h)).MethodOpCodes(int64(methodID))))
}

// 可为空的字符串数组，count 为槽位数，含 NULL 槽位。用 dexkit_free_string_array 释放

//export dexkit_get_parameter_names
func dexkit_get_parameter_names(h C.dexkit_handle, methodID C.int64_t, outArr ***C.char, outCount *C.size_t) C.int {
	return setStrings(outArr, outCount)(stringsOut(handleOf(cgo.Handle(h)).ParameterNames(int64(methodID))))
}

//export dexkit_get_method_using_strings
func dexkit_get_method_using_strings(h C.dexkit_handle, methodID C.int64_t, outArr ***C.char, outCount *C.size_t) C.int {
	return setStrings(outArr, outCount)(stringsOut(handleOf(cgo.Handle(h)).MethodUsingStrings(int64(methodID))))
}

// 释放

//export dexkit_free_buffer
func dexkit_free_buffer(slot *unsafe.Pointer) {
	freeBuffer(slot)
}

//export dexkit_free_string_array
func dexkit_free_string_array(slot ***C.char, count C.size_t) {
	freeStrings((*unsafe.Pointer)(unsafe.Pointer(slot)), int(count))
}

func cBool(err error) C.int {
	if err != nil {
		return 0
	}
	return 1
}

func setBuffer(outBuf *unsafe.Pointer, outLen *C.size_t) func(unsafe.Pointer, int, int) C.int {
	return func(p unsafe.Pointer, n int, status int) C.int {
		// 任一输出参数为 NULL 时结果无人接收，释放后两个输出都写空
		if p != nil && (outBuf == nil || outLen == nil) {
			freeBlock(p)
			p, n = nil, 0
		}
		if outBuf != nil {
			*outBuf = p
		}
		if outLen != nil {
			*outLen = C.size_t(n)
		}
		return C.int(status)
	}
}

func setStrings(outArr ***C.char, outCount *C.size_t) func(unsafe.Pointer, int, int) C.int {
	return func(arr unsafe.Pointer, n int, status int) C.int {
		if arr != nil && (outArr == nil || outCount == nil) {
			freeStrings(&arr, n)
			n = 0
		}
		if outArr != nil {
			*outArr = (**C.char)(arr)
		}
		if outCount != nil {
			*outCount = C.size_t(n)
		}
		return C.int(status)
	}
}

var _ bridge.Allocator = cAllocator{}
