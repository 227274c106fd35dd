package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/apk-analysis/dexkit-go/internal/bridge"
	"github.com/apk-analysis/dexkit-go/internal/dex"
	"github.com/apk-analysis/dexkit-go/internal/dex/dextest"
	"github.com/apk-analysis/dexkit-go/internal/query"
	"github.com/apk-analysis/dexkit-go/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const greetDesc = "Lcom/demo/Greeter;->greet(Ljava/lang/String;I)V"

func writeGreeter(t *testing.T) string {
	t.Helper()
	data := dextest.Build(dextest.Class{
		Descriptor:  "Lcom/demo/Greeter;",
		AccessFlags: dex.AccPublic,
		Methods: []dextest.Method{{
			Name:        "greet",
			Params:      []string{"Ljava/lang/String;", "I"},
			Return:      "V",
			AccessFlags: dex.AccPublic | dex.AccStatic,
			Code:        []dextest.Insn{dextest.ConstString(0, "hello"), dextest.ReturnVoid()},
			ParamNames:  []*string{dextest.Name("who"), nil},
		}},
	})
	path := filepath.Join(t.TempDir(), "classes.dex")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func loadedHandle(t *testing.T) *bridge.Handle {
	t.Helper()
	h := openHandle()
	t.Cleanup(func() { closeHandle(h) })
	hd := handleOf(h)
	require.NoError(t, hd.LoadArchive(writeGreeter(t), 1))
	return hd
}

// cString 读取 C 字符串
func cString(p *byte) string {
	var b []byte
	for q := unsafe.Pointer(p); *(*byte)(q) != 0; q = unsafe.Add(q, 1) {
		b = append(b, *(*byte)(q))
	}
	return string(b)
}

// TestSeam_FoundThenFree 测试结果长度精确，释放后槽位为空
func TestSeam_FoundThenFree(t *testing.T) {
	hd := loadedHandle(t)
	payload := (&query.FindClass{Matcher: &query.ClassMatcher{ClassName: query.EndsWith("Greeter")}}).Encode()

	p, n, status := detach(hd.FindClass(payload))
	require.Equal(t, statusFound, status)
	require.NotNil(t, p)
	require.Positive(t, n)

	classes, err := result.Classes(unsafe.Slice((*byte)(p), n))
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "Lcom/demo/Greeter;", classes[0].Descriptor)

	slot := p
	freeBuffer(&slot)
	assert.Nil(t, slot)
	freeBuffer(&slot)
	freeBuffer(nil)
}

// TestSeam_NotFound 测试无结果输出 (NULL, 0)
func TestSeam_NotFound(t *testing.T) {
	hd := loadedHandle(t)
	payload := (&query.FindClass{Matcher: &query.ClassMatcher{ClassName: query.Equals("com.demo.Absent")}}).Encode()

	p, n, status := detach(hd.FindClass(payload))
	assert.Equal(t, statusNotFound, status)
	assert.Nil(t, p)
	assert.Zero(t, n)

	p, n, status = detach(hd.ClassData("Lcom/demo/Absent;"))
	assert.Equal(t, statusNotFound, status)
	assert.Nil(t, p)
	assert.Zero(t, n)
}

// TestSeam_ErrorStatus 测试格式错误的载荷与非法描述符
func TestSeam_ErrorStatus(t *testing.T) {
	hd := loadedHandle(t)

	p, n, status := detach(hd.FindClass([]byte("junk")))
	assert.Equal(t, statusError, status)
	assert.Nil(t, p)
	assert.Zero(t, n)

	_, _, status = detach(hd.MethodData("not a descriptor"))
	assert.Equal(t, statusError, status)
}

type failingAllocator struct{}

func (failingAllocator) Alloc(n int) ([]byte, error) {
	return nil, errors.Join(bridge.ErrOutOfMemory, errors.New("test allocator"))
}

func (failingAllocator) Free([]byte) {}

// TestSeam_OutOfMemory 测试分配失败与无结果的输出相同，返回值不同
func TestSeam_OutOfMemory(t *testing.T) {
	hd := bridge.New(bridge.WithAllocator(failingAllocator{}), bridge.WithLogger(logger))
	defer hd.Destroy()
	require.NoError(t, hd.LoadArchive(writeGreeter(t), 1))

	p, n, status := detach(hd.ClassData("Lcom/demo/Greeter;"))
	assert.Equal(t, statusOutOfMemory, status)
	assert.Nil(t, p)
	assert.Zero(t, n)
}

// TestSeam_IDsAndOpCodes 测试 id 批量查找与操作码字节
func TestSeam_IDsAndOpCodes(t *testing.T) {
	hd := loadedHandle(t)

	p, n, status := detach(hd.MethodData(greetDesc))
	require.Equal(t, statusFound, status)
	methods, err := result.Methods(unsafe.Slice((*byte)(p), n))
	require.NoError(t, err)
	require.Len(t, methods, 1)
	freeBlock(p)
	mid := methods[0].ID

	ids := []int64{mid, 1 << 40}
	p, n, status = detach(hd.MethodsByIDs(ids))
	require.Equal(t, statusFound, status)
	methods, err = result.Methods(unsafe.Slice((*byte)(p), n))
	require.NoError(t, err)
	assert.Len(t, methods, 1)
	freeBuffer(&p)
	assert.Equal(t, []int64{mid, 1 << 40}, ids)

	p, n, status = detach(hd.MethodOpCodes(mid))
	require.Equal(t, statusFound, status)
	assert.Equal(t, []byte{dex.OpConstString, dex.OpReturnVoid}, unsafe.Slice((*byte)(p), n))
	freeBuffer(&p)
	assert.Nil(t, p)
}

// TestSeam_NullableStrings 测试槽位数包含 NULL 槽位，释放后数组为空
func TestSeam_NullableStrings(t *testing.T) {
	hd := loadedHandle(t)

	p, n, _ := detach(hd.MethodData(greetDesc))
	methods, err := result.Methods(unsafe.Slice((*byte)(p), n))
	require.NoError(t, err)
	freeBlock(p)
	mid := methods[0].ID

	arr, count, status := stringsOut(hd.ParameterNames(mid))
	require.Equal(t, statusFound, status)
	require.Equal(t, 2, count)
	slots := unsafe.Slice((**byte)(arr), count)
	require.NotNil(t, slots[0])
	assert.Equal(t, "who", cString(slots[0]))
	assert.Nil(t, slots[1])

	freeStrings(&arr, count)
	assert.Nil(t, arr)
	freeStrings(&arr, count)

	arr, count, status = stringsOut(hd.MethodUsingStrings(mid))
	require.Equal(t, statusFound, status)
	require.Equal(t, 1, count)
	assert.Equal(t, "hello", cString(unsafe.Slice((**byte)(arr), count)[0]))
	freeStrings(&arr, count)
}

// TestSeam_AbsentStrings 测试没有结果时输出 (NULL, 0)
func TestSeam_AbsentStrings(t *testing.T) {
	hd := loadedHandle(t)

	arr, count, status := stringsOut(hd.ParameterNames(1 << 40))
	assert.Equal(t, statusNotFound, status)
	assert.Nil(t, arr)
	assert.Zero(t, count)

	arr, count, status = stringsOut(bridge.StringsResult{}, nil)
	assert.Equal(t, statusFound, status)
	assert.Nil(t, arr)
	assert.Zero(t, count)
}

// TestSeam_HandleLifecycle 测试加载失败后句柄仍可用，关闭 0 句柄无效果
func TestSeam_HandleLifecycle(t *testing.T) {
	h := openHandle()
	hd := handleOf(h)

	assert.Error(t, hd.LoadArchive(filepath.Join(t.TempDir(), "missing.apk"), 1))
	n, err := hd.ArchiveCount()
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, hd.LoadArchive(writeGreeter(t), 1))
	n, _ = hd.ArchiveCount()
	assert.Equal(t, 1, n)

	closeHandle(h)
	closeHandle(0)
	assert.Equal(t, bridge.StateDestroyed, hd.State())
}

// TestCAllocator 测试 C 堆分配器
func TestCAllocator(t *testing.T) {
	var a cAllocator
	b, err := a.Alloc(16)
	require.NoError(t, err)
	assert.Len(t, b, 16)
	copy(b, "0123456789abcdef")
	assert.Equal(t, "0123456789abcdef", string(b))
	a.Free(b)

	_, err = a.Alloc(0)
	assert.ErrorIs(t, err, bridge.ErrOutOfMemory)

	// 无法满足的大小返回错误而不是终止进程
	_, err = a.Alloc(1 << 60)
	assert.ErrorIs(t, err, bridge.ErrOutOfMemory)
}

// loadedExportHandle 通过导出函数创建句柄并加载测试 dex
func loadedExportHandle(t *testing.T) uintptr {
	t.Helper()
	h := callNew()
	t.Cleanup(func() { callFree(h) })
	require.Equal(t, 1, callAddZipPath(h, writeGreeter(t), 1))
	return h
}

func greetMethodID(t *testing.T, h uintptr) int64 {
	t.Helper()
	p, n, status := callMethodData(h, greetDesc)
	require.Equal(t, statusFound, status)
	methods, err := result.Methods(unsafe.Slice((*byte)(p), n))
	require.NoError(t, err)
	require.Len(t, methods, 1)
	dexkit_free_buffer(&p)
	return methods[0].ID
}

// TestExports_Lifecycle 测试创建、加载、缓存、导出与释放
func TestExports_Lifecycle(t *testing.T) {
	h := callNew()
	require.NotZero(t, h)

	assert.Equal(t, 0, callAddZipPath(h, filepath.Join(t.TempDir(), "missing.apk"), 1))
	assert.Equal(t, 0, callDexNum(h))

	require.Equal(t, 1, callAddZipPath(h, writeGreeter(t), 1))
	assert.Equal(t, 1, callDexNum(h))
	callSetThreadNum(h, 2)
	assert.Equal(t, 1, callInitFullCache(h))

	dir := t.TempDir()
	assert.Equal(t, 1, callExport(h, dir))
	_, err := os.Stat(filepath.Join(dir, "classes.dex"))
	assert.NoError(t, err)

	callFree(h)
	callFree(0)
}

// TestExports_FindThenFree 测试查找结果经导出函数释放后槽位为空
func TestExports_FindThenFree(t *testing.T) {
	h := loadedExportHandle(t)
	payload := (&query.FindClass{Matcher: &query.ClassMatcher{ClassName: query.EndsWith("Greeter")}}).Encode()

	p, n, status := callFindClass(h, payload, outBoth)
	require.Equal(t, statusFound, status)
	require.NotNil(t, p)
	classes, err := result.Classes(unsafe.Slice((*byte)(p), n))
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "Lcom/demo/Greeter;", classes[0].Descriptor)

	dexkit_free_buffer(&p)
	assert.Nil(t, p)
	dexkit_free_buffer(&p)
	dexkit_free_buffer(nil)

	p, n, status = callClassData(h, "Lcom/demo/Absent;")
	assert.Equal(t, statusNotFound, status)
	assert.Nil(t, p)
	assert.Zero(t, n)

	_, _, status = callFindClass(h, []byte("junk"), outBoth)
	assert.Equal(t, statusError, status)
	_, _, status = callFindClass(h, nil, outBoth)
	assert.Equal(t, statusError, status)
}

// TestExports_PartialBatch 测试一个有效 id 与一个越界 id 的批量查找
func TestExports_PartialBatch(t *testing.T) {
	h := loadedExportHandle(t)
	mid := greetMethodID(t, h)

	p, n, status := callMethodsByIDs(h, []int64{mid, 1 << 40})
	require.Equal(t, statusFound, status)
	methods, err := result.Methods(unsafe.Slice((*byte)(p), n))
	require.NoError(t, err)
	require.Len(t, methods, 1)
	assert.Equal(t, mid, methods[0].ID)
	dexkit_free_buffer(&p)

	p, n, status = callMethodsByIDs(h, nil)
	assert.Equal(t, statusNotFound, status)
	assert.Nil(t, p)
	assert.Zero(t, n)

	p, n, status = callOpCodes(h, mid)
	require.Equal(t, statusFound, status)
	assert.Equal(t, []byte{dex.OpConstString, dex.OpReturnVoid}, unsafe.Slice((*byte)(p), n))
	dexkit_free_buffer(&p)
}

// TestExports_NullOutParams 测试输出参数为 NULL 时结果被释放且另一个输出为空
func TestExports_NullOutParams(t *testing.T) {
	h := loadedExportHandle(t)
	payload := (&query.FindClass{Matcher: &query.ClassMatcher{ClassName: query.EndsWith("Greeter")}}).Encode()

	p, n, status := callFindClass(h, payload, outNoBuf)
	assert.Equal(t, statusFound, status)
	assert.Nil(t, p)
	assert.Zero(t, n)

	p, n, status = callFindClass(h, payload, outNoLen)
	assert.Equal(t, statusFound, status)
	assert.Nil(t, p)
	assert.Zero(t, n)

	mid := greetMethodID(t, h)
	arr, count, status := callParameterNames(h, mid, outNoLen)
	assert.Equal(t, statusFound, status)
	assert.Nil(t, arr)
	assert.Zero(t, count)

	arr, count, status = callParameterNames(h, mid, outNoBuf)
	assert.Equal(t, statusFound, status)
	assert.Nil(t, arr)
	assert.Zero(t, count)
}

// TestExports_ParameterNames 测试字符串数组经导出函数释放
func TestExports_ParameterNames(t *testing.T) {
	h := loadedExportHandle(t)
	mid := greetMethodID(t, h)

	arr, count, status := callParameterNames(h, mid, outBoth)
	require.Equal(t, statusFound, status)
	require.Equal(t, 2, count)
	slots := unsafe.Slice((**byte)(arr), count)
	assert.Equal(t, "who", cString(slots[0]))
	assert.Nil(t, slots[1])

	callFreeStrings(&arr, count)
	assert.Nil(t, arr)
	callFreeStrings(&arr, count)
	callFreeStrings(nil, 0)

	arr, count, status = callParameterNames(h, 1<<40, outBoth)
	assert.Equal(t, statusNotFound, status)
	assert.Nil(t, arr)
	assert.Zero(t, count)
}

// TestConversions 测试空指针与零长度的转换
func TestConversions(t *testing.T) {
	assert.Nil(t, goBytes(nil, 4))
	b := []byte{1, 2}
	assert.Nil(t, goBytes(unsafe.Pointer(&b[0]), 0))
	assert.Equal(t, b, goBytes(unsafe.Pointer(&b[0]), 2))

	assert.Nil(t, goIDs(nil, 3))

	assert.Equal(t, 1, int(cBool(nil)))
	assert.Equal(t, 0, int(cBool(errors.New("boom"))))
}
