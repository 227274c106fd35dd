package bridge

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/apk-analysis/dexkit-go/internal/query"
	"github.com/apk-analysis/dexkit-go/internal/result"
	"github.com/apk-analysis/dexkit-go/internal/schema"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// classHolder 构造一个包含给定描述符的 ClassMetaArrayHolder
func classHolder(descs ...string) *flatbuffers.Builder {
	b := flatbuffers.NewBuilder(0)
	metas := make([]flatbuffers.UOffsetT, len(descs))
	for i, d := range descs {
		s := b.CreateString(d)
		schema.ClassMetaStart(b)
		schema.ClassMetaAddId(b, int64(i))
		schema.ClassMetaAddDexDescriptor(b, s)
		metas[i] = schema.ClassMetaEnd(b)
	}
	schema.ClassMetaArrayHolderStartClassesVector(b, len(metas))
	for i := len(metas) - 1; i >= 0; i-- {
		b.PrependUOffsetT(metas[i])
	}
	vec := b.EndVector(len(metas))
	schema.ClassMetaArrayHolderStart(b)
	schema.ClassMetaArrayHolderAddClasses(b, vec)
	b.FinishWithFileIdentifier(schema.ClassMetaArrayHolderEnd(b), []byte(schema.ClassMetaArrayHolderIdentifier))
	return b
}

type observation struct {
	op      string
	outcome string
	size    int
}

type recordingRecorder struct {
	mu  sync.Mutex
	obs []observation
}

func (r *recordingRecorder) Observe(op, outcome string, size int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.obs = append(r.obs, observation{op: op, outcome: outcome, size: size})
}

func newMockHandle(opts ...Option) (*Handle, *MockEngine) {
	eng := new(MockEngine)
	opts = append([]Option{WithEngine(eng), WithLogger(quietLogger())}, opts...)
	return New(opts...), eng
}

func findClassPayload() []byte {
	q := &query.FindClass{Matcher: &query.ClassMatcher{ClassName: query.Contains("Main")}}
	return q.Encode()
}

// TestHandle_Lifecycle 测试状态迁移
func TestHandle_Lifecycle(t *testing.T) {
	h, eng := newMockHandle()
	eng.On("AddArchive", "app.apk", 2).Return(nil)
	eng.On("DexNum").Return(3)
	eng.On("InitFullCache").Return(nil)
	eng.On("SetThreadNum", 8).Return()
	eng.On("ExportDexFiles", "/tmp/out").Return(nil)

	assert.Equal(t, StateEmpty, h.State())
	require.NoError(t, h.LoadArchive("app.apk", 2))
	assert.Equal(t, StateLoaded, h.State())

	n, err := h.ArchiveCount()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, h.SetThreadCount(8))
	require.NoError(t, h.BuildFullCache())
	assert.Equal(t, StateIndexed, h.State())
	require.NoError(t, h.ExportArchives("/tmp/out"))

	h.Destroy()
	h.Destroy()
	assert.Equal(t, StateDestroyed, h.State())
	_, err = h.ArchiveCount()
	assert.ErrorIs(t, err, ErrHandleClosed)
	assert.ErrorIs(t, h.LoadArchive("app.apk", 2), ErrHandleClosed)
	_, err = h.FindClass(findClassPayload())
	assert.ErrorIs(t, err, ErrHandleClosed)
	eng.AssertExpectations(t)
}

// TestHandle_LoadArchiveFailure 测试加载失败后句柄仍可用
func TestHandle_LoadArchiveFailure(t *testing.T) {
	h, eng := newMockHandle()
	eng.On("AddArchive", "missing.apk", 1).Return(errors.New("open archive: no such file"))
	eng.On("DexNum").Return(0)

	err := h.LoadArchive("missing.apk", 1)
	assert.Error(t, err)
	assert.Equal(t, StateEmpty, h.State())

	n, err := h.ArchiveCount()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

// TestHandle_FoundResult 测试结果按精确大小复制且 builder 只归还一次
func TestHandle_FoundResult(t *testing.T) {
	alloc := NewHeapAllocator(0)
	h, eng := newMockHandle(WithAllocator(alloc))
	b := classHolder("Lcom/demo/Main;")
	want := append([]byte(nil), b.FinishedBytes()...)
	eng.On("FindClass", mock.AnythingOfType("*query.FindClass")).Return(b)
	eng.On("ReleaseBuilder", b).Return().Once()

	res, err := h.FindClass(findClassPayload())
	require.NoError(t, err)
	assert.Equal(t, StatusFound, res.Status())
	assert.True(t, res.Found())
	assert.Equal(t, len(want), res.Len())
	assert.Equal(t, want, res.Bytes())
	assert.Equal(t, int64(len(want)), alloc.Outstanding())

	classes, err := result.Classes(res.Bytes())
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "Lcom/demo/Main;", classes[0].Descriptor)

	res.Release()
	assert.Nil(t, res.Bytes())
	assert.Equal(t, 0, res.Len())
	res.Release()
	assert.Equal(t, int64(0), alloc.Outstanding())
	eng.AssertNumberOfCalls(t, "ReleaseBuilder", 1)
}

// TestHandle_NotFound 测试无结果时返回空结果
func TestHandle_NotFound(t *testing.T) {
	h, eng := newMockHandle()
	eng.On("FindMethod", mock.AnythingOfType("*query.FindMethod")).Return(nil)

	res, err := h.FindMethod((&query.FindMethod{}).Encode())
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, res.Status())
	assert.False(t, res.Found())
	assert.Equal(t, 0, res.Len())
	assert.Nil(t, res.Bytes())
	res.Release()

	var nilResult *Result
	nilResult.Release()
	assert.Equal(t, StatusNotFound, nilResult.Status())
	eng.AssertNotCalled(t, "ReleaseBuilder", mock.Anything)
}

// TestHandle_OutOfMemory 测试分配失败与无结果可区分
func TestHandle_OutOfMemory(t *testing.T) {
	alloc := NewHeapAllocator(8)
	h, eng := newMockHandle(WithAllocator(alloc))
	b := classHolder("Lcom/demo/Main;")
	eng.On("FindClass", mock.Anything).Return(b)
	eng.On("ReleaseBuilder", b).Return().Once()

	res, err := h.FindClass(findClassPayload())
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, StatusOutOfMemory, res.Status())
	assert.False(t, res.Found())
	assert.Equal(t, int64(0), alloc.Outstanding())
	eng.AssertNumberOfCalls(t, "ReleaseBuilder", 1)
}

// TestHandle_MalformedPayload 测试非法载荷在边界处被拒绝
func TestHandle_MalformedPayload(t *testing.T) {
	h, eng := newMockHandle()

	_, err := h.FindClass([]byte("garbage"))
	assert.ErrorIs(t, err, query.ErrMalformedQuery)

	_, err = h.FindField(findClassPayload())
	assert.ErrorIs(t, err, query.ErrMalformedQuery)

	bad := &query.BatchFindClassUsingStrings{Groups: []query.StringMatchersGroup{{UnionKey: "", Matchers: nil}}}
	_, err = h.BatchFindClassUsingStrings(bad.Encode())
	assert.ErrorIs(t, err, query.ErrMalformedQuery)

	eng.AssertNotCalled(t, "FindClass", mock.Anything)
	eng.AssertNotCalled(t, "FindField", mock.Anything)
	eng.AssertNotCalled(t, "BatchFindClassUsingStrings", mock.Anything)
}

// TestHandle_IDsCopiedIn 测试 id 列表被复制，部分结果原样传出
func TestHandle_IDsCopiedIn(t *testing.T) {
	h, eng := newMockHandle()
	ids := []int64{1, 1 << 40}
	partial := classHolder("Lcom/demo/Main;")
	want := append([]byte(nil), partial.FinishedBytes()...)

	var seen []int64
	eng.On("ClassesByIDs", mock.Anything).Run(func(args mock.Arguments) {
		seen = args.Get(0).([]int64)
		seen[0] = 42
	}).Return(partial)
	eng.On("ReleaseBuilder", partial).Return()

	res, err := h.ClassesByIDs(ids)
	require.NoError(t, err)
	defer res.Release()

	assert.Equal(t, []int64{1, 1 << 40}, ids)
	assert.Equal(t, []int64{42, 1 << 40}, seen)
	assert.Equal(t, want, res.Bytes())
}

// TestHandle_InvalidDescriptor 测试描述符校验
func TestHandle_InvalidDescriptor(t *testing.T) {
	h, eng := newMockHandle()

	_, err := h.ClassData("com.demo.Main")
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
	_, err = h.MethodData("Lcom/demo/Config;->DEBUG:Z")
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
	_, err = h.FieldData("Lcom/demo/Main;->run()V")
	assert.ErrorIs(t, err, ErrInvalidDescriptor)

	eng.AssertNotCalled(t, "ClassData", mock.Anything)
	eng.AssertNotCalled(t, "MethodData", mock.Anything)
	eng.AssertNotCalled(t, "FieldData", mock.Anything)
}

// TestHandle_ParameterNames 测试可为空的字符串数组
func TestHandle_ParameterNames(t *testing.T) {
	h, eng := newMockHandle()
	a, c := "a", "c"
	eng.On("ParameterNames", int64(7)).Return([]*string{&a, nil, &c})
	eng.On("ParameterNames", int64(8)).Return(nil)

	names, err := h.ParameterNames(7)
	require.NoError(t, err)
	assert.False(t, names.Absent())
	assert.Equal(t, 3, names.Len())
	assert.Equal(t, 2, names.Present())
	assert.Nil(t, names.Values()[1])
	assert.Equal(t, []string{"a", "", "c"}, names.Strings())

	a = "changed"
	assert.Equal(t, "a", *names.Values()[0])

	names, err = h.ParameterNames(8)
	require.NoError(t, err)
	assert.True(t, names.Absent())
	assert.Equal(t, 0, names.Len())
}

// TestHandle_MethodUsingStrings 测试字符串列表没有空槽位
func TestHandle_MethodUsingStrings(t *testing.T) {
	h, eng := newMockHandle()
	eng.On("MethodUsingStrings", int64(1)).Return([]string{"password", "token"})

	strs, err := h.MethodUsingStrings(1)
	require.NoError(t, err)
	assert.Equal(t, 2, strs.Len())
	assert.Equal(t, strs.Len(), strs.Present())
}

// TestHandle_MethodUsingStringsEmpty 测试空列表是零槽位结果，nil 才是缺失
func TestHandle_MethodUsingStringsEmpty(t *testing.T) {
	h, eng := newMockHandle()
	eng.On("MethodUsingStrings", int64(1)).Return([]string{})
	eng.On("MethodUsingStrings", int64(2)).Return([]string(nil))

	strs, err := h.MethodUsingStrings(1)
	require.NoError(t, err)
	assert.False(t, strs.Absent())
	assert.Equal(t, 0, strs.Len())

	strs, err = h.MethodUsingStrings(2)
	require.NoError(t, err)
	assert.True(t, strs.Absent())
}

// TestHandle_MethodOpCodes 测试操作码字节块
func TestHandle_MethodOpCodes(t *testing.T) {
	alloc := NewHeapAllocator(0)
	h, eng := newMockHandle(WithAllocator(alloc))
	eng.On("MethodOpCodes", int64(1)).Return([]byte{0x1a, 0x0e})
	eng.On("MethodOpCodes", int64(2)).Return([]byte{})

	res, err := h.MethodOpCodes(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1a, 0x0e}, res.Bytes())
	res.Release()
	assert.Equal(t, int64(0), alloc.Outstanding())

	res, err = h.MethodOpCodes(2)
	require.NoError(t, err)
	assert.False(t, res.Found())
}

// TestHandle_Detach 测试交出缓冲区所有权
func TestHandle_Detach(t *testing.T) {
	alloc := NewHeapAllocator(0)
	h, eng := newMockHandle(WithAllocator(alloc))
	b := classHolder("La;", "Lb;")
	eng.On("ClassData", "La;").Return(b)
	eng.On("ReleaseBuilder", b).Return()

	res, err := h.ClassData("La;")
	require.NoError(t, err)
	raw := res.Detach()
	require.NotEmpty(t, raw)

	res.Release()
	assert.Equal(t, int64(len(raw)), alloc.Outstanding())
	h.Allocator().Free(raw)
	assert.Equal(t, int64(0), alloc.Outstanding())
}

// TestHandle_ReleaseCopies 测试结果的拷贝共享所有权，缓冲区只归还一次
func TestHandle_ReleaseCopies(t *testing.T) {
	alloc := NewHeapAllocator(0)
	h, eng := newMockHandle(WithAllocator(alloc))
	b := classHolder("La;")
	eng.On("ClassData", "La;").Return(b)
	eng.On("ReleaseBuilder", b).Return()

	res, err := h.ClassData("La;")
	require.NoError(t, err)
	cp := res
	require.Equal(t, StatusFound, cp.Status())

	res.Release()
	cp.Release()
	assert.Equal(t, int64(0), alloc.Outstanding())
	assert.Equal(t, StatusNotFound, res.Status())
	assert.Equal(t, StatusNotFound, cp.Status())
	assert.False(t, cp.Found())
	assert.Nil(t, cp.Detach())

	res, err = h.ClassData("La;")
	require.NoError(t, err)
	cp = res
	raw := cp.Detach()
	require.NotEmpty(t, raw)
	assert.Equal(t, StatusNotFound, res.Status())
	res.Release()
	assert.Equal(t, int64(len(raw)), alloc.Outstanding())
	alloc.Free(raw)
	assert.Equal(t, int64(0), alloc.Outstanding())
}

// TestHandle_Recorder 测试每次操作都会上报
func TestHandle_Recorder(t *testing.T) {
	rec := &recordingRecorder{}
	h, eng := newMockHandle(WithRecorder(rec))
	b := classHolder("La;")
	eng.On("FindClass", mock.Anything).Return(b).Once()
	eng.On("FindClass", mock.Anything).Return(nil)
	eng.On("ReleaseBuilder", b).Return()
	eng.On("AddArchive", "bad.apk", 1).Return(errors.New("boom"))

	res, err := h.FindClass(findClassPayload())
	require.NoError(t, err)
	res.Release()
	_, err = h.FindClass(findClassPayload())
	require.NoError(t, err)
	_ = h.LoadArchive("bad.apk", 1)

	require.Len(t, rec.obs, 3)
	assert.Equal(t, observation{op: "find_class", outcome: "found", size: len(b.FinishedBytes())}, rec.obs[0])
	assert.Equal(t, observation{op: "find_class", outcome: "not_found"}, rec.obs[1])
	assert.Equal(t, observation{op: "load_archive", outcome: "error"}, rec.obs[2])
}

// TestHeapAllocator 测试分配上限
func TestHeapAllocator(t *testing.T) {
	alloc := NewHeapAllocator(10)
	a, err := alloc.Alloc(6)
	require.NoError(t, err)
	assert.Len(t, a, 6)

	_, err = alloc.Alloc(5)
	assert.ErrorIs(t, err, ErrOutOfMemory)

	alloc.Free(a)
	_, err = alloc.Alloc(10)
	assert.NoError(t, err)

	_, err = alloc.Alloc(-1)
	assert.ErrorIs(t, err, ErrOutOfMemory)
}
