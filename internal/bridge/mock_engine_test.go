package bridge

import (
	"github.com/apk-analysis/dexkit-go/internal/query"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/mock"
)

// MockEngine Mock Engine
type MockEngine struct {
	mock.Mock
}

func builderArg(args mock.Arguments) *flatbuffers.Builder {
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*flatbuffers.Builder)
}

func (m *MockEngine) AddArchive(path string, unzipThreads int) error {
	return m.Called(path, unzipThreads).Error(0)
}

func (m *MockEngine) SetThreadNum(n int) {
	m.Called(n)
}

func (m *MockEngine) InitFullCache() error {
	return m.Called().Error(0)
}

func (m *MockEngine) DexNum() int {
	return m.Called().Int(0)
}

func (m *MockEngine) ExportDexFiles(dir string) error {
	return m.Called(dir).Error(0)
}

func (m *MockEngine) FindClass(q *query.FindClass) *flatbuffers.Builder {
	return builderArg(m.Called(q))
}

func (m *MockEngine) FindMethod(q *query.FindMethod) *flatbuffers.Builder {
	return builderArg(m.Called(q))
}

func (m *MockEngine) FindField(q *query.FindField) *flatbuffers.Builder {
	return builderArg(m.Called(q))
}

func (m *MockEngine) BatchFindClassUsingStrings(q *query.BatchFindClassUsingStrings) *flatbuffers.Builder {
	return builderArg(m.Called(q))
}

func (m *MockEngine) BatchFindMethodUsingStrings(q *query.BatchFindMethodUsingStrings) *flatbuffers.Builder {
	return builderArg(m.Called(q))
}

func (m *MockEngine) ClassData(descriptor string) *flatbuffers.Builder {
	return builderArg(m.Called(descriptor))
}

func (m *MockEngine) MethodData(descriptor string) *flatbuffers.Builder {
	return builderArg(m.Called(descriptor))
}

func (m *MockEngine) FieldData(descriptor string) *flatbuffers.Builder {
	return builderArg(m.Called(descriptor))
}

func (m *MockEngine) ClassesByIDs(ids []int64) *flatbuffers.Builder {
	return builderArg(m.Called(ids))
}

func (m *MockEngine) MethodsByIDs(ids []int64) *flatbuffers.Builder {
	return builderArg(m.Called(ids))
}

func (m *MockEngine) FieldsByIDs(ids []int64) *flatbuffers.Builder {
	return builderArg(m.Called(ids))
}

func (m *MockEngine) ClassAnnotations(id int64) *flatbuffers.Builder {
	return builderArg(m.Called(id))
}

func (m *MockEngine) FieldAnnotations(id int64) *flatbuffers.Builder {
	return builderArg(m.Called(id))
}

func (m *MockEngine) MethodAnnotations(id int64) *flatbuffers.Builder {
	return builderArg(m.Called(id))
}

func (m *MockEngine) ParameterAnnotations(id int64) *flatbuffers.Builder {
	return builderArg(m.Called(id))
}

func (m *MockEngine) FieldReaders(id int64) *flatbuffers.Builder {
	return builderArg(m.Called(id))
}

func (m *MockEngine) FieldWriters(id int64) *flatbuffers.Builder {
	return builderArg(m.Called(id))
}

func (m *MockEngine) CallerMethods(id int64) *flatbuffers.Builder {
	return builderArg(m.Called(id))
}

func (m *MockEngine) InvokeMethods(id int64) *flatbuffers.Builder {
	return builderArg(m.Called(id))
}

func (m *MockEngine) MethodUsingFields(id int64) *flatbuffers.Builder {
	return builderArg(m.Called(id))
}

func (m *MockEngine) ParameterNames(id int64) []*string {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*string)
}

func (m *MockEngine) MethodUsingStrings(id int64) []string {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockEngine) MethodOpCodes(id int64) []byte {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]byte)
}

func (m *MockEngine) ReleaseBuilder(b *flatbuffers.Builder) {
	m.Called(b)
}
