package schema

//go:generate flatc --go --go-namespace schema -o .. dexkit.fbs

import flatbuffers "github.com/google/flatbuffers/go"

// 每种根表的 file_identifier，末位数字为 schema 版本
const (
	FindClassIdentifier                   = "FCL1"
	FindMethodIdentifier                  = "FMT1"
	FindFieldIdentifier                   = "FFD1"
	BatchFindClassUsingStringsIdentifier  = "BCS1"
	BatchFindMethodUsingStringsIdentifier = "BMS1"

	ClassMetaArrayHolderIdentifier                = "CMA1"
	MethodMetaArrayHolderIdentifier               = "MMA1"
	FieldMetaArrayHolderIdentifier                = "FMA1"
	BatchClassMetaArrayHolderIdentifier           = "BCA1"
	BatchMethodMetaArrayHolderIdentifier          = "BMA1"
	AnnotationMetaArrayHolderIdentifier           = "AMA1"
	ParametersAnnotationMetaArrayHolderIdentifier = "PAA1"
	UsingFieldMetaArrayHolderIdentifier           = "UFA1"
)

const (
	identifierLength = 4
	// minBufferSize 为根偏移加 file_identifier 的长度
	minBufferSize = flatbuffers.SizeUOffsetT + identifierLength
)

// BufferHasIdentifier 检查 buf 是否携带指定的 file_identifier
func BufferHasIdentifier(buf []byte, identifier string) bool {
	if len(buf) < minBufferSize {
		return false
	}
	return string(buf[flatbuffers.SizeUOffsetT:minBufferSize]) == identifier
}

// RootInBounds 检查根偏移是否落在 buf 内
func RootInBounds(buf []byte) bool {
	if len(buf) < minBufferSize {
		return false
	}
	root := flatbuffers.GetUOffsetT(buf)
	return int(root) >= minBufferSize && int(root)+flatbuffers.SizeSOffsetT <= len(buf)
}
