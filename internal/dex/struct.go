// Package dex 解析 DEX 文件。格式参考
// https://source.android.com/docs/core/runtime/dex-format
package dex

import (
	"errors"
	"fmt"
)

const (
	HeaderSize      = 0x70
	classDefSize    = 32
	endianConstant  = 0x12345678
	NoIndex         = 0xffffffff
	maxEncodedDepth = 32
)

var (
	ErrInvalidMagic = errors.New("dex: invalid magic")
	ErrBigEndian    = errors.New("dex: big endian files are not supported")
	ErrTruncated    = errors.New("dex: truncated data")
)

// FormatError 描述文件中某个偏移处的结构错误
type FormatError struct {
	Offset int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dex: %s at offset 0x%x", e.Reason, e.Offset)
}

func (e *FormatError) Unwrap() error {
	return ErrTruncated
}

// Header 对应 header_item，字段顺序与文件一致以便 binary.Read 填充
type Header struct {
	Magic         [8]byte
	Checksum      uint32
	Signature     [20]byte
	FileSize      uint32
	HeaderSize    uint32
	EndianTag     uint32
	LinkSize      uint32
	LinkOff       uint32
	MapOff        uint32
	StringIDsSize uint32
	StringIDsOff  uint32
	TypeIDsSize   uint32
	TypeIDsOff    uint32
	ProtoIDsSize  uint32
	ProtoIDsOff   uint32
	FieldIDsSize  uint32
	FieldIDsOff   uint32
	MethodIDsSize uint32
	MethodIDsOff  uint32
	ClassDefsSize uint32
	ClassDefsOff  uint32
	DataSize      uint32
	DataOff       uint32
}

// Version 返回 magic 中的三位版本号，例如 "035"
func (h *Header) Version() string {
	return string(h.Magic[4:7])
}

type ProtoID struct {
	ShortyIdx     uint32
	ReturnTypeIdx uint32
	Params        []uint32 // type idx
}

type FieldID struct {
	ClassIdx uint16
	TypeIdx  uint16
	NameIdx  uint32
}

type MethodID struct {
	ClassIdx uint16
	ProtoIdx uint16
	NameIdx  uint32
}

type ClassDef struct {
	ClassIdx        uint32
	AccessFlags     uint32
	SuperclassIdx   uint32
	InterfacesOff   uint32
	SourceFileIdx   uint32
	AnnotationsOff  uint32
	ClassDataOff    uint32
	StaticValuesOff uint32
}

type EncodedField struct {
	FieldIdx    uint32
	AccessFlags uint32
}

type EncodedMethod struct {
	MethodIdx   uint32
	AccessFlags uint32
	CodeOff     uint32
}

// ClassData 对应 class_data_item，索引已由差值还原为绝对值
type ClassData struct {
	StaticFields   []EncodedField
	InstanceFields []EncodedField
	DirectMethods  []EncodedMethod
	VirtualMethods []EncodedMethod
}

// Methods 按 direct、virtual 顺序返回全部方法
func (c *ClassData) Methods() []EncodedMethod {
	out := make([]EncodedMethod, 0, len(c.DirectMethods)+len(c.VirtualMethods))
	out = append(out, c.DirectMethods...)
	return append(out, c.VirtualMethods...)
}

// Fields 按 static、instance 顺序返回全部字段
func (c *ClassData) Fields() []EncodedField {
	out := make([]EncodedField, 0, len(c.StaticFields)+len(c.InstanceFields))
	out = append(out, c.StaticFields...)
	return append(out, c.InstanceFields...)
}

type CodeItem struct {
	RegistersSize uint16
	InsSize       uint16
	OutsSize      uint16
	TriesSize     uint16
	DebugInfoOff  uint32
	Insns         []uint16
}
