package dex

import (
	"encoding/binary"
	"math"
)

// ValueType 是 encoded_value 的类型标记
type ValueType uint8

const (
	ValueByte         ValueType = 0x00
	ValueShort        ValueType = 0x02
	ValueChar         ValueType = 0x03
	ValueInt          ValueType = 0x04
	ValueLong         ValueType = 0x06
	ValueFloat        ValueType = 0x10
	ValueDouble       ValueType = 0x11
	ValueMethodType   ValueType = 0x15
	ValueMethodHandle ValueType = 0x16
	ValueString       ValueType = 0x17
	ValueTypeRef      ValueType = 0x18
	ValueField        ValueType = 0x19
	ValueMethod       ValueType = 0x1a
	ValueEnum         ValueType = 0x1b
	ValueArray        ValueType = 0x1c
	ValueAnnotation   ValueType = 0x1d
	ValueNull         ValueType = 0x1e
	ValueBoolean      ValueType = 0x1f
)

// 注解可见性
const (
	VisibilityBuild   uint8 = 0x00
	VisibilityRuntime uint8 = 0x01
	VisibilitySystem  uint8 = 0x02
)

// EncodedValue 是解码后的 encoded_value。
// 整数类型与各类索引保存在 Int 中，浮点保存在 Float 中。
type EncodedValue struct {
	Type       ValueType
	Int        int64
	Float      float64
	Bool       bool
	Array      []EncodedValue
	Annotation *Annotation
}

type AnnotationElement struct {
	NameIdx uint32
	Value   EncodedValue
}

type Annotation struct {
	Visibility uint8
	TypeIdx    uint32
	Elements   []AnnotationElement
}

// AnnotationsDirectory 对应 annotations_directory_item
type AnnotationsDirectory struct {
	Class      []Annotation
	Fields     map[uint32][]Annotation   // field idx
	Methods    map[uint32][]Annotation   // method idx
	Parameters map[uint32][][]Annotation // method idx -> 每个参数的注解
}

// Annotations 读取类的注解目录，无注解时返回空目录
func (f *File) Annotations(def *ClassDef) (*AnnotationsDirectory, error) {
	dir := &AnnotationsDirectory{
		Fields:     map[uint32][]Annotation{},
		Methods:    map[uint32][]Annotation{},
		Parameters: map[uint32][][]Annotation{},
	}
	if def.AnnotationsOff == 0 {
		return dir, nil
	}

	c := newCursor(f.data, def.AnnotationsOff)
	classOff := c.u32()
	fieldsSize := c.u32()
	methodsSize := c.u32()
	paramsSize := c.u32()
	if !c.fits(fieldsSize, 8) || !c.fits(methodsSize, 8) || !c.fits(paramsSize, 8) {
		return nil, c.err
	}

	var err error
	if dir.Class, err = f.annotationSet(classOff); err != nil {
		return nil, err
	}
	for i := uint32(0); i < fieldsSize; i++ {
		idx, off := c.u32(), c.u32()
		if c.err != nil {
			return nil, c.err
		}
		if dir.Fields[idx], err = f.annotationSet(off); err != nil {
			return nil, err
		}
	}
	for i := uint32(0); i < methodsSize; i++ {
		idx, off := c.u32(), c.u32()
		if c.err != nil {
			return nil, c.err
		}
		if dir.Methods[idx], err = f.annotationSet(off); err != nil {
			return nil, err
		}
	}
	for i := uint32(0); i < paramsSize; i++ {
		idx, off := c.u32(), c.u32()
		if c.err != nil {
			return nil, c.err
		}
		if dir.Parameters[idx], err = f.annotationSetRefList(off); err != nil {
			return nil, err
		}
	}
	return dir, nil
}

func (f *File) annotationSetRefList(off uint32) ([][]Annotation, error) {
	c := newCursor(f.data, off)
	size := c.u32()
	if !c.fits(size, 4) {
		return nil, c.err
	}
	out := make([][]Annotation, size)
	for i := range out {
		setOff := c.u32()
		if c.err != nil {
			return nil, c.err
		}
		set, err := f.annotationSet(setOff)
		if err != nil {
			return nil, err
		}
		out[i] = set
	}
	return out, nil
}

func (f *File) annotationSet(off uint32) ([]Annotation, error) {
	if off == 0 {
		return nil, nil
	}
	c := newCursor(f.data, off)
	size := c.u32()
	if !c.fits(size, 4) {
		return nil, c.err
	}
	out := make([]Annotation, 0, size)
	for i := uint32(0); i < size; i++ {
		itemOff := c.u32()
		if c.err != nil {
			return nil, c.err
		}
		ic := newCursor(f.data, itemOff)
		visibility := ic.u8()
		a := f.encodedAnnotation(ic, 0)
		if ic.err != nil {
			return nil, ic.err
		}
		a.Visibility = visibility
		out = append(out, *a)
	}
	return out, nil
}

func (f *File) encodedAnnotation(c *cursor, depth int) *Annotation {
	a := &Annotation{TypeIdx: c.uleb()}
	size := c.uleb()
	if !c.fits(size, 2) {
		return a
	}
	a.Elements = make([]AnnotationElement, 0, size)
	for i := uint32(0); i < size && c.err == nil; i++ {
		name := c.uleb()
		a.Elements = append(a.Elements, AnnotationElement{NameIdx: name, Value: f.encodedValue(c, depth+1)})
	}
	return a
}

func (f *File) encodedValue(c *cursor, depth int) EncodedValue {
	if depth > maxEncodedDepth {
		c.fail("encoded value nested too deep")
		return EncodedValue{}
	}
	head := c.u8()
	v := EncodedValue{Type: ValueType(head & 0x1f)}
	arg := int(head >> 5)

	switch v.Type {
	case ValueByte, ValueShort, ValueInt, ValueLong:
		v.Int = signExtend(c.bytes(arg+1))
	case ValueChar, ValueMethodType, ValueMethodHandle, ValueString, ValueTypeRef,
		ValueField, ValueMethod, ValueEnum:
		v.Int = int64(zeroExtend(c.bytes(arg + 1)))
	case ValueFloat:
		if arg > 3 {
			c.fail("float value too wide")
			return v
		}
		// 浮点数据为右侧补零的高位字节
		bits := zeroExtend(c.bytes(arg+1)) << (8 * (3 - arg))
		v.Float = float64(math.Float32frombits(uint32(bits)))
	case ValueDouble:
		bits := zeroExtend(c.bytes(arg+1)) << (8 * (7 - arg))
		v.Float = math.Float64frombits(bits)
	case ValueArray:
		size := c.uleb()
		if !c.fits(size, 1) {
			return v
		}
		v.Array = make([]EncodedValue, 0, size)
		for i := uint32(0); i < size && c.err == nil; i++ {
			v.Array = append(v.Array, f.encodedValue(c, depth+1))
		}
	case ValueAnnotation:
		v.Annotation = f.encodedAnnotation(c, depth+1)
	case ValueNull:
	case ValueBoolean:
		v.Bool = arg != 0
	default:
		c.fail("unknown encoded value type")
	}
	return v
}

func zeroExtend(b []byte) uint64 {
	var buf [8]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:])
}

func signExtend(b []byte) int64 {
	if len(b) == 0 {
		return 0
	}
	v := zeroExtend(b)
	shift := uint(64 - 8*len(b))
	return int64(v<<shift) >> shift
}
