// Package dextest 以编程方式生成 DEX 文件，供测试构造输入使用
package dextest

import "github.com/apk-analysis/dexkit-go/internal/dex"

type FieldRef struct {
	Class string
	Name  string
	Type  string
}

type MethodRef struct {
	Class  string
	Name   string
	Params []string
	Return string
}

type Class struct {
	Descriptor  string
	AccessFlags uint32
	Super       string // 为空时使用 Ljava/lang/Object;
	Interfaces  []string
	SourceFile  string
	Annotations []Annotation
	Fields      []Field
	Methods     []Method
}

type Field struct {
	Name        string
	Type        string
	AccessFlags uint32
	Annotations []Annotation
}

type Method struct {
	Name        string
	Params      []string
	Return      string
	AccessFlags uint32
	Code        []Insn
	// ParamNames 为 nil 时不生成调试信息，元素为 nil 表示参数名缺失
	ParamNames       []*string
	Annotations      []Annotation
	ParamAnnotations [][]Annotation
}

func (m *Method) hasCode() bool {
	return m.Code != nil || m.ParamNames != nil
}

func (m *Method) direct() bool {
	return m.AccessFlags&(dex.AccStatic|dex.AccPrivate|dex.AccConstructor) != 0
}

type Annotation struct {
	Type       string
	Visibility uint8
	Elements   []Element
}

type Element struct {
	Name  string
	Value Value
}

// Value 是注解元素值
type Value struct {
	kind  dex.ValueType
	i     int64
	f     float64
	s     string
	field *FieldRef
	arr   []Value
	ann   *Annotation
}

func Int(v int32) Value { return Value{kind: dex.ValueInt, i: int64(v)} }
func Long(v int64) Value { return Value{kind: dex.ValueLong, i: v} }
func Double(v float64) Value { return Value{kind: dex.ValueDouble, f: v} }
func String(s string) Value { return Value{kind: dex.ValueString, s: s} }
func Type(desc string) Value { return Value{kind: dex.ValueTypeRef, s: desc} }
func Enum(f FieldRef) Value { return Value{kind: dex.ValueEnum, field: &f} }
func Array(vs ...Value) Value { return Value{kind: dex.ValueArray, arr: vs} }
func Nested(a Annotation) Value { return Value{kind: dex.ValueAnnotation, ann: &a} }
func Null() Value { return Value{kind: dex.ValueNull} }
func Bool(b bool) Value {
	v := Value{kind: dex.ValueBoolean}
	if b {
		v.i = 1
	}
	return v
}

// Insn 是一条待编码的指令
type Insn struct {
	op     uint8
	a, b   uint8
	str    string
	method *MethodRef
	field  *FieldRef
	raw    []uint16
}

func ConstString(reg uint8, s string) Insn {
	return Insn{op: dex.OpConstString, a: reg, str: s}
}

func ConstStringJumbo(reg uint8, s string) Insn {
	return Insn{op: dex.OpConstStringJumbo, a: reg, str: s}
}

func InvokeVirtual(m MethodRef) Insn { return Insn{op: dex.OpInvokeVirtual, method: &m} }
func InvokeDirect(m MethodRef) Insn { return Insn{op: dex.OpInvokeDirect, method: &m} }
func InvokeStatic(m MethodRef) Insn { return Insn{op: dex.OpInvokeStatic, method: &m} }
func InvokeInterface(m MethodRef) Insn { return Insn{op: dex.OpInvokeInterface, method: &m} }

func IGet(reg, obj uint8, f FieldRef) Insn { return Insn{op: dex.OpIGet, a: reg, b: obj, field: &f} }
func IPut(reg, obj uint8, f FieldRef) Insn { return Insn{op: dex.OpIPut, a: reg, b: obj, field: &f} }
func SGet(reg uint8, f FieldRef) Insn { return Insn{op: dex.OpSGet, a: reg, field: &f} }
func SPut(reg uint8, f FieldRef) Insn { return Insn{op: dex.OpSPut, a: reg, field: &f} }

func ReturnVoid() Insn { return Insn{op: dex.OpReturnVoid} }
func Nop() Insn { return Insn{op: dex.OpNop} }

// Raw 直接写入 code unit，用于构造 payload 等特殊指令
func Raw(units ...uint16) Insn { return Insn{raw: units} }

// Name 返回指向 s 的指针，便于填写 ParamNames
func Name(s string) *string { return &s }
