package dex

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// File 是解析后的 DEX 文件。ID 区段在 Parse 时完整读取并校验索引范围，
// class_data、code_item、注解等数据区按需读取。
type File struct {
	Header    Header
	Strings   []string
	Types     []uint32 // type_id -> string idx
	Protos    []ProtoID
	Fields    []FieldID
	Methods   []MethodID
	ClassDefs []ClassDef

	data []byte
}

// IsDex 检查数据是否以 DEX magic 开头
func IsDex(data []byte) bool {
	if len(data) < HeaderSize {
		return false
	}
	// dex\n 或 dey\n (compact dex 以外的 dex/odex 变体)
	if data[0] != 'd' || data[1] != 'e' || (data[2] != 'x' && data[2] != 'y') || data[3] != '\n' {
		return false
	}
	return data[7] == 0
}

// Parse 解析 DEX 数据。data 被 File 直接引用，调用方不得再修改。
func Parse(data []byte) (*File, error) {
	if !IsDex(data) {
		return nil, ErrInvalidMagic
	}

	f := &File{data: data}
	if err := binary.Read(bytes.NewReader(data[:HeaderSize]), binary.LittleEndian, &f.Header); err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}
	if f.Header.EndianTag != endianConstant {
		return nil, ErrBigEndian
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"string_ids", f.readStrings},
		{"type_ids", f.readTypes},
		{"proto_ids", f.readProtos},
		{"field_ids", f.readFields},
		{"method_ids", f.readMethods},
		{"class_defs", f.readClassDefs},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return nil, fmt.Errorf("read %s: %w", step.name, err)
		}
	}

	return f, nil
}

// Bytes 返回原始文件内容
func (f *File) Bytes() []byte {
	return f.data
}

func (f *File) readStrings() error {
	c := newCursor(f.data, f.Header.StringIDsOff)
	if !c.fits(f.Header.StringIDsSize, 4) {
		return c.err
	}
	offsets := make([]uint32, f.Header.StringIDsSize)
	for i := range offsets {
		offsets[i] = c.u32()
	}
	if c.err != nil {
		return c.err
	}

	f.Strings = make([]string, len(offsets))
	for i, off := range offsets {
		sc := newCursor(f.data, off)
		sc.uleb() // utf16 长度
		if sc.err != nil {
			return sc.err
		}
		s, err := decodeMUTF8(f.data[sc.off:])
		if err != nil {
			return fmt.Errorf("string %d: %w", i, err)
		}
		f.Strings[i] = s
	}
	return nil
}

func (f *File) readTypes() error {
	c := newCursor(f.data, f.Header.TypeIDsOff)
	if !c.fits(f.Header.TypeIDsSize, 4) {
		return c.err
	}
	f.Types = make([]uint32, f.Header.TypeIDsSize)
	for i := range f.Types {
		f.Types[i] = c.u32()
		if int(f.Types[i]) >= len(f.Strings) {
			return &FormatError{Offset: c.off - 4, Reason: "type descriptor index out of range"}
		}
	}
	return c.err
}

func (f *File) readProtos() error {
	c := newCursor(f.data, f.Header.ProtoIDsOff)
	if !c.fits(f.Header.ProtoIDsSize, 12) {
		return c.err
	}
	f.Protos = make([]ProtoID, f.Header.ProtoIDsSize)
	for i := range f.Protos {
		p := &f.Protos[i]
		p.ShortyIdx = c.u32()
		p.ReturnTypeIdx = c.u32()
		paramsOff := c.u32()
		if c.err != nil {
			return c.err
		}
		if int(p.ReturnTypeIdx) >= len(f.Types) {
			return &FormatError{Offset: c.off - 8, Reason: "return type index out of range"}
		}
		params, err := f.typeList(paramsOff)
		if err != nil {
			return err
		}
		p.Params = params
	}
	return nil
}

// typeList 读取 type_list，off 为 0 时返回 nil
func (f *File) typeList(off uint32) ([]uint32, error) {
	if off == 0 {
		return nil, nil
	}
	c := newCursor(f.data, off)
	size := c.u32()
	if !c.fits(size, 2) {
		return nil, c.err
	}
	out := make([]uint32, size)
	for i := range out {
		out[i] = uint32(c.u16())
		if int(out[i]) >= len(f.Types) {
			return nil, &FormatError{Offset: c.off - 2, Reason: "type list entry out of range"}
		}
	}
	return out, c.err
}

func (f *File) readFields() error {
	c := newCursor(f.data, f.Header.FieldIDsOff)
	if !c.fits(f.Header.FieldIDsSize, 8) {
		return c.err
	}
	f.Fields = make([]FieldID, f.Header.FieldIDsSize)
	for i := range f.Fields {
		fd := &f.Fields[i]
		fd.ClassIdx = c.u16()
		fd.TypeIdx = c.u16()
		fd.NameIdx = c.u32()
		if int(fd.ClassIdx) >= len(f.Types) || int(fd.TypeIdx) >= len(f.Types) || int(fd.NameIdx) >= len(f.Strings) {
			return &FormatError{Offset: c.off - 8, Reason: fmt.Sprintf("field_id %d out of range", i)}
		}
	}
	return c.err
}

func (f *File) readMethods() error {
	c := newCursor(f.data, f.Header.MethodIDsOff)
	if !c.fits(f.Header.MethodIDsSize, 8) {
		return c.err
	}
	f.Methods = make([]MethodID, f.Header.MethodIDsSize)
	for i := range f.Methods {
		m := &f.Methods[i]
		m.ClassIdx = c.u16()
		m.ProtoIdx = c.u16()
		m.NameIdx = c.u32()
		if int(m.ClassIdx) >= len(f.Types) || int(m.ProtoIdx) >= len(f.Protos) || int(m.NameIdx) >= len(f.Strings) {
			return &FormatError{Offset: c.off - 8, Reason: fmt.Sprintf("method_id %d out of range", i)}
		}
	}
	return c.err
}

func (f *File) readClassDefs() error {
	c := newCursor(f.data, f.Header.ClassDefsOff)
	if !c.fits(f.Header.ClassDefsSize, classDefSize) {
		return c.err
	}
	f.ClassDefs = make([]ClassDef, f.Header.ClassDefsSize)
	for i := range f.ClassDefs {
		d := &f.ClassDefs[i]
		d.ClassIdx = c.u32()
		d.AccessFlags = c.u32()
		d.SuperclassIdx = c.u32()
		d.InterfacesOff = c.u32()
		d.SourceFileIdx = c.u32()
		d.AnnotationsOff = c.u32()
		d.ClassDataOff = c.u32()
		d.StaticValuesOff = c.u32()
		if c.err != nil {
			return c.err
		}
		if int(d.ClassIdx) >= len(f.Types) ||
			(d.SuperclassIdx != NoIndex && int(d.SuperclassIdx) >= len(f.Types)) ||
			(d.SourceFileIdx != NoIndex && int(d.SourceFileIdx) >= len(f.Strings)) {
			return &FormatError{Offset: c.off - classDefSize, Reason: fmt.Sprintf("class_def %d out of range", i)}
		}
	}
	return nil
}

// String 返回字符串，越界时返回空串
func (f *File) String(idx uint32) string {
	if int(idx) >= len(f.Strings) {
		return ""
	}
	return f.Strings[idx]
}

// TypeDescriptor 返回类型描述符，例如 "Ljava/lang/String;"
func (f *File) TypeDescriptor(typeIdx uint32) string {
	if int(typeIdx) >= len(f.Types) {
		return ""
	}
	return f.Strings[f.Types[typeIdx]]
}

// Interfaces 返回类实现的接口 type idx
func (f *File) Interfaces(def *ClassDef) ([]uint32, error) {
	return f.typeList(def.InterfacesOff)
}

// SourceFile 返回类的源文件名，未记录时返回空串
func (f *File) SourceFile(def *ClassDef) string {
	if def.SourceFileIdx == NoIndex {
		return ""
	}
	return f.Strings[def.SourceFileIdx]
}

// FieldDescriptor 返回 "Lcom/a/B;->name:I" 形式的字段描述符，idx 必须有效
func (f *File) FieldDescriptor(idx uint32) string {
	fd := f.Fields[idx]
	return f.TypeDescriptor(uint32(fd.ClassIdx)) + "->" + f.Strings[fd.NameIdx] + ":" + f.TypeDescriptor(uint32(fd.TypeIdx))
}

// MethodDescriptor 返回 "Lcom/a/B;->name(I)V" 形式的方法描述符，idx 必须有效
func (f *File) MethodDescriptor(idx uint32) string {
	m := f.Methods[idx]
	return f.TypeDescriptor(uint32(m.ClassIdx)) + "->" + f.Strings[m.NameIdx] + f.ProtoDescriptor(uint32(m.ProtoIdx))
}

// ProtoDescriptor 返回 "(ILjava/lang/String;)V" 形式的原型描述符
func (f *File) ProtoDescriptor(idx uint32) string {
	p := f.Protos[idx]
	var sb bytes.Buffer
	sb.WriteByte('(')
	for _, t := range p.Params {
		sb.WriteString(f.TypeDescriptor(t))
	}
	sb.WriteByte(')')
	sb.WriteString(f.TypeDescriptor(p.ReturnTypeIdx))
	return sb.String()
}

// ClassData 读取类的 class_data_item，无数据时返回空结构
func (f *File) ClassData(def *ClassDef) (*ClassData, error) {
	cd := &ClassData{}
	if def.ClassDataOff == 0 {
		return cd, nil
	}
	c := newCursor(f.data, def.ClassDataOff)
	staticSize := c.uleb()
	instanceSize := c.uleb()
	directSize := c.uleb()
	virtualSize := c.uleb()
	// 每个条目至少 2 或 3 字节
	if !c.fits(staticSize, 2) || !c.fits(instanceSize, 2) || !c.fits(directSize, 3) || !c.fits(virtualSize, 3) {
		return nil, c.err
	}

	cd.StaticFields = f.encodedFields(c, staticSize)
	cd.InstanceFields = f.encodedFields(c, instanceSize)
	cd.DirectMethods = f.encodedMethods(c, directSize)
	cd.VirtualMethods = f.encodedMethods(c, virtualSize)
	if c.err != nil {
		return nil, c.err
	}
	return cd, nil
}

// 字段和方法的索引以与前一项的差值编码
func (f *File) encodedFields(c *cursor, n uint32) []EncodedField {
	out := make([]EncodedField, n)
	var idx uint32
	for i := range out {
		idx += c.uleb()
		out[i] = EncodedField{FieldIdx: idx, AccessFlags: c.uleb()}
		if c.err == nil && int(idx) >= len(f.Fields) {
			c.fail("encoded field index out of range")
		}
	}
	return out
}

func (f *File) encodedMethods(c *cursor, n uint32) []EncodedMethod {
	out := make([]EncodedMethod, n)
	var idx uint32
	for i := range out {
		idx += c.uleb()
		out[i] = EncodedMethod{MethodIdx: idx, AccessFlags: c.uleb(), CodeOff: c.uleb()}
		if c.err == nil && int(idx) >= len(f.Methods) {
			c.fail("encoded method index out of range")
		}
	}
	return out
}

// Code 读取 code_item，off 为 0（abstract/native）时返回 nil
func (f *File) Code(off uint32) (*CodeItem, error) {
	if off == 0 {
		return nil, nil
	}
	c := newCursor(f.data, off)
	ci := &CodeItem{
		RegistersSize: c.u16(),
		InsSize:       c.u16(),
		OutsSize:      c.u16(),
		TriesSize:     c.u16(),
		DebugInfoOff:  c.u32(),
	}
	size := c.u32()
	if !c.fits(size, 2) {
		return nil, c.err
	}
	ci.Insns = make([]uint16, size)
	for i := range ci.Insns {
		ci.Insns[i] = c.u16()
	}
	if c.err != nil {
		return nil, c.err
	}
	return ci, nil
}
