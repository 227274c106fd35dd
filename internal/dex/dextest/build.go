package dextest

import (
	"encoding/binary"
	"fmt"
	"hash/adler32"
	"math"
	"sort"
	"strings"

	"github.com/apk-analysis/dexkit-go/internal/dex"
)

const objectDescriptor = "Ljava/lang/Object;"

type protoKey struct {
	ret    string
	params string
}

type builder struct {
	classes []Class

	strings map[string]uint32
	types   map[string]uint32
	protos  map[protoKey]uint32
	fields  map[FieldRef]uint32
	methods map[string]uint32

	stringList []string
	typeList   []string
	protoList  []protoKey
	fieldList  []FieldRef
	methodList []MethodRef

	data     []byte
	dataOff  uint32
	typeLsts map[string]uint32
}

// Build 生成包含给定类的 DEX 文件
func Build(classes ...Class) []byte {
	b := &builder{
		classes:  classes,
		strings:  map[string]uint32{},
		types:    map[string]uint32{},
		protos:   map[protoKey]uint32{},
		fields:   map[FieldRef]uint32{},
		methods:  map[string]uint32{},
		typeLsts: map[string]uint32{},
	}
	b.collect()
	b.index()
	return b.emit()
}

func methodKey(m MethodRef) string {
	return m.Class + "->" + m.Name + "(" + strings.Join(m.Params, "") + ")" + m.Return
}

func superOf(c *Class) string {
	if c.Super == "" {
		return objectDescriptor
	}
	return c.Super
}

func (b *builder) addString(s string) { b.strings[s] = 0 }

func (b *builder) addType(t string) {
	b.types[t] = 0
	b.addString(t)
}

func (b *builder) addProto(ret string, params []string) {
	b.addType(ret)
	for _, p := range params {
		b.addType(p)
	}
	b.addString(shorty(ret, params))
	b.protos[protoKey{ret, strings.Join(params, "")}] = 0
}

func (b *builder) addField(f FieldRef) {
	b.addType(f.Class)
	b.addType(f.Type)
	b.addString(f.Name)
	b.fields[f] = 0
}

func (b *builder) addMethod(m MethodRef) {
	b.addType(m.Class)
	b.addString(m.Name)
	b.addProto(m.Return, m.Params)
	if _, ok := b.methods[methodKey(m)]; !ok {
		b.methods[methodKey(m)] = 0
		b.methodList = append(b.methodList, m)
	}
}

func (b *builder) addAnnotation(a Annotation) {
	b.addType(a.Type)
	for _, e := range a.Elements {
		b.addString(e.Name)
		b.addValue(e.Value)
	}
}

func (b *builder) addValue(v Value) {
	switch v.kind {
	case dex.ValueString:
		b.addString(v.s)
	case dex.ValueTypeRef:
		b.addType(v.s)
	case dex.ValueEnum:
		b.addField(*v.field)
	case dex.ValueArray:
		for _, e := range v.arr {
			b.addValue(e)
		}
	case dex.ValueAnnotation:
		b.addAnnotation(*v.ann)
	}
}

func (b *builder) collect() {
	for i := range b.classes {
		c := &b.classes[i]
		b.addType(c.Descriptor)
		b.addType(superOf(c))
		for _, itf := range c.Interfaces {
			b.addType(itf)
		}
		if c.SourceFile != "" {
			b.addString(c.SourceFile)
		}
		for _, a := range c.Annotations {
			b.addAnnotation(a)
		}
		for _, f := range c.Fields {
			b.addField(FieldRef{Class: c.Descriptor, Name: f.Name, Type: f.Type})
			for _, a := range f.Annotations {
				b.addAnnotation(a)
			}
		}
		for _, m := range c.Methods {
			b.addMethod(MethodRef{Class: c.Descriptor, Name: m.Name, Params: m.Params, Return: m.Return})
			for _, a := range m.Annotations {
				b.addAnnotation(a)
			}
			for _, set := range m.ParamAnnotations {
				for _, a := range set {
					b.addAnnotation(a)
				}
			}
			for _, n := range m.ParamNames {
				if n != nil {
					b.addString(*n)
				}
			}
			for _, ins := range m.Code {
				switch {
				case ins.method != nil:
					b.addMethod(*ins.method)
				case ins.field != nil:
					b.addField(*ins.field)
				case ins.op == dex.OpConstString || ins.op == dex.OpConstStringJumbo:
					b.addString(ins.str)
				}
			}
		}
	}
}

func (b *builder) index() {
	for s := range b.strings {
		b.stringList = append(b.stringList, s)
	}
	sort.Strings(b.stringList)
	for i, s := range b.stringList {
		b.strings[s] = uint32(i)
	}

	for t := range b.types {
		b.typeList = append(b.typeList, t)
	}
	sort.Strings(b.typeList)
	for i, t := range b.typeList {
		b.types[t] = uint32(i)
	}

	for p := range b.protos {
		b.protoList = append(b.protoList, p)
	}
	sort.Slice(b.protoList, func(i, j int) bool {
		x, y := b.protoList[i], b.protoList[j]
		if x.ret != y.ret {
			return b.types[x.ret] < b.types[y.ret]
		}
		return x.params < y.params
	})
	for i, p := range b.protoList {
		b.protos[p] = uint32(i)
	}

	for f := range b.fields {
		b.fieldList = append(b.fieldList, f)
	}
	sort.Slice(b.fieldList, func(i, j int) bool {
		x, y := b.fieldList[i], b.fieldList[j]
		if x.Class != y.Class {
			return b.types[x.Class] < b.types[y.Class]
		}
		if x.Name != y.Name {
			return b.strings[x.Name] < b.strings[y.Name]
		}
		return b.types[x.Type] < b.types[y.Type]
	})
	for i, f := range b.fieldList {
		b.fields[f] = uint32(i)
	}

	sort.Slice(b.methodList, func(i, j int) bool {
		x, y := b.methodList[i], b.methodList[j]
		if x.Class != y.Class {
			return b.types[x.Class] < b.types[y.Class]
		}
		if x.Name != y.Name {
			return b.strings[x.Name] < b.strings[y.Name]
		}
		return b.protoIdx(x) < b.protoIdx(y)
	})
	for i, m := range b.methodList {
		b.methods[methodKey(m)] = uint32(i)
	}
}

func (b *builder) protoIdx(m MethodRef) uint32 {
	return b.protos[protoKey{m.Return, strings.Join(m.Params, "")}]
}

func (b *builder) fieldIdx(f FieldRef) uint32 { return b.fields[f] }

func (b *builder) methodIdx(m MethodRef) uint32 { return b.methods[methodKey(m)] }

func shorty(ret string, params []string) string {
	short := func(t string) byte {
		if t[0] == '[' || t[0] == 'L' {
			return 'L'
		}
		return t[0]
	}
	out := []byte{short(ret)}
	for _, p := range params {
		out = append(out, short(p))
	}
	return string(out)
}

// 数据区写入辅助
func (b *builder) pos() uint32 { return b.dataOff + uint32(len(b.data)) }

func (b *builder) align4() {
	for len(b.data)%4 != 0 {
		b.data = append(b.data, 0)
	}
}

func (b *builder) u8(v uint8) { b.data = append(b.data, v) }

func (b *builder) u16(v uint16) { b.data = binary.LittleEndian.AppendUint16(b.data, v) }

func (b *builder) u32(v uint32) { b.data = binary.LittleEndian.AppendUint32(b.data, v) }

func (b *builder) uleb(v uint32) { b.data = appendULEB(b.data, v) }

func appendULEB(out []byte, v uint32) []byte {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(out, c)
		}
		out = append(out, c|0x80)
	}
}

func (b *builder) typeListOff(types []string) uint32 {
	if len(types) == 0 {
		return 0
	}
	key := strings.Join(types, "")
	if off, ok := b.typeLsts[key]; ok {
		return off
	}
	b.align4()
	off := b.pos()
	b.u32(uint32(len(types)))
	for _, t := range types {
		b.u16(uint16(b.types[t]))
	}
	b.typeLsts[key] = off
	return off
}

func (b *builder) encodeInsns(code []Insn) []uint16 {
	var units []uint16
	for _, ins := range code {
		if ins.raw != nil {
			units = append(units, ins.raw...)
			continue
		}
		op := uint16(ins.op)
		switch {
		case ins.op == dex.OpConstString:
			units = append(units, op|uint16(ins.a)<<8, uint16(b.strings[ins.str]))
		case ins.op == dex.OpConstStringJumbo:
			idx := b.strings[ins.str]
			units = append(units, op|uint16(ins.a)<<8, uint16(idx), uint16(idx>>16))
		case ins.method != nil:
			units = append(units, op, uint16(b.methodIdx(*ins.method)), 0)
		case ins.field != nil && ins.op >= dex.OpSGet:
			units = append(units, op|uint16(ins.a)<<8, uint16(b.fieldIdx(*ins.field)))
		case ins.field != nil:
			units = append(units, op|uint16(ins.b&0xf)<<12|uint16(ins.a&0xf)<<8, uint16(b.fieldIdx(*ins.field)))
		default:
			units = append(units, op)
		}
	}
	return units
}

func (b *builder) writeValue(v Value) {
	header := func(arg int) { b.u8(uint8(arg)<<5 | uint8(v.kind)) }
	index := func(idx uint32) {
		header(3)
		b.u32(idx)
	}
	switch v.kind {
	case dex.ValueInt:
		header(3)
		b.u32(uint32(v.i))
	case dex.ValueLong:
		header(7)
		b.data = binary.LittleEndian.AppendUint64(b.data, uint64(v.i))
	case dex.ValueDouble:
		header(7)
		b.data = binary.LittleEndian.AppendUint64(b.data, math.Float64bits(v.f))
	case dex.ValueString:
		index(b.strings[v.s])
	case dex.ValueTypeRef:
		index(b.types[v.s])
	case dex.ValueEnum:
		index(b.fieldIdx(*v.field))
	case dex.ValueArray:
		header(0)
		b.uleb(uint32(len(v.arr)))
		for _, e := range v.arr {
			b.writeValue(e)
		}
	case dex.ValueAnnotation:
		header(0)
		b.writeEncodedAnnotation(*v.ann)
	case dex.ValueNull:
		header(0)
	case dex.ValueBoolean:
		header(int(v.i))
	default:
		panic(fmt.Sprintf("dextest: unsupported value kind 0x%x", v.kind))
	}
}

func (b *builder) writeEncodedAnnotation(a Annotation) {
	b.uleb(b.types[a.Type])
	b.uleb(uint32(len(a.Elements)))
	elems := append([]Element(nil), a.Elements...)
	sort.SliceStable(elems, func(i, j int) bool { return b.strings[elems[i].Name] < b.strings[elems[j].Name] })
	for _, e := range elems {
		b.uleb(b.strings[e.Name])
		b.writeValue(e.Value)
	}
}

// annotationSetOff 写入注解及注解集合，返回集合偏移
func (b *builder) annotationSetOff(set []Annotation) uint32 {
	if len(set) == 0 {
		return 0
	}
	items := make([]uint32, len(set))
	for i, a := range set {
		items[i] = b.pos()
		b.u8(a.Visibility)
		b.writeEncodedAnnotation(a)
	}
	b.align4()
	off := b.pos()
	b.u32(uint32(len(items)))
	for _, it := range items {
		b.u32(it)
	}
	return off
}

type annotatedMember struct {
	idx uint32
	off uint32
}

func (b *builder) annotationsDirectory(c *Class) uint32 {
	classOff := b.annotationSetOff(c.Annotations)

	var fields, methods, params []annotatedMember
	for _, f := range c.Fields {
		if off := b.annotationSetOff(f.Annotations); off != 0 {
			fields = append(fields, annotatedMember{b.fieldIdx(FieldRef{c.Descriptor, f.Name, f.Type}), off})
		}
	}
	for _, m := range c.Methods {
		idx := b.methodIdx(MethodRef{c.Descriptor, m.Name, m.Params, m.Return})
		if off := b.annotationSetOff(m.Annotations); off != 0 {
			methods = append(methods, annotatedMember{idx, off})
		}
		if len(m.ParamAnnotations) > 0 {
			sets := make([]uint32, len(m.ParamAnnotations))
			for i, set := range m.ParamAnnotations {
				sets[i] = b.annotationSetOff(set)
			}
			b.align4()
			off := b.pos()
			b.u32(uint32(len(sets)))
			for _, s := range sets {
				b.u32(s)
			}
			params = append(params, annotatedMember{idx, off})
		}
	}
	if classOff == 0 && len(fields) == 0 && len(methods) == 0 && len(params) == 0 {
		return 0
	}

	byIdx := func(ms []annotatedMember) {
		sort.Slice(ms, func(i, j int) bool { return ms[i].idx < ms[j].idx })
	}
	byIdx(fields)
	byIdx(methods)
	byIdx(params)

	b.align4()
	off := b.pos()
	b.u32(classOff)
	b.u32(uint32(len(fields)))
	b.u32(uint32(len(methods)))
	b.u32(uint32(len(params)))
	for _, list := range [][]annotatedMember{fields, methods, params} {
		for _, m := range list {
			b.u32(m.idx)
			b.u32(m.off)
		}
	}
	return off
}

func (b *builder) debugInfo(names []*string) uint32 {
	off := b.pos()
	b.uleb(1) // line_start
	b.uleb(uint32(len(names)))
	for _, n := range names {
		if n == nil {
			b.uleb(0)
		} else {
			b.uleb(b.strings[*n] + 1)
		}
	}
	b.u8(0) // DBG_END_SEQUENCE
	return off
}

func (b *builder) codeItem(m *Method) uint32 {
	var debugOff uint32
	if m.ParamNames != nil {
		debugOff = b.debugInfo(m.ParamNames)
	}
	insns := b.encodeInsns(m.Code)
	b.align4()
	off := b.pos()
	b.u16(4) // registers_size
	b.u16(0) // ins_size
	b.u16(0) // outs_size
	b.u16(0) // tries_size
	b.u32(debugOff)
	b.u32(uint32(len(insns)))
	for _, u := range insns {
		b.u16(u)
	}
	return off
}

type encodedMember struct {
	idx    uint32
	flags  uint32
	code   uint32
	method bool
}

func (b *builder) classData(c *Class, codeOffs map[string]uint32) uint32 {
	var static, instance, direct, virtual []encodedMember
	for _, f := range c.Fields {
		em := encodedMember{idx: b.fieldIdx(FieldRef{c.Descriptor, f.Name, f.Type}), flags: f.AccessFlags}
		if f.AccessFlags&dex.AccStatic != 0 {
			static = append(static, em)
		} else {
			instance = append(instance, em)
		}
	}
	for i := range c.Methods {
		m := &c.Methods[i]
		ref := MethodRef{c.Descriptor, m.Name, m.Params, m.Return}
		em := encodedMember{idx: b.methodIdx(ref), flags: m.AccessFlags, code: codeOffs[methodKey(ref)], method: true}
		if m.direct() {
			direct = append(direct, em)
		} else {
			virtual = append(virtual, em)
		}
	}
	if len(static)+len(instance)+len(direct)+len(virtual) == 0 {
		return 0
	}

	off := b.pos()
	b.uleb(uint32(len(static)))
	b.uleb(uint32(len(instance)))
	b.uleb(uint32(len(direct)))
	b.uleb(uint32(len(virtual)))
	for _, list := range [][]encodedMember{static, instance, direct, virtual} {
		sort.Slice(list, func(i, j int) bool { return list[i].idx < list[j].idx })
		var prev uint32
		for _, em := range list {
			b.uleb(em.idx - prev)
			prev = em.idx
			b.uleb(em.flags)
			if em.method {
				b.uleb(em.code)
			}
		}
	}
	return off
}

func (b *builder) emit() []byte {
	ns, nt, np := len(b.stringList), len(b.typeList), len(b.protoList)
	nf, nm, nc := len(b.fieldList), len(b.methodList), len(b.classes)

	stringIDsOff := uint32(dex.HeaderSize)
	typeIDsOff := stringIDsOff + uint32(4*ns)
	protoIDsOff := typeIDsOff + uint32(4*nt)
	fieldIDsOff := protoIDsOff + uint32(12*np)
	methodIDsOff := fieldIDsOff + uint32(8*nf)
	classDefsOff := methodIDsOff + uint32(8*nm)
	b.dataOff = classDefsOff + uint32(32*nc)

	// string_data_item
	stringOffs := make([]uint32, ns)
	for i, s := range b.stringList {
		stringOffs[i] = b.pos()
		enc, units := dex.EncodeMUTF8(s)
		b.uleb(uint32(units))
		b.data = append(b.data, enc...)
		b.u8(0)
	}

	protoParamOffs := make([]uint32, np)
	for i, p := range b.protoList {
		params, _ := dex.SplitParams(p.params)
		protoParamOffs[i] = b.typeListOff(params)
	}

	codeOffs := map[string]uint32{}
	for i := range b.classes {
		c := &b.classes[i]
		for j := range c.Methods {
			m := &c.Methods[j]
			if m.hasCode() {
				codeOffs[methodKey(MethodRef{c.Descriptor, m.Name, m.Params, m.Return})] = b.codeItem(m)
			}
		}
	}

	type classOffsets struct{ interfaces, annotations, data uint32 }
	offs := make([]classOffsets, nc)
	for i := range b.classes {
		c := &b.classes[i]
		offs[i].interfaces = b.typeListOff(c.Interfaces)
		offs[i].annotations = b.annotationsDirectory(c)
		offs[i].data = b.classData(c, codeOffs)
	}
	b.align4()

	out := make([]byte, b.dataOff, int(b.dataOff)+len(b.data))
	le := binary.LittleEndian
	copy(out, "dex\n035\x00")
	le.PutUint32(out[0x24:], dex.HeaderSize)
	le.PutUint32(out[0x28:], 0x12345678)
	le.PutUint32(out[0x38:], uint32(ns))
	le.PutUint32(out[0x3c:], stringIDsOff)
	le.PutUint32(out[0x40:], uint32(nt))
	le.PutUint32(out[0x44:], typeIDsOff)
	le.PutUint32(out[0x48:], uint32(np))
	le.PutUint32(out[0x4c:], protoIDsOff)
	le.PutUint32(out[0x50:], uint32(nf))
	le.PutUint32(out[0x54:], fieldIDsOff)
	le.PutUint32(out[0x58:], uint32(nm))
	le.PutUint32(out[0x5c:], methodIDsOff)
	le.PutUint32(out[0x60:], uint32(nc))
	le.PutUint32(out[0x64:], classDefsOff)
	le.PutUint32(out[0x68:], uint32(len(b.data)))
	le.PutUint32(out[0x6c:], b.dataOff)

	for i, off := range stringOffs {
		le.PutUint32(out[int(stringIDsOff)+4*i:], off)
	}
	for i, t := range b.typeList {
		le.PutUint32(out[int(typeIDsOff)+4*i:], b.strings[t])
	}
	for i, p := range b.protoList {
		params, _ := dex.SplitParams(p.params)
		base := int(protoIDsOff) + 12*i
		le.PutUint32(out[base:], b.strings[shorty(p.ret, params)])
		le.PutUint32(out[base+4:], b.types[p.ret])
		le.PutUint32(out[base+8:], protoParamOffs[i])
	}
	for i, f := range b.fieldList {
		base := int(fieldIDsOff) + 8*i
		le.PutUint16(out[base:], uint16(b.types[f.Class]))
		le.PutUint16(out[base+2:], uint16(b.types[f.Type]))
		le.PutUint32(out[base+4:], b.strings[f.Name])
	}
	for i, m := range b.methodList {
		base := int(methodIDsOff) + 8*i
		le.PutUint16(out[base:], uint16(b.types[m.Class]))
		le.PutUint16(out[base+2:], uint16(b.protoIdx(m)))
		le.PutUint32(out[base+4:], b.strings[m.Name])
	}
	for i := range b.classes {
		c := &b.classes[i]
		base := int(classDefsOff) + 32*i
		sourceIdx := uint32(dex.NoIndex)
		if c.SourceFile != "" {
			sourceIdx = b.strings[c.SourceFile]
		}
		le.PutUint32(out[base:], b.types[c.Descriptor])
		le.PutUint32(out[base+4:], c.AccessFlags)
		le.PutUint32(out[base+8:], b.types[superOf(c)])
		le.PutUint32(out[base+12:], offs[i].interfaces)
		le.PutUint32(out[base+16:], sourceIdx)
		le.PutUint32(out[base+20:], offs[i].annotations)
		le.PutUint32(out[base+24:], offs[i].data)
		le.PutUint32(out[base+28:], 0)
	}

	out = append(out, b.data...)
	le.PutUint32(out[0x20:], uint32(len(out)))
	le.PutUint32(out[0x08:], adler32.Checksum(out[12:]))
	return out
}
