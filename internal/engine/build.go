package engine

import (
	"math"

	"github.com/apk-analysis/dexkit-go/internal/dex"
	"github.com/apk-analysis/dexkit-go/internal/schema"
	flatbuffers "github.com/google/flatbuffers/go"
)

// 结果序列化。flatbuffers 要求子对象先于父表创建，所以每个函数先写向量和字符串再开始表。

func int64Vector(b *flatbuffers.Builder, start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT, vs []int64) flatbuffers.UOffsetT {
	start(b, len(vs))
	for i := len(vs) - 1; i >= 0; i-- {
		b.PrependInt64(vs[i])
	}
	return b.EndVector(len(vs))
}

func offsetVector(b *flatbuffers.Builder, start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT, offs []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	start(b, len(offs))
	for i := len(offs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offs[i])
	}
	return b.EndVector(len(offs))
}

func (e *Engine) classMeta(b *flatbuffers.Builder, r ref) flatbuffers.UOffsetT {
	img := e.images[r.dex]
	desc := b.CreateString(img.file.TypeDescriptor(r.idx))

	c, ok := img.class(r.idx)
	if !ok {
		schema.ClassMetaStart(b)
		schema.ClassMetaAddId(b, r.id())
		schema.ClassMetaAddDexId(b, int32(r.dex))
		schema.ClassMetaAddDexDescriptor(b, desc)
		return schema.ClassMetaEnd(b)
	}

	var source flatbuffers.UOffsetT
	if s := img.file.SourceFile(c.def); s != "" {
		source = b.CreateString(s)
	}
	idxs := img.interfacesOf(c)
	ifaces := make([]int64, len(idxs))
	for i, t := range idxs {
		ifaces[i] = e.typeID(img, t)
	}
	interfaces := int64Vector(b, schema.ClassMetaStartInterfacesVector, ifaces)

	ms := c.data.Methods()
	mids := make([]int64, len(ms))
	for i, m := range ms {
		mids[i] = encodeID(img.id, m.MethodIdx)
	}
	methods := int64Vector(b, schema.ClassMetaStartMethodsVector, mids)

	fs := c.data.Fields()
	fids := make([]int64, len(fs))
	for i, f := range fs {
		fids[i] = encodeID(img.id, f.FieldIdx)
	}
	fields := int64Vector(b, schema.ClassMetaStartFieldsVector, fids)

	schema.ClassMetaStart(b)
	schema.ClassMetaAddId(b, r.id())
	schema.ClassMetaAddDexId(b, int32(r.dex))
	if source != 0 {
		schema.ClassMetaAddSourceFile(b, source)
	}
	schema.ClassMetaAddAccessFlags(b, c.def.AccessFlags)
	schema.ClassMetaAddDexDescriptor(b, desc)
	if c.def.SuperclassIdx != dex.NoIndex {
		schema.ClassMetaAddSuperClass(b, e.typeID(img, c.def.SuperclassIdx))
	}
	schema.ClassMetaAddInterfaces(b, interfaces)
	schema.ClassMetaAddMethods(b, methods)
	schema.ClassMetaAddFields(b, fields)
	return schema.ClassMetaEnd(b)
}

func (e *Engine) methodMeta(b *flatbuffers.Builder, v methodView) flatbuffers.UOffsetT {
	img := v.img
	desc := b.CreateString(v.desc())
	proto := v.proto()
	pids := make([]int64, len(proto.Params))
	for i, t := range proto.Params {
		pids[i] = e.typeID(img, t)
	}
	params := int64Vector(b, schema.MethodMetaStartParameterTypesVector, pids)

	schema.MethodMetaStart(b)
	schema.MethodMetaAddId(b, v.id())
	schema.MethodMetaAddDexId(b, int32(img.id))
	schema.MethodMetaAddClassId(b, e.typeID(img, uint32(img.file.Methods[v.idx].ClassIdx)))
	schema.MethodMetaAddAccessFlags(b, v.info.flags)
	schema.MethodMetaAddDexDescriptor(b, desc)
	schema.MethodMetaAddReturnType(b, e.typeID(img, proto.ReturnTypeIdx))
	schema.MethodMetaAddParameterTypes(b, params)
	return schema.MethodMetaEnd(b)
}

func (e *Engine) fieldMeta(b *flatbuffers.Builder, v fieldView) flatbuffers.UOffsetT {
	img := v.img
	desc := b.CreateString(v.desc())
	fid := img.file.Fields[v.idx]

	schema.FieldMetaStart(b)
	schema.FieldMetaAddId(b, v.id())
	schema.FieldMetaAddDexId(b, int32(img.id))
	schema.FieldMetaAddClassId(b, e.typeID(img, uint32(fid.ClassIdx)))
	schema.FieldMetaAddAccessFlags(b, v.info.flags)
	schema.FieldMetaAddDexDescriptor(b, desc)
	schema.FieldMetaAddTypeId(b, e.typeID(img, uint32(fid.TypeIdx)))
	return schema.FieldMetaEnd(b)
}

func (e *Engine) finishClasses(refs []ref) *flatbuffers.Builder {
	if len(refs) == 0 {
		return nil
	}
	b := e.builder()
	metas := make([]flatbuffers.UOffsetT, len(refs))
	for i, r := range refs {
		metas[i] = e.classMeta(b, r)
	}
	classes := offsetVector(b, schema.ClassMetaArrayHolderStartClassesVector, metas)
	schema.ClassMetaArrayHolderStart(b)
	schema.ClassMetaArrayHolderAddClasses(b, classes)
	b.FinishWithFileIdentifier(schema.ClassMetaArrayHolderEnd(b), []byte(schema.ClassMetaArrayHolderIdentifier))
	return b
}

func (e *Engine) finishMethods(refs []ref) *flatbuffers.Builder {
	if len(refs) == 0 {
		return nil
	}
	b := e.builder()
	metas := make([]flatbuffers.UOffsetT, len(refs))
	for i, r := range refs {
		metas[i] = e.methodMeta(b, e.method(r))
	}
	methods := offsetVector(b, schema.MethodMetaArrayHolderStartMethodsVector, metas)
	schema.MethodMetaArrayHolderStart(b)
	schema.MethodMetaArrayHolderAddMethods(b, methods)
	b.FinishWithFileIdentifier(schema.MethodMetaArrayHolderEnd(b), []byte(schema.MethodMetaArrayHolderIdentifier))
	return b
}

func (e *Engine) finishFields(refs []ref) *flatbuffers.Builder {
	if len(refs) == 0 {
		return nil
	}
	b := e.builder()
	metas := make([]flatbuffers.UOffsetT, len(refs))
	for i, r := range refs {
		metas[i] = e.fieldMeta(b, e.field(r))
	}
	fields := offsetVector(b, schema.FieldMetaArrayHolderStartFieldsVector, metas)
	schema.FieldMetaArrayHolderStart(b)
	schema.FieldMetaArrayHolderAddFields(b, fields)
	b.FinishWithFileIdentifier(schema.FieldMetaArrayHolderEnd(b), []byte(schema.FieldMetaArrayHolderIdentifier))
	return b
}

type group struct {
	key  string
	refs []ref
}

// finishBatchClasses 所有分组都为空时返回 nil
func (e *Engine) finishBatchClasses(groups []group) *flatbuffers.Builder {
	if !anyHits(groups) {
		return nil
	}
	b := e.builder()
	items := make([]flatbuffers.UOffsetT, len(groups))
	for i, g := range groups {
		key := b.CreateString(g.key)
		metas := make([]flatbuffers.UOffsetT, len(g.refs))
		for j, r := range g.refs {
			metas[j] = e.classMeta(b, r)
		}
		classes := offsetVector(b, schema.BatchClassMetaStartClassesVector, metas)
		schema.BatchClassMetaStart(b)
		schema.BatchClassMetaAddUnionKey(b, key)
		schema.BatchClassMetaAddClasses(b, classes)
		items[i] = schema.BatchClassMetaEnd(b)
	}
	vec := offsetVector(b, schema.BatchClassMetaArrayHolderStartItemsVector, items)
	schema.BatchClassMetaArrayHolderStart(b)
	schema.BatchClassMetaArrayHolderAddItems(b, vec)
	b.FinishWithFileIdentifier(schema.BatchClassMetaArrayHolderEnd(b), []byte(schema.BatchClassMetaArrayHolderIdentifier))
	return b
}

func (e *Engine) finishBatchMethods(groups []group) *flatbuffers.Builder {
	if !anyHits(groups) {
		return nil
	}
	b := e.builder()
	items := make([]flatbuffers.UOffsetT, len(groups))
	for i, g := range groups {
		key := b.CreateString(g.key)
		metas := make([]flatbuffers.UOffsetT, len(g.refs))
		for j, r := range g.refs {
			metas[j] = e.methodMeta(b, e.method(r))
		}
		methods := offsetVector(b, schema.BatchMethodMetaStartMethodsVector, metas)
		schema.BatchMethodMetaStart(b)
		schema.BatchMethodMetaAddUnionKey(b, key)
		schema.BatchMethodMetaAddMethods(b, methods)
		items[i] = schema.BatchMethodMetaEnd(b)
	}
	vec := offsetVector(b, schema.BatchMethodMetaArrayHolderStartItemsVector, items)
	schema.BatchMethodMetaArrayHolderStart(b)
	schema.BatchMethodMetaArrayHolderAddItems(b, vec)
	b.FinishWithFileIdentifier(schema.BatchMethodMetaArrayHolderEnd(b), []byte(schema.BatchMethodMetaArrayHolderIdentifier))
	return b
}

func anyHits(groups []group) bool {
	for _, g := range groups {
		if len(g.refs) > 0 {
			return true
		}
	}
	return false
}

func (e *Engine) annotationMeta(b *flatbuffers.Builder, img *image, a *dex.Annotation) flatbuffers.UOffsetT {
	desc := b.CreateString(img.file.TypeDescriptor(a.TypeIdx))
	elems := make([]flatbuffers.UOffsetT, len(a.Elements))
	for i := range a.Elements {
		el := &a.Elements[i]
		name := b.CreateString(img.file.String(el.NameIdx))
		value := e.encodeValue(b, img, &el.Value)
		schema.AnnotationElementMetaStart(b)
		schema.AnnotationElementMetaAddName(b, name)
		schema.AnnotationElementMetaAddValue(b, value)
		elems[i] = schema.AnnotationElementMetaEnd(b)
	}
	elements := offsetVector(b, schema.AnnotationMetaStartElementsVector, elems)

	schema.AnnotationMetaStart(b)
	schema.AnnotationMetaAddDexId(b, int32(img.id))
	schema.AnnotationMetaAddTypeId(b, e.typeID(img, a.TypeIdx))
	schema.AnnotationMetaAddTypeDescriptor(b, desc)
	schema.AnnotationMetaAddVisibility(b, schema.AnnotationVisibilityType(a.Visibility))
	schema.AnnotationMetaAddElements(b, elements)
	return schema.AnnotationMetaEnd(b)
}

// encodeValue 索引类的值以描述符写入 string_value，并在 long_value 中给出编码后的 id
func (e *Engine) encodeValue(b *flatbuffers.Builder, img *image, v *dex.EncodedValue) flatbuffers.UOffsetT {
	var (
		str        flatbuffers.UOffsetT
		long       int64
		dbl        float64
		array      flatbuffers.UOffsetT
		annotation flatbuffers.UOffsetT
	)
	idx := uint32(v.Int)
	f := img.file
	switch v.Type {
	case dex.ValueByte, dex.ValueShort, dex.ValueChar, dex.ValueInt, dex.ValueLong, dex.ValueMethodHandle:
		long = v.Int
	case dex.ValueFloat, dex.ValueDouble:
		dbl = v.Float
	case dex.ValueString:
		str = b.CreateString(f.String(idx))
	case dex.ValueTypeRef:
		if int(idx) < len(f.Types) {
			str = b.CreateString(f.TypeDescriptor(idx))
			long = e.typeID(img, idx)
		}
	case dex.ValueField, dex.ValueEnum:
		if int(idx) < len(img.fieldDesc) {
			str = b.CreateString(img.fieldDesc[idx])
			long = e.localField(img, idx).id()
		}
	case dex.ValueMethod:
		if int(idx) < len(img.methodDesc) {
			str = b.CreateString(img.methodDesc[idx])
			long = e.localMethod(img, idx).id()
		}
	case dex.ValueMethodType:
		if int(idx) < len(f.Protos) {
			str = b.CreateString(f.ProtoDescriptor(idx))
		}
	case dex.ValueArray:
		items := make([]flatbuffers.UOffsetT, len(v.Array))
		for i := range v.Array {
			items[i] = e.encodeValue(b, img, &v.Array[i])
		}
		array = offsetVector(b, schema.AnnotationEncodeValueMetaStartArrayVector, items)
	case dex.ValueAnnotation:
		if v.Annotation != nil {
			annotation = e.annotationMeta(b, img, v.Annotation)
		}
	}

	schema.AnnotationEncodeValueMetaStart(b)
	schema.AnnotationEncodeValueMetaAddType(b, schema.AnnotationEncodeValueType(v.Type))
	if long != 0 {
		schema.AnnotationEncodeValueMetaAddLongValue(b, long)
	}
	if dbl != 0 || math.Signbit(dbl) {
		schema.AnnotationEncodeValueMetaAddDoubleValue(b, dbl)
	}
	if str != 0 {
		schema.AnnotationEncodeValueMetaAddStringValue(b, str)
	}
	if v.Type == dex.ValueBoolean {
		schema.AnnotationEncodeValueMetaAddBoolValue(b, v.Bool)
	}
	if array != 0 {
		schema.AnnotationEncodeValueMetaAddArray(b, array)
	}
	if annotation != 0 {
		schema.AnnotationEncodeValueMetaAddAnnotation(b, annotation)
	}
	return schema.AnnotationEncodeValueMetaEnd(b)
}

func (e *Engine) annotationList(b *flatbuffers.Builder, img *image, list []dex.Annotation) []flatbuffers.UOffsetT {
	out := make([]flatbuffers.UOffsetT, len(list))
	for i := range list {
		out[i] = e.annotationMeta(b, img, &list[i])
	}
	return out
}

func (e *Engine) finishAnnotations(img *image, list []dex.Annotation) *flatbuffers.Builder {
	if len(list) == 0 {
		return nil
	}
	b := e.builder()
	vec := offsetVector(b, schema.AnnotationMetaArrayHolderStartAnnotationsVector, e.annotationList(b, img, list))
	schema.AnnotationMetaArrayHolderStart(b)
	schema.AnnotationMetaArrayHolderAddAnnotations(b, vec)
	b.FinishWithFileIdentifier(schema.AnnotationMetaArrayHolderEnd(b), []byte(schema.AnnotationMetaArrayHolderIdentifier))
	return b
}

func (e *Engine) finishParameterAnnotations(img *image, params [][]dex.Annotation) *flatbuffers.Builder {
	if len(params) == 0 {
		return nil
	}
	b := e.builder()
	items := make([]flatbuffers.UOffsetT, len(params))
	for i, list := range params {
		vec := offsetVector(b, schema.ParameterAnnotationMetaStartAnnotationsVector, e.annotationList(b, img, list))
		schema.ParameterAnnotationMetaStart(b)
		schema.ParameterAnnotationMetaAddAnnotations(b, vec)
		items[i] = schema.ParameterAnnotationMetaEnd(b)
	}
	vec := offsetVector(b, schema.ParametersAnnotationMetaArrayHolderStartAnnotationsArrayVector, items)
	schema.ParametersAnnotationMetaArrayHolderStart(b)
	schema.ParametersAnnotationMetaArrayHolderAddAnnotationsArray(b, vec)
	b.FinishWithFileIdentifier(schema.ParametersAnnotationMetaArrayHolderEnd(b), []byte(schema.ParametersAnnotationMetaArrayHolderIdentifier))
	return b
}

type usingField struct {
	field  ref
	access dex.FieldAccess
}

func (e *Engine) finishUsingFields(uses []usingField) *flatbuffers.Builder {
	if len(uses) == 0 {
		return nil
	}
	b := e.builder()
	items := make([]flatbuffers.UOffsetT, len(uses))
	for i, u := range uses {
		field := e.fieldMeta(b, e.field(u.field))
		usingType := schema.UsingTypeGet
		if u.access == dex.FieldWrite {
			usingType = schema.UsingTypePut
		}
		schema.UsingFieldMetaStart(b)
		schema.UsingFieldMetaAddField(b, field)
		schema.UsingFieldMetaAddUsingType(b, usingType)
		items[i] = schema.UsingFieldMetaEnd(b)
	}
	vec := offsetVector(b, schema.UsingFieldMetaArrayHolderStartItemsVector, items)
	schema.UsingFieldMetaArrayHolderStart(b)
	schema.UsingFieldMetaArrayHolderAddItems(b, vec)
	b.FinishWithFileIdentifier(schema.UsingFieldMetaArrayHolderEnd(b), []byte(schema.UsingFieldMetaArrayHolderIdentifier))
	return b
}
