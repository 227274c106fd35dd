package query

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/apk-analysis/dexkit-go/internal/schema"
)

type encoder struct {
	b *flatbuffers.Builder
}

func newEncoder() *encoder {
	return &encoder{b: flatbuffers.NewBuilder(256)}
}

func (e *encoder) finish(root flatbuffers.UOffsetT, identifier string) []byte {
	e.b.FinishWithFileIdentifier(root, []byte(identifier))
	return e.b.FinishedBytes()
}

func (e *encoder) strings(ss []string) flatbuffers.UOffsetT {
	if len(ss) == 0 {
		return 0
	}
	offs := make([]flatbuffers.UOffsetT, len(ss))
	for i, s := range ss {
		offs[i] = e.b.CreateString(s)
	}
	return e.offsets(offs)
}

// offsets 写入偏移向量，元素需倒序 prepend
func (e *encoder) offsets(offs []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	e.b.StartVector(4, len(offs), 4)
	for i := len(offs) - 1; i >= 0; i-- {
		e.b.PrependUOffsetT(offs[i])
	}
	return e.b.EndVector(len(offs))
}

func (e *encoder) int64s(vs []int64) flatbuffers.UOffsetT {
	if len(vs) == 0 {
		return 0
	}
	e.b.StartVector(8, len(vs), 8)
	for i := len(vs) - 1; i >= 0; i-- {
		e.b.PrependInt64(vs[i])
	}
	return e.b.EndVector(len(vs))
}

func (e *encoder) int16s(vs []int16) flatbuffers.UOffsetT {
	if len(vs) == 0 {
		return 0
	}
	e.b.StartVector(2, len(vs), 2)
	for i := len(vs) - 1; i >= 0; i-- {
		e.b.PrependInt16(vs[i])
	}
	return e.b.EndVector(len(vs))
}

func (e *encoder) stringMatcher(m *StringMatcher) flatbuffers.UOffsetT {
	if m == nil {
		return 0
	}
	value := e.b.CreateString(m.Value)
	schema.StringMatcherStart(e.b)
	schema.StringMatcherAddValue(e.b, value)
	schema.StringMatcherAddMatchType(e.b, m.MatchType)
	schema.StringMatcherAddIgnoreCase(e.b, m.IgnoreCase)
	return schema.StringMatcherEnd(e.b)
}

func (e *encoder) stringMatchers(ms []StringMatcher) flatbuffers.UOffsetT {
	if len(ms) == 0 {
		return 0
	}
	offs := make([]flatbuffers.UOffsetT, len(ms))
	for i := range ms {
		offs[i] = e.stringMatcher(&ms[i])
	}
	return e.offsets(offs)
}

func (e *encoder) accessFlags(m *AccessFlagsMatcher) flatbuffers.UOffsetT {
	if m == nil {
		return 0
	}
	schema.AccessFlagsMatcherStart(e.b)
	schema.AccessFlagsMatcherAddFlags(e.b, m.Flags)
	schema.AccessFlagsMatcherAddMatchType(e.b, m.MatchType)
	return schema.AccessFlagsMatcherEnd(e.b)
}

func (e *encoder) intRange(r *IntRange) flatbuffers.UOffsetT {
	if r == nil {
		return 0
	}
	schema.IntRangeStart(e.b)
	schema.IntRangeAddMin(e.b, r.Min)
	schema.IntRangeAddMax(e.b, r.Max)
	return schema.IntRangeEnd(e.b)
}

func (e *encoder) opCodes(m *OpCodesMatcher) flatbuffers.UOffsetT {
	if m == nil {
		return 0
	}
	ops := e.int16s(m.OpCodes)
	size := e.intRange(m.Size)
	schema.OpCodesMatcherStart(e.b)
	schema.OpCodesMatcherAddOpCodes(e.b, ops)
	schema.OpCodesMatcherAddMatchType(e.b, m.MatchType)
	schema.OpCodesMatcherAddOpCodeSize(e.b, size)
	return schema.OpCodesMatcherEnd(e.b)
}

func (e *encoder) classMatcher(m *ClassMatcher) flatbuffers.UOffsetT {
	if m == nil {
		return 0
	}
	sourceFile := e.stringMatcher(m.SourceFile)
	className := e.stringMatcher(m.ClassName)
	flags := e.accessFlags(m.AccessFlags)
	superClass := e.stringMatcher(m.SuperClass)
	interfaces := e.stringMatchers(m.Interfaces)
	annotations := e.stringMatchers(m.Annotations)
	usingStrings := e.stringMatchers(m.UsingStrings)
	fieldCount := e.intRange(m.FieldCount)
	methodCount := e.intRange(m.MethodCount)

	schema.ClassMatcherStart(e.b)
	schema.ClassMatcherAddSourceFile(e.b, sourceFile)
	schema.ClassMatcherAddClassName(e.b, className)
	schema.ClassMatcherAddAccessFlags(e.b, flags)
	schema.ClassMatcherAddSuperClass(e.b, superClass)
	schema.ClassMatcherAddInterfaces(e.b, interfaces)
	schema.ClassMatcherAddAnnotations(e.b, annotations)
	schema.ClassMatcherAddUsingStrings(e.b, usingStrings)
	schema.ClassMatcherAddFieldCount(e.b, fieldCount)
	schema.ClassMatcherAddMethodCount(e.b, methodCount)
	return schema.ClassMatcherEnd(e.b)
}

func (e *encoder) fieldMatcher(m *FieldMatcher) flatbuffers.UOffsetT {
	if m == nil {
		return 0
	}
	name := e.stringMatcher(m.Name)
	flags := e.accessFlags(m.AccessFlags)
	declared := e.stringMatcher(m.DeclaredClass)
	typ := e.stringMatcher(m.Type)
	annotations := e.stringMatchers(m.Annotations)
	readers := e.stringMatchers(m.ReadMethods)
	writers := e.stringMatchers(m.WriteMethods)

	schema.FieldMatcherStart(e.b)
	schema.FieldMatcherAddName(e.b, name)
	schema.FieldMatcherAddAccessFlags(e.b, flags)
	schema.FieldMatcherAddDeclaredClass(e.b, declared)
	schema.FieldMatcherAddType(e.b, typ)
	schema.FieldMatcherAddAnnotations(e.b, annotations)
	schema.FieldMatcherAddReadMethods(e.b, readers)
	schema.FieldMatcherAddWriteMethods(e.b, writers)
	return schema.FieldMatcherEnd(e.b)
}

func (e *encoder) usingFields(ms []UsingFieldMatcher) flatbuffers.UOffsetT {
	if len(ms) == 0 {
		return 0
	}
	offs := make([]flatbuffers.UOffsetT, len(ms))
	for i := range ms {
		field := e.fieldMatcher(&ms[i].Field)
		schema.UsingFieldMatcherStart(e.b)
		schema.UsingFieldMatcherAddField(e.b, field)
		schema.UsingFieldMatcherAddUsingType(e.b, ms[i].UsingType)
		offs[i] = schema.UsingFieldMatcherEnd(e.b)
	}
	return e.offsets(offs)
}

func (e *encoder) methodMatcher(m *MethodMatcher) flatbuffers.UOffsetT {
	if m == nil {
		return 0
	}
	name := e.stringMatcher(m.Name)
	flags := e.accessFlags(m.AccessFlags)
	declared := e.stringMatcher(m.DeclaredClass)
	ret := e.stringMatcher(m.ReturnType)
	params := e.stringMatchers(m.ParamTypes)
	paramCount := e.intRange(m.ParamCount)
	annotations := e.stringMatchers(m.Annotations)
	ops := e.opCodes(m.OpCodes)
	usingStrings := e.stringMatchers(m.UsingStrings)
	usingFields := e.usingFields(m.UsingFields)
	invokes := e.stringMatchers(m.InvokeMethods)
	callers := e.stringMatchers(m.CallerMethods)

	schema.MethodMatcherStart(e.b)
	schema.MethodMatcherAddName(e.b, name)
	schema.MethodMatcherAddAccessFlags(e.b, flags)
	schema.MethodMatcherAddDeclaredClass(e.b, declared)
	schema.MethodMatcherAddReturnType(e.b, ret)
	schema.MethodMatcherAddParamTypes(e.b, params)
	schema.MethodMatcherAddParamCount(e.b, paramCount)
	schema.MethodMatcherAddAnnotations(e.b, annotations)
	schema.MethodMatcherAddOpCodes(e.b, ops)
	schema.MethodMatcherAddUsingStrings(e.b, usingStrings)
	schema.MethodMatcherAddUsingFields(e.b, usingFields)
	schema.MethodMatcherAddInvokeMethods(e.b, invokes)
	schema.MethodMatcherAddCallerMethods(e.b, callers)
	return schema.MethodMatcherEnd(e.b)
}

func (e *encoder) groups(gs []StringMatchersGroup) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(gs))
	for i, g := range gs {
		key := e.b.CreateString(g.UnionKey)
		matchers := e.stringMatchers(g.Matchers)
		schema.StringMatchersGroupStart(e.b)
		schema.StringMatchersGroupAddUnionKey(e.b, key)
		schema.StringMatchersGroupAddStringMatchers(e.b, matchers)
		offs[i] = schema.StringMatchersGroupEnd(e.b)
	}
	return e.offsets(offs)
}

// scope 预先写入范围相关的向量
type scopeOffsets struct {
	search, exclude, inClasses flatbuffers.UOffsetT
}

func (e *encoder) scope(s *Scope) scopeOffsets {
	return scopeOffsets{
		search:    e.strings(s.SearchPackages),
		exclude:   e.strings(s.ExcludePackages),
		inClasses: e.int64s(s.InClasses),
	}
}

// Encode 编码为带 FCL1 标识的载荷
func (q *FindClass) Encode() []byte {
	e := newEncoder()
	sc := e.scope(&q.Scope)
	matcher := e.classMatcher(q.Matcher)

	schema.FindClassStart(e.b)
	schema.FindClassAddSearchPackages(e.b, sc.search)
	schema.FindClassAddExcludePackages(e.b, sc.exclude)
	schema.FindClassAddIgnorePackagesCase(e.b, q.IgnorePackagesCase)
	schema.FindClassAddInClasses(e.b, sc.inClasses)
	schema.FindClassAddFindFirst(e.b, q.FindFirst)
	schema.FindClassAddMatcher(e.b, matcher)
	return e.finish(schema.FindClassEnd(e.b), schema.FindClassIdentifier)
}

func (q *FindMethod) Encode() []byte {
	e := newEncoder()
	sc := e.scope(&q.Scope)
	inMethods := e.int64s(q.InMethods)
	matcher := e.methodMatcher(q.Matcher)

	schema.FindMethodStart(e.b)
	schema.FindMethodAddSearchPackages(e.b, sc.search)
	schema.FindMethodAddExcludePackages(e.b, sc.exclude)
	schema.FindMethodAddIgnorePackagesCase(e.b, q.IgnorePackagesCase)
	schema.FindMethodAddInClasses(e.b, sc.inClasses)
	schema.FindMethodAddInMethods(e.b, inMethods)
	schema.FindMethodAddFindFirst(e.b, q.FindFirst)
	schema.FindMethodAddMatcher(e.b, matcher)
	return e.finish(schema.FindMethodEnd(e.b), schema.FindMethodIdentifier)
}

func (q *FindField) Encode() []byte {
	e := newEncoder()
	sc := e.scope(&q.Scope)
	inFields := e.int64s(q.InFields)
	matcher := e.fieldMatcher(q.Matcher)

	schema.FindFieldStart(e.b)
	schema.FindFieldAddSearchPackages(e.b, sc.search)
	schema.FindFieldAddExcludePackages(e.b, sc.exclude)
	schema.FindFieldAddIgnorePackagesCase(e.b, q.IgnorePackagesCase)
	schema.FindFieldAddInClasses(e.b, sc.inClasses)
	schema.FindFieldAddInFields(e.b, inFields)
	schema.FindFieldAddFindFirst(e.b, q.FindFirst)
	schema.FindFieldAddMatcher(e.b, matcher)
	return e.finish(schema.FindFieldEnd(e.b), schema.FindFieldIdentifier)
}

func (q *BatchFindClassUsingStrings) Encode() []byte {
	e := newEncoder()
	sc := e.scope(&q.Scope)
	groups := e.groups(q.Groups)

	schema.BatchFindClassUsingStringsStart(e.b)
	schema.BatchFindClassUsingStringsAddSearchPackages(e.b, sc.search)
	schema.BatchFindClassUsingStringsAddExcludePackages(e.b, sc.exclude)
	schema.BatchFindClassUsingStringsAddIgnorePackagesCase(e.b, q.IgnorePackagesCase)
	schema.BatchFindClassUsingStringsAddInClasses(e.b, sc.inClasses)
	schema.BatchFindClassUsingStringsAddMatchers(e.b, groups)
	return e.finish(schema.BatchFindClassUsingStringsEnd(e.b), schema.BatchFindClassUsingStringsIdentifier)
}

func (q *BatchFindMethodUsingStrings) Encode() []byte {
	e := newEncoder()
	sc := e.scope(&q.Scope)
	inMethods := e.int64s(q.InMethods)
	groups := e.groups(q.Groups)

	schema.BatchFindMethodUsingStringsStart(e.b)
	schema.BatchFindMethodUsingStringsAddSearchPackages(e.b, sc.search)
	schema.BatchFindMethodUsingStringsAddExcludePackages(e.b, sc.exclude)
	schema.BatchFindMethodUsingStringsAddIgnorePackagesCase(e.b, q.IgnorePackagesCase)
	schema.BatchFindMethodUsingStringsAddInClasses(e.b, sc.inClasses)
	schema.BatchFindMethodUsingStringsAddInMethods(e.b, inMethods)
	schema.BatchFindMethodUsingStringsAddMatchers(e.b, groups)
	return e.finish(schema.BatchFindMethodUsingStringsEnd(e.b), schema.BatchFindMethodUsingStringsIdentifier)
}
