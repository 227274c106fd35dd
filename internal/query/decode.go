package query

import (
	"errors"
	"fmt"

	"github.com/apk-analysis/dexkit-go/internal/schema"
)

// ErrMalformedQuery 载荷无法按 schema 解析或未通过校验
var ErrMalformedQuery = errors.New("malformed query payload")

type malformed string

// decode 校验缓冲区头部后转换为 Go 请求，转换过程中的越界访问统一转为 ErrMalformedQuery
func decode[T any](buf []byte, identifier string, convert func([]byte) *T, validate func(*T) error) (q *T, err error) {
	if !schema.RootInBounds(buf) {
		return nil, fmt.Errorf("%w: buffer too short or root offset out of range", ErrMalformedQuery)
	}
	if !schema.BufferHasIdentifier(buf, identifier) {
		return nil, fmt.Errorf("%w: expected identifier %q", ErrMalformedQuery, identifier)
	}

	defer func() {
		if r := recover(); r != nil {
			q, err = nil, fmt.Errorf("%w: %v", ErrMalformedQuery, r)
		}
	}()
	q = convert(buf)
	if err := validate(q); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedQuery, err)
	}
	return q, nil
}

func DecodeFindClass(buf []byte) (*FindClass, error) {
	return decode(buf, schema.FindClassIdentifier, func(buf []byte) *FindClass {
		t := schema.GetRootAsFindClass(buf, 0)
		checkLen(buf, t.SearchPackagesLength(), 4)
		checkLen(buf, t.ExcludePackagesLength(), 4)
		checkLen(buf, t.InClassesLength(), 8)
		return &FindClass{
			Scope: Scope{
				SearchPackages:     readStrings(t.SearchPackagesLength(), t.SearchPackages),
				ExcludePackages:    readStrings(t.ExcludePackagesLength(), t.ExcludePackages),
				IgnorePackagesCase: t.IgnorePackagesCase(),
				InClasses:          readInt64s(t.InClassesLength(), t.InClasses),
			},
			FindFirst: t.FindFirst(),
			Matcher:   readClassMatcher(buf, t.Matcher(nil)),
		}
	}, (*FindClass).Validate)
}

func DecodeFindMethod(buf []byte) (*FindMethod, error) {
	return decode(buf, schema.FindMethodIdentifier, func(buf []byte) *FindMethod {
		t := schema.GetRootAsFindMethod(buf, 0)
		checkLen(buf, t.SearchPackagesLength(), 4)
		checkLen(buf, t.ExcludePackagesLength(), 4)
		checkLen(buf, t.InClassesLength(), 8)
		checkLen(buf, t.InMethodsLength(), 8)
		return &FindMethod{
			Scope: Scope{
				SearchPackages:     readStrings(t.SearchPackagesLength(), t.SearchPackages),
				ExcludePackages:    readStrings(t.ExcludePackagesLength(), t.ExcludePackages),
				IgnorePackagesCase: t.IgnorePackagesCase(),
				InClasses:          readInt64s(t.InClassesLength(), t.InClasses),
			},
			InMethods: readInt64s(t.InMethodsLength(), t.InMethods),
			FindFirst: t.FindFirst(),
			Matcher:   readMethodMatcher(buf, t.Matcher(nil)),
		}
	}, (*FindMethod).Validate)
}

func DecodeFindField(buf []byte) (*FindField, error) {
	return decode(buf, schema.FindFieldIdentifier, func(buf []byte) *FindField {
		t := schema.GetRootAsFindField(buf, 0)
		checkLen(buf, t.SearchPackagesLength(), 4)
		checkLen(buf, t.ExcludePackagesLength(), 4)
		checkLen(buf, t.InClassesLength(), 8)
		checkLen(buf, t.InFieldsLength(), 8)
		return &FindField{
			Scope: Scope{
				SearchPackages:     readStrings(t.SearchPackagesLength(), t.SearchPackages),
				ExcludePackages:    readStrings(t.ExcludePackagesLength(), t.ExcludePackages),
				IgnorePackagesCase: t.IgnorePackagesCase(),
				InClasses:          readInt64s(t.InClassesLength(), t.InClasses),
			},
			InFields:  readInt64s(t.InFieldsLength(), t.InFields),
			FindFirst: t.FindFirst(),
			Matcher:   readFieldMatcher(buf, t.Matcher(nil)),
		}
	}, (*FindField).Validate)
}

func DecodeBatchFindClassUsingStrings(buf []byte) (*BatchFindClassUsingStrings, error) {
	return decode(buf, schema.BatchFindClassUsingStringsIdentifier, func(buf []byte) *BatchFindClassUsingStrings {
		t := schema.GetRootAsBatchFindClassUsingStrings(buf, 0)
		checkLen(buf, t.SearchPackagesLength(), 4)
		checkLen(buf, t.ExcludePackagesLength(), 4)
		checkLen(buf, t.InClassesLength(), 8)
		checkLen(buf, t.MatchersLength(), 4)
		return &BatchFindClassUsingStrings{
			Scope: Scope{
				SearchPackages:     readStrings(t.SearchPackagesLength(), t.SearchPackages),
				ExcludePackages:    readStrings(t.ExcludePackagesLength(), t.ExcludePackages),
				IgnorePackagesCase: t.IgnorePackagesCase(),
				InClasses:          readInt64s(t.InClassesLength(), t.InClasses),
			},
			Groups: readTables(buf, t.MatchersLength(), t.Matchers, readGroup),
		}
	}, (*BatchFindClassUsingStrings).Validate)
}

func DecodeBatchFindMethodUsingStrings(buf []byte) (*BatchFindMethodUsingStrings, error) {
	return decode(buf, schema.BatchFindMethodUsingStringsIdentifier, func(buf []byte) *BatchFindMethodUsingStrings {
		t := schema.GetRootAsBatchFindMethodUsingStrings(buf, 0)
		checkLen(buf, t.SearchPackagesLength(), 4)
		checkLen(buf, t.ExcludePackagesLength(), 4)
		checkLen(buf, t.InClassesLength(), 8)
		checkLen(buf, t.InMethodsLength(), 8)
		checkLen(buf, t.MatchersLength(), 4)
		return &BatchFindMethodUsingStrings{
			Scope: Scope{
				SearchPackages:     readStrings(t.SearchPackagesLength(), t.SearchPackages),
				ExcludePackages:    readStrings(t.ExcludePackagesLength(), t.ExcludePackages),
				IgnorePackagesCase: t.IgnorePackagesCase(),
				InClasses:          readInt64s(t.InClassesLength(), t.InClasses),
			},
			InMethods: readInt64s(t.InMethodsLength(), t.InMethods),
			Groups:    readTables(buf, t.MatchersLength(), t.Matchers, readGroup),
		}
	}, (*BatchFindMethodUsingStrings).Validate)
}

// checkLen 防止伪造的向量长度触发超大分配
func checkLen(buf []byte, n, elemSize int) {
	if n < 0 || n*elemSize > len(buf) {
		panic(malformed(fmt.Sprintf("vector length %d exceeds buffer", n)))
	}
}

func readStrings(n int, get func(int) []byte) []string {
	if n == 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = string(get(i))
	}
	return out
}

func readInt64s(n int, get func(int) int64) []int64 {
	if n == 0 {
		return nil
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = get(i)
	}
	return out
}

func readInt16s(n int, get func(int) int16) []int16 {
	if n == 0 {
		return nil
	}
	out := make([]int16, n)
	for i := range out {
		out[i] = get(i)
	}
	return out
}

// readTables 读取表向量
func readTables[S any, T any](buf []byte, n int, get func(*S, int) bool, conv func([]byte, *S) T) []T {
	if n == 0 {
		return nil
	}
	checkLen(buf, n, 4)
	out := make([]T, n)
	for i := range out {
		s := new(S)
		get(s, i)
		out[i] = conv(buf, s)
	}
	return out
}

func readStringMatcher(_ []byte, m *schema.StringMatcher) StringMatcher {
	return StringMatcher{
		Value:      string(m.Value()),
		MatchType:  m.MatchType(),
		IgnoreCase: m.IgnoreCase(),
	}
}

func optStringMatcher(buf []byte, m *schema.StringMatcher) *StringMatcher {
	if m == nil {
		return nil
	}
	sm := readStringMatcher(buf, m)
	return &sm
}

func readAccessFlags(m *schema.AccessFlagsMatcher) *AccessFlagsMatcher {
	if m == nil {
		return nil
	}
	return &AccessFlagsMatcher{Flags: m.Flags(), MatchType: m.MatchType()}
}

func readIntRange(r *schema.IntRange) *IntRange {
	if r == nil {
		return nil
	}
	return &IntRange{Min: r.Min(), Max: r.Max()}
}

func readOpCodes(buf []byte, m *schema.OpCodesMatcher) *OpCodesMatcher {
	if m == nil {
		return nil
	}
	checkLen(buf, m.OpCodesLength(), 2)
	return &OpCodesMatcher{
		OpCodes:   readInt16s(m.OpCodesLength(), m.OpCodes),
		MatchType: m.MatchType(),
		Size:      readIntRange(m.OpCodeSize(nil)),
	}
}

func readClassMatcher(buf []byte, m *schema.ClassMatcher) *ClassMatcher {
	if m == nil {
		return nil
	}
	return &ClassMatcher{
		SourceFile:   optStringMatcher(buf, m.SourceFile(nil)),
		ClassName:    optStringMatcher(buf, m.ClassName(nil)),
		AccessFlags:  readAccessFlags(m.AccessFlags(nil)),
		SuperClass:   optStringMatcher(buf, m.SuperClass(nil)),
		Interfaces:   readTables(buf, m.InterfacesLength(), m.Interfaces, readStringMatcher),
		Annotations:  readTables(buf, m.AnnotationsLength(), m.Annotations, readStringMatcher),
		UsingStrings: readTables(buf, m.UsingStringsLength(), m.UsingStrings, readStringMatcher),
		FieldCount:   readIntRange(m.FieldCount(nil)),
		MethodCount:  readIntRange(m.MethodCount(nil)),
	}
}

func readFieldMatcher(buf []byte, m *schema.FieldMatcher) *FieldMatcher {
	if m == nil {
		return nil
	}
	return &FieldMatcher{
		Name:          optStringMatcher(buf, m.Name(nil)),
		AccessFlags:   readAccessFlags(m.AccessFlags(nil)),
		DeclaredClass: optStringMatcher(buf, m.DeclaredClass(nil)),
		Type:          optStringMatcher(buf, m.Type(nil)),
		Annotations:   readTables(buf, m.AnnotationsLength(), m.Annotations, readStringMatcher),
		ReadMethods:   readTables(buf, m.ReadMethodsLength(), m.ReadMethods, readStringMatcher),
		WriteMethods:  readTables(buf, m.WriteMethodsLength(), m.WriteMethods, readStringMatcher),
	}
}

func readUsingField(buf []byte, m *schema.UsingFieldMatcher) UsingFieldMatcher {
	u := UsingFieldMatcher{UsingType: m.UsingType()}
	if f := readFieldMatcher(buf, m.Field(nil)); f != nil {
		u.Field = *f
	}
	return u
}

func readMethodMatcher(buf []byte, m *schema.MethodMatcher) *MethodMatcher {
	if m == nil {
		return nil
	}
	return &MethodMatcher{
		Name:          optStringMatcher(buf, m.Name(nil)),
		AccessFlags:   readAccessFlags(m.AccessFlags(nil)),
		DeclaredClass: optStringMatcher(buf, m.DeclaredClass(nil)),
		ReturnType:    optStringMatcher(buf, m.ReturnType(nil)),
		ParamTypes:    readTables(buf, m.ParamTypesLength(), m.ParamTypes, readStringMatcher),
		ParamCount:    readIntRange(m.ParamCount(nil)),
		Annotations:   readTables(buf, m.AnnotationsLength(), m.Annotations, readStringMatcher),
		OpCodes:       readOpCodes(buf, m.OpCodes(nil)),
		UsingStrings:  readTables(buf, m.UsingStringsLength(), m.UsingStrings, readStringMatcher),
		UsingFields:   readTables(buf, m.UsingFieldsLength(), m.UsingFields, readUsingField),
		InvokeMethods: readTables(buf, m.InvokeMethodsLength(), m.InvokeMethods, readStringMatcher),
		CallerMethods: readTables(buf, m.CallerMethodsLength(), m.CallerMethods, readStringMatcher),
	}
}

func readGroup(buf []byte, g *schema.StringMatchersGroup) StringMatchersGroup {
	return StringMatchersGroup{
		UnionKey: string(g.UnionKey()),
		Matchers: readTables(buf, g.StringMatchersLength(), g.StringMatchers, readStringMatcher),
	}
}
