// Package query 定义查询请求的 Go 表示，负责编码为 schema 载荷以及在边界处解码校验
package query

import "github.com/apk-analysis/dexkit-go/internal/schema"

// StringMatcher 字符串匹配条件。SimilarRegex 只识别首尾的 ^ 和 $ 锚点
type StringMatcher struct {
	Value      string                 `json:"value"`
	MatchType  schema.StringMatchType `json:"match_type"`
	IgnoreCase bool                   `json:"ignore_case,omitempty"`
}

type AccessFlagsMatcher struct {
	Flags     uint32           `json:"flags"`
	MatchType schema.MatchType `json:"match_type"`
}

// IntRange 闭区间
type IntRange struct {
	Min int32 `json:"min"`
	Max int32 `json:"max"`
}

type OpCodesMatcher struct {
	OpCodes   []int16                `json:"op_codes"`
	MatchType schema.OpCodeMatchType `json:"match_type"`
	Size      *IntRange              `json:"size,omitempty"`
}

type ClassMatcher struct {
	SourceFile   *StringMatcher      `json:"source_file,omitempty"`
	ClassName    *StringMatcher      `json:"class_name,omitempty"`
	AccessFlags  *AccessFlagsMatcher `json:"access_flags,omitempty"`
	SuperClass   *StringMatcher      `json:"super_class,omitempty"`
	Interfaces   []StringMatcher     `json:"interfaces,omitempty"`
	Annotations  []StringMatcher     `json:"annotations,omitempty"`
	UsingStrings []StringMatcher     `json:"using_strings,omitempty"`
	FieldCount   *IntRange           `json:"field_count,omitempty"`
	MethodCount  *IntRange           `json:"method_count,omitempty"`
}

type FieldMatcher struct {
	Name          *StringMatcher      `json:"name,omitempty"`
	AccessFlags   *AccessFlagsMatcher `json:"access_flags,omitempty"`
	DeclaredClass *StringMatcher      `json:"declared_class,omitempty"`
	Type          *StringMatcher      `json:"type,omitempty"`
	Annotations   []StringMatcher     `json:"annotations,omitempty"`
	ReadMethods   []StringMatcher     `json:"read_methods,omitempty"`
	WriteMethods  []StringMatcher     `json:"write_methods,omitempty"`
}

type UsingFieldMatcher struct {
	Field     FieldMatcher     `json:"field"`
	UsingType schema.UsingType `json:"using_type"`
}

type MethodMatcher struct {
	Name          *StringMatcher      `json:"name,omitempty"`
	AccessFlags   *AccessFlagsMatcher `json:"access_flags,omitempty"`
	DeclaredClass *StringMatcher      `json:"declared_class,omitempty"`
	ReturnType    *StringMatcher      `json:"return_type,omitempty"`
	// ParamTypes 按位置匹配，非空时参数个数必须一致
	ParamTypes    []StringMatcher     `json:"param_types,omitempty"`
	ParamCount    *IntRange           `json:"param_count,omitempty"`
	Annotations   []StringMatcher     `json:"annotations,omitempty"`
	OpCodes       *OpCodesMatcher     `json:"op_codes,omitempty"`
	UsingStrings  []StringMatcher     `json:"using_strings,omitempty"`
	UsingFields   []UsingFieldMatcher `json:"using_fields,omitempty"`
	InvokeMethods []StringMatcher     `json:"invoke_methods,omitempty"`
	CallerMethods []StringMatcher     `json:"caller_methods,omitempty"`
}

type StringMatchersGroup struct {
	UnionKey string          `json:"union_key"`
	Matchers []StringMatcher `json:"matchers"`
}

// Scope 是所有搜索请求共有的范围限定
type Scope struct {
	SearchPackages     []string `json:"search_packages,omitempty"`
	ExcludePackages    []string `json:"exclude_packages,omitempty"`
	IgnorePackagesCase bool     `json:"ignore_packages_case,omitempty"`
	InClasses          []int64  `json:"in_classes,omitempty"`
}

type FindClass struct {
	Scope
	FindFirst bool          `json:"find_first,omitempty"`
	Matcher   *ClassMatcher `json:"matcher,omitempty"`
}

type FindMethod struct {
	Scope
	InMethods []int64        `json:"in_methods,omitempty"`
	FindFirst bool           `json:"find_first,omitempty"`
	Matcher   *MethodMatcher `json:"matcher,omitempty"`
}

type FindField struct {
	Scope
	InFields  []int64       `json:"in_fields,omitempty"`
	FindFirst bool          `json:"find_first,omitempty"`
	Matcher   *FieldMatcher `json:"matcher,omitempty"`
}

type BatchFindClassUsingStrings struct {
	Scope
	Groups []StringMatchersGroup `json:"groups"`
}

type BatchFindMethodUsingStrings struct {
	Scope
	InMethods []int64               `json:"in_methods,omitempty"`
	Groups    []StringMatchersGroup `json:"groups"`
}

// 便捷构造
func Equals(v string) *StringMatcher {
	return &StringMatcher{Value: v, MatchType: schema.StringMatchTypeEqual}
}

func Contains(v string) *StringMatcher {
	return &StringMatcher{Value: v, MatchType: schema.StringMatchTypeContains}
}

func StartsWith(v string) *StringMatcher {
	return &StringMatcher{Value: v, MatchType: schema.StringMatchTypeStartWith}
}

func EndsWith(v string) *StringMatcher {
	return &StringMatcher{Value: v, MatchType: schema.StringMatchTypeEndWith}
}

func Similar(v string) *StringMatcher {
	return &StringMatcher{Value: v, MatchType: schema.StringMatchTypeSimilarRegex}
}
