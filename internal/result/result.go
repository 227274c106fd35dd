// Package result 将引擎返回的 schema 结果解码为 Go 值
package result

import (
	"errors"
	"fmt"

	"github.com/apk-analysis/dexkit-go/internal/dex"
	"github.com/apk-analysis/dexkit-go/internal/schema"
)

// ErrUnexpectedPayload 结果类型与期望不符或结构损坏
var ErrUnexpectedPayload = errors.New("unexpected result payload")

type ClassData struct {
	ID          int64   `json:"id"`
	DexID       int32   `json:"dex_id"`
	SourceFile  string  `json:"source_file,omitempty"`
	AccessFlags uint32  `json:"access_flags"`
	Descriptor  string  `json:"descriptor"`
	SuperClass  int64   `json:"super_class"`
	Interfaces  []int64 `json:"interfaces,omitempty"`
	Methods     []int64 `json:"methods,omitempty"`
	Fields      []int64 `json:"fields,omitempty"`
}

// Name 返回 Java 类名
func (c ClassData) Name() string {
	return dex.JavaName(c.Descriptor)
}

type MethodData struct {
	ID          int64   `json:"id"`
	DexID       int32   `json:"dex_id"`
	ClassID     int64   `json:"class_id"`
	AccessFlags uint32  `json:"access_flags"`
	Descriptor  string  `json:"descriptor"`
	ReturnType  int64   `json:"return_type"`
	ParamTypes  []int64 `json:"param_types,omitempty"`
}

// Name 返回方法名
func (m MethodData) Name() string {
	md, ok := dex.ParseMemberDescriptor(m.Descriptor)
	if !ok {
		return ""
	}
	return md.Name
}

type FieldData struct {
	ID          int64  `json:"id"`
	DexID       int32  `json:"dex_id"`
	ClassID     int64  `json:"class_id"`
	AccessFlags uint32 `json:"access_flags"`
	Descriptor  string `json:"descriptor"`
	TypeID      int64  `json:"type_id"`
}

type UsingField struct {
	Field     FieldData        `json:"field"`
	UsingType schema.UsingType `json:"using_type"`
}

type EncodeValue struct {
	Type       schema.AnnotationEncodeValueType `json:"type"`
	Long       int64                            `json:"long,omitempty"`
	Double     float64                          `json:"double,omitempty"`
	String     string                           `json:"string,omitempty"`
	Bool       bool                             `json:"bool,omitempty"`
	Array      []EncodeValue                    `json:"array,omitempty"`
	Annotation *AnnotationData                  `json:"annotation,omitempty"`
}

type AnnotationElement struct {
	Name  string      `json:"name"`
	Value EncodeValue `json:"value"`
}

type AnnotationData struct {
	DexID          int32                           `json:"dex_id"`
	TypeID         int64                           `json:"type_id"`
	TypeDescriptor string                          `json:"type_descriptor"`
	Visibility     schema.AnnotationVisibilityType `json:"visibility"`
	Elements       []AnnotationElement             `json:"elements,omitempty"`
}

// decode 空缓冲区表示无结果，返回零值
func decode[T any](buf []byte, identifier string, convert func([]byte) T) (out T, err error) {
	if len(buf) == 0 {
		return out, nil
	}
	if !schema.RootInBounds(buf) || !schema.BufferHasIdentifier(buf, identifier) {
		return out, fmt.Errorf("%w: expected %q", ErrUnexpectedPayload, identifier)
	}
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out, err = zero, fmt.Errorf("%w: %v", ErrUnexpectedPayload, r)
		}
	}()
	return convert(buf), nil
}

func int64s(n int, get func(int) int64) []int64 {
	if n == 0 {
		return nil
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = get(i)
	}
	return out
}

func tables[S any, T any](n int, get func(*S, int) bool, conv func(*S) T) []T {
	if n == 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		s := new(S)
		get(s, i)
		out[i] = conv(s)
	}
	return out
}

func classData(c *schema.ClassMeta) ClassData {
	return ClassData{
		ID:          c.Id(),
		DexID:       c.DexId(),
		SourceFile:  string(c.SourceFile()),
		AccessFlags: c.AccessFlags(),
		Descriptor:  string(c.DexDescriptor()),
		SuperClass:  c.SuperClass(),
		Interfaces:  int64s(c.InterfacesLength(), c.Interfaces),
		Methods:     int64s(c.MethodsLength(), c.Methods),
		Fields:      int64s(c.FieldsLength(), c.Fields),
	}
}

func methodData(m *schema.MethodMeta) MethodData {
	return MethodData{
		ID:          m.Id(),
		DexID:       m.DexId(),
		ClassID:     m.ClassId(),
		AccessFlags: m.AccessFlags(),
		Descriptor:  string(m.DexDescriptor()),
		ReturnType:  m.ReturnType(),
		ParamTypes:  int64s(m.ParameterTypesLength(), m.ParameterTypes),
	}
}

func fieldData(f *schema.FieldMeta) FieldData {
	return FieldData{
		ID:          f.Id(),
		DexID:       f.DexId(),
		ClassID:     f.ClassId(),
		AccessFlags: f.AccessFlags(),
		Descriptor:  string(f.DexDescriptor()),
		TypeID:      f.TypeId(),
	}
}

func encodeValue(v *schema.AnnotationEncodeValueMeta) EncodeValue {
	out := EncodeValue{
		Type:   v.Type(),
		Long:   v.LongValue(),
		Double: v.DoubleValue(),
		String: string(v.StringValue()),
		Bool:   v.BoolValue(),
		Array:  tables(v.ArrayLength(), v.Array, encodeValue),
	}
	if a := v.Annotation(nil); a != nil {
		ad := annotationData(a)
		out.Annotation = &ad
	}
	return out
}

func annotationData(a *schema.AnnotationMeta) AnnotationData {
	return AnnotationData{
		DexID:          a.DexId(),
		TypeID:         a.TypeId(),
		TypeDescriptor: string(a.TypeDescriptor()),
		Visibility:     a.Visibility(),
		Elements: tables(a.ElementsLength(), a.Elements, func(e *schema.AnnotationElementMeta) AnnotationElement {
			el := AnnotationElement{Name: string(e.Name())}
			if v := e.Value(nil); v != nil {
				el.Value = encodeValue(v)
			}
			return el
		}),
	}
}

func Classes(buf []byte) ([]ClassData, error) {
	return decode(buf, schema.ClassMetaArrayHolderIdentifier, func(buf []byte) []ClassData {
		h := schema.GetRootAsClassMetaArrayHolder(buf, 0)
		return tables(h.ClassesLength(), h.Classes, classData)
	})
}

func Methods(buf []byte) ([]MethodData, error) {
	return decode(buf, schema.MethodMetaArrayHolderIdentifier, func(buf []byte) []MethodData {
		h := schema.GetRootAsMethodMetaArrayHolder(buf, 0)
		return tables(h.MethodsLength(), h.Methods, methodData)
	})
}

func Fields(buf []byte) ([]FieldData, error) {
	return decode(buf, schema.FieldMetaArrayHolderIdentifier, func(buf []byte) []FieldData {
		h := schema.GetRootAsFieldMetaArrayHolder(buf, 0)
		return tables(h.FieldsLength(), h.Fields, fieldData)
	})
}

// BatchClasses 按 union key 分组返回
func BatchClasses(buf []byte) (map[string][]ClassData, error) {
	return decode(buf, schema.BatchClassMetaArrayHolderIdentifier, func(buf []byte) map[string][]ClassData {
		h := schema.GetRootAsBatchClassMetaArrayHolder(buf, 0)
		out := make(map[string][]ClassData, h.ItemsLength())
		item := new(schema.BatchClassMeta)
		for i := 0; i < h.ItemsLength(); i++ {
			h.Items(item, i)
			out[string(item.UnionKey())] = tables(item.ClassesLength(), item.Classes, classData)
		}
		return out
	})
}

func BatchMethods(buf []byte) (map[string][]MethodData, error) {
	return decode(buf, schema.BatchMethodMetaArrayHolderIdentifier, func(buf []byte) map[string][]MethodData {
		h := schema.GetRootAsBatchMethodMetaArrayHolder(buf, 0)
		out := make(map[string][]MethodData, h.ItemsLength())
		item := new(schema.BatchMethodMeta)
		for i := 0; i < h.ItemsLength(); i++ {
			h.Items(item, i)
			out[string(item.UnionKey())] = tables(item.MethodsLength(), item.Methods, methodData)
		}
		return out
	})
}

func Annotations(buf []byte) ([]AnnotationData, error) {
	return decode(buf, schema.AnnotationMetaArrayHolderIdentifier, func(buf []byte) []AnnotationData {
		h := schema.GetRootAsAnnotationMetaArrayHolder(buf, 0)
		return tables(h.AnnotationsLength(), h.Annotations, annotationData)
	})
}

// ParameterAnnotations 按参数位置返回注解
func ParameterAnnotations(buf []byte) ([][]AnnotationData, error) {
	return decode(buf, schema.ParametersAnnotationMetaArrayHolderIdentifier, func(buf []byte) [][]AnnotationData {
		h := schema.GetRootAsParametersAnnotationMetaArrayHolder(buf, 0)
		return tables(h.AnnotationsArrayLength(), h.AnnotationsArray, func(p *schema.ParameterAnnotationMeta) []AnnotationData {
			return tables(p.AnnotationsLength(), p.Annotations, annotationData)
		})
	})
}

func UsingFields(buf []byte) ([]UsingField, error) {
	return decode(buf, schema.UsingFieldMetaArrayHolderIdentifier, func(buf []byte) []UsingField {
		h := schema.GetRootAsUsingFieldMetaArrayHolder(buf, 0)
		return tables(h.ItemsLength(), h.Items, func(u *schema.UsingFieldMeta) UsingField {
			uf := UsingField{UsingType: u.UsingType()}
			if f := u.Field(nil); f != nil {
				uf.Field = fieldData(f)
			}
			return uf
		})
	})
}
