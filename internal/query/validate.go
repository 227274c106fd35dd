package query

import (
	"fmt"

	"github.com/apk-analysis/dexkit-go/internal/schema"
)

func (m *StringMatcher) validate(field string) error {
	if m == nil {
		return nil
	}
	if _, ok := schema.EnumNamesStringMatchType[m.MatchType]; !ok {
		return fmt.Errorf("%s: unknown string match type %d", field, m.MatchType)
	}
	return nil
}

func validateMatchers(field string, ms []StringMatcher) error {
	for i := range ms {
		if err := ms[i].validate(fmt.Sprintf("%s[%d]", field, i)); err != nil {
			return err
		}
	}
	return nil
}

func (m *AccessFlagsMatcher) validate(field string) error {
	if m == nil {
		return nil
	}
	if _, ok := schema.EnumNamesMatchType[m.MatchType]; !ok {
		return fmt.Errorf("%s: unknown match type %d", field, m.MatchType)
	}
	return nil
}

func (r *IntRange) validate(field string) error {
	if r == nil {
		return nil
	}
	if r.Min > r.Max {
		return fmt.Errorf("%s: min %d greater than max %d", field, r.Min, r.Max)
	}
	return nil
}

// Contains 判断 n 是否落在区间内，nil 区间不限制
func (r *IntRange) Contains(n int) bool {
	return r == nil || (int64(n) >= int64(r.Min) && int64(n) <= int64(r.Max))
}

func (m *OpCodesMatcher) validate() error {
	if m == nil {
		return nil
	}
	if _, ok := schema.EnumNamesOpCodeMatchType[m.MatchType]; !ok {
		return fmt.Errorf("op_codes: unknown match type %d", m.MatchType)
	}
	for _, op := range m.OpCodes {
		if op < -1 || op > 0xff {
			return fmt.Errorf("op_codes: opcode %d out of range", op)
		}
	}
	return m.Size.validate("op_codes.size")
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *ClassMatcher) validate() error {
	if m == nil {
		return nil
	}
	return firstError(
		m.SourceFile.validate("source_file"),
		m.ClassName.validate("class_name"),
		m.AccessFlags.validate("access_flags"),
		m.SuperClass.validate("super_class"),
		validateMatchers("interfaces", m.Interfaces),
		validateMatchers("annotations", m.Annotations),
		validateMatchers("using_strings", m.UsingStrings),
		m.FieldCount.validate("field_count"),
		m.MethodCount.validate("method_count"),
	)
}

func (m *FieldMatcher) validate() error {
	if m == nil {
		return nil
	}
	return firstError(
		m.Name.validate("name"),
		m.AccessFlags.validate("access_flags"),
		m.DeclaredClass.validate("declared_class"),
		m.Type.validate("type"),
		validateMatchers("annotations", m.Annotations),
		validateMatchers("read_methods", m.ReadMethods),
		validateMatchers("write_methods", m.WriteMethods),
	)
}

func (m *MethodMatcher) validate() error {
	if m == nil {
		return nil
	}
	for i, u := range m.UsingFields {
		if _, ok := schema.EnumNamesUsingType[u.UsingType]; !ok {
			return fmt.Errorf("using_fields[%d]: unknown using type %d", i, u.UsingType)
		}
		if err := u.Field.validate(); err != nil {
			return fmt.Errorf("using_fields[%d].%w", i, err)
		}
	}
	return firstError(
		m.Name.validate("name"),
		m.AccessFlags.validate("access_flags"),
		m.DeclaredClass.validate("declared_class"),
		m.ReturnType.validate("return_type"),
		validateMatchers("param_types", m.ParamTypes),
		m.ParamCount.validate("param_count"),
		validateMatchers("annotations", m.Annotations),
		m.OpCodes.validate(),
		validateMatchers("using_strings", m.UsingStrings),
		validateMatchers("invoke_methods", m.InvokeMethods),
		validateMatchers("caller_methods", m.CallerMethods),
	)
}

func validateGroups(groups []StringMatchersGroup) error {
	if len(groups) == 0 {
		return fmt.Errorf("matchers: at least one group required")
	}
	seen := make(map[string]struct{}, len(groups))
	for i, g := range groups {
		if g.UnionKey == "" {
			return fmt.Errorf("matchers[%d]: empty union key", i)
		}
		if _, dup := seen[g.UnionKey]; dup {
			return fmt.Errorf("matchers[%d]: duplicate union key %q", i, g.UnionKey)
		}
		seen[g.UnionKey] = struct{}{}
		if len(g.Matchers) == 0 {
			return fmt.Errorf("matchers[%d]: group %q has no matchers", i, g.UnionKey)
		}
		if err := validateMatchers(fmt.Sprintf("matchers[%d]", i), g.Matchers); err != nil {
			return err
		}
	}
	return nil
}

// Validate 检查枚举取值与区间等 schema 本身无法表达的约束
func (q *FindClass) Validate() error {
	return q.Matcher.validate()
}

func (q *FindMethod) Validate() error {
	return q.Matcher.validate()
}

func (q *FindField) Validate() error {
	return q.Matcher.validate()
}

func (q *BatchFindClassUsingStrings) Validate() error {
	return validateGroups(q.Groups)
}

func (q *BatchFindMethodUsingStrings) Validate() error {
	return validateGroups(q.Groups)
}
