package engine

import (
	"strings"

	"github.com/apk-analysis/dexkit-go/internal/dex"
	"github.com/apk-analysis/dexkit-go/internal/query"
	"github.com/apk-analysis/dexkit-go/internal/schema"
)

// matchString nil 匹配器匹配任意值
func matchString(m *query.StringMatcher, s string) bool {
	if m == nil {
		return true
	}
	v := m.Value
	if m.IgnoreCase {
		v = strings.ToLower(v)
		s = strings.ToLower(s)
	}
	switch m.MatchType {
	case schema.StringMatchTypeContains:
		return strings.Contains(s, v)
	case schema.StringMatchTypeStartWith:
		return strings.HasPrefix(s, v)
	case schema.StringMatchTypeEndWith:
		return strings.HasSuffix(s, v)
	case schema.StringMatchTypeEqual:
		return s == v
	case schema.StringMatchTypeSimilarRegex:
		return matchSimilar(v, s)
	}
	return false
}

// matchSimilar 只识别 ^ 和 $ 锚点，其余字符按字面比较
func matchSimilar(pattern, s string) bool {
	head := strings.HasPrefix(pattern, "^")
	if head {
		pattern = pattern[1:]
	}
	tail := strings.HasSuffix(pattern, "$")
	if tail {
		pattern = pattern[:len(pattern)-1]
	}
	switch {
	case head && tail:
		return s == pattern
	case head:
		return strings.HasPrefix(s, pattern)
	case tail:
		return strings.HasSuffix(s, pattern)
	}
	return strings.Contains(s, pattern)
}

// matchEach 每个匹配器都至少匹配 values 中的一个值
func matchEach(ms []query.StringMatcher, values []string) bool {
	for i := range ms {
		found := false
		for _, v := range values {
			if matchString(&ms[i], v) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func matchFlags(m *query.AccessFlagsMatcher, flags uint32) bool {
	if m == nil {
		return true
	}
	if m.MatchType == schema.MatchTypeEqual {
		return flags == m.Flags
	}
	return flags&m.Flags == m.Flags
}

// matchOpCodes -1 为通配
func matchOpCodes(m *query.OpCodesMatcher, ops []byte) bool {
	if m == nil {
		return true
	}
	if !m.Size.Contains(len(ops)) {
		return false
	}
	pat := m.OpCodes
	if len(pat) > len(ops) {
		return false
	}
	at := func(off int) bool {
		for i, p := range pat {
			if p != -1 && int16(ops[off+i]) != p {
				return false
			}
		}
		return true
	}
	switch m.MatchType {
	case schema.OpCodeMatchTypeStartWith:
		return at(0)
	case schema.OpCodeMatchTypeEndWith:
		return at(len(ops) - len(pat))
	case schema.OpCodeMatchTypeEqual:
		return len(ops) == len(pat) && at(0)
	}
	for off := 0; off+len(pat) <= len(ops); off++ {
		if at(off) {
			return true
		}
	}
	return false
}

// scope 是转换为描述符前缀的包范围
type scope struct {
	include    []string
	exclude    []string
	ignoreCase bool
	inClasses  map[int64]struct{}
}

func packagePrefix(pkg string, ignoreCase bool) string {
	p := "L" + strings.ReplaceAll(strings.Trim(pkg, "."), ".", "/") + "/"
	if ignoreCase {
		p = strings.ToLower(p)
	}
	return p
}

func newScope(s query.Scope) *scope {
	sc := &scope{ignoreCase: s.IgnorePackagesCase, inClasses: idSet(s.InClasses)}
	for _, p := range s.SearchPackages {
		sc.include = append(sc.include, packagePrefix(p, sc.ignoreCase))
	}
	for _, p := range s.ExcludePackages {
		sc.exclude = append(sc.exclude, packagePrefix(p, sc.ignoreCase))
	}
	return sc
}

func idSet(ids []int64) map[int64]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func inSet(set map[int64]struct{}, id int64) bool {
	if set == nil {
		return true
	}
	_, ok := set[id]
	return ok
}

func (sc *scope) allows(desc string, id int64) bool {
	if !inSet(sc.inClasses, id) {
		return false
	}
	if sc.ignoreCase {
		desc = strings.ToLower(desc)
	}
	for _, p := range sc.exclude {
		if strings.HasPrefix(desc, p) {
			return false
		}
	}
	if len(sc.include) == 0 {
		return true
	}
	for _, p := range sc.include {
		if strings.HasPrefix(desc, p) {
			return true
		}
	}
	return false
}

// annotationNames 返回注解类型的 Java 名
func annotationNames(img *image, list []dex.Annotation) []string {
	names := make([]string, len(list))
	for i, a := range list {
		names[i] = dex.JavaName(img.file.TypeDescriptor(a.TypeIdx))
	}
	return names
}

func (e *Engine) matchClass(img *image, c *classInfo, m *query.ClassMatcher) bool {
	if m == nil {
		return true
	}
	if !matchString(m.ClassName, dex.JavaName(c.desc)) ||
		!matchString(m.SourceFile, img.file.SourceFile(c.def)) ||
		!matchFlags(m.AccessFlags, c.def.AccessFlags) {
		return false
	}
	if m.SuperClass != nil {
		super := ""
		if c.def.SuperclassIdx != dex.NoIndex {
			super = dex.JavaName(img.file.TypeDescriptor(c.def.SuperclassIdx))
		}
		if !matchString(m.SuperClass, super) {
			return false
		}
	}
	if !m.FieldCount.Contains(len(c.data.StaticFields)+len(c.data.InstanceFields)) ||
		!m.MethodCount.Contains(len(c.data.DirectMethods)+len(c.data.VirtualMethods)) {
		return false
	}
	if len(m.Interfaces) > 0 {
		idxs := img.interfacesOf(c)
		names := make([]string, len(idxs))
		for i, t := range idxs {
			names[i] = dex.JavaName(img.file.TypeDescriptor(t))
		}
		if !matchEach(m.Interfaces, names) {
			return false
		}
	}
	if len(m.Annotations) > 0 && !matchEach(m.Annotations, annotationNames(img, c.annotations.Class)) {
		return false
	}
	if len(m.UsingStrings) > 0 && !matchEach(m.UsingStrings, img.classStrings(c)) {
		return false
	}
	return true
}

func (e *Engine) matchField(v fieldView, m *query.FieldMatcher) bool {
	if m == nil {
		return true
	}
	md, ok := dex.ParseMemberDescriptor(v.desc())
	if !ok {
		return false
	}
	if !matchString(m.Name, md.Name) ||
		!matchString(m.DeclaredClass, dex.JavaName(md.Class)) ||
		!matchString(m.Type, dex.JavaName(md.Type)) ||
		!matchFlags(m.AccessFlags, v.info.flags) {
		return false
	}
	if len(m.Annotations) > 0 {
		var names []string
		if c := v.class(); c != nil {
			names = annotationNames(v.img, c.annotations.Fields[v.idx])
		}
		if !matchEach(m.Annotations, names) {
			return false
		}
	}
	if len(m.ReadMethods) > 0 || len(m.WriteMethods) > 0 {
		rv := e.reverseRefs()
		r := ref{dex: v.img.id, idx: v.idx}
		if !matchEach(m.ReadMethods, e.methodDescs(rv.readers[r])) ||
			!matchEach(m.WriteMethods, e.methodDescs(rv.writers[r])) {
			return false
		}
	}
	return true
}

func (e *Engine) methodDescs(refs []ref) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = e.images[r.dex].methodDesc[r.idx]
	}
	return out
}

func (e *Engine) matchMethod(v methodView, m *query.MethodMatcher) bool {
	if m == nil {
		return true
	}
	f := v.img.file
	mid := f.Methods[v.idx]
	proto := v.proto()

	if !matchString(m.Name, f.String(mid.NameIdx)) ||
		!matchString(m.DeclaredClass, dex.JavaName(f.TypeDescriptor(uint32(mid.ClassIdx)))) ||
		!matchString(m.ReturnType, dex.JavaName(f.TypeDescriptor(proto.ReturnTypeIdx))) ||
		!matchFlags(m.AccessFlags, v.info.flags) ||
		!m.ParamCount.Contains(len(proto.Params)) {
		return false
	}
	if len(m.ParamTypes) > 0 {
		if len(m.ParamTypes) != len(proto.Params) {
			return false
		}
		for i, t := range proto.Params {
			if !matchString(&m.ParamTypes[i], dex.JavaName(f.TypeDescriptor(t))) {
				return false
			}
		}
	}
	if len(m.Annotations) > 0 {
		var names []string
		if c := v.class(); c != nil {
			names = annotationNames(v.img, c.annotations.Methods[v.idx])
		}
		if !matchEach(m.Annotations, names) {
			return false
		}
	}
	if m.OpCodes != nil && !matchOpCodes(m.OpCodes, v.img.opCodes(v.idx)) {
		return false
	}

	refs := v.img.refsOf(v.idx)
	if len(m.UsingStrings) > 0 && !matchEach(m.UsingStrings, refs.strings) {
		return false
	}
	if len(m.InvokeMethods) > 0 {
		descs := make([]string, len(refs.invokes))
		for i, idx := range refs.invokes {
			descs[i] = v.img.methodDesc[idx]
		}
		if !matchEach(m.InvokeMethods, descs) {
			return false
		}
	}
	for i := range m.UsingFields {
		if !e.usesField(v.img, refs.fields, &m.UsingFields[i]) {
			return false
		}
	}
	if len(m.CallerMethods) > 0 {
		callers := e.reverseRefs().callers[ref{dex: v.img.id, idx: v.idx}]
		if !matchEach(m.CallerMethods, e.methodDescs(callers)) {
			return false
		}
	}
	return true
}

func (e *Engine) usesField(img *image, uses []fieldUse, m *query.UsingFieldMatcher) bool {
	for _, use := range uses {
		switch m.UsingType {
		case schema.UsingTypeGet:
			if use.access != dex.FieldRead {
				continue
			}
		case schema.UsingTypePut:
			if use.access != dex.FieldWrite {
				continue
			}
		}
		if e.matchField(e.field(e.localField(img, use.idx)), &m.Field) {
			return true
		}
	}
	return false
}
