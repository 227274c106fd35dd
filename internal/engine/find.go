package engine

import (
	"github.com/apk-analysis/dexkit-go/internal/query"
	flatbuffers "github.com/google/flatbuffers/go"
)

// scopedClasses 返回 dex 中落在范围内且为生效定义的类
func (e *Engine) scopedClasses(img *image, sc *scope) []*classInfo {
	var out []*classInfo
	for i := range img.classes {
		c := &img.classes[i]
		if !e.isCanonicalClass(img, c) || !sc.allows(c.desc, encodeID(img.id, c.def.ClassIdx)) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FindClass 按匹配条件查找类
func (e *Engine) FindClass(q *query.FindClass) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	sc := newScope(q.Scope)
	refs := forEachImage(e, func(img *image) []ref {
		var out []ref
		for _, c := range e.scopedClasses(img, sc) {
			if e.matchClass(img, c, q.Matcher) {
				out = append(out, ref{dex: img.id, idx: c.def.ClassIdx})
				if q.FindFirst {
					break
				}
			}
		}
		return out
	})
	if q.FindFirst && len(refs) > 1 {
		refs = refs[:1]
	}
	return e.finishClasses(refs)
}

// scopedMethods 遍历范围内的方法定义
func (e *Engine) scopedMethods(img *image, sc *scope, inMethods map[int64]struct{}, fn func(v methodView) bool) {
	for _, c := range e.scopedClasses(img, sc) {
		for _, m := range c.data.Methods() {
			r := ref{dex: img.id, idx: m.MethodIdx}
			if !inSet(inMethods, r.id()) || e.localMethod(img, m.MethodIdx) != r {
				continue
			}
			if !fn(e.method(r)) {
				return
			}
		}
	}
}

// FindMethod 按匹配条件查找方法
func (e *Engine) FindMethod(q *query.FindMethod) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	sc := newScope(q.Scope)
	inMethods := idSet(q.InMethods)
	refs := forEachImage(e, func(img *image) []ref {
		var out []ref
		e.scopedMethods(img, sc, inMethods, func(v methodView) bool {
			if e.matchMethod(v, q.Matcher) {
				out = append(out, ref{dex: img.id, idx: v.idx})
				return !q.FindFirst
			}
			return true
		})
		return out
	})
	if q.FindFirst && len(refs) > 1 {
		refs = refs[:1]
	}
	return e.finishMethods(refs)
}

// FindField 按匹配条件查找字段
func (e *Engine) FindField(q *query.FindField) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	sc := newScope(q.Scope)
	inFields := idSet(q.InFields)
	refs := forEachImage(e, func(img *image) []ref {
		var out []ref
	classes:
		for _, c := range e.scopedClasses(img, sc) {
			for _, f := range c.data.Fields() {
				r := ref{dex: img.id, idx: f.FieldIdx}
				if !inSet(inFields, r.id()) || e.localField(img, f.FieldIdx) != r {
					continue
				}
				if e.matchField(e.field(r), q.Matcher) {
					out = append(out, r)
					if q.FindFirst {
						break classes
					}
				}
			}
		}
		return out
	})
	if q.FindFirst && len(refs) > 1 {
		refs = refs[:1]
	}
	return e.finishFields(refs)
}

type groupHit struct {
	group int
	r     ref
}

// matchGroups 返回 strings 满足的分组下标
func matchGroups(groups []query.StringMatchersGroup, strings []string) []int {
	if len(strings) == 0 {
		return nil
	}
	var out []int
	for i := range groups {
		if matchEach(groups[i].Matchers, strings) {
			out = append(out, i)
		}
	}
	return out
}

func collectGroups(groups []query.StringMatchersGroup, hits []groupHit) []group {
	out := make([]group, len(groups))
	for i := range groups {
		out[i].key = groups[i].UnionKey
	}
	for _, h := range hits {
		out[h.group].refs = append(out[h.group].refs, h.r)
	}
	return out
}

// BatchFindClassUsingStrings 按分组查找使用了全部指定字符串的类
func (e *Engine) BatchFindClassUsingStrings(q *query.BatchFindClassUsingStrings) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	sc := newScope(q.Scope)
	hits := forEachImage(e, func(img *image) []groupHit {
		var out []groupHit
		for _, c := range e.scopedClasses(img, sc) {
			for _, g := range matchGroups(q.Groups, img.classStrings(c)) {
				out = append(out, groupHit{group: g, r: ref{dex: img.id, idx: c.def.ClassIdx}})
			}
		}
		return out
	})
	return e.finishBatchClasses(collectGroups(q.Groups, hits))
}

// BatchFindMethodUsingStrings 按分组查找使用了全部指定字符串的方法
func (e *Engine) BatchFindMethodUsingStrings(q *query.BatchFindMethodUsingStrings) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	sc := newScope(q.Scope)
	inMethods := idSet(q.InMethods)
	hits := forEachImage(e, func(img *image) []groupHit {
		var out []groupHit
		e.scopedMethods(img, sc, inMethods, func(v methodView) bool {
			for _, g := range matchGroups(q.Groups, img.refsOf(v.idx).strings) {
				out = append(out, groupHit{group: g, r: ref{dex: img.id, idx: v.idx}})
			}
			return true
		})
		return out
	})
	return e.finishBatchMethods(collectGroups(q.Groups, hits))
}
