package engine

import (
	"sync"

	"github.com/apk-analysis/dexkit-go/internal/dex"
	"github.com/sirupsen/logrus"
)

type fieldUse struct {
	idx    uint32
	access dex.FieldAccess
}

// methodRefs 是一个方法体内引用的字符串、方法和字段，均已去重并保持首次出现顺序
type methodRefs struct {
	strings []string
	invokes []uint32
	fields  []fieldUse
}

// codeRefs 是单个 dex 内全部方法体的交叉引用
type codeRefs struct {
	methods map[uint32]*methodRefs
}

var emptyRefs = &methodRefs{}

func (c *codeRefs) of(methodIdx uint32) *methodRefs {
	if r, ok := c.methods[methodIdx]; ok {
		return r
	}
	return emptyRefs
}

// code 首次调用时扫描全部方法体
func (img *image) code() (*codeRefs, error) {
	img.codeOnce.Do(func() {
		img.refs, img.refsErr = img.scanCode()
	})
	return img.refs, img.refsErr
}

// refsOf 返回方法体引用，扫描失败时视为无引用
func (img *image) refsOf(methodIdx uint32) *methodRefs {
	refs, err := img.code()
	if refs == nil {
		if err != nil {
			img.logger.WithError(err).WithField("dex_id", img.id).Debug("Code references unavailable")
		}
		return emptyRefs
	}
	return refs.of(methodIdx)
}

func (img *image) scanCode() (*codeRefs, error) {
	refs := &codeRefs{methods: make(map[uint32]*methodRefs, len(img.methods))}
	broken := 0
	for _, idx := range img.methodOrder {
		info := img.methods[idx]
		if info.codeOff == 0 {
			continue
		}
		ci, err := img.file.Code(info.codeOff)
		if err != nil {
			broken++
			continue
		}
		mr, err := img.scanMethod(ci)
		if err != nil {
			broken++
		}
		refs.methods[idx] = mr
	}
	if broken > 0 {
		img.logger.WithFields(logrus.Fields{
			"dex_id":  img.id,
			"methods": broken,
		}).Warn("Skipped malformed method bodies")
	}
	return refs, nil
}

func (img *image) scanMethod(ci *dex.CodeItem) (*methodRefs, error) {
	mr := &methodRefs{}
	seenStr := make(map[uint32]struct{})
	seenMethod := make(map[uint32]struct{})
	seenField := make(map[fieldUse]struct{})

	err := ci.Walk(func(ins dex.Instruction) bool {
		if idx, ok := ins.StringIndex(); ok && int(idx) < len(img.file.Strings) {
			if _, dup := seenStr[idx]; !dup {
				seenStr[idx] = struct{}{}
				mr.strings = append(mr.strings, img.file.Strings[idx])
			}
			return true
		}
		if idx, ok := ins.MethodIndex(); ok && int(idx) < len(img.methodDesc) {
			if _, dup := seenMethod[idx]; !dup {
				seenMethod[idx] = struct{}{}
				mr.invokes = append(mr.invokes, idx)
			}
			return true
		}
		if idx, access, ok := ins.FieldIndex(); ok && int(idx) < len(img.fieldDesc) {
			use := fieldUse{idx: idx, access: access}
			if _, dup := seenField[use]; !dup {
				seenField[use] = struct{}{}
				mr.fields = append(mr.fields, use)
			}
		}
		return true
	})
	return mr, err
}

// opCodes 读取方法的操作码序列，无方法体时返回 nil
func (img *image) opCodes(methodIdx uint32) []byte {
	info, ok := img.methods[methodIdx]
	if !ok || info.codeOff == 0 {
		return nil
	}
	ci, err := img.file.Code(info.codeOff)
	if err != nil {
		return nil
	}
	ops, err := ci.OpCodes()
	if err != nil {
		img.logger.WithError(err).WithField("method", img.methodDesc[methodIdx]).Debug("Truncated method body")
	}
	return ops
}

// classStrings 汇总类中全部方法使用的字符串
func (img *image) classStrings(c *classInfo) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, m := range c.data.Methods() {
		for _, s := range img.refsOf(m.MethodIdx).strings {
			if _, dup := seen[s]; !dup {
				seen[s] = struct{}{}
				out = append(out, s)
			}
		}
	}
	return out
}

// reverseIndex 以规范位置为键的调用者与字段读写者
type reverseIndex struct {
	once    sync.Once
	callers map[ref][]ref
	readers map[ref][]ref
	writers map[ref][]ref
}

// reverseRefs 首次调用时基于全部 dex 构建反向索引，调用方须持有读锁
func (e *Engine) reverseRefs() *reverseIndex {
	rv := e.reverse
	rv.once.Do(func() {
		rv.callers = make(map[ref][]ref)
		rv.readers = make(map[ref][]ref)
		rv.writers = make(map[ref][]ref)
		for _, img := range e.images {
			for _, idx := range img.methodOrder {
				caller := ref{dex: img.id, idx: idx}
				if e.localMethod(img, idx) != caller {
					continue
				}
				mr := img.refsOf(idx)
				for _, callee := range mr.invokes {
					target := e.localMethod(img, callee)
					rv.callers[target] = append(rv.callers[target], caller)
				}
				for _, use := range mr.fields {
					target := e.localField(img, use.idx)
					if use.access == dex.FieldRead {
						rv.readers[target] = appendUnique(rv.readers[target], caller)
					} else {
						rv.writers[target] = appendUnique(rv.writers[target], caller)
					}
				}
			}
		}
	})
	return rv
}

// appendUnique 同一方法连续出现时只记录一次
func appendUnique(list []ref, r ref) []ref {
	if n := len(list); n > 0 && list[n-1] == r {
		return list
	}
	return append(list, r)
}

// interfacesOf 返回类实现的接口类型索引，列表损坏时记录后按无接口处理
func (img *image) interfacesOf(c *classInfo) []uint32 {
	idxs, err := img.file.Interfaces(c.def)
	if err != nil {
		img.logger.WithError(err).WithField("class", c.desc).Debug("Failed to read interfaces")
	}
	return idxs
}
