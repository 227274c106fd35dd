package engine

import (
	"sync"

	"github.com/apk-analysis/dexkit-go/internal/dex"
	"github.com/sirupsen/logrus"
)

// ref 定位某个 dex 中的类型、方法或字段索引
type ref struct {
	dex int
	idx uint32
}

func (r ref) id() int64 {
	return encodeID(r.dex, r.idx)
}

// encodeID 高 32 位为 dex id，低 32 位为 dex 内索引
func encodeID(dexID int, idx uint32) int64 {
	return int64(dexID)<<32 | int64(idx)
}

func decodeID(id int64) ref {
	return ref{dex: int(id >> 32), idx: uint32(id)}
}

type classInfo struct {
	def         *dex.ClassDef
	desc        string
	data        *dex.ClassData
	annotations *dex.AnnotationsDirectory
}

type methodInfo struct {
	class   int // image.classes 下标
	flags   uint32
	codeOff uint32
}

type fieldInfo struct {
	class int
	flags uint32
}

// image 是单个 dex 的定义索引
type image struct {
	id     int
	name   string
	file   *dex.File
	logger *logrus.Logger

	classes     []classInfo
	classByType map[uint32]int
	methods     map[uint32]methodInfo
	fields      map[uint32]fieldInfo
	// 定义顺序：按 class_def 顺序，类内 direct/virtual、static/instance
	methodOrder []uint32
	fieldOrder  []uint32
	methodDesc  []string
	fieldDesc   []string

	codeOnce sync.Once
	refs     *codeRefs
	refsErr  error
}

func newImage(id int, name string, f *dex.File, logger *logrus.Logger) *image {
	img := &image{
		id:          id,
		name:        name,
		file:        f,
		logger:      logger,
		classes:     make([]classInfo, 0, len(f.ClassDefs)),
		classByType: make(map[uint32]int, len(f.ClassDefs)),
		methods:     make(map[uint32]methodInfo),
		fields:      make(map[uint32]fieldInfo),
		methodDesc:  make([]string, len(f.Methods)),
		fieldDesc:   make([]string, len(f.Fields)),
	}
	for i := range f.Methods {
		img.methodDesc[i] = f.MethodDescriptor(uint32(i))
	}
	for i := range f.Fields {
		img.fieldDesc[i] = f.FieldDescriptor(uint32(i))
	}

	log := logger.WithFields(logrus.Fields{"dex_id": id, "dex": name})
	for i := range f.ClassDefs {
		def := &f.ClassDefs[i]
		if _, dup := img.classByType[def.ClassIdx]; dup {
			continue
		}
		ci := classInfo{def: def, desc: f.TypeDescriptor(def.ClassIdx)}

		data, err := f.ClassData(def)
		if err != nil {
			log.WithError(err).WithField("class", ci.desc).Warn("Failed to read class data")
			data = &dex.ClassData{}
		}
		ci.data = data

		annotations, err := f.Annotations(def)
		if err != nil {
			log.WithError(err).WithField("class", ci.desc).Warn("Failed to read annotations")
			annotations = &dex.AnnotationsDirectory{}
		}
		ci.annotations = annotations

		slot := len(img.classes)
		img.classes = append(img.classes, ci)
		img.classByType[def.ClassIdx] = slot

		for _, m := range data.Methods() {
			if _, dup := img.methods[m.MethodIdx]; dup {
				continue
			}
			img.methods[m.MethodIdx] = methodInfo{class: slot, flags: m.AccessFlags, codeOff: m.CodeOff}
			img.methodOrder = append(img.methodOrder, m.MethodIdx)
		}
		for _, fd := range data.Fields() {
			if _, dup := img.fields[fd.FieldIdx]; dup {
				continue
			}
			img.fields[fd.FieldIdx] = fieldInfo{class: slot, flags: fd.AccessFlags}
			img.fieldOrder = append(img.fieldOrder, fd.FieldIdx)
		}
	}
	return img
}

func (img *image) defines(typeIdx uint32) bool {
	_, ok := img.classByType[typeIdx]
	return ok
}

func (img *image) definesMethod(idx uint32) bool {
	_, ok := img.methods[idx]
	return ok
}

func (img *image) definesField(idx uint32) bool {
	_, ok := img.fields[idx]
	return ok
}

// class 返回类型在本 dex 中的定义
func (img *image) class(typeIdx uint32) (*classInfo, bool) {
	slot, ok := img.classByType[typeIdx]
	if !ok {
		return nil, false
	}
	return &img.classes[slot], true
}

func (e *Engine) image(dexID int) (*image, bool) {
	if dexID < 0 || dexID >= len(e.images) {
		return nil, false
	}
	return e.images[dexID], true
}

// classRef 将 id 规范化为类型的定义位置，id 越界时返回 false
func (e *Engine) classRef(id int64) (ref, bool) {
	r := decodeID(id)
	img, ok := e.image(r.dex)
	if !ok || int(r.idx) >= len(img.file.Types) {
		return ref{}, false
	}
	return e.typeRef(img, r.idx), true
}

func (e *Engine) methodRef(id int64) (ref, bool) {
	r := decodeID(id)
	img, ok := e.image(r.dex)
	if !ok || int(r.idx) >= len(img.methodDesc) {
		return ref{}, false
	}
	return e.methodByDesc[img.methodDesc[r.idx]], true
}

func (e *Engine) fieldRef(id int64) (ref, bool) {
	r := decodeID(id)
	img, ok := e.image(r.dex)
	if !ok || int(r.idx) >= len(img.fieldDesc) {
		return ref{}, false
	}
	return e.fieldByDesc[img.fieldDesc[r.idx]], true
}

// typeRef 返回本 dex 类型索引对应的规范位置
func (e *Engine) typeRef(img *image, typeIdx uint32) ref {
	return e.classByDesc[img.file.TypeDescriptor(typeIdx)]
}

func (e *Engine) typeID(img *image, typeIdx uint32) int64 {
	return e.typeRef(img, typeIdx).id()
}

// localMethod 将本 dex 的方法引用规范化
func (e *Engine) localMethod(img *image, idx uint32) ref {
	return e.methodByDesc[img.methodDesc[idx]]
}

func (e *Engine) localField(img *image, idx uint32) ref {
	return e.fieldByDesc[img.fieldDesc[idx]]
}

// isCanonicalClass 判断本 dex 中的类定义是否为生效的定义
func (e *Engine) isCanonicalClass(img *image, c *classInfo) bool {
	r := e.classByDesc[c.desc]
	return r.dex == img.id && r.idx == c.def.ClassIdx
}

// methodView 是一个方法引用及其定义信息（如有）
type methodView struct {
	img     *image
	idx     uint32
	info    methodInfo
	defined bool
}

func (e *Engine) method(r ref) methodView {
	img := e.images[r.dex]
	info, ok := img.methods[r.idx]
	return methodView{img: img, idx: r.idx, info: info, defined: ok}
}

func (v methodView) desc() string {
	return v.img.methodDesc[v.idx]
}

func (v methodView) id() int64 {
	return encodeID(v.img.id, v.idx)
}

func (v methodView) proto() dex.ProtoID {
	return v.img.file.Protos[v.img.file.Methods[v.idx].ProtoIdx]
}

func (v methodView) class() *classInfo {
	if !v.defined {
		return nil
	}
	return &v.img.classes[v.info.class]
}

type fieldView struct {
	img     *image
	idx     uint32
	info    fieldInfo
	defined bool
}

func (e *Engine) field(r ref) fieldView {
	img := e.images[r.dex]
	info, ok := img.fields[r.idx]
	return fieldView{img: img, idx: r.idx, info: info, defined: ok}
}

func (v fieldView) desc() string {
	return v.img.fieldDesc[v.idx]
}

func (v fieldView) id() int64 {
	return encodeID(v.img.id, v.idx)
}

func (v fieldView) class() *classInfo {
	if !v.defined {
		return nil
	}
	return &v.img.classes[v.info.class]
}
