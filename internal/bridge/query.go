package bridge

import (
	"fmt"
	"slices"
	"time"

	"github.com/apk-analysis/dexkit-go/internal/dex"
	"github.com/apk-analysis/dexkit-go/internal/query"
	flatbuffers "github.com/google/flatbuffers/go"
)

// execute 是所有结构化查询共用的传出路径：调用引擎，将结果复制到分配器给出的缓冲区，
// 并在任何情况下恰好归还一次 builder
func execute[Q any](h *Handle, op string, q Q, run func(Engine, Q) *flatbuffers.Builder) (Result, error) {
	if err := h.usable(); err != nil {
		return Result{}, err
	}
	start := time.Now()
	res, err := h.transfer(run(h.engine, q))
	h.recorder.Observe(op, res.status.String(), res.Len(), time.Since(start))
	if err != nil {
		h.logger.WithError(err).WithField("op", op).Warn("Failed to transfer result")
	}
	return res, err
}

func (h *Handle) transfer(b *flatbuffers.Builder) (Result, error) {
	if b == nil {
		return Result{status: StatusNotFound}, nil
	}
	defer h.engine.ReleaseBuilder(b)
	return h.copyOut(b.FinishedBytes())
}

// copyOut 按精确大小分配并复制，空数据视为无结果
func (h *Handle) copyOut(src []byte) (Result, error) {
	if len(src) == 0 {
		return Result{status: StatusNotFound}, nil
	}
	buf, err := h.alloc.Alloc(len(src))
	if err != nil {
		return Result{status: StatusOutOfMemory}, fmt.Errorf("copy %d bytes: %w", len(src), err)
	}
	copy(buf, src)
	return Result{status: StatusFound, own: &block{buf: buf, alloc: h.alloc}}, nil
}

// decodeAndRun 在边界处解码并校验载荷，失败时不调用引擎
func decodeAndRun[Q any](h *Handle, op string, payload []byte, decode func([]byte) (Q, error), run func(Engine, Q) *flatbuffers.Builder) (Result, error) {
	if err := h.usable(); err != nil {
		return Result{}, err
	}
	q, err := decode(payload)
	if err != nil {
		h.recorder.Observe(op, "error", 0, 0)
		return Result{}, err
	}
	return execute(h, op, q, run)
}

// FindClass 执行 FindClass 载荷，结果为 ClassMetaArrayHolder
func (h *Handle) FindClass(payload []byte) (Result, error) {
	return decodeAndRun(h, "find_class", payload, query.DecodeFindClass, Engine.FindClass)
}

// FindMethod 结果为 MethodMetaArrayHolder
func (h *Handle) FindMethod(payload []byte) (Result, error) {
	return decodeAndRun(h, "find_method", payload, query.DecodeFindMethod, Engine.FindMethod)
}

// FindField 结果为 FieldMetaArrayHolder
func (h *Handle) FindField(payload []byte) (Result, error) {
	return decodeAndRun(h, "find_field", payload, query.DecodeFindField, Engine.FindField)
}

// BatchFindClassUsingStrings 结果为 BatchClassMetaArrayHolder
func (h *Handle) BatchFindClassUsingStrings(payload []byte) (Result, error) {
	return decodeAndRun(h, "batch_find_class_using_strings", payload, query.DecodeBatchFindClassUsingStrings, Engine.BatchFindClassUsingStrings)
}

// BatchFindMethodUsingStrings 结果为 BatchMethodMetaArrayHolder
func (h *Handle) BatchFindMethodUsingStrings(payload []byte) (Result, error) {
	return decodeAndRun(h, "batch_find_method_using_strings", payload, query.DecodeBatchFindMethodUsingStrings, Engine.BatchFindMethodUsingStrings)
}

// ClassData 按类型描述符查找，例如 "Lcom/demo/Main;"
func (h *Handle) ClassData(descriptor string) (Result, error) {
	if !dex.IsDescriptor(descriptor) {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidDescriptor, descriptor)
	}
	return execute(h, "get_class_data", descriptor, Engine.ClassData)
}

// MethodData 按方法描述符查找，例如 "Lcom/demo/Main;->run()V"
func (h *Handle) MethodData(descriptor string) (Result, error) {
	if md, ok := dex.ParseMemberDescriptor(descriptor); !ok || !md.Method {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidDescriptor, descriptor)
	}
	return execute(h, "get_method_data", descriptor, Engine.MethodData)
}

// FieldData 按字段描述符查找，例如 "Lcom/demo/Config;->DEBUG:Z"
func (h *Handle) FieldData(descriptor string) (Result, error) {
	if md, ok := dex.ParseMemberDescriptor(descriptor); !ok || md.Method {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidDescriptor, descriptor)
	}
	return execute(h, "get_field_data", descriptor, Engine.FieldData)
}

// ClassesByIDs 批量查找类。ids 在调用前复制，引擎返回的部分结果原样传出。
func (h *Handle) ClassesByIDs(ids []int64) (Result, error) {
	return execute(h, "get_class_by_ids", slices.Clone(ids), Engine.ClassesByIDs)
}

func (h *Handle) MethodsByIDs(ids []int64) (Result, error) {
	return execute(h, "get_method_by_ids", slices.Clone(ids), Engine.MethodsByIDs)
}

func (h *Handle) FieldsByIDs(ids []int64) (Result, error) {
	return execute(h, "get_field_by_ids", slices.Clone(ids), Engine.FieldsByIDs)
}

func (h *Handle) ClassAnnotations(classID int64) (Result, error) {
	return execute(h, "get_class_annotations", classID, Engine.ClassAnnotations)
}

func (h *Handle) FieldAnnotations(fieldID int64) (Result, error) {
	return execute(h, "get_field_annotations", fieldID, Engine.FieldAnnotations)
}

func (h *Handle) MethodAnnotations(methodID int64) (Result, error) {
	return execute(h, "get_method_annotations", methodID, Engine.MethodAnnotations)
}

func (h *Handle) ParameterAnnotations(methodID int64) (Result, error) {
	return execute(h, "get_parameter_annotations", methodID, Engine.ParameterAnnotations)
}

// FieldReaders 读取该字段的方法
func (h *Handle) FieldReaders(fieldID int64) (Result, error) {
	return execute(h, "field_get_methods", fieldID, Engine.FieldReaders)
}

// FieldWriters 写入该字段的方法
func (h *Handle) FieldWriters(fieldID int64) (Result, error) {
	return execute(h, "field_put_methods", fieldID, Engine.FieldWriters)
}

func (h *Handle) CallerMethods(methodID int64) (Result, error) {
	return execute(h, "get_call_methods", methodID, Engine.CallerMethods)
}

func (h *Handle) InvokeMethods(methodID int64) (Result, error) {
	return execute(h, "get_invoke_methods", methodID, Engine.InvokeMethods)
}

func (h *Handle) MethodUsingFields(methodID int64) (Result, error) {
	return execute(h, "get_method_using_fields", methodID, Engine.MethodUsingFields)
}

// ParameterNames 返回参数名。没有调试信息时 Absent，单个参数名缺失时对应槽位为 nil。
func (h *Handle) ParameterNames(methodID int64) (StringsResult, error) {
	if err := h.usable(); err != nil {
		return StringsResult{}, err
	}
	start := time.Now()
	names := h.engine.ParameterNames(methodID)
	if names == nil {
		h.recorder.Observe("get_parameter_names", StatusNotFound.String(), 0, time.Since(start))
		return absentStrings(), nil
	}
	values := make([]*string, len(names))
	for i, n := range names {
		if n != nil {
			s := *n
			values[i] = &s
		}
	}
	h.recorder.Observe("get_parameter_names", StatusFound.String(), len(values), time.Since(start))
	return StringsResult{values: values}, nil
}

// MethodUsingStrings 返回方法体内引用的字符串，槽位不会为 nil
func (h *Handle) MethodUsingStrings(methodID int64) (StringsResult, error) {
	if err := h.usable(); err != nil {
		return StringsResult{}, err
	}
	start := time.Now()
	strs := h.engine.MethodUsingStrings(methodID)
	if strs == nil {
		h.recorder.Observe("get_method_using_strings", StatusNotFound.String(), 0, time.Since(start))
		return absentStrings(), nil
	}
	values := make([]*string, len(strs))
	for i := range strs {
		s := strs[i]
		values[i] = &s
	}
	h.recorder.Observe("get_method_using_strings", StatusFound.String(), len(values), time.Since(start))
	return StringsResult{values: values}, nil
}

// MethodOpCodes 返回方法的操作码字节，空序列视为无结果
func (h *Handle) MethodOpCodes(methodID int64) (Result, error) {
	if err := h.usable(); err != nil {
		return Result{}, err
	}
	start := time.Now()
	res, err := h.copyOut(h.engine.MethodOpCodes(methodID))
	h.recorder.Observe("get_method_op_codes", res.status.String(), res.Len(), time.Since(start))
	return res, err
}
