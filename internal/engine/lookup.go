package engine

import flatbuffers "github.com/google/flatbuffers/go"

// ClassData 按类型描述符查找类，例如 "Lcom/demo/Main;"
func (e *Engine) ClassData(descriptor string) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	r, ok := e.classByDesc[descriptor]
	if !ok {
		return nil
	}
	return e.finishClasses([]ref{r})
}

// MethodData 按方法描述符查找，例如 "Lcom/demo/Main;->run()V"
func (e *Engine) MethodData(descriptor string) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	r, ok := e.methodByDesc[descriptor]
	if !ok {
		return nil
	}
	return e.finishMethods([]ref{r})
}

// FieldData 按字段描述符查找，例如 "Lcom/demo/Config;->DEBUG:Z"
func (e *Engine) FieldData(descriptor string) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	r, ok := e.fieldByDesc[descriptor]
	if !ok {
		return nil
	}
	return e.finishFields([]ref{r})
}

// lookupIDs 跳过无法解析的 id，其余保持请求顺序
func lookupIDs(ids []int64, resolve func(int64) (ref, bool)) []ref {
	out := make([]ref, 0, len(ids))
	for _, id := range ids {
		if r, ok := resolve(id); ok {
			out = append(out, r)
		}
	}
	return out
}

func (e *Engine) ClassesByIDs(ids []int64) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.finishClasses(lookupIDs(ids, e.classRef))
}

func (e *Engine) MethodsByIDs(ids []int64) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.finishMethods(lookupIDs(ids, e.methodRef))
}

func (e *Engine) FieldsByIDs(ids []int64) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.finishFields(lookupIDs(ids, e.fieldRef))
}

// ClassAnnotations 返回类上的注解，类未定义时无结果
func (e *Engine) ClassAnnotations(classID int64) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	r, ok := e.classRef(classID)
	if !ok {
		return nil
	}
	img := e.images[r.dex]
	c, ok := img.class(r.idx)
	if !ok {
		return nil
	}
	return e.finishAnnotations(img, c.annotations.Class)
}

func (e *Engine) FieldAnnotations(fieldID int64) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	r, ok := e.fieldRef(fieldID)
	if !ok {
		return nil
	}
	v := e.field(r)
	c := v.class()
	if c == nil {
		return nil
	}
	return e.finishAnnotations(v.img, c.annotations.Fields[v.idx])
}

func (e *Engine) MethodAnnotations(methodID int64) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	v, ok := e.definedMethod(methodID)
	if !ok {
		return nil
	}
	return e.finishAnnotations(v.img, v.class().annotations.Methods[v.idx])
}

// ParameterAnnotations 按参数位置返回注解，没有任何参数注解时无结果
func (e *Engine) ParameterAnnotations(methodID int64) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	v, ok := e.definedMethod(methodID)
	if !ok {
		return nil
	}
	return e.finishParameterAnnotations(v.img, v.class().annotations.Parameters[v.idx])
}

func (e *Engine) definedMethod(methodID int64) (methodView, bool) {
	r, ok := e.methodRef(methodID)
	if !ok {
		return methodView{}, false
	}
	v := e.method(r)
	return v, v.defined
}

func (e *Engine) fieldAccessors(fieldID int64, readers bool) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	r, ok := e.fieldRef(fieldID)
	if !ok {
		return nil
	}
	rv := e.reverseRefs()
	if readers {
		return e.finishMethods(rv.readers[r])
	}
	return e.finishMethods(rv.writers[r])
}

// FieldReaders 返回读取该字段的方法
func (e *Engine) FieldReaders(fieldID int64) *flatbuffers.Builder {
	return e.fieldAccessors(fieldID, true)
}

// FieldWriters 返回写入该字段的方法
func (e *Engine) FieldWriters(fieldID int64) *flatbuffers.Builder {
	return e.fieldAccessors(fieldID, false)
}

// CallerMethods 返回调用该方法的方法
func (e *Engine) CallerMethods(methodID int64) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	r, ok := e.methodRef(methodID)
	if !ok {
		return nil
	}
	return e.finishMethods(e.reverseRefs().callers[r])
}

// InvokeMethods 返回方法体内调用的方法
func (e *Engine) InvokeMethods(methodID int64) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	v, ok := e.definedMethod(methodID)
	if !ok {
		return nil
	}
	invokes := v.img.refsOf(v.idx).invokes
	refs := make([]ref, len(invokes))
	for i, idx := range invokes {
		refs[i] = e.localMethod(v.img, idx)
	}
	return e.finishMethods(refs)
}

// MethodUsingFields 返回方法体内读写的字段
func (e *Engine) MethodUsingFields(methodID int64) *flatbuffers.Builder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	v, ok := e.definedMethod(methodID)
	if !ok {
		return nil
	}
	fields := v.img.refsOf(v.idx).fields
	uses := make([]usingField, len(fields))
	for i, f := range fields {
		uses[i] = usingField{field: e.localField(v.img, f.idx), access: f.access}
	}
	return e.finishUsingFields(uses)
}

// ParameterNames 返回调试信息中的参数名，元素为 nil 表示该参数名缺失。
// 没有调试信息时返回 nil。
func (e *Engine) ParameterNames(methodID int64) []*string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	v, ok := e.definedMethod(methodID)
	if !ok || v.info.codeOff == 0 {
		return nil
	}
	ci, err := v.img.file.Code(v.info.codeOff)
	if err != nil {
		return nil
	}
	names, err := v.img.file.ParameterNames(ci)
	if err != nil {
		e.logger.WithError(err).WithField("method", v.desc()).Debug("Failed to read debug info")
		return nil
	}
	return names
}

// MethodUsingStrings 返回方法体内引用的字符串
func (e *Engine) MethodUsingStrings(methodID int64) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	v, ok := e.definedMethod(methodID)
	if !ok {
		return nil
	}
	return append([]string{}, v.img.refsOf(v.idx).strings...)
}

// MethodOpCodes 返回方法的操作码序列
func (e *Engine) MethodOpCodes(methodID int64) []byte {
	e.mu.RLock()
	defer e.mu.RUnlock()

	v, ok := e.definedMethod(methodID)
	if !ok {
		return nil
	}
	return v.img.opCodes(v.idx)
}
