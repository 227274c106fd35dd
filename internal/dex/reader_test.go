package dex_test

import (
	"testing"

	"github.com/apk-analysis/dexkit-go/internal/dex"
	"github.com/apk-analysis/dexkit-go/internal/dex/dextest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	logField  = dextest.FieldRef{Class: "Lcom/demo/Config;", Name: "DEBUG", Type: "Z"}
	tagField  = dextest.FieldRef{Class: "Lcom/demo/Config;", Name: "tag", Type: "Ljava/lang/String;"}
	printLine = dextest.MethodRef{Class: "Ljava/io/PrintStream;", Name: "println", Params: []string{"Ljava/lang/String;"}, Return: "V"}
)

func sampleDex() []byte {
	return dextest.Build(
		dextest.Class{
			Descriptor:  "Lcom/demo/Config;",
			AccessFlags: dex.AccPublic,
			SourceFile:  "Config.java",
			Fields: []dextest.Field{
				{Name: "DEBUG", Type: "Z", AccessFlags: dex.AccPublic | dex.AccStatic},
				{Name: "tag", Type: "Ljava/lang/String;", AccessFlags: dex.AccPrivate},
			},
		},
		dextest.Class{
			Descriptor:  "Lcom/demo/Main;",
			AccessFlags: dex.AccPublic | dex.AccFinal,
			Interfaces:  []string{"Ljava/lang/Runnable;"},
			SourceFile:  "Main.java",
			Annotations: []dextest.Annotation{{
				Type:       "Lcom/demo/Entry;",
				Visibility: dex.VisibilityRuntime,
				Elements: []dextest.Element{
					{Name: "value", Value: dextest.String("main")},
					{Name: "priority", Value: dextest.Int(-3)},
					{Name: "flags", Value: dextest.Array(dextest.Bool(true), dextest.Long(1 << 40))},
				},
			}},
			Methods: []dextest.Method{
				{
					Name:        "run",
					Return:      "V",
					AccessFlags: dex.AccPublic,
					Code: []dextest.Insn{
						dextest.ConstString(0, "hello 世界"),
						dextest.SGet(1, logField),
						dextest.IPut(0, 2, tagField),
						dextest.InvokeVirtual(printLine),
						dextest.ReturnVoid(),
					},
				},
				{
					Name:        "login",
					Params:      []string{"Ljava/lang/String;", "I"},
					Return:      "Z",
					AccessFlags: dex.AccPublic | dex.AccStatic,
					Code:        []dextest.Insn{dextest.ReturnVoid()},
					ParamNames:  []*string{dextest.Name("user"), nil},
					ParamAnnotations: [][]dextest.Annotation{
						{{Type: "Lcom/demo/NonNull;", Visibility: dex.VisibilityBuild}},
						nil,
					},
				},
			},
		},
	)
}

func findClass(t *testing.T, f *dex.File, desc string) *dex.ClassDef {
	for i := range f.ClassDefs {
		if f.TypeDescriptor(f.ClassDefs[i].ClassIdx) == desc {
			return &f.ClassDefs[i]
		}
	}
	t.Fatalf("class %s not found", desc)
	return nil
}

func findMethod(t *testing.T, f *dex.File, def *dex.ClassDef, name string) dex.EncodedMethod {
	cd, err := f.ClassData(def)
	require.NoError(t, err)
	for _, m := range cd.Methods() {
		if f.String(f.Methods[m.MethodIdx].NameIdx) == name {
			return m
		}
	}
	t.Fatalf("method %s not found", name)
	return dex.EncodedMethod{}
}

// TestParse_Header 测试文件头与 ID 区段解析
func TestParse_Header(t *testing.T) {
	data := sampleDex()
	f, err := dex.Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "035", f.Header.Version())
	assert.Equal(t, uint32(len(data)), f.Header.FileSize)
	assert.Len(t, f.ClassDefs, 2)
	assert.Contains(t, f.Strings, "hello 世界")
	assert.Equal(t, data, f.Bytes())
}

// TestParse_InvalidInput 测试非法输入
func TestParse_InvalidInput(t *testing.T) {
	_, err := dex.Parse([]byte("PK\x03\x04"))
	assert.ErrorIs(t, err, dex.ErrInvalidMagic)

	data := sampleDex()
	_, err = dex.Parse(data[:200])
	assert.ErrorIs(t, err, dex.ErrTruncated)

	var fe *dex.FormatError
	assert.ErrorAs(t, err, &fe)
}

// TestParse_NeverPanicsOnTruncation 测试任意截断都返回错误而不是 panic
func TestParse_NeverPanicsOnTruncation(t *testing.T) {
	data := sampleDex()
	for n := dex.HeaderSize; n < len(data); n += 7 {
		assert.NotPanics(t, func() {
			f, err := dex.Parse(data[:n])
			if err != nil {
				return
			}
			for i := range f.ClassDefs {
				def := &f.ClassDefs[i]
				if cd, err := f.ClassData(def); err == nil {
					for _, m := range cd.Methods() {
						if code, err := f.Code(m.CodeOff); err == nil && code != nil {
							_, _ = code.OpCodes()
							_, _ = f.ParameterNames(code)
						}
					}
				}
				_, _ = f.Annotations(def)
			}
		})
	}
}

// TestClassData_Members 测试类成员与描述符
func TestClassData_Members(t *testing.T) {
	f, err := dex.Parse(sampleDex())
	require.NoError(t, err)

	cfg := findClass(t, f, "Lcom/demo/Config;")
	cd, err := f.ClassData(cfg)
	require.NoError(t, err)
	require.Len(t, cd.StaticFields, 1)
	require.Len(t, cd.InstanceFields, 1)
	assert.Equal(t, "Lcom/demo/Config;->DEBUG:Z", f.FieldDescriptor(cd.StaticFields[0].FieldIdx))
	assert.Equal(t, "Config.java", f.SourceFile(cfg))

	main := findClass(t, f, "Lcom/demo/Main;")
	login := findMethod(t, f, main, "login")
	assert.Equal(t, "Lcom/demo/Main;->login(Ljava/lang/String;I)Z", f.MethodDescriptor(login.MethodIdx))

	itfs, err := f.Interfaces(main)
	require.NoError(t, err)
	require.Len(t, itfs, 1)
	assert.Equal(t, "Ljava/lang/Runnable;", f.TypeDescriptor(itfs[0]))
	assert.Equal(t, "Ljava/lang/Object;", f.TypeDescriptor(main.SuperclassIdx))
}

// TestCode_References 测试指令引用提取
func TestCode_References(t *testing.T) {
	f, err := dex.Parse(sampleDex())
	require.NoError(t, err)

	run := findMethod(t, f, findClass(t, f, "Lcom/demo/Main;"), "run")
	code, err := f.Code(run.CodeOff)
	require.NoError(t, err)

	var strs, methods, reads, writes []string
	err = code.Walk(func(ins dex.Instruction) bool {
		if idx, ok := ins.StringIndex(); ok {
			strs = append(strs, f.String(idx))
		}
		if idx, ok := ins.MethodIndex(); ok {
			methods = append(methods, f.MethodDescriptor(idx))
		}
		if idx, access, ok := ins.FieldIndex(); ok {
			if access == dex.FieldRead {
				reads = append(reads, f.FieldDescriptor(idx))
			} else {
				writes = append(writes, f.FieldDescriptor(idx))
			}
		}
		return true
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"hello 世界"}, strs)
	assert.Equal(t, []string{"Ljava/io/PrintStream;->println(Ljava/lang/String;)V"}, methods)
	assert.Equal(t, []string{"Lcom/demo/Config;->DEBUG:Z"}, reads)
	assert.Equal(t, []string{"Lcom/demo/Config;->tag:Ljava/lang/String;"}, writes)

	ops, err := code.OpCodes()
	require.NoError(t, err)
	assert.Equal(t, []byte{dex.OpConstString, dex.OpSGet, dex.OpIPut, dex.OpInvokeVirtual, dex.OpReturnVoid}, ops)
}

// TestCode_SkipsPayload 测试跳过 switch 数据伪指令
func TestCode_SkipsPayload(t *testing.T) {
	code := &dex.CodeItem{Insns: []uint16{
		0x0012,                         // const/4
		0x0100, 0x0001, 0x0000, 0x0000, // packed-switch payload, size 1
		0x0003, 0x0000,
		0x0200, 0x0001, 0x0001, 0x0000, 0x0002, 0x0000, // sparse-switch payload, size 1
		0x0300, 0x0001, 0x0003, 0x0000, 0x0102, 0x0003, // fill-array-data payload, width 1 size 3
		0x000e,
	}}
	ops, err := code.OpCodes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x12, dex.OpReturnVoid}, ops)

	truncated := &dex.CodeItem{Insns: []uint16{0x0018, 0x0000}} // const-wide 需要 5 个 unit
	_, err = truncated.OpCodes()
	assert.Error(t, err)
}

// TestParameterNames 测试调试信息中的参数名
func TestParameterNames(t *testing.T) {
	f, err := dex.Parse(sampleDex())
	require.NoError(t, err)
	main := findClass(t, f, "Lcom/demo/Main;")

	login, err := f.Code(findMethod(t, f, main, "login").CodeOff)
	require.NoError(t, err)
	names, err := f.ParameterNames(login)
	require.NoError(t, err)
	require.Len(t, names, 2)
	require.NotNil(t, names[0])
	assert.Equal(t, "user", *names[0])
	assert.Nil(t, names[1])

	run, err := f.Code(findMethod(t, f, main, "run").CodeOff)
	require.NoError(t, err)
	names, err = f.ParameterNames(run)
	require.NoError(t, err)
	assert.Nil(t, names)
}

// TestAnnotations 测试注解目录与编码值
func TestAnnotations(t *testing.T) {
	f, err := dex.Parse(sampleDex())
	require.NoError(t, err)
	main := findClass(t, f, "Lcom/demo/Main;")

	dir, err := f.Annotations(main)
	require.NoError(t, err)
	require.Len(t, dir.Class, 1)

	ann := dir.Class[0]
	assert.Equal(t, dex.VisibilityRuntime, ann.Visibility)
	assert.Equal(t, "Lcom/demo/Entry;", f.TypeDescriptor(ann.TypeIdx))

	values := map[string]dex.EncodedValue{}
	for _, e := range ann.Elements {
		values[f.String(e.NameIdx)] = e.Value
	}
	assert.Equal(t, "main", f.String(uint32(values["value"].Int)))
	assert.Equal(t, int64(-3), values["priority"].Int)
	require.Len(t, values["flags"].Array, 2)
	assert.True(t, values["flags"].Array[0].Bool)
	assert.Equal(t, int64(1<<40), values["flags"].Array[1].Int)

	login := findMethod(t, f, main, "login")
	params := dir.Parameters[login.MethodIdx]
	require.Len(t, params, 2)
	require.Len(t, params[0], 1)
	assert.Equal(t, "Lcom/demo/NonNull;", f.TypeDescriptor(params[0][0].TypeIdx))
	assert.Empty(t, params[1])
}
