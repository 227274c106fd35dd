package engine

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/apk-analysis/dexkit-go/internal/dex"
	"github.com/apk-analysis/dexkit-go/internal/dex/dextest"
	"github.com/apk-analysis/dexkit-go/internal/query"
	"github.com/apk-analysis/dexkit-go/internal/result"
	"github.com/apk-analysis/dexkit-go/internal/schema"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	debugField = dextest.FieldRef{Class: "Lcom/demo/Config;", Name: "DEBUG", Type: "Z"}
	tagField   = dextest.FieldRef{Class: "Lcom/demo/Config;", Name: "tag", Type: "Ljava/lang/String;"}
	printLine  = dextest.MethodRef{Class: "Ljava/io/PrintStream;", Name: "println", Params: []string{"Ljava/lang/String;"}, Return: "V"}
	loginRef   = dextest.MethodRef{Class: "Lcom/demo/Main;", Name: "login", Params: []string{"Ljava/lang/String;", "I"}, Return: "Z"}
)

const (
	runDesc   = "Lcom/demo/Main;->run()V"
	loginDesc = "Lcom/demo/Main;->login(Ljava/lang/String;I)Z"
	checkDesc = "Lcom/other/Util;->check()V"
	debugDesc = "Lcom/demo/Config;->DEBUG:Z"
	tagDesc   = "Lcom/demo/Config;->tag:Ljava/lang/String;"
)

func mainDex() []byte {
	return dextest.Build(
		dextest.Class{
			Descriptor:  "Lcom/demo/Config;",
			AccessFlags: dex.AccPublic,
			SourceFile:  "Config.java",
			Fields: []dextest.Field{
				{Name: "DEBUG", Type: "Z", AccessFlags: dex.AccPublic | dex.AccStatic},
				{
					Name:        "tag",
					Type:        "Ljava/lang/String;",
					AccessFlags: dex.AccPrivate,
					Annotations: []dextest.Annotation{{Type: "Lcom/demo/Keep;", Visibility: dex.VisibilityRuntime}},
				},
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
					{Name: "target", Value: dextest.Type("Lcom/demo/Config;")},
				},
			}},
			Methods: []dextest.Method{
				{
					Name:        "run",
					Return:      "V",
					AccessFlags: dex.AccPublic,
					Annotations: []dextest.Annotation{{Type: "Ljava/lang/Override;", Visibility: dex.VisibilityBuild}},
					Code: []dextest.Insn{
						dextest.ConstString(0, "hello 世界"),
						dextest.SGet(1, debugField),
						dextest.IPut(0, 2, tagField),
						dextest.InvokeVirtual(printLine),
						dextest.InvokeStatic(loginRef),
						dextest.ReturnVoid(),
					},
				},
				{
					Name:        "login",
					Params:      []string{"Ljava/lang/String;", "I"},
					Return:      "Z",
					AccessFlags: dex.AccPublic | dex.AccStatic,
					Code: []dextest.Insn{
						dextest.ConstString(0, "password"),
						dextest.ConstString(1, "token"),
						dextest.ReturnVoid(),
					},
					ParamNames: []*string{dextest.Name("user"), nil},
					ParamAnnotations: [][]dextest.Annotation{
						{{Type: "Lcom/demo/NonNull;", Visibility: dex.VisibilityBuild}},
						nil,
					},
				},
			},
		},
	)
}

func utilDex() []byte {
	return dextest.Build(dextest.Class{
		Descriptor:  "Lcom/other/Util;",
		AccessFlags: dex.AccPublic,
		Super:       "Lcom/demo/Config;",
		Methods: []dextest.Method{{
			Name:        "check",
			Return:      "V",
			AccessFlags: dex.AccPublic | dex.AccStatic,
			Code: []dextest.Insn{
				dextest.ConstString(0, "password"),
				dextest.SGet(1, debugField),
				dextest.InvokeStatic(loginRef),
				dextest.ReturnVoid(),
			},
		}},
	})
}

func writeDex(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func loadedEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(testLogger())
	require.NoError(t, e.AddArchive(writeDex(t, "classes.dex", mainDex()), 1))
	require.NoError(t, e.AddArchive(writeDex(t, "classes2.dex", utilDex()), 1))
	return e
}

// take 复制 builder 内容并归还
func take(e *Engine, b *flatbuffers.Builder) []byte {
	if b == nil {
		return nil
	}
	defer e.ReleaseBuilder(b)
	return append([]byte(nil), b.FinishedBytes()...)
}

func classes(t *testing.T, e *Engine, b *flatbuffers.Builder) []result.ClassData {
	t.Helper()
	out, err := result.Classes(take(e, b))
	require.NoError(t, err)
	return out
}

func methods(t *testing.T, e *Engine, b *flatbuffers.Builder) []result.MethodData {
	t.Helper()
	out, err := result.Methods(take(e, b))
	require.NoError(t, err)
	return out
}

func fields(t *testing.T, e *Engine, b *flatbuffers.Builder) []result.FieldData {
	t.Helper()
	out, err := result.Fields(take(e, b))
	require.NoError(t, err)
	return out
}

func descriptors[T any](items []T, desc func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = desc(it)
	}
	return out
}

func classDescs(cs []result.ClassData) []string {
	return descriptors(cs, func(c result.ClassData) string { return c.Descriptor })
}

func methodDescs(ms []result.MethodData) []string {
	return descriptors(ms, func(m result.MethodData) string { return m.Descriptor })
}

func methodID(t *testing.T, e *Engine, desc string) int64 {
	t.Helper()
	ms := methods(t, e, e.MethodData(desc))
	require.Len(t, ms, 1)
	return ms[0].ID
}

func fieldID(t *testing.T, e *Engine, desc string) int64 {
	t.Helper()
	fs := fields(t, e, e.FieldData(desc))
	require.Len(t, fs, 1)
	return fs[0].ID
}

// TestEngine_AddArchive 测试加载成功与失败对 dex 数量的影响
func TestEngine_AddArchive(t *testing.T) {
	e := loadedEngine(t)
	assert.Equal(t, 2, e.DexNum())

	err := e.AddArchive(filepath.Join(t.TempDir(), "missing.apk"), 1)
	assert.Error(t, err)
	assert.Equal(t, 2, e.DexNum())

	corrupt := mainDex()[:300]
	err = e.AddArchive(writeDex(t, "broken.dex", corrupt), 1)
	assert.ErrorIs(t, err, dex.ErrTruncated)
	assert.Equal(t, 2, e.DexNum())
}

// TestEngine_EmptyArchive 测试空归档加载后查询无结果
func TestEngine_EmptyArchive(t *testing.T) {
	e := New(testLogger())
	require.NoError(t, e.AddArchive(writeDex(t, "empty.apk", nil), 1))
	assert.Equal(t, 0, e.DexNum())
	assert.Nil(t, e.FindClass(&query.FindClass{}))
	assert.Nil(t, e.ClassData("Lcom/demo/Main;"))
}

// TestEngine_FindClass 测试类查找条件与范围
func TestEngine_FindClass(t *testing.T) {
	e := loadedEngine(t)

	got := classes(t, e, e.FindClass(&query.FindClass{
		Matcher: &query.ClassMatcher{ClassName: query.EndsWith(".Main")},
	}))
	require.Len(t, got, 1)
	assert.Equal(t, "Lcom/demo/Main;", got[0].Descriptor)
	assert.Equal(t, "Main.java", got[0].SourceFile)
	assert.Equal(t, int32(0), got[0].DexID)
	assert.Len(t, got[0].Methods, 2)
	assert.Len(t, got[0].Interfaces, 1)

	got = classes(t, e, e.FindClass(&query.FindClass{
		Matcher: &query.ClassMatcher{UsingStrings: []query.StringMatcher{*query.Equals("password")}},
	}))
	assert.Equal(t, []string{"Lcom/demo/Main;", "Lcom/other/Util;"}, classDescs(got))

	got = classes(t, e, e.FindClass(&query.FindClass{
		Scope:   query.Scope{SearchPackages: []string{"COM.OTHER"}, IgnorePackagesCase: true},
		Matcher: &query.ClassMatcher{UsingStrings: []query.StringMatcher{*query.Equals("password")}},
	}))
	assert.Equal(t, []string{"Lcom/other/Util;"}, classDescs(got))

	got = classes(t, e, e.FindClass(&query.FindClass{
		Scope:   query.Scope{ExcludePackages: []string{"com.other"}},
		Matcher: &query.ClassMatcher{SuperClass: query.Equals("java.lang.Object")},
	}))
	assert.Equal(t, []string{"Lcom/demo/Config;", "Lcom/demo/Main;"}, classDescs(got))

	got = classes(t, e, e.FindClass(&query.FindClass{
		Matcher: &query.ClassMatcher{
			Interfaces:  []query.StringMatcher{*query.Similar("Runnable$")},
			Annotations: []query.StringMatcher{*query.Equals("com.demo.Entry")},
			AccessFlags: &query.AccessFlagsMatcher{Flags: dex.AccFinal},
			MethodCount: &query.IntRange{Min: 2, Max: 2},
		},
	}))
	assert.Equal(t, []string{"Lcom/demo/Main;"}, classDescs(got))

	got = classes(t, e, e.FindClass(&query.FindClass{FindFirst: true}))
	assert.Equal(t, []string{"Lcom/demo/Config;"}, classDescs(got))

	assert.Nil(t, e.FindClass(&query.FindClass{
		Matcher: &query.ClassMatcher{ClassName: query.Equals("com.demo.Missing")},
	}))
}

// TestEngine_BrokenInterfaceList 测试接口列表损坏时记录日志并按无接口处理
func TestEngine_BrokenInterfaceList(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	e := New(logger)
	require.NoError(t, e.AddArchive(writeDex(t, "classes.dex", mainDex()), 1))

	img := e.images[0]
	for i := range img.classes {
		if img.classes[i].desc == "Lcom/demo/Main;" {
			img.classes[i].def.InterfacesOff = 0xFFFFFFF0
		}
	}

	got := classes(t, e, e.ClassData("Lcom/demo/Main;"))
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Interfaces)

	assert.Nil(t, e.FindClass(&query.FindClass{
		Matcher: &query.ClassMatcher{Interfaces: []query.StringMatcher{*query.Similar("Runnable$")}},
	}))

	var logged int
	for _, entry := range hook.AllEntries() {
		if entry.Message == "Failed to read interfaces" {
			assert.Equal(t, "Lcom/demo/Main;", entry.Data["class"])
			logged++
		}
	}
	assert.Equal(t, 2, logged)
}

// TestEngine_FindClass_InClasses 测试 in_classes 限定
func TestEngine_FindClass_InClasses(t *testing.T) {
	e := loadedEngine(t)
	util := classes(t, e, e.ClassData("Lcom/other/Util;"))
	require.Len(t, util, 1)

	got := classes(t, e, e.FindClass(&query.FindClass{Scope: query.Scope{InClasses: []int64{util[0].ID}}}))
	assert.Equal(t, []string{"Lcom/other/Util;"}, classDescs(got))
}

// TestEngine_FindMethod 测试方法查找条件
func TestEngine_FindMethod(t *testing.T) {
	e := loadedEngine(t)

	got := methods(t, e, e.FindMethod(&query.FindMethod{
		Matcher: &query.MethodMatcher{UsingStrings: []query.StringMatcher{*query.Equals("token")}},
	}))
	require.Len(t, got, 1)
	assert.Equal(t, loginDesc, got[0].Descriptor)
	assert.Equal(t, "login", got[0].Name())
	assert.Len(t, got[0].ParamTypes, 2)

	got = methods(t, e, e.FindMethod(&query.FindMethod{
		Matcher: &query.MethodMatcher{
			ParamTypes: []query.StringMatcher{*query.Equals("java.lang.String"), *query.Contains("")},
			ReturnType: query.Equals("boolean"),
		},
	}))
	assert.Equal(t, []string{loginDesc}, methodDescs(got))

	got = methods(t, e, e.FindMethod(&query.FindMethod{
		Matcher: &query.MethodMatcher{CallerMethods: []query.StringMatcher{*query.Contains("->run()")}},
	}))
	assert.Equal(t, []string{loginDesc}, methodDescs(got))

	got = methods(t, e, e.FindMethod(&query.FindMethod{
		Matcher: &query.MethodMatcher{InvokeMethods: []query.StringMatcher{*query.StartsWith("Ljava/io/PrintStream;->println")}},
	}))
	assert.Equal(t, []string{runDesc}, methodDescs(got))

	got = methods(t, e, e.FindMethod(&query.FindMethod{
		Matcher: &query.MethodMatcher{UsingFields: []query.UsingFieldMatcher{{
			Field:     query.FieldMatcher{Name: query.Equals("DEBUG")},
			UsingType: schema.UsingTypeGet,
		}}},
	}))
	assert.Equal(t, []string{runDesc, checkDesc}, methodDescs(got))

	got = methods(t, e, e.FindMethod(&query.FindMethod{
		Matcher: &query.MethodMatcher{UsingFields: []query.UsingFieldMatcher{{
			Field:     query.FieldMatcher{Type: query.Equals("java.lang.String")},
			UsingType: schema.UsingTypePut,
		}}},
	}))
	assert.Equal(t, []string{runDesc}, methodDescs(got))

	got = methods(t, e, e.FindMethod(&query.FindMethod{
		Matcher: &query.MethodMatcher{OpCodes: &query.OpCodesMatcher{
			OpCodes:   []int16{dex.OpConstString, -1, dex.OpReturnVoid},
			MatchType: schema.OpCodeMatchTypeEndWith,
		}},
	}))
	assert.Equal(t, []string{loginDesc}, methodDescs(got))

	got = methods(t, e, e.FindMethod(&query.FindMethod{
		Scope:   query.Scope{SearchPackages: []string{"com.other"}},
		Matcher: &query.MethodMatcher{UsingStrings: []query.StringMatcher{*query.Equals("password")}},
	}))
	assert.Equal(t, []string{checkDesc}, methodDescs(got))

	run := methodID(t, e, runDesc)
	got = methods(t, e, e.FindMethod(&query.FindMethod{InMethods: []int64{run}}))
	assert.Equal(t, []string{runDesc}, methodDescs(got))
}

// TestEngine_FindField 测试字段查找与读写者条件
func TestEngine_FindField(t *testing.T) {
	e := loadedEngine(t)

	got := fields(t, e, e.FindField(&query.FindField{
		Matcher: &query.FieldMatcher{ReadMethods: []query.StringMatcher{*query.Equals(checkDesc)}},
	}))
	require.Len(t, got, 1)
	assert.Equal(t, debugDesc, got[0].Descriptor)
	assert.Equal(t, uint32(dex.AccPublic|dex.AccStatic), got[0].AccessFlags)

	got = fields(t, e, e.FindField(&query.FindField{
		Matcher: &query.FieldMatcher{
			Annotations:  []query.StringMatcher{*query.Equals("com.demo.Keep")},
			WriteMethods: []query.StringMatcher{*query.Contains("Main")},
		},
	}))
	require.Len(t, got, 1)
	assert.Equal(t, tagDesc, got[0].Descriptor)

	assert.Nil(t, e.FindField(&query.FindField{
		Matcher: &query.FieldMatcher{AccessFlags: &query.AccessFlagsMatcher{Flags: dex.AccPrivate, MatchType: schema.MatchTypeEqual}, Name: query.Equals("DEBUG")},
	}))
}

// TestEngine_BatchFind 测试按分组的字符串批量查找
func TestEngine_BatchFind(t *testing.T) {
	e := loadedEngine(t)
	groups := []query.StringMatchersGroup{
		{UnionKey: "auth", Matchers: []query.StringMatcher{*query.Equals("password")}},
		{UnionKey: "greeting", Matchers: []query.StringMatcher{*query.StartsWith("hello")}},
		{UnionKey: "none", Matchers: []query.StringMatcher{*query.Equals("absent")}},
	}

	byClass, err := result.BatchClasses(take(e, e.BatchFindClassUsingStrings(&query.BatchFindClassUsingStrings{Groups: groups})))
	require.NoError(t, err)
	assert.Equal(t, []string{"Lcom/demo/Main;", "Lcom/other/Util;"}, classDescs(byClass["auth"]))
	assert.Equal(t, []string{"Lcom/demo/Main;"}, classDescs(byClass["greeting"]))
	assert.Empty(t, byClass["none"])
	assert.Len(t, byClass, 3)

	byMethod, err := result.BatchMethods(take(e, e.BatchFindMethodUsingStrings(&query.BatchFindMethodUsingStrings{Groups: groups})))
	require.NoError(t, err)
	assert.Equal(t, []string{loginDesc, checkDesc}, methodDescs(byMethod["auth"]))
	assert.Equal(t, []string{runDesc}, methodDescs(byMethod["greeting"]))

	assert.Nil(t, e.BatchFindClassUsingStrings(&query.BatchFindClassUsingStrings{Groups: groups[2:]}))
}

// TestEngine_DataByDescriptor 测试按描述符查找以及仅被引用的类型
func TestEngine_DataByDescriptor(t *testing.T) {
	e := loadedEngine(t)

	util := classes(t, e, e.ClassData("Lcom/other/Util;"))
	require.Len(t, util, 1)
	assert.Equal(t, int32(1), util[0].DexID)

	config := classes(t, e, e.ClassData("Lcom/demo/Config;"))
	require.Len(t, config, 1)
	assert.Equal(t, config[0].ID, util[0].SuperClass, "super class resolves to the defining dex")

	runnable := classes(t, e, e.ClassData("Ljava/lang/Runnable;"))
	require.Len(t, runnable, 1)
	assert.Equal(t, uint32(0), runnable[0].AccessFlags)
	assert.Equal(t, int64(-1), runnable[0].SuperClass)
	assert.Empty(t, runnable[0].Methods)

	login := methods(t, e, e.MethodData(loginDesc))
	require.Len(t, login, 1)
	assert.Equal(t, int32(0), login[0].DexID)
	assert.Equal(t, uint32(dex.AccPublic|dex.AccStatic), login[0].AccessFlags)

	printMeta := methods(t, e, e.MethodData("Ljava/io/PrintStream;->println(Ljava/lang/String;)V"))
	require.Len(t, printMeta, 1)
	assert.Equal(t, uint32(0), printMeta[0].AccessFlags)

	assert.Nil(t, e.ClassData("Lcom/demo/Missing;"))
	assert.Nil(t, e.MethodData("Lcom/demo/Main;->missing()V"))
	assert.Nil(t, e.FieldData("Lcom/demo/Main;->missing:I"))
}

// TestEngine_ByIDs 测试批量 id 查找跳过无效 id 且保持顺序
func TestEngine_ByIDs(t *testing.T) {
	e := loadedEngine(t)
	run := methodID(t, e, runDesc)
	check := methodID(t, e, checkDesc)

	got := methods(t, e, e.MethodsByIDs([]int64{check, 99 << 32, run, -1}))
	assert.Equal(t, []string{checkDesc, runDesc}, methodDescs(got))

	debug := fieldID(t, e, debugDesc)
	fs := fields(t, e, e.FieldsByIDs([]int64{debug, debug + 1000}))
	require.Len(t, fs, 1)
	assert.Equal(t, debugDesc, fs[0].Descriptor)

	main := classes(t, e, e.ClassData("Lcom/demo/Main;"))
	require.Len(t, main, 1)
	cs := classes(t, e, e.ClassesByIDs([]int64{main[0].ID, 7 << 32}))
	assert.Equal(t, []string{"Lcom/demo/Main;"}, classDescs(cs))

	assert.Nil(t, e.ClassesByIDs([]int64{5 << 32}))
	assert.Nil(t, e.MethodsByIDs(nil))
}

// TestEngine_Annotations 测试类、字段、方法和参数注解
func TestEngine_Annotations(t *testing.T) {
	e := loadedEngine(t)
	main := classes(t, e, e.ClassData("Lcom/demo/Main;"))
	require.Len(t, main, 1)

	anns, err := result.Annotations(take(e, e.ClassAnnotations(main[0].ID)))
	require.NoError(t, err)
	require.Len(t, anns, 1)
	assert.Equal(t, "Lcom/demo/Entry;", anns[0].TypeDescriptor)
	assert.Equal(t, schema.AnnotationVisibilityTypeRuntime, anns[0].Visibility)
	values := make(map[string]result.EncodeValue)
	for _, el := range anns[0].Elements {
		values[el.Name] = el.Value
	}
	assert.Equal(t, "main", values["value"].String)
	assert.Equal(t, int64(-3), values["priority"].Long)
	assert.Equal(t, schema.AnnotationEncodeValueTypeTypeValue, values["target"].Type)
	assert.Equal(t, "Lcom/demo/Config;", values["target"].String)

	anns, err = result.Annotations(take(e, e.FieldAnnotations(fieldID(t, e, tagDesc))))
	require.NoError(t, err)
	require.Len(t, anns, 1)
	assert.Equal(t, "Lcom/demo/Keep;", anns[0].TypeDescriptor)
	assert.Nil(t, e.FieldAnnotations(fieldID(t, e, debugDesc)))

	anns, err = result.Annotations(take(e, e.MethodAnnotations(methodID(t, e, runDesc))))
	require.NoError(t, err)
	require.Len(t, anns, 1)
	assert.Equal(t, "Ljava/lang/Override;", anns[0].TypeDescriptor)

	params, err := result.ParameterAnnotations(take(e, e.ParameterAnnotations(methodID(t, e, loginDesc))))
	require.NoError(t, err)
	require.Len(t, params, 2)
	require.Len(t, params[0], 1)
	assert.Equal(t, "Lcom/demo/NonNull;", params[0][0].TypeDescriptor)
	assert.Empty(t, params[1])
	assert.Nil(t, e.ParameterAnnotations(methodID(t, e, runDesc)))
}

// TestEngine_CrossReferences 测试调用关系与字段读写关系
func TestEngine_CrossReferences(t *testing.T) {
	e := loadedEngine(t)
	require.NoError(t, e.InitFullCache())

	login := methodID(t, e, loginDesc)
	run := methodID(t, e, runDesc)

	assert.Equal(t, []string{runDesc, checkDesc}, methodDescs(methods(t, e, e.CallerMethods(login))))
	assert.Equal(t, []string{"Ljava/io/PrintStream;->println(Ljava/lang/String;)V", loginDesc},
		methodDescs(methods(t, e, e.InvokeMethods(run))))
	assert.Nil(t, e.CallerMethods(run))

	debug := fieldID(t, e, debugDesc)
	assert.Equal(t, []string{runDesc, checkDesc}, methodDescs(methods(t, e, e.FieldReaders(debug))))
	assert.Nil(t, e.FieldWriters(debug))
	assert.Equal(t, []string{runDesc}, methodDescs(methods(t, e, e.FieldWriters(fieldID(t, e, tagDesc)))))

	uses, err := result.UsingFields(take(e, e.MethodUsingFields(run)))
	require.NoError(t, err)
	require.Len(t, uses, 2)
	assert.Equal(t, debugDesc, uses[0].Field.Descriptor)
	assert.Equal(t, schema.UsingTypeGet, uses[0].UsingType)
	assert.Equal(t, tagDesc, uses[1].Field.Descriptor)
	assert.Equal(t, schema.UsingTypePut, uses[1].UsingType)
}

// TestEngine_MethodDetails 测试参数名、字符串与操作码
func TestEngine_MethodDetails(t *testing.T) {
	e := loadedEngine(t)
	login := methodID(t, e, loginDesc)
	run := methodID(t, e, runDesc)

	names := e.ParameterNames(login)
	require.Len(t, names, 2)
	require.NotNil(t, names[0])
	assert.Equal(t, "user", *names[0])
	assert.Nil(t, names[1])
	assert.Nil(t, e.ParameterNames(run))

	assert.Equal(t, []string{"password", "token"}, e.MethodUsingStrings(login))
	assert.Equal(t, []byte{dex.OpConstString, dex.OpConstString, dex.OpReturnVoid}, e.MethodOpCodes(login))

	ref := methodID(t, e, "Ljava/io/PrintStream;->println(Ljava/lang/String;)V")
	assert.Nil(t, e.MethodOpCodes(ref))
	assert.Nil(t, e.MethodUsingStrings(ref))
}

// TestEngine_MethodWithoutStrings 测试已定义但不引用字符串的方法返回空列表而非 nil
func TestEngine_MethodWithoutStrings(t *testing.T) {
	e := New(testLogger())
	data := dextest.Build(dextest.Class{
		Descriptor:  "Lcom/demo/Quiet;",
		AccessFlags: dex.AccPublic,
		Methods: []dextest.Method{{
			Name:        "noop",
			Return:      "V",
			AccessFlags: dex.AccPublic | dex.AccStatic,
			Code:        []dextest.Insn{dextest.ReturnVoid()},
		}},
	})
	require.NoError(t, e.AddArchive(writeDex(t, "classes.dex", data), 1))

	noop := methodID(t, e, "Lcom/demo/Quiet;->noop()V")
	strs := e.MethodUsingStrings(noop)
	assert.NotNil(t, strs)
	assert.Empty(t, strs)

	assert.Nil(t, e.MethodUsingStrings(1<<40))
}

// TestEngine_ExportDexFiles 测试导出
func TestEngine_ExportDexFiles(t *testing.T) {
	e := loadedEngine(t)
	dir := t.TempDir()
	require.NoError(t, e.ExportDexFiles(dir))

	data, err := os.ReadFile(filepath.Join(dir, "classes2.dex"))
	require.NoError(t, err)
	assert.Equal(t, utilDex(), data)
}

// TestEngine_ConcurrentQueries 测试加载后的并发查询
func TestEngine_ConcurrentQueries(t *testing.T) {
	e := loadedEngine(t)
	e.SetThreadNum(4)
	q := &query.FindMethod{Matcher: &query.MethodMatcher{CallerMethods: []query.StringMatcher{*query.Contains("run")}}}

	done := make(chan []string, 8)
	for i := 0; i < 8; i++ {
		go func() {
			b := e.FindMethod(q)
			ms, _ := result.Methods(take(e, b))
			done <- methodDescs(ms)
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, []string{loginDesc}, <-done)
	}
}
