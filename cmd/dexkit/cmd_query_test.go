package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/apk-analysis/dexkit-go/internal/dex"
	"github.com/apk-analysis/dexkit-go/internal/dex/dextest"
	"github.com/apk-analysis/dexkit-go/internal/query"
	"github.com/apk-analysis/dexkit-go/internal/result"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const greetDesc = "Lcom/demo/Greeter;->greet(Ljava/lang/String;I)V"

// useGreeter 写入测试 dex 并设置 --archive，测试结束后恢复全局参数
func useGreeter(t *testing.T) {
	t.Helper()
	data := dextest.Build(dextest.Class{
		Descriptor:  "Lcom/demo/Greeter;",
		AccessFlags: dex.AccPublic,
		Methods: []dextest.Method{{
			Name:        "greet",
			Params:      []string{"Ljava/lang/String;", "I"},
			Return:      "V",
			AccessFlags: dex.AccPublic | dex.AccStatic,
			Code:        []dextest.Insn{dextest.ConstString(0, "hello"), dextest.ReturnVoid()},
			ParamNames:  []*string{dextest.Name("who"), nil},
		}},
	})
	path := filepath.Join(t.TempDir(), "classes.dex")
	require.NoError(t, os.WriteFile(path, data, 0644))

	prevArchives, prevOut := archives, encodeOut
	archives = []string{path}
	t.Cleanup(func() { archives, encodeOut = prevArchives, prevOut })
}

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return cmd, &out, &errOut
}

func writeQuery(t *testing.T, q any) string {
	t.Helper()
	data, err := json.Marshal(q)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "query.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func greetID(t *testing.T) int64 {
	t.Helper()
	cmd, out, _ := newTestCommand()
	require.NoError(t, runLookup(cmd, []string{"method-data", greetDesc}))
	var methods []result.MethodData
	require.NoError(t, json.Unmarshal(out.Bytes(), &methods))
	require.Len(t, methods, 1)
	return methods[0].ID
}

// TestRunInfo 测试输出 dex 数量
func TestRunInfo(t *testing.T) {
	useGreeter(t)
	cmd, out, _ := newTestCommand()

	require.NoError(t, runInfo(cmd, nil))
	var info map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.EqualValues(t, 1, info["dex_num"])
	assert.Equal(t, "loaded", info["state"])
}

// TestRunInfo_NoArchive 测试未指定归档时报错
func TestRunInfo_NoArchive(t *testing.T) {
	prev := archives
	archives = nil
	defer func() { archives = prev }()

	cmd, _, _ := newTestCommand()
	assert.ErrorIs(t, runInfo(cmd, nil), errNoArchive)
}

// TestRunQuery_FindClass 测试 JSON 查询编码、执行与解码
func TestRunQuery_FindClass(t *testing.T) {
	useGreeter(t)
	path := writeQuery(t, query.FindClass{Matcher: &query.ClassMatcher{ClassName: query.EndsWith("Greeter")}})

	cmd, out, _ := newTestCommand()
	require.NoError(t, runQuery(cmd, []string{"find-class", path}))

	var classes []result.ClassData
	require.NoError(t, json.Unmarshal(out.Bytes(), &classes))
	require.Len(t, classes, 1)
	assert.Equal(t, "Lcom/demo/Greeter;", classes[0].Descriptor)
}

// TestRunQuery_NotFound 测试无结果时提示 not found
func TestRunQuery_NotFound(t *testing.T) {
	useGreeter(t)
	path := writeQuery(t, query.FindMethod{Matcher: &query.MethodMatcher{Name: query.Equals("absent")}})

	cmd, out, errOut := newTestCommand()
	require.NoError(t, runQuery(cmd, []string{"find-method", path}))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "not found")
}

// TestRunQuery_InvalidInput 测试未知类型与非法 JSON
func TestRunQuery_InvalidInput(t *testing.T) {
	useGreeter(t)
	cmd, _, _ := newTestCommand()

	assert.Error(t, runQuery(cmd, []string{"find-everything", "x.json"}))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	assert.Error(t, runQuery(cmd, []string{"find-class", bad}))
}

// TestRunEncode 测试输出的载荷可以被解码回同一查询
func TestRunEncode(t *testing.T) {
	useGreeter(t)
	path := writeQuery(t, query.FindField{Matcher: &query.FieldMatcher{Name: query.Equals("count")}})
	encodeOut = filepath.Join(t.TempDir(), "payload.bin")

	cmd, _, _ := newTestCommand()
	require.NoError(t, runEncode(cmd, []string{"find-field", path}))

	payload, err := os.ReadFile(encodeOut)
	require.NoError(t, err)
	q, err := query.DecodeFindField(payload)
	require.NoError(t, err)
	require.NotNil(t, q.Matcher)
	assert.Equal(t, "count", q.Matcher.Name.Value)
}

// TestRunLookup 测试按 id 查找与字符串数组输出
func TestRunLookup(t *testing.T) {
	useGreeter(t)
	mid := greetID(t)
	id := strconv.FormatInt(mid, 10)

	cmd, out, _ := newTestCommand()
	require.NoError(t, runLookup(cmd, []string{"methods", id, "0x10000000000"}))
	var methods []result.MethodData
	require.NoError(t, json.Unmarshal(out.Bytes(), &methods))
	assert.Len(t, methods, 1)

	cmd, out, _ = newTestCommand()
	require.NoError(t, runLookup(cmd, []string{"op-codes", id}))
	var ops []int
	require.NoError(t, json.Unmarshal(out.Bytes(), &ops))
	assert.Equal(t, []int{dex.OpConstString, dex.OpReturnVoid}, ops)

	cmd, out, _ = newTestCommand()
	require.NoError(t, runLookup(cmd, []string{"parameter-names", id}))
	var names []*string
	require.NoError(t, json.Unmarshal(out.Bytes(), &names))
	require.Len(t, names, 2)
	assert.Equal(t, "who", *names[0])
	assert.Nil(t, names[1])
}

// TestRunLookup_InvalidArgs 测试参数个数与 id 格式校验
func TestRunLookup_InvalidArgs(t *testing.T) {
	useGreeter(t)
	cmd, _, _ := newTestCommand()

	assert.Error(t, runLookup(cmd, []string{"nothing", "1"}))
	assert.Error(t, runLookup(cmd, []string{"op-codes", "1", "2"}))
	assert.Error(t, runLookup(cmd, []string{"op-codes", "abc"}))
}

// TestRunExport 测试导出已加载的 dex
func TestRunExport(t *testing.T) {
	useGreeter(t)
	dir := t.TempDir()

	cmd, out, _ := newTestCommand()
	require.NoError(t, runExport(cmd, []string{dir}))
	assert.Contains(t, out.String(), "exported 1 dex files")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
