package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apk-analysis/dexkit-go/internal/bridge"
	"github.com/apk-analysis/dexkit-go/internal/query"
	"github.com/apk-analysis/dexkit-go/internal/result"
	"github.com/spf13/cobra"
)

var errNoArchive = errors.New("no archive given, use --archive")

type encodable interface {
	Encode() []byte
	Validate() error
}

// encodeJSON 解析 JSON 查询，校验后编码为二进制载荷
func encodeJSON[T any, P interface {
	*T
	encodable
}](data []byte) ([]byte, error) {
	q := P(new(T))
	if err := json.Unmarshal(data, q); err != nil {
		return nil, fmt.Errorf("parse query: %w", err)
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q.Encode(), nil
}

func decodeAs[T any](f func([]byte) (T, error)) func([]byte) (any, error) {
	return func(b []byte) (any, error) { return f(b) }
}

// opCodes 按整数输出，避免 JSON 把字节编码成 base64
func opCodes(b []byte) (any, error) {
	out := make([]int, len(b))
	for i, op := range b {
		out[i] = int(op)
	}
	return out, nil
}

type queryKind struct {
	encode func([]byte) ([]byte, error)
	run    func(*bridge.Handle, []byte) (bridge.Result, error)
	decode func([]byte) (any, error)
}

var queryKinds = map[string]queryKind{
	"find-class": {
		encodeJSON[query.FindClass], (*bridge.Handle).FindClass, decodeAs(result.Classes),
	},
	"find-method": {
		encodeJSON[query.FindMethod], (*bridge.Handle).FindMethod, decodeAs(result.Methods),
	},
	"find-field": {
		encodeJSON[query.FindField], (*bridge.Handle).FindField, decodeAs(result.Fields),
	},
	"batch-class-using-strings": {
		encodeJSON[query.BatchFindClassUsingStrings], (*bridge.Handle).BatchFindClassUsingStrings, decodeAs(result.BatchClasses),
	},
	"batch-method-using-strings": {
		encodeJSON[query.BatchFindMethodUsingStrings], (*bridge.Handle).BatchFindMethodUsingStrings, decodeAs(result.BatchMethods),
	},
}

type lookupKind struct {
	descriptor func(*bridge.Handle, string) (bridge.Result, error)
	ids        func(*bridge.Handle, []int64) (bridge.Result, error)
	id         func(*bridge.Handle, int64) (bridge.Result, error)
	strings    func(*bridge.Handle, int64) (bridge.StringsResult, error)
	decode     func([]byte) (any, error)
}

var lookupKinds = map[string]lookupKind{
	"class-data":  {descriptor: (*bridge.Handle).ClassData, decode: decodeAs(result.Classes)},
	"method-data": {descriptor: (*bridge.Handle).MethodData, decode: decodeAs(result.Methods)},
	"field-data":  {descriptor: (*bridge.Handle).FieldData, decode: decodeAs(result.Fields)},

	"classes": {ids: (*bridge.Handle).ClassesByIDs, decode: decodeAs(result.Classes)},
	"methods": {ids: (*bridge.Handle).MethodsByIDs, decode: decodeAs(result.Methods)},
	"fields":  {ids: (*bridge.Handle).FieldsByIDs, decode: decodeAs(result.Fields)},

	"class-annotations":     {id: (*bridge.Handle).ClassAnnotations, decode: decodeAs(result.Annotations)},
	"field-annotations":     {id: (*bridge.Handle).FieldAnnotations, decode: decodeAs(result.Annotations)},
	"method-annotations":    {id: (*bridge.Handle).MethodAnnotations, decode: decodeAs(result.Annotations)},
	"parameter-annotations": {id: (*bridge.Handle).ParameterAnnotations, decode: decodeAs(result.ParameterAnnotations)},
	"field-readers":         {id: (*bridge.Handle).FieldReaders, decode: decodeAs(result.Methods)},
	"field-writers":         {id: (*bridge.Handle).FieldWriters, decode: decodeAs(result.Methods)},
	"callers":               {id: (*bridge.Handle).CallerMethods, decode: decodeAs(result.Methods)},
	"invokes":               {id: (*bridge.Handle).InvokeMethods, decode: decodeAs(result.Methods)},
	"using-fields":          {id: (*bridge.Handle).MethodUsingFields, decode: decodeAs(result.UsingFields)},
	"op-codes":              {id: (*bridge.Handle).MethodOpCodes, decode: opCodes},

	"parameter-names": {strings: (*bridge.Handle).ParameterNames},
	"using-strings":   {strings: (*bridge.Handle).MethodUsingStrings},
}

// openArchives 创建句柄并加载 --archive 指定的全部归档，调用方负责 Destroy
func openArchives() (*bridge.Handle, error) {
	if len(archives) == 0 {
		return nil, errNoArchive
	}
	h := bridge.New(bridge.WithLogger(logger), bridge.WithThreadCount(threadNum))
	for _, path := range archives {
		if err := h.LoadArchive(path, unzipThreads); err != nil {
			h.Destroy()
			return nil, err
		}
		logger.WithField("path", path).Info("Archive loaded")
	}
	if fullCache {
		if err := h.BuildFullCache(); err != nil {
			h.Destroy()
			return nil, err
		}
	}
	return h, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResult 解码并输出结果，无结果时在 stderr 提示
func printResult(cmd *cobra.Command, res bridge.Result, err error, decode func([]byte) (any, error)) error {
	defer res.Release()
	if err != nil {
		return err
	}
	if !res.Found() {
		fmt.Fprintln(cmd.ErrOrStderr(), "not found")
		return nil
	}
	v, err := decode(res.Bytes())
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), v)
}

func runInfo(cmd *cobra.Command, args []string) error {
	h, err := openArchives()
	if err != nil {
		return err
	}
	defer h.Destroy()

	n, err := h.ArchiveCount()
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), map[string]any{
		"archives": archives,
		"dex_num":  n,
		"state":    h.State().String(),
	})
}

func readQuery(args []string) (queryKind, []byte, error) {
	kind, ok := queryKinds[args[0]]
	if !ok {
		return queryKind{}, nil, fmt.Errorf("unknown query kind %q", args[0])
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		return queryKind{}, nil, err
	}
	payload, err := kind.encode(data)
	if err != nil {
		return queryKind{}, nil, err
	}
	return kind, payload, nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	kind, payload, err := readQuery(args)
	if err != nil {
		return err
	}
	h, err := openArchives()
	if err != nil {
		return err
	}
	defer h.Destroy()

	res, err := kind.run(h, payload)
	return printResult(cmd, res, err, kind.decode)
}

func runEncode(cmd *cobra.Command, args []string) error {
	_, payload, err := readQuery(args)
	if err != nil {
		return err
	}
	if encodeOut != "" {
		return os.WriteFile(encodeOut, payload, 0644)
	}
	_, err = cmd.OutOrStdout().Write(payload)
	return err
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, s := range args {
		id, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	kind, ok := lookupKinds[args[0]]
	if !ok {
		return fmt.Errorf("unknown lookup kind %q", args[0])
	}
	rest := args[1:]
	if kind.ids == nil && len(rest) != 1 {
		return fmt.Errorf("%s takes exactly one argument", args[0])
	}

	var ids []int64
	if kind.descriptor == nil {
		var err error
		if ids, err = parseIDs(rest); err != nil {
			return err
		}
	}

	h, err := openArchives()
	if err != nil {
		return err
	}
	defer h.Destroy()

	switch {
	case kind.descriptor != nil:
		res, err := kind.descriptor(h, rest[0])
		return printResult(cmd, res, err, kind.decode)
	case kind.ids != nil:
		res, err := kind.ids(h, ids)
		return printResult(cmd, res, err, kind.decode)
	case kind.id != nil:
		res, err := kind.id(h, ids[0])
		return printResult(cmd, res, err, kind.decode)
	}

	res, err := kind.strings(h, ids[0])
	if err != nil {
		return err
	}
	if res.Absent() {
		fmt.Fprintln(cmd.ErrOrStderr(), "not found")
		return nil
	}
	return printJSON(cmd.OutOrStdout(), res.Values())
}

func runExport(cmd *cobra.Command, args []string) error {
	h, err := openArchives()
	if err != nil {
		return err
	}
	defer h.Destroy()

	if err := h.ExportArchives(args[0]); err != nil {
		return err
	}
	n, _ := h.ArchiveCount()
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d dex files to %s\n", n, args[0])
	return nil
}
