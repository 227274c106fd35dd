// Package archive 读取 .apk/.zip/.jar/.dex 输入中的 dex 镜像，并负责导出
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/apk-analysis/dexkit-go/internal/dex"
	"github.com/klauspost/compress/zip"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnsupported = errors.New("archive: unsupported file format")
	ErrInvalidDex  = errors.New("archive: invalid dex entry")
)

var zipMagic = []byte("PK\x03\x04")

// Image 是归档中的一个 dex 镜像
type Image struct {
	Name string
	Data []byte
}

// Open 读取 path 中的全部 dex 镜像。zip 类归档按 classes.dex、classes2.dex ... 顺序返回，
// 没有 dex 条目时返回空切片。
func Open(path string, unzipThreads int) ([]Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	head := make([]byte, dex.HeaderSize)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, zipMagic):
		return openZip(path, unzipThreads)
	case dex.IsDex(head):
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return []Image{{Name: filepath.Base(path), Data: data}}, nil
	case n == 0:
		// 空文件视为不含 dex 的归档
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
}

// dexOrder 解析 classes<N>.dex 的序号，classes.dex 为 1
func dexOrder(name string) (int, bool) {
	if strings.Contains(name, "/") || !strings.HasPrefix(name, "classes") || !strings.HasSuffix(name, ".dex") {
		return 0, false
	}
	num := strings.TrimSuffix(strings.TrimPrefix(name, "classes"), ".dex")
	if num == "" {
		return 1, true
	}
	i, err := strconv.Atoi(num)
	if err != nil || i < 2 {
		return 0, false
	}
	return i, true
}

func openZip(path string, unzipThreads int) ([]Image, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip %s: %w", path, err)
	}
	defer zr.Close()

	type entry struct {
		order int
		file  *zip.File
	}
	var entries []entry
	for _, zf := range zr.File {
		if order, ok := dexOrder(zf.Name); ok {
			entries = append(entries, entry{order: order, file: zf})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].order < entries[j].order })

	images := make([]Image, len(entries))
	g := new(errgroup.Group)
	g.SetLimit(max(1, unzipThreads))
	for i, e := range entries {
		g.Go(func() error {
			data, err := readEntry(e.file)
			if err != nil {
				return fmt.Errorf("unzip %s: %w", e.file.Name, err)
			}
			if !dex.IsDex(data) {
				return fmt.Errorf("%w: %s", ErrInvalidDex, e.file.Name)
			}
			images[i] = Image{Name: e.file.Name, Data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

func readEntry(zf *zip.File) ([]byte, error) {
	rc, err := zf.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// DexName 返回第 i 个 dex 的导出文件名
func DexName(i int) string {
	if i == 0 {
		return "classes.dex"
	}
	return fmt.Sprintf("classes%d.dex", i+1)
}

// Export 将 dex 镜像写入 dir，返回写出的文件路径
func Export(dir string, images [][]byte) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(images))
	for i, data := range images {
		p := filepath.Join(dir, DexName(i))
		if err := writeFile(p, data); err != nil {
			return paths, fmt.Errorf("export %s: %w", p, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// writeFile 写入并落盘
func writeFile(dst string, data []byte) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}
