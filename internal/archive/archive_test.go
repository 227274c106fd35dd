package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apk-analysis/dexkit-go/internal/dex/dextest"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, entries map[string][]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.apk")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, data := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func dexWith(desc string) []byte {
	return dextest.Build(dextest.Class{Descriptor: desc})
}

// TestOpen_ZipOrder 测试按 classes 序号读取 zip 中的 dex
func TestOpen_ZipOrder(t *testing.T) {
	path := writeZip(t, map[string][]byte{
		"classes10.dex":       dexWith("Lj;"),
		"classes2.dex":        dexWith("Lb;"),
		"classes.dex":         dexWith("La;"),
		"assets/classes3.dex": dexWith("Lx;"),
		"AndroidManifest.xml": []byte("<manifest/>"),
	})

	images, err := Open(path, 4)
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, "classes.dex", images[0].Name)
	assert.Equal(t, "classes2.dex", images[1].Name)
	assert.Equal(t, "classes10.dex", images[2].Name)
}

// TestOpen_RawDex 测试直接读取 dex 文件
func TestOpen_RawDex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classes.dex")
	data := dexWith("La;")
	require.NoError(t, os.WriteFile(path, data, 0644))

	images, err := Open(path, 1)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, data, images[0].Data)
}

// TestOpen_EmptyZip 测试不含 dex 的归档
func TestOpen_EmptyZip(t *testing.T) {
	path := writeZip(t, map[string][]byte{"README": []byte("nothing")})

	images, err := Open(path, 2)
	require.NoError(t, err)
	assert.Empty(t, images)
}

// TestOpen_Errors 测试各类无效输入
func TestOpen_Errors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.apk"), 1)
	assert.Error(t, err)

	text := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("plain text file"), 0644))
	_, err = Open(text, 1)
	assert.ErrorIs(t, err, ErrUnsupported)

	bad := writeZip(t, map[string][]byte{"classes.dex": []byte("not a dex")})
	_, err = Open(bad, 1)
	assert.ErrorIs(t, err, ErrInvalidDex)
}

// TestDexOrder 测试条目序号解析
func TestDexOrder(t *testing.T) {
	cases := map[string]int{"classes.dex": 1, "classes2.dex": 2, "classes12.dex": 12}
	for name, want := range cases {
		got, ok := dexOrder(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	for _, name := range []string{"classes1.dex", "classesX.dex", "lib/classes.dex", "classes.jar"} {
		_, ok := dexOrder(name)
		assert.False(t, ok, name)
	}
}

// TestExport 测试导出文件命名与内容
func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	a, b := dexWith("La;"), dexWith("Lb;")

	paths, err := Export(dir, [][]byte{a, b})
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "classes.dex"), paths[0])
	assert.Equal(t, filepath.Join(dir, "classes2.dex"), paths[1])

	got, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, b, got)
}
