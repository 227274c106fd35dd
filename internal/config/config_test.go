package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoad_Defaults 测试缺省值填充
func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, 4, cfg.Engine.ThreadNum)
	assert.Equal(t, 4, cfg.Engine.UnzipThreadNum)
	assert.Equal(t, "dexkit", cfg.Metrics.Namespace)
	assert.Equal(t, []string{"*.apk", "*.dex", "*.jar"}, cfg.Watcher.Patterns())
}

// TestLoad_EngineSection 测试引擎配置解析
func TestLoad_EngineSection(t *testing.T) {
	path := writeConfig(t, `
engine:
  thread_num: 8
  unzip_thread_num: 2
  full_cache: true
  max_result_bytes: 1048576
watcher:
  enabled: true
  dir: /tmp/inbox
  pattern: " *.apk , ,*.dex"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Engine.ThreadNum)
	assert.Equal(t, 2, cfg.Engine.UnzipThreadNum)
	assert.True(t, cfg.Engine.FullCache)
	assert.Equal(t, int64(1048576), cfg.Engine.MaxResultBytes)
	assert.True(t, cfg.Watcher.Enabled)
	assert.Equal(t, []string{"*.apk", "*.dex"}, cfg.Watcher.Patterns())
}

// TestLoad_EnvOverride 测试环境变量覆盖
func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "engine:\n  thread_num: 2\n")
	t.Setenv("DEXKIT_ENGINE_THREAD_NUM", "16")
	t.Setenv("MYSQL_HOST", "db.internal")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Engine.ThreadNum)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

// TestLoad_MissingFile 测试配置文件不存在
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestInitLogger_Level 测试日志级别与格式
func TestInitLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LogConfig{Level: "warn", Format: "json"}, &buf)

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

// TestInitLogger_InvalidLevel 测试非法日志级别回退为 info
func TestInitLogger_InvalidLevel(t *testing.T) {
	logger := NewLogger(&LogConfig{Level: "verbose"}, &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
