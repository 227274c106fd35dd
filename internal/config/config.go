package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Watcher  WatcherConfig  `mapstructure:"watcher"`
	Worker   WorkerConfig   `mapstructure:"worker"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port           int    `mapstructure:"port"`
	Mode           string `mapstructure:"mode"`             // debug, release
	AuthToken      string `mapstructure:"auth_token"`       // 为空时不校验
	MaxPayloadSize int64  `mapstructure:"max_payload_size"` // 查询载荷上限 (字节)
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"` // mysql, sqlite
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	Path     string `mapstructure:"path"` // sqlite 文件路径

	RetentionDays int `mapstructure:"retention_days"` // 加载记录保留天数，0 表示不清理
}

// EngineConfig 分析引擎配置
type EngineConfig struct {
	ThreadNum      int    `mapstructure:"thread_num"`       // 查询并行度
	UnzipThreadNum int    `mapstructure:"unzip_thread_num"` // 解压并行度
	FullCache      bool   `mapstructure:"full_cache"`       // 加载后立即构建完整索引
	MaxResultBytes int64  `mapstructure:"max_result_bytes"` // 未释放结果缓冲区上限，0 表示不限制
	ExportDir      string `mapstructure:"export_dir"`
}

// WatcherConfig 目录监听配置
type WatcherConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Dir      string `mapstructure:"dir"`
	Pattern  string `mapstructure:"pattern"`  // 逗号分隔，例如 *.apk,*.dex
	Debounce int    `mapstructure:"debounce"` // milliseconds

	ScanExisting bool `mapstructure:"scan_existing"` // 启动时加载目录中已有的文件
}

type WorkerConfig struct {
	Concurrency int `mapstructure:"concurrency"` // Worker 数量
	QueueSize   int `mapstructure:"queue_size"`  // 任务队列大小
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
}

// Patterns 返回监听的文件模式列表
func (w WatcherConfig) Patterns() []string {
	var out []string
	for _, p := range strings.Split(w.Pattern, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.auth_token", "")
	v.SetDefault("server.max_payload_size", 16<<20)
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", "./data/dexkit.db")
	v.SetDefault("database.retention_days", 30)
	v.SetDefault("engine.thread_num", 4)
	v.SetDefault("engine.unzip_thread_num", 4)
	v.SetDefault("engine.export_dir", "./data/export")
	v.SetDefault("watcher.pattern", "*.apk,*.dex,*.jar")
	v.SetDefault("watcher.debounce", 500)
	v.SetDefault("worker.concurrency", 2)
	v.SetDefault("worker.queue_size", 64)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("metrics.namespace", "dexkit")
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v)

	// 环境变量覆盖（支持嵌套配置）
	v.SetEnvPrefix("DEXKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Database
	v.BindEnv("database.host", "MYSQL_HOST")
	v.BindEnv("database.port", "MYSQL_PORT")
	v.BindEnv("database.user", "MYSQL_USER")
	v.BindEnv("database.password", "MYSQL_PASS")
	v.BindEnv("database.db_name", "MYSQL_DB")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
