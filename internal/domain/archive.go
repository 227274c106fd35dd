package domain

import (
	"time"
)

type LoadStatus string

const (
	LoadStatusLoaded LoadStatus = "loaded"
	LoadStatusFailed LoadStatus = "failed"
)

// LoadSource 归档来源
type LoadSource string

const (
	LoadSourceAPI     LoadSource = "api"     // HTTP 接口提交
	LoadSourceWatcher LoadSource = "watcher" // 目录监听自动加载
	LoadSourceCLI     LoadSource = "cli"
)

// ArchiveRecord 一次归档加载的记录
type ArchiveRecord struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	SessionID  string     `gorm:"type:varchar(36);index" json:"session_id"`
	Path       string     `gorm:"type:varchar(1024)" json:"path"`
	Source     LoadSource `gorm:"type:varchar(16)" json:"source"`
	Status     LoadStatus `gorm:"type:varchar(16);index" json:"status"`
	DexBefore  int        `json:"dex_before"` // 加载前的 dex 数量
	DexAfter   int        `json:"dex_after"`
	Error      string     `gorm:"type:text" json:"error,omitempty"`
	DurationMs int64      `json:"duration_ms"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (ArchiveRecord) TableName() string {
	return "archive_records"
}

// DexAdded 本次加载新增的 dex 数量
func (r *ArchiveRecord) DexAdded() int {
	return r.DexAfter - r.DexBefore
}
