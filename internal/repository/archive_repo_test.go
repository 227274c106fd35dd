package repository

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/apk-analysis/dexkit-go/internal/config"
	"github.com/apk-analysis/dexkit-go/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupArchiveTestDB 创建测试数据库
func setupArchiveTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "Failed to open test database")

	err = db.AutoMigrate(&domain.ArchiveRecord{})
	require.NoError(t, err, "Failed to migrate test database")

	return db
}

func seedRecords(t *testing.T, repo ArchiveRepository) {
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	records := []*domain.ArchiveRecord{
		{SessionID: "s1", Path: "/data/a.apk", Source: domain.LoadSourceAPI, Status: domain.LoadStatusLoaded, DexBefore: 0, DexAfter: 2, CreatedAt: base},
		{SessionID: "s1", Path: "/data/missing.apk", Source: domain.LoadSourceAPI, Status: domain.LoadStatusFailed, DexBefore: 2, DexAfter: 2, Error: "no such file", CreatedAt: base.Add(time.Minute)},
		{SessionID: "s2", Path: "/inbox/b.dex", Source: domain.LoadSourceWatcher, Status: domain.LoadStatusLoaded, DexBefore: 0, DexAfter: 1, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range records {
		require.NoError(t, repo.Create(ctx, r))
	}
}

// TestArchiveRepository_Create 测试创建记录
func TestArchiveRepository_Create(t *testing.T) {
	repo := NewArchiveRepository(setupArchiveTestDB(t))
	ctx := context.Background()

	record := &domain.ArchiveRecord{
		SessionID: "s1",
		Path:      "/data/app.apk",
		Source:    domain.LoadSourceCLI,
		Status:    domain.LoadStatusLoaded,
		DexAfter:  3,
	}
	require.NoError(t, repo.Create(ctx, record))
	assert.NotZero(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "/data/app.apk", found.Path)
	assert.Equal(t, 3, found.DexAdded())

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestArchiveRepository_ListBySession 测试按会话查询
func TestArchiveRepository_ListBySession(t *testing.T) {
	repo := NewArchiveRepository(setupArchiveTestDB(t))
	seedRecords(t, repo)

	records, err := repo.ListBySession(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "/data/a.apk", records[0].Path)
	assert.Equal(t, domain.LoadStatusFailed, records[1].Status)
	assert.Equal(t, 0, records[1].DexAdded())

	records, err = repo.ListBySession(context.Background(), "none")
	require.NoError(t, err)
	assert.Empty(t, records)
}

// TestArchiveRepository_ListWithPagination 测试分页与状态过滤
func TestArchiveRepository_ListWithPagination(t *testing.T) {
	repo := NewArchiveRepository(setupArchiveTestDB(t))
	seedRecords(t, repo)
	ctx := context.Background()

	records, total, err := repo.ListWithPagination(ctx, 1, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, records, 2)
	assert.Equal(t, "/inbox/b.dex", records[0].Path)

	records, total, err = repo.ListWithPagination(ctx, 2, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, records, 1)

	records, total, err = repo.ListWithPagination(ctx, 1, 20, string(domain.LoadStatusFailed))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "no such file", records[0].Error)
}

// TestArchiveRepository_GetStatusCounts 测试状态统计
func TestArchiveRepository_GetStatusCounts(t *testing.T) {
	repo := NewArchiveRepository(setupArchiveTestDB(t))
	seedRecords(t, repo)

	counts, err := repo.GetStatusCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"loaded": 2, "failed": 1}, counts)
}

// TestArchiveRepository_DeleteBefore 测试按时间清理
func TestArchiveRepository_DeleteBefore(t *testing.T) {
	repo := NewArchiveRepository(setupArchiveTestDB(t))
	seedRecords(t, repo)
	ctx := context.Background()

	n, err := repo.DeleteBefore(ctx, time.Date(2026, 10, 1, 8, 1, 30, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, total, err := repo.ListWithPagination(ctx, 1, 20, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

// TestInitDB_SQLite 测试 sqlite 初始化与迁移
func TestInitDB_SQLite(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	db, err := InitDB(&config.DatabaseConfig{Type: "sqlite", Path: t.TempDir() + "/nested/dexkit.db"}, logger)
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&domain.ArchiveRecord{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}
