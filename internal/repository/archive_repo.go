package repository

import (
	"context"
	"errors"
	"time"

	"github.com/apk-analysis/dexkit-go/internal/domain"
	"gorm.io/gorm"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// ArchiveRepository 归档加载记录 Repository
type ArchiveRepository interface {
	Create(ctx context.Context, record *domain.ArchiveRecord) error
	FindByID(ctx context.Context, id uint) (*domain.ArchiveRecord, error)
	ListBySession(ctx context.Context, sessionID string) ([]*domain.ArchiveRecord, error)
	// 分页查询，status 为空时不过滤
	ListWithPagination(ctx context.Context, page, pageSize int, status string) ([]*domain.ArchiveRecord, int64, error)
	GetStatusCounts(ctx context.Context) (map[string]int64, error)
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}

type archiveRepo struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) ArchiveRepository {
	return &archiveRepo{db: db}
}

func (r *archiveRepo) Create(ctx context.Context, record *domain.ArchiveRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *archiveRepo) FindByID(ctx context.Context, id uint) (*domain.ArchiveRecord, error) {
	var record domain.ArchiveRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListBySession 按加载顺序返回会话的全部记录
func (r *archiveRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.ArchiveRecord, error) {
	var records []*domain.ArchiveRecord
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&records).Error
	return records, err
}

func (r *archiveRepo) ListWithPagination(ctx context.Context, page, pageSize int, status string) ([]*domain.ArchiveRecord, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}

	// 统计与分页各自构建查询，避免 Count 影响后续语句
	filtered := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&domain.ArchiveRecord{})
		if status != "" {
			q = q.Where("status = ?", status)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []*domain.ArchiveRecord
	err := filtered().
		Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// GetStatusCounts 使用聚合查询统计各状态数量
func (r *archiveRepo) GetStatusCounts(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.ArchiveRecord{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *archiveRepo) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", before).
		Delete(&domain.ArchiveRecord{})
	return result.RowsAffected, result.Error
}
