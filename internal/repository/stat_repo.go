package repository

import (
	"Bonjour/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatTotals 一段窗口内的指标合计，供概览 KPI 使用
type StatTotals struct {
	Views      int64
	Likes      int64
	Comments   int64
	Shares     int64
	Follows    int64
	Engagement int64
	Reach      int64
}

// StatQuery 每日统计的类型化查询条件，避免裸 map 拼接 where
type StatQuery struct {
	BrandID   uint64
	Platforms []string
	Start     time.Time
	End       time.Time
}

type StatRepo interface {
	// GetDailyStats 取窗口内全部平台行，按日期升序。整个平台集合一次查询
	GetDailyStats(ctx context.Context, q StatQuery) ([]*model.DailyPlatformStat, error)
	// SumInWindow 窗口内各指标合计
	SumInWindow(ctx context.Context, brandID uint64, start, end time.Time) (*StatTotals, error)
	// SaveOrUpdateStat Upsert 单日统计，(brand, platform, date) 冲突时覆盖计数
	SaveOrUpdateStat(ctx context.Context, stat *model.DailyPlatformStat) error
	// GetLatestSnapshots 某平台最近 count 条粉丝快照，按月份降序
	GetLatestSnapshots(ctx context.Context, brandID uint64, platform string, count int) ([]*model.FollowerSnapshot, error)
	// GetLatestSnapshotBefore 指定日期前最近的一条快照，不存在返回 nil
	GetLatestSnapshotBefore(ctx context.Context, brandID uint64, platform string, date time.Time) (*model.FollowerSnapshot, error)
}

type statRepoImpl struct {
	db *gorm.DB
}

func NewStatRepository(db *gorm.DB) StatRepo {
	return &statRepoImpl{db: db}
}

func (r *statRepoImpl) GetDailyStats(ctx context.Context, q StatQuery) ([]*model.DailyPlatformStat, error) {
	stats := make([]*model.DailyPlatformStat, 0)
	tx := r.db.WithContext(ctx).
		Where("brand_id = ?", q.BrandID).
		Where("stat_date BETWEEN ? AND ?", q.Start, q.End)
	if len(q.Platforms) > 0 {
		tx = tx.Where("platform IN ?", q.Platforms)
	}
	result := tx.Order("stat_date ASC").Find(&stats)
	if result.Error != nil {
		return nil, result.Error
	}
	return stats, nil
}

func (r *statRepoImpl) SumInWindow(ctx context.Context, brandID uint64, start, end time.Time) (*StatTotals, error) {
	var totals StatTotals
	err := r.db.WithContext(ctx).
		Model(&model.DailyPlatformStat{}).
		Select(
			"COALESCE(SUM(views),0) AS views, "+
				"COALESCE(SUM(likes),0) AS likes, "+
				"COALESCE(SUM(comments),0) AS comments, "+
				"COALESCE(SUM(shares),0) AS shares, "+
				"COALESCE(SUM(follows),0) AS follows, "+
				"COALESCE(SUM(engagement),0) AS engagement, "+
				"COALESCE(SUM(reach),0) AS reach").
		Where("brand_id = ?", brandID).
		Where("stat_date BETWEEN ? AND ?", start, end).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *statRepoImpl) SaveOrUpdateStat(ctx context.Context, stat *model.DailyPlatformStat) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "brand_id"}, {Name: "platform"}, {Name: "stat_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"views", "likes", "comments", "shares", "follows", "engagement", "reach",
		}),
	}).Create(stat).Error
}

func (r *statRepoImpl) GetLatestSnapshots(ctx context.Context, brandID uint64, platform string, count int) ([]*model.FollowerSnapshot, error) {
	snapshots := make([]*model.FollowerSnapshot, 0, count)
	result := r.db.WithContext(ctx).
		Where("brand_id = ? AND platform = ?", brandID, platform).
		Order("snapshot_date DESC").
		Limit(count).
		Find(&snapshots)
	if result.Error != nil {
		return nil, result.Error
	}
	return snapshots, nil
}

func (r *statRepoImpl) GetLatestSnapshotBefore(ctx context.Context, brandID uint64, platform string, date time.Time) (*model.FollowerSnapshot, error) {
	var snapshot model.FollowerSnapshot
	err := r.db.WithContext(ctx).
		Where("brand_id = ? AND platform = ? AND snapshot_date < ?", brandID, platform, date).
		Order("snapshot_date DESC").
		First(&snapshot).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}
