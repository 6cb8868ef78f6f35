package repository

import (
	"context"

	"anoa.com/yayasanalhikmah/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VisitorRepository interface {
	// AddToDate adds delta to the counter for the given day with a single
	// upsert, so concurrent flushes never lose increments.
	AddToDate(ctx context.Context, date string, delta int64) error
	CountForDate(ctx context.Context, date string) (int64, error)
	Total(ctx context.Context) (int64, error)
}

type visitorRepository struct {
	db *gorm.DB
}

func NewVisitorRepository(db *gorm.DB) VisitorRepository {
	return &visitorRepository{db: db}
}

func (r *visitorRepository) AddToDate(ctx context.Context, date string, delta int64) error {
	stat := model.VisitorStat{Date: date, Count: delta}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count": gorm.Expr("visitor_stats.count + ?", delta),
		}),
	}).Create(&stat).Error
}

func (r *visitorRepository) CountForDate(ctx context.Context, date string) (int64, error) {
	var stat model.VisitorStat
	err := r.db.WithContext(ctx).Where("date = ?", date).First(&stat).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return stat.Count, nil
}

func (r *visitorRepository) Total(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.VisitorStat{}).
		Select("COALESCE(SUM(count), 0)").
		Scan(&total).Error
	return total, err
}
