package mysql

import (
	"context"
	"time"

	goldrateDomain "goldloan-backend/internal/domain/goldrate"
	schemeDomain "goldloan-backend/internal/domain/scheme"

	"gorm.io/gorm"
)

type SchemeRepository struct{ db *gorm.DB }

func NewSchemeRepository(db *gorm.DB) *SchemeRepository { return &SchemeRepository{db: db} }

func (r *SchemeRepository) Create(ctx context.Context, s *schemeDomain.Scheme) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SchemeRepository) GetByID(ctx context.Context, id uint64) (*schemeDomain.Scheme, error) {
	var out schemeDomain.Scheme
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *SchemeRepository) GetByName(ctx context.Context, name string) (*schemeDomain.Scheme, error) {
	var out schemeDomain.Scheme
	res := r.db.WithContext(ctx).Where("scheme_name = ?", name).First(&out)
	return &out, res.Error
}

func (r *SchemeRepository) ListActive(ctx context.Context) ([]schemeDomain.Scheme, error) {
	var out []schemeDomain.Scheme
	res := r.db.WithContext(ctx).Where("is_active = ?", true).Order("scheme_name").Find(&out)
	return out, res.Error
}

func (r *SchemeRepository) Save(ctx context.Context, s *schemeDomain.Scheme) error {
	return r.db.WithContext(ctx).Save(s).Error
}

type GoldRateRepository struct{ db *gorm.DB }

func NewGoldRateRepository(db *gorm.DB) *GoldRateRepository { return &GoldRateRepository{db: db} }

func (r *GoldRateRepository) Create(ctx context.Context, g *goldrateDomain.GoldRate) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GoldRateRepository) Latest(ctx context.Context) (*goldrateDomain.GoldRate, error) {
	var out goldrateDomain.GoldRate
	res := r.db.WithContext(ctx).Order("rate_date DESC").First(&out)
	return &out, res.Error
}

func (r *GoldRateRepository) GetByDate(ctx context.Context, day time.Time) (*goldrateDomain.GoldRate, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Second)
	var out goldrateDomain.GoldRate
	res := r.db.WithContext(ctx).
		Where("rate_date BETWEEN ? AND ?", start, end).
		First(&out)
	return &out, res.Error
}

func (r *GoldRateRepository) Save(ctx context.Context, g *goldrateDomain.GoldRate) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *GoldRateRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&goldrateDomain.GoldRate{}, id).Error
}
