package mysql

import (
	"context"

	schemereqDomain "goldloan-backend/internal/domain/schemereq"

	"gorm.io/gorm"
)

type SchemeRequestRepository struct{ db *gorm.DB }

func NewSchemeRequestRepository(db *gorm.DB) *SchemeRequestRepository {
	return &SchemeRequestRepository{db: db}
}

func (r *SchemeRequestRepository) Create(ctx context.Context, req *schemereqDomain.SchemeRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *SchemeRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*schemereqDomain.SchemeRequest, error) {
	var out schemereqDomain.SchemeRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *SchemeRequestRepository) Save(ctx context.Context, req *schemereqDomain.SchemeRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *SchemeRequestRepository) List(ctx context.Context, f schemereqDomain.ListFilter) ([]schemereqDomain.SchemeRequest, error) {
	q := r.db.WithContext(ctx).Model(&schemereqDomain.SchemeRequest{})
	if f.StaffID != "" {
		q = q.Where("staff_id = ?", f.StaffID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var out []schemereqDomain.SchemeRequest
	res := q.Order("created_at DESC").Find(&out)
	return out, res.Error
}

func (r *SchemeRequestRepository) LatestApproved(ctx context.Context, customerRef, schemeRef uint64) (*schemereqDomain.SchemeRequest, error) {
	var out schemereqDomain.SchemeRequest
	res := r.db.WithContext(ctx).
		Where("customer_ref = ? AND scheme_ref = ? AND status = ?",
			customerRef, schemeRef, schemereqDomain.StatusApproved).
		Order("created_at DESC").
		First(&out)
	return &out, res.Error
}
