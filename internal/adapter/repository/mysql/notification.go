package mysql

import (
	"context"

	notificationDomain "goldloan-backend/internal/domain/notification"

	"gorm.io/gorm"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateBatch(ctx context.Context, ns []notificationDomain.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&ns).Error
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipient string) ([]notificationDomain.Notification, error) {
	var out []notificationDomain.Notification
	res := r.db.WithContext(ctx).
		Where("recipient = ?", recipient).
		Order("created_at DESC").
		Find(&out)
	return out, res.Error
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uint64, recipient string) error {
	return r.db.WithContext(ctx).
		Model(&notificationDomain.Notification{}).
		Where("id = ? AND recipient = ?", id, recipient).
		Update("is_read", true).Error
}
