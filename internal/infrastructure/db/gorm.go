package db

import (
	"log"
	"time"

	"goldloan-backend/internal/domain/branch"
	"goldloan-backend/internal/domain/customer"
	"goldloan-backend/internal/domain/goldrate"
	"goldloan-backend/internal/domain/loan"
	"goldloan-backend/internal/domain/notification"
	"goldloan-backend/internal/domain/payment"
	"goldloan-backend/internal/domain/scheme"
	"goldloan-backend/internal/domain/schemereq"
	"goldloan-backend/internal/domain/user"
	"goldloan-backend/internal/domain/voucher"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates or updates the full schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&branch.Branch{},
		&user.User{},
		&customer.Customer{},
		&scheme.Scheme{},
		&goldrate.GoldRate{},
		&schemereq.SchemeRequest{},
		&loan.Loan{},
		&loan.Item{},
		&payment.Payment{},
		&voucher.Voucher{},
		&notification.Notification{},
	)
}
