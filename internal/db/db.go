package db

import (
	"errors"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type MySQLDB struct {
	DB *gorm.DB
}

func NewMySQLDB(dsn string) (*MySQLDB, error) {
	// Every write in this service is a single statement, so gorm's implicit
	// per-write transaction only adds round trips.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Warn),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return &MySQLDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &MySQLDB{
		DB: db,
	}, nil
}

// MigrateModels runs the idempotent schema migration. It is called once at
// process startup; request paths never issue DDL.
func (f *MySQLDB) MigrateModels(models ...any) error {
	err := f.DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}
