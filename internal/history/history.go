// Package history persists a record of each conversion attempt. The
// desktop application kept this in a local SQLite file; the service
// form of the pipeline keeps the same record shape in Postgres via
// GORM, behind a Store interface so a deployment without a database
// still runs (NullStore).
package history

import (
	"context"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/linkyourbin/nlbn-gui/internal/apperror"
)

// Entry is one conversion attempt, matching the fields the desktop
// application's SQLite history table tracked.
type Entry struct {
	ID            uint      `gorm:"primarykey"`
	CreatedAt     time.Time
	LcscID        string `gorm:"index;not null"`
	ComponentName string
	Success       bool `gorm:"not null"`
	OutputDir     string `gorm:"not null"`
	Message       string
}

// TableName pins the table name regardless of the struct name GORM
// would otherwise pluralize it to.
func (Entry) TableName() string { return "conversion_history" }

// Store records and retrieves conversion history.
type Store interface {
	Record(ctx context.Context, entry *Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
	Clear(ctx context.Context) error
}

// NullStore discards every entry; it is the default when no database
// URL is configured, so conversions still run without Postgres.
type NullStore struct{}

func (NullStore) Record(ctx context.Context, entry *Entry) error   { return nil }
func (NullStore) Recent(ctx context.Context, limit int) ([]Entry, error) { return nil, nil }
func (NullStore) Clear(ctx context.Context) error                  { return nil }

// GormStore is the Postgres-backed Store.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens dsn and migrates the history table.
func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, apperror.Emit("history database", err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, apperror.Emit("history migration", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Record(ctx context.Context, entry *Entry) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return apperror.Emit("history insert", err)
	}
	return nil
}

func (s *GormStore) Recent(ctx context.Context, limit int) ([]Entry, error) {
	var entries []Entry
	if err := s.db.WithContext(ctx).Order("id desc").Limit(limit).Find(&entries).Error; err != nil {
		return nil, apperror.Emit("history query", err)
	}
	return entries, nil
}

func (s *GormStore) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("DELETE FROM conversion_history").Error; err != nil {
		return apperror.Emit("history clear", err)
	}
	return nil
}
