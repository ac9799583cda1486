package storage

import (
	"context"
	"errors"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is one stored key-value pair: cart snapshots written by the menu
// side, paid receipts written here.
type Snapshot struct {
	K string `gorm:"column:k;primaryKey;size:191"`
	V string `gorm:"column:v;type:longtext"`
}

func (Snapshot) TableName() string { return "snapshots" }

// MySQL backs the Store with a snapshots table.
type MySQL struct {
	db *gorm.DB
}

func NewMySQL(dsn string) (*MySQL, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, err
	}
	return &MySQL{db: db}, nil
}

func (s *MySQL) Get(ctx context.Context, key string) (string, error) {
	var snap Snapshot
	err := s.db.WithContext(ctx).First(&snap, "k = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return snap.V, nil
}

func (s *MySQL) Set(ctx context.Context, key, value string) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "k"}},
			DoUpdates: clause.AssignmentColumns([]string{"v"}),
		}).
		Create(&Snapshot{K: key, V: value}).Error
}
