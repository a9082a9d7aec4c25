package store

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/*
 * 'Entry' is the single table behind the gorm-backed store: one row per
 * logical key, value is the whole collection as a JSON document.
 */
type Entry struct {
	Key   string         `gorm:"primaryKey;size:100;not null"`
	Value datatypes.JSON `gorm:"not null"`
}

func (Entry) TableName() string { return "storage_entries" }

// GormStore persists collections in an embedded database through GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the storage table and wraps the connection.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("auto migration failed: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (g *GormStore) Get(key string) ([]byte, error) {
	var e Entry
	if err := g.db.Where("key = ?", key).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoKey
		}
		return nil, fmt.Errorf("error reading key %s: %v", key, err)
	}
	return []byte(e.Value), nil
}

func (g *GormStore) Set(key string, value []byte) error {
	e := Entry{Key: key, Value: datatypes.JSON(value)}
	err := g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("error writing key %s: %v", key, err)
	}
	return nil
}

func (g *GormStore) Delete(key string) error {
	if err := g.db.Delete(&Entry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("error deleting key %s: %v", key, err)
	}
	return nil
}

func (g *GormStore) Keys() ([]string, error) {
	var keys []string
	if err := g.db.Model(&Entry{}).Order("key").Pluck("key", &keys).Error; err != nil {
		return nil, fmt.Errorf("error listing keys: %v", err)
	}
	return keys, nil
}

func (g *GormStore) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return fmt.Errorf("error reading underlying SQL DB: %v", err)
	}
	return sqlDB.Close()
}
