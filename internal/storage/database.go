package storage

import (
	"context"
	"errors"

	"github.com/gofinances/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Database is a Store backed by the storage_entries table.
type Database struct {
	db *gorm.DB
}

// NewDatabase returns a Store using db.
func NewDatabase(db *gorm.DB) Database {
	return Database{db: db}
}

func (d Database) Get(ctx context.Context, key string) (string, error) {
	var entry models.StorageEntry
	err := d.db.WithContext(ctx).Where(&models.StorageEntry{Key: key}).First(&entry).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	return entry.Value, nil
}

func (d Database) Update(ctx context.Context, key string, fn UpdateFunc) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry models.StorageEntry
		found := true

		err := tx.Where(&models.StorageEntry{Key: key}).First(&entry).Error
		if err != nil {
			if !errors.Is(err, models.ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			found = false
		}

		value, err := fn(entry.Value, found)
		if err != nil {
			return err
		}

		entry.Key = key
		entry.Value = value

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&entry).Error
	})
}

func (d Database) Delete(ctx context.Context, key string) error {
	return d.db.WithContext(ctx).Where(&models.StorageEntry{Key: key}).Delete(&models.StorageEntry{}).Error
}
