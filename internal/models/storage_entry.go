package models

import (
	"time"

	"gorm.io/gorm"
)

// StorageEntry is one value of the key-value storage.
//
// Each identity owns one entry holding its JSON encoded transaction list.
type StorageEntry struct {
	Key       string    `gorm:"primaryKey"`
	Value     string    `gorm:"type:text"`
	CreatedAt time.Time // Time the entry was first written
	UpdatedAt time.Time // Last time the entry was written
}

// AfterFind sets the timestamps to UTC as reading them
// from the database returns them as +0000.
func (e *StorageEntry) AfterFind(_ *gorm.DB) (err error) {
	e.CreatedAt = e.CreatedAt.In(time.UTC)
	e.UpdatedAt = e.UpdatedAt.In(time.UTC)
	return nil
}
