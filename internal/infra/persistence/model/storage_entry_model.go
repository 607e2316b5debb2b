package model

import "time"

// StorageEntryModel mirrors the 'storage_entries' key-value table.
type StorageEntryModel struct {
	Key       string `gorm:"type:varchar(255);primaryKey"`
	Value     []byte `gorm:"type:bytea;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StorageEntryModel) TableName() string {
	return "storage_entries"
}
