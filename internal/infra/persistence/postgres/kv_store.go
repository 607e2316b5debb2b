package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvStore implements repository.KeyValueStore on the storage_entries table.
type kvStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewKeyValueStore is the constructor for the table-backed key-value store.
func NewKeyValueStore(db *gorm.DB) repository.KeyValueStore {
	return &kvStore{db: db, now: time.Now}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry model.StorageEntryModel
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to get storage entry %s", key)
	}

	return entry.Value, nil
}

// Set upserts the entry so concurrent writers on the same key never conflict.
func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	entry := model.StorageEntryModel{Key: key, Value: value, UpdatedAt: s.now()}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return errors.Wrapf(err, "failed to set storage entry %s", key)
	}

	return nil
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&model.StorageEntryModel{}).Error; err != nil {
		return errors.Wrapf(err, "failed to delete storage entry %s", key)
	}

	return nil
}
