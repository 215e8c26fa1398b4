package cache

import (
	"context"
	"errors"
	"time"

	"storefront/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps the cache in a SQL database so several storefront instances share it.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry models.CacheEntry
	err := s.db.WithContext(ctx).
		Where("cache_key = ? AND expires_at > ?", key, s.now()).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Payload, true, nil
}

func (s *GormStore) Set(ctx context.Context, key string, payload []byte, tags []string, ttl time.Duration) error {
	entry := models.CacheEntry{
		CacheKey:  key,
		Payload:   payload,
		ExpiresAt: s.now().Add(ttl),
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entry).Error; err != nil {
			return err
		}
		if err := tx.Where("cache_key = ?", key).Delete(&models.CacheTag{}).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		rows := make([]models.CacheTag, 0, len(tags))
		for _, tag := range tags {
			rows = append(rows, models.CacheTag{CacheKey: key, Tag: tag})
		}
		return tx.Create(&rows).Error
	})
}

func (s *GormStore) InvalidateTags(ctx context.Context, tags ...string) (int, error) {
	if len(tags) == 0 {
		return 0, nil
	}
	var keys []string
	if err := s.db.WithContext(ctx).
		Model(&models.CacheTag{}).
		Where("tag IN ?", tags).
		Distinct().
		Pluck("cache_key", &keys).Error; err != nil {
		return 0, err
	}
	return s.deleteKeys(ctx, keys)
}

func (s *GormStore) Purge(ctx context.Context) (int, error) {
	var keys []string
	if err := s.db.WithContext(ctx).
		Model(&models.CacheEntry{}).
		Where("expires_at <= ?", s.now()).
		Pluck("cache_key", &keys).Error; err != nil {
		return 0, err
	}
	return s.deleteKeys(ctx, keys)
}

func (s *GormStore) deleteKeys(ctx context.Context, keys []string) (int, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("cache_key IN ?", keys).Delete(&models.CacheEntry{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return tx.Where("cache_key IN ?", keys).Delete(&models.CacheTag{}).Error
	})
	return int(removed), err
}
