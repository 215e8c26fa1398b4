package models

import "time"

// CacheEntry is a persisted API response keyed by its query digest.
// Payload holds the encoded JSON as raw bytes so scalar documents survive column affinity.
type CacheEntry struct {
	CacheKey  string    `gorm:"primaryKey;size:64"`
	Payload   []byte    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}

// CacheTag links a cache entry to an invalidation tag.
type CacheTag struct {
	ID       uint   `gorm:"primaryKey"`
	CacheKey string `gorm:"size:64;index"`
	Tag      string `gorm:"size:128;index"`
}
