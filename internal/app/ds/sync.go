package ds

import "time"

// SyncMeta is a key/value row for ingestion bookkeeping, e.g. the persisted
// sync version counter.
type SyncMeta struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     string    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (SyncMeta) TableName() string {
	return "sync_meta"
}
