package models

import "time"

// PromotionWindow persists a flash-sale deadline for the postgres-backed store
type PromotionWindow struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	ExpiresAt string    `gorm:"not null" json:"expires_at"` // epoch milliseconds
	UpdatedAt time.Time `json:"updated_at"`
}
