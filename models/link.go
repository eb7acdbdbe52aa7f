package models

import (
	"time"
)

type Link struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	OriginalURL string         `json:"original_url" gorm:"not null"`
	ShortCode   string         `json:"short_code" gorm:"uniqueIndex;size:6;not null"`
	Clicks      int64          `json:"clicks" gorm:"not null;default:0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Analytics   []LinkAnalytic `json:"analytics,omitempty" gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE"`
}
