package models

import (
	"time"
)

// LinkAnalytic is one recorded traversal of a short code.
type LinkAnalytic struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	LinkID    uint      `json:"link_id" gorm:"index;not null"`
	IPAddress string    `json:"ip_address"`
	Device    string    `json:"device"`
	Browser   string    `json:"browser"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
