package model

import "gorm.io/gorm"

const (
	ActivityTypeTamper  = "tamper"
	ActivityTypeOffline = "offline"
	ActivityTypeOnline  = "online"
	ActivityTypeOther   = "other"
)

// Activity mengisi feed "Recent Activity" di dashboard.
type Activity struct {
	gorm.Model
	Message   string `json:"message"`
	Type      string `json:"type" gorm:"default:other"` // tamper | offline | online | other
	DeviceID  string `json:"device_id"`
	Timestamp int64  `json:"timestamp" gorm:"index"` // Epoch millis
}
