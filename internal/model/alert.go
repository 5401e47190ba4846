package model

import "gorm.io/gorm"

const (
	AlertSeverityCritical = "critical"
	AlertSeverityHigh     = "high"
	AlertSeverityMedium   = "medium"
	AlertSeverityLow      = "low"

	AlertStatusActive        = "active"
	AlertStatusPending       = "pending"
	AlertStatusResolved      = "resolved"
	AlertStatusInvestigating = "investigating"
)

type Alert struct {
	gorm.Model
	DeviceID    string      `json:"device_id" gorm:"index"`
	DeviceName  string      `json:"device_name"`
	Severity    string      `json:"severity"` // critical | high | medium | low
	Status      string      `json:"status" gorm:"default:active"`
	Message     string      `json:"message"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Lat         float64     `json:"lat"`
	Lng         float64     `json:"lng"`
	Timestamp   int64       `json:"timestamp" gorm:"index"` // Epoch millis
	AssignedTo  string      `json:"assigned_to"`
	Notes       []AlertNote `json:"notes" gorm:"foreignKey:AlertRefID;constraint:OnDelete:CASCADE"`
}

// AlertNote: catatan inspektur, append-only (tidak pernah diedit/dihapus).
type AlertNote struct {
	gorm.Model
	AlertRefID uint   `json:"-" gorm:"column:alert_ref_id;index"`
	Note       string `json:"note"`
	Author     string `json:"author"`
}
