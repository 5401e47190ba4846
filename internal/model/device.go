package model

import (
	"time"

	"gorm.io/gorm"
)

// Status perangkat yang valid. Status inilah yang menentukan semua
// perhitungan KPI dan warna marker di peta client.
const (
	DeviceStatusHealthy = "healthy"
	DeviceStatusTamper  = "tamper"
	DeviceStatusOffline = "offline"
)

type Device struct {
	gorm.Model
	DeviceID          string        `json:"device_id" gorm:"unique;not null"` // Contoh: DEV001
	Name              string        `json:"name"`                             // Contoh: Scale Unit A1
	Type              string        `json:"type"`                             // Contoh: Weighing Scale, Fuel Meter
	Status            string        `json:"status" gorm:"default:offline"`    // healthy | tamper | offline
	Location          string        `json:"location"`                         // Alamat bebas (pasar, toko)
	Lat               float64       `json:"lat"`
	Lng               float64       `json:"lng"`
	Region            string        `json:"region"`
	Owner             string        `json:"owner"`
	Manufacturer      string        `json:"manufacturer"`
	DeviceModel       string        `json:"model" gorm:"column:device_model"` // "model" bentrok dengan gorm.Model
	SerialNumber      string        `json:"serial_number"`
	FirmwareVersion   string        `json:"firmware_version"`
	BatteryLevel      int           `json:"battery_level"` // 0 - 100
	PowerStatus       string        `json:"power_status"`  // AC Power / Battery
	Uptime            string        `json:"uptime"`        // Contoh: "99.8%"
	LastHeartbeat     int64         `json:"last_heartbeat"` // Epoch millis dari telemetry
	CalibrationDate   *time.Time    `json:"calibration_date"`
	CalibrationExpiry *time.Time    `json:"calibration_expiry"`
	TamperEvents      []TamperEvent `json:"tamper_history" gorm:"foreignKey:DeviceRefID;constraint:OnDelete:CASCADE"`
}

// TamperEvent adalah riwayat tamper per perangkat (urut sesuai insert).
type TamperEvent struct {
	gorm.Model
	DeviceRefID uint   `json:"-" gorm:"column:device_ref_id;index"`
	Type        string `json:"type"` // Physical Tampering, Software Modification, dst
	Date        string `json:"date"`
	Status      string `json:"status"` // resolved / investigating
	Technician  string `json:"technician"`
}

func (TamperEvent) TableName() string {
	return "device_tamper_events"
}
