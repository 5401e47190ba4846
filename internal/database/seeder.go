package database

import (
	"context"
	"encoding/json"
	"log"
	"metrologi-backend/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll mengisi data contoh untuk development. Idempotent: aman dijalankan
// berulang kali, data yang sudah ada tidak diduplikasi.
func SeedAll(db *gorm.DB, rdb *redis.Client) {
	seedUsers(db)
	seedDevices(db)
	seedAlerts(db)
	seedActivities(db)
	seedTamperLogs(rdb)
}

func seedUsers(db *gorm.DB) {
	// Password default semua akun seed: metrologi123
	hashed, err := bcrypt.GenerateFromPassword([]byte("metrologi123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Gagal hash password seed:", err)
	}

	users := []model.User{
		{Name: "Priya Singh", Email: "priya.singh@regulator.gov.in", Role: "Admin", Region: "Delhi", IsActive: true},
		{Name: "Raj Kumar", Email: "raj.kumar@regulator.gov.in", Role: "Inspector", Region: "Mumbai", IsActive: true},
		{Name: "Amit Sharma", Email: "amit.sharma@regulator.gov.in", Role: "Regulator", Region: "Chennai", IsActive: true},
		{Name: "Ravi Kumar", Email: "ravi.kumar@regulator.gov.in", Role: "Technician", Region: "Delhi", IsActive: false},
		{Name: "Meera Patel", Email: "meera.patel@regulator.gov.in", Role: "Inspector", Region: "Bangalore", IsActive: true},
	}
	for _, u := range users {
		u.Password = string(hashed)
		db.Where(model.User{Email: u.Email}).FirstOrCreate(&u)
	}
}

func seedDevices(db *gorm.DB) {
	calibDate := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	calibExpiry := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	calibDate2 := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
	calibExpiry2 := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	now := time.Now().UnixMilli()

	devices := []model.Device{
		{
			DeviceID: "DEV001", Name: "Scale Unit A1", Type: "Weighing Scale",
			Status: model.DeviceStatusHealthy,
			Location: "Delhi Market, Shop 5", Lat: 28.7041, Lng: 77.1025, Region: "North",
			Owner: "Delhi Municipal Corp", Manufacturer: "TechScale Inc", DeviceModel: "TS-2000",
			SerialNumber: "TS2000-001", FirmwareVersion: "2.1.4",
			BatteryLevel: 85, PowerStatus: "AC Power", Uptime: "99.8%",
			LastHeartbeat:   now,
			CalibrationDate: &calibDate, CalibrationExpiry: &calibExpiry,
		},
		{
			DeviceID: "DEV002", Name: "Scale Unit B2", Type: "Weighing Scale",
			Status: model.DeviceStatusTamper,
			Location: "Mumbai Market, Stall 12", Lat: 19.0760, Lng: 72.8777, Region: "West",
			Owner: "Mumbai Municipal Corp", Manufacturer: "PrecisionTech", DeviceModel: "PT-3000",
			SerialNumber: "PT3000-002", FirmwareVersion: "1.8.2",
			BatteryLevel: 45, PowerStatus: "Battery", Uptime: "95.2%",
			LastHeartbeat:   now,
			CalibrationDate: &calibDate2, CalibrationExpiry: &calibExpiry2,
			TamperEvents: []model.TamperEvent{
				{Type: "Physical Tampering", Date: "2024-09-20", Status: "investigating", Technician: "Ravi Kumar"},
			},
		},
		{
			DeviceID: "DEV003", Name: "Scale Unit C3", Type: "Digital Scale",
			Status: model.DeviceStatusOffline,
			Location: "Bangalore Market, Zone A", Lat: 12.9716, Lng: 77.5946, Region: "South",
			Owner: "Bangalore Municipal Corp", Manufacturer: "TechScale Inc", DeviceModel: "TS-2000",
			SerialNumber: "DS003-2024", FirmwareVersion: "2.1.1",
			BatteryLevel: 0, PowerStatus: "Battery", Uptime: "91.4%",
			LastHeartbeat: now,
		},
	}
	for _, d := range devices {
		db.Where(model.Device{DeviceID: d.DeviceID}).FirstOrCreate(&d)
	}
}

func seedAlerts(db *gorm.DB) {
	var count int64
	db.Model(&model.Alert{}).Count(&count)
	if count > 0 {
		return
	}

	now := time.Now().UnixMilli()
	alerts := []model.Alert{
		{
			DeviceID: "DEV001", DeviceName: "Scale Unit A1",
			Severity: model.AlertSeverityCritical, Status: model.AlertStatusActive,
			Message:     "Unauthorized access detected",
			Description: "Device tampering attempt detected at 14:30. Physical seal broken.",
			Location:    "Delhi Market, Shop 5", Lat: 28.7041, Lng: 77.1025,
			Timestamp: now,
		},
		{
			DeviceID: "DEV002", DeviceName: "Scale Unit B2",
			Severity: model.AlertSeverityMedium, Status: model.AlertStatusPending,
			Message:     "Calibration drift detected",
			Description: "Weight measurements showing consistent 2% deviation from standard.",
			Location:    "Mumbai Market, Stall 12", Lat: 19.0760, Lng: 72.8777,
			Timestamp: now - 3600_000,
		},
		{
			DeviceID: "DEV003", DeviceName: "Scale Unit C3",
			Severity: model.AlertSeverityLow, Status: model.AlertStatusResolved,
			Message:     "Connectivity issue resolved",
			Description: "Network connection restored after maintenance.",
			Location:    "Bangalore Market, Zone A", Lat: 12.9716, Lng: 77.5946,
			Timestamp:  now - 7200_000,
			AssignedTo: "Inspector Kumar",
			Notes: []model.AlertNote{
				{Note: "Issue resolved after router replacement", Author: "Inspector Kumar"},
			},
		},
	}
	for _, a := range alerts {
		db.Create(&a)
	}
}

func seedActivities(db *gorm.DB) {
	var count int64
	db.Model(&model.Activity{}).Count(&count)
	if count > 0 {
		return
	}

	now := time.Now().UnixMilli()
	activities := []model.Activity{
		{Message: "Terdeteksi tamper pada Scale Unit B2 (Mumbai Market, Stall 12)", Type: model.ActivityTypeTamper, DeviceID: "DEV002", Timestamp: now},
		{Message: "Scale Unit C3 offline", Type: model.ActivityTypeOffline, DeviceID: "DEV003", Timestamp: now - 1800_000},
		{Message: "Scale Unit A1 kembali online", Type: model.ActivityTypeOnline, DeviceID: "DEV001", Timestamp: now - 5400_000},
	}
	for _, a := range activities {
		db.Create(&a)
	}
}

func seedTamperLogs(rdb *redis.Client) {
	ctx := context.Background()

	size, err := rdb.HLen(ctx, "tamperLogs").Result()
	if err != nil {
		log.Println("Gagal cek tamper log di Redis:", err)
		return
	}
	if size > 0 {
		return
	}

	now := time.Now().UnixMilli()
	logs := []model.TamperLog{
		{
			DeviceID: "DEV001", DeviceName: "Scale Unit A1",
			EventType: "Physical Tampering", Severity: "Critical",
			Description: "Unauthorized access to device housing",
			Location:    "Delhi Market, Shop 5", Lat: 28.7041, Lng: 77.1025,
			Timestamp: now,
			Evidence: model.TamperEvidence{
				Hash:      "sha256:abc123def456",
				Signature: "digital_signature_001",
				Valid:     true,
				Files:     []string{"evidence_001.jpg", "evidence_002.jpg"},
			},
			Custody: []model.CustodyEntry{
				{Action: "Evidence collected", Officer: "Inspector Sharma", Timestamp: now, Location: "Delhi Market, Shop 5"},
			},
		},
		{
			DeviceID: "DEV002", DeviceName: "Scale Unit B2",
			EventType: "Software Modification", Severity: "High",
			Description: "Firmware modification attempt detected",
			Location:    "Mumbai Market, Stall 12", Lat: 19.0760, Lng: 72.8777,
			Timestamp: now - 3600_000,
			Evidence: model.TamperEvidence{
				Hash:      "sha256:def456ghi789",
				Signature: "digital_signature_002",
				Valid:     true,
				Files:     []string{"system_log_001.txt"},
			},
			Custody: []model.CustodyEntry{
				{Action: "Anomaly detected", Officer: "System Monitor", Timestamp: now - 3600_000, Location: "Mumbai Market, Stall 12"},
			},
		},
	}

	for _, entry := range logs {
		entry.ID = uuid.NewString()
		data, err := json.Marshal(entry)
		if err != nil {
			log.Println("Gagal marshal tamper log seed:", err)
			continue
		}
		if err := rdb.HSet(ctx, "tamperLogs", entry.ID, data).Err(); err != nil {
			log.Println("Gagal menulis tamper log seed ke Redis:", err)
		}
	}
}
