package usecase

import (
	"math"
	"metrologi-backend/internal/model"
)

// KPI adalah angka ringkasan di halaman Overview.
type KPI struct {
	TotalDevices   int `json:"total_devices"`
	ActiveAlerts   int `json:"active_alerts"`   // Jumlah perangkat berstatus tamper
	OfflineDevices int `json:"offline_devices"`
	ComplianceRate int `json:"compliance_rate"` // Persen perangkat healthy, dibulatkan
}

// ComputeKPI adalah fungsi murni atas daftar perangkat saat ini. Dipanggil
// ulang setiap request supaya angka tidak pernah menyimpang dari data.
func ComputeKPI(devices []model.Device) KPI {
	kpi := KPI{TotalDevices: len(devices)}

	healthy := 0
	for _, d := range devices {
		switch d.Status {
		case model.DeviceStatusHealthy:
			healthy++
		case model.DeviceStatusTamper:
			kpi.ActiveAlerts++
		case model.DeviceStatusOffline:
			kpi.OfflineDevices++
		}
	}

	if kpi.TotalDevices > 0 {
		kpi.ComplianceRate = int(math.Round(100 * float64(healthy) / float64(kpi.TotalDevices)))
	}
	return kpi
}
