package usecase

import (
	"metrologi-backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func deviceWithStatus(status string) model.Device {
	return model.Device{Status: status}
}

func TestComputeKPI_EmptyList(t *testing.T) {
	kpi := ComputeKPI([]model.Device{})

	// Koleksi kosong bukan error: semua angka nol, compliance 0%
	assert.Equal(t, 0, kpi.TotalDevices)
	assert.Equal(t, 0, kpi.ActiveAlerts)
	assert.Equal(t, 0, kpi.OfflineDevices)
	assert.Equal(t, 0, kpi.ComplianceRate)
}

func TestComputeKPI_Counts(t *testing.T) {
	devices := []model.Device{
		deviceWithStatus(model.DeviceStatusHealthy),
		deviceWithStatus(model.DeviceStatusHealthy),
		deviceWithStatus(model.DeviceStatusTamper),
		deviceWithStatus(model.DeviceStatusOffline),
	}

	kpi := ComputeKPI(devices)

	assert.Equal(t, 4, kpi.TotalDevices)
	assert.Equal(t, 1, kpi.ActiveAlerts)
	assert.Equal(t, 1, kpi.OfflineDevices)
	assert.Equal(t, 50, kpi.ComplianceRate) // 2 dari 4 healthy
}

func TestComputeKPI_ComplianceRounding(t *testing.T) {
	// 1 healthy dari 3 = 33.33% -> dibulatkan ke 33
	devices := []model.Device{
		deviceWithStatus(model.DeviceStatusHealthy),
		deviceWithStatus(model.DeviceStatusTamper),
		deviceWithStatus(model.DeviceStatusTamper),
	}
	assert.Equal(t, 33, ComputeKPI(devices).ComplianceRate)

	// 2 healthy dari 3 = 66.67% -> dibulatkan ke 67
	devices = []model.Device{
		deviceWithStatus(model.DeviceStatusHealthy),
		deviceWithStatus(model.DeviceStatusHealthy),
		deviceWithStatus(model.DeviceStatusOffline),
	}
	assert.Equal(t, 67, ComputeKPI(devices).ComplianceRate)
}

func TestComputeKPI_AllHealthy(t *testing.T) {
	devices := []model.Device{
		deviceWithStatus(model.DeviceStatusHealthy),
		deviceWithStatus(model.DeviceStatusHealthy),
	}

	kpi := ComputeKPI(devices)
	assert.Equal(t, 100, kpi.ComplianceRate)
	assert.Equal(t, 0, kpi.ActiveAlerts)
	assert.Equal(t, 0, kpi.OfflineDevices)
}

func TestComputeKPI_RecomputeAfterMutation(t *testing.T) {
	devices := []model.Device{
		deviceWithStatus(model.DeviceStatusHealthy),
		deviceWithStatus(model.DeviceStatusHealthy),
	}
	assert.Equal(t, 100, ComputeKPI(devices).ComplianceRate)

	// Satu perangkat berubah jadi tamper: hitung ulang harus langsung
	// mencerminkan daftar terbaru
	devices[1].Status = model.DeviceStatusTamper
	kpi := ComputeKPI(devices)
	assert.Equal(t, 50, kpi.ComplianceRate)
	assert.Equal(t, 1, kpi.ActiveAlerts)
}
