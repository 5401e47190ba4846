package handler

import (
	"metrologi-backend/internal/repository"
	"metrologi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	deviceRepo   *repository.DeviceRepository
	activityRepo *repository.ActivityRepository
}

func NewDashboardHandler(deviceRepo *repository.DeviceRepository, activityRepo *repository.ActivityRepository) *DashboardHandler {
	return &DashboardHandler{deviceRepo: deviceRepo, activityRepo: activityRepo}
}

// GetStats menyuplai halaman Overview: KPI + perangkat (untuk peta) +
// 5 aktivitas terakhir. KPI dihitung ulang dari daftar perangkat di setiap
// request, tidak pernah di-cache, supaya angka selalu konsisten dengan data.
// Koleksi kosong bukan error: total=0, compliance=0%.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	devices := h.deviceRepo.List(50)
	activities := h.activityRepo.List(5)
	kpi := usecase.ComputeKPI(devices)

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil statistik",
		"data": fiber.Map{
			"kpi":               kpi,
			"devices":           devices,
			"recent_activities": activities,
		},
	})
}
