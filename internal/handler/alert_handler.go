package handler

import (
	"errors"
	"metrologi-backend/internal/model"
	"metrologi-backend/internal/repository"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AlertHandler struct {
	repo *repository.AlertRepository
}

func NewAlertHandler(repo *repository.AlertRepository) *AlertHandler {
	return &AlertHandler{repo: repo}
}

func (h *AlertHandler) GetAll(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	severityFilter := c.Query("severity")
	statusFilter := c.Query("status")
	search := c.Query("search")
	dateRange := c.Query("range")
	start := c.Query("start")
	end := c.Query("end")

	alerts := h.repo.List(limit)
	now := time.Now()

	filtered := make([]model.Alert, 0, len(alerts))
	for _, a := range alerts {
		if !matchEnum(a.Severity, severityFilter) || !matchEnum(a.Status, statusFilter) {
			continue
		}
		if search != "" && !containsFold(a.Message, search) &&
			!containsFold(a.DeviceID, search) && !containsFold(a.Location, search) {
			continue
		}
		if !matchDateRange(a.Timestamp, dateRange, start, end, now) {
			continue
		}
		filtered = append(filtered, a)
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data alert",
		"data":    filtered,
		"total":   len(filtered),
	})
}

func (h *AlertHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	alert, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Alert tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data alert"})
	}

	return c.JSON(fiber.Map{"data": alert})
}

func (h *AlertHandler) Create(c *fiber.Ctx) error {
	var alert model.Alert
	if err := c.BodyParser(&alert); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if alert.DeviceID == "" || alert.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "device_id dan message wajib diisi"})
	}

	if err := h.repo.Create(&alert); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat alert"})
	}
	return c.JSON(fiber.Map{"message": "Alert berhasil dibuat", "data": alert})
}

type UpdateAlertStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

func (h *AlertHandler) UpdateStatus(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req UpdateAlertStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	// Status harus salah satu nilai yang dikenal
	switch req.Status {
	case model.AlertStatusActive, model.AlertStatusPending,
		model.AlertStatusResolved, model.AlertStatusInvestigating:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status alert tidak valid"})
	}

	author, _ := c.Locals("name").(string)
	if err := h.repo.UpdateStatus(uint(id), req.Status, req.Note, author); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Alert tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update status alert"})
	}

	return c.JSON(fiber.Map{"message": "Status alert berhasil diupdate"})
}
