package handler

import (
	"errors"
	"metrologi-backend/internal/model"
	"metrologi-backend/internal/repository"
	"time"

	"github.com/gofiber/fiber/v2"
)

type TamperLogHandler struct {
	repo *repository.TamperLogRepository
}

func NewTamperLogHandler(repo *repository.TamperLogRepository) *TamperLogHandler {
	return &TamperLogHandler{repo: repo}
}

// GetAll: hasil SELALU terurut timestamp descending (sort dikerjakan repo
// karena Redis tidak bisa order by di server).
func (h *TamperLogHandler) GetAll(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	severityFilter := c.Query("severity")
	eventTypeFilter := c.Query("event_type")
	search := c.Query("search")
	dateRange := c.Query("range")
	start := c.Query("start")
	end := c.Query("end")

	logs := h.repo.List(c.Context(), limit)
	now := time.Now()

	filtered := make([]model.TamperLog, 0, len(logs))
	for _, l := range logs {
		if !matchEnum(l.Severity, severityFilter) || !matchEnum(l.EventType, eventTypeFilter) {
			continue
		}
		if search != "" && !containsFold(l.DeviceID, search) &&
			!containsFold(l.DeviceName, search) && !containsFold(l.Description, search) &&
			!containsFold(l.Location, search) {
			continue
		}
		if !matchDateRange(l.Timestamp, dateRange, start, end, now) {
			continue
		}
		filtered = append(filtered, l)
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil tamper log",
		"data":    filtered,
		"total":   len(filtered),
	})
}

func (h *TamperLogHandler) GetByID(c *fiber.Ctx) error {
	entry, err := h.repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTamperLogNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tamper log tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil tamper log"})
	}

	return c.JSON(fiber.Map{"data": entry})
}

func (h *TamperLogHandler) Create(c *fiber.Ctx) error {
	var entry model.TamperLog
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if entry.DeviceID == "" || entry.EventType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "device_id dan event_type wajib diisi"})
	}

	if err := h.repo.Create(c.Context(), &entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan tamper log"})
	}
	return c.JSON(fiber.Map{"message": "Tamper log berhasil disimpan", "data": entry})
}
