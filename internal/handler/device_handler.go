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

type DeviceHandler struct {
	repo         *repository.DeviceRepository
	activityRepo *repository.ActivityRepository
}

func NewDeviceHandler(repo *repository.DeviceRepository, activityRepo *repository.ActivityRepository) *DeviceHandler {
	return &DeviceHandler{repo: repo, activityRepo: activityRepo}
}

// GetAll mengembalikan daftar perangkat. Query ?status= juga dipakai
// deep-link dari kartu Offline di Overview (/devices?status=offline).
func (h *DeviceHandler) GetAll(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	statusFilter := c.Query("status")
	regionFilter := c.Query("region")
	search := c.Query("search")

	devices := h.repo.List(limit)

	// Filter in-memory atas hasil fetch (match perilaku dashboard lama)
	filtered := make([]model.Device, 0, len(devices))
	for _, d := range devices {
		if !matchEnum(d.Status, statusFilter) || !matchEnum(d.Region, regionFilter) {
			continue
		}
		if search != "" && !containsFold(d.Name, search) &&
			!containsFold(d.DeviceID, search) && !containsFold(d.Location, search) {
			continue
		}
		filtered = append(filtered, d)
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data perangkat",
		"data":    filtered,
		"total":   len(filtered),
	})
}

func (h *DeviceHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	device, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Perangkat tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data perangkat"})
	}

	return c.JSON(fiber.Map{"data": device})
}

func (h *DeviceHandler) Create(c *fiber.Ctx) error {
	var device model.Device
	if err := c.BodyParser(&device); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if device.DeviceID == "" || device.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "device_id dan name wajib diisi"})
	}

	if err := h.repo.Create(&device); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat perangkat"})
	}
	return c.JSON(fiber.Map{"message": "Perangkat berhasil didaftarkan", "data": device})
}

func (h *DeviceHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	// Field protected tidak boleh diganti lewat endpoint ini
	delete(updates, "id")
	delete(updates, "created_at")

	if err := h.repo.Update(uint(id), updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Perangkat tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update perangkat"})
	}
	return c.JSON(fiber.Map{"message": "Perangkat berhasil diupdate"})
}

func (h *DeviceHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus perangkat"})
	}
	return c.JSON(fiber.Map{"message": "Perangkat berhasil dihapus"})
}

// Configure dan PushFirmware: tombol admin di UI lama tidak pernah benar-benar
// dikirim ke perangkat. Endpoint ini hanya mencatat permintaannya ke activity
// feed, tanpa efek apapun ke perangkat (parity dengan tombol inert).
func (h *DeviceHandler) Configure(c *fiber.Ctx) error {
	return h.recordInertAction(c, "Konfigurasi perangkat diminta")
}

func (h *DeviceHandler) PushFirmware(c *fiber.Ctx) error {
	return h.recordInertAction(c, "Update firmware diminta")
}

func (h *DeviceHandler) recordInertAction(c *fiber.Ctx, action string) error {
	id, _ := strconv.Atoi(c.Params("id"))

	device, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Perangkat tidak ditemukan"})
	}

	actor, _ := c.Locals("name").(string)
	activity := model.Activity{
		Message:   action + " untuk " + device.Name + " oleh " + actor,
		Type:      model.ActivityTypeOther,
		DeviceID:  device.DeviceID,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := h.activityRepo.Create(&activity); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mencatat aktivitas"})
	}

	return c.JSON(fiber.Map{"message": "Permintaan dicatat (belum terhubung ke perangkat)"})
}
