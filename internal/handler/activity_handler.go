package handler

import (
	"metrologi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ActivityHandler struct {
	repo *repository.ActivityRepository
}

func NewActivityHandler(repo *repository.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{repo: repo}
}

func (h *ActivityHandler) GetRecent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	activities := h.repo.List(limit)

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil aktivitas terbaru",
		"data":    activities,
	})
}
