package routes

import (
	"metrologi-backend/internal/handler"
	"metrologi-backend/internal/middleware"
	"metrologi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupTamperLogRoutes(app *fiber.App, tamperLogRepo *repository.TamperLogRepository) {
	hdl := handler.NewTamperLogHandler(tamperLogRepo)

	api := app.Group("/api/tamper-logs", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", middleware.Role("Admin"), hdl.Create)
}
