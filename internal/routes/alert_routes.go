package routes

import (
	"metrologi-backend/internal/handler"
	"metrologi-backend/internal/middleware"
	"metrologi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupAlertRoutes(app *fiber.App, alertRepo *repository.AlertRepository) {
	hdl := handler.NewAlertHandler(alertRepo)

	api := app.Group("/api/alerts", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", middleware.Role("Admin", "Inspector"), hdl.Create)
	api.Put("/:id/status", middleware.Permission("acknowledge_alerts"), hdl.UpdateStatus)
}
