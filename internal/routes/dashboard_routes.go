package routes

import (
	"metrologi-backend/internal/handler"
	"metrologi-backend/internal/middleware"
	"metrologi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, deviceRepo *repository.DeviceRepository, activityRepo *repository.ActivityRepository) {
	hdl := handler.NewDashboardHandler(deviceRepo, activityRepo)
	activityHdl := handler.NewActivityHandler(activityRepo)

	api := app.Group("/api", middleware.Auth)
	api.Get("/dashboard", hdl.GetStats)
	api.Get("/activities", activityHdl.GetRecent)
}
