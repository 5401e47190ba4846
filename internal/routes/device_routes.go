package routes

import (
	"metrologi-backend/internal/handler"
	"metrologi-backend/internal/middleware"
	"metrologi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupDeviceRoutes(app *fiber.App, deviceRepo *repository.DeviceRepository, activityRepo *repository.ActivityRepository) {
	hdl := handler.NewDeviceHandler(deviceRepo, activityRepo)

	api := app.Group("/api/devices", middleware.Auth)
	api.Get("/", hdl.GetAll) // Mendukung ?status= untuk deep-link dari Overview
	api.Get("/:id", hdl.GetByID)

	// Aksi tulis hanya untuk Admin
	api.Post("/", middleware.Role("Admin"), hdl.Create)
	api.Put("/:id", middleware.Role("Admin"), hdl.Update)
	api.Delete("/:id", middleware.Role("Admin"), hdl.Delete)

	// Tombol aksi di UI yang belum terhubung ke perangkat (inert)
	api.Post("/:id/configure", middleware.Permission("manage_devices"), hdl.Configure)
	api.Post("/:id/firmware", middleware.Permission("manage_devices"), hdl.PushFirmware)
}
