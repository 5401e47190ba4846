package routes

import (
	"metrologi-backend/internal/handler"
	"metrologi-backend/internal/middleware"
	"metrologi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App, userRepo *repository.UserRepository, deviceRepo *repository.DeviceRepository) {
	userHdl := handler.NewUserHandler(userRepo)
	reportHdl := handler.NewReportHandler(deviceRepo)

	// Admin Routes (Kelola User)
	admin := app.Group("/api/admin/users", middleware.Auth, middleware.Role("Admin"), middleware.Permission("manage_users"))
	admin.Get("/", userHdl.GetAll)
	admin.Post("/", userHdl.Create)
	admin.Put("/:id", userHdl.Update)
	admin.Put("/:id/toggle", userHdl.ToggleStatus)
	admin.Delete("/:id", userHdl.Delete)

	// Export laporan boleh untuk role dengan izin export_reports
	report := app.Group("/api/admin/report", middleware.Auth, middleware.Permission("export_reports"))
	report.Get("/devices", reportHdl.ExportDevices)
}
