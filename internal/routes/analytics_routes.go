package routes

import (
	"metrologi-backend/internal/handler"
	"metrologi-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAnalyticsRoutes(app *fiber.App) {
	analyticsHdl := handler.NewAnalyticsHandler()
	auditHdl := handler.NewAuditHandler()

	api := app.Group("/api", middleware.Auth)
	api.Get("/analytics", analyticsHdl.GetAnalytics) // ?section=compliance untuk highlight panel
	api.Get("/audit", auditHdl.GetAudit)
}
