package routes

import (
	"metrologi-backend/internal/handler"
	"metrologi-backend/internal/middleware"
	"metrologi-backend/internal/model"
	"metrologi-backend/internal/realtime"
	"metrologi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// SetupWSRoutes memasang endpoint realtime. Browser tidak bisa set header
// Authorization di koneksi websocket, jadi token dikirim lewat ?token=
// (middleware.Auth sudah mendukung dua-duanya).
func SetupWSRoutes(
	app *fiber.App,
	deviceRepo *repository.DeviceRepository,
	alertRepo *repository.AlertRepository,
	activityRepo *repository.ActivityRepository,
	tamperLogRepo *repository.TamperLogRepository,
	deviceHub *realtime.Hub[model.Device],
	alertHub *realtime.Hub[model.Alert],
	activityHub *realtime.Hub[model.Activity],
	tamperLogHub *realtime.Hub[model.TamperLog],
) {
	hdl := handler.NewWSHandler(
		deviceRepo, alertRepo, activityRepo, tamperLogRepo,
		deviceHub, alertHub, activityHub, tamperLogHub,
	)

	ws := app.Group("/ws", middleware.Auth, handler.Upgrade)
	ws.Get("/devices", hdl.Devices())
	ws.Get("/alerts", hdl.Alerts())
	ws.Get("/activities", hdl.Activities())
	ws.Get("/tamper-logs", hdl.TamperLogs())
}
