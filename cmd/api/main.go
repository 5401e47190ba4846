package main

import (
	"fmt"
	"metrologi-backend/config"
	"metrologi-backend/internal/mailer"
	"metrologi-backend/internal/model"
	"metrologi-backend/internal/notifier"
	"metrologi-backend/internal/realtime"
	"metrologi-backend/internal/repository"
	"metrologi-backend/internal/routes"
	"metrologi-backend/internal/telemetry"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database & Redis...")
	config.ConnectDB()
	config.ConnectRedis()
	fmt.Println("3. Koneksi berhasil! Menyiapkan routes...")

	zapLogger, _ := zap.NewProduction()
	defer zapLogger.Sync()

	// Hub realtime: satu per koleksi, dipakai repo (broadcast) dan
	// endpoint websocket (subscribe)
	deviceHub := realtime.NewHub[model.Device]()
	alertHub := realtime.NewHub[model.Alert]()
	activityHub := realtime.NewHub[model.Activity]()
	tamperLogHub := realtime.NewHub[model.TamperLog]()

	userRepo := repository.NewUserRepository(config.DB)
	deviceRepo := repository.NewDeviceRepository(config.DB, deviceHub)
	alertRepo := repository.NewAlertRepository(config.DB, alertHub)
	activityRepo := repository.NewActivityRepository(config.DB, activityHub)
	tamperLogRepo := repository.NewTamperLogRepository(config.Redis, tamperLogHub)

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari domain/port lain
	app.Use(logger.New()) // Agar log request muncul di terminal (Debugging)

	routes.SetupAuthRoutes(app, userRepo, mailer.New(zapLogger))
	routes.SetupDashboardRoutes(app, deviceRepo, activityRepo)
	routes.SetupDeviceRoutes(app, deviceRepo, activityRepo)
	routes.SetupAlertRoutes(app, alertRepo)
	routes.SetupTamperLogRoutes(app, tamperLogRepo)
	routes.SetupAnalyticsRoutes(app)
	routes.SetupAdminRoutes(app, userRepo, deviceRepo)
	routes.SetupWSRoutes(app, deviceRepo, alertRepo, activityRepo, tamperLogRepo,
		deviceHub, alertHub, activityHub, tamperLogHub)

	// Telemetry consumer opsional: jalan hanya kalau broker MQTT diset
	if broker := config.GetEnv("MQTT_BROKER", ""); broker != "" {
		webhook := notifier.NewWebhookNotifier(config.GetEnv("WEBHOOK_URL", ""), zapLogger)
		consumer, err := telemetry.NewConsumer(broker, deviceRepo, alertRepo, activityRepo, tamperLogRepo, webhook, zapLogger)
		if err != nil {
			zapLogger.Error("Telemetry consumer gagal start, lanjut tanpa telemetry", zap.Error(err))
		} else {
			if err := consumer.Start(); err != nil {
				zapLogger.Error("Gagal subscribe telemetry", zap.Error(err))
			}
			defer consumer.Stop()
		}
	}

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
