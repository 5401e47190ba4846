package main

import (
	"fmt"
	"log"
	"metrologi-backend/config"
	"metrologi-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("🌱 Memulai Database Seeding...")

	// Load .env manual karena ini script terpisah
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()
	config.ConnectRedis()

	fmt.Println("🚀 Menjalankan SeedAll...")
	database.SeedAll(config.DB, config.Redis)

	fmt.Println("✅ Seeding Selesai! Login default: priya.singh@regulator.gov.in / metrologi123")
}
