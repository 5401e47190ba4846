package config

import (
	"context"
	"fmt"
	"metrologi-backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB
var Redis *redis.Client

func ConnectDB() {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := GetEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/metrologi_db?charset=utf8mb4&parseTime=True&loc=Local")

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	fmt.Println("Koneksi Database Berhasil!")

	// Auto Migration: Membuat tabel otomatis berdasarkan struct di folder model
	db.AutoMigrate(&model.User{})
	db.AutoMigrate(&model.Device{})
	db.AutoMigrate(&model.TamperEvent{})
	db.AutoMigrate(&model.Alert{})
	db.AutoMigrate(&model.AlertNote{})
	db.AutoMigrate(&model.Activity{})

	DB = db
}

// ConnectRedis menyiapkan koneksi ke Redis (dipakai khusus tamper log).
func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     GetEnv("REDIS_ADDR", "localhost:6379"),
		Password: GetEnv("REDIS_PASSWORD", ""),
		DB:       GetEnvAsInt("REDIS_DB", 0),
	})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		panic("Gagal koneksi ke Redis!")
	}

	fmt.Println("Koneksi Redis Berhasil!")
}

// JWTSecret dipakai bersama oleh usecase auth dan middleware.
// Jangan hardcode di dua tempat berbeda, nanti token tidak valid.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "rahasia-metrologi-sangat-kuat"))
}
