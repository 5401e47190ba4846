package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name        string     `json:"name"`
	Email       string     `json:"email" gorm:"unique;not null"`
	Password    string     `json:"-"`                              // Hash bcrypt, jangan pernah dikirim ke client
	Role        string     `json:"role" gorm:"default:regulator"`  // Admin, Inspector, Regulator, Technician
	Region      string     `json:"region"`                         // Wilayah kerja (Delhi, Mumbai, dst)
	IsActive    bool       `json:"is_active" gorm:"default:true"`  // false = akun dinonaktifkan admin
	LastLogin   *time.Time `json:"last_login"`
	ResetToken  string     `json:"-"` // Token reset password (sekali pakai)
	ResetExpiry *time.Time `json:"-"`
}
