package usecase

import (
	"errors"
	"log"
	"metrologi-backend/config"
	"metrologi-backend/internal/model"
	"metrologi-backend/internal/repository"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Kode error auth yang dikenal client. Jangan diubah sembarangan:
// tabel pemetaan pesan di handler bergantung pada string ini.
var (
	ErrUserNotFound    = errors.New("auth/user-not-found")
	ErrWrongPassword   = errors.New("auth/wrong-password")
	ErrInvalidEmail    = errors.New("auth/invalid-email")
	ErrUserDisabled    = errors.New("auth/user-disabled")
	ErrTooManyRequests = errors.New("auth/too-many-requests")
	ErrTokenInvalid    = errors.New("auth/invalid-reset-token")
)

const maxFailedLogins = 5
const lockoutWindow = 15 * time.Minute

// Mailer: pengirim email reset password (implementasi di internal/mailer).
type Mailer interface {
	SendPasswordReset(to, token string) error
}

type AuthUsecase struct {
	repo   *repository.UserRepository
	mailer Mailer

	// Penghitung login gagal per email, untuk auth/too-many-requests
	mu       sync.Mutex
	failures map[string]loginFailure
}

type loginFailure struct {
	count     int
	firstFail time.Time
}

func NewAuthUsecase(repo *repository.UserRepository, mailer Mailer) *AuthUsecase {
	return &AuthUsecase{
		repo:     repo,
		mailer:   mailer,
		failures: make(map[string]loginFailure),
	}
}

// Login memvalidasi kredensial dan mengembalikan token JWT (berlaku 24 jam).
// Error selalu salah satu kode auth/* di atas.
func (u *AuthUsecase) Login(email, password string) (string, model.User, error) {
	// 1. Cek lockout dulu sebelum menyentuh database
	if u.isLockedOut(email) {
		return "", model.User{}, ErrTooManyRequests
	}

	// 2. Cari user berdasarkan email
	user, err := u.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			u.recordFailure(email)
			return "", model.User{}, ErrUserNotFound
		}
		return "", model.User{}, err
	}

	// 3. Akun yang dinonaktifkan admin tidak boleh login
	if !user.IsActive {
		return "", model.User{}, ErrUserDisabled
	}

	// 4. Bandingkan password (input vs hash di DB)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		u.recordFailure(email)
		return "", model.User{}, ErrWrongPassword
	}

	// 5. Kredensial benar: reset counter gagal, stamp last login
	u.clearFailures(email)
	now := time.Now()
	if err := u.repo.Update(user.ID, map[string]interface{}{"last_login": now}); err != nil {
		log.Println("Gagal update last_login:", err)
	}
	user.LastLogin = &now

	// 6. Buat token JWT
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"role":    user.Role,
		"exp":     now.Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return "", model.User{}, err
	}

	return t, user, nil
}

// CurrentUser mengambil profil user dari klaim token (dipanggil /auth/me).
func (u *AuthUsecase) CurrentUser(userID uint) (model.User, error) {
	return u.repo.GetByID(userID)
}

// ForgotPassword selalu "berhasil" dari sisi caller, ada atau tidak
// email-nya, supaya endpoint ini tidak bisa dipakai menebak akun terdaftar.
func (u *AuthUsecase) ForgotPassword(email string) error {
	user, err := u.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token := uuid.NewString()
	expiry := time.Now().Add(1 * time.Hour)
	if err := u.repo.Update(user.ID, map[string]interface{}{
		"reset_token":  token,
		"reset_expiry": expiry,
	}); err != nil {
		return err
	}

	if u.mailer != nil {
		if err := u.mailer.SendPasswordReset(user.Email, token); err != nil {
			log.Println("Gagal kirim email reset password:", err)
		}
	}
	return nil
}

// ResetPassword menukar token reset dengan password baru.
func (u *AuthUsecase) ResetPassword(token, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrWrongPassword
	}
	// Token kosong akan match semua user yang kolom reset_token-nya kosong
	if token == "" {
		return ErrTokenInvalid
	}

	user, err := u.repo.GetByResetToken(token)
	if err != nil {
		return ErrTokenInvalid
	}
	if user.ResetExpiry == nil || time.Now().After(*user.ResetExpiry) {
		return ErrTokenInvalid
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return u.repo.Update(user.ID, map[string]interface{}{
		"password":     string(hashed),
		"reset_token":  "",
		"reset_expiry": nil,
	})
}

func (u *AuthUsecase) isLockedOut(email string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	f, ok := u.failures[email]
	if !ok {
		return false
	}
	if time.Since(f.firstFail) > lockoutWindow {
		delete(u.failures, email)
		return false
	}
	return f.count >= maxFailedLogins
}

func (u *AuthUsecase) recordFailure(email string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	f, ok := u.failures[email]
	if !ok || time.Since(f.firstFail) > lockoutWindow {
		u.failures[email] = loginFailure{count: 1, firstFail: time.Now()}
		return
	}
	f.count++
	u.failures[email] = f
}

func (u *AuthUsecase) clearFailures(email string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.failures, email)
}
