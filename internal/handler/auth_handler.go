package handler

import (
	"errors"
	"metrologi-backend/internal/model"
	"metrologi-backend/internal/usecase"
	"regexp"

	"github.com/gofiber/fiber/v2"
)

// Pola email sederhana, sama dengan validasi form di dashboard lama.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Tabel pesan error auth. Kode tidak dikenal jatuh ke pesan generik.
var authErrorMessages = map[string]string{
	"auth/user-not-found":    "No account found with this email address",
	"auth/wrong-password":    "Incorrect password",
	"auth/invalid-email":     "Invalid email address",
	"auth/user-disabled":     "This account has been disabled",
	"auth/too-many-requests": "Too many failed attempts. Please try again later",
}

func authErrorMessage(code string) string {
	if msg, ok := authErrorMessages[code]; ok {
		return msg
	}
	return "Invalid email or password"
}

// AuthService diimplementasikan oleh usecase.AuthUsecase.
type AuthService interface {
	Login(email, password string) (string, model.User, error)
	CurrentUser(userID uint) (model.User, error)
	ForgotPassword(email string) error
	ResetPassword(token, newPassword string) error
}

type AuthHandler struct {
	usecase AuthService
	captcha *usecase.CaptchaUsecase
}

func NewAuthHandler(u AuthService, captcha *usecase.CaptchaUsecase) *AuthHandler {
	return &AuthHandler{usecase: u, captcha: captcha}
}

// GetCaptcha membuat challenge baru. Query ?prev=<id> (tombol refresh di
// client) sekalian menghanguskan challenge lama.
func (h *AuthHandler) GetCaptcha(c *fiber.Ctx) error {
	id, text := h.captcha.Generate(c.Query("prev"))
	return c.JSON(fiber.Map{
		"captcha_id": id,
		"captcha":    text,
	})
}

type LoginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	CaptchaID string `json:"captcha_id"`
	Captcha   string `json:"captcha"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	// 1. Validasi lokal dulu. Kalau gagal di sini, kredensial TIDAK
	// pernah diteruskan ke usecase.
	fieldErrors := fiber.Map{}
	if req.Email == "" {
		fieldErrors["email"] = "Email is required"
	} else if !emailPattern.MatchString(req.Email) {
		fieldErrors["email"] = "Please enter a valid email address"
	}
	if req.Password == "" {
		fieldErrors["password"] = "Password is required"
	} else if len(req.Password) < 6 {
		fieldErrors["password"] = "Password must be at least 6 characters"
	}
	if req.Captcha == "" {
		fieldErrors["captcha"] = "Please enter the security code"
	} else if !h.captcha.Verify(req.CaptchaID, req.Captcha) {
		fieldErrors["captcha"] = "Invalid security code"
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrors})
	}

	// 2. Delegasikan (email, password) ke usecase, persis sekali
	token, user, err := h.usecase.Login(req.Email, req.Password)
	if err != nil {
		status := fiber.StatusUnauthorized
		if errors.Is(err, usecase.ErrTooManyRequests) {
			status = fiber.StatusTooManyRequests
		}
		return c.Status(status).JSON(fiber.Map{
			"code":  err.Error(),
			"error": authErrorMessage(err.Error()),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"data": fiber.Map{
			"id":     user.ID,
			"email":  user.Email,
			"name":   user.Name,
			"role":   user.Role,
			"region": user.Region,
		},
	})
}

// Me mengembalikan profil user dari token (pengganti auth-state listener).
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	user, err := h.usecase.CurrentUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	return c.JSON(fiber.Map{"data": user})
}

// Logout: token JWT stateless, client cukup buang tokennya. Endpoint ini
// ada untuk parity dengan tombol sign-out.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Logout berhasil"})
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if req.Email == "" || !emailPattern.MatchString(req.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Please enter a valid email address"})
	}

	if err := h.usecase.ForgotPassword(req.Email); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memproses permintaan"})
	}

	// Selalu respon sama, ada atau tidak akunnya
	return c.JSON(fiber.Map{"message": "Jika email terdaftar, link reset sudah dikirim"})
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if len(req.NewPassword) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password must be at least 6 characters"})
	}

	if err := h.usecase.ResetPassword(req.Token, req.NewPassword); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Token reset tidak valid atau kadaluwarsa"})
	}

	return c.JSON(fiber.Map{"message": "Password berhasil direset"})
}
