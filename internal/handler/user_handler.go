package handler

import (
	"errors"
	"metrologi-backend/internal/model"
	"metrologi-backend/internal/repository"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserHandler: manajemen user di halaman Admin.
type UserHandler struct {
	repo *repository.UserRepository
}

func NewUserHandler(repo *repository.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	roleFilter := c.Query("role")
	search := c.Query("search")

	users, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data user"})
	}

	filtered := make([]model.User, 0, len(users))
	for _, u := range users {
		if !matchEnum(u.Role, roleFilter) {
			continue
		}
		if search != "" && !containsFold(u.Name, search) && !containsFold(u.Email, search) {
			continue
		}
		filtered = append(filtered, u)
	}

	return c.JSON(fiber.Map{"message": "Berhasil mengambil data user", "data": filtered})
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Region   string `json:"region"`
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if req.Name == "" || !emailPattern.MatchString(req.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama dan email valid wajib diisi"})
	}
	if len(req.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password minimal 6 karakter"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat user"})
	}

	role := req.Role
	if role == "" {
		role = "regulator"
	}
	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
		Region:   req.Region,
		IsActive: true,
	}
	if err := h.repo.Create(&user); err != nil {
		// Kemungkinan besar email sudah terdaftar (unique)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email sudah terdaftar"})
	}

	return c.JSON(fiber.Map{"message": "User berhasil dibuat", "data": user})
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	// Password dan token reset tidak boleh lewat endpoint ini
	delete(updates, "password")
	delete(updates, "reset_token")
	delete(updates, "reset_expiry")
	delete(updates, "id")

	if err := h.repo.Update(uint(id), updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update user"})
	}
	return c.JSON(fiber.Map{"message": "User berhasil diupdate"})
}

// ToggleStatus aktif/nonaktifkan akun (tombol toggle di halaman Admin).
func (h *UserHandler) ToggleStatus(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	user, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	if err := h.repo.Update(user.ID, map[string]interface{}{"is_active": !user.IsActive}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengubah status user"})
	}

	return c.JSON(fiber.Map{"message": "Status user berhasil diubah", "is_active": !user.IsActive})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus user"})
	}
	return c.JSON(fiber.Map{"message": "User berhasil dihapus"})
}
