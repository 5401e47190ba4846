package middleware

import "github.com/gofiber/fiber/v2"

// Role di sistem ini cuma satu string per user, tanpa tabel RBAC.
// Pemetaan permission-nya tetap (fixed), bukan dari database.
var rolePermissions = map[string][]string{
	"Admin":      {"manage_users", "manage_devices", "export_reports", "acknowledge_alerts"},
	"Inspector":  {"acknowledge_alerts", "export_reports"},
	"Regulator":  {"export_reports"},
	"Technician": {},
	"regulator":  {"export_reports"}, // Role default user baru (huruf kecil)
}

func Permission(requiredPermission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Ambil Role user dari Context (diset di Auth middleware)
		userRole, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Role tidak valid"})
		}

		// 2. Admin lewat langsung
		if userRole == "Admin" {
			return c.Next()
		}

		// 3. Cek permission dari tabel pemetaan
		for _, p := range rolePermissions[userRole] {
			if p == requiredPermission {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Anda tidak memiliki izin " + requiredPermission})
	}
}
