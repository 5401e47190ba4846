package routes

import (
	"metrologi-backend/internal/handler"
	"metrologi-backend/internal/middleware"
	"metrologi-backend/internal/repository"
	"metrologi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, userRepo *repository.UserRepository, mailer usecase.Mailer) {
	captcha := usecase.NewCaptchaUsecase()
	authUsecase := usecase.NewAuthUsecase(userRepo, mailer)
	hdl := handler.NewAuthHandler(authUsecase, captcha)

	// Endpoint publik (satu-satunya yang tidak digate token)
	app.Get("/api/captcha", hdl.GetCaptcha)
	app.Post("/api/login", hdl.Login)
	app.Post("/api/forgot-password", hdl.ForgotPassword)
	app.Post("/api/reset-password", hdl.ResetPassword)

	// Session Routes (Protected)
	api := app.Group("/api/auth", middleware.Auth)
	api.Get("/me", hdl.Me)
	api.Post("/logout", hdl.Logout)
}
