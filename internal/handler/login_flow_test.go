package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"metrologi-backend/internal/model"
	"metrologi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	loginCalls []struct{ email, password string }
	loginErr   error
}

func (f *fakeAuthService) Login(email, password string) (string, model.User, error) {
	f.loginCalls = append(f.loginCalls, struct{ email, password string }{email, password})
	if f.loginErr != nil {
		return "", model.User{}, f.loginErr
	}
	return "token-abc", model.User{Email: email, Name: "Tester", Role: "Regulator"}, nil
}

func (f *fakeAuthService) CurrentUser(userID uint) (model.User, error) { return model.User{}, nil }
func (f *fakeAuthService) ForgotPassword(email string) error           { return nil }
func (f *fakeAuthService) ResetPassword(token, newPassword string) error {
	return nil
}

func newLoginApp(svc *fakeAuthService, captcha *usecase.CaptchaUsecase) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(svc, captcha)
	app.Post("/api/login", h.Login)
	return app
}

func TestLoginDelegatesOnceWithCredentials(t *testing.T) {
	svc := &fakeAuthService{}
	captcha := usecase.NewCaptchaUsecase()
	app := newLoginApp(svc, captcha)

	id, text := captcha.Generate("")
	payload, _ := json.Marshal(fiber.Map{
		"email":      "inspector@metrologi.go.id",
		"password":   "rahasia1",
		"captcha_id": id,
		"captcha":    text,
	})

	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, svc.loginCalls, 1)
	assert.Equal(t, "inspector@metrologi.go.id", svc.loginCalls[0].email)
	assert.Equal(t, "rahasia1", svc.loginCalls[0].password)
}

func TestLoginInvalidCaptchaNeverDelegates(t *testing.T) {
	svc := &fakeAuthService{}
	captcha := usecase.NewCaptchaUsecase()
	app := newLoginApp(svc, captcha)

	id, _ := captcha.Generate("")
	payload, _ := json.Marshal(fiber.Map{
		"email":      "inspector@metrologi.go.id",
		"password":   "rahasia1",
		"captcha_id": id,
		"captcha":    "salah!",
	})

	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, svc.loginCalls)
}

func TestLoginLocalValidationNeverDelegates(t *testing.T) {
	svc := &fakeAuthService{}
	captcha := usecase.NewCaptchaUsecase()
	app := newLoginApp(svc, captcha)

	cases := []fiber.Map{
		{"email": "", "password": "rahasia1", "captcha": "abc"},
		{"email": "bukan-email", "password": "rahasia1", "captcha": "abc"},
		{"email": "a@b.com", "password": "", "captcha": "abc"},
		{"email": "a@b.com", "password": "pende", "captcha": "abc"},
		{"email": "a@b.com", "password": "rahasia1", "captcha": ""},
	}
	for _, body := range cases {
		payload, _ := json.Marshal(body)
		req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}
	assert.Empty(t, svc.loginCalls)
}

func TestLoginTooManyRequestsStatus(t *testing.T) {
	svc := &fakeAuthService{loginErr: usecase.ErrTooManyRequests}
	captcha := usecase.NewCaptchaUsecase()
	app := newLoginApp(svc, captcha)

	id, text := captcha.Generate("")
	payload, _ := json.Marshal(fiber.Map{
		"email":      "a@b.com",
		"password":   "rahasia1",
		"captcha_id": id,
		"captcha":    text,
	})

	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
