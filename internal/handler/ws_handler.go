package handler

import (
	"context"
	"metrologi-backend/internal/model"
	"metrologi-backend/internal/realtime"
	"metrologi-backend/internal/repository"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// WSHandler menumpuk listener realtime ke websocket. Kontraknya sama dengan
// snapshot listener di backend realtime manapun: setiap perubahan koleksi,
// client menerima SATU pesan berisi seluruh hasil terkini (bukan delta).
type WSHandler struct {
	deviceRepo    *repository.DeviceRepository
	alertRepo     *repository.AlertRepository
	activityRepo  *repository.ActivityRepository
	tamperLogRepo *repository.TamperLogRepository

	deviceHub    *realtime.Hub[model.Device]
	alertHub     *realtime.Hub[model.Alert]
	activityHub  *realtime.Hub[model.Activity]
	tamperLogHub *realtime.Hub[model.TamperLog]
}

func NewWSHandler(
	deviceRepo *repository.DeviceRepository,
	alertRepo *repository.AlertRepository,
	activityRepo *repository.ActivityRepository,
	tamperLogRepo *repository.TamperLogRepository,
	deviceHub *realtime.Hub[model.Device],
	alertHub *realtime.Hub[model.Alert],
	activityHub *realtime.Hub[model.Activity],
	tamperLogHub *realtime.Hub[model.TamperLog],
) *WSHandler {
	return &WSHandler{
		deviceRepo:    deviceRepo,
		alertRepo:     alertRepo,
		activityRepo:  activityRepo,
		tamperLogRepo: tamperLogRepo,
		deviceHub:     deviceHub,
		alertHub:      alertHub,
		activityHub:   activityHub,
		tamperLogHub:  tamperLogHub,
	}
}

// Upgrade menolak request biasa ke endpoint /ws/*.
func Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *WSHandler) Devices() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		streamSnapshots(c, h.deviceHub, h.deviceRepo.List(50))
	})
}

func (h *WSHandler) Alerts() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		streamSnapshots(c, h.alertHub, h.alertRepo.List(100))
	})
}

func (h *WSHandler) Activities() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		streamSnapshots(c, h.activityHub, h.activityRepo.List(20))
	})
}

func (h *WSHandler) TamperLogs() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		streamSnapshots(c, h.tamperLogHub, h.tamperLogRepo.List(context.Background(), 100))
	})
}

// streamSnapshots: kirim snapshot awal, lalu teruskan setiap broadcast hub
// sampai client menutup koneksi. Unsubscribe dijamin jalan saat teardown
// supaya tidak ada listener bocor.
func streamSnapshots[T any](c *websocket.Conn, hub *realtime.Hub[T], initial []T) {
	snapshots := make(chan []T, 16)
	unsubscribe := hub.Subscribe(func(snap []T) {
		// Jangan pernah blokir broadcaster; kalau client lambat,
		// snapshot lama boleh hangus (yang penting snapshot terbaru)
		select {
		case snapshots <- snap:
		default:
		}
	})
	defer unsubscribe()

	if err := c.WriteJSON(initial); err != nil {
		return
	}

	// Goroutine pembaca cuma untuk mendeteksi koneksi ditutup
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snap := <-snapshots:
			if err := c.WriteJSON(snap); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
