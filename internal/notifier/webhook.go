package notifier

import (
	"metrologi-backend/internal/model"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// WebhookNotifier meneruskan alert kritis ke sistem eksternal (misal kanal
// notifikasi petugas lapangan). URL kosong = notifier nonaktif.
type WebhookNotifier struct {
	client *resty.Client
	url    string
	logger *zap.Logger
}

func NewWebhookNotifier(url string, logger *zap.Logger) *WebhookNotifier {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2)

	return &WebhookNotifier{client: client, url: url, logger: logger}
}

func (n *WebhookNotifier) Enabled() bool {
	return n.url != ""
}

// NotifyAlert kirim alert ke webhook. Fire-and-forget: kegagalan cuma
// dicatat, tidak boleh menggagalkan pipeline telemetry.
func (n *WebhookNotifier) NotifyAlert(alert model.Alert) {
	if !n.Enabled() {
		return
	}

	resp, err := n.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(alert).
		Post(n.url)
	if err != nil {
		n.logger.Warn("Gagal kirim notifikasi webhook",
			zap.String("device_id", alert.DeviceID),
			zap.Error(err))
		return
	}
	if resp.IsError() {
		n.logger.Warn("Webhook merespon error",
			zap.String("device_id", alert.DeviceID),
			zap.Int("status", resp.StatusCode()))
		return
	}

	n.logger.Info("Notifikasi webhook terkirim",
		zap.String("device_id", alert.DeviceID),
		zap.String("severity", alert.Severity))
}
