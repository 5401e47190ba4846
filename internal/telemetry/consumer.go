package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"metrologi-backend/internal/model"
	"metrologi-backend/internal/notifier"
	"metrologi-backend/internal/repository"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

// Topik telemetry perangkat: metrologi/devices/<device_id>/telemetry
const telemetryTopic = "metrologi/devices/+/telemetry"

// Payload adalah pesan telemetry dari perangkat. Semua field opsional;
// hanya field yang dikirim yang diupdate.
type Payload struct {
	Status          string `json:"status"`
	BatteryLevel    *int   `json:"battery_level"`
	FirmwareVersion string `json:"firmware_version"`
	Uptime          string `json:"uptime"`
	Description     string `json:"description"`
}

// Consumer mendengarkan telemetry via MQTT dan menuliskannya ke store.
// Inilah satu-satunya jalur yang MENGUBAH status perangkat; dashboard
// sendiri read-only terhadap telemetry.
type Consumer struct {
	client        mqtt.Client
	deviceRepo    *repository.DeviceRepository
	alertRepo     *repository.AlertRepository
	activityRepo  *repository.ActivityRepository
	tamperLogRepo *repository.TamperLogRepository
	notifier      *notifier.WebhookNotifier
	logger        *zap.Logger
}

func NewConsumer(
	broker string,
	deviceRepo *repository.DeviceRepository,
	alertRepo *repository.AlertRepository,
	activityRepo *repository.ActivityRepository,
	tamperLogRepo *repository.TamperLogRepository,
	webhook *notifier.WebhookNotifier,
	logger *zap.Logger,
) (*Consumer, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID("metrologi-backend-telemetry")
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("gagal konek ke broker MQTT: %w", token.Error())
	}

	return &Consumer{
		client:        client,
		deviceRepo:    deviceRepo,
		alertRepo:     alertRepo,
		activityRepo:  activityRepo,
		tamperLogRepo: tamperLogRepo,
		notifier:      webhook,
		logger:        logger,
	}, nil
}

func (c *Consumer) Start() error {
	token := c.client.Subscribe(telemetryTopic, 1, func(_ mqtt.Client, msg mqtt.Message) {
		if err := c.handleMessage(msg.Topic(), msg.Payload()); err != nil {
			// Catat errornya tapi jangan hentikan consumer
			c.logger.Warn("Gagal memproses telemetry",
				zap.String("topic", msg.Topic()),
				zap.Error(err))
		}
	})
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("gagal subscribe topik %s: %w", telemetryTopic, token.Error())
	}

	c.logger.Info("Telemetry consumer jalan", zap.String("topic", telemetryTopic))
	return nil
}

func (c *Consumer) Stop() {
	c.client.Disconnect(250)
}

func (c *Consumer) handleMessage(topic string, raw []byte) error {
	deviceID := DeviceIDFromTopic(topic)
	if deviceID == "" {
		return errors.New("topik tidak mengandung device id")
	}

	payload, err := ParsePayload(raw)
	if err != nil {
		return err
	}

	device, err := c.deviceRepo.GetByDeviceID(deviceID)
	if err != nil {
		// Perangkat tidak dikenal: drop saja, jangan auto-register
		return fmt.Errorf("perangkat %s tidak terdaftar: %w", deviceID, err)
	}

	now := time.Now().UnixMilli()
	updates := map[string]interface{}{"last_heartbeat": now}
	if payload.BatteryLevel != nil {
		updates["battery_level"] = *payload.BatteryLevel
	}
	if payload.FirmwareVersion != "" {
		updates["firmware_version"] = payload.FirmwareVersion
	}
	if payload.Uptime != "" {
		updates["uptime"] = payload.Uptime
	}
	if payload.Status != "" {
		updates["status"] = payload.Status
	}
	if err := c.deviceRepo.Update(device.ID, updates); err != nil {
		return err
	}

	// Transisi status memicu activity feed (+ alert khusus untuk tamper)
	if payload.Status != "" && payload.Status != device.Status {
		c.recordTransition(device, payload, now)
	}
	return nil
}

func (c *Consumer) recordTransition(device model.Device, payload Payload, now int64) {
	activityType := model.ActivityTypeOther
	message := fmt.Sprintf("%s berubah status %s -> %s", device.Name, device.Status, payload.Status)

	switch payload.Status {
	case model.DeviceStatusTamper:
		activityType = model.ActivityTypeTamper
		message = fmt.Sprintf("Terdeteksi tamper pada %s (%s)", device.Name, device.Location)
	case model.DeviceStatusOffline:
		activityType = model.ActivityTypeOffline
		message = fmt.Sprintf("%s offline", device.Name)
	case model.DeviceStatusHealthy:
		activityType = model.ActivityTypeOnline
		message = fmt.Sprintf("%s kembali online", device.Name)
	}

	activity := model.Activity{
		Message:   message,
		Type:      activityType,
		DeviceID:  device.DeviceID,
		Timestamp: now,
	}
	if err := c.activityRepo.Create(&activity); err != nil {
		c.logger.Warn("Gagal mencatat activity", zap.Error(err))
	}

	if payload.Status != model.DeviceStatusTamper {
		return
	}

	// Status tamper: buat alert kritis + tamper log + notifikasi webhook
	description := payload.Description
	if description == "" {
		description = "Telemetry perangkat melaporkan indikasi tamper"
	}
	alert := model.Alert{
		DeviceID:    device.DeviceID,
		DeviceName:  device.Name,
		Severity:    model.AlertSeverityCritical,
		Status:      model.AlertStatusActive,
		Message:     "Tamper terdeteksi",
		Description: description,
		Location:    device.Location,
		Lat:         device.Lat,
		Lng:         device.Lng,
		Timestamp:   now,
	}
	if err := c.alertRepo.Create(&alert); err != nil {
		c.logger.Warn("Gagal membuat alert tamper", zap.Error(err))
	}

	entry := model.TamperLog{
		DeviceID:    device.DeviceID,
		DeviceName:  device.Name,
		EventType:   "Telemetry Tamper Signal",
		Severity:    "Critical",
		Description: description,
		Location:    device.Location,
		Lat:         device.Lat,
		Lng:         device.Lng,
		Timestamp:   now,
		Custody: []model.CustodyEntry{
			{
				Action:    "Anomaly detected",
				Officer:   "System Monitor",
				Timestamp: now,
				Location:  device.Location,
			},
		},
	}
	if err := c.tamperLogRepo.Create(context.Background(), &entry); err != nil {
		c.logger.Warn("Gagal menyimpan tamper log", zap.Error(err))
	}

	if c.notifier != nil {
		go c.notifier.NotifyAlert(alert)
	}
}

// ParsePayload memvalidasi JSON telemetry. Status di luar enum ditolak.
func ParsePayload(raw []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, fmt.Errorf("payload telemetry bukan JSON valid: %w", err)
	}

	switch p.Status {
	case "", model.DeviceStatusHealthy, model.DeviceStatusTamper, model.DeviceStatusOffline:
	default:
		return Payload{}, fmt.Errorf("status telemetry tidak dikenal: %s", p.Status)
	}

	if p.BatteryLevel != nil && (*p.BatteryLevel < 0 || *p.BatteryLevel > 100) {
		return Payload{}, fmt.Errorf("battery_level di luar rentang 0-100: %d", *p.BatteryLevel)
	}
	return p, nil
}

// DeviceIDFromTopic ambil segmen device id dari topik
// metrologi/devices/<device_id>/telemetry.
func DeviceIDFromTopic(topic string) string {
	parts := strings.Split(topic, "/")
	if len(parts) != 4 || parts[0] != "metrologi" || parts[1] != "devices" || parts[3] != "telemetry" {
		return ""
	}
	return parts[2]
}
