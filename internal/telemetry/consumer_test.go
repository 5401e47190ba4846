package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload_Valid(t *testing.T) {
	p, err := ParsePayload([]byte(`{"status":"tamper","battery_level":42,"firmware_version":"2.1.4"}`))
	require.NoError(t, err)

	assert.Equal(t, "tamper", p.Status)
	require.NotNil(t, p.BatteryLevel)
	assert.Equal(t, 42, *p.BatteryLevel)
	assert.Equal(t, "2.1.4", p.FirmwareVersion)
}

func TestParsePayload_PartialFields(t *testing.T) {
	p, err := ParsePayload([]byte(`{"battery_level":90}`))
	require.NoError(t, err)

	// Status kosong sah: berarti perangkat cuma lapor baterai
	assert.Empty(t, p.Status)
	require.NotNil(t, p.BatteryLevel)
	assert.Equal(t, 90, *p.BatteryLevel)
}

func TestParsePayload_UnknownStatus(t *testing.T) {
	_, err := ParsePayload([]byte(`{"status":"meledak"}`))
	assert.Error(t, err)
}

func TestParsePayload_BatteryOutOfRange(t *testing.T) {
	_, err := ParsePayload([]byte(`{"battery_level":120}`))
	assert.Error(t, err)

	_, err = ParsePayload([]byte(`{"battery_level":-1}`))
	assert.Error(t, err)
}

func TestParsePayload_InvalidJSON(t *testing.T) {
	_, err := ParsePayload([]byte(`bukan json`))
	assert.Error(t, err)
}

func TestDeviceIDFromTopic(t *testing.T) {
	assert.Equal(t, "DEV001", DeviceIDFromTopic("metrologi/devices/DEV001/telemetry"))
	assert.Equal(t, "", DeviceIDFromTopic("metrologi/devices/telemetry"))
	assert.Equal(t, "", DeviceIDFromTopic("lain/devices/DEV001/telemetry"))
	assert.Equal(t, "", DeviceIDFromTopic("metrologi/devices/DEV001/status"))
}
