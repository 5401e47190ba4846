package handler

import "github.com/gofiber/fiber/v2"

// AnalyticsHandler menyajikan dataset fixture halaman Analytics. Angka-angka
// ini literal statis (bahan presentasi), BUKAN hasil agregasi — jangan
// dicampur dengan KPI yang benar-benar dihitung dari data perangkat.
type AnalyticsHandler struct{}

func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{}
}

// GetAnalytics menerima ?range=7days|30days|90days dan ?section=compliance.
// Range cuma di-echo (dataset fixture tidak berubah); section dikembalikan
// sebagai highlight supaya client tahu panel mana yang harus di-scroll.
func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	timeRange := c.Query("range", "30days")
	section := c.Query("section")

	tamperTrends := []fiber.Map{
		{"month": "Jan", "tamper_events": 12, "device_failures": 3, "total_devices": 150},
		{"month": "Feb", "tamper_events": 19, "device_failures": 5, "total_devices": 155},
		{"month": "Mar", "tamper_events": 8, "device_failures": 2, "total_devices": 160},
		{"month": "Apr", "tamper_events": 15, "device_failures": 4, "total_devices": 165},
		{"month": "May", "tamper_events": 22, "device_failures": 7, "total_devices": 170},
		{"month": "Jun", "tamper_events": 18, "device_failures": 6, "total_devices": 175},
		{"month": "Jul", "tamper_events": 25, "device_failures": 8, "total_devices": 180},
		{"month": "Aug", "tamper_events": 14, "device_failures": 4, "total_devices": 185},
		{"month": "Sep", "tamper_events": 20, "device_failures": 5, "total_devices": 190},
	}

	regions := []fiber.Map{
		{"name": "North", "tamper_events": 45, "devices": 50, "rate": 90.0},
		{"name": "South", "tamper_events": 32, "devices": 48, "rate": 66.7},
		{"name": "East", "tamper_events": 28, "devices": 46, "rate": 60.9},
		{"name": "West", "tamper_events": 38, "devices": 46, "rate": 82.6},
	}

	tamperTypes := []fiber.Map{
		{"name": "Firmware Tamper", "value": 35},
		{"name": "Enclosure Open", "value": 28},
		{"name": "Weight Anomaly", "value": 22},
		{"name": "Sensor Tamper", "value": 15},
	}

	heatmap := []fiber.Map{
		{"district": "Central Delhi", "state": "Delhi", "tamper_rate": 8.5, "lat": 28.6139, "lng": 77.2090},
		{"district": "South Mumbai", "state": "Maharashtra", "tamper_rate": 12.3, "lat": 19.0760, "lng": 72.8777},
		{"district": "T. Nagar", "state": "Tamil Nadu", "tamper_rate": 6.7, "lat": 13.0827, "lng": 80.2707},
		{"district": "Salt Lake", "state": "West Bengal", "tamper_rate": 9.2, "lat": 22.5726, "lng": 88.3639},
		{"district": "Koramangala", "state": "Karnataka", "tamper_rate": 11.8, "lat": 12.9716, "lng": 77.5946},
		{"district": "Banjara Hills", "state": "Telangana", "tamper_rate": 7.4, "lat": 17.3850, "lng": 78.4867},
		{"district": "Vastrapur", "state": "Gujarat", "tamper_rate": 10.1, "lat": 23.0225, "lng": 72.5714},
		{"district": "Civil Lines", "state": "Uttar Pradesh", "tamper_rate": 13.6, "lat": 26.8467, "lng": 80.9462},
	}

	compliance := []fiber.Map{
		{"month": "Jan", "compliant": 88, "non_compliant": 12},
		{"month": "Feb", "compliant": 85, "non_compliant": 15},
		{"month": "Mar", "compliant": 92, "non_compliant": 8},
		{"month": "Apr", "compliant": 87, "non_compliant": 13},
		{"month": "May", "compliant": 83, "non_compliant": 17},
		{"month": "Jun", "compliant": 89, "non_compliant": 11},
		{"month": "Jul", "compliant": 81, "non_compliant": 19},
		{"month": "Aug", "compliant": 91, "non_compliant": 9},
		{"month": "Sep", "compliant": 86, "non_compliant": 14},
	}

	predictive := []fiber.Map{
		{"device": "DEV007", "risk_score": 85, "factors": []string{"High vibration", "Irregular patterns"}},
		{"device": "DEV012", "risk_score": 78, "factors": []string{"Battery degradation", "Network issues"}},
		{"device": "DEV023", "risk_score": 72, "factors": []string{"Location history", "Usage patterns"}},
		{"device": "DEV031", "risk_score": 68, "factors": []string{"Environmental factors", "Age"}},
		{"device": "DEV045", "risk_score": 65, "factors": []string{"Maintenance overdue", "Calibration drift"}},
	}

	return c.JSON(fiber.Map{
		"message":   "Berhasil mengambil data analytics",
		"range":     timeRange,
		"highlight": section,
		"data": fiber.Map{
			"tamper_trends":  tamperTrends,
			"regions":        regions,
			"tamper_types":   tamperTypes,
			"heatmap":        heatmap,
			"compliance":     compliance,
			"predictive":     predictive,
		},
	})
}
