package handler

import (
	"bytes"
	"fmt"
	"metrologi-backend/internal/model"
	"metrologi-backend/internal/repository"
	"metrologi-backend/internal/usecase"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// ReportHandler membuat laporan kepatuhan perangkat dalam bentuk file Excel
// (tombol "Export Report" di halaman Devices/Audit).
type ReportHandler struct {
	deviceRepo *repository.DeviceRepository
}

func NewReportHandler(deviceRepo *repository.DeviceRepository) *ReportHandler {
	return &ReportHandler{deviceRepo: deviceRepo}
}

var reportHeaders = []string{
	"Device ID", "Name", "Type", "Status", "Location", "Region",
	"Owner", "Manufacturer", "Model", "Serial Number",
	"Firmware", "Battery (%)", "Calibration Expiry",
}

func (h *ReportHandler) ExportDevices(c *fiber.Ctx) error {
	devices := h.deviceRepo.List(1000)

	data, err := generateDeviceReport(devices)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat laporan"})
	}

	filename := fmt.Sprintf("laporan-perangkat-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func generateDeviceReport(devices []model.Device) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Devices"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	// Style header: bold + background biru muda
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("gagal membuat style header: %w", err)
	}

	for col, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, d := range devices {
		row := i + 2
		calibrationExpiry := ""
		if d.CalibrationExpiry != nil {
			calibrationExpiry = d.CalibrationExpiry.Format("2006-01-02")
		}
		values := []interface{}{
			d.DeviceID, d.Name, d.Type, d.Status, d.Location, d.Region,
			d.Owner, d.Manufacturer, d.DeviceModel, d.SerialNumber,
			d.FirmwareVersion, d.BatteryLevel, calibrationExpiry,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	// Baris ringkasan KPI di bawah tabel
	kpi := usecase.ComputeKPI(devices)
	summaryRow := len(devices) + 3
	summary := fmt.Sprintf("Total: %d | Tamper: %d | Offline: %d | Compliance: %d%%",
		kpi.TotalDevices, kpi.ActiveAlerts, kpi.OfflineDevices, kpi.ComplianceRate)
	cell, err := excelize.CoordinatesToCellName(1, summaryRow)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, cell, summary); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("gagal menulis file excel: %w", err)
	}
	return buf.Bytes(), nil
}
