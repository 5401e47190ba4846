package handler

import (
	"github.com/gofiber/fiber/v2"
)

// AuditHandler menyajikan fixture halaman Audit: jejak aktivitas user,
// laporan kepatuhan, dan status firmware. Semua dataset statis; filter
// search/user tetap dikerjakan in-memory supaya kontraknya sama dengan
// halaman entity lain.
type AuditHandler struct{}

func NewAuditHandler() *AuditHandler {
	return &AuditHandler{}
}

type auditActivity struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
	Role      string `json:"role"`
	Action    string `json:"action"`
	Resource  string `json:"resource"`
	IPAddress string `json:"ip_address"`
	Location  string `json:"location"`
	Status    string `json:"status"`
	Details   string `json:"details"`
}

var auditActivities = []auditActivity{
	{
		ID: "ACT001", Timestamp: "2024-09-22T15:30:00Z",
		User: "Inspector Raj Kumar", Role: "Inspector",
		Action: "Acknowledged Alert", Resource: "Alert ALT001 - DEV002",
		IPAddress: "192.168.1.45", Location: "Mumbai Office", Status: "Success",
		Details: "Acknowledged tamper alert and assigned to field officer",
	},
	{
		ID: "ACT002", Timestamp: "2024-09-22T15:25:00Z",
		User: "Admin Priya Singh", Role: "Admin",
		Action: "Exported Report", Resource: "Tamper Log Report - September 2024",
		IPAddress: "192.168.1.32", Location: "Delhi Headquarters", Status: "Success",
		Details: "Generated and downloaded monthly tamper log report",
	},
	{
		ID: "ACT003", Timestamp: "2024-09-22T15:20:00Z",
		User: "Regulator Amit Sharma", Role: "Regulator",
		Action: "Viewed Device Profile", Resource: "Device DEV005 - Scale Unit E5",
		IPAddress: "192.168.1.67", Location: "Bangalore Regional Office", Status: "Success",
		Details: "Accessed device profile and tamper history",
	},
	{
		ID: "ACT004", Timestamp: "2024-09-22T15:15:00Z",
		User: "Technician Ravi Kumar", Role: "Technician",
		Action: "Firmware Update", Resource: "Device DEV001 - Scale Unit A1",
		IPAddress: "192.168.1.89", Location: "Delhi Field Office", Status: "Failed",
		Details: "Firmware update failed due to network connectivity issues",
	},
	{
		ID: "ACT005", Timestamp: "2024-09-22T15:10:00Z",
		User: "Inspector Meera Patel", Role: "Inspector",
		Action: "Added Inspection Note", Resource: "Alert ALT002 - DEV005",
		IPAddress: "192.168.1.23", Location: "Bangalore Field Office", Status: "Success",
		Details: "Added field inspection notes and evidence photos",
	},
}

var complianceReports = []fiber.Map{
	{
		"id": "RPT001", "title": "Monthly Compliance Report - September 2024",
		"type": "Monthly Summary", "generated_by": "System",
		"timestamp": "2024-09-22T00:00:00Z", "status": "Generated",
		"devices": 190, "compliant_devices": 164, "compliance_rate": 86.3,
		"critical_issues": 3, "download_url": "/reports/monthly-sep-2024.pdf",
	},
	{
		"id": "RPT002", "title": "Legal Metrology Compliance Report",
		"type": "Regulatory", "generated_by": "Admin Priya Singh",
		"timestamp": "2024-09-20T14:30:00Z", "status": "Submitted",
		"devices": 190, "compliant_devices": 168, "compliance_rate": 88.4,
		"critical_issues": 2, "download_url": "/reports/legal-metrology-sep-2024.pdf",
	},
	{
		"id": "RPT003", "title": "Firmware Integrity Report",
		"type": "Security", "generated_by": "System",
		"timestamp": "2024-09-18T09:00:00Z", "status": "Generated",
		"devices": 190, "compliant_devices": 185, "compliance_rate": 97.4,
		"critical_issues": 1, "download_url": "/reports/firmware-integrity-sep-2024.pdf",
	},
}

var firmwareStatus = []fiber.Map{
	{
		"device_id": "DEV001", "device_name": "Scale Unit A1",
		"current_version": "2.1.4", "latest_version": "2.1.4",
		"status": "Up to Date", "last_updated": "2024-09-15T10:30:00Z", "authorized": true,
	},
	{
		"device_id": "DEV002", "device_name": "Scale Unit B2",
		"current_version": "1.8.2", "latest_version": "2.1.4",
		"status": "Outdated", "last_updated": "2024-08-10T14:20:00Z", "authorized": true,
	},
	{
		"device_id": "DEV003", "device_name": "Scale Unit C3",
		"current_version": "2.0.1", "latest_version": "2.1.4",
		"status": "Outdated", "last_updated": "2024-08-25T11:15:00Z", "authorized": true,
	},
	{
		"device_id": "DEV004", "device_name": "Scale Unit D4",
		"current_version": "3.2.1", "latest_version": "2.1.4",
		"status": "Unauthorized", "last_updated": "2024-09-01T16:45:00Z", "authorized": false,
	},
}

// GetAudit: ?tab=activity|reports|firmware (default activity).
// Tab activity bisa difilter ?search= dan ?user=.
func (h *AuditHandler) GetAudit(c *fiber.Ctx) error {
	tab := c.Query("tab", "activity")

	switch tab {
	case "activity":
		search := c.Query("search")
		userFilter := c.Query("user")

		filtered := make([]auditActivity, 0, len(auditActivities))
		for _, a := range auditActivities {
			if !matchEnum(a.User, userFilter) {
				continue
			}
			if search != "" && !containsFold(a.User, search) &&
				!containsFold(a.Action, search) && !containsFold(a.Resource, search) {
				continue
			}
			filtered = append(filtered, a)
		}
		return c.JSON(fiber.Map{"tab": tab, "data": filtered})

	case "reports":
		return c.JSON(fiber.Map{"tab": tab, "data": complianceReports})

	case "firmware":
		return c.JSON(fiber.Map{"tab": tab, "data": firmwareStatus})

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tab tidak dikenal: " + tab})
	}
}
