package handler

import (
	"strings"
	"time"
)

// Filter di aplikasi ini sengaja dikerjakan in-memory atas hasil fetch,
// bukan di query database, supaya perilakunya identik dengan filter
// client-side di dashboard lama.

// containsFold: substring match case-insensitive.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// matchEnum: "" atau "all" berarti tidak memfilter.
func matchEnum(value, filter string) bool {
	return filter == "" || filter == "all" || strings.EqualFold(value, filter)
}

// matchDateRange menyaring timestamp (epoch millis) terhadap window waktu:
//   - "7days" / "30days" / "90days": ts >= now - N hari
//   - "custom": start <= ts <= end, inklusif dua sisi (end dihitung sampai
//     akhir hari tanggal end)
//   - "" / "all": lolos semua
// Format tanggal custom: 2006-01-02.
func matchDateRange(ts int64, rng, startStr, endStr string, now time.Time) bool {
	switch rng {
	case "", "all":
		return true
	case "7days":
		return ts >= now.AddDate(0, 0, -7).UnixMilli()
	case "30days":
		return ts >= now.AddDate(0, 0, -30).UnixMilli()
	case "90days":
		return ts >= now.AddDate(0, 0, -90).UnixMilli()
	case "custom":
		if startStr == "" || endStr == "" {
			return true
		}
		start, err := time.ParseInLocation("2006-01-02", startStr, now.Location())
		if err != nil {
			return true
		}
		end, err := time.ParseInLocation("2006-01-02", endStr, now.Location())
		if err != nil {
			return true
		}
		// Inklusif sampai detik terakhir tanggal end
		endOfDay := end.AddDate(0, 0, 1).Add(-time.Millisecond)
		return ts >= start.UnixMilli() && ts <= endOfDay.UnixMilli()
	default:
		return true
	}
}
