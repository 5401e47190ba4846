package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var filterNow = time.Date(2024, 9, 22, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) int64 {
	return filterNow.AddDate(0, 0, -n).UnixMilli()
}

func TestMatchDateRange_SevenDays(t *testing.T) {
	// now - 1 hari masuk, now - 8 hari keluar
	assert.True(t, matchDateRange(daysAgo(1), "7days", "", "", filterNow))
	assert.False(t, matchDateRange(daysAgo(8), "7days", "", "", filterNow))
}

func TestMatchDateRange_ThirtyAndNinetyDays(t *testing.T) {
	assert.True(t, matchDateRange(daysAgo(29), "30days", "", "", filterNow))
	assert.False(t, matchDateRange(daysAgo(31), "30days", "", "", filterNow))

	assert.True(t, matchDateRange(daysAgo(89), "90days", "", "", filterNow))
	assert.False(t, matchDateRange(daysAgo(91), "90days", "", "", filterNow))
}

func TestMatchDateRange_CustomInclusive(t *testing.T) {
	start := "2024-09-01"
	end := "2024-09-10"

	// Tepat di tanggal start: masuk
	atStart := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	assert.True(t, matchDateRange(atStart, "custom", start, end, filterNow))

	// Akhir hari tanggal end: masih masuk (inklusif dua sisi)
	atEnd := time.Date(2024, 9, 10, 23, 59, 0, 0, time.UTC).UnixMilli()
	assert.True(t, matchDateRange(atEnd, "custom", start, end, filterNow))

	// Sehari sebelum start dan sehari sesudah end: keluar
	before := time.Date(2024, 8, 31, 12, 0, 0, 0, time.UTC).UnixMilli()
	after := time.Date(2024, 9, 11, 0, 0, 1, 0, time.UTC).UnixMilli()
	assert.False(t, matchDateRange(before, "custom", start, end, filterNow))
	assert.False(t, matchDateRange(after, "custom", start, end, filterNow))
}

func TestMatchDateRange_CustomMissingBounds(t *testing.T) {
	// Custom tanpa start/end tidak memfilter apa-apa
	assert.True(t, matchDateRange(daysAgo(365), "custom", "", "", filterNow))
	assert.True(t, matchDateRange(daysAgo(365), "custom", "2024-01-01", "", filterNow))
}

func TestMatchDateRange_AllAndUnknown(t *testing.T) {
	assert.True(t, matchDateRange(daysAgo(999), "", "", "", filterNow))
	assert.True(t, matchDateRange(daysAgo(999), "all", "", "", filterNow))
	assert.True(t, matchDateRange(daysAgo(999), "aneh", "", "", filterNow))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold("Scale Unit A1", "scale"))
	assert.True(t, containsFold("Delhi Market, Shop 5", "SHOP"))
	assert.False(t, containsFold("Scale Unit A1", "meter"))
}

func TestMatchEnum(t *testing.T) {
	assert.True(t, matchEnum("healthy", ""))
	assert.True(t, matchEnum("healthy", "all"))
	assert.True(t, matchEnum("Healthy", "healthy"))
	assert.False(t, matchEnum("offline", "healthy"))
}
