package repository

import (
	"metrologi-backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortTamperLogsDesc(t *testing.T) {
	logs := []model.TamperLog{
		{ID: "a", Timestamp: 100},
		{ID: "b", Timestamp: 300},
		{ID: "c", Timestamp: 200},
	}

	SortTamperLogsDesc(logs)

	require.Len(t, logs, 3)
	assert.Equal(t, "b", logs[0].ID)
	assert.Equal(t, "c", logs[1].ID)
	assert.Equal(t, "a", logs[2].ID)
}

func TestSortTamperLogsDesc_StrictlyDescending(t *testing.T) {
	logs := []model.TamperLog{
		{ID: "x", Timestamp: 5},
		{ID: "y", Timestamp: 9},
		{ID: "z", Timestamp: 1},
		{ID: "w", Timestamp: 7},
	}

	SortTamperLogsDesc(logs)

	for i := 1; i < len(logs); i++ {
		assert.GreaterOrEqual(t, logs[i-1].Timestamp, logs[i].Timestamp)
	}
}

func TestSortTamperLogsDesc_StableAcrossCalls(t *testing.T) {
	// Input dengan urutan insert sembarang + timestamp kembar: hasil harus
	// sama persis setiap kali dipanggil (keyed store tidak menjamin urutan)
	build := func() []model.TamperLog {
		return []model.TamperLog{
			{ID: "d", Timestamp: 200},
			{ID: "b", Timestamp: 200},
			{ID: "a", Timestamp: 300},
			{ID: "c", Timestamp: 100},
		}
	}

	first := build()
	SortTamperLogsDesc(first)

	second := build()
	// Urutan input berbeda, isi sama
	second[0], second[1] = second[1], second[0]
	SortTamperLogsDesc(second)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID, "posisi %d beda antar pemanggilan", i)
	}
	// Timestamp kembar diurutkan deterministik berdasarkan ID
	assert.Equal(t, "a", first[0].ID)
	assert.Equal(t, "b", first[1].ID)
	assert.Equal(t, "d", first[2].ID)
	assert.Equal(t, "c", first[3].ID)
}

func TestSortTamperLogsDesc_Empty(t *testing.T) {
	logs := []model.TamperLog{}
	SortTamperLogsDesc(logs)
	assert.Empty(t, logs)
}
