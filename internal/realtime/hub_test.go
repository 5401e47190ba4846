package realtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcast_FullSnapshot(t *testing.T) {
	hub := NewHub[string]()

	var received [][]string
	hub.Subscribe(func(snap []string) {
		received = append(received, snap)
	})

	hub.Broadcast([]string{"a", "b"})
	hub.Broadcast([]string{"a", "b", "c"})

	require.Len(t, received, 2)
	// Setiap event membawa seluruh isi koleksi, bukan delta
	assert.Equal(t, []string{"a", "b"}, received[0])
	assert.Equal(t, []string{"a", "b", "c"}, received[1])
}

func TestHubUnsubscribe_NoFurtherCallbacks(t *testing.T) {
	hub := NewHub[int]()

	calls := 0
	unsubscribe := hub.Subscribe(func([]int) { calls++ })

	hub.Broadcast([]int{1})
	unsubscribe()
	hub.Broadcast([]int{2})
	hub.Broadcast([]int{3})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, hub.Subscribers())
}

func TestHubUnsubscribe_OtherSubscribersUnaffected(t *testing.T) {
	hub := NewHub[int]()

	callsA, callsB := 0, 0
	unsubA := hub.Subscribe(func([]int) { callsA++ })
	hub.Subscribe(func([]int) { callsB++ })

	hub.Broadcast([]int{1})
	unsubA()
	hub.Broadcast([]int{2})

	assert.Equal(t, 1, callsA)
	assert.Equal(t, 2, callsB)
}

func TestHubNotify_UsesFetcher(t *testing.T) {
	hub := NewHub[int]()
	hub.SetFetcher(func() ([]int, error) {
		return []int{7, 8, 9}, nil
	})

	var got []int
	hub.Subscribe(func(snap []int) { got = snap })

	hub.Notify()
	assert.Equal(t, []int{7, 8, 9}, got)
}

func TestHubNotify_FetchErrorDegradesToEmpty(t *testing.T) {
	hub := NewHub[int]()
	hub.SetFetcher(func() ([]int, error) {
		return nil, errors.New("koneksi putus")
	})

	invoked := false
	var got []int
	hub.Subscribe(func(snap []int) {
		invoked = true
		got = snap
	})

	hub.Notify()

	// Error refetch TIDAK dipropagasi: subscriber menerima snapshot kosong
	// (subscriber memang tidak bisa membedakan "kosong" dari "error")
	require.True(t, invoked)
	assert.Empty(t, got)
}

func TestHubNotify_NoFetcherIsNoop(t *testing.T) {
	hub := NewHub[int]()

	calls := 0
	hub.Subscribe(func([]int) { calls++ })

	hub.Notify()
	assert.Equal(t, 0, calls)
}
