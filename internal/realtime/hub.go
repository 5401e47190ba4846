package realtime

import (
	"log"
	"sync"
)

// Hub menyalurkan snapshot PENUH (bukan delta) ke semua subscriber setiap
// kali koleksi berubah. Kontraknya meniru listener realtime database:
//   - Subscribe mengembalikan fungsi unsubscribe. Setelah unsubscribe
//     return, callback dijamin tidak dipanggil lagi.
//   - Kalau refetch gagal, subscriber tetap menerima snapshot kosong.
//     (Subscriber tidak bisa membedakan "kosong" dan "error" — ini memang
//     perilaku yang dipertahankan, lihat DESIGN.md.)
//
// Catatan: callback dipanggil sambil memegang read-lock, jadi callback
// tidak boleh memanggil Subscribe/Broadcast pada hub yang sama.
type Hub[T any] struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func([]T)

	// fetch mengambil isi koleksi terkini. Diset lewat SetFetcher.
	fetch func() ([]T, error)
}

func NewHub[T any]() *Hub[T] {
	return &Hub[T]{subs: make(map[int]func([]T))}
}

// SetFetcher memasang fungsi pengambil snapshot (biasanya List dari repo).
func (h *Hub[T]) SetFetcher(fetch func() ([]T, error)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fetch = fetch
}

// Subscribe mendaftarkan callback dan mengembalikan handle unsubscribe.
// Callback TIDAK langsung dipanggil saat subscribe; snapshot awal diambil
// sendiri oleh caller (sama seperti halaman yang memanggil list dulu).
func (h *Hub[T]) Subscribe(fn func([]T)) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	h.mu.Unlock()

	return func() {
		// Lock penuh: menunggu broadcast yang sedang jalan selesai dulu,
		// sehingga setelah return tidak ada callback susulan.
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// Broadcast mengirim snapshot ke semua subscriber.
func (h *Hub[T]) Broadcast(snapshot []T) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.subs {
		fn(snapshot)
	}
}

// Notify dipanggil repository setiap ada mutasi: ambil ulang seluruh
// koleksi lalu broadcast. Error refetch didegradasi jadi snapshot kosong.
func (h *Hub[T]) Notify() {
	h.mu.RLock()
	fetch := h.fetch
	h.mu.RUnlock()

	if fetch == nil {
		return
	}

	snapshot, err := fetch()
	if err != nil {
		log.Println("Gagal refetch snapshot untuk broadcast:", err)
		snapshot = []T{}
	}
	h.Broadcast(snapshot)
}

// Subscribers mengembalikan jumlah subscriber aktif (untuk monitoring).
func (h *Hub[T]) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
