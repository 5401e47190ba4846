package model

// TamperLog disimpan di Redis (hash "tamperLogs"), bukan MySQL, karena log
// tamper datang dari pipeline bukti yang menulis ke keyed store. Redis tidak
// bisa order by timestamp di server, jadi sorting selalu di sisi aplikasi.
type TamperLog struct {
	ID          string         `json:"id"`
	DeviceID    string         `json:"device_id"`
	DeviceName  string         `json:"device_name"`
	EventType   string         `json:"event_type"` // Physical Tampering, Software Modification, dst
	Severity    string         `json:"severity"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	Lat         float64        `json:"lat"`
	Lng         float64        `json:"lng"`
	Timestamp   int64          `json:"timestamp"` // Epoch millis
	Evidence    TamperEvidence `json:"evidence"`
	Custody     []CustodyEntry `json:"chain_of_custody"`
}

// TamperEvidence: blok bukti kriptografis. Semua field opaque, kita TIDAK
// memverifikasi signature/anchor di sini (dilakukan sistem evidence terpisah).
type TamperEvidence struct {
	Hash             string   `json:"hash"`              // Contoh: sha256:abc123...
	Signature        string   `json:"signature"`
	BlockchainAnchor string   `json:"blockchain_anchor"`
	Valid            bool     `json:"valid"`
	Files            []string `json:"files"` // Nama file foto/log bukti
}

// CustodyEntry: satu langkah chain of custody, urut sesuai kejadian.
type CustodyEntry struct {
	Action    string `json:"action"` // Evidence collected, Transferred, dst
	Officer   string `json:"officer"`
	Timestamp int64  `json:"timestamp"`
	Hash      string `json:"hash"`
	Location  string `json:"location"`
}
