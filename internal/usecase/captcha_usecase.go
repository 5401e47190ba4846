package usecase

import (
	"crypto/rand"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Charset tanpa karakter yang gampang ketukar (0/O, 1/l/I).
const captchaCharset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"
const captchaLength = 6
const captchaTTL = 5 * time.Minute

// CaptchaUsecase menyimpan challenge di memori. Ini cuma pengaman UX untuk
// form login (bukan security boundary), jadi tidak perlu persistence.
type CaptchaUsecase struct {
	mu         sync.Mutex
	challenges map[string]captchaChallenge
}

type captchaChallenge struct {
	text      string
	expiresAt time.Time
}

func NewCaptchaUsecase() *CaptchaUsecase {
	return &CaptchaUsecase{challenges: make(map[string]captchaChallenge)}
}

// Generate membuat challenge 6 karakter baru. Kalau prevID diisi (tombol
// refresh di client), challenge lama langsung hangus.
func (u *CaptchaUsecase) Generate(prevID string) (string, string) {
	text := randomCaptchaText()
	id := uuid.NewString()

	u.mu.Lock()
	defer u.mu.Unlock()

	if prevID != "" {
		delete(u.challenges, prevID)
	}
	u.cleanupLocked()
	u.challenges[id] = captchaChallenge{text: text, expiresAt: time.Now().Add(captchaTTL)}
	return id, text
}

// Verify cek jawaban case-insensitive. Challenge sekali pakai: berhasil
// atau gagal, id-nya langsung dihapus (client harus ambil captcha baru).
func (u *CaptchaUsecase) Verify(id, answer string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	ch, ok := u.challenges[id]
	delete(u.challenges, id)
	if !ok || time.Now().After(ch.expiresAt) {
		return false
	}
	return strings.EqualFold(ch.text, answer)
}

// cleanupLocked buang challenge kadaluarsa. Dipanggil sambil pegang lock.
func (u *CaptchaUsecase) cleanupLocked() {
	now := time.Now()
	for id, ch := range u.challenges {
		if now.After(ch.expiresAt) {
			delete(u.challenges, id)
		}
	}
}

func randomCaptchaText() string {
	result := make([]byte, captchaLength)
	max := big.NewInt(int64(len(captchaCharset)))
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand praktis tidak pernah gagal; fallback karakter pertama
			result[i] = captchaCharset[0]
			continue
		}
		result[i] = captchaCharset[n.Int64()]
	}
	return string(result)
}
