package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptchaGenerate_Format(t *testing.T) {
	u := NewCaptchaUsecase()

	id, text := u.Generate("")
	require.NotEmpty(t, id)
	assert.Len(t, text, 6)
	for _, ch := range text {
		assert.True(t, strings.ContainsRune(captchaCharset, ch),
			"karakter %q di luar charset", ch)
	}
}

func TestCaptchaVerify_CaseInsensitive(t *testing.T) {
	u := NewCaptchaUsecase()

	id, text := u.Generate("")
	assert.True(t, u.Verify(id, strings.ToUpper(text)))

	id, text = u.Generate("")
	assert.True(t, u.Verify(id, strings.ToLower(text)))
}

func TestCaptchaVerify_WrongAnswer(t *testing.T) {
	u := NewCaptchaUsecase()

	id, _ := u.Generate("")
	assert.False(t, u.Verify(id, "salah!"))
}

func TestCaptchaVerify_OneShot(t *testing.T) {
	u := NewCaptchaUsecase()

	id, text := u.Generate("")
	require.True(t, u.Verify(id, text))

	// Challenge sekali pakai: verifikasi kedua dengan jawaban benar pun gagal
	assert.False(t, u.Verify(id, text))
}

func TestCaptchaGenerate_RefreshInvalidatesPrevious(t *testing.T) {
	u := NewCaptchaUsecase()

	oldID, oldText := u.Generate("")
	newID, _ := u.Generate(oldID)

	// Jawaban yang tadinya benar harus hangus setelah refresh
	assert.False(t, u.Verify(oldID, oldText))
	assert.NotEqual(t, oldID, newID)
}

func TestCaptchaVerify_UnknownID(t *testing.T) {
	u := NewCaptchaUsecase()
	assert.False(t, u.Verify("tidak-pernah-dibuat", "ABC123"))
}
