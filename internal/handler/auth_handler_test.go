package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthErrorMessage_FixedTable(t *testing.T) {
	// Pesan harus PERSIS sesuai tabel, bukan pesan mentah dari provider
	assert.Equal(t, "Incorrect password", authErrorMessage("auth/wrong-password"))
	assert.Equal(t, "No account found with this email address", authErrorMessage("auth/user-not-found"))
	assert.Equal(t, "Invalid email address", authErrorMessage("auth/invalid-email"))
	assert.Equal(t, "This account has been disabled", authErrorMessage("auth/user-disabled"))
	assert.Equal(t, "Too many failed attempts. Please try again later", authErrorMessage("auth/too-many-requests"))
}

func TestAuthErrorMessage_UnknownCodeFallsThrough(t *testing.T) {
	assert.Equal(t, "Invalid email or password", authErrorMessage("auth/kode-baru"))
	assert.Equal(t, "Invalid email or password", authErrorMessage(""))
}

func TestEmailPattern(t *testing.T) {
	valid := []string{"a@b.com", "priya.singh@regulator.gov.in", "x@y.id"}
	for _, email := range valid {
		assert.True(t, emailPattern.MatchString(email), "harusnya valid: %s", email)
	}

	invalid := []string{"", "bukan-email", "a@b", "@b.com", "a b@c.com"}
	for _, email := range invalid {
		assert.False(t, emailPattern.MatchString(email), "harusnya invalid: %s", email)
	}
}
