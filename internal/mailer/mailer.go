package mailer

import (
	"fmt"
	"metrologi-backend/config"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer mengirim email reset password lewat SMTP. Kalau SMTP_HOST kosong
// (mode development), email cuma dicatat ke log, tidak benar-benar dikirim.
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	baseURL string
	logger  *zap.Logger
}

func New(logger *zap.Logger) *Mailer {
	host := config.GetEnv("SMTP_HOST", "")
	m := &Mailer{
		from:    config.GetEnv("SMTP_FROM", "noreply@metrologi.go.id"),
		baseURL: config.GetEnv("APP_BASE_URL", "http://localhost:3000"),
		logger:  logger,
	}
	if host != "" {
		m.dialer = gomail.NewDialer(
			host,
			config.GetEnvAsInt("SMTP_PORT", 587),
			config.GetEnv("SMTP_USER", ""),
			config.GetEnv("SMTP_PASSWORD", ""),
		)
	}
	return m
}

func (m *Mailer) SendPasswordReset(to, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", m.baseURL, token)

	if m.dialer == nil {
		m.logger.Info("SMTP belum dikonfigurasi, email reset tidak dikirim",
			zap.String("to", to),
			zap.String("reset_link", resetLink))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Reset Password - Dashboard Pengawasan Metrologi")
	msg.SetBody("text/html", fmt.Sprintf(
		`<p>Kami menerima permintaan reset password untuk akun Anda.</p>
<p><a href="%s">Klik di sini untuk reset password</a> (berlaku 1 jam).</p>
<p>Abaikan email ini jika Anda tidak merasa meminta reset.</p>`, resetLink))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("gagal kirim email ke %s: %w", to, err)
	}

	m.logger.Info("Email reset password terkirim", zap.String("to", to))
	return nil
}
