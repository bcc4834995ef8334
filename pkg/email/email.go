// Package email, birim posta kutularına bildirim ve hesaplara şifre
// sıfırlama maili gönderimini soyutlar.
//
// Service katmanı Sender interface'ine bağımlıdır; production'da Resend
// implementasyonu kullanılır. API key verilmezse main.go sender oluşturmaz
// ve bildirimler kapalı kalır.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/resend/resend-go/v3"
)

// ComplaintNotice, yeni şikayet bildiriminin içeriği.
type ComplaintNotice struct {
	ComplaintID string
	Department  string
	ParkName    string
	IssueType   string
	Description string
	ReportedAt  time.Time
}

// PasswordReset, şifre sıfırlama mailinin içeriği.
type PasswordReset struct {
	Link      string
	ExpiresIn time.Duration
}

// Sender, bildirim gönderen taraf.
type Sender interface {
	SendComplaintNotice(ctx context.Context, to string, notice ComplaintNotice) error
	SendPasswordReset(ctx context.Context, to string, reset PasswordReset) error
}

// resendSender, Resend API ile mail gönderen Sender implementasyonu.
type resendSender struct {
	client    *resend.Client
	fromEmail string
}

// NewResendSender, apiKey ile Resend client'ı kurar.
// fromEmail Resend'de doğrulanmış bir domain altında olmalıdır.
func NewResendSender(apiKey, fromEmail string) Sender {
	return &resendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
	}
}

func (s *resendSender) SendComplaintNotice(ctx context.Context, to string, notice ComplaintNotice) error {
	html, err := RenderComplaintNotice(notice)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Malatya Park Şikayet <%s>", s.fromEmail),
		To:      []string{to},
		Subject: ComplaintSubject(notice),
		Html:    html,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send complaint notice: %w", err)
	}
	return nil
}

// ComplaintSubject, bildirim mailinin konu satırı.
func ComplaintSubject(notice ComplaintNotice) string {
	return fmt.Sprintf("Yeni şikayet: %s (%s)", notice.IssueType, notice.ParkName)
}

// noticeTemplate, kullanıcı girdisi (açıklama, park adı) html/template ile escape edilir.
var noticeTemplate = template.Must(template.New("notice").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:24px;font-family:Arial,Helvetica,sans-serif;background-color:#f4f7f4;">
  <table width="560" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:32px;">
    <tr><td>
      <h2 style="color:#2e7d32;margin:0 0 16px 0;">{{.Department}}</h2>
      <p style="color:#333333;font-size:15px;margin:0 0 8px 0;"><strong>Park:</strong> {{.ParkName}}</p>
      <p style="color:#333333;font-size:15px;margin:0 0 8px 0;"><strong>Sorun tipi:</strong> {{.IssueType}}</p>
      <p style="color:#333333;font-size:15px;margin:0 0 8px 0;"><strong>Tarih:</strong> {{.ReportedAt.Format "02.01.2006 15:04"}}</p>
      <p style="color:#333333;font-size:15px;line-height:1.6;margin:16px 0;">{{.Description}}</p>
      <p style="color:#777777;font-size:12px;margin:0;">Şikayet no: {{.ComplaintID}}</p>
    </td></tr>
  </table>
</body>
</html>`))

// RenderComplaintNotice, bildirimin HTML gövdesini üretir.
func RenderComplaintNotice(notice ComplaintNotice) (string, error) {
	var buf bytes.Buffer
	if err := noticeTemplate.Execute(&buf, notice); err != nil {
		return "", fmt.Errorf("failed to render complaint notice: %w", err)
	}
	return buf.String(), nil
}

func (s *resendSender) SendPasswordReset(ctx context.Context, to string, reset PasswordReset) error {
	html, err := RenderPasswordReset(reset)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Malatya Park Şikayet <%s>", s.fromEmail),
		To:      []string{to},
		Subject: "Şifre sıfırlama isteği",
		Html:    html,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

var resetTemplate = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:24px;font-family:Arial,Helvetica,sans-serif;background-color:#f4f7f4;">
  <table width="480" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:32px;">
    <tr><td>
      <h2 style="color:#2e7d32;margin:0 0 16px 0;">Şifre sıfırlama</h2>
      <p style="color:#333333;font-size:15px;line-height:1.6;margin:0 0 24px 0;">
        Hesabınız için şifre sıfırlama isteği aldık. Yeni şifre belirlemek için bağlantıya tıklayın.
      </p>
      <p style="margin:0 0 24px 0;">
        <a href="{{.Link}}" style="background-color:#2e7d32;color:#ffffff;text-decoration:none;padding:12px 32px;border-radius:6px;">Şifreyi sıfırla</a>
      </p>
      <p style="color:#777777;font-size:13px;margin:0 0 8px 0;">
        Bağlantı {{.Minutes}} dakika geçerlidir. İsteği siz yapmadıysanız bu maili yok sayabilirsiniz.
      </p>
      <p style="color:#777777;font-size:12px;margin:0;word-break:break-all;">{{.Link}}</p>
    </td></tr>
  </table>
</body>
</html>`))

// RenderPasswordReset, sıfırlama mailinin HTML gövdesini üretir.
func RenderPasswordReset(reset PasswordReset) (string, error) {
	data := struct {
		Link    string
		Minutes int
	}{
		Link:    reset.Link,
		Minutes: int(reset.ExpiresIn.Minutes()),
	}

	var buf bytes.Buffer
	if err := resetTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render password reset: %w", err)
	}
	return buf.String(), nil
}
