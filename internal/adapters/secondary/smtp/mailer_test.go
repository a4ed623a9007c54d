package smtp

import (
	"bytes"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"churn-prediction-service/internal/core/domain"
)

func TestBuildMessage_HTMLOnly(t *testing.T) {
	msg := &domain.EmailMessage{
		To:       "team@example.com",
		Subject:  "Churn Prediction Report & Recommendations",
		HTMLBody: "<html><body>hello</body></html>",
	}

	raw := BuildMessage("sender@example.com", msg)

	assert.Contains(t, raw, "From: sender@example.com\r\n")
	assert.Contains(t, raw, "To: team@example.com\r\n")
	assert.Contains(t, raw, "Subject: Churn Prediction Report & Recommendations\r\n")
	assert.Contains(t, raw, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.Contains(t, raw, "<html><body>hello</body></html>")
	assert.NotContains(t, raw, "multipart/mixed")
}

func TestBuildMessage_WithAttachment(t *testing.T) {
	msg := &domain.EmailMessage{
		To:       "team@example.com",
		Subject:  "report",
		HTMLBody: "<html/>",
		Attachments: []domain.EmailAttachment{
			{Filename: "results.csv", Content: bytes.Repeat([]byte("a,b,c\n"), 50)},
		},
	}

	raw := BuildMessage("sender@example.com", msg)

	assert.Contains(t, raw, "Content-Type: multipart/mixed; boundary=")
	assert.Contains(t, raw, `Content-Disposition: attachment; filename="results.csv"`)
	assert.Contains(t, raw, "Content-Transfer-Encoding: base64\r\n")

	// boundary opens each part and closes the envelope
	boundary := extractBoundary(t, raw)
	assert.Equal(t, 2, strings.Count(raw, "--"+boundary+"\r\n"))
	assert.Contains(t, raw, "--"+boundary+"--\r\n")

	// base64 lines respect the MIME limit
	inBody := false
	for _, line := range strings.Split(raw, "\r\n") {
		if strings.HasPrefix(line, "Content-Transfer-Encoding") {
			inBody = true
			continue
		}
		if inBody && len(line) > 0 && !strings.HasPrefix(line, "--") {
			assert.LessOrEqual(t, len(line), 76)
		}
	}
}

func extractBoundary(t *testing.T, raw string) string {
	t.Helper()
	idx := strings.Index(raw, `boundary="`)
	assert.GreaterOrEqual(t, idx, 0)
	rest := raw[idx+len(`boundary="`):]
	end := strings.Index(rest, `"`)
	assert.GreaterOrEqual(t, end, 0)
	return rest[:end]
}

func TestWrapBase64(t *testing.T) {
	short := wrapBase64("abc")
	assert.Equal(t, "abc", short)

	long := wrapBase64(strings.Repeat("x", 200))
	lines := strings.Split(long, "\r\n")
	assert.Len(t, lines, 3)
	assert.Len(t, lines[0], 76)
	assert.Len(t, lines[1], 76)
	assert.Len(t, lines[2], 48)
}

func TestClassifySMTPError(t *testing.T) {
	cases := []struct {
		code     int
		sentinel error
	}{
		{535, domain.ErrSMTPAuthFailed},
		{534, domain.ErrSMTPAuthFailed},
		{530, domain.ErrSMTPAuthFailed},
		{550, domain.ErrRecipientRefused},
		{551, domain.ErrRecipientRefused},
		{553, domain.ErrRecipientRefused},
		{421, domain.ErrSMTPFailure},
		{451, domain.ErrSMTPFailure},
	}
	for _, c := range cases {
		err := classifySMTPError(&textproto.Error{Code: c.code, Msg: "server says no"})
		assert.ErrorIs(t, err, c.sentinel, "code %d", c.code)
	}
}

func TestClassifySMTPError_NonProtocol(t *testing.T) {
	err := classifySMTPError(assert.AnError)
	assert.ErrorIs(t, err, domain.ErrSMTPFailure)
}
