package mailer

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDKIMKeyPEM(t *testing.T) string {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}))
}

func TestSMTPSendFailsWhenNotConfigured(t *testing.T) {
	provider := NewSMTPProvider(SMTPConfig{}, testLogger())

	_, err := provider.Send(context.Background(), Message{
		From: "noreply@novaforge.studio",
		To:   []string{"someone@example.com"},
	})

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSMTPInitWithPartialDKIMSkipsSigning(t *testing.T) {
	provider := NewSMTPProvider(SMTPConfig{
		Host:       "smtp.example.com",
		Port:       587,
		Username:   "user",
		Password:   "pass",
		DKIMDomain: "novaforge.studio", // selector and key missing
	}, testLogger())

	provider.init()

	require.NoError(t, provider.initErr)
	assert.Nil(t, provider.signOpts)
}

func TestSMTPInitWithFullDKIMEnablesSigning(t *testing.T) {
	provider := NewSMTPProvider(SMTPConfig{
		Host:           "smtp.example.com",
		Port:           465,
		Username:       "user",
		Password:       "pass",
		DKIMDomain:     "novaforge.studio",
		DKIMSelector:   "mail",
		DKIMPrivateKey: testDKIMKeyPEM(t),
	}, testLogger())

	provider.init()

	require.NoError(t, provider.initErr)
	require.NotNil(t, provider.signOpts)
	assert.Equal(t, "novaforge.studio", provider.signOpts.Domain)
	assert.Equal(t, "mail", provider.signOpts.Selector)
}

func TestSMTPInitWithInvalidDKIMKeyFails(t *testing.T) {
	provider := NewSMTPProvider(SMTPConfig{
		Host:           "smtp.example.com",
		Port:           587,
		Username:       "user",
		Password:       "pass",
		DKIMDomain:     "novaforge.studio",
		DKIMSelector:   "mail",
		DKIMPrivateKey: "not a pem key",
	}, testLogger())

	provider.init()

	assert.Error(t, provider.initErr)
}

func TestBuildMIME(t *testing.T) {
	now := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	msg := Message{
		From:    "noreply@novaforge.studio",
		To:      []string{"hello@novaforge.studio"},
		ReplyTo: "jane@co.com",
		Subject: "New project inquiry from Jane Doe",
		HTML:    "<p>Hello</p>",
		Text:    "Hello",
	}

	raw, err := buildMIME(msg, "<abc@novaforge.studio>", now)
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, "From: noreply@novaforge.studio\r\n")
	assert.Contains(t, body, "To: hello@novaforge.studio\r\n")
	assert.Contains(t, body, "Reply-To: jane@co.com\r\n")
	assert.Contains(t, body, "Subject: New project inquiry from Jane Doe\r\n")
	assert.Contains(t, body, "Message-ID: <abc@novaforge.studio>\r\n")
	assert.Contains(t, body, "MIME-Version: 1.0\r\n")
	assert.Contains(t, body, "Content-Type: multipart/alternative; boundary=")
	assert.Contains(t, body, "text/plain; charset=UTF-8")
	assert.Contains(t, body, "text/html; charset=UTF-8")
	assert.Contains(t, body, "<p>Hello</p>")
}

func TestBuildMIMEOmitsReplyToWhenEmpty(t *testing.T) {
	msg := Message{
		From:    "noreply@novaforge.studio",
		To:      []string{"jane@co.com"},
		Subject: "We received your message",
	}

	raw, err := buildMIME(msg, "<abc@novaforge.studio>", time.Now())
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "Reply-To:")
}

func TestBuildMessageID(t *testing.T) {
	id := buildMessageID("noreply@novaforge.studio")
	assert.True(t, len(id) > 2)
	assert.Contains(t, id, "@novaforge.studio>")

	fallback := buildMessageID("not-an-address")
	assert.Contains(t, fallback, "@localhost>")
}
