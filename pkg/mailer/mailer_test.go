package mailer

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureProvider records the last message instead of sending it.
type captureProvider struct {
	last Message
}

func (p *captureProvider) Name() string { return "capture" }

func (p *captureProvider) Send(ctx context.Context, msg Message) (SendResult, error) {
	p.last = msg
	return SendResult{ProviderMessageID: "capture-1"}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestLogProviderSend(t *testing.T) {
	provider := NewLogProvider(testLogger())

	result, err := provider.Send(context.Background(), Message{
		From:    "test@example.com",
		To:      []string{"recipient@example.com"},
		Subject: "Test Subject",
		HTML:    "<p>Test HTML</p>",
		Text:    "Test text",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.ProviderMessageID, "log-"))
}

func TestMailerAppliesDefaultFrom(t *testing.T) {
	provider := &captureProvider{}
	m := New(provider, "noreply@novaforge.studio")

	_, err := m.Send(context.Background(), Message{
		To:      []string{"recipient@example.com"},
		Subject: "Test",
		HTML:    "<p>Test</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "noreply@novaforge.studio", provider.last.From)
}

func TestMailerKeepsExplicitFrom(t *testing.T) {
	provider := &captureProvider{}
	m := New(provider, "noreply@novaforge.studio")

	_, err := m.Send(context.Background(), Message{
		From:    "other@novaforge.studio",
		To:      []string{"recipient@example.com"},
		Subject: "Test",
	})
	require.NoError(t, err)

	assert.Equal(t, "other@novaforge.studio", provider.last.From)
}

func TestProviderNames(t *testing.T) {
	assert.Equal(t, "log", NewLogProvider(testLogger()).Name())
	assert.Equal(t, "resend", NewResendProvider("fake-api-key").Name())
	assert.Equal(t, "smtp", NewSMTPProvider(SMTPConfig{}, testLogger()).Name())
}
