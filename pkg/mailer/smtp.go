package mailer

import (
	"bytes"
	"context"
	"crypto"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"
	"sync"
	"time"

	"github.com/emersion/go-msgauth/dkim"
	"github.com/google/uuid"
)

// ErrNotConfigured is returned on the first send attempt when the minimum
// SMTP settings are missing. Construction is lazy so a misconfigured mailer
// only fails when the contact form is actually used.
var ErrNotConfigured = errors.New("mailer: smtp host, username and password are required")

// SMTPConfig holds the connection settings for the SMTP provider.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// DKIM signing is enabled only when all three values are present.
	DKIMDomain     string
	DKIMSelector   string
	DKIMPrivateKey string // PEM-encoded RSA private key
}

// SMTPProvider delivers messages over plain SMTP. Port 465 uses implicit
// TLS; every other port uses STARTTLS. Certificate validation is always on.
//
// The derived client state (auth, TLS config, DKIM signer) is built once on
// first send and shared by all subsequent sends. Each send is a single
// dial/deliver/quit exchange with no retry.
type SMTPProvider struct {
	cfg    SMTPConfig
	logger *slog.Logger

	once     sync.Once
	initErr  error
	auth     smtp.Auth
	tlsConf  *tls.Config
	signOpts *dkim.SignOptions
}

// NewSMTPProvider creates the provider without touching the network or
// validating settings; both happen on first send.
func NewSMTPProvider(cfg SMTPConfig, logger *slog.Logger) *SMTPProvider {
	return &SMTPProvider{cfg: cfg, logger: logger}
}

// Name returns the provider name.
func (p *SMTPProvider) Name() string {
	return "smtp"
}

// init resolves the memoized client state. Missing SMTP settings are fatal
// here; a partially configured DKIM block is a logged no-op instead.
func (p *SMTPProvider) init() {
	if p.cfg.Host == "" || p.cfg.Username == "" || p.cfg.Password == "" {
		p.initErr = ErrNotConfigured
		return
	}

	p.auth = smtp.PlainAuth("", p.cfg.Username, p.cfg.Password, p.cfg.Host)
	p.tlsConf = &tls.Config{ServerName: p.cfg.Host}

	hasAnyDKIM := p.cfg.DKIMDomain != "" || p.cfg.DKIMSelector != "" || p.cfg.DKIMPrivateKey != ""
	hasAllDKIM := p.cfg.DKIMDomain != "" && p.cfg.DKIMSelector != "" && p.cfg.DKIMPrivateKey != ""

	switch {
	case hasAllDKIM:
		signer, err := parseDKIMKey(p.cfg.DKIMPrivateKey)
		if err != nil {
			// A present but unparseable key is a real configuration error,
			// unlike an absent one.
			p.initErr = fmt.Errorf("mailer: invalid DKIM private key: %w", err)
			return
		}
		p.signOpts = &dkim.SignOptions{
			Domain:   p.cfg.DKIMDomain,
			Selector: p.cfg.DKIMSelector,
			Signer:   signer,
			HeaderKeys: []string{
				"From", "To", "Reply-To", "Subject", "Date",
				"Message-ID", "MIME-Version", "Content-Type",
			},
		}
	case hasAnyDKIM:
		p.logger.Warn("mailer: partial DKIM configuration, sending unsigned",
			"domain_set", p.cfg.DKIMDomain != "",
			"selector_set", p.cfg.DKIMSelector != "",
			"key_set", p.cfg.DKIMPrivateKey != "",
		)
	}
}

// Send delivers one message. A transient network failure propagates to the
// caller; there is no retry or queueing.
func (p *SMTPProvider) Send(ctx context.Context, msg Message) (SendResult, error) {
	p.once.Do(p.init)
	if p.initErr != nil {
		return SendResult{}, p.initErr
	}

	messageID := buildMessageID(msg.From)
	raw, err := buildMIME(msg, messageID, time.Now())
	if err != nil {
		return SendResult{}, fmt.Errorf("mailer: building message: %w", err)
	}

	if p.signOpts != nil {
		var signed bytes.Buffer
		if err := dkim.Sign(&signed, bytes.NewReader(raw), p.signOpts); err != nil {
			return SendResult{}, fmt.Errorf("mailer: dkim signing failed: %w", err)
		}
		raw = signed.Bytes()
	}

	if err := p.deliver(ctx, msg, raw); err != nil {
		return SendResult{}, err
	}
	return SendResult{ProviderMessageID: messageID}, nil
}

// deliver performs the SMTP exchange for one message.
func (p *SMTPProvider) deliver(ctx context.Context, msg Message, raw []byte) error {
	addr := fmt.Sprintf("%s:%d", p.cfg.Host, p.cfg.Port)

	var (
		conn net.Conn
		err  error
	)
	if p.cfg.Port == 465 {
		// Implicit TLS
		dialer := tls.Dialer{Config: p.tlsConf}
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = (&net.Dialer{}).DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return fmt.Errorf("mailer: dialing %s: %w", addr, err)
	}

	client, err := smtp.NewClient(conn, p.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("mailer: smtp handshake: %w", err)
	}
	defer client.Close()

	if p.cfg.Port != 465 {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			return fmt.Errorf("mailer: server %s does not support STARTTLS", p.cfg.Host)
		}
		if err := client.StartTLS(p.tlsConf); err != nil {
			return fmt.Errorf("mailer: starttls: %w", err)
		}
	}

	if err := client.Auth(p.auth); err != nil {
		return fmt.Errorf("mailer: authentication failed: %w", err)
	}
	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("mailer: MAIL FROM: %w", err)
	}
	for _, rcpt := range msg.To {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("mailer: RCPT TO %s: %w", rcpt, err)
		}
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("mailer: DATA: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("mailer: writing message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("mailer: closing message: %w", err)
	}
	return client.Quit()
}

// buildMessageID derives a unique Message-ID from the sender domain.
func buildMessageID(from string) string {
	domain := "localhost"
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domain = from[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.New().String(), domain)
}

// buildMIME constructs a multipart/alternative message with quoted-printable
// text and HTML parts.
func buildMIME(msg Message, messageID string, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	mp := multipart.NewWriter(&buf)

	headers := []string{
		"From: " + msg.From,
		"To: " + strings.Join(msg.To, ", "),
	}
	if msg.ReplyTo != "" {
		headers = append(headers, "Reply-To: "+msg.ReplyTo)
	}
	headers = append(headers,
		"Subject: "+mime.QEncoding.Encode("utf-8", msg.Subject),
		"Date: "+now.Format(time.RFC1123Z),
		"Message-ID: "+messageID,
		"MIME-Version: 1.0",
		`Content-Type: multipart/alternative; boundary="`+mp.Boundary()+`"`,
	)
	for _, h := range headers {
		buf.WriteString(h)
		buf.WriteString("\r\n")
	}
	buf.WriteString("\r\n")

	// Plain text first so HTML-capable clients prefer the later part.
	if err := writePart(mp, "text/plain; charset=UTF-8", msg.Text); err != nil {
		return nil, err
	}
	if err := writePart(mp, "text/html; charset=UTF-8", msg.HTML); err != nil {
		return nil, err
	}
	if err := mp.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePart(mp *multipart.Writer, contentType, body string) error {
	part, err := mp.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {contentType},
		"Content-Transfer-Encoding": {"quoted-printable"},
	})
	if err != nil {
		return err
	}
	qp := quotedprintable.NewWriter(part)
	if _, err := qp.Write([]byte(body)); err != nil {
		return err
	}
	return qp.Close()
}

// parseDKIMKey decodes a PEM-encoded RSA private key in either PKCS#1 or
// PKCS#8 form.
func parseDKIMKey(pemData string) (crypto.Signer, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, errors.New("no PEM block found")
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	signer, ok := parsed.(crypto.Signer)
	if !ok {
		return nil, errors.New("key type does not support signing")
	}
	return signer, nil
}
