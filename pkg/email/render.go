package email

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"go-agency-backend/internal/domain"
	"go-agency-backend/pkg/mailer"
)

// Renderer turns a clean submission into the two outbound messages: the
// internal team notification and the submitter acknowledgment. Rendering is
// deterministic for a fixed clock; user-supplied text always goes through
// html/template escaping before it reaches an HTML body.
type Renderer struct {
	teamRecipient string
	now           func() time.Time
}

// NewRenderer creates a renderer addressing team notifications to the given
// recipient.
func NewRenderer(teamRecipient string) *Renderer {
	return &Renderer{
		teamRecipient: teamRecipient,
		now:           time.Now,
	}
}

// detailRow is one label/value line of the submission summary. Optional
// fields that were left empty never become a row; the omit-if-empty rule
// lives in one place instead of per-template conditionals.
type detailRow struct {
	Label string
	Value string
}

func detailRows(sub *domain.CleanSubmission) []detailRow {
	candidates := []detailRow{
		{"Email", sub.Email},
		{"Company", sub.Company},
		{"Phone", sub.Phone},
		{"Service", sub.Service},
		{"Budget", sub.Budget},
	}
	rows := make([]detailRow, 0, len(candidates))
	for _, row := range candidates {
		if row.Value != "" {
			rows = append(rows, row)
		}
	}
	return rows
}

// templateData is the input for both the HTML and text templates of a
// message.
type templateData struct {
	Name        string
	Rows        []detailRow
	MessageHTML template.HTML
	MessageText string
	ReceivedAt  string
}

func (r *Renderer) data(sub *domain.CleanSubmission) templateData {
	return templateData{
		Name:        sub.Name,
		Rows:        detailRows(sub),
		MessageHTML: nl2br(sub.Message),
		MessageText: sub.Message,
		ReceivedAt:  r.now().UTC().Format("Jan 2, 2006 at 15:04 MST"),
	}
}

// nl2br escapes the free-text message and converts newlines to <br> tags.
// Escaping happens per line, before the markup is joined in.
func nl2br(text string) template.HTML {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = template.HTMLEscapeString(line)
	}
	return template.HTML(strings.Join(lines, "<br>\n"))
}

// RenderAdminEmail builds the internal notification. Reply-To is the
// submitter so the team can answer directly from their mail client.
func (r *Renderer) RenderAdminEmail(sub *domain.CleanSubmission) (mailer.Message, error) {
	data := r.data(sub)

	html, err := execute(adminHTMLTmpl, data)
	if err != nil {
		return mailer.Message{}, err
	}
	text, err := execute(adminTextTmpl, data)
	if err != nil {
		return mailer.Message{}, err
	}

	return mailer.Message{
		To:      []string{r.teamRecipient},
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("New project inquiry from %s", sub.Name),
		HTML:    html,
		Text:    text,
	}, nil
}

// RenderAckEmail builds the acknowledgment sent back to the submitter.
func (r *Renderer) RenderAckEmail(sub *domain.CleanSubmission) (mailer.Message, error) {
	data := r.data(sub)

	html, err := execute(ackHTMLTmpl, data)
	if err != nil {
		return mailer.Message{}, err
	}
	text, err := execute(ackTextTmpl, data)
	if err != nil {
		return mailer.Message{}, err
	}

	return mailer.Message{
		To:      []string{sub.Email},
		Subject: "We received your message - NovaForge Studio",
		HTML:    html,
		Text:    text,
	}, nil
}

// executor is satisfied by both html/template and text/template.
type executor interface {
	Execute(wr io.Writer, data any) error
}

func execute(tmpl executor, data templateData) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}
