package email

import (
	"html/template"
	texttemplate "text/template"
)

// adminHTMLTmpl is the HTML notification for the internal team.
var adminHTMLTmpl = template.Must(template.New("admin_html").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Project Inquiry</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #111827; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 12px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 4px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #111827; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Project Inquiry</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.Name}}</div>
            </div>
{{- range .Rows}}
            <div class="field">
                <div class="label">{{.Label}}:</div>
                <div class="value">{{.Value}}</div>
            </div>
{{- end}}
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.MessageHTML}}</div>
            </div>
        </div>
        <div class="footer">
            <p>Received {{.ReceivedAt}} via the NovaForge Studio contact form.</p>
            <p>Reply to this email to answer {{.Name}} directly.</p>
        </div>
    </div>
</body>
</html>`))

// adminTextTmpl is the plain-text counterpart for clients that reject HTML.
var adminTextTmpl = texttemplate.Must(texttemplate.New("admin_text").Parse(`New project inquiry

From: {{.Name}}
{{- range .Rows}}
{{.Label}}: {{.Value}}
{{- end}}

Message:
{{.MessageText}}

Received {{.ReceivedAt}} via the NovaForge Studio contact form.
`))

// ackHTMLTmpl is the acknowledgment sent back to the submitter.
var ackHTMLTmpl = template.Must(template.New("ack_html").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>We received your message</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #111827; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .summary { background: white; padding: 15px; border-left: 4px solid #111827; margin-top: 10px; }
        .label { font-weight: bold; color: #555; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Thanks for reaching out</h1>
        </div>
        <div class="content">
            <p>Hi {{.Name}},</p>
            <p>We received your message and will get back to you within one business day.</p>
            <div class="summary">
{{- range .Rows}}
                <p><span class="label">{{.Label}}:</span> {{.Value}}</p>
{{- end}}
                <p><span class="label">Your message:</span></p>
                <p>{{.MessageHTML}}</p>
            </div>
        </div>
        <div class="footer">
            <p>NovaForge Studio &mdash; design &amp; engineering for ambitious teams.</p>
            <p>This is an automated confirmation; replying to it will not reach us.</p>
        </div>
    </div>
</body>
</html>`))

var ackTextTmpl = texttemplate.Must(texttemplate.New("ack_text").Parse(`Hi {{.Name}},

We received your message and will get back to you within one business day.

{{- range .Rows}}
{{.Label}}: {{.Value}}
{{- end}}

Your message:
{{.MessageText}}

NovaForge Studio - design & engineering for ambitious teams.
This is an automated confirmation; replying to it will not reach us.
`))
