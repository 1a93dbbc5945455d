package domain

import "context"

// Submission is the raw contact form payload as posted by the site. Every
// field is a string; the optional ones may be empty. Nothing is trusted at
// this stage.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Budget  string `json:"budget"`
	Message string `json:"message"`
}

// CleanSubmission is a Submission that passed sanitization and validation.
// Fields are trimmed, length-capped and safe to hand to the email renderer.
// It exists only for the duration of one request and is never stored.
type CleanSubmission struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,contact_email"`
	Company string
	Phone   string `validate:"omitempty,loose_phone"`
	Service string `validate:"required"`
	Budget  string `validate:"required"`
	Message string `validate:"required,min=20"`
}

// FieldErrors maps a field name to a human-readable reason. A failing
// submission produces one entry per failing field, never just the first.
type FieldErrors map[string]string

// ValidationError carries the complete field-error map through the error
// chain so the HTTP layer can answer with a precise 400 instead of an
// opaque failure.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "submission failed validation"
}

// ContactUsecase defines the contact intake pipeline: sanitize, validate,
// render both notification emails and dispatch them.
type ContactUsecase interface {
	SubmitContact(ctx context.Context, sub *Submission) error
}
