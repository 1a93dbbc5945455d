package validation

import (
	"regexp"
	"strings"

	"go-agency-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Every field is capped before validation to bound memory use from
// pathological input.
const maxFieldLength = 10000

// Regex patterns
var (
	// Standard local@domain.tld shape: at least one @, a dot in the domain
	// part, no whitespace anywhere.
	emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

	// Loose phone charset: +, digits, spaces, parentheses, hyphen and dots.
	phoneCharsRegex = regexp.MustCompile(`^[0-9+\-(). ]+$`)
	phoneDigitRegex = regexp.MustCompile(`[0-9]`)
)

// New builds the validator instance with the contact form rules registered.
// Construct once in main and inject; the instance is safe for concurrent use.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("contact_email", ContactEmail)
	_ = v.RegisterValidation("loose_phone", LoosePhone)
	return v
}

// ContactEmail validates a standard local@domain.tld address shape.
func ContactEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// LoosePhone validates a phone number structure: only phone characters, and
// at least 7 significant (digit) characters.
func LoosePhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if !phoneCharsRegex.MatchString(val) {
		return false
	}
	return len(phoneDigitRegex.FindAllString(val, -1)) >= 7
}

// Sanitize coerces every raw field to a trimmed, length-capped string. It
// runs before validation so downstream code only ever sees bounded input.
func Sanitize(raw *domain.Submission) domain.CleanSubmission {
	return domain.CleanSubmission{
		Name:    sanitizeField(raw.Name),
		Email:   sanitizeField(raw.Email),
		Company: sanitizeField(raw.Company),
		Phone:   sanitizeField(raw.Phone),
		Service: sanitizeField(raw.Service),
		Budget:  sanitizeField(raw.Budget),
		Message: sanitizeField(raw.Message),
	}
}

func sanitizeField(val string) string {
	val = strings.TrimSpace(val)
	if runes := []rune(val); len(runes) > maxFieldLength {
		val = string(runes[:maxFieldLength])
	}
	return val
}

// Validate evaluates every rule on the sanitized submission and returns one
// map entry per failing field. A nil result means the submission is clean.
// All rules evaluate independently; this is never fail-fast.
func Validate(v *validator.Validate, clean *domain.CleanSubmission) domain.FieldErrors {
	err := v.Struct(clean)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a rule failure; should not happen for a struct of strings.
		return domain.FieldErrors{"form": "Submission could not be processed."}
	}

	fields := make(domain.FieldErrors, len(validationErrors))
	for _, e := range validationErrors {
		name := fieldName(e.Field())
		fields[name] = messageFor(name, e.Tag())
	}
	return fields
}
