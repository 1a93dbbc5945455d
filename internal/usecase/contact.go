package usecase

import (
	"context"
	"fmt"

	"go-agency-backend/internal/domain"
	"go-agency-backend/pkg/email"
	"go-agency-backend/pkg/mailer"
	"go-agency-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	validate *validator.Validate
	renderer *email.Renderer
	mailer   *mailer.Mailer
}

// NewContactUsecase creates a new contact usecase. The mailer is injected so
// tests can substitute a fake provider.
func NewContactUsecase(validate *validator.Validate, renderer *email.Renderer, m *mailer.Mailer) domain.ContactUsecase {
	return &contactUsecase{
		validate: validate,
		renderer: renderer,
		mailer:   m,
	}
}

// SubmitContact runs the intake pipeline: sanitize, validate, render both
// messages, then dispatch team notification followed by the acknowledgment.
// The first failing send aborts the remaining one. No email is ever sent for
// a submission that did not pass every rule.
func (uc *contactUsecase) SubmitContact(ctx context.Context, sub *domain.Submission) error {
	clean := validation.Sanitize(sub)

	if fields := validation.Validate(uc.validate, &clean); fields != nil {
		return &domain.ValidationError{Fields: fields}
	}

	adminMsg, err := uc.renderer.RenderAdminEmail(&clean)
	if err != nil {
		return fmt.Errorf("rendering team notification: %w", err)
	}
	ackMsg, err := uc.renderer.RenderAckEmail(&clean)
	if err != nil {
		return fmt.Errorf("rendering acknowledgment: %w", err)
	}

	if _, err := uc.mailer.Send(ctx, adminMsg); err != nil {
		return fmt.Errorf("sending team notification: %w", err)
	}
	if _, err := uc.mailer.Send(ctx, ackMsg); err != nil {
		return fmt.Errorf("sending acknowledgment: %w", err)
	}

	return nil
}
