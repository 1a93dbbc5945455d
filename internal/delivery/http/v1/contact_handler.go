package v1

import (
	"errors"
	"net/http"

	"go-agency-backend/internal/delivery/http/response"
	"go-agency-backend/internal/domain"
	"go-agency-backend/pkg/apperror"
	"go-agency-backend/pkg/mailer"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Relay a contact form submission to the team and send the submitter an acknowledgment. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.Submission  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var sub domain.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.Error(apperror.BadRequest("Request body must be valid JSON."))
		return
	}

	if err := h.contactUC.SubmitContact(c.Request.Context(), &sub); err != nil {
		var valErr *domain.ValidationError
		switch {
		case errors.As(err, &valErr):
			c.Error(valErr)
		case errors.Is(err, mailer.ErrNotConfigured):
			c.Error(apperror.Unavailable("Contact service temporarily unavailable.", err))
		default:
			c.Error(apperror.New(http.StatusInternalServerError, "Failed to send message. Please try again later.", err))
		}
		return
	}

	response.Success(c, http.StatusOK, "Your message has been sent successfully!", nil)
}
