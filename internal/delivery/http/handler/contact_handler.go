package handler

import (
	"errors"
	"net/http"
	"strings"

	"go-pixelco-site/internal/delivery/http/response"
	"go-pixelco-site/internal/domain"
	"go-pixelco-site/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	msgMissingFields = "Por favor completa todos los campos requeridos"
	msgContactSent   = "¡Mensaje enviado exitosamente! Te contactaremos pronto."
	msgContactFailed = "Hubo un error al enviar tu mensaje. Por favor intenta nuevamente."
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact form route
func NewContactHandler(r gin.IRoutes, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	r.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Emails the submission to the site owner and a confirmation to the submitter.
// @Tags         contact
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactSubmission
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.BadRequest(msgMissingFields))
		return
	}

	err := h.contactUC.Submit(c.Request.Context(), &req)

	var validationErr *domain.ValidationError
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, msgContactSent, nil)
	case errors.As(err, &validationErr):
		c.Error(apperror.BadRequest(msgMissingFields + ": " + strings.Join(validationErr.Missing, ", ")))
	default:
		// The provider error is logged by the error middleware, never returned
		c.Error(apperror.Internal(msgContactFailed, err))
	}
}
