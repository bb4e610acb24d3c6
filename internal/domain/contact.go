package domain

import (
	"context"
	"errors"
	"strings"
)

// ContactSubmission is one contact form post. It is decoded from a
// form-encoded or JSON body and lives only for the request.
type ContactSubmission struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required"`
	Phone   string `json:"phone" form:"phone"`
	Service string `json:"service" form:"service" validate:"required"`
	Message string `json:"message" form:"message" validate:"required"`
}

// Notification is one outbound HTML email derived from a submission.
type Notification struct {
	Recipient string
	ReplyTo   string
	Subject   string
	BodyHTML  string
}

// ErrDelivery marks a submission whose notifications could not be sent.
var ErrDelivery = errors.New("contact notification delivery failed")

// ValidationError lists the required fields that were absent.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// ContactUsecase handles contact form submissions
type ContactUsecase interface {
	// Submit validates the submission and emails the administrator and the submitter.
	// It returns *ValidationError or an error wrapping ErrDelivery.
	Submit(ctx context.Context, req *ContactSubmission) error
}
