package email

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when a send is attempted without credentials.
var ErrNotConfigured = errors.New("email service is not configured")

// ErrInvalidHeader is returned when an address would break the message headers.
var ErrInvalidHeader = errors.New("email address contains a line break")

// Message is a single HTML email.
type Message struct {
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
}

// Sender delivers one message through a mail provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
