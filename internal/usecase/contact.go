package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go-pixelco-site/internal/domain"
	"go-pixelco-site/pkg/clock"
	"go-pixelco-site/pkg/email"
	"go-pixelco-site/pkg/validation"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

const clientAckSubjectPrefix = "✅ Hemos recibido tu mensaje - "

// ContactConfig is read once at startup and never mutated.
type ContactConfig struct {
	// Sender is the From address of both notifications
	Sender string
	// AdminRecipient receives the new-contact notification
	AdminRecipient string
	CompanyName    string
	Contact        domain.ContactChannels
	Social         domain.SocialLinks
}

type contactUsecase struct {
	sender   email.Sender
	cfg      ContactConfig
	validate *validator.Validate
	clock    clock.Clocker
	log      *slog.Logger
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender email.Sender, cfg ContactConfig, validate *validator.Validate, clk clock.Clocker, log *slog.Logger) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		cfg:      cfg,
		validate: validate,
		clock:    clk,
		log:      log,
	}
}

// Submit validates the submission, then sends the admin notification and
// the client acknowledgment concurrently. Both must succeed.
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactSubmission) error {
	sub := trimSubmission(req)

	if err := uc.validate.Struct(sub); err != nil {
		missing := validation.MissingFields(err)
		if len(missing) == 0 {
			return fmt.Errorf("validate contact submission: %w", err)
		}
		return &domain.ValidationError{Missing: missing}
	}

	admin, err := uc.adminNotification(sub)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDelivery, err)
	}
	client, err := uc.clientAcknowledgment(sub)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDelivery, err)
	}

	// Both sends run to completion even if one fails
	var g errgroup.Group
	g.Go(func() error {
		if err := uc.send(ctx, admin); err != nil {
			return fmt.Errorf("admin notification: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := uc.send(ctx, client); err != nil {
			return fmt.Errorf("client acknowledgment: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.log.ErrorContext(ctx, "failed to send contact email",
			"error", err,
			"service", sub.Service,
		)
		return fmt.Errorf("%w: %w", domain.ErrDelivery, err)
	}

	uc.log.InfoContext(ctx, "new contact received",
		"name", sub.Name,
		"email", sub.Email,
		"service", sub.Service,
	)
	return nil
}

func (uc *contactUsecase) send(ctx context.Context, n domain.Notification) error {
	return uc.sender.Send(ctx, email.Message{
		From:     uc.cfg.Sender,
		To:       n.Recipient,
		ReplyTo:  n.ReplyTo,
		Subject:  n.Subject,
		HTMLBody: n.BodyHTML,
	})
}

func (uc *contactUsecase) adminNotification(sub domain.ContactSubmission) (domain.Notification, error) {
	phone := sub.Phone
	if phone == "" {
		phone = phoneNotProvided
	}

	body, err := renderTemplate(adminTmpl, adminNotificationData{
		CompanyName: uc.cfg.CompanyName,
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       phone,
		Service:     sub.Service,
		Message:     sub.Message,
		ReceivedAt:  formatReceivedAt(uc.clock.Now()),
	})
	if err != nil {
		return domain.Notification{}, err
	}

	return domain.Notification{
		Recipient: uc.cfg.AdminRecipient,
		ReplyTo:   sub.Email,
		Subject:   "Nuevo contacto desde el sitio web - " + sub.Service,
		BodyHTML:  body,
	}, nil
}

func (uc *contactUsecase) clientAcknowledgment(sub domain.ContactSubmission) (domain.Notification, error) {
	body, err := renderTemplate(clientTmpl, clientAckData{
		CompanyName: uc.cfg.CompanyName,
		Name:        sub.Name,
		Service:     sub.Service,
		Contact:     uc.cfg.Contact,
		Social:      uc.cfg.Social,
		Year:        uc.clock.Now().Year(),
	})
	if err != nil {
		return domain.Notification{}, err
	}

	return domain.Notification{
		Recipient: sub.Email,
		Subject:   clientAckSubjectPrefix + uc.cfg.CompanyName,
		BodyHTML:  body,
	}, nil
}

func trimSubmission(req *domain.ContactSubmission) domain.ContactSubmission {
	if req == nil {
		return domain.ContactSubmission{}
	}
	return domain.ContactSubmission{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Service: strings.TrimSpace(req.Service),
		Message: strings.TrimSpace(req.Message),
	}
}
