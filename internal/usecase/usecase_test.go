package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"go-pixelco-site/internal/domain"
	"go-pixelco-site/internal/usecase"
	"go-pixelco-site/pkg/clock"
	"go-pixelco-site/pkg/email"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock mail sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

// sentTo returns the message delivered to the given recipient.
func (m *MockSender) sentTo(t *testing.T, recipient string) email.Message {
	t.Helper()
	for _, call := range m.Calls {
		msg := call.Arguments.Get(1).(email.Message)
		if msg.To == recipient {
			return msg
		}
	}
	t.Fatalf("no message sent to %s", recipient)
	return email.Message{}
}

var receivedAt = time.Date(2026, time.October, 18, 19, 30, 0, 0, time.UTC)

func newContactUsecase(sender email.Sender, logBuf *bytes.Buffer) domain.ContactUsecase {
	content := usecase.DefaultSiteContent()
	cfg := usecase.ContactConfig{
		Sender:         "owner@pixelco.com",
		AdminRecipient: "admin@pixelco.com",
		CompanyName:    content.CompanyName,
		Contact:        content.Contact,
		Social:         content.Social,
	}
	log := slog.New(slog.NewJSONHandler(logBuf, nil))
	return usecase.NewContactUsecase(sender, cfg, validator.New(), clock.Fixed(receivedAt), log)
}

func validSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:    "Ana",
		Email:   "ana@x.com",
		Service: "Desarrollo Web",
		Message: "Hola",
	}
}

func TestContactSubmitValidation(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*domain.ContactSubmission)
		missing []string
	}{
		"missing name": {
			mutate:  func(s *domain.ContactSubmission) { s.Name = "" },
			missing: []string{"nombre"},
		},
		"missing email": {
			mutate:  func(s *domain.ContactSubmission) { s.Email = "" },
			missing: []string{"email"},
		},
		"blank service": {
			mutate:  func(s *domain.ContactSubmission) { s.Service = "   " },
			missing: []string{"servicio"},
		},
		"missing message": {
			mutate:  func(s *domain.ContactSubmission) { s.Message = "" },
			missing: []string{"mensaje"},
		},
		"everything missing": {
			mutate:  func(s *domain.ContactSubmission) { *s = domain.ContactSubmission{Phone: "123"} },
			missing: []string{"nombre", "email", "servicio", "mensaje"},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			sender := new(MockSender)
			uc := newContactUsecase(sender, &bytes.Buffer{})

			sub := validSubmission()
			tc.mutate(sub)

			err := uc.Submit(context.Background(), sub)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.missing, vErr.Missing)
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestContactSubmitSendsBothNotifications(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).Return(nil)
	logBuf := &bytes.Buffer{}
	uc := newContactUsecase(sender, logBuf)

	err := uc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	sender.AssertNumberOfCalls(t, "Send", 2)

	admin := sender.sentTo(t, "admin@pixelco.com")
	assert.Equal(t, "owner@pixelco.com", admin.From)
	assert.Equal(t, "ana@x.com", admin.ReplyTo)
	assert.Equal(t, "Nuevo contacto desde el sitio web - Desarrollo Web", admin.Subject)
	assert.Contains(t, admin.HTMLBody, "Ana")
	assert.Contains(t, admin.HTMLBody, "ana@x.com")
	assert.Contains(t, admin.HTMLBody, "Desarrollo Web")
	assert.Contains(t, admin.HTMLBody, "Hola")
	assert.Contains(t, admin.HTMLBody, "No proporcionado")
	assert.Contains(t, admin.HTMLBody, "Recibido el domingo, 18 de octubre de 2026, 02:30 p. m.")

	client := sender.sentTo(t, "ana@x.com")
	assert.Equal(t, "owner@pixelco.com", client.From)
	assert.Equal(t, "✅ Hemos recibido tu mensaje - Pixel&Co", client.Subject)
	assert.Contains(t, client.HTMLBody, "Hola <strong>Ana</strong>")
	assert.Contains(t, client.HTMLBody, "Desarrollo Web")
	assert.Contains(t, client.HTMLBody, "24 horas")
	assert.Contains(t, client.HTMLBody, "info@techsolutions.com")
	// html/template encodes "+" as &#43;
	assert.Contains(t, client.HTMLBody, "&#43;57 300 123 4567")

	assert.Contains(t, logBuf.String(), "new contact received")
	assert.Contains(t, logBuf.String(), `"service":"Desarrollo Web"`)
}

func TestContactSubmitIncludesPhoneWhenGiven(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	uc := newContactUsecase(sender, &bytes.Buffer{})

	sub := validSubmission()
	sub.Phone = "+57 311 000 0000"
	require.NoError(t, uc.Submit(context.Background(), sub))

	admin := sender.sentTo(t, "admin@pixelco.com")
	assert.Contains(t, admin.HTMLBody, "&#43;57 311 000 0000")
	assert.NotContains(t, admin.HTMLBody, "No proporcionado")
}

func TestContactSubmitEscapesSubmittedHTML(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	uc := newContactUsecase(sender, &bytes.Buffer{})

	sub := validSubmission()
	sub.Message = "<script>alert(1)</script>"
	require.NoError(t, uc.Submit(context.Background(), sub))

	admin := sender.sentTo(t, "admin@pixelco.com")
	assert.NotContains(t, admin.HTMLBody, "<script>")
	assert.Contains(t, admin.HTMLBody, "&lt;script&gt;")
}

func TestContactSubmitDeliveryFailure(t *testing.T) {
	providerErr := errors.New("535 5.7.8 Username and Password not accepted")

	t.Run("both sends rejected", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(providerErr)
		logBuf := &bytes.Buffer{}
		uc := newContactUsecase(sender, logBuf)

		err := uc.Submit(context.Background(), validSubmission())

		assert.ErrorIs(t, err, domain.ErrDelivery)
		assert.ErrorIs(t, err, providerErr)
		assert.Contains(t, logBuf.String(), "failed to send contact email")
		assert.Contains(t, logBuf.String(), "Username and Password not accepted")
		assert.NotContains(t, logBuf.String(), "new contact received")
	})

	t.Run("only client acknowledgment rejected", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(m email.Message) bool {
			return m.To == "admin@pixelco.com"
		})).Return(nil)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(m email.Message) bool {
			return m.To == "ana@x.com"
		})).Return(providerErr)
		logBuf := &bytes.Buffer{}
		uc := newContactUsecase(sender, logBuf)

		err := uc.Submit(context.Background(), validSubmission())

		assert.ErrorIs(t, err, domain.ErrDelivery)
		assert.Contains(t, err.Error(), "client acknowledgment")
		sender.AssertNumberOfCalls(t, "Send", 2)
	})
}

// orderedSender rejects the admin notification and only then lets the
// client acknowledgment through, recording the context it saw.
type orderedSender struct {
	adminDone chan struct{}
	clientErr error
}

func (s *orderedSender) Send(ctx context.Context, msg email.Message) error {
	if msg.To == "admin@pixelco.com" {
		defer close(s.adminDone)
		return errors.New("550 mailbox unavailable")
	}
	<-s.adminDone
	s.clientErr = ctx.Err()
	return nil
}

func TestContactSubmitFailureDoesNotCancelSiblingSend(t *testing.T) {
	sender := &orderedSender{adminDone: make(chan struct{})}
	uc := newContactUsecase(sender, &bytes.Buffer{})

	err := uc.Submit(context.Background(), validSubmission())

	assert.ErrorIs(t, err, domain.ErrDelivery)
	assert.NoError(t, sender.clientErr)
}

func TestSiteUsecase(t *testing.T) {
	uc := usecase.NewSiteUsecase(usecase.DefaultSiteContent(), clock.Fixed(receivedAt))

	home := uc.Home()
	assert.Equal(t, "Pixel&Co", home.CompanyName)
	assert.Equal(t, 2026, home.CurrentYear)
	assert.Len(t, home.Services, 6)
	assert.Len(t, home.Stats, 4)
	assert.Equal(t, "/contact", home.FormAction)

	notFound := uc.NotFound()
	assert.Equal(t, "Página no encontrada", notFound.Title)
	assert.Equal(t, "Pixel&Co", notFound.CompanyName)
}

func TestHealthUsecase(t *testing.T) {
	clk := &steppingClock{now: receivedAt}
	uc := usecase.NewHealthUsecase(clk)

	clk.now = receivedAt.Add(90 * time.Second)
	status := uc.Check()

	assert.Equal(t, "OK", status.Status)
	assert.Equal(t, time.UTC, status.Timestamp.Location())
	assert.InDelta(t, 90.0, status.Uptime, 0.001)
}

type steppingClock struct {
	now time.Time
}

func (c *steppingClock) Now() time.Time { return c.now }
