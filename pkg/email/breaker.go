package email

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

const (
	breakerMinRequests = 10
	breakerFailureRate = 0.5
)

// BreakerSender fails fast while the provider keeps rejecting sends.
// Each Send is still a single attempt.
type BreakerSender struct {
	cb   *gobreaker.CircuitBreaker
	next Sender
}

// DefaultBreakerSettings returns the settings used in production.
func DefaultBreakerSettings(name string) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: 2,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < breakerMinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= breakerFailureRate
		},
	}
}

// NewBreakerSender wraps next with a circuit breaker.
func NewBreakerSender(next Sender, settings gobreaker.Settings) (*BreakerSender, error) {
	if next == nil {
		return nil, fmt.Errorf("email: breaker needs a sender")
	}
	return &BreakerSender{
		cb:   gobreaker.NewCircuitBreaker(settings),
		next: next,
	}, nil
}

func (b *BreakerSender) Send(ctx context.Context, msg Message) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Send(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("email breaker %s: %w", b.cb.Name(), err)
	}
	return nil
}

