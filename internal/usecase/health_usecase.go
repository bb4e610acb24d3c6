package usecase

import (
	"time"

	"go-pixelco-site/internal/domain"
	"go-pixelco-site/pkg/clock"
)

type healthUsecase struct {
	startedAt time.Time
	clock     clock.Clocker
}

func NewHealthUsecase(clk clock.Clocker) domain.HealthUsecase {
	return &healthUsecase{startedAt: clk.Now(), clock: clk}
}

func (u *healthUsecase) Check() domain.HealthStatus {
	now := u.clock.Now()
	return domain.HealthStatus{
		Status:    "OK",
		Timestamp: now.UTC(),
		Uptime:    now.Sub(u.startedAt).Seconds(),
	}
}
