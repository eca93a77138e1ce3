// Package sweeper runs the periodic deadline expiry sweep.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"mutualaid/config"
	"mutualaid/internal/delivery"
	"mutualaid/internal/usecase"

	"go.uber.org/fx"
)

const defaultSweepInterval = 300 * time.Second

type Params struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	RequestUC usecase.RequestUsecase
}

type sweeper struct {
	interval  time.Duration
	logger    *slog.Logger
	requestUC usecase.RequestUsecase
	stop      chan struct{}
}

// NewServer creates the expiry sweeper delivery. The sweep itself is
// idempotent, so a missed or doubled tick is harmless.
func NewServer(params Params) (delivery.Delivery, error) {
	interval := params.Config.Sweep.Interval
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	s := &sweeper{
		interval:  interval,
		logger:    params.Logger,
		requestUC: params.RequestUC,
		stop:      make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(s.stop)

			return nil
		},
	})

	return s, nil
}

func (s *sweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting expiry sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stop:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sweeper) sweep(ctx context.Context) {
	expired, err := s.requestUC.ExpireOverdue(ctx, time.Now())
	if err != nil {
		s.logger.Error("Expiry sweep failed", slog.Any("error", err))

		return
	}

	if expired > 0 {
		s.logger.Info("Expiry sweep finished", slog.Int("expired", expired))
	}
}
