package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/StageBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingCompleter interface {
	CompleteFinished(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically closes confirmed bookings whose event is over.
type Scheduler struct {
	bookingService bookingCompleter
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("completion scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("completion scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.bookingService.CompleteFinished(ctx)
	if err != nil {
		s.logger.Error("failed to complete finished bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range completed {
		s.logger.Info("booking completed",
			logger.String("booking_id", b.ID),
			logger.String("performer_id", b.PerformerID),
			logger.String("customer_id", b.CustomerID),
		)
	}
}
