package ports

import (
	"context"
	"time"

	"github.com/stpnv0/StageBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Confirm(ctx context.Context, id, performerID string) (*domain.Booking, error)
	Transition(ctx context.Context, id string, from []domain.BookingStatus, to domain.BookingStatus, performerNotes *string) (*domain.Booking, error)
	CompleteFinished(ctx context.Context, now time.Time) ([]*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	ListByPerformer(ctx context.Context, performerID string) ([]*domain.Booking, error)
}
