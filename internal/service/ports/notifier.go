package ports

import (
	"context"

	"github.com/stpnv0/StageBooker/internal/domain"
)

// BookingPublisher emits booking integration events. Delivery is best effort:
// implementations log failures instead of returning them.
type BookingPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent)
}
