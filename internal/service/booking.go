package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stpnv0/StageBooker/internal/domain"
	"github.com/stpnv0/StageBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo   ports.BookingRepo
	performerRepo ports.PerformerRepo
	publisher     ports.BookingPublisher
	validate      *validator.Validate
	logger        logger.Logger
	now           func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	performerRepo ports.PerformerRepo,
	publisher ports.BookingPublisher,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:   bookingRepo,
		performerRepo: performerRepo,
		publisher:     publisher,
		validate:      newValidator(),
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Submit creates a pending booking request from a customer to a performer.
// Overlapping requests for the same performer and slot are all accepted.
func (s *BookingService) Submit(
	ctx context.Context,
	customerID, performerID string,
	input domain.CreateBookingInput,
) (_ *domain.Booking, err error) {
	ctx, span := startSpan(ctx, "BookingService.Submit")
	defer func() { endSpan(span, err) }()

	if err = validateInput(s.validate, input); err != nil {
		return nil, err
	}

	performer, err := s.performerRepo.GetByID(ctx, performerID)
	if err != nil {
		return nil, fmt.Errorf("get performer: %w", err)
	}
	if !performer.IsAvailable {
		return nil, domain.ErrPerformerUnavailable
	}

	now := s.now()
	booking := &domain.Booking{
		ID:                  uuid.New().String(),
		CustomerID:          customerID,
		PerformerID:         performer.ID,
		EventDate:           input.EventDate,
		EventTime:           input.EventTime,
		DurationHours:       input.DurationHours,
		EventType:           input.EventType,
		EventLocation:       input.EventLocation,
		EventCity:           input.EventCity,
		EventState:          input.EventState,
		TotalAmount:         domain.TotalAmount(performer.BasePrice, input.DurationHours),
		Status:              domain.BookingStatusPending,
		SpecialRequirements: input.SpecialRequirements,
		CustomerNotes:       input.CustomerNotes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("performer_id", booking.PerformerID),
		logger.String("customer_id", customerID),
	)

	s.publisher.Publish(context.WithoutCancel(ctx), domain.NewBookingEvent(domain.BookingCreated, customerID, booking))

	return booking, nil
}

// Confirm accepts a pending request. The status change and the performer's
// total_bookings increment commit together.
func (s *BookingService) Confirm(ctx context.Context, actor domain.Actor, bookingID string) (_ *domain.Booking, err error) {
	ctx, span := startSpan(ctx, "BookingService.Confirm")
	defer func() { endSpan(span, err) }()

	booking, performer, err := s.performerBooking(ctx, actor, bookingID, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}

	updated, err := s.bookingRepo.Confirm(ctx, booking.ID, performer.ID)
	if err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", updated.ID),
		logger.String("performer_id", performer.ID),
	)

	s.publisher.Publish(context.WithoutCancel(ctx), domain.NewBookingEvent(domain.BookingConfirmed, actor.UserID, updated))

	return updated, nil
}

// Decline turns down a pending request on the performer side.
func (s *BookingService) Decline(
	ctx context.Context,
	actor domain.Actor,
	bookingID string,
	notes *string,
) (_ *domain.Booking, err error) {
	ctx, span := startSpan(ctx, "BookingService.Decline")
	defer func() { endSpan(span, err) }()

	booking, performer, err := s.performerBooking(ctx, actor, bookingID, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}

	updated, err := s.bookingRepo.Transition(
		ctx, booking.ID,
		[]domain.BookingStatus{domain.BookingStatusPending},
		domain.BookingStatusCancelled,
		notes,
	)
	if err != nil {
		return nil, fmt.Errorf("decline booking: %w", err)
	}

	s.logger.Info("booking declined",
		logger.String("booking_id", updated.ID),
		logger.String("performer_id", performer.ID),
	)

	s.publisher.Publish(context.WithoutCancel(ctx), domain.NewBookingEvent(domain.BookingDeclined, actor.UserID, updated))

	return updated, nil
}

// Cancel withdraws a pending or confirmed booking on the customer side.
func (s *BookingService) Cancel(ctx context.Context, actor domain.Actor, bookingID string) (_ *domain.Booking, err error) {
	ctx, span := startSpan(ctx, "BookingService.Cancel")
	defer func() { endSpan(span, err) }()

	if actor.Role != domain.RoleCustomer {
		return nil, fmt.Errorf("%w: only customers cancel bookings", domain.ErrForbidden)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.CustomerID != actor.UserID {
		return nil, fmt.Errorf("%w: booking belongs to another customer", domain.ErrForbidden)
	}
	if !domain.ActorCanTransition(actor.Role, booking.Status, domain.BookingStatusCancelled) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, booking.Status, domain.BookingStatusCancelled)
	}

	updated, err := s.bookingRepo.Transition(
		ctx, booking.ID,
		domain.ActiveStatuses,
		domain.BookingStatusCancelled,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", updated.ID),
		logger.String("customer_id", actor.UserID),
	)

	s.publisher.Publish(context.WithoutCancel(ctx), domain.NewBookingEvent(domain.BookingCancelled, actor.UserID, updated))

	return updated, nil
}

// CompleteFinished moves confirmed bookings whose event has ended to completed.
func (s *BookingService) CompleteFinished(ctx context.Context) (_ []*domain.Booking, err error) {
	ctx, span := startSpan(ctx, "BookingService.CompleteFinished")
	defer func() { endSpan(span, err) }()

	completed, err := s.bookingRepo.CompleteFinished(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("complete finished: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("finished bookings completed",
			logger.Int("count", len(completed)),
		)
	}

	for _, b := range completed {
		s.publisher.Publish(context.WithoutCancel(ctx), domain.NewBookingEvent(domain.BookingCompleted, "", b))
	}

	return completed, nil
}

// ListForActor returns the bookings visible on the actor's dashboard, ordered by event date.
func (s *BookingService) ListForActor(ctx context.Context, actor domain.Actor) (_ *domain.BookingList, err error) {
	ctx, span := startSpan(ctx, "BookingService.ListForActor")
	defer func() { endSpan(span, err) }()

	switch actor.Role {
	case domain.RoleCustomer:
		return s.listForCustomer(ctx, actor.UserID)
	case domain.RolePerformer:
		return s.listForPerformer(ctx, actor.UserID)
	default:
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrForbidden, actor.Role)
	}
}

func (s *BookingService) listForCustomer(ctx context.Context, customerID string) (*domain.BookingList, error) {
	bookings, err := s.bookingRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by customer: %w", err)
	}

	ids := make([]string, 0, len(bookings))
	seen := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.PerformerID]; ok {
			continue
		}
		seen[b.PerformerID] = struct{}{}
		ids = append(ids, b.PerformerID)
	}

	names := map[string]string{}
	if len(ids) > 0 {
		names, err = s.performerRepo.StageNames(ctx, ids)
		if err != nil {
			// names are decoration; the list is still useful without them
			s.logger.Warn("failed to resolve performer names",
				logger.String("customer_id", customerID),
				logger.String("error", err.Error()),
			)
			names = map[string]string{}
		}
	}

	return newBookingList(bookings, names), nil
}

func (s *BookingService) listForPerformer(ctx context.Context, userID string) (*domain.BookingList, error) {
	performer, err := s.performerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get performer: %w", err)
	}
	if performer == nil {
		return newBookingList(nil, nil), nil
	}

	bookings, err := s.bookingRepo.ListByPerformer(ctx, performer.ID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by performer: %w", err)
	}

	names := map[string]string{performer.ID: performer.StageName}
	return newBookingList(bookings, names), nil
}

// performerBooking loads a booking for a performer-side transition and checks
// that the actor is the performer it was addressed to.
func (s *BookingService) performerBooking(
	ctx context.Context,
	actor domain.Actor,
	bookingID string,
	to domain.BookingStatus,
) (*domain.Booking, *domain.PerformerProfile, error) {
	if actor.Role != domain.RolePerformer {
		return nil, nil, fmt.Errorf("%w: only performers answer booking requests", domain.ErrForbidden)
	}

	performer, err := s.performerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("get performer: %w", err)
	}
	if performer == nil {
		return nil, nil, fmt.Errorf("%w: no performer profile", domain.ErrForbidden)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.PerformerID != performer.ID {
		return nil, nil, fmt.Errorf("%w: booking addressed to another performer", domain.ErrForbidden)
	}
	if !domain.ActorCanTransition(actor.Role, booking.Status, to) {
		return nil, nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, booking.Status, to)
	}

	return booking, performer, nil
}

func newBookingList(bookings []*domain.Booking, names map[string]string) *domain.BookingList {
	list := &domain.BookingList{Bookings: make([]*domain.BookingWithPerformer, 0, len(bookings))}
	for _, b := range bookings {
		if b.Status == domain.BookingStatusPending {
			list.PendingCount++
		}
		list.Bookings = append(list.Bookings, &domain.BookingWithPerformer{
			Booking:       *b,
			PerformerName: names[b.PerformerID],
		})
	}
	return list
}
