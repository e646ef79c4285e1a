package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/StageBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, customer_id, performer_id, event_date, event_time, event_duration_hours,
		event_type, event_location, event_city, event_state, total_amount, status,
		special_requirements, customer_notes, performer_notes, created_at, updated_at`

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB, strategy retry.Strategy) *BookingRepository {
	return &BookingRepository{db: db, strategy: strategy}
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var b domain.Booking
	err := s.Scan(
		&b.ID, &b.CustomerID, &b.PerformerID, &b.EventDate, &b.EventTime, &b.DurationHours,
		&b.EventType, &b.EventLocation, &b.EventCity, &b.EventState, &b.TotalAmount, &b.Status,
		&b.SpecialRequirements, &b.CustomerNotes, &b.PerformerNotes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.CustomerID, b.PerformerID, b.EventDate, b.EventTime, b.DurationHours,
		b.EventType, b.EventLocation, b.EventCity, b.EventState, b.TotalAmount, b.Status,
		b.SpecialRequirements, b.CustomerNotes, b.PerformerNotes, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("insert booking: %w", domain.ErrProfileNotFound)
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// Confirm moves a pending booking to confirmed and bumps the performer's
// total_bookings in the same transaction. The increment is done by the
// database, so concurrent confirmations cannot lose updates.
func (r *BookingRepository) Confirm(ctx context.Context, id, performerID string) (*domain.Booking, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $3, updated_at = now()
			  WHERE id = $1
			    AND performer_id = $2
			    AND status = $4
			  RETURNING ` + bookingColumns
	b, err := scanBooking(tx.QueryRowContext(
		ctx, query, id, performerID,
		domain.BookingStatusConfirmed, domain.BookingStatusPending,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transitionFailure(ctx, tx, id)
		}
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	counterQuery := `UPDATE performer_profiles
					 SET total_bookings = total_bookings + 1, updated_at = now()
					 WHERE id = $1`
	res, err := tx.ExecContext(ctx, counterQuery, performerID)
	if err != nil {
		return nil, fmt.Errorf("increment total bookings: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("performer rows affected: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrPerformerNotFound
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit confirm: %w", err)
	}

	return b, nil
}

// Transition applies a status change only if the booking is still in one of
// the expected statuses. performerNotes, when set, replaces the stored notes.
func (r *BookingRepository) Transition(
	ctx context.Context,
	id string,
	from []domain.BookingStatus,
	to domain.BookingStatus,
	performerNotes *string,
) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2,
			      performer_notes = COALESCE($4::text, performer_notes),
			      updated_at = now()
			  WHERE id = $1
			    AND status = ANY($3)
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, to, pq.Array(from), performerNotes)
	if err != nil {
		return nil, fmt.Errorf("transition booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transitionFailure(ctx, r.db.Master, id)
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// CompleteFinished marks every confirmed booking whose event ended before now
// as completed. Event date and time are stored as UTC wall-clock values.
func (r *BookingRepository) CompleteFinished(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1
			    AND event_date + event_time::time
			        + make_interval(secs => (event_duration_hours * 3600)::double precision) < $3::timestamp
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusConfirmed, domain.BookingStatusCompleted, now.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("complete finished: %w", err)
	}

	return scanBookings(rows)
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE customer_id = $1
			  ORDER BY event_date ASC, event_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by customer: %w", err)
	}

	return scanBookings(rows)
}

func (r *BookingRepository) ListByPerformer(ctx context.Context, performerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE performer_id = $1
			  ORDER BY event_date ASC, event_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, performerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by performer: %w", err)
	}

	return scanBookings(rows)
}

// transitionFailure explains why a conditional update touched no rows.
func transitionFailure(ctx context.Context, q rowQuerier, id string) error {
	var status domain.BookingStatus
	err := q.QueryRowContext(ctx, `SELECT status FROM bookings WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("check booking status: %w", err)
	}
	return fmt.Errorf("%w: booking is %s", domain.ErrInvalidTransition, status)
}
