package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/StageBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const performerColumns = `id, user_id, stage_name, COALESCE(bio, ''), experience_years, base_price,
		COALESCE(location_city, ''), COALESCE(location_state, ''), video_reel_url,
		popularity_score, total_bookings, average_rating, is_verified, is_available,
		created_at, updated_at`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type PerformerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPerformerRepo(db *dbpg.DB, strategy retry.Strategy) *PerformerRepository {
	return &PerformerRepository{db: db, strategy: strategy}
}

func scanPerformer(s scanner) (*domain.PerformerProfile, error) {
	var p domain.PerformerProfile
	err := s.Scan(
		&p.ID, &p.UserID, &p.StageName, &p.Bio, &p.ExperienceYears, &p.BasePrice,
		&p.City, &p.State, &p.VideoReelURL,
		&p.PopularityScore, &p.TotalBookings, &p.AverageRating, &p.IsVerified, &p.IsAvailable,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PerformerRepository) ListAvailable(ctx context.Context) ([]*domain.PerformerProfile, error) {
	query := `SELECT ` + performerColumns + `
			  FROM performer_profiles
			  WHERE is_available = true
			  ORDER BY popularity_score DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list performers: %w", err)
	}
	defer rows.Close()

	var res []*domain.PerformerProfile
	for rows.Next() {
		p, err := scanPerformer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan performer: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func (r *PerformerRepository) GetByID(ctx context.Context, id string) (*domain.PerformerProfile, error) {
	query := `SELECT ` + performerColumns + `
			  FROM performer_profiles
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get performer: %w", err)
	}

	p, err := scanPerformer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPerformerNotFound
		}
		return nil, fmt.Errorf("scan performer: %w", err)
	}

	return p, nil
}

func (r *PerformerRepository) GetByUserID(ctx context.Context, userID string) (*domain.PerformerProfile, error) {
	query := `SELECT ` + performerColumns + `
			  FROM performer_profiles
			  WHERE user_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get performer by user: %w", err)
	}

	p, err := scanPerformer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan performer: %w", err)
	}

	return p, nil
}

func (r *PerformerRepository) Create(ctx context.Context, p *domain.PerformerProfile, categoryIDs []string) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO performer_profiles
				(id, user_id, stage_name, bio, experience_years, base_price,
				 location_city, location_state, is_available, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.ExecContext(
		ctx, query,
		p.ID, p.UserID, p.StageName, p.Bio, p.ExperienceYears, p.BasePrice,
		p.City, p.State, p.IsAvailable, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		switch pgCode(err) {
		case pgUniqueViolation:
			return domain.ErrPerformerProfileExists
		case pgForeignKeyViolation:
			return domain.ErrProfileNotFound
		}
		return fmt.Errorf("insert performer: %w", err)
	}

	if err = insertCategories(ctx, tx, p.ID, categoryIDs); err != nil {
		return err
	}

	return tx.Commit()
}

// Update writes the editable fields and swaps the category set in one
// transaction, so a failure never leaves the performer half-categorised.
func (r *PerformerRepository) Update(ctx context.Context, p *domain.PerformerProfile, categoryIDs []string) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE performer_profiles
			  SET stage_name = $2, bio = $3, experience_years = $4, base_price = $5,
			      location_city = $6, location_state = $7, updated_at = $8
			  WHERE id = $1`
	res, err := tx.ExecContext(
		ctx, query,
		p.ID, p.StageName, p.Bio, p.ExperienceYears, p.BasePrice,
		p.City, p.State, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update performer: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("performer rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrPerformerNotFound
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM performer_categories WHERE performer_id = $1`, p.ID); err != nil {
		return fmt.Errorf("delete performer categories: %w", err)
	}

	if err = insertCategories(ctx, tx, p.ID, categoryIDs); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PerformerRepository) StageNames(ctx context.Context, ids []string) (map[string]string, error) {
	query := `SELECT id, stage_name
			  FROM performer_profiles
			  WHERE id = ANY($1::uuid[])`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list stage names: %w", err)
	}
	defer rows.Close()

	res := make(map[string]string, len(ids))
	for rows.Next() {
		var id, name string
		if err = rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan stage name: %w", err)
		}
		res[id] = name
	}

	return res, rows.Err()
}

func insertCategories(ctx context.Context, tx execer, performerID string, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	query := `INSERT INTO performer_categories (performer_id, category_id)
			  SELECT $1, unnest($2::uuid[])`
	if _, err := tx.ExecContext(ctx, query, performerID, pq.Array(categoryIDs)); err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("insert performer categories: %w", err)
	}

	return nil
}
