package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/StageBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CategoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCategoryRepo(db *dbpg.DB, strategy retry.Strategy) *CategoryRepository {
	return &CategoryRepository{db: db, strategy: strategy}
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	query := `SELECT id, name, description, icon, created_at
			  FROM categories
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var res []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

// NamesByPerformers resolves category names for a set of performers in one
// round trip. Performers without categories are absent from the map.
func (r *CategoryRepository) NamesByPerformers(ctx context.Context, performerIDs []string) (map[string][]string, error) {
	query := `SELECT pc.performer_id, c.name
			  FROM performer_categories pc
			  JOIN categories c ON c.id = pc.category_id
			  WHERE pc.performer_id = ANY($1::uuid[])
			  ORDER BY c.name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(performerIDs))
	if err != nil {
		return nil, fmt.Errorf("list performer categories: %w", err)
	}
	defer rows.Close()

	res := make(map[string][]string, len(performerIDs))
	for rows.Next() {
		var performerID, name string
		if err = rows.Scan(&performerID, &name); err != nil {
			return nil, fmt.Errorf("scan performer category: %w", err)
		}
		res[performerID] = append(res[performerID], name)
	}

	return res, rows.Err()
}
