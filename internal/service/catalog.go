package service

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/stpnv0/StageBooker/internal/domain"
	"github.com/stpnv0/StageBooker/internal/service/ports"
)

type CatalogService struct {
	performerRepo ports.PerformerRepo
	categoryRepo  ports.CategoryRepo
}

func NewCatalogService(performerRepo ports.PerformerRepo, categoryRepo ports.CategoryRepo) *CatalogService {
	return &CatalogService{
		performerRepo: performerRepo,
		categoryRepo:  categoryRepo,
	}
}

// ListAvailable fetches every available performer with its category names.
// Categories for the whole page are resolved in one batched query.
func (s *CatalogService) ListAvailable(ctx context.Context) (_ []*domain.PerformerWithCategories, err error) {
	ctx, span := startSpan(ctx, "CatalogService.ListAvailable")
	defer func() { endSpan(span, err) }()

	performers, err := s.performerRepo.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list performers: %w", err)
	}

	ids := make([]string, len(performers))
	for i, p := range performers {
		ids[i] = p.ID
	}

	names := map[string][]string{}
	if len(ids) > 0 {
		names, err = s.categoryRepo.NamesByPerformers(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("resolve categories: %w", err)
		}
	}

	// the caller went away while we were fetching: drop the snapshot
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	res := make([]*domain.PerformerWithCategories, len(performers))
	for i, p := range performers {
		cats := names[p.ID]
		if cats == nil {
			cats = []string{}
		}
		res[i] = &domain.PerformerWithCategories{PerformerProfile: *p, Categories: cats}
	}

	return res, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	cats, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// Browse lists available performers and applies the customer's filters.
func (s *CatalogService) Browse(ctx context.Context, q domain.CatalogQuery) ([]*domain.PerformerWithCategories, error) {
	performers, err := s.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	var categories []*domain.Category
	if q.CategoryID != "" {
		if categories, err = s.ListCategories(ctx); err != nil {
			return nil, err
		}
	}

	return FilterPerformers(performers, categories, q), nil
}

// FilterPerformers narrows and orders a catalog snapshot. It does not touch the
// input slice. All active filters must match; ties keep their input order.
func FilterPerformers(
	performers []*domain.PerformerWithCategories,
	categories []*domain.Category,
	q domain.CatalogQuery,
) []*domain.PerformerWithCategories {
	text := strings.ToLower(q.Text)
	city := strings.ToLower(q.City)

	var categoryName string
	categoryActive := false
	if q.CategoryID != "" {
		for _, c := range categories {
			if c.ID == q.CategoryID {
				categoryName = c.Name
				categoryActive = true
				break
			}
		}
	}

	res := make([]*domain.PerformerWithCategories, 0, len(performers))
	for _, p := range performers {
		if text != "" &&
			!strings.Contains(strings.ToLower(p.StageName), text) &&
			!strings.Contains(strings.ToLower(p.Bio), text) {
			continue
		}
		if categoryActive && !slices.Contains(p.Categories, categoryName) {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(p.City), city) {
			continue
		}
		res = append(res, p)
	}

	switch q.Sort {
	case domain.SortByRating:
		sort.SliceStable(res, func(i, j int) bool { return res[i].AverageRating > res[j].AverageRating })
	case domain.SortByPrice:
		sort.SliceStable(res, func(i, j int) bool { return res[i].BasePrice < res[j].BasePrice })
	default:
		sort.SliceStable(res, func(i, j int) bool { return res[i].PopularityScore > res[j].PopularityScore })
	}

	return res
}
