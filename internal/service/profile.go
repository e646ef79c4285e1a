package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stpnv0/StageBooker/internal/domain"
	"github.com/stpnv0/StageBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ProfileService struct {
	profileRepo   ports.ProfileRepo
	performerRepo ports.PerformerRepo
	categoryRepo  ports.CategoryRepo
	validate      *validator.Validate
	logger        logger.Logger
}

func NewProfileService(
	profileRepo ports.ProfileRepo,
	performerRepo ports.PerformerRepo,
	categoryRepo ports.CategoryRepo,
	logger logger.Logger,
) *ProfileService {
	return &ProfileService{
		profileRepo:   profileRepo,
		performerRepo: performerRepo,
		categoryRepo:  categoryRepo,
		validate:      newValidator(),
		logger:        logger,
	}
}

func (s *ProfileService) Me(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profileRepo.GetByID(ctx, userID)
}

// ForOwner returns the performer profile owned by userID, or nil if the
// performer has not created one yet.
func (s *ProfileService) ForOwner(ctx context.Context, userID string) (*domain.PerformerWithCategories, error) {
	p, err := s.performerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get performer: %w", err)
	}
	if p == nil {
		return nil, nil
	}
	return s.withCategories(ctx, p)
}

// Save creates the owner's performer profile when existingID is empty and
// updates it otherwise. The linked category set always ends up exactly equal
// to input.CategoryIDs.
func (s *ProfileService) Save(
	ctx context.Context,
	ownerID, existingID string,
	input domain.ProfileInput,
) (_ *domain.PerformerWithCategories, err error) {
	ctx, span := startSpan(ctx, "ProfileService.Save")
	defer func() { endSpan(span, err) }()

	if err = validateInput(s.validate, input); err != nil {
		return nil, err
	}
	categoryIDs := dedupe(input.CategoryIDs)

	var p *domain.PerformerProfile
	if existingID == "" {
		p, err = s.create(ctx, ownerID, input, categoryIDs)
	} else {
		p, err = s.update(ctx, ownerID, existingID, input, categoryIDs)
	}
	if err != nil {
		return nil, err
	}

	return s.withCategories(ctx, p)
}

func (s *ProfileService) create(
	ctx context.Context,
	ownerID string,
	input domain.ProfileInput,
	categoryIDs []string,
) (*domain.PerformerProfile, error) {
	now := time.Now().UTC()
	p := &domain.PerformerProfile{
		ID:          uuid.New().String(),
		UserID:      ownerID,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	applyProfileInput(p, input)

	if err := s.performerRepo.Create(ctx, p, categoryIDs); err != nil {
		return nil, fmt.Errorf("create performer: %w", err)
	}

	s.logger.Info("performer profile created",
		logger.String("performer_id", p.ID),
		logger.String("user_id", ownerID),
		logger.Int("categories", len(categoryIDs)),
	)

	return p, nil
}

func (s *ProfileService) update(
	ctx context.Context,
	ownerID, existingID string,
	input domain.ProfileInput,
	categoryIDs []string,
) (*domain.PerformerProfile, error) {
	p, err := s.performerRepo.GetByID(ctx, existingID)
	if err != nil {
		return nil, fmt.Errorf("get performer: %w", err)
	}
	if p.UserID != ownerID {
		return nil, fmt.Errorf("%w: performer profile belongs to another user", domain.ErrForbidden)
	}

	applyProfileInput(p, input)
	p.UpdatedAt = time.Now().UTC()

	if err = s.performerRepo.Update(ctx, p, categoryIDs); err != nil {
		return nil, fmt.Errorf("update performer: %w", err)
	}

	s.logger.Info("performer profile updated",
		logger.String("performer_id", p.ID),
		logger.Int("categories", len(categoryIDs)),
	)

	return p, nil
}

func (s *ProfileService) withCategories(ctx context.Context, p *domain.PerformerProfile) (*domain.PerformerWithCategories, error) {
	names, err := s.categoryRepo.NamesByPerformers(ctx, []string{p.ID})
	if err != nil {
		return nil, fmt.Errorf("resolve categories: %w", err)
	}

	cats := names[p.ID]
	if cats == nil {
		cats = []string{}
	}
	return &domain.PerformerWithCategories{PerformerProfile: *p, Categories: cats}, nil
}

// applyProfileInput copies the editable fields only; aggregates, verification
// and availability are owned by other processes.
func applyProfileInput(p *domain.PerformerProfile, in domain.ProfileInput) {
	p.StageName = in.StageName
	p.Bio = in.Bio
	p.ExperienceYears = in.ExperienceYears
	p.BasePrice = in.BasePrice
	p.City = in.City
	p.State = in.State
}

func dedupe(ids []string) []string {
	res := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || slices.Contains(res, id) {
			continue
		}
		res = append(res, id)
	}
	return res
}
