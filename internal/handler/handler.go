package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StageBooker/internal/domain"
	"github.com/stpnv0/StageBooker/internal/handler/dto"
	"github.com/stpnv0/StageBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type CatalogSvc interface {
	Browse(ctx context.Context, q domain.CatalogQuery) ([]*domain.PerformerWithCategories, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

type BookingSvc interface {
	Submit(ctx context.Context, customerID, performerID string, input domain.CreateBookingInput) (*domain.Booking, error)
	Confirm(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error)
	Decline(ctx context.Context, actor domain.Actor, bookingID string, notes *string) (*domain.Booking, error)
	Cancel(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error)
	ListForActor(ctx context.Context, actor domain.Actor) (*domain.BookingList, error)
}

type ProfileSvc interface {
	Me(ctx context.Context, userID string) (*domain.Profile, error)
	ForOwner(ctx context.Context, userID string) (*domain.PerformerWithCategories, error)
	Save(ctx context.Context, ownerID, existingID string, input domain.ProfileInput) (*domain.PerformerWithCategories, error)
}

type Handler struct {
	catalogService CatalogSvc
	bookingService BookingSvc
	profileService ProfileSvc
	now            func() time.Time
}

func NewHandler(catalogService CatalogSvc, bookingService BookingSvc, profileService ProfileSvc) *Handler {
	return &Handler{
		catalogService: catalogService,
		bookingService: bookingService,
		profileService: profileService,
		now:            time.Now,
	}
}

// Catalog

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, dto.ToCategoryResponse(cat))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) BrowsePerformers(c *ginext.Context) {
	var req dto.CatalogQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	performers, err := h.catalogService.Browse(c.Request.Context(), domain.CatalogQuery{
		Text:       req.Text,
		CategoryID: req.Category,
		City:       req.City,
		Sort:       domain.SortKey(req.Sort),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PerformerResponse, 0, len(performers))
	for _, p := range performers {
		resp = append(resp, dto.ToPerformerResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

// Profiles

func (h *Handler) Me(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Me(c.Request.Context(), actor.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeResponse(profile))
}

func (h *Handler) GetOwnProfile(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	p, err := h.profileService.ForOwner(c.Request.Context(), actor.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var resp dto.OwnProfileResponse
	if p != nil {
		pr := dto.ToPerformerResponse(p)
		resp.Profile = &pr
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SaveOwnProfile(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	existing, err := h.profileService.ForOwner(c.Request.Context(), actor.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	existingID := ""
	status := http.StatusCreated
	if existing != nil {
		existingID = existing.ID
		status = http.StatusOK
	}

	p, err := h.profileService.Save(c.Request.Context(), actor.UserID, existingID, domain.ProfileInput{
		StageName:       req.StageName,
		Bio:             req.Bio,
		ExperienceYears: req.ExperienceYears,
		BasePrice:       req.BasePrice,
		City:            req.City,
		State:           req.State,
		CategoryIDs:     req.CategoryIDs,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(status, dto.ToPerformerResponse(p))
}

// Bookings

func (h *Handler) SubmitBooking(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	performerID := c.Param("id")
	if _, err := uuid.Parse(performerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid performer id"})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(dateLayout, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected YYYY-MM-DD",
		})
		return
	}
	today := h.now().UTC().Truncate(24 * time.Hour)
	if eventDate.Before(today) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "event_date must not be in the past"})
		return
	}
	if _, err = time.Parse(timeLayout, req.EventTime); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_time format, expected HH:MM",
		})
		return
	}

	booking, err := h.bookingService.Submit(c.Request.Context(), actor.UserID, performerID, domain.CreateBookingInput{
		EventDate:           eventDate,
		EventTime:           req.EventTime,
		DurationHours:       req.DurationHours,
		EventType:           req.EventType,
		EventLocation:       req.EventLocation,
		EventCity:           req.EventCity,
		EventState:          req.EventState,
		SpecialRequirements: req.SpecialRequirements,
		CustomerNotes:       req.CustomerNotes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	list, err := h.bookingService.ListForActor(c.Request.Context(), actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingListResponse(list))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	h.transition(c, func(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
		return h.bookingService.Confirm(ctx, actor, id)
	})
}

func (h *Handler) DeclineBooking(c *ginext.Context) {
	// Notes are optional. Chunked bodies report no length, so read whatever
	// arrives and treat an empty stream as a decline without notes.
	var req dto.DeclineRequest
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	h.transition(c, func(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
		return h.bookingService.Decline(ctx, actor, id, req.PerformerNotes)
	})
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	h.transition(c, func(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
		return h.bookingService.Cancel(ctx, actor, id)
	})
}

func (h *Handler) transition(
	c *ginext.Context,
	apply func(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error),
) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := apply(c.Request.Context(), actor, bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) actor(c *ginext.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return domain.Actor{}, false
	}
	return actor, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrPerformerNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrPerformerProfileExists),
		errors.Is(err, domain.ErrPerformerUnavailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}
