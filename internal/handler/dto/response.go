package dto

import (
	"time"

	"github.com/stpnv0/StageBooker/internal/domain"
)

const dateLayout = "2006-01-02"

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

type PerformerResponse struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id"`
	StageName       string   `json:"stage_name"`
	Bio             string   `json:"bio"`
	ExperienceYears int      `json:"experience_years"`
	BasePrice       float64  `json:"base_price"`
	City            string   `json:"location_city"`
	State           string   `json:"location_state"`
	VideoReelURL    *string  `json:"video_reel_url,omitempty"`
	PopularityScore int      `json:"popularity_score"`
	TotalBookings   int      `json:"total_bookings"`
	AverageRating   float64  `json:"average_rating"`
	IsVerified      bool     `json:"is_verified"`
	IsAvailable     bool     `json:"is_available"`
	Categories      []string `json:"categories"`
	UpdatedAt       string   `json:"updated_at"`
}

type OwnProfileResponse struct {
	Profile *PerformerResponse `json:"profile"`
}

type BookingResponse struct {
	ID                  string  `json:"id"`
	CustomerID          string  `json:"customer_id"`
	PerformerID         string  `json:"performer_id"`
	PerformerName       string  `json:"performer_name,omitempty"`
	EventDate           string  `json:"event_date"`
	EventTime           string  `json:"event_time"`
	DurationHours       float64 `json:"event_duration_hours"`
	EventType           string  `json:"event_type"`
	EventLocation       string  `json:"event_location"`
	EventCity           string  `json:"event_city"`
	EventState          string  `json:"event_state"`
	TotalAmount         float64 `json:"total_amount"`
	Status              string  `json:"status"`
	SpecialRequirements *string `json:"special_requirements,omitempty"`
	CustomerNotes       *string `json:"customer_notes,omitempty"`
	PerformerNotes      *string `json:"performer_notes,omitempty"`
	CreatedAt           string  `json:"created_at"`
}

type BookingListResponse struct {
	Bookings     []BookingResponse `json:"bookings"`
	PendingCount int               `json:"pending_count"`
}

type MeResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	UserType string  `json:"user_type"`
	Phone    *string `json:"phone,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
	}
}

func ToPerformerResponse(p *domain.PerformerWithCategories) PerformerResponse {
	cats := p.Categories
	if cats == nil {
		cats = []string{}
	}
	return PerformerResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		StageName:       p.StageName,
		Bio:             p.Bio,
		ExperienceYears: p.ExperienceYears,
		BasePrice:       p.BasePrice,
		City:            p.City,
		State:           p.State,
		VideoReelURL:    p.VideoReelURL,
		PopularityScore: p.PopularityScore,
		TotalBookings:   p.TotalBookings,
		AverageRating:   p.AverageRating,
		IsVerified:      p.IsVerified,
		IsAvailable:     p.IsAvailable,
		Categories:      cats,
		UpdatedAt:       p.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                  b.ID,
		CustomerID:          b.CustomerID,
		PerformerID:         b.PerformerID,
		EventDate:           b.EventDate.Format(dateLayout),
		EventTime:           b.EventTime,
		DurationHours:       b.DurationHours,
		EventType:           b.EventType,
		EventLocation:       b.EventLocation,
		EventCity:           b.EventCity,
		EventState:          b.EventState,
		TotalAmount:         b.TotalAmount,
		Status:              string(b.Status),
		SpecialRequirements: b.SpecialRequirements,
		CustomerNotes:       b.CustomerNotes,
		PerformerNotes:      b.PerformerNotes,
		CreatedAt:           b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingListResponse(l *domain.BookingList) BookingListResponse {
	bookings := make([]BookingResponse, 0, len(l.Bookings))
	for _, b := range l.Bookings {
		resp := ToBookingResponse(&b.Booking)
		resp.PerformerName = b.PerformerName
		bookings = append(bookings, resp)
	}
	return BookingListResponse{Bookings: bookings, PendingCount: l.PendingCount}
}

func ToMeResponse(p *domain.Profile) MeResponse {
	return MeResponse{
		ID:       p.ID,
		Email:    p.Email,
		FullName: p.FullName,
		UserType: string(p.Role),
		Phone:    p.Phone,
	}
}
