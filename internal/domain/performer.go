package domain

import "time"

// PerformerProfile is the public face of a performer account.
// TotalBookings and AverageRating are aggregates: they only move through
// booking and review transitions, never through profile edits.
type PerformerProfile struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	StageName       string    `json:"stage_name"`
	Bio             string    `json:"bio"`
	ExperienceYears int       `json:"experience_years"`
	BasePrice       float64   `json:"base_price"`
	City            string    `json:"location_city"`
	State           string    `json:"location_state"`
	VideoReelURL    *string   `json:"video_reel_url"`
	PopularityScore int       `json:"popularity_score"`
	TotalBookings   int       `json:"total_bookings"`
	AverageRating   float64   `json:"average_rating"`
	IsVerified      bool      `json:"is_verified"`
	IsAvailable     bool      `json:"is_available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PerformerWithCategories struct {
	PerformerProfile
	Categories []string `json:"categories"`
}

// ProfileInput holds the performer-editable fields.
type ProfileInput struct {
	StageName       string  `validate:"required,max=120"`
	Bio             string  `validate:"max=4000"`
	ExperienceYears int     `validate:"gte=0,lte=100"`
	BasePrice       float64 `validate:"gte=0"`
	City            string  `validate:"max=120"`
	State           string  `validate:"max=120"`
	CategoryIDs     []string
}

type SortKey string

const (
	SortByPopularity SortKey = "popularity"
	SortByRating     SortKey = "rating"
	SortByPrice      SortKey = "price"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortByPopularity, SortByRating, SortByPrice:
		return true
	}
	return false
}

// CatalogQuery is the set of filters a customer applies to the catalog.
// Empty fields are inactive.
type CatalogQuery struct {
	Text       string
	CategoryID string
	City       string
	Sort       SortKey
}
