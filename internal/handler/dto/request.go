package dto

type CreateBookingRequest struct {
	EventDate           string  `json:"event_date" binding:"required"`
	EventTime           string  `json:"event_time" binding:"required"`
	DurationHours       float64 `json:"event_duration_hours" binding:"required"`
	EventType           string  `json:"event_type" binding:"required"`
	EventLocation       string  `json:"event_location" binding:"required"`
	EventCity           string  `json:"event_city" binding:"required"`
	EventState          string  `json:"event_state" binding:"required"`
	SpecialRequirements *string `json:"special_requirements"`
	CustomerNotes       *string `json:"customer_notes"`
}

type DeclineRequest struct {
	PerformerNotes *string `json:"performer_notes"`
}

type SaveProfileRequest struct {
	StageName       string   `json:"stage_name" binding:"required"`
	Bio             string   `json:"bio"`
	ExperienceYears int      `json:"experience_years"`
	BasePrice       float64  `json:"base_price"`
	City            string   `json:"location_city"`
	State           string   `json:"location_state"`
	CategoryIDs     []string `json:"category_ids" binding:"dive,uuid"`
}

type CatalogQuery struct {
	Text     string `form:"q"`
	Category string `form:"category" binding:"omitempty,uuid"`
	City     string `form:"city"`
	Sort     string `form:"sort" binding:"omitempty,oneof=popularity rating price"`
}
