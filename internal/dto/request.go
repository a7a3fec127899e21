package dto

// TrackEventRequest is the public ingestion body. Validation happens in the
// service so each failure maps to its own error.
type TrackEventRequest struct {
	Slug         string `json:"slug" example:"alice"`
	EventType    string `json:"eventType" example:"platform_click" enums:"page_view,save_contact,platform_click"`
	Platform     string `json:"platform,omitempty" example:"instagram"`
	PlatformType string `json:"platformType,omitempty" example:"follow" enums:"follow,review"`
	VisitorID    string `json:"visitorId,omitempty" example:"v_8f14e45f"`
}

// AnalyticsQuery selects the reporting period. all=true wins over year and
// month; month is only read together with year.
type AnalyticsQuery struct {
	Year  string `form:"year" example:"2025"`
	Month string `form:"month" example:"6"`
	All   string `form:"all" example:"true"`
}
