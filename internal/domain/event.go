package domain

import "time"

// EventType is the closed set of visitor interactions recorded for a card.
type EventType string

const (
	EventTypePageView      EventType = "page_view"
	EventTypeSaveContact   EventType = "save_contact"
	EventTypePlatformClick EventType = "platform_click"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypePageView, EventTypeSaveContact, EventTypePlatformClick:
		return true
	}
	return false
}

// PlatformType says whether a platform link asks the visitor to follow or to review.
type PlatformType string

const (
	PlatformTypeFollow PlatformType = "follow"
	PlatformTypeReview PlatformType = "review"
)

func (t PlatformType) Valid() bool {
	return t == PlatformTypeFollow || t == PlatformTypeReview
}

// Event is one recorded visitor interaction. Events are immutable once
// written; Platform and PlatformType are non-nil only for platform clicks.
type Event struct {
	ID           string        `json:"id"`
	OwnerID      string        `json:"ownerId"`
	EventType    EventType     `json:"eventType"`
	Platform     *string       `json:"platform"`
	PlatformType *PlatformType `json:"platformType"`
	VisitorID    *string       `json:"visitorId"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// PlatformName returns the platform id or "" when absent.
func (e *Event) PlatformName() string {
	if e.Platform == nil {
		return ""
	}
	return *e.Platform
}

// PlatformKind returns the platform type or "" when absent.
func (e *Event) PlatformKind() PlatformType {
	if e.PlatformType == nil {
		return ""
	}
	return *e.PlatformType
}

// Visitor returns the visitor id or "" when absent.
func (e *Event) Visitor() string {
	if e.VisitorID == nil {
		return ""
	}
	return *e.VisitorID
}

// NewEvent builds an event for ownerID, dropping platform fields unless the
// event is a platform click and treating empty strings as absent.
func NewEvent(ownerID string, eventType EventType, platform string, platformType PlatformType, visitorID string) *Event {
	event := &Event{
		OwnerID:   ownerID,
		EventType: eventType,
	}

	if eventType == EventTypePlatformClick {
		event.Platform = optionalString(platform)
		if platformType != "" {
			pt := platformType
			event.PlatformType = &pt
		}
	}

	event.VisitorID = optionalString(visitorID)

	return event
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
