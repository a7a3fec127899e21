package consumer

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heyemlee/quicklink-app/internal/domain"
)

var errMissingIdentity = errors.New("message is missing id, ownerId or createdAt")

// JSONEventParser decodes messages written by the SQS publisher
type JSONEventParser struct{}

func NewJSONEventParser() *JSONEventParser {
	return &JSONEventParser{}
}

// Parse decodes and re-validates an event. Messages that could never be
// stored are reported as errors so the caller can drop them.
func (p *JSONEventParser) Parse(body []byte) (*domain.Event, error) {
	var msg domain.Event
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	if msg.ID == "" || msg.OwnerID == "" || msg.CreatedAt.IsZero() {
		return nil, errMissingIdentity
	}
	if !msg.EventType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidEventType, msg.EventType)
	}

	if msg.EventType == domain.EventTypePlatformClick {
		if msg.PlatformName() == "" || msg.PlatformKind() == "" {
			return nil, domain.ErrMissingPlatformFields
		}
		if !msg.PlatformKind().Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPlatformType, msg.PlatformKind())
		}
	}

	event := domain.NewEvent(msg.OwnerID, msg.EventType, msg.PlatformName(), msg.PlatformKind(), msg.Visitor())
	event.ID = msg.ID
	event.CreatedAt = msg.CreatedAt

	return event, nil
}
