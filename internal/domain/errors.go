package domain

import "errors"

// Client input errors. Surfaced as 4xx and never retried.
var (
	ErrMissingParameter      = errors.New("slug and eventType are required")
	ErrInvalidEventType      = errors.New("invalid event type")
	ErrMissingPlatformFields = errors.New("platform_click events require platform and platformType")
	ErrInvalidPlatformType   = errors.New("platformType must be follow or review")
	ErrOwnerNotFound         = errors.New("owner not found")
	ErrInvalidPeriod         = errors.New("invalid period selector")
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrStoreUnavailable = errors.New("event store unavailable")
)

// IsClientError reports whether err is caused by the caller's input.
func IsClientError(err error) bool {
	for _, target := range []error{
		ErrMissingParameter,
		ErrInvalidEventType,
		ErrMissingPlatformFields,
		ErrInvalidPlatformType,
		ErrOwnerNotFound,
		ErrInvalidPeriod,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
