package domain

import "time"

// Owner is the account behind a public card. Owners are created by the
// profile service; this service only reads them.
type Owner struct {
	ID              string
	Slug            string
	FollowPlatforms PlatformSet
	ReviewPlatforms PlatformSet
	CreatedAt       time.Time
}

// Offers reports whether the owner's card shows platform under the given type.
func (o *Owner) Offers(platformType PlatformType, platform string) bool {
	switch platformType {
	case PlatformTypeFollow:
		return o.FollowPlatforms.Contains(platform)
	case PlatformTypeReview:
		return o.ReviewPlatforms.Contains(platform)
	}
	return false
}

// Session is an authenticated owner session issued by the auth service.
type Session struct {
	OwnerID   string
	ExpiresAt time.Time
}
