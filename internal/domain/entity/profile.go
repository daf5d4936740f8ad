package entity

import (
	"time"
)

// Profile is the public-facing mirror of an auth provider identity, keyed by the external ID.
type Profile struct {
	ID        string // External identity ID.
	Email     *string
	FirstName *string
	LastName  *string
	AvatarURL *string
	CreatedAt time.Time
}

// User is the internal business record of an auth provider identity.
type User struct {
	ID                   string // Internal identifier (UUID).
	ExternalUserID       string // External identity ID.
	Email                *string
	FirstName            *string
	LastName             *string
	AdditionalContext    *string // Username reported by the provider.
	StripeSubscriptionID *string
	CreatedAt            time.Time
	ModifiedAt           *time.Time
}
