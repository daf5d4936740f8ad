// Package constants contains values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// AlbumPageSize is the fixed number of albums returned per catalog page.
const AlbumPageSize = 50

const (
	MinRating = 1
	MaxRating = 5
)

// Identity lifecycle event types delivered by the auth provider webhook.
const (
	IdentityEventCreated = "user.created"
	IdentityEventUpdated = "user.updated"
	IdentityEventDeleted = "user.deleted"
)

// ReviewEventSubmitted is the type of the event published after a review is stored.
const ReviewEventSubmitted = "review.submitted"
