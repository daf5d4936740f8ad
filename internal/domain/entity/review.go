package entity

import (
	"time"
)

// Review is a rating (and for verified users, an optional text) left on an album.
// Exactly one of UserID and GuestIdentifier is set.
type Review struct {
	ID              int64
	AlbumID         int64
	UserID          *string // Profile ID of a verified reviewer.
	GuestIdentifier *string // Anonymous token of a guest reviewer.
	Rating          int
	ReviewText      *string
	IsVerified      bool
	VideoURL        *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Author carries the profile display fields for verified reviews when loaded for listing.
	Author *ReviewAuthor
}

// ReviewAuthor is the subset of a profile shown next to a review.
type ReviewAuthor struct {
	Email     *string
	FirstName *string
	LastName  *string
	AvatarURL *string
}

// Reviewer identifies who submits a review: a verified profile or a guest, never both.
type Reviewer struct {
	UserID  string
	GuestID string
}

// VerifiedReviewer returns a Reviewer bound to a profile ID.
func VerifiedReviewer(userID string) Reviewer {
	return Reviewer{UserID: userID}
}

// GuestReviewer returns a Reviewer bound to a guest identifier.
func GuestReviewer(guestID string) Reviewer {
	return Reviewer{GuestID: guestID}
}

// IsVerified reports whether the reviewer is a resolved profile.
func (r Reviewer) IsVerified() bool {
	return r.UserID != ""
}

// Valid reports whether exactly one identity is set.
func (r Reviewer) Valid() bool {
	return (r.UserID == "") != (r.GuestID == "")
}

// Apply stamps the reviewer identity onto a review, clearing the other identity column.
func (r Reviewer) Apply(review *Review) {
	if r.IsVerified() {
		userID := r.UserID
		review.UserID = &userID
		review.GuestIdentifier = nil
		review.IsVerified = true

		return
	}

	guestID := r.GuestID
	review.GuestIdentifier = &guestID
	review.UserID = nil
	review.IsVerified = false
}
