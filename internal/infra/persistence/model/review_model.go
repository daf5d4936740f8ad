package model

import (
	"time"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// Exactly one of UserID and GuestIdentifier is set; the per-reviewer
// partial unique indexes are created by the migration.
type ReviewModel struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	AlbumID         int64   `gorm:"not null;index"`
	UserID          *string `gorm:"type:varchar(255);check:chk_reviews_one_identity,(user_id IS NULL) <> (guest_identifier IS NULL)"`
	GuestIdentifier *string `gorm:"type:varchar(255)"`
	Rating          int     `gorm:"not null;check:chk_reviews_rating_range,rating >= 1 AND rating <= 5"`
	ReviewText      *string `gorm:"type:text"`
	IsVerified      bool    `gorm:"not null;default:false"`
	VideoURL        *string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Album *AlbumModel `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE"`
	// Deleting an identity removes its verified reviews with the profile.
	Profile *ProfileModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
