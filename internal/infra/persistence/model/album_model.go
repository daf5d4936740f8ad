package model

import (
	"time"

	"gorm.io/datatypes"
)

// AlbumModel is the GORM-specific struct for the 'albums' table.
// Rating aggregates are denormalised onto the row by the rating worker.
type AlbumModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	ExternalID string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Title      string `gorm:"type:varchar(512);not null"`
	Artist     string `gorm:"type:varchar(512);not null"`
	Year       *int
	CoverURL   *string        `gorm:"type:text"`
	Genres     datatypes.JSON `gorm:"not null;default:'[]'"`
	MediaLinks datatypes.JSON `gorm:"not null;default:'{}'"`
	Score      *string        `gorm:"type:varchar(64)"`
	SearchText *string        `gorm:"type:text"`
	VideoDate  *string        `gorm:"type:varchar(64)"`
	VRef       *string        `gorm:"column:vref;type:varchar(255)"`

	VerifiedRating        *float64 `gorm:"type:numeric(4,2)"`
	VerifiedRatingCount   *int
	LastVerifiedRatedAt   *time.Time
	UnverifiedRating      *float64 `gorm:"type:numeric(4,2)"`
	UnverifiedRatingCount *int
	LastUnverifiedRatedAt *time.Time

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlbumModel) TableName() string {
	return "albums"
}
