package model

import (
	"time"
)

// UserModel is the GORM-specific struct for the 'users' table.
// Rows are keyed for sync purposes by ClerkUserID, the external identity ID.
type UserModel struct {
	ID                   string  `gorm:"type:uuid;primaryKey"`
	ClerkUserID          string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Email                *string `gorm:"type:varchar(320)"`
	FirstName            *string `gorm:"type:varchar(255)"`
	LastName             *string `gorm:"type:varchar(255)"`
	AdditionalContext    *string `gorm:"type:text"`
	StripeSubscriptionID *string `gorm:"type:varchar(255)"`
	CreatedAt            time.Time
	ModifiedAt           *time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
