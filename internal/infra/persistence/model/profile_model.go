package model

import (
	"time"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// The primary key is the external identity provider's user ID.
type ProfileModel struct {
	ID        string  `gorm:"type:varchar(255);primaryKey"`
	Email     *string `gorm:"type:varchar(320)"`
	FirstName *string `gorm:"type:varchar(255)"`
	LastName  *string `gorm:"type:varchar(255)"`
	AvatarURL *string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
