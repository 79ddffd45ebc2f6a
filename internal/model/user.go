package model

import (
	"time"

	"github.com/google/uuid"
)

// EditableUserInfo is part of user that owner can edit
type EditableUserInfo struct {
	Username string `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email    string `gorm:"type:varchar(254);uniqueIndex;not null" json:"email"`
}

// User is gorm model of an account that owns offers, companies and step types.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	EditableUserInfo
	Password   string    `gorm:"type:text" json:"-"`
	IsStaff    bool      `gorm:"default:false" json:"is_staff"`
	DateJoined time.Time `gorm:"autoCreateTime" json:"date_joined"`
	UpdatedOn  time.Time `gorm:"autoUpdateTime" json:"-"`
}
