package model

import (
	"time"

	"github.com/google/uuid"
)

// EditableCompanyInfo is part of company that owner can edit
type EditableCompanyInfo struct {
	Name     string  `gorm:"type:varchar(64);not null;uniqueIndex:idx_company_name_owner" json:"name"`
	Location *string `gorm:"type:varchar(32)" json:"location"`
	Website  *string `gorm:"type:varchar(64)" json:"website"`
}

// Company is gorm model of employer. Name is unique per user who added it.
type Company struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
	EditableCompanyInfo
	AddedByID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_company_name_owner" json:"added_by"`
	AddedBy   User      `gorm:"foreignKey:AddedByID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedOn time.Time `gorm:"autoCreateTime" json:"created_on"`
	UpdatedOn time.Time `gorm:"autoUpdateTime" json:"updated_on"`
}

// Skill is a globally unique tag attached to offers
type Skill struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	CreatedOn time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedOn time.Time `gorm:"autoUpdateTime" json:"-"`
}

// StepType is user defined kind of recruitment step
type StepType struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(32);not null" json:"name"`
	AddedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"added_by"`
	AddedBy   User      `gorm:"foreignKey:AddedByID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedOn time.Time `gorm:"autoCreateTime" json:"created_on"`
	UpdatedOn time.Time `gorm:"autoUpdateTime" json:"updated_on"`
}
