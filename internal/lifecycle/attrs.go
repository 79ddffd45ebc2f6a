package lifecycle

import (
	"fmt"
	"strings"
	"time"

	m "devagent-backend/internal/model"
)

// OfferAttrs holds offer fields supplied by owner. Nil fields are left untouched
// on update. Status is never part of it.
type OfferAttrs struct {
	Title          *string            `json:"title" binding:"omitempty,min=1,max=64"`
	EmploymentType *m.EmploymentType  `json:"employment_type" binding:"omitempty,oneof=None B2B PERMANENT CONTRACT"`
	Level          *m.ExperienceLevel `json:"level" binding:"omitempty,max=3"`
	EarningsMin    *uint              `json:"earnings_min"`
	EarningsMax    *uint              `json:"earnings_max"`
	Currency       *string            `json:"currency" binding:"omitempty,currency"`
	Remote         *bool              `json:"remote"`
	Location       *string            `json:"location" binding:"omitempty,max=32"`
	Description    *string            `json:"description" binding:"omitempty,max=2048"`
	Comments       *string            `json:"comments" binding:"omitempty,max=512"`

	// CompanyID links one of owner's companies, NewCompany creates (or reuses)
	// owner's company by name and takes precedence over CompanyID.
	CompanyID  *uint   `json:"company_id"`
	NewCompany *string `json:"new_company" binding:"omitempty,max=64"`

	// Skill names, created when missing. Nil keeps current skills on update.
	SkillsRequired []string `json:"skills_required" binding:"omitempty,dive,min=1,max=64"`
	SkillsOptional []string `json:"skills_optional" binding:"omitempty,dive,min=1,max=64"`
}

func (a *OfferAttrs) apply(info *m.EditableOfferInfo) error {
	if a.Title != nil {
		info.Title = strings.TrimSpace(*a.Title)
	}
	if a.EmploymentType != nil {
		info.EmploymentType = *a.EmploymentType
	}
	if a.Level != nil {
		info.Level = *a.Level
	}
	if a.EarningsMin != nil {
		info.EarningsMin = a.EarningsMin
	}
	if a.EarningsMax != nil {
		info.EarningsMax = a.EarningsMax
	}
	if a.Currency != nil {
		info.Currency = a.Currency
	}
	if a.Remote != nil {
		info.Remote = *a.Remote
	}
	if a.Location != nil {
		info.Location = a.Location
	}
	if a.Description != nil {
		info.Description = a.Description
	}
	if a.Comments != nil {
		info.Comments = a.Comments
	}

	if info.Title == "" {
		return fmt.Errorf("title is required: %w", ErrInvalidInput)
	}
	if info.EarningsMin != nil && info.EarningsMax != nil && *info.EarningsMin > *info.EarningsMax {
		return fmt.Errorf("earnings_min is greater than earnings_max: %w", ErrInvalidInput)
	}
	return nil
}

// StepAttrs holds step fields supplied by owner. Nil fields are left untouched
// on update. Status is never part of it.
type StepAttrs struct {
	Name        *string    `json:"name" binding:"omitempty,max=32"`
	Description *string    `json:"description" binding:"omitempty,max=2048"`
	ScheduledOn *time.Time `json:"scheduled_on"`
	TypeID      *uint      `json:"type_id"`
}

func (a *StepAttrs) apply(step *m.RecruitmentStep) {
	if a.Name != nil {
		step.Name = strings.TrimSpace(*a.Name)
	}
	if a.Description != nil {
		step.Description = a.Description
	}
	if a.ScheduledOn != nil {
		step.ScheduledOn = a.ScheduledOn
	}
	if a.TypeID != nil {
		step.TypeID = a.TypeID
	}
}
