package model

import (
	"time"
)

// RecruitmentStep is gorm model of one event in offer's recruitment pipeline
// (interview, test task, call, ...)
type RecruitmentStep struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	OfferID     uint       `gorm:"not null;index" json:"offer_id"`
	Offer       *Offer     `gorm:"foreignKey:OfferID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Name        string     `gorm:"type:varchar(32)" json:"name"`
	Description *string    `gorm:"type:text" json:"description"`
	Status      StepStatus `gorm:"type:smallint;not null;default:0" json:"status"`
	ScheduledOn *time.Time `json:"scheduled_on"`
	TypeID      *uint      `gorm:"index" json:"type_id"`
	Type        *StepType  `gorm:"foreignKey:TypeID;references:ID;constraint:OnDelete:SET NULL" json:"type,omitempty"`

	CreatedOn time.Time `gorm:"autoCreateTime" json:"created_on"`
	UpdatedOn time.Time `gorm:"autoUpdateTime" json:"updated_on"`
}

// StatusDisplay returns human readable status
func (s *RecruitmentStep) StatusDisplay() string {
	return s.Status.String()
}

// HasResult reports whether step got any response already
func (s *RecruitmentStep) HasResult() bool {
	return !StepStatusIn(s.Status, StepCreated, StepPlanned, StepFinished)
}

// StepResponse is step with derived values attached
type StepResponse struct {
	RecruitmentStep
	StatusDisplay string `json:"status_display"`
	HasResult     bool   `json:"has_result"`
}

// ToStepResponse converts RecruitmentStep to StepResponse
func (s *RecruitmentStep) ToStepResponse() StepResponse {
	return StepResponse{
		RecruitmentStep: *s,
		StatusDisplay:   s.StatusDisplay(),
		HasResult:       s.HasResult(),
	}
}
