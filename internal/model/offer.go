package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EmploymentType is preferred form of employment for an offer
type EmploymentType string

// Employment types
const (
	EmploymentNone      EmploymentType = "None"
	EmploymentB2B       EmploymentType = "B2B"
	EmploymentPermanent EmploymentType = "PERMANENT"
	EmploymentContract  EmploymentType = "CONTRACT"
)

var employmentLabels = map[EmploymentType]string{
	EmploymentNone:      "None",
	EmploymentB2B:       "Business to business",
	EmploymentPermanent: "Permanent",
	EmploymentContract:  "Contract",
}

func (e EmploymentType) String() string {
	if label, ok := employmentLabels[e]; ok {
		return label
	}
	return string(e)
}

// ExperienceLevel is seniority an offer is aimed at
type ExperienceLevel uint8

// Experience levels
const (
	LevelNone ExperienceLevel = iota
	LevelJunior
	LevelRegular
	LevelSenior
)

func (l ExperienceLevel) String() string {
	switch l {
	case LevelJunior:
		return "Junior"
	case LevelRegular:
		return "Regular"
	case LevelSenior:
		return "Senior"
	default:
		return "Not provided"
	}
}

// DefaultCurrency is used when offer is created without currency
const DefaultCurrency = "PLN"

// EditableOfferInfo is part of offer that owner can edit directly.
// Status and milestone timestamps are never part of it.
type EditableOfferInfo struct {
	Title          string          `gorm:"type:varchar(64);not null" json:"title"`
	EmploymentType EmploymentType  `gorm:"type:varchar(16);default:'None'" json:"employment_type"`
	Level          ExperienceLevel `gorm:"type:smallint;default:0" json:"level"`
	EarningsMin    *uint           `json:"earnings_min"`
	EarningsMax    *uint           `json:"earnings_max"`
	Currency       *string         `gorm:"type:varchar(8)" json:"currency"`
	Remote         bool            `gorm:"not null" json:"remote"`
	Location       *string         `gorm:"type:varchar(32)" json:"location"`
	Description    *string         `gorm:"type:text" json:"description"`
	Comments       *string         `gorm:"type:text" json:"comments"`
}

// Offer is gorm model of a single tracked job application
type Offer struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	DeveloperID uuid.UUID  `gorm:"type:uuid;not null;index" json:"developer_id"`
	Developer   User       `gorm:"foreignKey:DeveloperID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	CompanyID   *uint      `gorm:"index" json:"company_id"`
	Company     *Company   `gorm:"foreignKey:CompanyID;references:ID;constraint:OnDelete:SET NULL" json:"company,omitempty"`
	EditableOfferInfo
	Status            OfferStatus `gorm:"type:smallint;not null;default:0" json:"status"`
	ApplicationSentOn *time.Time  `json:"application_sent_on"`
	StatusChangedOn   *time.Time  `json:"status_changed_on"`

	SkillsRequired []Skill           `gorm:"many2many:offer_skills_required;" json:"skills_required"`
	SkillsOptional []Skill           `gorm:"many2many:offer_skills_optional;" json:"skills_optional"`
	Steps          []RecruitmentStep `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`

	CreatedOn time.Time `gorm:"autoCreateTime" json:"created_on"`
	UpdatedOn time.Time `gorm:"autoUpdateTime" json:"updated_on"`
}

// StatusDisplay returns human readable status
func (o *Offer) StatusDisplay() string {
	return o.Status.String()
}

// IsFinished reports whether offer reached terminal status
func (o *Offer) IsFinished() bool {
	return o.Status.IsTerminal()
}

// IsActive reports whether offer belongs to active (not archived) list
func (o *Offer) IsActive() bool {
	return OfferStatusIn(o.Status, OfferStatusesActive()...)
}

// EarningsRange formats earnings as "min - max currency", "> min currency",
// "< max currency" or "-" when no bound is known.
func (o *Offer) EarningsRange() string {
	var earnings string
	switch {
	case o.EarningsMin != nil && o.EarningsMax != nil:
		earnings = fmt.Sprintf("%d - %d", *o.EarningsMin, *o.EarningsMax)
	case o.EarningsMin != nil:
		earnings = fmt.Sprintf("> %d", *o.EarningsMin)
	case o.EarningsMax != nil:
		earnings = fmt.Sprintf("< %d", *o.EarningsMax)
	default:
		return "-"
	}
	if o.Currency != nil && *o.Currency != "" {
		earnings += " " + *o.Currency
	}
	return earnings
}

// LatestStep returns step with the highest ID among loaded steps, nil if
// offer has no steps loaded.
func (o *Offer) LatestStep() *RecruitmentStep {
	var latest *RecruitmentStep
	for i := range o.Steps {
		if latest == nil || o.Steps[i].ID > latest.ID {
			latest = &o.Steps[i]
		}
	}
	return latest
}

// OfferResponse is offer with derived values attached
type OfferResponse struct {
	Offer
	StatusDisplay         string         `json:"status_display"`
	EmploymentTypeDisplay string         `json:"employment_type_display"`
	LevelDisplay          string         `json:"level_display"`
	EarningsRange         string         `json:"earnings_range"`
	IsFinished            bool           `json:"is_finished"`
	LatestStep            *StepResponse  `json:"latest_step"`
	Steps                 []StepResponse `json:"steps"`
}

// ToOfferResponse converts Offer to OfferResponse
func (o *Offer) ToOfferResponse() OfferResponse {
	resp := OfferResponse{
		Offer:                 *o,
		StatusDisplay:         o.StatusDisplay(),
		EmploymentTypeDisplay: o.EmploymentType.String(),
		LevelDisplay:          o.Level.String(),
		EarningsRange:         o.EarningsRange(),
		IsFinished:            o.IsFinished(),
		Steps:                 make([]StepResponse, 0, len(o.Steps)),
	}
	resp.Offer.Steps = nil
	for i := range o.Steps {
		resp.Steps = append(resp.Steps, o.Steps[i].ToStepResponse())
	}
	if latest := o.LatestStep(); latest != nil {
		s := latest.ToStepResponse()
		resp.LatestStep = &s
	}
	return resp
}
