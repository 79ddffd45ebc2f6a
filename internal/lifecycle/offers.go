package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"devagent-backend/internal/database"
	m "devagent-backend/internal/model"
	"devagent-backend/internal/telemetry"
)

// OfferService mutates offers. Named transitions fail with ErrPermissionDenied
// when their guard does not hold.
type OfferService struct {
	DB  *database.DBinstanceStruct
	Now func() time.Time
}

// NewOfferService creates OfferService using wall clock
func NewOfferService(db *database.DBinstanceStruct) *OfferService {
	return &OfferService{DB: db, Now: time.Now}
}

// ListFilter selects which offers are listed
type ListFilter struct {
	Archived bool
}

// Create records new offer of developer with created status
func (s *OfferService) Create(ctx context.Context, developerID uuid.UUID, attrs OfferAttrs) (*m.Offer, error) {
	offer := m.Offer{
		DeveloperID: developerID,
		Status:      m.OfferCreated,
		EditableOfferInfo: m.EditableOfferInfo{
			EmploymentType: m.EmploymentNone,
			Remote:         true,
		},
	}
	if err := attrs.apply(&offer.EditableOfferInfo); err != nil {
		return nil, err
	}
	if offer.Currency == nil {
		currency := m.DefaultCurrency
		offer.Currency = &currency
	}

	var created *m.Offer
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := resolveCompany(tx, developerID, &attrs, &offer); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&offer).Error; err != nil {
			return err
		}
		if err := replaceSkills(tx, &offer, &attrs); err != nil {
			return err
		}

		var err error
		created, err = loadOffer(tx, offer.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Uint("offer_id", created.ID).Str("developer_id", developerID.String()).Msg("Offer created")
	return created, nil
}

// Update changes editable offer fields, status stays as it is
func (s *OfferService) Update(ctx context.Context, developerID uuid.UUID, offerID uint, attrs OfferAttrs) (*m.Offer, error) {
	var updated *m.Offer
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, err := lockOffer(tx, developerID, offerID)
		if err != nil {
			return err
		}

		if err := attrs.apply(&offer.EditableOfferInfo); err != nil {
			return err
		}
		if err := resolveCompany(tx, developerID, &attrs, offer); err != nil {
			return err
		}
		offer.UpdatedOn = s.Now()
		if err := tx.Omit(clause.Associations).Save(offer).Error; err != nil {
			return err
		}
		if err := replaceSkills(tx, offer, &attrs); err != nil {
			return err
		}

		updated, err = loadOffer(tx, offerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Get returns offer of developer with company, skills and steps loaded
func (s *OfferService) Get(ctx context.Context, developerID uuid.UUID, offerID uint) (*m.Offer, error) {
	offer, err := loadOffer(s.DB.WithContext(ctx), offerID)
	if err != nil {
		return nil, err
	}
	if offer.DeveloperID != developerID {
		return nil, fmt.Errorf("offer %d belongs to another developer: %w", offerID, ErrPermissionDenied)
	}
	return offer, nil
}

// List returns active or archived offers of developer, recently updated first
func (s *OfferService) List(ctx context.Context, developerID uuid.UUID, filter ListFilter) ([]m.Offer, error) {
	q := s.DB.WithContext(ctx).
		Preload("Company").
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("developer_id = ?", developerID)
	if filter.Archived {
		q = q.Where("status NOT IN ?", m.OfferStatusesActive())
	} else {
		q = q.Where("status IN ?", m.OfferStatusesActive())
	}

	offers := []m.Offer{}
	if err := q.Order("updated_on DESC").Order("created_on DESC").Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// Delete removes offer together with its steps
func (s *OfferService) Delete(ctx context.Context, developerID uuid.UUID, offerID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, err := lockOffer(tx, developerID, offerID)
		if err != nil {
			return err
		}
		if err := tx.Model(offer).Association("SkillsRequired").Clear(); err != nil {
			return err
		}
		if err := tx.Model(offer).Association("SkillsOptional").Clear(); err != nil {
			return err
		}
		if err := tx.Where("offer_id = ?", offer.ID).Delete(&m.RecruitmentStep{}).Error; err != nil {
			return err
		}
		return tx.Delete(offer).Error
	})
}

// LatestStep returns step of offer with the highest ID, nil when offer has no steps
func (s *OfferService) LatestStep(ctx context.Context, developerID uuid.UUID, offerID uint) (*m.RecruitmentStep, error) {
	var latest *m.RecruitmentStep
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var offer m.Offer
		if err := tx.Select("id", "developer_id").Take(&offer, offerID).Error; err != nil {
			return notFound(err, "offer %d", offerID)
		}
		if offer.DeveloperID != developerID {
			return fmt.Errorf("offer %d belongs to another developer: %w", offerID, ErrPermissionDenied)
		}
		var err error
		latest, err = latestStep(tx, offerID, false)
		return err
	})
	return latest, err
}

// Send marks created offer as application sent and stamps the send date
func (s *OfferService) Send(ctx context.Context, developerID uuid.UUID, offerID uint) (*m.Offer, error) {
	return s.transition(ctx, developerID, offerID, OfferSend, func(tx *gorm.DB, offer *m.Offer, now time.Time) (map[string]interface{}, error) {
		if offer.Status != m.OfferCreated {
			return nil, fmt.Errorf("offer %d is %q, application can be sent only for created offer: %w",
				offer.ID, offer.Status.String(), ErrPermissionDenied)
		}
		offer.ApplicationSentOn = &now
		return map[string]interface{}{
			"status":              m.OfferApplicationSent,
			"application_sent_on": now,
		}, nil
	})
}

// SignContract marks active offer whose latest step succeeded as contract signed
func (s *OfferService) SignContract(ctx context.Context, developerID uuid.UUID, offerID uint) (*m.Offer, error) {
	return s.transition(ctx, developerID, offerID, OfferSignContract, func(tx *gorm.DB, offer *m.Offer, _ time.Time) (map[string]interface{}, error) {
		if offer.Status != m.OfferActive {
			return nil, fmt.Errorf("offer %d is %q, contract can be signed only for active offer: %w",
				offer.ID, offer.Status.String(), ErrPermissionDenied)
		}
		latest, err := latestStep(tx, offer.ID, false)
		if err != nil {
			return nil, err
		}
		if latest == nil || latest.Status != m.StepSuccess {
			return nil, fmt.Errorf("offer %d has no positive latest step: %w", offer.ID, ErrPermissionDenied)
		}
		return map[string]interface{}{"status": m.OfferContractSigned}, nil
	})
}

// Resign marks offer as resigned from any status. Latest step without result
// is resigned as well.
func (s *OfferService) Resign(ctx context.Context, developerID uuid.UUID, offerID uint) (*m.Offer, error) {
	return s.transition(ctx, developerID, offerID, OfferResign, func(tx *gorm.DB, offer *m.Offer, _ time.Time) (map[string]interface{}, error) {
		return map[string]interface{}{"status": m.OfferResigned}, nil
	})
}

type offerGuard func(tx *gorm.DB, offer *m.Offer, now time.Time) (map[string]interface{}, error)

// transition runs guard on locked offer, writes returned columns with status
// change timestamp and then cascades resignation to the latest step.
func (s *OfferService) transition(ctx context.Context, developerID uuid.UUID, offerID uint, name string, guard offerGuard) (*m.Offer, error) {
	var result *m.Offer
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, err := lockOffer(tx, developerID, offerID)
		if err != nil {
			return err
		}

		now := s.Now()
		columns, err := guard(tx, offer, now)
		if err != nil {
			return err
		}
		columns["status_changed_on"] = now
		columns["updated_on"] = now
		if err := tx.Model(offer).Updates(columns).Error; err != nil {
			return err
		}
		offer.Status = columns["status"].(m.OfferStatus)
		offer.StatusChangedOn = &now

		if offer.Status == m.OfferResigned {
			if err := resignLatestStep(tx, offer, now); err != nil {
				return err
			}
		}

		result, err = loadOffer(tx, offerID)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			telemetry.Transitions.WithLabelValues("offer", name, telemetry.OutcomeDenied).Inc()
			log.Info().Err(err).Str("transition", name).Uint("offer_id", offerID).Msg("Offer transition denied")
		}
		return nil, err
	}

	telemetry.Transitions.WithLabelValues("offer", name, telemetry.OutcomeApplied).Inc()
	log.Debug().Str("transition", name).Uint("offer_id", offerID).Str("status", result.Status.String()).Msg("Offer transition applied")
	return result, nil
}

// resignLatestStep follows offer resignation on latest step without result.
// Step is written through the regular step path.
func resignLatestStep(tx *gorm.DB, offer *m.Offer, now time.Time) error {
	latest, err := latestStep(tx, offer.ID, true)
	if err != nil {
		return err
	}
	if !ShouldResignWithOffer(latest) {
		return nil
	}

	previous := latest.Status
	latest.Status = m.StepResigned
	if err := persistStep(tx, offer, latest, previous, true, now); err != nil {
		return err
	}
	telemetry.Propagations.WithLabelValues(RuleOfferResignsStep).Inc()
	log.Debug().Uint("offer_id", offer.ID).Uint("step_id", latest.ID).Msg("Offer resignation propagated to latest step")
	return nil
}

// resolveCompany sets offer company from attributes. New company name wins
// over company ID, existing company of the same name is reused.
func resolveCompany(tx *gorm.DB, developerID uuid.UUID, attrs *OfferAttrs, offer *m.Offer) error {
	if attrs.NewCompany != nil && strings.TrimSpace(*attrs.NewCompany) != "" {
		company := m.Company{
			EditableCompanyInfo: m.EditableCompanyInfo{Name: strings.TrimSpace(*attrs.NewCompany)},
			AddedByID:           developerID,
		}
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&company).Error
		if err != nil {
			return err
		}
		if company.ID == 0 {
			if err := tx.Where("name = ? AND added_by_id = ?", company.Name, developerID).Take(&company).Error; err != nil {
				return err
			}
		}
		offer.CompanyID = &company.ID
		offer.Company = nil
		return nil
	}

	if attrs.CompanyID == nil {
		return nil
	}
	var count int64
	if err := tx.Model(&m.Company{}).Where("id = ? AND added_by_id = ?", *attrs.CompanyID, developerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("company %d: %w", *attrs.CompanyID, ErrInvalidInput)
	}
	offer.CompanyID = attrs.CompanyID
	offer.Company = nil
	return nil
}

// replaceSkills swaps skill lists given in attributes, nil list is kept
func replaceSkills(tx *gorm.DB, offer *m.Offer, attrs *OfferAttrs) error {
	if attrs.SkillsRequired != nil {
		skills, err := getOrCreateSkills(tx, attrs.SkillsRequired)
		if err != nil {
			return err
		}
		if err := tx.Model(offer).Association("SkillsRequired").Replace(skills); err != nil {
			return err
		}
	}
	if attrs.SkillsOptional != nil {
		skills, err := getOrCreateSkills(tx, attrs.SkillsOptional)
		if err != nil {
			return err
		}
		if err := tx.Model(offer).Association("SkillsOptional").Replace(skills); err != nil {
			return err
		}
	}
	return nil
}

func getOrCreateSkills(tx *gorm.DB, names []string) ([]m.Skill, error) {
	skills := []m.Skill{}
	seen := map[string]bool{}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		skill := m.Skill{Name: name}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&skill).Error; err != nil {
			return nil, err
		}
		if skill.ID == 0 {
			if err := tx.Where("name = ?", name).Take(&skill).Error; err != nil {
				return nil, err
			}
		}
		skills = append(skills, skill)
	}
	return skills, nil
}
