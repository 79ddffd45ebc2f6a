package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "devagent-backend/internal/model"
	"devagent-backend/internal/telemetry"
)

var forUpdate = clause.Locking{Strength: "UPDATE"}

func notFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
	}
	return err
}

// lockOffer reads offer row with FOR UPDATE lock and checks it belongs to developer
func lockOffer(tx *gorm.DB, developerID uuid.UUID, offerID uint) (*m.Offer, error) {
	var offer m.Offer
	if err := tx.Clauses(forUpdate).Take(&offer, offerID).Error; err != nil {
		return nil, notFound(err, "offer %d", offerID)
	}
	if offer.DeveloperID != developerID {
		return nil, fmt.Errorf("offer %d belongs to another developer: %w", offerID, ErrPermissionDenied)
	}
	return &offer, nil
}

// lockStep locks parent offer and then the step itself. Offer is always locked
// first so step and offer operations take locks in the same order.
func lockStep(tx *gorm.DB, developerID uuid.UUID, stepID uint) (*m.Offer, *m.RecruitmentStep, error) {
	var ref m.RecruitmentStep
	if err := tx.Select("id", "offer_id").Take(&ref, stepID).Error; err != nil {
		return nil, nil, notFound(err, "step %d", stepID)
	}

	offer, err := lockOffer(tx, developerID, ref.OfferID)
	if err != nil {
		return nil, nil, err
	}

	var step m.RecruitmentStep
	if err := tx.Clauses(forUpdate).Take(&step, stepID).Error; err != nil {
		return nil, nil, notFound(err, "step %d", stepID)
	}
	return offer, &step, nil
}

// latestStep returns child step with the highest ID, nil when offer has none.
func latestStep(tx *gorm.DB, offerID uint, lock bool) (*m.RecruitmentStep, error) {
	q := tx.Where("offer_id = ?", offerID).Order("id DESC")
	if lock {
		q = q.Clauses(forUpdate)
	}
	var step m.RecruitmentStep
	err := q.Take(&step).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &step, nil
}

// persistStep writes step and runs status rules around the write: schedule
// promotion before, parent offer propagation after. Propagation runs only for
// new steps and when status differs from previous. With statusOnly set only
// status and updated_on columns are written.
func persistStep(tx *gorm.DB, offer *m.Offer, step *m.RecruitmentStep, previous m.StepStatus, statusOnly bool, now time.Time) error {
	created := step.ID == 0
	ApplySchedule(step)

	var err error
	switch {
	case step.ID == 0:
		step.OfferID = offer.ID
		err = tx.Omit(clause.Associations).Create(step).Error
	case statusOnly:
		step.UpdatedOn = now
		err = tx.Model(step).Updates(map[string]interface{}{
			"status":     step.Status,
			"updated_on": now,
		}).Error
	default:
		err = tx.Omit(clause.Associations).Save(step).Error
	}
	if err != nil {
		return err
	}
	if !created && step.Status == previous {
		return nil
	}

	status, rule, ok := OfferStatusAfterStep(step.Status, offer.Status)
	if !ok {
		return nil
	}
	if err := setOfferStatus(tx, offer, status, now); err != nil {
		return err
	}
	telemetry.Propagations.WithLabelValues(rule).Inc()
	log.Debug().
		Str("rule", rule).
		Uint("offer_id", offer.ID).
		Uint("step_id", step.ID).
		Str("offer_status", status.String()).
		Msg("Step status propagated to offer")
	return nil
}

// setOfferStatus writes only status and updated_on of offer
func setOfferStatus(tx *gorm.DB, offer *m.Offer, status m.OfferStatus, now time.Time) error {
	offer.Status = status
	offer.UpdatedOn = now
	return tx.Model(offer).Updates(map[string]interface{}{
		"status":     status,
		"updated_on": now,
	}).Error
}

// loadOffer reads offer with everything its detail view needs
func loadOffer(tx *gorm.DB, offerID uint) (*m.Offer, error) {
	var offer m.Offer
	err := tx.
		Preload("Company").
		Preload("SkillsRequired").
		Preload("SkillsOptional").
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Steps.Type").
		Take(&offer, offerID).Error
	if err != nil {
		return nil, notFound(err, "offer %d", offerID)
	}
	return &offer, nil
}
