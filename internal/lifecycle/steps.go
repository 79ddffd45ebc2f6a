package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"devagent-backend/internal/database"
	m "devagent-backend/internal/model"
	"devagent-backend/internal/telemetry"
)

// StepService mutates recruitment steps and propagates their status to
// the parent offer. Every operation runs in a single transaction.
type StepService struct {
	DB  *database.DBinstanceStruct
	Now func() time.Time
}

// NewStepService creates StepService using wall clock
func NewStepService(db *database.DBinstanceStruct) *StepService {
	return &StepService{DB: db, Now: time.Now}
}

// Create adds new step to offer. Step starts as created, or planned when
// scheduled date is given.
func (s *StepService) Create(ctx context.Context, developerID uuid.UUID, offerID uint, attrs StepAttrs) (*m.RecruitmentStep, error) {
	var step m.RecruitmentStep
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, err := lockOffer(tx, developerID, offerID)
		if err != nil {
			return err
		}

		attrs.apply(&step)
		step.Status = m.StepCreated
		if err := checkStepType(tx, developerID, step.TypeID); err != nil {
			return err
		}

		if err := persistStep(tx, offer, &step, step.Status, false, s.Now()); err != nil {
			return err
		}
		return tx.Preload("Type").Take(&step, step.ID).Error
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Uint("offer_id", offerID).Uint("step_id", step.ID).Str("status", step.Status.String()).Msg("Step created")
	return &step, nil
}

// Update changes step attributes. Status is recomputed only by schedule
// promotion.
func (s *StepService) Update(ctx context.Context, developerID uuid.UUID, stepID uint, attrs StepAttrs) (*m.RecruitmentStep, error) {
	var step *m.RecruitmentStep
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, locked, err := lockStep(tx, developerID, stepID)
		if err != nil {
			return err
		}
		step = locked
		previous := step.Status

		attrs.apply(step)
		if err := checkStepType(tx, developerID, step.TypeID); err != nil {
			return err
		}

		if err := persistStep(tx, offer, step, previous, false, s.Now()); err != nil {
			return err
		}
		return tx.Preload("Type").Take(step, step.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return step, nil
}

// Get returns step owned by developer
func (s *StepService) Get(ctx context.Context, developerID uuid.UUID, stepID uint) (*m.RecruitmentStep, error) {
	var step m.RecruitmentStep
	err := s.DB.WithContext(ctx).Preload("Offer").Preload("Type").Take(&step, stepID).Error
	if err != nil {
		return nil, notFound(err, "step %d", stepID)
	}
	if step.Offer == nil || step.Offer.DeveloperID != developerID {
		return nil, fmt.Errorf("step %d belongs to another developer: %w", stepID, ErrPermissionDenied)
	}
	step.Offer = nil
	return &step, nil
}

// Transition applies t when step status is one of its sources. Otherwise
// nothing changes and unchanged step is returned without error.
func (s *StepService) Transition(ctx context.Context, developerID uuid.UUID, stepID uint, t StepTransition) (*m.RecruitmentStep, error) {
	if !t.configured() {
		panic(fmt.Sprintf("lifecycle: unconfigured step transition %q", t.Name))
	}

	var step *m.RecruitmentStep
	applied := false
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, locked, err := lockStep(tx, developerID, stepID)
		if err != nil {
			return err
		}
		step = locked

		if !t.Allows(step.Status) {
			return nil
		}
		previous := step.Status
		step.Status = t.To
		applied = true
		return persistStep(tx, offer, step, previous, true, s.Now())
	})
	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			telemetry.Transitions.WithLabelValues("step", t.Name, telemetry.OutcomeDenied).Inc()
		}
		return nil, err
	}

	if !applied {
		telemetry.Transitions.WithLabelValues("step", t.Name, telemetry.OutcomeSkipped).Inc()
		log.Debug().Uint("step_id", stepID).Str("transition", t.Name).Str("status", step.Status.String()).Msg("Step transition skipped")
		return step, nil
	}
	telemetry.Transitions.WithLabelValues("step", t.Name, telemetry.OutcomeApplied).Inc()
	log.Debug().Uint("step_id", stepID).Str("transition", t.Name).Str("status", step.Status.String()).Msg("Step transition applied")
	return step, nil
}

// Finish marks planned step as waiting for response
func (s *StepService) Finish(ctx context.Context, developerID uuid.UUID, stepID uint) (*m.RecruitmentStep, error) {
	return s.Transition(ctx, developerID, stepID, Finish)
}

// Accept marks step as positive response
func (s *StepService) Accept(ctx context.Context, developerID uuid.UUID, stepID uint) (*m.RecruitmentStep, error) {
	return s.Transition(ctx, developerID, stepID, Accept)
}

// Reject marks step as negative response, offer follows
func (s *StepService) Reject(ctx context.Context, developerID uuid.UUID, stepID uint) (*m.RecruitmentStep, error) {
	return s.Transition(ctx, developerID, stepID, Reject)
}

// Resign marks step as resigned, offer follows
func (s *StepService) Resign(ctx context.Context, developerID uuid.UUID, stepID uint) (*m.RecruitmentStep, error) {
	return s.Transition(ctx, developerID, stepID, Resign)
}

func checkStepType(tx *gorm.DB, developerID uuid.UUID, typeID *uint) error {
	if typeID == nil {
		return nil
	}
	var count int64
	if err := tx.Model(&m.StepType{}).Where("id = ? AND added_by_id = ?", *typeID, developerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("step type %d: %w", *typeID, ErrInvalidInput)
	}
	return nil
}
