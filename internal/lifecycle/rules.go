package lifecycle

import (
	m "devagent-backend/internal/model"
)

// Propagation rule names, used as metric labels
const (
	RuleStepActivatesOffer = "R2a"
	RuleStepRejectsOffer   = "R2b"
	RuleStepResignsOffer   = "R2c"
	RuleOfferResignsStep   = "R3"
)

// ApplySchedule promotes a created step that got a date to planned.
// It reports whether status was changed. Runs before every step write.
func ApplySchedule(step *m.RecruitmentStep) bool {
	if step.Status == m.StepCreated && step.ScheduledOn != nil {
		step.Status = m.StepPlanned
		return true
	}
	return false
}

// OfferStatusAfterStep returns status the parent offer should get after step
// with given status was written. ok is false when offer stays as it is.
// Checks are evaluated in order, triggering step statuses are disjoint.
func OfferStatusAfterStep(step m.StepStatus, offer m.OfferStatus) (status m.OfferStatus, rule string, ok bool) {
	if m.StepStatusIn(step, m.StepCreated, m.StepPlanned) &&
		m.OfferStatusIn(offer, m.OfferCreated, m.OfferApplicationSent) {
		return m.OfferActive, RuleStepActivatesOffer, true
	}
	if step == m.StepNegative && offer != m.OfferNegative {
		return m.OfferNegative, RuleStepRejectsOffer, true
	}
	if step == m.StepResigned && offer != m.OfferResigned {
		return m.OfferResigned, RuleStepResignsOffer, true
	}
	return offer, "", false
}

// ShouldResignWithOffer reports whether latest step has to follow its offer
// into resigned status. Steps that already have a result are left alone.
func ShouldResignWithOffer(latest *m.RecruitmentStep) bool {
	return latest != nil && !latest.HasResult()
}
