package lifecycle

import (
	"fmt"

	m "devagent-backend/internal/model"
)

// StepTransition is a named guarded change of step status.
// Transition is applied only when step is in one of From statuses.
type StepTransition struct {
	Name string
	From []m.StepStatus
	To   m.StepStatus
}

// NewStepTransition builds transition and panics when it is misconfigured,
// so broken registration fails at package init.
func NewStepTransition(name string, to m.StepStatus, from ...m.StepStatus) StepTransition {
	if name == "" {
		panic("lifecycle: step transition without name")
	}
	if !to.IsValid() {
		panic(fmt.Sprintf("lifecycle: step transition %q has invalid target status %d", name, to))
	}
	if len(from) == 0 {
		panic(fmt.Sprintf("lifecycle: step transition %q has no source statuses", name))
	}
	for _, s := range from {
		if !s.IsValid() {
			panic(fmt.Sprintf("lifecycle: step transition %q has invalid source status %d", name, s))
		}
	}
	return StepTransition{Name: name, From: from, To: to}
}

// Allows reports whether step in status s may take this transition
func (t StepTransition) Allows(s m.StepStatus) bool {
	return m.StepStatusIn(s, t.From...)
}

func (t StepTransition) configured() bool {
	return t.Name != "" && len(t.From) > 0 && t.To.IsValid()
}

// Named step transitions. Accept, Reject and Resign also take steps that were
// never scheduled.
var (
	Finish = NewStepTransition("finish", m.StepFinished, m.StepPlanned)
	Accept = NewStepTransition("accept", m.StepSuccess, m.StepCreated, m.StepPlanned, m.StepFinished)
	Reject = NewStepTransition("reject", m.StepNegative, m.StepCreated, m.StepPlanned, m.StepFinished)
	Resign = NewStepTransition("resign", m.StepResigned, m.StepCreated, m.StepPlanned, m.StepFinished)
)

// Offer transition names
const (
	OfferSend         = "send"
	OfferSignContract = "sign_contract"
	OfferResign       = "resign"
)
