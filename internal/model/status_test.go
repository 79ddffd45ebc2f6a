package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepHasResult(t *testing.T) {
	for _, s := range []StepStatus{StepCreated, StepPlanned, StepFinished} {
		step := RecruitmentStep{Status: s}
		assert.False(t, step.HasResult(), s.String())
		assert.False(t, s.IsTerminal(), s.String())
	}

	for _, s := range []StepStatus{StepSuccess, StepNegative, StepResigned} {
		step := RecruitmentStep{Status: s}
		assert.True(t, step.HasResult(), s.String())
		assert.True(t, s.IsTerminal(), s.String())
	}
}

func TestStepStatusLabels(t *testing.T) {
	assert.Equal(t, "Waiting for response", StepFinished.String())
	assert.Equal(t, "Negative response", StepNegative.String())
	assert.True(t, StepResigned.IsValid())
	assert.False(t, StepStatus(9).IsValid())
}

func TestStatusIn(t *testing.T) {
	assert.True(t, StepStatusIn(StepPlanned, StepCreated, StepPlanned))
	assert.False(t, StepStatusIn(StepSuccess, StepCreated, StepPlanned))
	assert.False(t, StepStatusIn(StepSuccess))
	assert.True(t, OfferStatusIn(OfferActive, OfferStatusesActive()...))
	assert.False(t, OfferStatusIn(OfferSuccess, OfferStatusesActive()...))
}
