package model

import (
	"database/sql/driver"
	"fmt"
)

// OfferStatus is the lifecycle status of an Offer. The numeric values are the
// persisted encoding.
type OfferStatus int8

// Offer statuses
const (
	OfferCreated         OfferStatus = 0
	OfferApplicationSent OfferStatus = 1
	OfferActive          OfferStatus = 2
	OfferSuccess         OfferStatus = 3
	OfferContractSigned  OfferStatus = 4
	OfferNegative        OfferStatus = -1
	OfferResigned        OfferStatus = -2
)

type statusInfo struct {
	label    string
	terminal bool
}

var offerStatuses = map[OfferStatus]statusInfo{
	OfferCreated:         {"Created", false},
	OfferApplicationSent: {"Application sent", false},
	OfferActive:          {"Active", false},
	OfferSuccess:         {"Positive response", false},
	OfferContractSigned:  {"Contract signed", true},
	OfferNegative:        {"Negative response", true},
	OfferResigned:        {"Resigned", true},
}

// IsValid reports whether s is one of the known offer statuses.
func (s OfferStatus) IsValid() bool {
	_, ok := offerStatuses[s]
	return ok
}

// IsTerminal reports whether no further transition is expected from s.
func (s OfferStatus) IsTerminal() bool {
	return offerStatuses[s].terminal
}

// String returns the human label of the status.
func (s OfferStatus) String() string {
	if info, ok := offerStatuses[s]; ok {
		return info.label
	}
	return "Unknown"
}

// OfferStatusesActive returns statuses of offers that are still in progress.
// Every other status is considered archived.
func OfferStatusesActive() []OfferStatus {
	return []OfferStatus{OfferCreated, OfferApplicationSent, OfferActive}
}

// StepStatus is the lifecycle status of a RecruitmentStep.
type StepStatus int8

// Recruitment step statuses
const (
	StepCreated  StepStatus = 0
	StepPlanned  StepStatus = 1
	StepFinished StepStatus = 2
	StepSuccess  StepStatus = 3
	StepNegative StepStatus = -1
	StepResigned StepStatus = -2
)

var stepStatuses = map[StepStatus]statusInfo{
	StepCreated:  {"Created", false},
	StepPlanned:  {"Planned", false},
	StepFinished: {"Waiting for response", false},
	StepSuccess:  {"Positive response", true},
	StepNegative: {"Negative response", true},
	StepResigned: {"Resigned", true},
}

// IsValid reports whether s is one of the known step statuses.
func (s StepStatus) IsValid() bool {
	_, ok := stepStatuses[s]
	return ok
}

// IsTerminal reports whether the step already has a result.
func (s StepStatus) IsTerminal() bool {
	return stepStatuses[s].terminal
}

func (s StepStatus) String() string {
	if info, ok := stepStatuses[s]; ok {
		return info.label
	}
	return "Unknown"
}

// StepStatusIn reports whether s is one of statuses.
func StepStatusIn(s StepStatus, statuses ...StepStatus) bool {
	for _, v := range statuses {
		if v == s {
			return true
		}
	}
	return false
}

// OfferStatusIn reports whether s is one of statuses.
func OfferStatusIn(s OfferStatus, statuses ...OfferStatus) bool {
	for _, v := range statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Value stores status as its numeric encoding
func (s OfferStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

// Scan reads numeric status from database
func (s *OfferStatus) Scan(src interface{}) error {
	v, err := scanInt8(src)
	*s = OfferStatus(v)
	return err
}

// Value stores status as its numeric encoding
func (s StepStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

// Scan reads numeric status from database
func (s *StepStatus) Scan(src interface{}) error {
	v, err := scanInt8(src)
	*s = StepStatus(v)
	return err
}

func scanInt8(src interface{}) (int8, error) {
	switch v := src.(type) {
	case int64:
		return int8(v), nil
	case int32:
		return int8(v), nil
	case int16:
		return int8(v), nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("cannot scan %T into status", src)
	}
}
