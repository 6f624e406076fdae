package loan

import (
	"fmt"

	"agrifin-backend/internal/domain/apperror"
	"agrifin-backend/internal/domain/farmer"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusDisbursed Status = "Disbursed"
	StatusRejected  Status = "Rejected"
	StatusClosed    Status = "Closed"
)

var Statuses = []Status{StatusPending, StatusApproved, StatusDisbursed, StatusRejected, StatusClosed}

// transitions lists the legal next states. Rejected and Closed are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusRejected},
	StatusApproved:  {StatusDisbursed},
	StatusDisbursed: {StatusClosed},
}

var ErrInvalidStatus = apperror.Invalid("status", "invalid loan status")

func (s Status) Valid() bool {
	for _, x := range Statuses {
		if x == s {
			return true
		}
	}
	return false
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, x := range transitions[s] {
		if x == next {
			return true
		}
	}
	return false
}

// CheckTransition returns a validation error when next is unknown or not
// reachable from s.
func (s Status) CheckTransition(next Status) error {
	if !next.Valid() {
		return ErrInvalidStatus
	}
	if !s.CanTransitionTo(next) {
		return apperror.Invalid("status", fmt.Sprintf("cannot change loan status from %s to %s", s, next))
	}
	return nil
}

// FarmerStatus is the summary status mirrored onto the owning farmer.
func (s Status) FarmerStatus() farmer.LoanStatus {
	switch s {
	case StatusApproved:
		return farmer.LoanStatusApproved
	case StatusDisbursed:
		return farmer.LoanStatusActive
	default:
		return farmer.LoanStatus(s)
	}
}
