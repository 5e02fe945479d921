package errs

import (
	"errors"
	"fmt"
)

type HttpError struct {
	Code    int
	Message string
	Data    any
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("code %d: %s, data: %v", e.Code, e.Message, e.Data)
}

var (
	ErrBlocked           = errors.New("registration blocked")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrPolicyViolation   = errors.New("override required")
	ErrPaymentRequired   = errors.New("upfront payment required")
	ErrNotFound          = errors.New("not found")
	ErrCrossTenant       = errors.New("cross tenant access")
	ErrEventClosed       = errors.New("event closed")
	ErrEventPast         = errors.New("event already started")
	ErrInvalidPartySize  = errors.New("invalid party size")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrInvalidArgument   = errors.New("invalid argument")

	// ErrConflict and ErrTransient are infrastructure outcomes; the ledger
	// retries them before surfacing ErrTransient.
	ErrConflict  = errors.New("concurrent update conflict")
	ErrTransient = errors.New("temporarily unavailable")
)

const (
	ReasonBanned                 = "BANNED"
	ReasonEventClosed            = "EVENT_CLOSED"
	ReasonEventPast              = "EVENT_PAST"
	ReasonRequiresUpfrontPayment = "REQUIRES_UPFRONT_PAYMENT"
	ReasonInvalidPartySize       = "INVALID_PARTY_SIZE"
	ReasonBelowMinimum           = "BELOW_MINIMUM"
	ReasonSuboptimalTable        = "SUBOPTIMAL_TABLE"
	ReasonPrioritySkip           = "PRIORITY_SKIP"
	ReasonCapacityBelowConfirmed = "CAPACITY_BELOW_CONFIRMED"
	ReasonTableBasedEvent        = "TABLE_BASED_EVENT"
	ReasonNotTableBased          = "NOT_TABLE_BASED"
	ReasonPaymentNotRequired     = "PAYMENT_NOT_REQUIRED"
	ReasonAlreadyPaid            = "ALREADY_PAID"
	ReasonRegistrationCancelled  = "REGISTRATION_CANCELLED"
	ReasonWaitlisted             = "WAITLISTED"
	ReasonNoCapacity             = "NO_CAPACITY"
	ReasonTableUnavailable       = "TABLE_UNAVAILABLE"
	ReasonTableTooSmall          = "TABLE_TOO_SMALL"
	ReasonInvalidStatus          = "INVALID_STATUS"
	ReasonInvalidCapacity        = "INVALID_CAPACITY"
	ReasonInvalidPaymentTiming   = "INVALID_PAYMENT_TIMING"
	ReasonInvalidPhoneNumber     = "INVALID_PHONE_NUMBER"
)

// Rejection is a business outcome the caller has to act on. It wraps one of
// the sentinels above and carries a machine readable reason.
type Rejection struct {
	Err    error
	Reason string
	Data   any
}

func Reject(err error, reason string, data any) *Rejection {
	return &Rejection{Err: err, Reason: reason, Data: data}
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Reason, r.Err)
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

// ReasonOf returns the rejection reason carried by err, if any.
func ReasonOf(err error) string {
	var rejection *Rejection
	if errors.As(err, &rejection) {
		return rejection.Reason
	}
	return ""
}
