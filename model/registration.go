package model

import (
	"strings"
	"time"
)

type RegistrationStatus string

const (
	RegistrationStatusConfirmed RegistrationStatus = "CONFIRMED"
	RegistrationStatusWaitlist  RegistrationStatus = "WAITLIST"
	RegistrationStatusCancelled RegistrationStatus = "CANCELLED"
	// RegistrationStatusPendingPayment is the provisional state of a
	// registration on an upfront-payment event until its payment settles.
	RegistrationStatusPendingPayment RegistrationStatus = "PENDING_PAYMENT"
)

type PaymentStatus string

const (
	PaymentStatusNone      PaymentStatus = "NONE"
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

type Registration struct {
	ID               string
	TenantID         string
	EventID          string
	PartySize        int32
	Status           RegistrationStatus
	WaitlistPriority *int32
	ConfirmationCode string
	PhoneNumber      string
	Email            string
	Name             string
	PaymentStatus    PaymentStatus
	AmountDue        int64
	AmountPaid       int64
	AssignedTableID  *string
	// HoldsCapacity is true while the registration occupies seats or a table.
	HoldsCapacity bool
	Data          map[string]any
	Version       int32
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r Registration) Waitlisted() bool {
	return r.Status == RegistrationStatusWaitlist
}

func (r Registration) Priority() int32 {
	if r.WaitlistPriority == nil {
		return 0
	}
	return *r.WaitlistPriority
}

// NormalizePhone keeps a leading plus sign and the digits of a phone number.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	var b strings.Builder
	for i, c := range phone {
		if c == '+' && i == 0 {
			b.WriteRune(c)
			continue
		}
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}

	return b.String()
}

type StatusCounts struct {
	Confirmed      int32 `json:"confirmed"`
	Waitlist       int32 `json:"waitlist"`
	Cancelled      int32 `json:"cancelled"`
	PendingPayment int32 `json:"pending_payment"`
	ConfirmedSeats int32 `json:"confirmed_seats"`
	Capacity       int32 `json:"capacity"`
}

type WaitlistRecommendation struct {
	RegistrationID   string  `json:"registration_id"`
	ConfirmationCode string  `json:"confirmation_code"`
	PartySize        int32   `json:"party_size"`
	Priority         int32   `json:"priority"`
	TableID          *string `json:"table_id,omitempty"`
	TableCapacity    int32   `json:"table_capacity,omitempty"`
}

type CreateRegistrationRequest struct {
	PhoneNumber string         `json:"phone_number" validate:"required,max=32"`
	Email       string         `json:"email" validate:"omitempty,email"`
	Name        string         `json:"name" validate:"omitempty,max=100"`
	PartySize   int32          `json:"party_size"`
	Data        map[string]any `json:"data"`
}

type RegistrationResponse struct {
	ID               string    `json:"id"`
	EventID          string    `json:"event_id"`
	Status           string    `json:"status"`
	ConfirmationCode string    `json:"confirmation_code"`
	PartySize        int32     `json:"party_size"`
	WaitlistPriority *int32    `json:"waitlist_priority,omitempty"`
	PaymentStatus    string    `json:"payment_status"`
	AmountDue        int64     `json:"amount_due"`
	AmountPaid       int64     `json:"amount_paid"`
	AssignedTableID  *string   `json:"assigned_table_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewRegistrationResponse(r Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:               r.ID,
		EventID:          r.EventID,
		Status:           string(r.Status),
		ConfirmationCode: r.ConfirmationCode,
		PartySize:        r.PartySize,
		WaitlistPriority: r.WaitlistPriority,
		PaymentStatus:    string(r.PaymentStatus),
		AmountDue:        r.AmountDue,
		AmountPaid:       r.AmountPaid,
		AssignedTableID:  r.AssignedTableID,
		CreatedAt:        r.CreatedAt,
	}
}

type CheckoutResponse struct {
	Registration RegistrationResponse `json:"registration"`
	Payment      *PaymentResponse     `json:"payment,omitempty"`
}

type ConfirmRegistrationRequest struct {
	Override bool `json:"override"`
}

type AssignTableRequest struct {
	TableID  string `json:"table_id" validate:"required"`
	Override bool   `json:"override"`
}

type ListRegistrationsResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
}

type WaitlistRecommendationsResponse struct {
	Recommendations []WaitlistRecommendation `json:"recommendations"`
}
