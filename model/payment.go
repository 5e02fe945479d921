package model

import "time"

type PaymentOutcome string

const (
	PaymentOutcomeSuccess PaymentOutcome = "success"
	PaymentOutcomeFailure PaymentOutcome = "failure"
)

// Payment is one settlement attempt. FAILED and COMPLETED are terminal; a
// retry creates a new Payment.
type Payment struct {
	ID              string
	RegistrationID  string
	ExternalOrderID string
	Amount          int64
	Currency        string
	Status          PaymentStatus
	CompletedAt     *time.Time
	CreatedAt       time.Time
}

func (p Payment) Terminal() bool {
	return p.Status == PaymentStatusCompleted || p.Status == PaymentStatusFailed
}

type PaymentResponse struct {
	ExternalOrderID string     `json:"external_order_id"`
	Amount          int64      `json:"amount"`
	Currency        string     `json:"currency"`
	Status          string     `json:"status"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

func NewPaymentResponse(p Payment) PaymentResponse {
	return PaymentResponse{
		ExternalOrderID: p.ExternalOrderID,
		Amount:          p.Amount,
		Currency:        p.Currency,
		Status:          string(p.Status),
		CompletedAt:     p.CompletedAt,
	}
}

type PaymentCallbackRequest struct {
	ExternalOrderID string `json:"external_order_id" validate:"required"`
	Outcome         string `json:"outcome" validate:"required,oneof=success failure"`
	Amount          int64  `json:"amount" validate:"min=0"`
}
