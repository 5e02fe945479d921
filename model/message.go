package model

import "fmt"

type SendEmailEventMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type PaymentCallbackEventMessage struct {
	ExternalOrderID string `json:"external_order_id"`
	Outcome         string `json:"outcome"`
	Amount          int64  `json:"amount"`
}

func (m PaymentCallbackEventMessage) MessageID() string {
	return "payment:" + m.ExternalOrderID + ":" + m.Outcome
}

type NotificationKind string

const (
	NotificationCreated   NotificationKind = "created"
	NotificationPromoted  NotificationKind = "promoted"
	NotificationSettled   NotificationKind = "settled"
	NotificationFailed    NotificationKind = "payment_failed"
	NotificationCancelled NotificationKind = "cancelled"
)

type RegistrationEventMessage struct {
	Kind             NotificationKind `json:"kind"`
	RegistrationID   string           `json:"registration_id"`
	TenantID         string           `json:"tenant_id"`
	EventID          string           `json:"event_id"`
	EventName        string           `json:"event_name"`
	Status           string           `json:"status"`
	ConfirmationCode string           `json:"confirmation_code"`
	PartySize        int32            `json:"party_size"`
	WaitlistPriority int32            `json:"waitlist_priority,omitempty"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	PaymentStatus    string           `json:"payment_status"`
	AmountDue        int64            `json:"amount_due"`
	AmountPaid       int64            `json:"amount_paid"`
	Currency         string           `json:"currency"`
	Version          int32            `json:"version"`
}

// MessageID identifies one change of a registration. Two notifications of the
// same kind for the same stored version are the same message.
func (m RegistrationEventMessage) MessageID() string {
	return fmt.Sprintf("registration:%s:%s:%d", m.RegistrationID, m.Kind, m.Version)
}

func NewRegistrationEventMessage(kind NotificationKind, event Event, r Registration) RegistrationEventMessage {
	return RegistrationEventMessage{
		Kind:             kind,
		RegistrationID:   r.ID,
		TenantID:         r.TenantID,
		EventID:          event.ID,
		EventName:        event.Name,
		Status:           string(r.Status),
		ConfirmationCode: r.ConfirmationCode,
		PartySize:        r.PartySize,
		WaitlistPriority: r.Priority(),
		Name:             r.Name,
		Email:            r.Email,
		PaymentStatus:    string(r.PaymentStatus),
		AmountDue:        r.AmountDue,
		AmountPaid:       r.AmountPaid,
		Currency:         event.Currency,
		Version:          r.Version,
	}
}
