package model

import "time"

type EventStatus string

const (
	EventStatusOpen      EventStatus = "OPEN"
	EventStatusClosed    EventStatus = "CLOSED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

type PaymentTiming string

const (
	PaymentTimingNone             PaymentTiming = "NONE"
	PaymentTimingUpfront          PaymentTiming = "UPFRONT"
	PaymentTimingPostRegistration PaymentTiming = "POST_REGISTRATION"
)

type PricingModel string

const (
	PricingModelNone     PricingModel = "NONE"
	PricingModelFlatRate PricingModel = "FLAT_RATE"
	PricingModelPerGuest PricingModel = "PER_GUEST"
)

// Event is tenant scoped. A zero Capacity marks a table-based event whose
// inventory lives in its tables.
type Event struct {
	ID                string
	TenantID          string
	Name              string
	Capacity          int32
	ConfirmedSeats    int32
	MaxSpotsPerPerson int32
	Status            EventStatus
	StartsAt          time.Time
	PaymentRequired   bool
	PaymentTiming     PaymentTiming
	PricingModel      PricingModel
	PriceAmount       int64
	Currency          string
	WaitlistSeq       int32
	CreatedAt         time.Time
}

func (e Event) TableBased() bool {
	return e.Capacity == 0
}

func (e Event) RequiresUpfrontPayment() bool {
	return e.PaymentRequired && e.PaymentTiming == PaymentTimingUpfront
}

// AmountFor returns the amount due in minor currency units for a party.
func (e Event) AmountFor(partySize int32) int64 {
	if !e.PaymentRequired {
		return 0
	}

	switch e.PricingModel {
	case PricingModelFlatRate:
		return e.PriceAmount
	case PricingModelPerGuest:
		return e.PriceAmount * int64(partySize)
	default:
		return 0
	}
}

type TableStatus string

const (
	TableStatusAvailable TableStatus = "AVAILABLE"
	TableStatusReserved  TableStatus = "RESERVED"
	TableStatusInactive  TableStatus = "INACTIVE"
)

type Table struct {
	ID                     string
	TenantID               string
	EventID                string
	Name                   string
	Capacity               int32
	MinOrder               int32
	Status                 TableStatus
	DisplayOrder           int32
	ReservedRegistrationID *string
}

// Fits reports whether the table is free and sized for the party.
func (t Table) Fits(partySize int32) bool {
	return t.Status == TableStatusAvailable && t.MinOrder <= partySize && partySize <= t.Capacity
}

type CreateEventRequest struct {
	Name              string    `json:"name" validate:"required,max=200"`
	Capacity          int32     `json:"capacity" validate:"min=0"`
	MaxSpotsPerPerson int32     `json:"max_spots_per_person" validate:"required,min=1"`
	StartsAt          time.Time `json:"starts_at" validate:"required"`
	PaymentRequired   bool      `json:"payment_required"`
	PaymentTiming     string    `json:"payment_timing" validate:"omitempty,oneof=NONE UPFRONT POST_REGISTRATION"`
	PricingModel      string    `json:"pricing_model" validate:"omitempty,oneof=NONE FLAT_RATE PER_GUEST"`
	PriceAmount       int64     `json:"price_amount" validate:"min=0"`
	Currency          string    `json:"currency" validate:"omitempty,len=3"`
}

type UpdateCapacityRequest struct {
	Capacity int32 `json:"capacity" validate:"required,min=1"`
	Override bool  `json:"override"`
}

type CreateTableRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Capacity     int32  `json:"capacity" validate:"required,min=1"`
	MinOrder     int32  `json:"min_order" validate:"min=0"`
	DisplayOrder int32  `json:"display_order"`
}

type EventResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Capacity          int32     `json:"capacity"`
	ConfirmedSeats    int32     `json:"confirmed_seats"`
	MaxSpotsPerPerson int32     `json:"max_spots_per_person"`
	Status            string    `json:"status"`
	StartsAt          time.Time `json:"starts_at"`
	PaymentRequired   bool      `json:"payment_required"`
	PaymentTiming     string    `json:"payment_timing"`
	PriceAmount       int64     `json:"price_amount"`
	Currency          string    `json:"currency"`
}

func NewEventResponse(e Event) EventResponse {
	return EventResponse{
		ID:                e.ID,
		Name:              e.Name,
		Capacity:          e.Capacity,
		ConfirmedSeats:    e.ConfirmedSeats,
		MaxSpotsPerPerson: e.MaxSpotsPerPerson,
		Status:            string(e.Status),
		StartsAt:          e.StartsAt,
		PaymentRequired:   e.PaymentRequired,
		PaymentTiming:     string(e.PaymentTiming),
		PriceAmount:       e.PriceAmount,
		Currency:          e.Currency,
	}
}

type TableResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Capacity     int32  `json:"capacity"`
	MinOrder     int32  `json:"min_order"`
	Status       string `json:"status"`
	DisplayOrder int32  `json:"display_order"`
}

func NewTableResponse(t Table) TableResponse {
	return TableResponse{
		ID:           t.ID,
		Name:         t.Name,
		Capacity:     t.Capacity,
		MinOrder:     t.MinOrder,
		Status:       string(t.Status),
		DisplayOrder: t.DisplayOrder,
	}
}

type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}
