package model

import "time"

type Ban struct {
	ID                 string
	TenantID           string
	PhoneNumber        string
	Reason             string
	CountLimit         *int32
	EventsBlockedSoFar int32
	ExpiresAt          *time.Time
	Active             bool
	CreatedAt          time.Time
}

// SatisfiedAt reports whether the ban no longer blocks registration at now.
func (b Ban) SatisfiedAt(now time.Time) bool {
	if !b.Active {
		return true
	}
	if b.ExpiresAt != nil && !b.ExpiresAt.After(now) {
		return true
	}
	if b.CountLimit != nil && b.EventsBlockedSoFar >= *b.CountLimit {
		return true
	}
	return false
}

type BanCheck struct {
	Blocked         bool       `json:"blocked"`
	Reason          string     `json:"reason,omitempty"`
	RemainingEvents *int32     `json:"remaining_events,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

type CreateBanRequest struct {
	PhoneNumber string     `json:"phone_number" validate:"required,max=32"`
	Reason      string     `json:"reason" validate:"required,max=500"`
	CountLimit  *int32     `json:"count_limit" validate:"omitempty,min=1"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type BanResponse struct {
	ID                 string     `json:"id"`
	PhoneNumber        string     `json:"phone_number"`
	Reason             string     `json:"reason"`
	CountLimit         *int32     `json:"count_limit,omitempty"`
	EventsBlockedSoFar int32      `json:"events_blocked_so_far"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
	Active             bool       `json:"active"`
}

func NewBanResponse(b Ban) BanResponse {
	return BanResponse{
		ID:                 b.ID,
		PhoneNumber:        b.PhoneNumber,
		Reason:             b.Reason,
		CountLimit:         b.CountLimit,
		EventsBlockedSoFar: b.EventsBlockedSoFar,
		ExpiresAt:          b.ExpiresAt,
		Active:             b.Active,
	}
}
