package repository

import (
	"encoding/json"
	"event-registration/model"
	"event-registration/outbound/sqlgen"
	"fmt"
	"github.com/jackc/pgx/v5/pgtype"
	"time"
)

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func optionalTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return timestamptz(*t)
}

func timePtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func int4(n *int32) pgtype.Int4 {
	if n == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: *n, Valid: true}
}

func int32Ptr(n pgtype.Int4) *int32 {
	if !n.Valid {
		return nil
	}
	return &n.Int32
}

func text(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func stringPtr(s pgtype.Text) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func toEvent(row sqlgen.Event) model.Event {
	return model.Event{
		ID:                row.ID,
		TenantID:          row.TenantID,
		Name:              row.Name,
		Capacity:          row.Capacity,
		ConfirmedSeats:    row.ConfirmedSeats,
		MaxSpotsPerPerson: row.MaxSpotsPerPerson,
		Status:            model.EventStatus(row.Status),
		StartsAt:          row.StartsAt.Time,
		PaymentRequired:   row.PaymentRequired,
		PaymentTiming:     model.PaymentTiming(row.PaymentTiming),
		PricingModel:      model.PricingModel(row.PricingModel),
		PriceAmount:       row.PriceAmount,
		Currency:          row.Currency,
		WaitlistSeq:       row.WaitlistSeq,
		CreatedAt:         row.CreatedAt.Time,
	}
}

func toEvents(rows []sqlgen.Event) []model.Event {
	events := make([]model.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, toEvent(row))
	}
	return events
}

func toTable(row sqlgen.EventTable) model.Table {
	return model.Table{
		ID:                     row.ID,
		TenantID:               row.TenantID,
		EventID:                row.EventID,
		Name:                   row.Name,
		Capacity:               row.Capacity,
		MinOrder:               row.MinOrder,
		Status:                 model.TableStatus(row.Status),
		DisplayOrder:           row.DisplayOrder,
		ReservedRegistrationID: stringPtr(row.ReservedRegistrationID),
	}
}

func toRegistration(row sqlgen.Registration) (model.Registration, error) {
	var data map[string]any
	if len(row.Data) > 0 {
		if err := json.Unmarshal(row.Data, &data); err != nil {
			return model.Registration{}, fmt.Errorf("registration %s data: %w", row.ID, err)
		}
	}

	return model.Registration{
		ID:               row.ID,
		TenantID:         row.TenantID,
		EventID:          row.EventID,
		PartySize:        row.PartySize,
		Status:           model.RegistrationStatus(row.Status),
		WaitlistPriority: int32Ptr(row.WaitlistPriority),
		ConfirmationCode: row.ConfirmationCode,
		PhoneNumber:      row.PhoneNumber,
		Email:            row.Email,
		Name:             row.Name,
		PaymentStatus:    model.PaymentStatus(row.PaymentStatus),
		AmountDue:        row.AmountDue,
		AmountPaid:       row.AmountPaid,
		AssignedTableID:  stringPtr(row.AssignedTableID),
		HoldsCapacity:    row.HoldsCapacity,
		Data:             data,
		Version:          row.Version,
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}, nil
}

func toRegistrations(rows []sqlgen.Registration) ([]model.Registration, error) {
	registrations := make([]model.Registration, 0, len(rows))
	for _, row := range rows {
		registration, err := toRegistration(row)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, registration)
	}
	return registrations, nil
}

func toPayment(row sqlgen.Payment) model.Payment {
	return model.Payment{
		ID:              row.ID,
		RegistrationID:  row.RegistrationID,
		ExternalOrderID: row.ExternalOrderID,
		Amount:          row.Amount,
		Currency:        row.Currency,
		Status:          model.PaymentStatus(row.Status),
		CompletedAt:     timePtr(row.CompletedAt),
		CreatedAt:       row.CreatedAt.Time,
	}
}

func toBan(row sqlgen.Ban) model.Ban {
	return model.Ban{
		ID:                 row.ID,
		TenantID:           row.TenantID,
		PhoneNumber:        row.PhoneNumber,
		Reason:             row.Reason,
		CountLimit:         int32Ptr(row.CountLimit),
		EventsBlockedSoFar: row.EventsBlockedSoFar,
		ExpiresAt:          timePtr(row.ExpiresAt),
		Active:             row.Active,
		CreatedAt:          row.CreatedAt.Time,
	}
}
