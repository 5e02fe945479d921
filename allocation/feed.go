package allocation

import (
	"context"
	"event-registration/common"
	"event-registration/common/errs"
	"event-registration/common/otel"
	"event-registration/model"
	"time"
)

// Feed is the pull based read model polled by live dashboards.
type Feed struct {
	Store Store
}

func (f Feed) RegistrationsSince(ctx context.Context, tenantID, eventID string, since time.Time) ([]model.Registration, error) {
	ctx, span := otel.Tracer.Start(ctx, "Feed.RegistrationsSince")
	defer span.End()

	if _, err := f.event(ctx, tenantID, eventID); err != nil {
		common.UtilSpanError(span, err)
		return nil, err
	}

	registrations, err := f.Store.ListRegistrationsSince(ctx, eventID, since)
	if err != nil {
		common.UtilSpanError(span, err)
		return nil, err
	}

	return registrations, nil
}

func (f Feed) StatusCounts(ctx context.Context, tenantID, eventID string) (model.StatusCounts, error) {
	ctx, span := otel.Tracer.Start(ctx, "Feed.StatusCounts")
	defer span.End()

	event, err := f.event(ctx, tenantID, eventID)
	if err != nil {
		common.UtilSpanError(span, err)
		return model.StatusCounts{}, err
	}

	counts, err := f.Store.CountRegistrations(ctx, eventID)
	if err != nil {
		common.UtilSpanError(span, err)
		return model.StatusCounts{}, err
	}

	return model.StatusCounts{
		Confirmed:      counts[model.RegistrationStatusConfirmed],
		Waitlist:       counts[model.RegistrationStatusWaitlist],
		Cancelled:      counts[model.RegistrationStatusCancelled],
		PendingPayment: counts[model.RegistrationStatusPendingPayment],
		ConfirmedSeats: event.ConfirmedSeats,
		Capacity:       event.Capacity,
	}, nil
}

func (f Feed) event(ctx context.Context, tenantID, eventID string) (model.Event, error) {
	event, err := f.Store.GetEvent(ctx, eventID)
	if err != nil {
		return model.Event{}, err
	}

	if event.TenantID != tenantID {
		return model.Event{}, errs.ErrCrossTenant
	}

	return event, nil
}
