package allocation

import (
	"context"
	"event-registration/model"
)

// Waitlist ranks waitlisted registrations of an event. Priorities come from a
// per-event sequence, so they are strictly increasing and never reused.
type Waitlist struct{}

func (Waitlist) NextPriority(ctx context.Context, tx Store, eventID string) (int32, error) {
	return tx.NextWaitlistPriority(ctx, eventID)
}

// ListOrdered returns the waitlist of an event, lowest priority first.
func (Waitlist) ListOrdered(ctx context.Context, tx Store, eventID string) ([]model.Registration, error) {
	waitlist, err := tx.ListWaitlist(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return sortedByPriority(waitlist), nil
}

// enqueue moves registration to the back of the waitlist.
func (w Waitlist) enqueue(ctx context.Context, tx Store, registration *model.Registration) error {
	priority, err := w.NextPriority(ctx, tx, registration.EventID)
	if err != nil {
		return err
	}

	registration.Status = model.RegistrationStatusWaitlist
	registration.WaitlistPriority = &priority
	registration.HoldsCapacity = false
	registration.AssignedTableID = nil

	return nil
}
