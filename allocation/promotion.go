package allocation

import (
	"context"
	"event-registration/common/constant"
	"event-registration/model"
	"log/slog"
)

// promote hands freed capacity to the waitlist. Capacity events are served
// strictly in order and stop at the first party that does not fit. Table
// events seat every party that gets a recommendation.
func (o *Orchestrator) promote(ctx context.Context, tx Store, out *outbox, eventID string) error {
	if !o.Cfg.AutoPromote {
		return nil
	}

	event, err := tx.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	if event.Status != model.EventStatusOpen {
		return nil
	}

	waitlist, err := o.Waitlist.ListOrdered(ctx, tx, event.ID)
	if err != nil || len(waitlist) == 0 {
		return err
	}

	if !event.TableBased() {
		for i := range waitlist {
			ok, err := tx.ReserveSeats(ctx, event.ID, waitlist[i].PartySize)
			if err != nil {
				return err
			}
			if !ok {
				break
			}

			if err := o.seat(ctx, tx, out, event, &waitlist[i], nil); err != nil {
				return err
			}
		}
		return nil
	}

	tables, err := tx.ListTables(ctx, event.ID)
	if err != nil {
		return err
	}

	for _, rec := range Recommend(waitlist, tables) {
		ok, err := tx.ReserveTable(ctx, rec.Table.ID, rec.Registration.ID)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		registration := rec.Registration
		tableID := rec.Table.ID
		if err := o.seat(ctx, tx, out, event, &registration, &tableID); err != nil {
			return err
		}
	}

	return nil
}

// seat marks a waitlisted registration as holding the capacity the caller
// already reserved for it.
func (o *Orchestrator) seat(ctx context.Context, tx Store, out *outbox, event model.Event, registration *model.Registration, tableID *string) error {
	registration.Status = seatedStatus(event, *registration)
	registration.WaitlistPriority = nil
	registration.HoldsCapacity = true
	registration.AssignedTableID = tableID

	if err := o.save(ctx, tx, registration); err != nil {
		return err
	}

	slog.InfoContext(ctx, "registration promoted",
		slog.String(constant.LogFieldEventId, event.ID),
		slog.String("registration_id", registration.ID),
		slog.String("status", string(registration.Status)))

	out.add(model.NotificationPromoted, event, *registration)
	return nil
}
