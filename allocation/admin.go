package allocation

import (
	"context"
	"event-registration/common"
	"event-registration/common/errs"
	"event-registration/common/otel"
	"event-registration/model"
)

// Cancel cancels a registration, frees what it held and promotes from the
// waitlist. Cancelling twice is a no-op.
func (o *Orchestrator) Cancel(ctx context.Context, tenantID, registrationID string) (model.Registration, error) {
	ctx, span := otel.Tracer.Start(ctx, "Orchestrator.Cancel")
	defer span.End()

	var registration model.Registration
	err := o.run(ctx, func(tx Store, out *outbox) error {
		var event model.Event
		var err error
		registration, event, err = o.loadRegistration(ctx, tx, tenantID, registrationID)
		if err != nil {
			return err
		}

		if registration.Status == model.RegistrationStatusCancelled {
			return nil
		}

		held := registration.HoldsCapacity
		if err := o.Ledger.Release(ctx, tx, event, &registration); err != nil {
			return err
		}

		registration.Status = model.RegistrationStatusCancelled
		registration.WaitlistPriority = nil
		if err := o.save(ctx, tx, &registration); err != nil {
			return err
		}
		out.add(model.NotificationCancelled, event, registration)

		if held {
			return o.promote(ctx, tx, out, event.ID)
		}
		return nil
	})
	if err != nil {
		common.UtilSpanError(span, err)
		return model.Registration{}, err
	}

	return registration, nil
}

// MoveToWaitlist demotes a seated registration to the back of the waitlist.
// The freed capacity is not handed out automatically.
func (o *Orchestrator) MoveToWaitlist(ctx context.Context, tenantID, registrationID string) (model.Registration, error) {
	ctx, span := otel.Tracer.Start(ctx, "Orchestrator.MoveToWaitlist")
	defer span.End()

	var registration model.Registration
	err := o.run(ctx, func(tx Store, out *outbox) error {
		var event model.Event
		var err error
		registration, event, err = o.loadRegistration(ctx, tx, tenantID, registrationID)
		if err != nil {
			return err
		}

		switch registration.Status {
		case model.RegistrationStatusWaitlist:
			return nil
		case model.RegistrationStatusCancelled:
			return errs.Reject(errs.ErrInvalidTransition, errs.ReasonRegistrationCancelled, nil)
		}

		if err := o.Ledger.Release(ctx, tx, event, &registration); err != nil {
			return err
		}

		if err := o.Waitlist.enqueue(ctx, tx, &registration); err != nil {
			return err
		}

		return o.save(ctx, tx, &registration)
	})
	if err != nil {
		common.UtilSpanError(span, err)
		return model.Registration{}, err
	}

	return registration, nil
}

// Confirm seats a waitlisted party of a capacity event. Skipping a party
// ahead in the waitlist needs override.
func (o *Orchestrator) Confirm(ctx context.Context, tenantID, registrationID string, override bool) (model.Registration, error) {
	ctx, span := otel.Tracer.Start(ctx, "Orchestrator.Confirm")
	defer span.End()

	var registration model.Registration
	err := o.run(ctx, func(tx Store, out *outbox) error {
		var event model.Event
		var err error
		registration, event, err = o.loadRegistration(ctx, tx, tenantID, registrationID)
		if err != nil {
			return err
		}

		if !registration.Waitlisted() {
			return errs.Reject(errs.ErrInvalidTransition, errs.ReasonInvalidStatus, map[string]any{"status": registration.Status})
		}

		if event.TableBased() {
			return errs.Reject(errs.ErrInvalidTransition, errs.ReasonTableBasedEvent, nil)
		}

		if !override {
			waitlist, err := o.Waitlist.ListOrdered(ctx, tx, event.ID)
			if err != nil {
				return err
			}
			if len(waitlist) > 0 && waitlist[0].ID != registration.ID {
				return errs.Reject(errs.ErrPolicyViolation, errs.ReasonPrioritySkip, map[string]any{
					"head":             waitlist[0].ConfirmationCode,
					"head_priority":    waitlist[0].Priority(),
					"current_priority": registration.Priority(),
				})
			}
		}

		ok, err := tx.ReserveSeats(ctx, event.ID, registration.PartySize)
		if err != nil {
			return err
		}
		if !ok {
			return errs.Reject(errs.ErrCapacityExceeded, errs.ReasonNoCapacity, map[string]any{
				"available": event.Capacity - event.ConfirmedSeats,
			})
		}

		return o.seat(ctx, tx, out, event, &registration, nil)
	})
	if err != nil {
		common.UtilSpanError(span, err)
		return model.Registration{}, err
	}

	return registration, nil
}

// AssignTable seats a waitlisted party of a table-based event at tableID.
func (o *Orchestrator) AssignTable(ctx context.Context, tenantID, registrationID, tableID string, override bool) (model.Registration, error) {
	ctx, span := otel.Tracer.Start(ctx, "Orchestrator.AssignTable")
	defer span.End()

	var registration model.Registration
	err := o.run(ctx, func(tx Store, out *outbox) error {
		var event model.Event
		var err error
		registration, event, err = o.loadRegistration(ctx, tx, tenantID, registrationID)
		if err != nil {
			return err
		}

		if !registration.Waitlisted() {
			return errs.Reject(errs.ErrInvalidTransition, errs.ReasonInvalidStatus, map[string]any{"status": registration.Status})
		}

		if !event.TableBased() {
			return errs.Reject(errs.ErrInvalidTransition, errs.ReasonNotTableBased, nil)
		}

		table, err := tx.GetTable(ctx, tableID)
		if err != nil {
			return err
		}
		if table.EventID != event.ID {
			return errs.ErrNotFound
		}

		tables, err := tx.ListTables(ctx, event.ID)
		if err != nil {
			return err
		}

		waitlist, err := o.Waitlist.ListOrdered(ctx, tx, event.ID)
		if err != nil {
			return err
		}

		if err := CheckAssignment(registration, table, waitlist, tables, override); err != nil {
			return err
		}

		ok, err := tx.ReserveTable(ctx, table.ID, registration.ID)
		if err != nil {
			return err
		}
		if !ok {
			return errs.Reject(errs.ErrCapacityExceeded, errs.ReasonTableUnavailable, map[string]any{"table_id": table.ID})
		}

		return o.seat(ctx, tx, out, event, &registration, &table.ID)
	})
	if err != nil {
		common.UtilSpanError(span, err)
		return model.Registration{}, err
	}

	return registration, nil
}

// CompletePayment records a payment received outside the provider. It settles
// the open payment, opening one first when there is none.
func (o *Orchestrator) CompletePayment(ctx context.Context, tenantID, registrationID string) (model.Registration, error) {
	ctx, span := otel.Tracer.Start(ctx, "Orchestrator.CompletePayment")
	defer span.End()

	var registration model.Registration
	err := o.run(ctx, func(tx Store, out *outbox) error {
		var event model.Event
		var err error
		registration, event, err = o.loadRegistration(ctx, tx, tenantID, registrationID)
		if err != nil {
			return err
		}

		if registration.PaymentStatus == model.PaymentStatusCompleted {
			return nil
		}

		payment, err := o.ensurePayment(ctx, tx, event, &registration)
		if err != nil {
			return err
		}

		result, err := o.settle(ctx, tx, out, payment.ExternalOrderID, model.PaymentOutcomeSuccess, payment.Amount)
		if err != nil {
			return err
		}

		registration = result.Registration
		return nil
	})
	if err != nil {
		common.UtilSpanError(span, err)
		return model.Registration{}, err
	}

	return registration, nil
}

// UpdateCapacity changes the capacity of a capacity event. Going below the
// confirmed seats needs override, in which case capacity is clamped to them.
func (o *Orchestrator) UpdateCapacity(ctx context.Context, tenantID, eventID string, capacity int32, override bool) (model.Event, error) {
	ctx, span := otel.Tracer.Start(ctx, "Orchestrator.UpdateCapacity")
	defer span.End()

	var event model.Event
	err := o.run(ctx, func(tx Store, out *outbox) error {
		var err error
		event, err = o.loadEvent(ctx, tx, tenantID, eventID)
		if err != nil {
			return err
		}

		if event.TableBased() {
			return errs.Reject(errs.ErrInvalidTransition, errs.ReasonTableBasedEvent, nil)
		}

		if capacity < 1 {
			return errs.Reject(errs.ErrInvalidArgument, errs.ReasonInvalidCapacity, map[string]any{"capacity": capacity})
		}

		ok, err := tx.UpdateCapacity(ctx, event.ID, capacity)
		if err != nil {
			return err
		}

		applied := capacity
		if !ok {
			if !override {
				return errs.Reject(errs.ErrPolicyViolation, errs.ReasonCapacityBelowConfirmed, map[string]any{
					"capacity":        capacity,
					"confirmed_seats": event.ConfirmedSeats,
				})
			}

			applied, err = tx.ClampCapacity(ctx, event.ID, capacity)
			if err != nil {
				return err
			}
		}

		if applied > event.Capacity {
			if err := o.promote(ctx, tx, out, event.ID); err != nil {
				return err
			}
		}

		event, err = tx.GetEvent(ctx, event.ID)
		return err
	})
	if err != nil {
		common.UtilSpanError(span, err)
		return model.Event{}, err
	}

	return event, nil
}

// WaitlistRecommendations lists the waitlisted parties that could be seated
// now, in priority order, together with the table each would get.
func (o *Orchestrator) WaitlistRecommendations(ctx context.Context, tenantID, eventID string) ([]model.WaitlistRecommendation, error) {
	ctx, span := otel.Tracer.Start(ctx, "Orchestrator.WaitlistRecommendations")
	defer span.End()

	var recs []model.WaitlistRecommendation
	err := o.Store.InTx(ctx, func(tx Store) error {
		recs = nil

		event, err := o.loadEvent(ctx, tx, tenantID, eventID)
		if err != nil {
			return err
		}

		waitlist, err := o.Waitlist.ListOrdered(ctx, tx, event.ID)
		if err != nil {
			return err
		}

		if !event.TableBased() {
			remaining := event.Capacity - event.ConfirmedSeats
			for _, registration := range waitlist {
				if registration.PartySize > remaining {
					break
				}
				remaining -= registration.PartySize
				recs = append(recs, newWaitlistRecommendation(registration, nil))
			}
			return nil
		}

		tables, err := tx.ListTables(ctx, event.ID)
		if err != nil {
			return err
		}

		for _, rec := range Recommend(waitlist, tables) {
			table := rec.Table
			recs = append(recs, newWaitlistRecommendation(rec.Registration, &table))
		}
		return nil
	})
	if err != nil {
		common.UtilSpanError(span, err)
		return nil, err
	}

	return recs, nil
}

func newWaitlistRecommendation(registration model.Registration, table *model.Table) model.WaitlistRecommendation {
	rec := model.WaitlistRecommendation{
		RegistrationID:   registration.ID,
		ConfirmationCode: registration.ConfirmationCode,
		PartySize:        registration.PartySize,
		Priority:         registration.Priority(),
	}
	if table != nil {
		rec.TableID = &table.ID
		rec.TableCapacity = table.Capacity
	}
	return rec
}
