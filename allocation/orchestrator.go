package allocation

import (
	"context"
	"errors"
	"event-registration/common"
	"event-registration/common/constant"
	"event-registration/common/errs"
	"event-registration/common/otel"
	"event-registration/model"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"log/slog"
	"time"
)

type Config struct {
	AutoPromote bool
	Retry       RetryConfig
}

// Orchestrator is the single entry point that mutates seat counters, table
// inventory, waitlists and settlements.
type Orchestrator struct {
	Store      Store
	Ledger     Ledger
	Waitlist   Waitlist
	Settlement Settlement
	BanGate    BanGate
	Notifier   Notifier
	Cfg        Config

	TimeNow func() time.Time
}

func NewOrchestrator(store Store, notifier Notifier, cfg Config) *Orchestrator {
	if cfg.Retry.MaxRetries == 0 {
		cfg.Retry.MaxRetries = 3
	}
	if cfg.Retry.InitialInterval <= 0 {
		cfg.Retry.InitialInterval = 10 * time.Millisecond
	}
	if cfg.Retry.MaxInterval <= 0 {
		cfg.Retry.MaxInterval = 200 * time.Millisecond
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}

	o := &Orchestrator{
		Store:    store,
		Ledger:   Ledger{Store: store, Retry: cfg.Retry},
		Notifier: notifier,
		Cfg:      cfg,
		TimeNow:  time.Now,
	}

	clock := func() time.Time { return o.TimeNow() }
	o.Settlement = Settlement{TimeNow: clock}
	o.BanGate = BanGate{TimeNow: clock}

	return o
}

type RegisterCommand struct {
	TenantID    string
	EventID     string
	PhoneNumber string
	Email       string
	Name        string
	PartySize   int32
	Data        map[string]any
}

// Register is the direct registration path. Events that take payment upfront
// are rejected here whatever the caller claims; they go through Checkout.
func (o *Orchestrator) Register(ctx context.Context, cmd RegisterCommand) (model.Registration, error) {
	ctx, span := otel.Tracer.Start(ctx, "Orchestrator.Register")
	defer span.End()

	var registration model.Registration
	err := o.run(ctx, func(tx Store, out *outbox) error {
		event, err := o.loadEvent(ctx, tx, cmd.TenantID, cmd.EventID)
		if err != nil {
			return err
		}

		if event.RequiresUpfrontPayment() {
			return errs.Reject(errs.ErrPaymentRequired, errs.ReasonRequiresUpfrontPayment, nil)
		}

		if err := o.checkAdmissible(ctx, tx, event, cmd); err != nil {
			return err
		}

		registration, err = o.admit(ctx, tx, event, cmd)
		if err != nil {
			return err
		}

		out.add(model.NotificationCreated, event, registration)
		return nil
	})
	if err != nil {
		common.UtilSpanError(span, err)
		return model.Registration{}, err
	}

	return registration, nil
}

// Checkout is the payment initiation path. It admits the party and opens a
// payment in the same transaction. On an upfront event an admitted party is
// held as PENDING_PAYMENT until the payment settles; a waitlisted one pays
// once promoted.
func (o *Orchestrator) Checkout(ctx context.Context, cmd RegisterCommand) (model.Registration, *model.Payment, error) {
	ctx, span := otel.Tracer.Start(ctx, "Orchestrator.Checkout")
	defer span.End()

	var registration model.Registration
	var payment *model.Payment
	err := o.run(ctx, func(tx Store, out *outbox) error {
		payment = nil

		event, err := o.loadEvent(ctx, tx, cmd.TenantID, cmd.EventID)
		if err != nil {
			return err
		}

		if err := o.checkAdmissible(ctx, tx, event, cmd); err != nil {
			return err
		}

		registration, err = o.admit(ctx, tx, event, cmd)
		if err != nil {
			return err
		}

		payable := registration.HoldsCapacity || event.PaymentTiming == model.PaymentTimingPostRegistration
		if event.PaymentRequired && payable {
			initiated, err := o.Settlement.Initiate(ctx, tx, &registration, amountDue(event, registration), event.Currency)
			if err != nil {
				return err
			}
			payment = &initiated

			if err := o.save(ctx, tx, &registration); err != nil {
				return err
			}
		}

		out.add(model.NotificationCreated, event, registration)
		return nil
	})
	if err != nil {
		common.UtilSpanError(span, err)
		return model.Registration{}, nil, err
	}

	return registration, payment, nil
}

// InitiatePayment opens (or returns the open) payment for a registration
// identified by its confirmation code. A provisional registration that lost
// its hold after a failed payment is re-admitted first.
func (o *Orchestrator) InitiatePayment(ctx context.Context, tenantID, confirmationCode string) (model.Payment, error) {
	ctx, span := otel.Tracer.Start(ctx, "Orchestrator.InitiatePayment")
	defer span.End()

	var payment model.Payment
	err := o.run(ctx, func(tx Store, out *outbox) error {
		registration, err := tx.GetRegistrationByCode(ctx, confirmationCode)
		if err != nil {
			return err
		}

		if registration.TenantID != tenantID {
			return errs.ErrCrossTenant
		}

		event, err := tx.GetEvent(ctx, registration.EventID)
		if err != nil {
			return err
		}

		payment, err = o.ensurePayment(ctx, tx, event, &registration)
		return err
	})
	if err != nil {
		common.UtilSpanError(span, err)
		return model.Payment{}, err
	}

	return payment, nil
}

// ApplyPaymentCallback applies a provider callback exactly once. Replays of a
// terminal payment return the stored state with Replayed set.
func (o *Orchestrator) ApplyPaymentCallback(ctx context.Context, externalOrderID string, outcome model.PaymentOutcome, amount int64) (CallbackResult, error) {
	ctx, span := otel.Tracer.Start(ctx, "Orchestrator.ApplyPaymentCallback")
	defer span.End()

	var result CallbackResult
	err := o.run(ctx, func(tx Store, out *outbox) error {
		var err error
		result, err = o.settle(ctx, tx, out, externalOrderID, outcome, amount)
		return err
	})
	if err != nil {
		common.UtilSpanError(span, err)
		return CallbackResult{}, err
	}

	return result, nil
}

func (o *Orchestrator) settle(ctx context.Context, tx Store, out *outbox, externalOrderID string, outcome model.PaymentOutcome, amount int64) (CallbackResult, error) {
	result, err := o.Settlement.ApplyCallback(ctx, tx, externalOrderID, outcome, amount)
	if err != nil || result.Replayed {
		return result, err
	}

	registration := result.Registration
	event, err := tx.GetEvent(ctx, registration.EventID)
	if err != nil {
		return CallbackResult{}, err
	}

	released := false
	switch {
	case result.Payment.Status == model.PaymentStatusFailed && event.RequiresUpfrontPayment() &&
		registration.Status == model.RegistrationStatusPendingPayment && registration.HoldsCapacity:
		if err := o.Ledger.Release(ctx, tx, event, &registration); err != nil {
			return CallbackResult{}, err
		}
		released = true

	case result.Payment.Status == model.PaymentStatusCompleted && event.RequiresUpfrontPayment() &&
		registration.Status == model.RegistrationStatusConfirmed && !registration.HoldsCapacity:
		admission, err := o.Ledger.Admit(ctx, tx, event, registration.ID, registration.PartySize)
		if err != nil {
			return CallbackResult{}, err
		}
		if admission.Confirmed {
			registration.HoldsCapacity = true
			registration.AssignedTableID = admission.TableID
		} else {
			registration.Status = model.RegistrationStatusPendingPayment
			slog.WarnContext(ctx, "payment completed without capacity to hold",
				slog.String("registration_id", registration.ID),
				slog.String(constant.LogFieldEventId, event.ID))
		}
	}

	if err := o.save(ctx, tx, &registration); err != nil {
		return CallbackResult{}, err
	}
	result.Registration = registration

	kind := model.NotificationSettled
	if result.Payment.Status == model.PaymentStatusFailed {
		kind = model.NotificationFailed
	}
	out.add(kind, event, registration)

	if released {
		if err := o.promote(ctx, tx, out, event.ID); err != nil {
			return CallbackResult{}, err
		}
	}

	return result, nil
}

func (o *Orchestrator) ensurePayment(ctx context.Context, tx Store, event model.Event, registration *model.Registration) (model.Payment, error) {
	if !event.PaymentRequired {
		return model.Payment{}, errs.Reject(errs.ErrInvalidTransition, errs.ReasonPaymentNotRequired, nil)
	}

	if registration.Status == model.RegistrationStatusCancelled {
		return model.Payment{}, errs.Reject(errs.ErrInvalidTransition, errs.ReasonRegistrationCancelled, nil)
	}

	if registration.PaymentStatus == model.PaymentStatusCompleted {
		return model.Payment{}, errs.Reject(errs.ErrInvalidTransition, errs.ReasonAlreadyPaid, nil)
	}

	if event.RequiresUpfrontPayment() {
		if registration.Waitlisted() {
			return model.Payment{}, errs.Reject(errs.ErrInvalidTransition, errs.ReasonWaitlisted, nil)
		}

		if !registration.HoldsCapacity {
			admission, err := o.Ledger.Admit(ctx, tx, event, registration.ID, registration.PartySize)
			if err != nil {
				return model.Payment{}, err
			}
			if !admission.Confirmed {
				return model.Payment{}, errs.Reject(errs.ErrCapacityExceeded, errs.ReasonNoCapacity, nil)
			}

			registration.Status = model.RegistrationStatusPendingPayment
			registration.HoldsCapacity = true
			registration.AssignedTableID = admission.TableID
		}
	}

	payment, err := o.Settlement.Initiate(ctx, tx, registration, amountDue(event, *registration), event.Currency)
	if err != nil {
		return model.Payment{}, err
	}

	if err := o.save(ctx, tx, registration); err != nil {
		return model.Payment{}, err
	}

	return payment, nil
}

func (o *Orchestrator) checkAdmissible(ctx context.Context, tx Store, event model.Event, cmd RegisterCommand) error {
	if event.Status != model.EventStatusOpen {
		return errs.Reject(errs.ErrEventClosed, errs.ReasonEventClosed, map[string]any{"status": event.Status})
	}

	if !event.StartsAt.IsZero() && !event.StartsAt.After(o.TimeNow()) {
		return errs.Reject(errs.ErrEventPast, errs.ReasonEventPast, map[string]any{"starts_at": event.StartsAt})
	}

	if err := o.checkPartySize(ctx, tx, event, cmd.PartySize); err != nil {
		return err
	}

	check, err := o.BanGate.Check(ctx, tx, event.TenantID, cmd.PhoneNumber)
	if err != nil {
		return err
	}

	if check.Blocked {
		return errs.Reject(errs.ErrBlocked, errs.ReasonBanned, check)
	}

	return nil
}

func (o *Orchestrator) checkPartySize(ctx context.Context, tx Store, event model.Event, partySize int32) error {
	invalid := func(limit int32) error {
		return errs.Reject(errs.ErrInvalidPartySize, errs.ReasonInvalidPartySize, map[string]any{"party_size": partySize, "max": limit})
	}

	if partySize < 1 {
		return invalid(event.MaxSpotsPerPerson)
	}

	if event.MaxSpotsPerPerson > 0 && partySize > event.MaxSpotsPerPerson {
		return invalid(event.MaxSpotsPerPerson)
	}

	if !event.TableBased() {
		if partySize > event.Capacity {
			return invalid(event.Capacity)
		}
		return nil
	}

	tables, err := tx.ListTables(ctx, event.ID)
	if err != nil {
		return err
	}

	var largest int32
	for _, table := range tables {
		if table.Status != model.TableStatusInactive && table.Capacity > largest {
			largest = table.Capacity
		}
	}

	if partySize > largest {
		return invalid(largest)
	}

	return nil
}

func (o *Orchestrator) admit(ctx context.Context, tx Store, event model.Event, cmd RegisterCommand) (model.Registration, error) {
	now := o.TimeNow()
	registration := model.Registration{
		ID:               uuid.NewString(),
		TenantID:         event.TenantID,
		EventID:          event.ID,
		PartySize:        cmd.PartySize,
		ConfirmationCode: ulid.Make().String(),
		PhoneNumber:      model.NormalizePhone(cmd.PhoneNumber),
		Email:            cmd.Email,
		Name:             cmd.Name,
		PaymentStatus:    model.PaymentStatusNone,
		AmountDue:        event.AmountFor(cmd.PartySize),
		Data:             cmd.Data,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	admission, err := o.Ledger.Admit(ctx, tx, event, registration.ID, registration.PartySize)
	if err != nil {
		return model.Registration{}, err
	}

	if admission.Confirmed {
		registration.Status = seatedStatus(event, registration)
		registration.HoldsCapacity = true
		registration.AssignedTableID = admission.TableID
	} else if err := o.Waitlist.enqueue(ctx, tx, &registration); err != nil {
		return model.Registration{}, err
	}

	if err := tx.InsertRegistration(ctx, registration); err != nil {
		return model.Registration{}, err
	}

	slog.InfoContext(ctx, "registration admitted",
		slog.String(constant.LogFieldEventId, event.ID),
		slog.String("registration_id", registration.ID),
		slog.String("status", string(registration.Status)))

	return registration, nil
}

func (o *Orchestrator) loadEvent(ctx context.Context, tx Store, tenantID, eventID string) (model.Event, error) {
	event, err := tx.GetEvent(ctx, eventID)
	if err != nil {
		return model.Event{}, err
	}

	if event.TenantID != tenantID {
		return model.Event{}, errs.ErrCrossTenant
	}

	return event, nil
}

func (o *Orchestrator) loadRegistration(ctx context.Context, tx Store, tenantID, registrationID string) (model.Registration, model.Event, error) {
	registration, err := tx.GetRegistration(ctx, registrationID)
	if err != nil {
		return model.Registration{}, model.Event{}, err
	}

	if registration.TenantID != tenantID {
		return model.Registration{}, model.Event{}, errs.ErrCrossTenant
	}

	event, err := tx.GetEvent(ctx, registration.EventID)
	if err != nil {
		return model.Registration{}, model.Event{}, err
	}

	return registration, event, nil
}

// save persists registration and refreshes it with the stored version.
func (o *Orchestrator) save(ctx context.Context, tx Store, registration *model.Registration) error {
	registration.UpdatedAt = o.TimeNow()

	saved, err := tx.UpdateRegistration(ctx, *registration)
	if err != nil {
		return err
	}

	*registration = saved
	return nil
}

// run wraps Ledger.Run and delivers the collected notifications once the
// transaction committed.
func (o *Orchestrator) run(ctx context.Context, fn func(tx Store, out *outbox) error) error {
	var out outbox
	err := o.Ledger.Run(ctx, func(tx Store) error {
		out = outbox{}
		return fn(tx, &out)
	})
	if err != nil {
		return err
	}

	for _, n := range out.notices {
		if err := o.Notifier.Notify(ctx, n.kind, n.event, n.registration); err != nil {
			slog.ErrorContext(ctx, "failed to notify registration change",
				slog.String("kind", string(n.kind)),
				slog.String("registration_id", n.registration.ID),
				slog.Any(constant.LogFieldErr, err))
		}
	}

	return nil
}

// seatedStatus is the status of a party that holds capacity.
func seatedStatus(event model.Event, registration model.Registration) model.RegistrationStatus {
	if event.RequiresUpfrontPayment() && registration.PaymentStatus != model.PaymentStatusCompleted {
		return model.RegistrationStatusPendingPayment
	}
	return model.RegistrationStatusConfirmed
}

func amountDue(event model.Event, registration model.Registration) int64 {
	if registration.AmountDue > 0 {
		return registration.AmountDue
	}
	return event.AmountFor(registration.PartySize)
}

// IsRejection reports whether err is a business outcome rather than a failure.
func IsRejection(err error) bool {
	var rejection *errs.Rejection
	return errors.As(err, &rejection) || errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrCrossTenant)
}
