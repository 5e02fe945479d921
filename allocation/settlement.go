package allocation

import (
	"context"
	"errors"
	"event-registration/common/errs"
	"event-registration/model"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"log/slog"
	"time"
)

// Settlement drives the payment lifecycle of a registration:
// PENDING -> COMPLETED | FAILED. Terminal payments are never reopened.
type Settlement struct {
	TimeNow func() time.Time
}

type CallbackResult struct {
	Payment      model.Payment
	Registration model.Registration
	// Replayed is set when the payment was already terminal and nothing changed.
	Replayed bool
}

// Initiate opens a PENDING payment for registration. An existing PENDING
// payment is returned unchanged so that a refreshed checkout does not open a
// second attempt.
func (s Settlement) Initiate(ctx context.Context, tx Store, registration *model.Registration, amount int64, currency string) (model.Payment, error) {
	if registration.PaymentStatus == model.PaymentStatusCompleted {
		return model.Payment{}, errs.Reject(errs.ErrInvalidTransition, errs.ReasonAlreadyPaid, nil)
	}

	pending, err := tx.GetPendingPayment(ctx, registration.ID)
	if err == nil {
		return pending, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return model.Payment{}, err
	}

	payment := model.Payment{
		ID:              uuid.NewString(),
		RegistrationID:  registration.ID,
		ExternalOrderID: ulid.Make().String(),
		Amount:          amount,
		Currency:        currency,
		Status:          model.PaymentStatusPending,
		CreatedAt:       s.TimeNow(),
	}

	if err := tx.InsertPayment(ctx, payment); err != nil {
		return model.Payment{}, err
	}

	registration.PaymentStatus = model.PaymentStatusPending
	registration.AmountDue = amount

	return payment, nil
}

// ApplyCallback settles the payment identified by externalOrderID. Only a
// PENDING payment transitions; for a terminal one the stored state is returned
// with Replayed set. The caller persists the returned registration.
func (s Settlement) ApplyCallback(ctx context.Context, tx Store, externalOrderID string, outcome model.PaymentOutcome, amount int64) (CallbackResult, error) {
	payment, err := tx.GetPaymentByExternalID(ctx, externalOrderID)
	if err != nil {
		return CallbackResult{}, err
	}

	registration, err := tx.GetRegistration(ctx, payment.RegistrationID)
	if err != nil {
		return CallbackResult{}, err
	}

	if payment.Terminal() {
		return CallbackResult{Payment: payment, Registration: registration, Replayed: true}, nil
	}

	status := model.PaymentStatusFailed
	if outcome == model.PaymentOutcomeSuccess {
		status = model.PaymentStatusCompleted
	}

	now := s.TimeNow()
	applied, err := tx.SettlePayment(ctx, externalOrderID, status, now)
	if err != nil {
		return CallbackResult{}, err
	}

	if !applied {
		payment, err = tx.GetPaymentByExternalID(ctx, externalOrderID)
		if err != nil {
			return CallbackResult{}, err
		}
		return CallbackResult{Payment: payment, Registration: registration, Replayed: true}, nil
	}

	payment.Status = status
	payment.CompletedAt = &now

	if status == model.PaymentStatusCompleted {
		if amount <= 0 {
			amount = payment.Amount
		}
		if amount != payment.Amount {
			slog.WarnContext(ctx, "payment amount mismatch",
				slog.String("registration_id", registration.ID),
				slog.String("external_order_id", externalOrderID),
				slog.Int64("expected", payment.Amount),
				slog.Int64("received", amount))
		}

		registration.PaymentStatus = model.PaymentStatusCompleted
		registration.AmountPaid = amount

		switch registration.Status {
		case model.RegistrationStatusPendingPayment:
			registration.Status = model.RegistrationStatusConfirmed
		case model.RegistrationStatusCancelled:
			slog.WarnContext(ctx, "payment completed for cancelled registration",
				slog.String("registration_id", registration.ID),
				slog.String("external_order_id", externalOrderID))
		}
	} else {
		registration.PaymentStatus = model.PaymentStatusFailed
	}

	return CallbackResult{Payment: payment, Registration: registration}, nil
}
