package allocation_test

import (
	"bytes"
	"context"
	"event-registration/common/errs"
	"event-registration/model"
	"log/slog"
	"time"
)

func upfront(capacity int32) func(e *model.Event) {
	return func(e *model.Event) {
		e.Capacity = capacity
		e.PaymentRequired = true
		e.PaymentTiming = model.PaymentTimingUpfront
		e.PricingModel = model.PricingModelPerGuest
		e.PriceAmount = 1000
	}
}

func postRegistration(e *model.Event) {
	e.PaymentRequired = true
	e.PaymentTiming = model.PaymentTimingPostRegistration
	e.PricingModel = model.PricingModelFlatRate
	e.PriceAmount = 5000
}

func (s *OrchestratorTestSuite) TestCheckout_Upfront() {
	event := s.seedEvent(upfront(2))

	registration, payment, err := s.Orchestrator.Checkout(context.Background(), s.command(event, "+62811000001", 2))
	s.Require().NoError(err)
	s.Require().NotNil(payment)

	s.Equal(model.RegistrationStatusPendingPayment, registration.Status)
	s.Equal(model.PaymentStatusPending, registration.PaymentStatus)
	s.Equal(int64(2000), registration.AmountDue)
	s.True(registration.HoldsCapacity)
	s.Equal(model.PaymentStatusPending, payment.Status)
	s.Equal(int64(2000), payment.Amount)
	s.Equal("IDR", payment.Currency)
	s.NotEmpty(payment.ExternalOrderID)
	s.Equal(int32(2), s.event(event.ID).ConfirmedSeats)

	waiting, payment, err := s.Orchestrator.Checkout(context.Background(), s.command(event, "+62811000002", 1))
	s.Require().NoError(err)
	s.Nil(payment)
	s.Equal(model.RegistrationStatusWaitlist, waiting.Status)
	s.Equal(model.PaymentStatusNone, waiting.PaymentStatus)

	_, err = s.Orchestrator.InitiatePayment(context.Background(), tenantID, waiting.ConfirmationCode)
	s.ErrorIs(err, errs.ErrInvalidTransition)
	s.Equal(errs.ReasonWaitlisted, errs.ReasonOf(err))
}

func (s *OrchestratorTestSuite) TestCheckout_FreeEvent() {
	event := s.seedEvent(nil)

	registration, payment, err := s.Orchestrator.Checkout(context.Background(), s.command(event, "+62811000001", 2))
	s.Require().NoError(err)

	s.Nil(payment)
	s.Equal(model.RegistrationStatusConfirmed, registration.Status)

	_, err = s.Orchestrator.InitiatePayment(context.Background(), tenantID, registration.ConfirmationCode)
	s.ErrorIs(err, errs.ErrInvalidTransition)
	s.Equal(errs.ReasonPaymentNotRequired, errs.ReasonOf(err))
}

func (s *OrchestratorTestSuite) TestApplyPaymentCallback_Idempotent() {
	event := s.seedEvent(upfront(5))

	registration, payment, err := s.Orchestrator.Checkout(context.Background(), s.command(event, "+62811000001", 3))
	s.Require().NoError(err)

	first, err := s.Orchestrator.ApplyPaymentCallback(context.Background(), payment.ExternalOrderID, model.PaymentOutcomeSuccess, 3000)
	s.Require().NoError(err)
	s.False(first.Replayed)
	s.Equal(model.PaymentStatusCompleted, first.Payment.Status)
	s.Require().NotNil(first.Payment.CompletedAt)
	s.Equal(model.RegistrationStatusConfirmed, first.Registration.Status)
	s.Equal(model.PaymentStatusCompleted, first.Registration.PaymentStatus)
	s.Equal(int64(3000), first.Registration.AmountPaid)

	second, err := s.Orchestrator.ApplyPaymentCallback(context.Background(), payment.ExternalOrderID, model.PaymentOutcomeSuccess, 3000)
	s.Require().NoError(err)
	s.True(second.Replayed)
	s.Equal(first.Payment.CompletedAt, second.Payment.CompletedAt)
	s.Equal(int64(3000), second.Registration.AmountPaid)

	failed, err := s.Orchestrator.ApplyPaymentCallback(context.Background(), payment.ExternalOrderID, model.PaymentOutcomeFailure, 0)
	s.Require().NoError(err)
	s.True(failed.Replayed)
	s.Equal(model.PaymentStatusCompleted, failed.Payment.Status)

	payments := s.Store.Payments(registration.ID)
	s.Require().Len(payments, 1)
	s.Equal(model.PaymentStatusCompleted, payments[0].Status)
	s.Equal(1, s.Notifier.count(model.NotificationSettled))
	s.Equal(int32(3), s.event(event.ID).ConfirmedSeats)

	_, err = s.Orchestrator.InitiatePayment(context.Background(), tenantID, registration.ConfirmationCode)
	s.ErrorIs(err, errs.ErrInvalidTransition)
	s.Equal(errs.ReasonAlreadyPaid, errs.ReasonOf(err))
}

func (s *OrchestratorTestSuite) TestApplyPaymentCallback_AmountMismatch() {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, nil)))
	defer slog.SetDefault(prev)

	event := s.seedEvent(upfront(2))

	_, payment, err := s.Orchestrator.Checkout(context.Background(), s.command(event, "+62811000001", 2))
	s.Require().NoError(err)
	s.Equal(int64(2000), payment.Amount)

	result, err := s.Orchestrator.ApplyPaymentCallback(context.Background(), payment.ExternalOrderID, model.PaymentOutcomeSuccess, 1500)
	s.Require().NoError(err)

	s.Equal(model.PaymentStatusCompleted, result.Payment.Status)
	s.Equal(int64(1500), result.Registration.AmountPaid)
	s.Contains(logs.String(), `"msg":"payment amount mismatch"`)
	s.Contains(logs.String(), `"expected":2000`)
	s.Contains(logs.String(), `"received":1500`)
}

func (s *OrchestratorTestSuite) TestApplyPaymentCallback_UnknownOrder() {
	_, err := s.Orchestrator.ApplyPaymentCallback(context.Background(), "missing", model.PaymentOutcomeSuccess, 0)

	s.ErrorIs(err, errs.ErrNotFound)
}

func (s *OrchestratorTestSuite) TestApplyPaymentCallback_FailureReleasesUpfrontHold() {
	event := s.seedEvent(upfront(2))

	payer, payment, err := s.Orchestrator.Checkout(context.Background(), s.command(event, "+62811000001", 2))
	s.Require().NoError(err)

	waiting, _, err := s.Orchestrator.Checkout(context.Background(), s.command(event, "+62811000002", 1))
	s.Require().NoError(err)
	s.Equal(model.RegistrationStatusWaitlist, waiting.Status)

	result, err := s.Orchestrator.ApplyPaymentCallback(context.Background(), payment.ExternalOrderID, model.PaymentOutcomeFailure, 0)
	s.Require().NoError(err)
	s.Equal(model.PaymentStatusFailed, result.Payment.Status)
	s.Equal(model.PaymentStatusFailed, result.Registration.PaymentStatus)
	s.Equal(model.RegistrationStatusPendingPayment, result.Registration.Status)
	s.False(result.Registration.HoldsCapacity)

	promoted := s.reload(waiting)
	s.Equal(model.RegistrationStatusPendingPayment, promoted.Status)
	s.True(promoted.HoldsCapacity)
	s.Equal(int32(1), s.event(event.ID).ConfirmedSeats)

	_, err = s.Orchestrator.InitiatePayment(context.Background(), tenantID, payer.ConfirmationCode)
	s.ErrorIs(err, errs.ErrCapacityExceeded)
	s.Equal(errs.ReasonNoCapacity, errs.ReasonOf(err))

	promotedPayment, err := s.Orchestrator.InitiatePayment(context.Background(), tenantID, promoted.ConfirmationCode)
	s.Require().NoError(err)
	s.Equal(int64(1000), promotedPayment.Amount)

	settled, err := s.Orchestrator.ApplyPaymentCallback(context.Background(), promotedPayment.ExternalOrderID, model.PaymentOutcomeSuccess, 0)
	s.Require().NoError(err)
	s.Equal(model.RegistrationStatusConfirmed, settled.Registration.Status)
	s.Equal(int64(1000), settled.Registration.AmountPaid)

	_, err = s.Orchestrator.Cancel(context.Background(), tenantID, promoted.ID)
	s.Require().NoError(err)

	s.Now = s.Now.Add(time.Minute)
	retry, err := s.Orchestrator.InitiatePayment(context.Background(), tenantID, payer.ConfirmationCode)
	s.Require().NoError(err)
	s.NotEqual(payment.ExternalOrderID, retry.ExternalOrderID)
	s.Equal(int32(2), s.event(event.ID).ConfirmedSeats)

	payments := s.Store.Payments(payer.ID)
	s.Require().Len(payments, 2)
	s.Equal(model.PaymentStatusFailed, payments[0].Status)
	s.Equal(model.PaymentStatusPending, payments[1].Status)

	stored := s.reload(payer)
	s.Equal(model.RegistrationStatusPendingPayment, stored.Status)
	s.True(stored.HoldsCapacity)
	s.Equal(model.PaymentStatusPending, stored.PaymentStatus)
}

func (s *OrchestratorTestSuite) TestApplyPaymentCallback_CancelledRegistration() {
	event := s.seedEvent(upfront(2))

	registration, payment, err := s.Orchestrator.Checkout(context.Background(), s.command(event, "+62811000001", 2))
	s.Require().NoError(err)

	_, err = s.Orchestrator.Cancel(context.Background(), tenantID, registration.ID)
	s.Require().NoError(err)
	s.Equal(int32(0), s.event(event.ID).ConfirmedSeats)

	result, err := s.Orchestrator.ApplyPaymentCallback(context.Background(), payment.ExternalOrderID, model.PaymentOutcomeSuccess, 2000)
	s.Require().NoError(err)

	s.Equal(model.PaymentStatusCompleted, result.Payment.Status)
	s.Equal(model.RegistrationStatusCancelled, result.Registration.Status)
	s.Equal(int64(2000), result.Registration.AmountPaid)
	s.Equal(int32(0), s.event(event.ID).ConfirmedSeats)
}

func (s *OrchestratorTestSuite) TestInitiatePayment_PostRegistration() {
	event := s.seedEvent(postRegistration)

	registration := s.register(event, "+62811000001", 2)
	s.Equal(model.RegistrationStatusConfirmed, registration.Status)
	s.Equal(int64(5000), registration.AmountDue)
	s.Equal(model.PaymentStatusNone, registration.PaymentStatus)

	first, err := s.Orchestrator.InitiatePayment(context.Background(), tenantID, registration.ConfirmationCode)
	s.Require().NoError(err)

	again, err := s.Orchestrator.InitiatePayment(context.Background(), tenantID, registration.ConfirmationCode)
	s.Require().NoError(err)
	s.Equal(first.ExternalOrderID, again.ExternalOrderID)

	_, err = s.Orchestrator.InitiatePayment(context.Background(), "tenant-2", registration.ConfirmationCode)
	s.ErrorIs(err, errs.ErrCrossTenant)

	s.Len(s.Store.Payments(registration.ID), 1)
}

func (s *OrchestratorTestSuite) TestCompletePayment() {
	event := s.seedEvent(postRegistration)

	registration := s.register(event, "+62811000001", 2)

	completed, err := s.Orchestrator.CompletePayment(context.Background(), tenantID, registration.ID)
	s.Require().NoError(err)
	s.Equal(model.PaymentStatusCompleted, completed.PaymentStatus)
	s.Equal(int64(5000), completed.AmountPaid)
	s.Equal(model.RegistrationStatusConfirmed, completed.Status)

	again, err := s.Orchestrator.CompletePayment(context.Background(), tenantID, registration.ID)
	s.Require().NoError(err)
	s.Equal(completed.Version, again.Version)

	payments := s.Store.Payments(registration.ID)
	s.Require().Len(payments, 1)
	s.Equal(model.PaymentStatusCompleted, payments[0].Status)
}

func (s *OrchestratorTestSuite) TestCompletePayment_PendingUpfront() {
	event := s.seedEvent(upfront(4))

	registration, payment, err := s.Orchestrator.Checkout(context.Background(), s.command(event, "+62811000001", 2))
	s.Require().NoError(err)

	completed, err := s.Orchestrator.CompletePayment(context.Background(), tenantID, registration.ID)
	s.Require().NoError(err)
	s.Equal(model.RegistrationStatusConfirmed, completed.Status)
	s.Equal(int64(2000), completed.AmountPaid)

	replay, err := s.Orchestrator.ApplyPaymentCallback(context.Background(), payment.ExternalOrderID, model.PaymentOutcomeFailure, 0)
	s.Require().NoError(err)
	s.True(replay.Replayed)
	s.Equal(int32(2), s.event(event.ID).ConfirmedSeats)
}
