package event

import (
	"context"
	"encoding/json"
	"event-registration/common"
	"event-registration/common/constant"
	"event-registration/common/contract"
	"event-registration/common/otel"
	"event-registration/model"
	"fmt"
	"golang.org/x/text/currency"
	"golang.org/x/text/message"
	"log/slog"
	"time"
)

// NotificationEvent turns committed registration changes into outgoing
// emails.
type NotificationEvent struct {
	Publisher contract.Publisher
	Printer   *message.Printer

	Timeout time.Duration
}

func (in NotificationEvent) RegistrationHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.RegistrationEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil {
		slog.WarnContext(ctx, "registration event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	ctx, span := otel.Tracer.Start(ctx, "NotificationEvent.RegistrationHandler")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	kindAttr := slog.String("kind", string(req.Kind))

	if req.Email == "" {
		slog.DebugContext(ctx, "registration event without email", kindAttr, traceIdAttr)
		return nil
	}

	subject, body, ok := in.buildEmail(req)
	if !ok {
		slog.WarnContext(ctx, "registration event has no email template", kindAttr, slog.String("status", req.Status), traceIdAttr)
		return nil
	}

	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSendEmail, "email:"+req.MessageID(), model.SendEmailEventMessage{
		To:      req.Email,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		common.UtilSpanError(span, err)
		slog.ErrorContext(ctx, "registration event publish email error", kindAttr, traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return err
	}

	slog.DebugContext(ctx, "registration event email published", kindAttr, traceIdAttr)

	return nil
}

func (in NotificationEvent) buildEmail(req model.RegistrationEventMessage) (string, string, bool) {
	switch req.Kind {
	case model.NotificationCreated:
		switch model.RegistrationStatus(req.Status) {
		case model.RegistrationStatusConfirmed:
			return "Registration Confirmed", fmt.Sprintf(constant.EmailRegistrationConfirmedTemplate,
				req.Name, req.ConfirmationCode, req.PartySize, in.formatAmount(req.Currency, req.AmountDue)), true
		case model.RegistrationStatusWaitlist:
			return "Added to Waitlist", fmt.Sprintf(constant.EmailRegistrationWaitlistedTemplate,
				req.Name, req.ConfirmationCode, req.PartySize, req.WaitlistPriority), true
		case model.RegistrationStatusPendingPayment:
			return "Payment Required", fmt.Sprintf(constant.EmailRegistrationPendingPaymentTemplate,
				req.Name, req.ConfirmationCode, req.PartySize, in.formatAmount(req.Currency, req.AmountDue)), true
		}
	case model.NotificationPromoted:
		return "A Spot Opened Up", fmt.Sprintf(constant.EmailRegistrationPromotedTemplate,
			req.Name, req.ConfirmationCode, req.PartySize, req.Status), true
	case model.NotificationSettled:
		return "Payment Received", fmt.Sprintf(constant.EmailPaymentSettledTemplate,
			req.Name, req.ConfirmationCode, in.formatAmount(req.Currency, req.AmountPaid), req.Status), true
	case model.NotificationFailed:
		return "Payment Failed", fmt.Sprintf(constant.EmailPaymentFailedTemplate,
			req.Name, req.ConfirmationCode, in.formatAmount(req.Currency, req.AmountDue)), true
	case model.NotificationCancelled:
		return "Registration Cancelled", fmt.Sprintf(constant.EmailRegistrationCancelledTemplate,
			req.Name, req.ConfirmationCode, req.PartySize), true
	}

	return "", "", false
}

// formatAmount renders an amount given in minor units with the currency
// symbol of the printer's locale.
func (in NotificationEvent) formatAmount(code string, amount int64) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return in.Printer.Sprintf("%s %d", code, amount)
	}

	scale, _ := currency.Standard.Rounding(unit)
	value := float64(amount)
	for range scale {
		value /= 10
	}

	return in.Printer.Sprint(currency.Symbol(unit.Amount(value)))
}
