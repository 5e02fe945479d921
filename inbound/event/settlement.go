package event

import (
	"context"
	"encoding/json"
	"errors"
	"event-registration/allocation"
	"event-registration/common"
	"event-registration/common/constant"
	"event-registration/common/errs"
	"event-registration/common/otel"
	"event-registration/model"
	"log/slog"
	"time"
)

//go:generate mockgen -source=settlement.go -destination=mocks/settlement.go -package=mocks

type PaymentSettler interface {
	ApplyPaymentCallback(ctx context.Context, externalOrderID string, outcome model.PaymentOutcome, amount int64) (allocation.CallbackResult, error)
}

type SettlementEvent struct {
	Settler PaymentSettler

	Timeout time.Duration
}

// PaymentCallbackHandler applies a queued payment callback. Business
// rejections are acked since redelivery cannot change their outcome; only
// transient failures are returned for a retry.
func (in SettlementEvent) PaymentCallbackHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.PaymentCallbackEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil {
		slog.WarnContext(ctx, "payment callback event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	ctx, span := otel.Tracer.Start(ctx, "SettlementEvent.PaymentCallbackHandler")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	slog.InfoContext(ctx, "payment callback event receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	outcome := model.PaymentOutcome(req.Outcome)
	if outcome != model.PaymentOutcomeSuccess && outcome != model.PaymentOutcomeFailure {
		slog.WarnContext(ctx, "payment callback event unknown outcome", slog.String("outcome", req.Outcome), traceIdAttr)
		return nil
	}

	result, err := in.Settler.ApplyPaymentCallback(ctx, req.ExternalOrderID, outcome, req.Amount)
	if err != nil {
		if allocation.IsRejection(err) {
			slog.WarnContext(ctx, "payment callback rejected", traceIdAttr, slog.Any(constant.LogFieldErr, err))
			return nil
		}

		common.UtilSpanError(span, err)
		if errors.Is(err, errs.ErrTransient) {
			slog.WarnContext(ctx, "payment callback will be retried", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		} else {
			slog.ErrorContext(ctx, "failed to apply payment callback", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
		return err
	}

	if result.Replayed {
		slog.InfoContext(ctx, "payment callback already applied", traceIdAttr, slog.String("status", string(result.Payment.Status)))
		return nil
	}

	slog.InfoContext(ctx, "payment callback applied", traceIdAttr,
		slog.String("payment_status", string(result.Payment.Status)),
		slog.String("registration_status", string(result.Registration.Status)),
	)

	return nil
}
