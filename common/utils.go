package common

import (
	"context"
	"encoding/json"
	"event-registration/common/constant"
	"event-registration/common/contract"
	"event-registration/common/otel"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"log/slog"
)

func ExtractTraceIDFromCtx(ctx context.Context) slog.Attr {
	span := trace.SpanFromContext(ctx)
	traceId := ""

	if span != nil && span.SpanContext().HasTraceID() {
		traceId = span.SpanContext().TraceID().String()
	} else {
		traceId = ulid.Make().String()
	}

	return slog.Any(constant.LogFieldTraceId, traceId)
}

func UtilSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}

	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)
}

// PublishMessage publishes body as JSON on subject. A non-empty msgID goes out
// as the message id, so the stream drops a copy published again inside its
// duplicate window.
func PublishMessage(ctx context.Context, publisher contract.Publisher, subject, msgID string, body any) error {
	ctx, span := otel.Tracer.Start(ctx, "publishMessage")
	defer span.End()

	traceIdAttr := ExtractTraceIDFromCtx(ctx)
	subjectAttr := slog.String("subject", subject)

	data, err := json.Marshal(body)
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal message", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		UtilSpanError(span, err)
		return err
	}

	var opts []jetstream.PublishOpt
	if msgID != "" {
		opts = append(opts, jetstream.WithMsgID(msgID))
	}

	ack, err := publisher.Publish(ctx, subject, data, opts...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish message", traceIdAttr, subjectAttr, slog.Any(constant.LogFieldErr, err))
		UtilSpanError(span, err)
		return err
	}

	if ack != nil && ack.Duplicate {
		slog.InfoContext(ctx, "duplicate message dropped", traceIdAttr, subjectAttr, slog.String("msg_id", msgID))
	}

	return nil
}
