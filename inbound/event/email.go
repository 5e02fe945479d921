package event

import (
	"context"
	"encoding/json"
	"event-registration/common/constant"
	"event-registration/model"
	"github.com/oklog/ulid/v2"
	"log/slog"
	"time"
)

//go:generate mockgen -source=email.go -destination=mocks/email.go -package=mocks

type EmailSender interface {
	Send(ctx context.Context, to []string, subject string, body string) error
}

type EmailEvent struct {
	Sender  EmailSender
	Timeout time.Duration
}

func (in EmailEvent) SendEmailHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.SendEmailEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil {
		slog.WarnContext(ctx, "send email event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	traceIdAttr := slog.String(constant.LogFieldTraceId, ulid.Make().String())

	if req.To == "" {
		slog.WarnContext(ctx, "send email event without recipient", slog.String("subject", req.Subject), traceIdAttr)
		return nil
	}

	err = in.Sender.Send(ctx, []string{req.To}, req.Subject, req.Body)
	if err != nil {
		slog.ErrorContext(ctx, "send email event error", slog.Any(constant.LogFieldErr, err), slog.String("subject", req.Subject), traceIdAttr)
		return err
	}

	slog.DebugContext(ctx, "send email event success", slog.String("subject", req.Subject), traceIdAttr)

	return nil
}
