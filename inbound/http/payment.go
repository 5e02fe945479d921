package http

import (
	"encoding/json"
	"event-registration/common"
	"event-registration/common/constant"
	"event-registration/common/contract"
	"event-registration/common/errs"
	"event-registration/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type PaymentHttp struct {
	Publisher contract.Publisher
	Validate  *validator.Validate
}

func RegisterPaymentHttp(
	router chi.Router,
	publisher contract.Publisher,
	validate *validator.Validate,
) *PaymentHttp {
	in := &PaymentHttp{
		Publisher: publisher,
		Validate:  validate,
	}

	router.Post("/api/payments/callback", in.callback)

	return in
}

// callback only queues the provider notification; the settlement consumer
// applies it, so a redelivered callback is harmless. Repeats of the same
// callback inside the stream duplicate window are not queued twice.
func (in PaymentHttp) callback(w http.ResponseWriter, r *http.Request) {
	var req model.PaymentCallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx := r.Context()
	msg := model.PaymentCallbackEventMessage{
		ExternalOrderID: req.ExternalOrderID,
		Outcome:         req.Outcome,
		Amount:          req.Amount,
	}
	err := common.PublishMessage(ctx, in.Publisher, constant.SubjectPaymentCallback, msg.MessageID(), msg)
	if err != nil {
		slog.ErrorContext(ctx, "error publish message when callback payment", slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
