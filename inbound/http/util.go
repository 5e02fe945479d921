package http

import (
	"encoding/json"
	"errors"
	"event-registration/common/errs"
	"event-registration/model"
	"github.com/go-playground/validator/v10"
	"net/http"
)

var sentinelStatus = []struct {
	err    error
	status int
}{
	{errs.ErrBlocked, http.StatusForbidden},
	{errs.ErrCrossTenant, http.StatusForbidden},
	{errs.ErrCapacityExceeded, http.StatusConflict},
	{errs.ErrPolicyViolation, http.StatusConflict},
	{errs.ErrEventClosed, http.StatusConflict},
	{errs.ErrEventPast, http.StatusConflict},
	{errs.ErrInvalidTransition, http.StatusConflict},
	{errs.ErrConflict, http.StatusConflict},
	{errs.ErrPaymentRequired, http.StatusPaymentRequired},
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrInvalidPartySize, http.StatusUnprocessableEntity},
	{errs.ErrInvalidArgument, http.StatusUnprocessableEntity},
	{errs.ErrTransient, http.StatusServiceUnavailable},
}

func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func writeErrorResponse(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	var message, reason string
	var data any
	var rejection *errs.Rejection
	if httpErr, ok := err.(*errs.HttpError); ok {
		message = httpErr.Message
		data = httpErr.Data
		w.WriteHeader(httpErr.Code)
	} else if validationErr, ok := err.(validator.ValidationErrors); ok {
		message = "Validation failed"
		w.WriteHeader(http.StatusBadRequest)

		validationErrors := make(map[string]string)
		for _, fieldErr := range validationErr {
			fieldName := fieldErr.Field()
			validationErrors[fieldName] = fieldErr.Tag()
		}

		data = validationErrors
	} else if sentinel, status, ok := matchSentinel(err); ok {
		message = sentinel.Error()
		if errors.As(err, &rejection) {
			reason = rejection.Reason
			data = rejection.Data
		}
		w.WriteHeader(status)
	} else {
		message = "Internal Server Error"
		w.WriteHeader(500)
	}

	errorResponse := model.ErrorResponse{Error: message, Reason: reason, Data: data}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// matchSentinel finds the first domain sentinel wrapped by err. Only the
// sentinel text reaches the client, never the wrapped detail.
func matchSentinel(err error) (error, int, bool) {
	for _, candidate := range sentinelStatus {
		if errors.Is(err, candidate.err) {
			return candidate.err, candidate.status, true
		}
	}
	return nil, 0, false
}
