package http

import (
	"context"
	"encoding/json"
	"event-registration/allocation"
	"event-registration/common"
	"event-registration/common/constant"
	"event-registration/common/errs"
	"event-registration/common/otel"
	"event-registration/common/vars"
	"event-registration/model"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"log/slog"
	"net/http"
	"time"
)

type RegistrationHttp struct {
	Service  RegistrationService
	Cache    *redis.Client
	Validate *validator.Validate

	lockTTL time.Duration
}

func RegisterRegistrationHttp(
	router chi.Router,
	cfg *viper.Viper,
	service RegistrationService,
	cache *redis.Client,
	validate *validator.Validate,
) *RegistrationHttp {
	in := &RegistrationHttp{
		Service:  service,
		Cache:    cache,
		Validate: validate,

		lockTTL: cfg.GetDuration("registration.lock_ttl"),
	}
	if in.lockTTL <= 0 {
		in.lockTTL = constant.RegistrationLockDefaultTTL
	}

	router.Route("/api/tenants/{tenantID}", func(r chi.Router) {
		r.Get("/events", in.listEvents)
		r.Post("/events/{eventID}/registrations", in.register)
		r.Post("/events/{eventID}/registrations/checkout", in.checkout)
		r.Post("/registrations/{code}/payments", in.initiatePayment)
	})

	return in
}

func (in RegistrationHttp) listEvents(w http.ResponseWriter, r *http.Request) {
	events := vars.GetOpenEvents(chi.URLParam(r, "tenantID"))

	resp := model.ListEventsResponse{Events: make([]model.EventResponse, 0, len(events))}
	for _, event := range events {
		resp.Events = append(resp.Events, model.NewEventResponse(event))
	}

	writeJSONResponse(w, http.StatusOK, resp)
}

func (in RegistrationHttp) register(w http.ResponseWriter, r *http.Request) {
	cmd, err := in.decodeRegisterCommand(r)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "RegistrationHttp.register")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "register receive request", slog.String(constant.LogFieldTenantId, cmd.TenantID), slog.String(constant.LogFieldEventId, cmd.EventID), traceIdAttr)

	release, err := in.lock(ctx, cmd)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	registration, err := in.Service.Register(ctx, cmd)
	if err != nil {
		release()
		common.UtilSpanError(span, err)
		slog.WarnContext(ctx, "register failed", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "register success", traceIdAttr, slog.Any(constant.LogFieldResponse, registration.ID))

	writeJSONResponse(w, http.StatusCreated, model.NewRegistrationResponse(registration))
}

func (in RegistrationHttp) checkout(w http.ResponseWriter, r *http.Request) {
	cmd, err := in.decodeRegisterCommand(r)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "RegistrationHttp.checkout")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "checkout receive request", slog.String(constant.LogFieldTenantId, cmd.TenantID), slog.String(constant.LogFieldEventId, cmd.EventID), traceIdAttr)

	release, err := in.lock(ctx, cmd)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	registration, payment, err := in.Service.Checkout(ctx, cmd)
	if err != nil {
		release()
		common.UtilSpanError(span, err)
		slog.WarnContext(ctx, "checkout failed", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	resp := model.CheckoutResponse{Registration: model.NewRegistrationResponse(registration)}
	if payment != nil {
		paymentResp := model.NewPaymentResponse(*payment)
		resp.Payment = &paymentResp
	}

	slog.InfoContext(ctx, "checkout success", traceIdAttr, slog.Any(constant.LogFieldResponse, registration.ID))

	writeJSONResponse(w, http.StatusCreated, resp)
}

func (in RegistrationHttp) initiatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "RegistrationHttp.initiatePayment")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	tenantID := chi.URLParam(r, "tenantID")

	payment, err := in.Service.InitiatePayment(ctx, tenantID, chi.URLParam(r, "code"))
	if err != nil {
		common.UtilSpanError(span, err)
		slog.WarnContext(ctx, "initiate payment failed", slog.String(constant.LogFieldTenantId, tenantID), traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, model.NewPaymentResponse(payment))
}

func (in RegistrationHttp) decodeRegisterCommand(r *http.Request) (allocation.RegisterCommand, error) {
	var req model.CreateRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return allocation.RegisterCommand{}, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"}
	}

	if err := in.Validate.Struct(req); err != nil {
		return allocation.RegisterCommand{}, err
	}

	return allocation.RegisterCommand{
		TenantID:    chi.URLParam(r, "tenantID"),
		EventID:     chi.URLParam(r, "eventID"),
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Name:        req.Name,
		PartySize:   req.PartySize,
		Data:        req.Data,
	}, nil
}

// lock guards against double submits of the same phone number for an event.
// The returned release is only called when the registration did not go
// through; a successful one keeps the key until it expires.
func (in RegistrationHttp) lock(ctx context.Context, cmd allocation.RegisterCommand) (func(), error) {
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	phone := model.NormalizePhone(cmd.PhoneNumber)
	if phone == "" {
		phone = cmd.PhoneNumber
	}
	key := fmt.Sprintf(constant.RegistrationLock, cmd.EventID, phone)

	acquired, err := in.Cache.SetNX(ctx, key, true, in.lockTTL).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to set registration lock", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return nil, err
	}

	if !acquired {
		slog.DebugContext(ctx, "registration already in progress", traceIdAttr)
		return nil, &errs.HttpError{Code: http.StatusConflict, Message: "Registration already in progress"}
	}

	return func() {
		if err := in.Cache.Del(ctx, key).Err(); err != nil {
			slog.ErrorContext(ctx, "failed to release registration lock", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}, nil
}
