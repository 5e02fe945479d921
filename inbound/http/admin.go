package http

import (
	"context"
	"encoding/json"
	"errors"
	"event-registration/common"
	"event-registration/common/constant"
	"event-registration/common/errs"
	"event-registration/common/otel"
	"event-registration/model"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

type AdminHttp struct {
	Admin    AdminService
	Catalog  CatalogService
	Feed     FeedService
	Cache    *redis.Client
	Validate *validator.Validate

	countsTTL       time.Duration
	defaultCurrency string
}

// cachedStatusCounts keeps the owning tenant next to the counts so a cache hit
// never bypasses the tenant check.
type cachedStatusCounts struct {
	TenantID string             `json:"tenant_id"`
	Counts   model.StatusCounts `json:"counts"`
}

func RegisterAdminHttp(
	router chi.Router,
	cfg *viper.Viper,
	admin AdminService,
	catalog CatalogService,
	feed FeedService,
	cache *redis.Client,
	validate *validator.Validate,
) *AdminHttp {
	in := &AdminHttp{
		Admin:    admin,
		Catalog:  catalog,
		Feed:     feed,
		Cache:    cache,
		Validate: validate,

		countsTTL:       cfg.GetDuration("registration.counts_ttl"),
		defaultCurrency: strings.ToUpper(cfg.GetString("registration.default_currency")),
	}
	if in.countsTTL <= 0 {
		in.countsTTL = constant.EventCountsDefaultTTL
	}
	if in.defaultCurrency == "" {
		in.defaultCurrency = "IDR"
	}

	router.Group(func(r chi.Router) {
		r.Use(PrincipalMiddleware, RequireCapability(model.CapabilityManageEvents))

		r.Post("/api/admin/events", in.createEvent)
		r.Put("/api/admin/events/{eventID}/capacity", in.updateCapacity)
		r.Post("/api/admin/events/{eventID}/tables", in.createTable)
	})

	router.Group(func(r chi.Router) {
		r.Use(PrincipalMiddleware, RequireCapability(model.CapabilityManageRegistrations))

		r.Get("/api/admin/events/{eventID}/registrations", in.listRegistrations)
		r.Get("/api/admin/events/{eventID}/counts", in.statusCounts)
		r.Get("/api/admin/events/{eventID}/waitlist/recommendations", in.recommendations)

		r.Post("/api/admin/registrations/{registrationID}/cancel", in.cancel)
		r.Post("/api/admin/registrations/{registrationID}/waitlist", in.moveToWaitlist)
		r.Post("/api/admin/registrations/{registrationID}/confirm", in.confirm)
		r.Post("/api/admin/registrations/{registrationID}/table", in.assignTable)
		r.Post("/api/admin/registrations/{registrationID}/payment/complete", in.completePayment)
	})

	return in
}

func (in AdminHttp) createEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	principal, _ := principalFrom(r.Context())
	ctx, span := otel.Tracer.Start(r.Context(), "AdminHttp.createEvent")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "create event receive request", slog.Any(constant.LogFieldPayload, req), slog.String(constant.LogFieldTenantId, principal.TenantID), traceIdAttr)

	currency := req.Currency
	if currency == "" {
		currency = in.defaultCurrency
	}

	event, err := in.Catalog.CreateEvent(ctx, model.Event{
		TenantID:          principal.TenantID,
		Name:              req.Name,
		Capacity:          req.Capacity,
		MaxSpotsPerPerson: req.MaxSpotsPerPerson,
		StartsAt:          req.StartsAt,
		PaymentRequired:   req.PaymentRequired,
		PaymentTiming:     model.PaymentTiming(req.PaymentTiming),
		PricingModel:      model.PricingModel(req.PricingModel),
		PriceAmount:       req.PriceAmount,
		Currency:          currency,
	})
	if err != nil {
		in.fail(ctx, w, "create event", err)
		return
	}

	slog.InfoContext(ctx, "create event success", traceIdAttr, slog.Any(constant.LogFieldResponse, event.ID))

	writeJSONResponse(w, http.StatusCreated, model.NewEventResponse(event))
}

func (in AdminHttp) updateCapacity(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateCapacityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	principal, _ := principalFrom(r.Context())
	ctx, span := otel.Tracer.Start(r.Context(), "AdminHttp.updateCapacity")
	defer span.End()

	eventID := chi.URLParam(r, "eventID")
	slog.InfoContext(ctx, "update capacity receive request", slog.Any(constant.LogFieldPayload, req), slog.String(constant.LogFieldEventId, eventID), common.ExtractTraceIDFromCtx(ctx))

	event, err := in.Admin.UpdateCapacity(ctx, principal.TenantID, eventID, req.Capacity, req.Override)
	if err != nil {
		in.fail(ctx, w, "update capacity", err)
		return
	}

	writeJSONResponse(w, http.StatusOK, model.NewEventResponse(event))
}

func (in AdminHttp) createTable(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	principal, _ := principalFrom(r.Context())
	ctx, span := otel.Tracer.Start(r.Context(), "AdminHttp.createTable")
	defer span.End()

	table, err := in.Catalog.CreateTable(ctx, principal.TenantID, chi.URLParam(r, "eventID"), model.Table{
		Name:         req.Name,
		Capacity:     req.Capacity,
		MinOrder:     req.MinOrder,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		in.fail(ctx, w, "create table", err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, model.NewTableResponse(table))
}

// listRegistrations serves the polling feed. Without since every registration
// of the event is returned.
func (in AdminHttp) listRegistrations(w http.ResponseWriter, r *http.Request) {
	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeErrorResponse(w, &errs.HttpError{
				Code:    http.StatusBadRequest,
				Message: "Validation failed",
				Data:    map[string]string{"since": "rfc3339"},
			})
			return
		}
		since = parsed
	}

	principal, _ := principalFrom(r.Context())
	ctx, span := otel.Tracer.Start(r.Context(), "AdminHttp.listRegistrations")
	defer span.End()

	registrations, err := in.Feed.RegistrationsSince(ctx, principal.TenantID, chi.URLParam(r, "eventID"), since)
	if err != nil {
		in.fail(ctx, w, "list registrations", err)
		return
	}

	resp := model.ListRegistrationsResponse{Registrations: make([]model.RegistrationResponse, 0, len(registrations))}
	for _, registration := range registrations {
		resp.Registrations = append(resp.Registrations, model.NewRegistrationResponse(registration))
	}

	writeJSONResponse(w, http.StatusOK, resp)
}

func (in AdminHttp) statusCounts(w http.ResponseWriter, r *http.Request) {
	principal, _ := principalFrom(r.Context())
	ctx, span := otel.Tracer.Start(r.Context(), "AdminHttp.statusCounts")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	eventID := chi.URLParam(r, "eventID")
	key := fmt.Sprintf(constant.EventCountsKey, eventID)

	cached, err := in.Cache.Get(ctx, key).Bytes()
	if err == nil {
		var hit cachedStatusCounts
		if json.Unmarshal(cached, &hit) == nil && hit.TenantID == principal.TenantID {
			writeJSONResponse(w, http.StatusOK, hit.Counts)
			return
		}
	} else if !errors.Is(err, redis.Nil) {
		slog.WarnContext(ctx, "failed to get cached status counts", traceIdAttr, slog.Any(constant.LogFieldErr, err))
	}

	counts, err := in.Feed.StatusCounts(ctx, principal.TenantID, eventID)
	if err != nil {
		in.fail(ctx, w, "status counts", err)
		return
	}

	payload, err := json.Marshal(cachedStatusCounts{TenantID: principal.TenantID, Counts: counts})
	if err == nil {
		err = in.Cache.Set(ctx, key, string(payload), in.countsTTL).Err()
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to cache status counts", traceIdAttr, slog.Any(constant.LogFieldErr, err))
	}

	writeJSONResponse(w, http.StatusOK, counts)
}

func (in AdminHttp) recommendations(w http.ResponseWriter, r *http.Request) {
	principal, _ := principalFrom(r.Context())
	ctx, span := otel.Tracer.Start(r.Context(), "AdminHttp.recommendations")
	defer span.End()

	recommendations, err := in.Admin.WaitlistRecommendations(ctx, principal.TenantID, chi.URLParam(r, "eventID"))
	if err != nil {
		in.fail(ctx, w, "waitlist recommendations", err)
		return
	}

	if recommendations == nil {
		recommendations = []model.WaitlistRecommendation{}
	}

	writeJSONResponse(w, http.StatusOK, model.WaitlistRecommendationsResponse{Recommendations: recommendations})
}

func (in AdminHttp) cancel(w http.ResponseWriter, r *http.Request) {
	in.mutateRegistration(w, r, "cancel registration", in.Admin.Cancel)
}

func (in AdminHttp) moveToWaitlist(w http.ResponseWriter, r *http.Request) {
	in.mutateRegistration(w, r, "move to waitlist", in.Admin.MoveToWaitlist)
}

func (in AdminHttp) completePayment(w http.ResponseWriter, r *http.Request) {
	in.mutateRegistration(w, r, "complete payment", in.Admin.CompletePayment)
}

func (in AdminHttp) confirm(w http.ResponseWriter, r *http.Request) {
	var req model.ConfirmRegistrationRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	in.mutateRegistration(w, r, "confirm registration", func(ctx context.Context, tenantID, registrationID string) (model.Registration, error) {
		return in.Admin.Confirm(ctx, tenantID, registrationID, req.Override)
	})
}

func (in AdminHttp) assignTable(w http.ResponseWriter, r *http.Request) {
	var req model.AssignTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	in.mutateRegistration(w, r, "assign table", func(ctx context.Context, tenantID, registrationID string) (model.Registration, error) {
		return in.Admin.AssignTable(ctx, tenantID, registrationID, req.TableID, req.Override)
	})
}

func (in AdminHttp) mutateRegistration(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	fn func(ctx context.Context, tenantID, registrationID string) (model.Registration, error),
) {
	principal, _ := principalFrom(r.Context())
	ctx, span := otel.Tracer.Start(r.Context(), "AdminHttp.mutateRegistration")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	registrationID := chi.URLParam(r, "registrationID")
	slog.InfoContext(ctx, action+" receive request",
		slog.String("registration_id", registrationID),
		slog.String(constant.LogFieldTenantId, principal.TenantID),
		slog.String("user_id", principal.UserID),
		traceIdAttr,
	)

	registration, err := fn(ctx, principal.TenantID, registrationID)
	if err != nil {
		in.fail(ctx, w, action, err)
		return
	}

	slog.InfoContext(ctx, action+" success", traceIdAttr, slog.Any(constant.LogFieldResponse, registration.Status))

	writeJSONResponse(w, http.StatusOK, model.NewRegistrationResponse(registration))
}

func (in AdminHttp) fail(ctx context.Context, w http.ResponseWriter, action string, err error) {
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	if _, status, ok := matchSentinel(err); ok && status < http.StatusInternalServerError {
		slog.InfoContext(ctx, action+" rejected", slog.String("reason", errs.ReasonOf(err)), slog.Any(constant.LogFieldErr, err), traceIdAttr)
	} else {
		slog.ErrorContext(ctx, action+" failed", traceIdAttr, slog.Any(constant.LogFieldErr, err))
	}

	writeErrorResponse(w, err)
}

func decodeOptionalBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"}
}
