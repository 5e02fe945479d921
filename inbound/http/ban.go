package http

import (
	"encoding/json"
	"event-registration/common"
	"event-registration/common/constant"
	"event-registration/common/errs"
	"event-registration/common/otel"
	"event-registration/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type BanHttp struct {
	Catalog  CatalogService
	Validate *validator.Validate
}

func RegisterBanHttp(
	router chi.Router,
	catalog CatalogService,
	validate *validator.Validate,
) *BanHttp {
	in := &BanHttp{
		Catalog:  catalog,
		Validate: validate,
	}

	router.Group(func(r chi.Router) {
		r.Use(PrincipalMiddleware, RequireCapability(model.CapabilityManageBans))

		r.Post("/api/admin/bans", in.create)
		r.Get("/api/admin/bans/check", in.check)
		r.Delete("/api/admin/bans/{banID}", in.lift)
	})

	return in
}

func (in BanHttp) create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	principal, _ := principalFrom(r.Context())
	ctx, span := otel.Tracer.Start(r.Context(), "BanHttp.create")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "create ban receive request", slog.String(constant.LogFieldTenantId, principal.TenantID), slog.String("user_id", principal.UserID), traceIdAttr)

	ban, err := in.Catalog.CreateBan(ctx, model.Ban{
		TenantID:    principal.TenantID,
		PhoneNumber: req.PhoneNumber,
		Reason:      req.Reason,
		CountLimit:  req.CountLimit,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		common.UtilSpanError(span, err)
		slog.WarnContext(ctx, "create ban failed", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, model.NewBanResponse(ban))
}

func (in BanHttp) check(w http.ResponseWriter, r *http.Request) {
	phoneNumber := r.URL.Query().Get("phone_number")
	if phoneNumber == "" {
		writeErrorResponse(w, &errs.HttpError{
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Data:    map[string]string{"phone_number": "required"},
		})
		return
	}

	principal, _ := principalFrom(r.Context())
	ctx, span := otel.Tracer.Start(r.Context(), "BanHttp.check")
	defer span.End()

	check, err := in.Catalog.CheckBan(ctx, principal.TenantID, phoneNumber)
	if err != nil {
		common.UtilSpanError(span, err)
		slog.ErrorContext(ctx, "check ban failed", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, check)
}

func (in BanHttp) lift(w http.ResponseWriter, r *http.Request) {
	principal, _ := principalFrom(r.Context())
	ctx, span := otel.Tracer.Start(r.Context(), "BanHttp.lift")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	banID := chi.URLParam(r, "banID")

	if err := in.Catalog.LiftBan(ctx, principal.TenantID, banID); err != nil {
		common.UtilSpanError(span, err)
		slog.WarnContext(ctx, "lift ban failed", slog.String("ban_id", banID), traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "lift ban success", slog.String("ban_id", banID), slog.String("user_id", principal.UserID), traceIdAttr)

	w.WriteHeader(http.StatusNoContent)
}
