package http

import (
	"context"
	"event-registration/common/errs"
	"event-registration/model"
	"net/http"
	"strings"
	"time"
)

const (
	HeaderTenantID     = "X-Tenant-Id"
	HeaderUserID       = "X-User-Id"
	HeaderCapabilities = "X-Capabilities"
)

type principalKey struct{}

func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, "request timeout")
	}
}

func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Tenant-Id, X-User-Id, X-Capabilities")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// PrincipalMiddleware resolves the caller from the headers set by the gateway
// in front of the admin API. Requests without a tenant are rejected.
func PrincipalMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := strings.TrimSpace(r.Header.Get(HeaderTenantID))
		if tenantID == "" {
			writeErrorResponse(w, &errs.HttpError{Code: http.StatusUnauthorized, Message: "Unauthorized"})
			return
		}

		principal := model.Principal{
			UserID:       strings.TrimSpace(r.Header.Get(HeaderUserID)),
			TenantID:     tenantID,
			Capabilities: make(map[model.Capability]bool),
		}
		for _, c := range strings.Split(r.Header.Get(HeaderCapabilities), ",") {
			if c = strings.TrimSpace(c); c != "" {
				principal.Capabilities[model.Capability(c)] = true
			}
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), principalKey{}, principal)))
	})
}

func RequireCapability(capability model.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := principalFrom(r.Context())
			if !ok {
				writeErrorResponse(w, &errs.HttpError{Code: http.StatusUnauthorized, Message: "Unauthorized"})
				return
			}

			if !principal.Can(capability) {
				writeErrorResponse(w, &errs.HttpError{
					Code:    http.StatusForbidden,
					Message: "Forbidden",
					Data:    map[string]string{"capability": string(capability)},
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func principalFrom(ctx context.Context) (model.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(model.Principal)
	return principal, ok
}
