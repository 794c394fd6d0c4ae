package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/tair/dineboard/pkg/auth"
)

type contextKey string

const (
	// StaffIDKey is the context key for the authenticated staff member's ID
	StaffIDKey contextKey = "staff_id"
	// UsernameKey is the context key for the authenticated username
	UsernameKey contextKey = "username"
	// RoleKey is the context key for the authenticated staff role
	RoleKey contextKey = "role"
)

// AuthMiddleware validates the Bearer token and stores the claims in context
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			RespondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "authorization header required"})
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			RespondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "invalid authorization header format"})
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			RespondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "invalid or expired token"})
			return
		}

		ctx := context.WithValue(r.Context(), StaffIDKey, claims.StaffID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ManagerMiddleware restricts a route to staff with the manager role.
// It must run after AuthMiddleware.
func ManagerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := RoleFromContext(r.Context())
		if !ok || role != "manager" {
			RespondJSON(w, http.StatusForbidden, Response{Success: false, Error: "manager role required"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// StaffIDFromContext returns the authenticated staff ID, if any
func StaffIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(StaffIDKey).(string)
	return id, ok
}

// UsernameFromContext returns the authenticated username, if any
func UsernameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(UsernameKey).(string)
	return name, ok
}

// RoleFromContext returns the authenticated staff role, if any
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}
