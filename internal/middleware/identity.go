package middleware

import (
	"context"
	"net/http"

	"patrolwatch/internal/domain"

	"github.com/google/uuid"
)

type claimKey struct{}

// Identity extracts the authenticated officer from gateway headers. The
// upstream gateway terminates real authentication, this service trusts
// X-Officer-ID / X-Station-ID / X-Role.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		officerID, err := uuid.Parse(r.Header.Get("X-Officer-ID"))
		if err != nil {
			http.Error(w, "missing or invalid X-Officer-ID", http.StatusUnauthorized)
			return
		}
		stationID, err := uuid.Parse(r.Header.Get("X-Station-ID"))
		if err != nil {
			http.Error(w, "missing or invalid X-Station-ID", http.StatusUnauthorized)
			return
		}
		role := domain.Role(r.Header.Get("X-Role"))
		switch role {
		case domain.RoleOfficer, domain.RoleStation, domain.RoleAdmin:
		case "":
			role = domain.RoleOfficer
		default:
			http.Error(w, "unknown X-Role", http.StatusUnauthorized)
			return
		}

		claim := domain.Claim{OfficerID: officerID, StationID: stationID, Role: role}
		next.ServeHTTP(w, r.WithContext(WithClaim(r.Context(), claim)))
	})
}

func WithClaim(ctx context.Context, claim domain.Claim) context.Context {
	return context.WithValue(ctx, claimKey{}, claim)
}

func ClaimFrom(ctx context.Context) (domain.Claim, bool) {
	claim, ok := ctx.Value(claimKey{}).(domain.Claim)
	return claim, ok
}
