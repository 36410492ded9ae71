package auth

import (
	"context"
	"net/http"
	"strings"
)

type claimsCtxKey int

const ctxKeyClaims claimsCtxKey = iota

func ClaimsFromContext(ctx context.Context) *Claims {
	c, _ := ctx.Value(ctxKeyClaims).(*Claims)
	return c
}

// RequireHS256 rejects requests without a valid Bearer token and stores the
// verified claims in the request context. When the request carries an
// X-Company-Id header, it must match the token's company claim.
func RequireHS256(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if !strings.HasPrefix(raw, "Bearer ") {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}
			claims, err := ParseAndVerifyHS256(strings.TrimPrefix(raw, "Bearer "), secret)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			if hdr := strings.TrimSpace(r.Header.Get("X-Company-Id")); hdr != "" && claims.CompanyID != "" && hdr != claims.CompanyID {
				http.Error(w, "company mismatch", http.StatusForbidden)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
