package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/jwt"
)

// AuthRequired rejects requests without a verified access token. It runs
// after jwtauth.Verifier, which has already parsed the bearer token.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := jwt.ClaimsFromContext(r.Context()); err != nil {
			slog.Debug("Rejected unauthenticated request", "path", r.URL.Path, "error", err)
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
