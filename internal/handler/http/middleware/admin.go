package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/jwt"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := jwt.ClaimsFromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if !claims.IsAdmin() {
			response.HandleError(w, auth.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
