package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/jwt"
)

var errForbiddenEmployee = errors.New("employees may only access their own data")

// claimsFrom returns the caller identity. AuthRequired guarantees it exists on
// every protected route, so a failure here answers 401 directly.
func claimsFrom(w http.ResponseWriter, r *http.Request) (jwt.Claims, bool) {
	claims, err := jwt.ClaimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return jwt.Claims{}, false
	}
	return claims, true
}

// targetEmployee resolves which employee a request is about. Administrators
// may name anyone (or nobody, meaning all); employees are pinned to themselves.
func targetEmployee(claims jwt.Claims, requested string) (string, error) {
	if claims.IsAdmin() {
		return requested, nil
	}
	if requested != "" && requested != claims.EmployeeID {
		return "", errForbiddenEmployee
	}
	return claims.EmployeeID, nil
}

// canAccess reports whether the caller may see data belonging to employeeID.
func canAccess(claims jwt.Claims, employeeID string) bool {
	return claims.IsAdmin() || claims.EmployeeID == employeeID
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}
