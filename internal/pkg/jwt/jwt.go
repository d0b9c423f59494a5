package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// sseTokenLifetime bounds the short-lived token used to open an event stream.
const sseTokenLifetime = 5 * time.Minute

const (
	tokenTypeAccess = "access"
	tokenTypeSSE    = "sse"
)

var ErrMissingClaims = errors.New("token claims are missing or invalid")

// Claims is the identity carried by an access token.
type Claims struct {
	UserID     string
	Role       auth.Role
	EmployeeID string
}

func (c Claims) IsAdmin() bool {
	return c.Role == auth.RoleAdmin
}

type Service interface {
	GenerateAccessToken(userID string, role auth.Role, employeeID *string) (token string, expiresAt int64, err error)
	GenerateSSEToken(userID string) (token string, expiresIn int, err error)
	ValidateSSEToken(tokenString string) (userID string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) (Service, error) {
	expiration, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, err
	}
	return &JWTService{
		accessTokenExpirationTime: expiration,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}, nil
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, role auth.Role, employeeID *string) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		"user_id":     userID,
		"employee_id": returnValueOrNil(employeeID),
		"role":        string(role),
		"type":        tokenTypeAccess,
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// GenerateSSEToken generates a short-lived token for SSE connections
func (j *JWTService) GenerateSSEToken(userID string) (token string, expiresIn int, err error) {
	expiresAt := j.now().Add(sseTokenLifetime).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    tokenTypeSSE,
		"exp":     expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, int(sseTokenLifetime.Seconds()), nil
}

// ValidateSSEToken validates an SSE token and returns the user ID
func (j *JWTService) ValidateSSEToken(tokenString string) (userID string, err error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != tokenTypeSSE {
		return "", jwt.ErrInvalidJWT()
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	userID, ok = userIDVal.(string)
	if !ok || userID == "" {
		return "", jwt.ErrInvalidJWT()
	}

	return userID, nil
}

// ClaimsFromContext reads the access token claims placed in ctx by jwtauth.Verifier.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, raw, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, err
	}

	if tokenType, _ := raw["type"].(string); tokenType != tokenTypeAccess {
		return Claims{}, ErrMissingClaims
	}

	userID, _ := raw["user_id"].(string)
	role, _ := raw["role"].(string)
	if userID == "" || role == "" {
		return Claims{}, ErrMissingClaims
	}

	employeeID, _ := raw["employee_id"].(string)
	return Claims{
		UserID:     userID,
		Role:       auth.Role(role),
		EmployeeID: employeeID,
	}, nil
}

func returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
