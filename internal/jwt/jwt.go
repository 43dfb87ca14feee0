package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token purposes. A token issued for one purpose is never accepted for
// another: an email-validation token cannot authorize an API call.
const (
	PurposeAccess        = "access"
	PurposeVerifyEmail   = "verify_email"
	PurposeResetPassword = "reset_password"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidPurpose = errors.New("token purpose mismatch")
)

// Claims is the fixed claims structure carried by every token: the subject's
// user id, the purpose, and the registered expiry. Decoding rejects anything
// that does not fit this shape.
type Claims struct {
	UserID  uuid.UUID `json:"user_id"`
	Purpose string    `json:"purpose"`
	jwt.RegisteredClaims
}

// JWT signs and verifies tokens with an HMAC secret.
type JWT struct {
	secretKey string
	exp       time.Duration // default expiration for access tokens
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) { j.secretKey = secret }
}

// WithExpiration sets the default access-token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.exp = exp }
}

// New creates a JWT service.
func New(opts ...Opt) *JWT {
	j := &JWT{exp: time.Hour}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates an access token for the given user id using the default
// expiration.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	return j.GenerateFor(ctx, userID, PurposeAccess, j.exp)
}

// GenerateFor creates a token with an explicit purpose and lifetime. The jti
// is a fresh UUID so single-use tokens can be tracked after consumption.
func (j *JWT) GenerateFor(ctx context.Context, userID uuid.UUID, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  userID,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetClaims parses and verifies a token string, returning its typed claims.
// Malformed, expired, or foreign-signed tokens are rejected.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GetClaimsFor parses a token and additionally requires a specific purpose.
func (j *JWT) GetClaimsFor(ctx context.Context, tokenString, purpose string) (*Claims, error) {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != purpose {
		return nil, ErrInvalidPurpose
	}
	return claims, nil
}

// Validate checks that a token is a valid access token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaimsFor(ctx, tokenString, PurposeAccess)
	return err
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
