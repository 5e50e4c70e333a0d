package auth

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gcamargo/vendas-app/internal/httpx"
)

type ctxKey string

const claimsCtxKey = ctxKey("claims")

// DefaultTTL is used when no explicit TTL is configured; expiry forces re-login
// (there is no refresh flow).
const DefaultTTL = 24 * time.Hour

// Claims embeds the authenticated user identity in the token.
type Claims struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Secret returns JWT_SECRET or default dev value.
func Secret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("devjwtsecret")
}

// IssueToken signs an HS256 token for the given user, valid for ttl.
func IssueToken(userID uint, username string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(Secret())
}

// ParseToken verifies signature and expiry and returns the embedded claims.
func ParseToken(raw string) (*Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return Secret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return &claims, nil
}

// BearerToken extracts the token from the Authorization header, "" if absent.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// WithClaims stores the claims in context.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsCtxKey, c)
}

// ClaimsFromContext extracts the authenticated claims.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsCtxKey).(*Claims)
	return c, ok && c != nil
}

// RequireAuth gates a handler behind a valid bearer token.
// Missing token -> 401, present but invalid/expired -> 403.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := BearerToken(r)
		if raw == "" {
			httpx.JSONError(w, http.StatusUnauthorized, "missing_token", nil)
			return
		}
		claims, err := ParseToken(raw)
		if err != nil {
			httpx.JSONError(w, http.StatusForbidden, "invalid_token", nil)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}
