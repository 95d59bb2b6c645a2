// Package auth extracts operator identity from bearer tokens minted by the
// auth collaborator. Login and session management live there; this side only
// verifies and reads the claims so decisions carry who made them.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Operator identifies the admin acting on the evidence queue.
type Operator struct {
	Subject string
	Name    string
	Email   string
}

// DisplayName is what gets persisted as verified_by.
func (o Operator) DisplayName() string {
	if o.Name != "" {
		return o.Name
	}

	if o.Email != "" {
		return o.Email
	}

	return o.Subject
}

type contextKey struct{}

// FromContext returns the operator put there by Middleware.
func FromContext(ctx context.Context) (Operator, bool) {
	op, ok := ctx.Value(contextKey{}).(Operator)
	return op, ok
}

type claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Middleware rejects requests without a valid HMAC-signed bearer token and
// injects the operator identity into the request context.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			op, err := parseToken(token, secret)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), contextKey{}, op)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseToken(token, secret string) (Operator, error) {
	var c claims

	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil {
		return Operator{}, fmt.Errorf("parsing token: %w", err)
	}

	if !parsed.Valid {
		return Operator{}, fmt.Errorf("token invalid")
	}

	return Operator{
		Subject: c.Subject,
		Name:    c.Name,
		Email:   c.Email,
	}, nil
}
