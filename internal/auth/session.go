// Package auth resolves the owner session presented on dashboard requests.
// Sessions are issued elsewhere; this package only validates them.
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/heyemlee/quicklink-app/internal/clock"
	"github.com/heyemlee/quicklink-app/internal/domain"
	"github.com/heyemlee/quicklink-app/internal/repository"
)

// SessionCookie is the cookie read when no bearer token is sent.
const SessionCookie = "session_token"

// SessionResolver maps a raw session token to its session.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// StoreResolver looks tokens up in the session store by hash.
type StoreResolver struct {
	sessions repository.SessionRepository
	clock    clock.Clock
}

func NewStoreResolver(sessions repository.SessionRepository, clk clock.Clock) *StoreResolver {
	if clk == nil {
		clk = clock.System{}
	}
	return &StoreResolver{sessions: sessions, clock: clk}
}

func (r *StoreResolver) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	return r.sessions.FindSession(ctx, HashToken(token), r.clock.Now())
}

// HashToken returns the hex sha256 of token, the form tokens are stored in.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// TokenFromRequest reads the bearer token, falling back to the session cookie.
func TokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}

	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}
