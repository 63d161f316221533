package service

import (
	"context"
	"time"

	"github.com/spec-kit/hrdesk/internal/auth"
	"github.com/spec-kit/hrdesk/internal/config"
	"github.com/spec-kit/hrdesk/internal/roster"
	"github.com/spec-kit/hrdesk/internal/session"
)

// AuthService coordinates roster login and session lifecycle.
type AuthService struct {
	roster   *roster.Store
	sessions session.Store
	tokenMgr *auth.TokenManager
	greeting string
}

// AuthDependencies bundles requirements for the auth service.
type AuthDependencies struct {
	Roster   *roster.Store
	Sessions session.Store
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		roster:   deps.Roster,
		sessions: deps.Sessions,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		greeting: cfg.Chat.Greeting,
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login authenticates against the roster and opens a chat session seeded with
// the greeting. No session is created on failure.
func (s *AuthService) Login(ctx context.Context, name, password string) (*session.Session, string, time.Time, error) {
	emp, err := s.roster.Authenticate(name, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	sess := session.New(emp, s.greeting)
	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(sess.ID, emp.Name)
	if err != nil {
		_ = s.sessions.Delete(ctx, sess.ID)
		return nil, "", time.Time{}, err
	}
	return sess, token, exp, nil
}

// Logout clears the session. The token dangles harmlessly until expiry.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}
