package auth

import (
	"context"
	"time"

	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/domain"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

// SessionTTL is how long an admin login stays valid. There is no
// server-side revocation; expiry is checked when the session is read.
const SessionTTL = 24 * time.Hour

type Service struct {
	provider interfaces.AuthProvider
	sessions interfaces.SessionRepository
	logger   logger.Logger
	now      func() time.Time
}

func NewService(provider interfaces.AuthProvider, sessions interfaces.SessionRepository, lgr logger.Logger) *Service {
	return &Service{
		provider: provider,
		sessions: sessions,
		logger:   lgr,
		now:      time.Now,
	}
}

var _ interfaces.AuthService = (*Service)(nil)

func (s *Service) Login(ctx context.Context, taxID, password string) (*domain.Session, error) {
	user, err := s.provider.Authenticate(ctx, taxID, password)
	if err != nil {
		s.logger.Warn("login_failed", "Admin login rejected", "", map[string]interface{}{
			"reason": err.Error(),
		})
		return nil, err
	}

	session := domain.Session{
		User:      *user,
		ExpiresAt: s.now().Add(SessionTTL).UnixMilli(),
	}
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("login_succeeded", "Admin logged in", "", map[string]interface{}{
		"admin_id": user.ID,
	})
	return &session, nil
}

func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.ClearSession(ctx)
}

// CurrentSession returns the active session, or nil when none is
// stored, the record is malformed, or the expiry has passed. Expired
// records are discarded.
func (s *Service) CurrentSession(ctx context.Context) (*domain.Session, error) {
	session, err := s.sessions.Session(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	if session.Expired(s.now().UnixMilli()) {
		_ = s.sessions.ClearSession(ctx)
		return nil, nil
	}
	return session, nil
}
