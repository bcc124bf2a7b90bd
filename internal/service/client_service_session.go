package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/adapter"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/internal/utils"
	"github.com/MKhiriev/go-policy-desk/models"
)

type clientSessionService struct {
	sessions      store.LocalSessionRepository
	serverAdapter adapter.ServerAdapter

	mu       sync.RWMutex
	identity models.Identity

	logger *logger.Logger
}

func NewClientSessionService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{sessions: sessions, serverAdapter: serverAdapter, logger: logger}
}

// SignIn reads the identity from the token claims and confirms the token
// with the server before remembering it. The signature is only checked by
// the server.
func (s *clientSessionService) SignIn(ctx context.Context, token string) (models.Identity, error) {
	identity, err := utils.ParseIdentityFromJWT(token)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	s.serverAdapter.SetToken(token)
	if _, err = s.serverAdapter.GetProfile(ctx); err != nil {
		s.serverAdapter.SetToken("")
		s.logger.Err(err).Str("func", "clientSessionService.SignIn").Msg("server rejected token")
		return models.Identity{}, mapAdapterError(err)
	}

	session := models.LocalSession{
		Token:   token,
		UserID:  identity.UserID,
		Email:   identity.Email,
		SavedAt: time.Now().UTC(),
	}
	if err = s.sessions.Save(ctx, session); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.SignIn").Msg("error remembering session")
	}

	s.mu.Lock()
	s.identity = identity
	s.mu.Unlock()

	return identity, nil
}

func (s *clientSessionService) Restore(ctx context.Context) (models.Identity, error) {
	session, err := s.sessions.Get(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Identity{}, ErrNotSignedIn
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("error loading local session: %w", err)
	}

	return s.SignIn(ctx, session.Token)
}

func (s *clientSessionService) SignOut(ctx context.Context) error {
	s.serverAdapter.SetToken("")

	s.mu.Lock()
	s.identity = models.Identity{}
	s.mu.Unlock()

	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing local session: %w", err)
	}
	return nil
}

func (s *clientSessionService) Identity() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, !s.identity.IsZero()
}
