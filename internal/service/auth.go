// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fincopilot/go-copilot-client/internal/adapter"
	"github.com/fincopilot/go-copilot-client/internal/logger"
	"github.com/fincopilot/go-copilot-client/internal/store"
	"github.com/fincopilot/go-copilot-client/models"
)

type authService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

func NewAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) AuthService {
	return &authService{localStore: localStore, adapter: serverAdapter, logger: logger}
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error) {
	profile, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("register: %w", err)
	}
	return profile, nil
}

// Login runs the two-step exchange: the token endpoint first, then the
// profile fetch using the just-persisted token. The session is saved before
// the profile call so the adapter's bearer injection picks the token up.
func (a *authService) Login(ctx context.Context, email, password string) (models.Session, error) {
	loginResp, err := a.adapter.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	session := models.Session{Token: loginResp.AccessToken, CreatedAt: time.Now()}
	if err := a.localStore.Sessions.Save(session); err != nil {
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}

	profile, err := a.adapter.Me(ctx)
	if err != nil {
		// the token itself is good; the session stays usable without the
		// profile enrichment
		a.logger.Warn().Err(err).Msg("profile fetch after login failed")
		return session, nil
	}

	session.User = profile
	if err := a.localStore.Sessions.Save(session); err != nil {
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}

	a.logger.Info().Str("email", profile.Email).Msg("logged in")
	return session, nil
}

func (a *authService) Restore() (models.Session, error) {
	session, err := a.localStore.Sessions.Load()
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrNotAuthenticated
		}
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	claims, err := models.ParseTokenClaims(session.Token)
	if err == nil && !claims.ExpiresAt.IsZero() && claims.ExpiresAt.Before(time.Now()) {
		_ = a.localStore.Sessions.Clear()
		return models.Session{}, fmt.Errorf("%w: token expired", ErrNotAuthenticated)
	}

	return session, nil
}

func (a *authService) Logout() error {
	if err := a.localStore.Sessions.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.logger.Info().Msg("logged out")
	return nil
}

func (a *authService) SetRiskProfile(ctx context.Context, profile models.RiskProfile) error {
	if err := a.adapter.SetRiskProfile(ctx, profile); err != nil {
		return fmt.Errorf("set risk profile: %w", err)
	}

	session, err := a.localStore.Sessions.Load()
	if err != nil {
		return nil // nothing stored to mirror into
	}
	session.User.RiskProfile = profile.RiskTolerance
	return a.localStore.Sessions.Save(session)
}
