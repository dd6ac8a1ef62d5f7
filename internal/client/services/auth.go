// Package services contains the application services of the Lumina client.
// This file defines the credential and session manager: signup, login,
// logout and the current-session read, all backed by the local record store.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/lumina/internal/client/metrics"
	"github.com/dmitrijs2005/lumina/internal/client/models"
	"github.com/dmitrijs2005/lumina/internal/client/repositories/records"
	"github.com/dmitrijs2005/lumina/internal/common"
	"github.com/dmitrijs2005/lumina/internal/cryptox"
	"github.com/dmitrijs2005/lumina/internal/logging"
)

// Record store keys.
const (
	UsersKey   = "lumina_users"
	SessionKey = "lumina_current_user"
)

// AuthService defines the credential and session operations used by the shell.
//
// Contract:
//   - Signup: register a new user and log them in; common.ErrUserExists on a
//     taken email.
//   - Login: authenticate and replace the session; common.ErrInvalidCredentials
//     on any mismatch, without revealing whether the email exists.
//   - Logout: clear the session; idempotent.
//   - CurrentSession: read the session marker; nil when logged out.
//
// Returned users never carry the stored secret.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*models.User, error)
}

type authService struct {
	repo    records.Repository
	hasher  cryptox.SecretHasher
	log     logging.Logger
	metrics *metrics.Metrics
	latency time.Duration
	newID   func() string

	// mu serializes the registry's check-then-append cycle in Signup.
	mu sync.Mutex

	dummyOnce sync.Once
	dummyHash string
}

// AuthOption customises NewAuthService.
type AuthOption func(*authService)

// WithLatency delays every mutating call by d to mimic a remote service.
func WithLatency(d time.Duration) AuthOption {
	return func(a *authService) { a.latency = d }
}

// WithMetrics counts signup, login and logout results in m.
func WithMetrics(m *metrics.Metrics) AuthOption {
	return func(a *authService) { a.metrics = m }
}

// WithIDGenerator replaces the UUID generator used for new users.
func WithIDGenerator(fn func() string) AuthOption {
	return func(a *authService) { a.newID = fn }
}

// NewAuthService constructs an AuthService over the given record store.
func NewAuthService(repo records.Repository, hasher cryptox.SecretHasher, log logging.Logger, opts ...AuthOption) AuthService {
	a := &authService{
		repo:   repo,
		hasher: hasher,
		log:    log.With("component", "auth"),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *authService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	user, err := a.signup(ctx, name, email, password)
	a.metrics.ObserveAuth("signup", err)
	return user, err
}

func (a *authService) signup(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := sleep(ctx, a.latency); err != nil {
		return nil, err
	}

	secret, err := a.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:        a.newID(),
		Name:      name,
		Email:     email,
		Interests: append([]string(nil), models.DefaultInterests...),
	}

	a.mu.Lock()
	err = a.repo.Update(ctx, UsersKey, func(current []byte) ([]byte, error) {
		registry, err := decodeRegistry(current)
		if err != nil {
			return nil, err
		}
		for _, rec := range registry {
			if rec.Email == email {
				return nil, common.ErrUserExists
			}
		}
		registry = append(registry, models.CredentialRecord{User: *user, Secret: secret})
		return json.Marshal(registry)
	})
	a.mu.Unlock()
	if err != nil {
		if errors.Is(err, common.ErrUserExists) {
			return nil, common.ErrUserExists
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	if err := a.setSession(ctx, user); err != nil {
		// a failed signup leaves no account behind
		if rerr := a.removeUser(ctx, user.ID); rerr != nil {
			a.log.Error(ctx, "failed to undo signup", "user_id", user.ID, "error", rerr)
			return nil, errors.Join(err, rerr)
		}
		return nil, err
	}

	a.log.Info(ctx, "user signed up", "user_id", user.ID)
	return user.Clone(), nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := a.login(ctx, email, password)
	a.metrics.ObserveAuth("login", err)
	return user, err
}

func (a *authService) login(ctx context.Context, email, password string) (*models.User, error) {
	if err := sleep(ctx, a.latency); err != nil {
		return nil, err
	}

	raw, err := a.repo.Get(ctx, UsersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	registry, err := decodeRegistry(raw)
	if err != nil {
		return nil, err
	}

	var match *models.CredentialRecord
	for i := range registry {
		if registry[i].Email == email {
			match = &registry[i]
			break
		}
	}

	if match == nil {
		// keep the unknown-email path as slow as a wrong password
		_, _ = a.hasher.Verify(password, a.dummySecret())
		return nil, common.ErrInvalidCredentials
	}

	ok, err := a.hasher.Verify(password, match.Secret)
	if err != nil {
		a.log.Error(ctx, "stored secret is unreadable", "user_id", match.ID, "error", err)
		return nil, common.ErrInvalidCredentials
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	user := match.Public()
	if err := a.setSession(ctx, user); err != nil {
		return nil, err
	}

	a.log.Info(ctx, "user logged in", "user_id", user.ID)
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	err := a.logout(ctx)
	a.metrics.ObserveAuth("logout", err)
	return err
}

func (a *authService) logout(ctx context.Context) error {
	if err := sleep(ctx, a.latency); err != nil {
		return err
	}
	if err := a.repo.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentSession reads only the session marker; it does not check that the
// user is still in the registry.
func (a *authService) CurrentSession(ctx context.Context) (*models.User, error) {
	raw, err := a.repo.Get(ctx, SessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &user, nil
}

func (a *authService) setSession(ctx context.Context, user *models.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := a.repo.Set(ctx, SessionKey, b); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// removeUser drops the registry record with the given id.
func (a *authService) removeUser(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.repo.Update(ctx, UsersKey, func(current []byte) ([]byte, error) {
		registry, err := decodeRegistry(current)
		if err != nil {
			return nil, err
		}
		kept := registry[:0]
		for _, rec := range registry {
			if rec.ID != id {
				kept = append(kept, rec)
			}
		}
		return json.Marshal(kept)
	})
}

func (a *authService) dummySecret() string {
	a.dummyOnce.Do(func() {
		a.dummyHash, _ = a.hasher.Hash(uuid.NewString())
	})
	return a.dummyHash
}

func decodeRegistry(raw []byte) ([]models.CredentialRecord, error) {
	if raw == nil {
		return nil, nil
	}
	var registry []models.CredentialRecord
	if err := json.Unmarshal(raw, &registry); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return registry, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
