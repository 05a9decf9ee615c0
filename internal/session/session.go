// Package session owns the authenticated session: the in-memory token/user
// pair, its durable record, and the lifecycle operations around them.
//
// The invariant throughout is that token and user are set and cleared
// together; a half-restored record degrades to no session at all.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/bayuwidiasantoso/gudang/pkg/model"
)

// ErrNotAuthenticated is returned by operations that need a logged-in user.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthAPI is the slice of the backend client the store needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*model.LoginResponse, error)
	Me(ctx context.Context) (*model.MeResponse, error)
	Logout(ctx context.Context) error
}

// Store holds the current session. It is constructed once at application
// root and shared; it also acts as the API client's credential source.
type Store struct {
	api     AuthAPI
	storage Storage
	logger  *slog.Logger

	mu          sync.RWMutex
	token       string
	user        *model.User
	initialized bool

	initGroup singleflight.Group
}

// New creates a session store over the given backend client and storage.
func New(api AuthAPI, storage Storage, logger *slog.Logger) *Store {
	return &Store{
		api:     api,
		storage: storage,
		logger:  logger.With("component", "session"),
	}
}

// Init restores the session from durable storage. It is idempotent, and
// concurrent callers share a single restoration attempt: the first performs
// it, the rest wait for the same outcome.
func (s *Store) Init(ctx context.Context) error {
	s.mu.RLock()
	done := s.initialized
	s.mu.RUnlock()
	if done {
		return nil
	}

	_, err, _ := s.initGroup.Do("init", func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.initialized {
			return nil, nil
		}
		return nil, s.restoreLocked()
	})
	return err
}

// restoreLocked reads the durable record. Both entries must be present and
// the user JSON must parse, otherwise both are cleared. The store always
// ends up initialized.
func (s *Store) restoreLocked() error {
	defer func() { s.initialized = true }()

	token, haveToken, err := s.storage.Get(TokenKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	userJSON, haveUser, err := s.storage.Get(UserKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	if !haveToken || !haveUser {
		s.clearDurableLocked()
		return nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		s.logger.Warn("stored user record is corrupt, dropping session", "error", err)
		s.clearDurableLocked()
		return nil
	}

	s.token = token
	s.user = &user
	s.logger.Debug("session restored", "user", user.Email, "role", user.Role)
	return nil
}

// Login authenticates against the backend and commits the session. Nothing
// is committed when the backend rejects the credentials or the call fails.
func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if resp.Token == "" {
		return fmt.Errorf("login rejected: %s", resp.Message)
	}

	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = resp.Token
	user := resp.User
	s.user = &user

	if err := s.storage.Set(TokenKey, resp.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := s.storage.Set(UserKey, string(userJSON)); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}

	s.logger.Info("logged in", "user", resp.User.Email, "role", resp.User.Role)
	return nil
}

// Logout clears the session. The backend call is best-effort: its failure is
// logged and swallowed, and the local session is cleared regardless.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		s.logger.Warn("server-side logout failed, clearing local session anyway", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearDurableLocked()
	s.logger.Info("logged out")
	return nil
}

// Refresh re-fetches the current user from the backend and updates the
// stored record. A 401 means the token is no longer valid, so the session is
// cleared locally.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.RLock()
	authed := s.token != "" && s.user != nil
	s.mu.RUnlock()
	if !authed {
		return ErrNotAuthenticated
	}

	resp, err := s.api.Me(ctx)
	if err != nil {
		var reqErr *model.RequestError
		if errors.As(err, &reqErr) && reqErr.IsUnauthorized() {
			s.mu.Lock()
			s.clearDurableLocked()
			s.mu.Unlock()
			return fmt.Errorf("session expired: %w", ErrNotAuthenticated)
		}
		return err
	}

	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user := resp.User
	s.user = &user
	if err := s.storage.Set(UserKey, string(userJSON)); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	return nil
}

// clearDurableLocked drops both in-memory fields and both durable entries.
// Storage delete failures are logged, not propagated: local logout must
// always succeed.
func (s *Store) clearDurableLocked() {
	s.token = ""
	s.user = nil
	if err := s.storage.Delete(TokenKey); err != nil {
		s.logger.Warn("delete stored token failed", "error", err)
	}
	if err := s.storage.Delete(UserKey); err != nil {
		s.logger.Warn("delete stored user failed", "error", err)
	}
}

// IsAuthenticated reports whether both token and user are present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// IsAdmin reports whether the current user has admin role.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsAdmin()
}

// IsStaff reports whether the current user has staff role.
func (s *Store) IsStaff() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsStaff()
}

// Initialized reports whether startup restoration has run.
func (s *Store) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// User returns a copy of the current user, or nil when anonymous.
func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Credential returns the active token. It satisfies api.CredentialSource so
// the request client depends on the session by interface, not shared state.
func (s *Store) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
