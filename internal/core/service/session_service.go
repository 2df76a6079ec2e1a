package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/blueward/access-system/internal/core/domain"
	"github.com/blueward/access-system/internal/core/ports"
	"github.com/blueward/access-system/internal/metrics"
)

// SessionState names the three states of the login machine.
type SessionState string

const (
	LoggedOut SessionState = "logged_out"
	LoggingIn SessionState = "logging_in"
	LoggedIn  SessionState = "logged_in"
)

var ErrLoginCanceled = errors.New("login attempt superseded")
var ErrNotLoggedIn = errors.New("no active session")

// Session holds the current identity and drives the login state machine.
// The persisted identity is restored synchronously at construction; on any
// restore failure the session simply starts logged out.
//
// Login simulates backend latency. Each attempt carries a generation number;
// logout, switch, or a newer login bumps the generation so a stale resolution
// is discarded instead of clobbering the newer state.
type Session struct {
	directory ports.DirectoryService
	store     ports.KeyValueStore
	delay     time.Duration
	log       zerolog.Logger

	mu    sync.Mutex
	state SessionState
	user  *domain.User
	gen   uint64
}

// NewSession creates a session and restores any persisted identity.
func NewSession(directory ports.DirectoryService, store ports.KeyValueStore, delay time.Duration, log zerolog.Logger) *Session {
	s := &Session{
		directory: directory,
		store:     store,
		delay:     delay,
		log:       log,
		state:     LoggedOut,
	}
	var saved domain.User
	if store.Get(ports.KeyCurrentUser, &saved) && saved.ID != 0 {
		s.user = &saved
		s.state = LoggedIn
		log.Debug().Str("username", saved.Username).Msg("session restored")
	}
	return s
}

// State returns the current machine state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Loading reports whether a login attempt is pending.
func (s *Session) Loading() bool { return s.State() == LoggingIn }

// Current returns the logged-in user, or nil when logged out.
func (s *Session) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Role returns the active role, derived from the identity. Empty when logged
// out; the two are never set independently.
func (s *Session) Role() domain.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

// Login resolves the username after the configured demo delay. The password
// is accepted but never checked; that is the documented demo contract, not an
// oversight. Unknown usernames resolve back to LoggedOut with
// domain.ErrUserNotFound so callers can surface the failure.
func (s *Session) Login(ctx context.Context, username, password string) (*domain.User, error) {
	_ = password // demo-only: any password is accepted

	s.mu.Lock()
	s.gen++
	attempt := s.gen
	s.state = LoggingIn
	s.mu.Unlock()

	// The lock is not held through the simulated delay so logout or a newer
	// login can run while this attempt is pending.
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			s.mu.Lock()
			if s.gen == attempt {
				s.state = LoggedOut
			}
			s.mu.Unlock()
			metrics.LoginsTotal.WithLabelValues("canceled").Inc()
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	user, lookupErr := s.directory.FindByUsername(ctx, username)

	s.mu.Lock()
	defer s.mu.Unlock()

	// A logout, switch, or newer login happened while we were waiting; drop
	// this resolution on the floor.
	if s.gen != attempt {
		metrics.LoginsTotal.WithLabelValues("canceled").Inc()
		s.log.Debug().Str("username", username).Msg("stale login resolution discarded")
		return nil, ErrLoginCanceled
	}

	if lookupErr != nil {
		s.state = LoggedOut
		s.user = nil
		// A failed attempt ends the previous session too; the persisted
		// identity must not resurface on the next start.
		if !s.store.Remove(ports.KeyCurrentUser) {
			s.log.Warn().Msg("persisted session not removed")
		}
		metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		s.log.Error().Str("username", username).Msg("login failed: user not found")
		return nil, lookupErr
	}

	s.user = user
	s.state = LoggedIn
	if !s.store.Set(ports.KeyCurrentUser, user) {
		s.log.Warn().Str("username", username).Msg("session not persisted; continuing in memory")
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", username).Str("role", string(user.Role)).Msg("logged in")
	return user, nil
}

// Logout clears the in-memory identity and the persisted session key, and
// invalidates any pending login resolution.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.user = nil
	s.state = LoggedOut
	if !s.store.Remove(ports.KeyCurrentUser) {
		s.log.Warn().Msg("persisted session not removed")
	}
	s.log.Info().Msg("logged out")
}

// SwitchIdentity replaces the active identity directly, bypassing the
// credential flow entirely. This is the demo "switch user" affordance.
func (s *Session) SwitchIdentity(user *domain.User) {
	if user == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.user = user
	s.state = LoggedIn
	if !s.store.Set(ports.KeyCurrentUser, user) {
		s.log.Warn().Str("username", user.Username).Msg("switched session not persisted")
	}
	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("identity switched")
}

// UpgradeToResident promotes the logged-in guest using a residence code. The
// code is accepted as the new residence without being validated against any
// linking record (demo contract).
func (s *Session) UpgradeToResident(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ErrNotLoggedIn
	}
	if s.user.Role != domain.RoleGuest {
		return domain.ErrForbidden
	}
	upgraded := *s.user
	upgraded.Role = domain.RoleResident
	upgraded.Residence = code
	s.user = &upgraded
	if !s.store.Set(ports.KeyCurrentUser, s.user) {
		s.log.Warn().Str("username", s.user.Username).Msg("upgraded session not persisted")
	}
	s.log.Info().Str("username", s.user.Username).Str("residence", code).Msg("upgraded to resident")
	return nil
}

// DowngradeToGuest is an admin affordance that currently only records the
// intent; no account state changes. Kept as-is from the product's demo
// behavior pending a decision on what a downgrade should revoke.
func (s *Session) DowngradeToGuest(userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil || s.user.Role != domain.RoleAdmin {
		return false
	}
	s.log.Info().Int("user_id", userID).Msg("downgrade to guest requested")
	return true
}
