package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"allergysafe-be/internal/logger"

	"go.uber.org/zap"
)

// Navigation routes the store emits intents for.
const (
	RouteHome       = "/"
	RouteOnboarding = "/onboarding"
	RouteDashboard  = "/dashboard"
	RouteAdmin      = "/admin"
)

// LandingRoute is the role-specific view a fresh login lands on.
func LandingRoute(role Role) string {
	switch role {
	case RoleSeller:
		return RouteDashboard
	case RoleAdmin:
		return RouteAdmin
	}
	return RouteOnboarding
}

// Navigator receives navigation intents from the store. The store never owns
// routing; it only signals where the user should go next.
type Navigator interface {
	Navigate(route string)
}

type nopNavigator struct{}

func (nopNavigator) Navigate(string) {}

// Store is the single source of truth for who is acting. It holds one
// identity, persists it best-effort to durable storage, and rehydrates it on
// construction. Storage failures never surface: they degrade to "logged out".
type Store struct {
	mu      sync.Mutex
	storage DurableStore
	nav     Navigator

	identity *Identity
	prompt   bool
}

const storageTimeout = 2 * time.Second

// NewStore builds a session store over the given durable storage and
// rehydrates any persisted identity. A nil navigator is allowed.
func NewStore(storage DurableStore, nav Navigator) *Store {
	if nav == nil {
		nav = nopNavigator{}
	}
	s := &Store{storage: storage, nav: nav}
	s.rehydrate()
	return s
}

// rehydrate restores the persisted identity if the record is present and
// well-formed. Anything else fails open to logged out.
func (s *Store) rehydrate() {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	raw, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		logger.L().Warn("session storage unreadable, starting logged out", zap.Error(err))
		return
	}
	if len(raw) == 0 {
		return
	}

	var id Identity
	if err := json.Unmarshal(raw, &id); err != nil || !id.Role.Valid() {
		logger.L().Warn("malformed session record, starting logged out",
			zap.String("key", StorageKey))
		return
	}
	if id.Name == "" {
		id.Name = id.Role.DisplayName()
	}

	s.identity = &id
}

// Login constructs the mock identity for the role, persists it, closes any
// open login prompt and emits the role's landing navigation intent. The role
// must come from the closed enum; callers validate before reaching the store.
func (s *Store) Login(ctx context.Context, role Role) Identity {
	id := Identity{Role: role, Name: role.DisplayName()}

	s.mu.Lock()
	s.identity = &id
	s.prompt = false
	s.mu.Unlock()

	if raw, err := json.Marshal(id); err == nil {
		if err := s.storage.Set(ctx, StorageKey, raw); err != nil {
			logger.FromCtx(ctx).Warn("failed to persist session", zap.Error(err))
		}
	}

	s.nav.Navigate(LandingRoute(role))
	return id
}

// Logout clears the identity, removes the persisted record and emits a
// navigation intent to the home view.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, StorageKey); err != nil {
		logger.FromCtx(ctx).Warn("failed to remove persisted session", zap.Error(err))
	}

	s.nav.Navigate(RouteHome)
}

// IsLoggedIn is true iff an identity is present.
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil
}

// Identity returns the current identity, if any.
func (s *Store) Identity() (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// Capabilities derives the permission set of the current identity. Logged-out
// sessions hold no capability.
func (s *Store) Capabilities() Capabilities {
	id, ok := s.Identity()
	if !ok {
		return Capabilities{}
	}
	return CapabilitiesFor(id.Role)
}

// OpenPrompt asks the UI to show the sign-in affordance without forcing a
// route change.
func (s *Store) OpenPrompt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = true
}

func (s *Store) ClosePrompt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = false
}

func (s *Store) PromptVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt
}
