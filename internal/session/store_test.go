package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNavigator struct {
	routes []string
}

func (n *recordingNavigator) Navigate(route string) {
	n.routes = append(n.routes, route)
}

// failingStore errors on every operation.
type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("storage down")
}

func (failingStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("storage down")
}

func (failingStore) Delete(ctx context.Context, key string) error {
	return errors.New("storage down")
}

func TestStore_LoginLogout(t *testing.T) {
	ctx := context.Background()
	nav := &recordingNavigator{}
	store := NewStore(NewMemoryStore(), nav)

	assert.False(t, store.IsLoggedIn())
	_, ok := store.Identity()
	assert.False(t, ok)

	id := store.Login(ctx, RoleClient)
	assert.Equal(t, RoleClient, id.Role)
	assert.Equal(t, "Sarra Client", id.Name)
	assert.True(t, store.IsLoggedIn())
	assert.Equal(t, []string{RouteOnboarding}, nav.routes)

	got, ok := store.Identity()
	require.True(t, ok)
	assert.Equal(t, id, got)

	store.Logout(ctx)
	assert.False(t, store.IsLoggedIn())
	assert.Equal(t, []string{RouteOnboarding, RouteHome}, nav.routes)
}

func TestStore_LandingRoutes(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		role  Role
		route string
		name  string
	}{
		{RoleClient, RouteOnboarding, "Sarra Client"},
		{RoleSeller, RouteDashboard, "Vendeur Pro"},
		{RoleAdmin, RouteAdmin, "Admin Principal"},
	}

	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			nav := &recordingNavigator{}
			store := NewStore(NewMemoryStore(), nav)

			id := store.Login(ctx, tc.role)
			assert.Equal(t, tc.name, id.Name)
			assert.Equal(t, []string{tc.route}, nav.routes)
		})
	}
}

func TestStore_Rehydration(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trip across restart", func(t *testing.T) {
		storage := NewMemoryStore()

		first := NewStore(storage, nil)
		first.Login(ctx, RoleSeller)

		// fresh process over the same storage
		second := NewStore(storage, nil)
		assert.True(t, second.IsLoggedIn())
		id, ok := second.Identity()
		require.True(t, ok)
		assert.Equal(t, RoleSeller, id.Role)
		assert.Equal(t, "Vendeur Pro", id.Name)
	})

	t.Run("Logout clears the record", func(t *testing.T) {
		storage := NewMemoryStore()

		first := NewStore(storage, nil)
		first.Login(ctx, RoleClient)
		first.Logout(ctx)

		second := NewStore(storage, nil)
		assert.False(t, second.IsLoggedIn())
	})

	t.Run("Malformed record fails open", func(t *testing.T) {
		storage := NewMemoryStore()
		require.NoError(t, storage.Set(ctx, StorageKey, []byte("{not json")))

		store := NewStore(storage, nil)
		assert.False(t, store.IsLoggedIn())
	})

	t.Run("Unknown role fails open", func(t *testing.T) {
		storage := NewMemoryStore()
		require.NoError(t, storage.Set(ctx, StorageKey, []byte(`{"role":"superuser","name":"X"}`)))

		store := NewStore(storage, nil)
		assert.False(t, store.IsLoggedIn())
	})

	t.Run("Missing name is re-derived", func(t *testing.T) {
		storage := NewMemoryStore()
		require.NoError(t, storage.Set(ctx, StorageKey, []byte(`{"role":"admin"}`)))

		store := NewStore(storage, nil)
		id, ok := store.Identity()
		require.True(t, ok)
		assert.Equal(t, "Admin Principal", id.Name)
	})
}

func TestStore_StorageFailuresSwallowed(t *testing.T) {
	ctx := context.Background()

	// construction over a dead store must not panic or error
	store := NewStore(failingStore{}, nil)
	assert.False(t, store.IsLoggedIn())

	// login still transitions state even though persist fails
	store.Login(ctx, RoleClient)
	assert.True(t, store.IsLoggedIn())

	// logout still transitions state even though delete fails
	store.Logout(ctx)
	assert.False(t, store.IsLoggedIn())
}

func TestStore_Prompt(t *testing.T) {
	store := NewStore(NewMemoryStore(), nil)

	assert.False(t, store.PromptVisible())
	store.OpenPrompt()
	assert.True(t, store.PromptVisible())
	store.ClosePrompt()
	assert.False(t, store.PromptVisible())

	// login closes an open prompt
	store.OpenPrompt()
	store.Login(context.Background(), RoleClient)
	assert.False(t, store.PromptVisible())
}

func TestCapabilities(t *testing.T) {
	assert.Equal(t, Capabilities{CanBuy: true}, CapabilitiesFor(RoleClient))
	assert.Equal(t, Capabilities{CanSell: true}, CapabilitiesFor(RoleSeller))
	assert.Equal(t, Capabilities{CanSell: true, CanAdminister: true}, CapabilitiesFor(RoleAdmin))

	store := NewStore(NewMemoryStore(), nil)
	assert.Equal(t, Capabilities{}, store.Capabilities())

	store.Login(context.Background(), RoleSeller)
	assert.True(t, store.Capabilities().CanSell)
	assert.False(t, store.Capabilities().CanBuy)
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleClient.Valid())
	assert.True(t, RoleSeller.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}
