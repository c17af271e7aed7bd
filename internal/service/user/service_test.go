package user

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/repository"
	"github.com/helpcentre-io/helpcentre-api/internal/repository/jsonstore"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(jsonstore.NewUserStore(filepath.Join(t.TempDir(), "users.json")))
}

func TestCreateUserDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	u, err := svc.CreateUser(ctx, &model.CreateUserRequest{
		Name: "Ada", Email: "ada@example.com", Persona: model.PersonaCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
	assert.NotNil(t, u.OwnedProducts)
	assert.Empty(t, u.OwnedProducts)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateUser(ctx, &model.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Persona: "customer"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, &model.CreateUserRequest{Name: "A.", Email: "ADA@example.com", Persona: "customer"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUpdateUserPartial(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	u, err := svc.CreateUser(ctx, &model.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Persona: "customer"})
	require.NoError(t, err)

	name := "Ada Lovelace"
	got, err := svc.UpdateUser(ctx, u.ID, &model.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.Name)
	// Untouched fields survive a partial update.
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "customer", got.Persona)
}

func TestFavoritesAreIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	u, err := svc.CreateUser(ctx, &model.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Persona: "customer"})
	require.NoError(t, err)

	got, err := svc.AddFavorite(ctx, u.ID, "payroll")
	require.NoError(t, err)
	got, err = svc.AddFavorite(ctx, u.ID, "payroll")
	require.NoError(t, err)
	assert.Equal(t, []string{"payroll"}, got.Favorites)

	got, err = svc.RemoveFavorite(ctx, u.ID, "payroll")
	require.NoError(t, err)
	assert.Empty(t, got.Favorites)

	// Removing something absent is a no-op.
	_, err = svc.RemoveFavorite(ctx, u.ID, "payroll")
	assert.NoError(t, err)
}

func TestGetUnknownUser(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.GetUser(context.Background(), "user-42")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
