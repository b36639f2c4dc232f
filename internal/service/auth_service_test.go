package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ccc-smartassist/internal/dto"
	"ccc-smartassist/internal/models"
	"ccc-smartassist/pkg/auth"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserStore struct {
	users     map[string]*models.User
	lookupErr error
	created   []*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) GetByUsernameAndRole(ctx context.Context, username string, role models.UserRole) (*models.User, error) {
	if u, ok := f.users[username]; ok && u.Role == role {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	f.users[user.Username] = user
	f.created = append(f.created, user)
	return nil
}

func newTestAuthService(store *fakeUserStore) (*AuthService, *auth.JWTManager) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(store, jwtManager, zap.NewNop()), jwtManager
}

func TestRegisterHashesPasswordAndIssuesTokens(t *testing.T) {
	store := newFakeUserStore()
	svc, jwtManager := newTestAuthService(store)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "juan",
		Password: "s3cret-password",
		FullName: "Juan dela Cruz",
	})
	require.NoError(t, err)

	require.Len(t, store.created, 1)
	assert.NotEqual(t, "s3cret-password", store.created[0].Password, "passwords are stored hashed")
	assert.True(t, auth.CheckPasswordHash("s3cret-password", store.created[0].Password))
	assert.Equal(t, models.RoleStudent, store.created[0].Role, "role defaults to student")

	claims, err := jwtManager.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "juan", claims.Username)
	assert.Equal(t, "student", claims.Role)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	store := newFakeUserStore()
	svc, _ := newTestAuthService(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "juan", Password: "password1", FullName: "Juan",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "juan", Password: "password2", FullName: "Impostor",
	})
	assert.ErrorIs(t, err, ErrUserExists)
	assert.Len(t, store.created, 1)
}

// A failed uniqueness lookup must surface as an error, never as "username
// free": nothing may be created on a broken read.
func TestRegisterPropagatesLookupFailure(t *testing.T) {
	store := newFakeUserStore()
	store.lookupErr = errors.New("db down")
	svc, _ := newTestAuthService(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "juan", Password: "password1", FullName: "Juan",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserExists)
	assert.Empty(t, store.created)
}

func TestLoginVerifiesAgainstHashOnly(t *testing.T) {
	store := newFakeUserStore()
	svc, _ := newTestAuthService(store)

	hashed, err := auth.HashPassword("password123")
	require.NoError(t, err)
	store.users["juan"] = &models.User{
		ID: uuid.New(), Username: "juan", Password: hashed, Role: models.RoleStudent,
	}
	// A legacy row holding the raw password must not authenticate.
	store.users["old"] = &models.User{
		ID: uuid.New(), Username: "old", Password: "password123", Role: models.RoleStudent,
	}

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Username: "juan", Password: "password123", Role: "student",
	})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Username: "old", Password: "password123", Role: "student",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIsRoleScoped(t *testing.T) {
	store := newFakeUserStore()
	svc, _ := newTestAuthService(store)

	hashed, err := auth.HashPassword("password123")
	require.NoError(t, err)
	store.users["juan"] = &models.User{
		ID: uuid.New(), Username: "juan", Password: hashed, Role: models.RoleStudent,
	}

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Username: "juan", Password: "password123", Role: "admin",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// Refreshing issues a fresh access/refresh pair for the token's user; the new
// access token carries the full identity again.
func TestRefreshTokenRotatesPair(t *testing.T) {
	store := newFakeUserStore()
	svc, jwtManager := newTestAuthService(store)

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "juan", Password: "password1", FullName: "Juan", Role: "admin",
	})
	require.NoError(t, err)

	resp, err := svc.RefreshToken(context.Background(), registered.RefreshToken)
	require.NoError(t, err)

	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, resp.AccessToken, resp.RefreshToken)

	claims, err := jwtManager.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "juan", claims.Username)
	assert.Equal(t, "admin", claims.Role)

	refreshClaims, err := jwtManager.ValidateToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, refreshClaims.UserID)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	svc, _ := newTestAuthService(newFakeUserStore())

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokenRejectsDeletedUser(t *testing.T) {
	store := newFakeUserStore()
	svc, jwtManager := newTestAuthService(store)

	orphan, err := jwtManager.GenerateRefreshToken(uuid.New().String())
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), orphan)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
