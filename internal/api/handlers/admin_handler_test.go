package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ccc-smartassist/internal/models"
	"ccc-smartassist/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSettingsStore struct {
	settings models.SystemSettings
}

func (s *stubSettingsStore) Get(ctx context.Context) (*models.SystemSettings, error) {
	copied := s.settings
	return &copied, nil
}

func (s *stubSettingsStore) Update(ctx context.Context, systemName, themeColor, apiKey string) error {
	s.settings.SystemName = systemName
	s.settings.ThemeColor = themeColor
	s.settings.APIKey = apiKey
	return nil
}

type stubUserDirectory struct {
	users     []*models.User
	updatedID uuid.UUID
	fields    map[string]interface{}
}

func (s *stubUserDirectory) List(ctx context.Context) ([]*models.User, error) {
	return s.users, nil
}

func (s *stubUserDirectory) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserDirectory) UpdateProfile(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	s.updatedID = id
	s.fields = fields
	return nil
}

func (s *stubUserDirectory) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (s *stubUserDirectory) Count(ctx context.Context) (int, error) {
	return len(s.users), nil
}

func newAdminTestApp(users *stubUserDirectory, settings *stubSettingsStore) *fiber.App {
	adminService := service.NewAdminService(users, nil, nil, nil, settings, zap.NewNop())
	handler := NewAdminHandler(adminService, zap.NewNop())

	app := fiber.New()
	app.Get("/settings", handler.GetSettings)
	app.Get("/admin/settings", handler.GetAdminSettings)
	app.Put("/admin/users/:id", handler.UpdateUser)
	return app
}

func defaultStubSettings() *stubSettingsStore {
	return &stubSettingsStore{settings: models.SystemSettings{
		ID:         1,
		SystemName: "CCC SmartAssist",
		ThemeColor: "blue",
		APIKey:     "super-secret-key",
	}}
}

// The public settings read is branding only: the stored API key must never
// appear in the response, not even as an empty field.
func TestPublicSettingsHideAPIKey(t *testing.T) {
	app := newAdminTestApp(&stubUserDirectory{}, defaultStubSettings())

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "CCC SmartAssist", body["systemName"])
	assert.Equal(t, "blue", body["themeColor"])
	_, leaked := body["apiKey"]
	assert.False(t, leaked, "public settings must not carry the API key")
}

func TestAdminSettingsIncludeAPIKey(t *testing.T) {
	app := newAdminTestApp(&stubUserDirectory{}, defaultStubSettings())

	req := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "super-secret-key", body["apiKey"])
}

func TestUpdateUserAppliesProfileFields(t *testing.T) {
	users := &stubUserDirectory{}
	app := newAdminTestApp(users, defaultStubSettings())

	targetID := uuid.New()
	payload := []byte(`{"fullName":"Maria Santos","course":"BS Information Technology"}`)

	req := httptest.NewRequest(http.MethodPut, "/admin/users/"+targetID.String(), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, targetID, users.updatedID)
	assert.Equal(t, "Maria Santos", users.fields["full_name"])
	assert.Equal(t, "BS Information Technology", users.fields["course"])
	_, touched := users.fields["email"]
	assert.False(t, touched, "omitted fields must be left alone")
}

func TestUpdateUserRejectsInvalidID(t *testing.T) {
	app := newAdminTestApp(&stubUserDirectory{}, defaultStubSettings())

	req := httptest.NewRequest(http.MethodPut, "/admin/users/not-a-uuid", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
