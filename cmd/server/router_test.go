package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frotaops/frota-api/internal/config"
	"github.com/frotaops/frota-api/internal/domain"
	"github.com/frotaops/frota-api/internal/mocks"
	"github.com/frotaops/frota-api/internal/service/auth"
)

const testSigningSecret = "test-signing-secret-at-least-32-chars!!"

// newTestApplication wires a full application against in-memory stores and a
// deterministic JWT service, then seeds the default administrator with a real
// bcrypt hash so login exercises the production password path.
func newTestApplication(t *testing.T) (*application, *mocks.MockAdministratorStore, *mocks.MockVehicleStore) {
	t.Helper()

	administratorStore := mocks.NewMockAdministratorStore()
	vehicleStore := mocks.NewMockVehicleStore()

	verifier := auth.NewBcryptVerifier()
	hash, err := verifier.Hash("123456")
	require.NoError(t, err)

	administratorStore.Administrators[1] = &domain.Administrator{
		ID:           1,
		Email:        "adm@teste.com",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
	administratorStore.NextID = 2

	app := &application{
		config: &config.Config{
			Auth: config.AuthConfig{
				JWTSecret:            testSigningSecret,
				TokenLifetimeMinutes: 60,
			},
		},
		logger:             slog.New(slog.NewTextHandler(io.Discard, nil)),
		administratorStore: administratorStore,
		vehicleStore:       vehicleStore,
		jwtService:         auth.NewTestJWTService(testSigningSecret, time.Hour, time.Now),
		passwordVerifier:   verifier,
		passwordHasher:     verifier,
	}
	return app, administratorStore, vehicleStore
}

// loginAs posts credentials for an administrator already present in the store
// and returns the issued token.
func loginAs(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/administradores/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code, "login failed: %s", recorder.Body.String())

	var resp struct {
		Email string `json:"email"`
		Role  string `json:"role"`
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// seedEditor inserts an editor account and returns a token for it.
func seedEditor(t *testing.T, router http.Handler,
	administratorStore *mocks.MockAdministratorStore, verifier auth.PasswordHasher) string {
	t.Helper()

	hash, err := verifier.Hash("editorpass")
	require.NoError(t, err)
	administratorStore.Administrators[administratorStore.NextID] = &domain.Administrator{
		ID:           administratorStore.NextID,
		Email:        "editor@teste.com",
		PasswordHash: hash,
		Role:         domain.RoleEditor,
	}
	administratorStore.NextID++

	return loginAs(t, router, "editor@teste.com", "editorpass")
}

func doJSON(router http.Handler, method, target, token string, payload any) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestLoginEndToEnd(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApplication(t)
	router := app.setupRouter()

	t.Run("seeded administrator logs in and gets a usable token", func(t *testing.T) {
		token := loginAs(t, router, "adm@teste.com", "123456")

		// The token must be accepted by a protected endpoint
		recorder := doJSON(router, "GET", "/veiculos", token, nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		recorder := doJSON(router, "POST", "/administradores/login", "",
			map[string]string{"email": "adm@teste.com", "password": "654321"})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRoutePolicy(t *testing.T) {
	t.Parallel()

	app, administratorStore, vehicleStore := newTestApplication(t)
	vehicleStore.Vehicles[1] = &domain.Vehicle{ID: 1, Name: "Uno", Brand: "Fiat", Year: 2012}
	vehicleStore.NextID = 2
	router := app.setupRouter()

	adminToken := loginAs(t, router, "adm@teste.com", "123456")
	editorToken := seedEditor(t, router, administratorStore, app.passwordHasher)

	tests := []struct {
		name           string
		method         string
		target         string
		token          string
		payload        any
		expectedStatus int
	}{
		{"login is public", "POST", "/administradores/login", "",
			map[string]string{"email": "adm@teste.com", "password": "123456"}, http.StatusOK},

		{"no token on vehicle list", "GET", "/veiculos", "", nil, http.StatusUnauthorized},
		{"garbage token on vehicle list", "GET", "/veiculos", "not.a.token", nil,
			http.StatusUnauthorized},

		{"admin lists vehicles", "GET", "/veiculos", "admin", nil, http.StatusOK},
		{"editor may not list vehicles", "GET", "/veiculos", "editor", nil, http.StatusForbidden},

		{"editor reads a vehicle", "GET", "/veiculos/1", "editor", nil, http.StatusOK},
		{"editor creates a vehicle", "POST", "/veiculos", "editor",
			map[string]any{"name": "Gol", "brand": "VW", "year": 2018}, http.StatusCreated},
		{"editor may not update", "PUT", "/veiculos/1", "editor",
			map[string]any{"name": "Gol", "brand": "VW", "year": 2018}, http.StatusForbidden},
		{"editor may not delete", "DELETE", "/veiculos/1", "editor", nil, http.StatusForbidden},

		{"admin lists administrators", "GET", "/administradores", "admin", nil, http.StatusOK},
		{"editor may not list administrators", "GET", "/administradores", "editor", nil,
			http.StatusForbidden},
		{"editor reads one administrator", "GET", "/administradores/1", "editor", nil,
			http.StatusOK},
		{"editor may not create administrators", "POST", "/administradores", "editor",
			map[string]string{"email": "x@teste.com", "password": "123456", "role": "Editor"},
			http.StatusForbidden},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			token := tc.token
			switch token {
			case "admin":
				token = adminToken
			case "editor":
				token = editorToken
			}

			recorder := doJSON(router, tc.method, tc.target, token, tc.payload)
			assert.Equal(t, tc.expectedStatus, recorder.Code,
				"body: %s", recorder.Body.String())
		})
	}
}

func TestVehicleLifecycle(t *testing.T) {
	t.Parallel()

	app, administratorStore, _ := newTestApplication(t)
	router := app.setupRouter()

	adminToken := loginAs(t, router, "adm@teste.com", "123456")
	editorToken := seedEditor(t, router, administratorStore, app.passwordHasher)

	t.Run("editor rejected for a 1949 vehicle", func(t *testing.T) {
		recorder := doJSON(router, "POST", "/veiculos", editorToken,
			map[string]any{"name": "Beetle", "brand": "VW", "year": 1949})

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(),
			"Vehicle too old, only years above 1950 accepted")
	})

	t.Run("create fetch update delete round trip", func(t *testing.T) {
		created := doJSON(router, "POST", "/veiculos", editorToken,
			map[string]any{"name": "Uno", "brand": "Fiat", "year": 2012})
		require.Equal(t, http.StatusCreated, created.Code)

		var vehicle domain.Vehicle
		require.NoError(t, json.NewDecoder(created.Body).Decode(&vehicle))
		location := created.Header().Get("Location")
		require.NotEmpty(t, location)

		fetched := doJSON(router, "GET", location, editorToken, nil)
		require.Equal(t, http.StatusOK, fetched.Code)

		var roundTrip domain.Vehicle
		require.NoError(t, json.NewDecoder(fetched.Body).Decode(&roundTrip))
		assert.Equal(t, vehicle, roundTrip)

		updated := doJSON(router, "PUT", location, adminToken,
			map[string]any{"name": "Uno Mille", "brand": "Fiat", "year": 2013})
		require.Equal(t, http.StatusOK, updated.Code)

		deleted := doJSON(router, "DELETE", location, adminToken, nil)
		require.Equal(t, http.StatusNoContent, deleted.Code)

		// Deletion is permanent
		gone := doJSON(router, "GET", location, adminToken, nil)
		assert.Equal(t, http.StatusNotFound, gone.Code)

		again := doJSON(router, "DELETE", location, adminToken, nil)
		assert.Equal(t, http.StatusNotFound, again.Code)
	})
}

func TestAdministratorLifecycle(t *testing.T) {
	t.Parallel()

	app, administratorStore, _ := newTestApplication(t)
	router := app.setupRouter()

	adminToken := loginAs(t, router, "adm@teste.com", "123456")

	t.Run("created administrator can log in with the plain password", func(t *testing.T) {
		created := doJSON(router, "POST", "/administradores", adminToken,
			map[string]string{"email": "second@teste.com", "password": "s3cret", "role": "Admin"})
		require.Equal(t, http.StatusCreated, created.Code)

		// The store must hold a hash, never the plain password
		var stored *domain.Administrator
		for _, a := range administratorStore.Administrators {
			if a.Email == "second@teste.com" {
				stored = a
			}
		}
		require.NotNil(t, stored)
		assert.NotEqual(t, "s3cret", stored.PasswordHash)

		loginAs(t, router, "second@teste.com", "s3cret")
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		recorder := doJSON(router, "POST", "/administradores", adminToken,
			map[string]string{"email": "adm@teste.com", "password": "123456", "role": "Admin"})
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApplication(t)
	router := app.setupRouter()

	recorder := doJSON(router, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}

func TestHomeEndpoint(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApplication(t)
	router := app.setupRouter()

	// The home endpoint requires no token
	recorder := doJSON(router, "GET", "/", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Contains(t, resp["message"], "Welcome")
}
