package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sakinah-tech/minbar/internal/db"
	"github.com/sakinah-tech/minbar/internal/http/api"
	"github.com/sakinah-tech/minbar/internal/http/api/auth/packets"
)

const testSecret = "test-secret"

func setupAuth(t *testing.T) (*gin.Engine, *db.MemStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := db.NewMemStore()
	router := gin.New()
	api.MountGroup(router, api.GroupConfig{
		Prefix: "/api",
	}, AuthPublicModule(testSecret, store))
	api.MountGroup(router, api.GroupConfig{
		Prefix:    "/api",
		Auth:      true,
		SecretKey: testSecret,
		Store:     store,
	}, AuthSessionModule(testSecret, store))
	return router, store
}

func post(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	json.NewEncoder(&body).Encode(payload)
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signup(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	w := post(router, "/api/auth/signup", gin.H{"email": email, "password": password})
	assert.Equal(t, http.StatusOK, w.Code)
	var resp packets.TokenResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestSignupAndLogin(t *testing.T) {
	router, _ := setupAuth(t)

	signup(t, router, "user@example.com", "swordfish123")

	w := post(router, "/api/auth/login", gin.H{"email": "user@example.com", "password": "swordfish123"})
	assert.Equal(t, http.StatusOK, w.Code)
	var resp packets.TokenResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestSignupValidation(t *testing.T) {
	router, _ := setupAuth(t)

	// too-short password
	w := post(router, "/api/auth/signup", gin.H{"email": "user@example.com", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// not an email
	w = post(router, "/api/auth/signup", gin.H{"email": "not-an-email", "password": "swordfish123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupDuplicateEmail(t *testing.T) {
	router, _ := setupAuth(t)

	signup(t, router, "user@example.com", "swordfish123")

	w := post(router, "/api/auth/signup", gin.H{"email": "user@example.com", "password": "different123"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := setupAuth(t)

	signup(t, router, "user@example.com", "swordfish123")

	w := post(router, "/api/auth/login", gin.H{"email": "user@example.com", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = post(router, "/api/auth/login", gin.H{"email": "nobody@example.com", "password": "swordfish123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentProfile(t *testing.T) {
	router, _ := setupAuth(t)

	token := signup(t, router, "user@example.com", "swordfish123")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/current_profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var profile packets.ProfileResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "user@example.com", profile.Email)
}

func TestCurrentProfileRejectsBadTokens(t *testing.T) {
	router, _ := setupAuth(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/current_profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/current_profile", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
