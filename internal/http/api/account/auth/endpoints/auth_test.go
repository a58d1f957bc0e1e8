package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymuslim/hymuslim-server/internal/db/stubs"
	"github.com/hymuslim/hymuslim-server/internal/http/api"
)

const testSecret = "test-secret"

func newAuthRouter(store *stubs.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api/account")
	RegisterAuthRoutes(group, store, testSecret)
	api.MountGroup(group, api.GroupConfig{Auth: true, SecretKey: testSecret, Store: store},
		api.ModuleFunc(func(c *api.Controller) {
			RegisterProfileRoutes(c.Group)
		}),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func signupToken(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/account/auth/signup",
		`{"email":"`+email+`","password":"katasandi123"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var payload struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.NotEmpty(t, payload.Token)
	return payload.Token
}

func TestSignupIssuesUsableToken(t *testing.T) {
	store := stubs.NewStore()
	router := newAuthRouter(store)

	token := signupToken(t, router, "reader@example.com")

	rec := doJSON(t, router, http.MethodGet, "/api/account/auth/current_profile", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "reader@example.com", profile.Email)
}

func TestSignupValidation(t *testing.T) {
	router := newAuthRouter(stubs.NewStore())

	tests := []struct {
		name string
		body string
	}{
		{"invalid email", `{"email":"not-an-email","password":"katasandi123"}`},
		{"short password", `{"email":"reader@example.com","password":"pendek"}`},
		{"missing body", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/account/auth/signup", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	router := newAuthRouter(stubs.NewStore())

	signupToken(t, router, "reader@example.com")
	rec := doJSON(t, router, http.MethodPost, "/api/account/auth/signup",
		`{"email":"reader@example.com","password":"katasandi123"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin(t *testing.T) {
	router := newAuthRouter(stubs.NewStore())
	signupToken(t, router, "reader@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/account/auth/login",
		`{"email":"reader@example.com","password":"katasandi123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.NotEmpty(t, payload.Token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newAuthRouter(stubs.NewStore())
	signupToken(t, router, "reader@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/account/auth/login",
		`{"email":"reader@example.com","password":"salah-semua"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/account/auth/login",
		`{"email":"unknown@example.com","password":"katasandi123"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	router := newAuthRouter(stubs.NewStore())

	rec := doJSON(t, router, http.MethodGet, "/api/account/auth/current_profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
