package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/StageBooker/internal/auth"
	"github.com/stpnv0/StageBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func setupRouter(t *testing.T) (*auth.TokenManager, http.Handler) {
	t.Helper()
	log := newTestLogger(t)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	e, err := NewEnforcer("../../configs/rbac_model.conf", "../../configs/policy.csv")
	require.NoError(t, err)

	ok := func(c *ginext.Context) {
		actor, _ := ActorFrom(c)
		c.JSON(http.StatusOK, ginext.H{"user_id": actor.UserID})
	}

	r := ginext.New("test")
	r.Use(RequestID(), Recovery(log), Authenticate(tokens), Authorize(e, log))
	r.GET("/api/performers", ok)
	r.GET("/api/me", ok)
	r.PUT("/api/performers/me", ok)
	r.POST("/api/performers/:id/bookings", ok)
	r.POST("/api/bookings/:id/confirm", ok)
	r.POST("/api/bookings/:id/cancel", ok)

	return tokens, r
}

func do(t *testing.T, r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthorize_PublicCatalog(t *testing.T) {
	_, r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/api/performers", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestAuthorize_AnonymousOnProtectedRoute(t *testing.T) {
	_, r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/api/me", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorize_UnknownRouteIsNotFound(t *testing.T) {
	tokens, r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodDelete, "/api/performers", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	token, err := tokens.Issue("cust-1", domain.RoleCustomer, "c@example.com")
	require.NoError(t, err)
	w = do(t, r, http.MethodGet, "/api/bookings/unknown/path", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthorize_RoleMatrix(t *testing.T) {
	tokens, r := setupRouter(t)

	performer, err := tokens.Issue("perf-user", domain.RolePerformer, "")
	require.NoError(t, err)
	customer, err := tokens.Issue("cust-user", domain.RoleCustomer, "")
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"performer reads catalog", http.MethodGet, "/api/performers", performer, http.StatusOK},
		{"performer edits own profile", http.MethodPut, "/api/performers/me", performer, http.StatusOK},
		{"customer cannot edit profile", http.MethodPut, "/api/performers/me", customer, http.StatusForbidden},
		{"customer submits booking", http.MethodPost, "/api/performers/abc/bookings", customer, http.StatusOK},
		{"performer cannot submit booking", http.MethodPost, "/api/performers/abc/bookings", performer, http.StatusForbidden},
		{"performer confirms", http.MethodPost, "/api/bookings/abc/confirm", performer, http.StatusOK},
		{"customer cannot confirm", http.MethodPost, "/api/bookings/abc/confirm", customer, http.StatusForbidden},
		{"customer cancels", http.MethodPost, "/api/bookings/abc/cancel", customer, http.StatusOK},
		{"performer cannot cancel", http.MethodPost, "/api/bookings/abc/cancel", performer, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, tt.token)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	_, r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/api/performers", "garbage")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	_, r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/performers", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_SetsActor(t *testing.T) {
	tokens, r := setupRouter(t)

	token, err := tokens.Issue("cust-user", domain.RoleCustomer, "")
	require.NoError(t, err)

	w := do(t, r, http.MethodGet, "/api/me", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cust-user")
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	_, r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/performers", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	log := newTestLogger(t)

	r := ginext.New("test")
	r.Use(Recovery(log))
	r.GET("/panic", func(c *ginext.Context) { panic("boom") })

	w := do(t, r, http.MethodGet, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
