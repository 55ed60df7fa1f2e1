package middleware

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/school-erp/school-erp-api/internal/models"
	"github.com/school-erp/school-erp-api/internal/service"
)

type stubUserRepo struct {
	user *models.User
}

func (m stubUserRepo) FindByUsernameAndRole(ctx context.Context, username string, role models.Role) (*models.User, error) {
	if m.user == nil {
		return nil, sql.ErrNoRows
	}
	return m.user, nil
}

func (m stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return nil
}

func newGateAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := stubUserRepo{user: &models.User{ID: 3, Username: "guru", PasswordHash: string(hash), Role: models.RoleTeacher}}
	return service.NewAuthService(repo, nil, nil, service.AuthConfig{
		Secret:     "gate-secret",
		Expiration: time.Hour,
	})
}

func issueToken(t *testing.T, auth *service.AuthService) string {
	t.Helper()
	result, err := auth.Login(context.Background(), models.LoginRequest{Username: "guru", Password: "rahasia", Role: "teacher"})
	require.NoError(t, err)
	return result.AccessToken
}

func TestIsPublic(t *testing.T) {
	tests := []struct {
		path   string
		public bool
	}{
		{"/", true},
		{"/home", true},
		{"/teams", true},
		{"/contact", true},
		{"/about", true},
		{"/login", true},
		{"/signup", true},
		{"/db-check", true},
		{"/health", true},
		{"/metrics", true},
		{"/static/css/site.css", true},
		{"/docs/index.html", true},
		{"/students", false},
		{"/fees/add", false},
		{"/attendance/chart-data", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.public, IsPublic(tc.path), tc.path)
	}
}

func newGateRouter(auth *service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionGate(auth))
	r.GET("/students", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/home", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestSessionGateBlocksProtectedRouteWithoutToken(t *testing.T) {
	r := newGateRouter(newGateAuthService(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/students", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, LoginPath, meta["redirect"])
}

func TestSessionGateAllowsPublicAndUnresolvedRoutes(t *testing.T) {
	r := newGateRouter(newGateAuthService(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/home", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Unknown paths fall through to the router's 404.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionGateAcceptsValidToken(t *testing.T) {
	auth := newGateAuthService(t)
	r := gin.New()
	r.Use(SessionGate(auth))
	r.GET("/students", func(c *gin.Context) {
		claims := c.MustGet(ContextUserKey).(*models.SessionClaims)
		c.String(http.StatusOK, claims.Username)
	})

	token := issueToken(t, auth)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/students", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "guru", w.Body.String())
}

func TestSessionGateRejectsMalformedHeader(t *testing.T) {
	r := newGateRouter(newGateAuthService(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/students", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
