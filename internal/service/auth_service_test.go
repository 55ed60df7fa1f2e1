package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/school-erp/school-erp-api/internal/models"
	appErrors "github.com/school-erp/school-erp-api/pkg/errors"
)

type mockUserRepo struct {
	user       *models.User
	findErr    error
	createErr  error
	lookedRole models.Role
	created    *models.User
}

func (m *mockUserRepo) FindByUsernameAndRole(ctx context.Context, username string, role models.Role) (*models.User, error) {
	m.lookedRole = role
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.user, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = 1
	m.created = user
	return nil
}

func newAuthService(repo *mockUserRepo) *AuthService {
	return NewAuthService(repo, nil, nil, AuthConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
		Issuer:     "school-erp",
	})
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	repo := &mockUserRepo{user: &models.User{ID: 3, Username: "guru", PasswordHash: hashFor(t, "rahasia"), Role: models.RoleTeacher}}
	svc := newAuthService(repo)

	result, err := svc.Login(context.Background(), models.LoginRequest{Username: "guru", Password: "rahasia", Role: "teacher"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	assert.Equal(t, models.RoleTeacher, result.User.Role)

	claims, err := svc.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.UserID)
	assert.Equal(t, "guru", claims.Username)
	assert.Equal(t, models.RoleTeacher, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestAuthServiceLoginUnknownRoleDefaultsToStudent(t *testing.T) {
	// Admin is not a form value; it coerces like any unknown role.
	for _, role := range []string{"principal", "admin", ""} {
		t.Run("role "+role, func(t *testing.T) {
			repo := &mockUserRepo{findErr: sql.ErrNoRows}
			svc := newAuthService(repo)

			_, err := svc.Login(context.Background(), models.LoginRequest{Username: "guru", Password: "x", Role: role})
			require.Error(t, err)
			assert.Equal(t, models.RoleStudent, repo.lookedRole)
		})
	}
}

func TestAuthServiceLoginFailuresAreGeneric(t *testing.T) {
	tests := []struct {
		name string
		repo *mockUserRepo
	}{
		{"unknown user", &mockUserRepo{findErr: sql.ErrNoRows}},
		{"wrong password", &mockUserRepo{user: &models.User{ID: 3, Username: "guru", PasswordHash: hashFor(t, "other"), Role: models.RoleTeacher}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newAuthService(tc.repo)
			_, err := svc.Login(context.Background(), models.LoginRequest{Username: "guru", Password: "rahasia", Role: "teacher"})
			require.Error(t, err)
			appErr := appErrors.FromError(err)
			assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
			assert.Equal(t, "Invalid username, role, or password", appErr.Message)
		})
	}
}

func TestAuthServiceSignupDefaultsToTeacher(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newAuthService(repo)

	user, err := svc.Signup(context.Background(), models.SignupRequest{Username: "baru", Password: "rahasia", Role: "headmaster"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, user.Role)
	require.NotNil(t, repo.created)
	assert.NotEqual(t, "rahasia", repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("rahasia")))
}

func TestAuthServiceSignupNeverGrantsAdmin(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newAuthService(repo)

	user, err := svc.Signup(context.Background(), models.SignupRequest{Username: "baru", Password: "rahasia", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, user.Role)
	require.NotNil(t, repo.created)
	assert.Equal(t, models.RoleTeacher, repo.created.Role)
}

func TestAuthServiceSignupDuplicateUsername(t *testing.T) {
	repo := &mockUserRepo{createErr: &pq.Error{Code: "23505"}}
	svc := newAuthService(repo)

	_, err := svc.Signup(context.Background(), models.SignupRequest{Username: "guru", Password: "rahasia"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Equal(t, "Username already exists", appErr.Message)
}

func TestAuthServiceSignupMissingFields(t *testing.T) {
	svc := newAuthService(&mockUserRepo{})

	_, err := svc.Signup(context.Background(), models.SignupRequest{Username: "baru"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenRejectsTampering(t *testing.T) {
	repo := &mockUserRepo{user: &models.User{ID: 3, Username: "guru", PasswordHash: hashFor(t, "rahasia"), Role: models.RoleTeacher}}
	svc := newAuthService(repo)

	result, err := svc.Login(context.Background(), models.LoginRequest{Username: "guru", Password: "rahasia", Role: "teacher"})
	require.NoError(t, err)

	other := NewAuthService(repo, nil, nil, AuthConfig{Secret: "different-secret", Expiration: time.Hour})
	_, err = other.ValidateToken(result.AccessToken)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
