package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/school-erp/school-erp-api/internal/handler"
	"github.com/school-erp/school-erp-api/internal/middleware"
	"github.com/school-erp/school-erp-api/internal/models"
	"github.com/school-erp/school-erp-api/internal/repository"
	"github.com/school-erp/school-erp-api/internal/service"
	"github.com/school-erp/school-erp-api/pkg/config"
)

type sessionUserRepo struct {
	user *models.User
}

func (r *sessionUserRepo) FindByUsernameAndRole(_ context.Context, username string, role models.Role) (*models.User, error) {
	if r.user != nil && r.user.Username == username && r.user.Role == role {
		return r.user, nil
	}
	return nil, sql.ErrNoRows
}

func (r *sessionUserRepo) Create(context.Context, *models.User) error { return nil }

// newTestRouter wires the real route table over a sqlmock-backed database.
// The returned mint function issues a token for the given role, signed with
// the same secret the session gate validates against.
func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, func(role models.Role) string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	sqlxDB := sqlx.NewDb(db, "sqlmock")

	cfg := &config.Config{Env: config.EnvProduction}
	authCfg := service.AuthConfig{Secret: "routes-secret", Expiration: time.Hour, Issuer: "school-erp"}

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(repository.NewUserRepository(sqlxDB), nil, nil, authCfg)
	studentSvc := service.NewStudentService(repository.NewStudentRepository(sqlxDB), nil, nil)
	teacherSvc := service.NewTeacherService(repository.NewTeacherRepository(sqlxDB), nil, nil)
	classSvc := service.NewClassService(repository.NewClassRepository(sqlxDB), nil, nil)
	attendanceSvc := service.NewAttendanceService(repository.NewAttendanceRepository(sqlxDB), nil, nil, nil)
	noticeRepo := repository.NewNoticeRepository(sqlxDB)
	noticeSvc := service.NewNoticeService(noticeRepo, nil, nil)
	feeRepo := repository.NewFeeRepository(sqlxDB)
	feeSvc := service.NewFeeService(feeRepo, nil, nil, nil)
	examSvc := service.NewExamService(repository.NewExamRepository(sqlxDB), nil, nil)
	chartSvc := service.NewChartService(repository.NewChartRepository(sqlxDB), nil, nil, time.Minute, nil)
	dashboardSvc := service.NewDashboardService(repository.NewStatsRepository(sqlxDB), noticeRepo, nil, time.Minute, nil)
	exportSvc := service.NewExportService(repository.NewStudentRepository(sqlxDB), repository.NewTeacherRepository(sqlxDB), feeRepo, nil)

	handlers := routeHandlers{
		auth:       handler.NewAuthHandler(authSvc),
		students:   handler.NewStudentHandler(studentSvc),
		teachers:   handler.NewTeacherHandler(teacherSvc),
		classes:    handler.NewClassHandler(classSvc),
		attendance: handler.NewAttendanceHandler(attendanceSvc, studentSvc, classSvc),
		notices:    handler.NewNoticeHandler(noticeSvc, classSvc),
		fees:       handler.NewFeeHandler(feeSvc),
		exams:      handler.NewExamHandler(examSvc),
		charts:     handler.NewChartHandler(chartSvc),
		dashboard:  handler.NewDashboardHandler(dashboardSvc),
		pages:      handler.NewPageHandler(),
		health:     handler.NewHealthHandler(dashboardSvc),
		exports:    handler.NewExportHandler(exportSvc),
	}

	r := gin.New()
	r.Use(middleware.SessionGate(authSvc))
	registerRoutes(r, cfg, handlers, metricsSvc)

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	require.NoError(t, err)

	mint := func(role models.Role) string {
		repo := &sessionUserRepo{user: &models.User{ID: 1, Username: "orang", PasswordHash: string(hash), Role: role}}
		minter := service.NewAuthService(repo, nil, nil, authCfg)
		result, err := minter.Login(context.Background(), models.LoginRequest{Username: "orang", Password: "rahasia", Role: string(role)})
		require.NoError(t, err)
		return result.AccessToken
	}

	return r, mock, mint
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(rec, req)
	return rec
}

func TestEditFormRoutesDenyStudentRole(t *testing.T) {
	r, mock, mint := newTestRouter(t)
	token := mint(models.RoleStudent)

	paths := []string{
		"/students/edit/1",
		"/teachers/edit/1",
		"/classes/edit/1",
		"/attendance/edit/1",
		"/notices/edit/1",
		"/fees/edit/1",
		"/exams/edit/1",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := doGet(r, path, token)
			require.Equal(t, http.StatusForbidden, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			errObj := body["error"].(map[string]interface{})
			assert.Equal(t, "Permission denied", errObj["message"])
			meta := body["meta"].(map[string]interface{})
			assert.Equal(t, middleware.IndexPath, meta["redirect"])
		})
	}
	// The guard fires before any handler, so no query ever reaches the pool.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEditFormMissingRowRedirectsToList(t *testing.T) {
	r, mock, mint := newTestRouter(t)
	token := mint(models.RoleTeacher)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, student_class, age FROM students WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	rec := doGet(r, "/students/edit/7", token)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "Student not found", errObj["message"])
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, "/students", meta["redirect"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRoutesStayReadableForStudents(t *testing.T) {
	r, mock, mint := newTestRouter(t)
	token := mint(models.RoleStudent)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, student_class, age FROM students ORDER BY id DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "student_class", "age"}).AddRow(1, "Budi", "7A", 13))

	rec := doGet(r, "/students", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
