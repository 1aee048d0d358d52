package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/merrickdc/cms_api/internal/repository"
	"github.com/merrickdc/cms_api/internal/service"
	"github.com/merrickdc/cms_api/internal/utils"
)

func newAuthRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { _ = sqlxDB.Close() })

	authSvc := service.NewAuthService(repository.NewAdminUserRepository(sqlxDB), []byte("test-secret"))
	h := NewAuthHandler(authSvc)
	router := gin.New()
	router.POST("/api/admin/login", h.Login)
	return router, mock
}

func TestLoginEndpoint_Success(t *testing.T) {
	router, mock := newAuthRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-pw"), bcrypt.MinCost)
	require.NoError(t, err)

	cols := []string{"id", "email", "password_hash", "name", "role", "last_login_at", "created_at"}
	mock.ExpectQuery(`SELECT .+ FROM admin_users`).
		WithArgs("admin@example.test").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("a1", "admin@example.test", string(hash), "Site Admin", "admin", nil, time.Now()))
	mock.ExpectExec(`UPDATE admin_users SET last_login_at`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := `{"email":"admin@example.test","password":"correct-pw"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)

	// The issued token must resolve back to the same subject.
	claims, err := utils.ValidateJWT(resp.Data.Token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, "admin@example.test", claims.Subject)

	// The password hash must never appear in a response.
	assert.NotContains(t, w.Body.String(), "password_hash")
	assert.NotContains(t, w.Body.String(), string(hash))
}

func TestLoginEndpoint_BadPassword(t *testing.T) {
	router, mock := newAuthRouter(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-pw"), bcrypt.MinCost)
	cols := []string{"id", "email", "password_hash", "name", "role", "last_login_at", "created_at"}
	mock.ExpectQuery(`SELECT .+ FROM admin_users`).
		WithArgs("admin@example.test").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("a1", "admin@example.test", string(hash), "Site Admin", "admin", nil, time.Now()))

	body := `{"email":"admin@example.test","password":"wrong"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}

func TestLoginEndpoint_MalformedEmail(t *testing.T) {
	router, mock := newAuthRouter(t)

	body := `{"email":"not-an-email","password":"x"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
