package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stayhub-backend/models"
	"stayhub-backend/services"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}
	return gdb, mock
}

func testTokenIssuer() services.TokenIssuer {
	return services.TokenIssuer{
		Secret: []byte("test-secret"),
		TTL:    time.Hour,
		Now:    time.Now,
	}
}

func protectedRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, services.TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, mock := newTestDB(t)
	issuer := testTokenIssuer()

	r := gin.New()
	r.GET("/protected", RequireAuth(issuer, db), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": CurrentUser(c).Username})
	})
	return r, mock, issuer
}

func userRow(active bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "email", "role", "is_active"}).
		AddRow(1, "guest", "guest@stayhub.local", models.RoleUser, active)
}

func TestRequireAuthMissingToken(t *testing.T) {
	r, _, _ := protectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthGarbageToken(t *testing.T) {
	r, _, _ := protectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	r, mock, issuer := protectedRouter(t)

	token, err := issuer.Issue(models.User{ID: 1, Username: "guest", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	mock.ExpectQuery("SELECT \\* FROM `users`").WillReturnRows(userRow(true))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestRequireAuthDeactivatedAccount(t *testing.T) {
	r, mock, issuer := protectedRouter(t)

	token, err := issuer.Issue(models.User{ID: 1, Username: "guest", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	mock.ExpectQuery("SELECT \\* FROM `users`").WillReturnRows(userRow(false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthUnknownUser(t *testing.T) {
	r, mock, issuer := protectedRouter(t)

	token, err := issuer.Issue(models.User{ID: 9, Username: "ghost", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "role", "is_active"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
