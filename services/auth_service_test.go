package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"stayhub-backend/domain"
	"stayhub-backend/models"
	"stayhub-backend/repositories"
)

func newAuthServiceForTest(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	gdb, mock := newTestDB(t)
	issuer := TokenIssuer{Secret: []byte("test-secret"), TTL: time.Hour, Now: time.Now}
	svc := NewAuthService(repositories.NewUserRepository(gdb), issuer, bcrypt.MinCost)
	return svc, mock
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

func storedUserRows(hash string, active bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "is_active"}).
		AddRow(1, "guest", "guest@stayhub.local", hash, models.RoleUser, active)
}

func TestRegisterRejectsTakenUsername(t *testing.T) {
	svc, mock := newAuthServiceForTest(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
		WillReturnRows(storedUserRows("irrelevant", true))

	_, err := svc.Register(RegisterInput{
		Username: "guest",
		Email:    "new@stayhub.local",
		Password: "secret1",
		FullName: "New Guest",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("got %v, want ConflictError", err)
	}
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	svc, mock := newAuthServiceForTest(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(storedUserRows("irrelevant", true))

	_, err := svc.Register(RegisterInput{
		Username: "newguest",
		Email:    "guest@stayhub.local",
		Password: "secret1",
		FullName: "New Guest",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("got %v, want ConflictError", err)
	}
}

func TestRegisterCreatesRegularUser(t *testing.T) {
	svc, mock := newAuthServiceForTest(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	user, err := svc.Register(RegisterInput{
		Username: "newguest",
		Email:    "  New@StayHub.Local ",
		Password: "secret1",
		FullName: "New Guest",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != models.RoleUser {
		t.Errorf("role = %q, registration must never grant elevated roles", user.Role)
	}
	if user.Email != "new@stayhub.local" {
		t.Errorf("email = %q, want trimmed lowercase", user.Email)
	}
	if user.PasswordHash == "secret1" {
		t.Error("password stored unhashed")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock := newAuthServiceForTest(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(storedUserRows(hashFor(t, "correct"), true))

	_, _, err := svc.Login("guest@stayhub.local", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, mock := newAuthServiceForTest(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err := svc.Login("nobody@stayhub.local", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	svc, mock := newAuthServiceForTest(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(storedUserRows(hashFor(t, "secret1"), false))

	_, _, err := svc.Login("guest@stayhub.local", "secret1")
	if !domain.IsForbidden(err) {
		t.Fatalf("got %v, want ForbiddenError", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	svc, mock := newAuthServiceForTest(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(storedUserRows(hashFor(t, "secret1"), true))

	token, user, err := svc.Login("guest@stayhub.local", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	claims, err := svc.Tokens.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("claims user = %d, want %d", claims.UserID, user.ID)
	}
}
