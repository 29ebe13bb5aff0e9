package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"stayhub-backend/domain"
)

func TestUserGetByIDNotFoundTranslated(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewUserRepository(gdb)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE `users`\\.`id` = \\?").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(99)
	if err == nil {
		t.Fatal("expected error for missing user")
	}
	if !domain.IsNotFound(err) {
		t.Fatalf("got %T, want NotFoundError", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserAddBonusPointsIncrementsInPlace(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewUserRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET `bonus_points`=bonus_points \\+ \\? WHERE id = \\?").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.AddBonusPoints(4, 30); err != nil {
		t.Fatalf("AddBonusPoints: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserDeleteMissingRowIsNotFound(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewUserRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `users` WHERE `users`\\.`id` = \\?").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(123)
	if !domain.IsNotFound(err) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
