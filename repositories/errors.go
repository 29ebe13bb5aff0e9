package repositories

import (
	"errors"

	"stayhub-backend/domain"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
)

// translateDBError converts driver and gorm errors into the domain
// taxonomy so nothing above this layer inspects SQL error codes.
func translateDBError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFoundError{Resource: resource, Err: err}
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry:
			return domain.ConflictError{Resource: resource, Msg: "already exists", Err: err}
		case mysqlErrRowIsReferenced:
			return domain.ConflictError{Resource: resource, Msg: "still referenced by other records", Err: err}
		case mysqlErrNoReferencedRow:
			return domain.ValidationError{Field: resource, Msg: "references a missing record"}
		}
	}
	return domain.InternalError{Err: err}
}
