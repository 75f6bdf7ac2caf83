package repository

import (
	"errors"

	"github.com/lib/pq"
)

const (
	pgForeignKeyViolation pq.ErrorCode = "23503"
	pgUniqueViolation     pq.ErrorCode = "23505"
	pgExclusionViolation  pq.ErrorCode = "23P01"
)

func hasPgCode(err error, code pq.ErrorCode) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isForeignKeyViolation(err error) bool { return hasPgCode(err, pgForeignKeyViolation) }
func isUniqueViolation(err error) bool     { return hasPgCode(err, pgUniqueViolation) }
func isExclusionViolation(err error) bool  { return hasPgCode(err, pgExclusionViolation) }
