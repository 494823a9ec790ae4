package helper

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// MapPGError translates Postgres SQLSTATE codes into (status, message),
// compatible with both pgx (what the GORM driver returns) and lib/pq
// (what wrapped raw connections return).
func MapPGError(err error) (int, string) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		switch pgxErr.Code {
		case "23503":
			return http.StatusBadRequest, "Referenced row not found (FK violation)"
		case "23505":
			return http.StatusConflict, "Duplicate data (unique violation)"
		default:
			return http.StatusInternalServerError, pgxErr.Message
		}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case "23503":
			return http.StatusBadRequest, "Referenced row not found (FK violation)"
		case "23505":
			return http.StatusConflict, "Duplicate data (unique violation)"
		default:
			return http.StatusInternalServerError, pqErr.Error()
		}
	}
	return http.StatusInternalServerError, err.Error()
}

// IsUniqueViolation reports SQLSTATE 23505 from either driver.
func IsUniqueViolation(err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	return false
}
