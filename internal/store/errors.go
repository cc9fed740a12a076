package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/feral-file/ff-revshare/internal/domain"
)

// PostgreSQL error codes
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgAdminShutdown        = "57P01"
	pgConnectionException  = "08"
)

// isUniqueViolation reports whether err is a unique constraint violation,
// optionally restricted to the named constraint
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// classifyError tags driver errors with the storage sentinels so callers can decide on retries.
// Errors that already carry a domain sentinel are returned unchanged.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrStorageConflict) || errors.Is(err, domain.ErrStorageUnavailable) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgSerializationFailure,
			pgErr.Code == pgDeadlockDetected,
			pgErr.Code == pgLockNotAvailable,
			pgErr.Code == pgUniqueViolation:
			return fmt.Errorf("%w: %w", domain.ErrStorageConflict, err)
		case pgErr.Code == pgAdminShutdown,
			strings.HasPrefix(pgErr.Code, pgConnectionException):
			return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
		}
		return err
	}

	var netErr net.Error
	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.As(err, &netErr),
		pgconn.Timeout(err),
		pgconn.SafeToRetry(err):
		return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}

	return err
}
