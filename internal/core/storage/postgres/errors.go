package postgres

import (
	"context"
	"errors"
	"fmt"

	coreerr "github.com/Schnee111/smart-city-monitoring-system/internal/core/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// SQLSTATE classes that mean "the write itself is wrong".
const (
	classDataException      = "22"
	classIntegrityViolation = "23"
)

// classify maps a driver error onto the storage taxonomy.
// Both lib/pq and pgx errors are recognized; anything else (network, pool,
// timeout) is treated as transient.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if sqlStateClass(err) == classDataException || sqlStateClass(err) == classIntegrityViolation {
		return fmt.Errorf("%s: %w: %w", op, coreerr.ErrStorageRejected, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: timed out: %w", op, coreerr.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s: %w: %w", op, coreerr.ErrStorageUnavailable, err)
}

func sqlStateClass(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code.Class())
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		return pgErr.Code[:2]
	}
	return ""
}
