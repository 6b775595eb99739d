package postgres

import (
	"context"
	"database/sql"
	"errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchmetric/internal/domain/seasonstats"
)

// storeError annotates a failed store call. Caller cancellation is returned as
// is; every other failure is classified as the store being unavailable, with
// the driver error kept as secondary detail.
func storeError(parent context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if parent.Err() != nil && errors.Is(parent.Err(), context.Canceled) {
		return crerr.Wrapf(parent.Err(), "%s", op)
	}
	if errors.Is(err, seasonstats.ErrStoreUnavailable) {
		return err
	}
	return crerr.WithSecondaryError(
		crerr.Wrapf(seasonstats.ErrStoreUnavailable, "%s: %s", op, err.Error()),
		err,
	)
}

func nullCount(v sql.NullInt64) int {
	if !v.Valid || v.Int64 < 0 {
		return 0
	}
	return int(v.Int64)
}

func nullText(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}
