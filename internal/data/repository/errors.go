package repository

import (
	"errors"
	"fmt"
	"strings"

	"movie-catalog/pkg/apperror"
	"movie-catalog/pkg/metrics"

	"github.com/jackc/pgx/v5/pgconn"
)

// storeError classifies a failed statement. SQLSTATE class 22 (data exception)
// and 23 (integrity constraint violation) are caused by the submitted data and
// become KindConstraint; everything else is KindInternal.
func storeError(table, operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23")) {
		metrics.RecordStoreError(table, string(apperror.KindConstraint))
		return apperror.Constraint(fmt.Sprintf("%s %s rejected: %s", operation, table, pgErr.Message), err)
	}

	metrics.RecordStoreError(table, string(apperror.KindInternal))
	return apperror.Internal(fmt.Sprintf("failed to %s %s", operation, table), err)
}
