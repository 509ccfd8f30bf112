// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package database

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/tomtom215/filmgraph/internal/logging"
	"github.com/tomtom215/filmgraph/internal/store"
)

// MySQL server error numbers reported as store.ErrConflict.
const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
	mysqlLockDeadlock    = 1213
	mysqlLockWaitTimeout = 1205
)

// closeWithLog closes a resource and logs any error
// Use this for cleanup operations where errors should be acknowledged but not fail the operation
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error
// Use this for cleanup operations in error paths where Close() errors are not actionable
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}

// classifyError maps driver constraint failures onto store.ErrConflict.
// Errors that already carry a store kind pass through unchanged.
func classifyError(err error) error {
	if err == nil || store.IsNotFound(err) || store.IsConflict(err) {
		return err
	}
	if isConstraintViolation(err) || isTransactionConflict(err) {
		return fmt.Errorf("%w: %w", err, store.ErrConflict)
	}
	return err
}

// isConstraintViolation reports unique, primary key and foreign key
// failures from either driver.
func isConstraintViolation(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry, mysqlRowIsReferenced, mysqlNoReferencedRow:
			return true
		}
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Constraint Error") ||
		strings.Contains(errStr, "Duplicate key") ||
		strings.Contains(errStr, "violates primary key constraint") ||
		strings.Contains(errStr, "violates unique constraint")
}

// errorKind labels an error for metrics.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case store.IsNotFound(err):
		return "not_found"
	case store.IsConflict(err):
		return "conflict"
	case isConnectionError(err):
		return "connection"
	default:
		return "internal"
	}
}
