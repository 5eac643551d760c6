package service

import (
	"context"
	"errors"
	"strings"

	"github.com/zorguiala/domdom/internal/apierror"

	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// translateDBErr maps store-layer errors onto the API taxonomy so raw driver
// errors never reach a client. Unique-constraint violations become conflicts.
func translateDBErr(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	var ae *apierror.Error
	if errors.As(err, &ae) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound(notFoundMsg)
	}
	msg := err.Error()
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "SQLSTATE 23505") {
		return apierror.Conflict("a record with the same unique value already exists")
	}
	return err
}
