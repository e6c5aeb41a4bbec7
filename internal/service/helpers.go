package service

import (
	"context"
	"errors"
	"time"

	"aguanueva/internal/apierror"

	"gorm.io/gorm"
)

const fechaLayout = "2006-01-02"

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// traducirError maps translated GORM errors onto the API error taxonomy.
// Anything unrecognized bubbles up and becomes a 500 in the middleware.
func traducirError(err error, notFoundMsg, duplicadoMsg, referenciaMsg string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierror.NotFound(notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apierror.ValidationMsg(duplicadoMsg)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apierror.Reference(referenciaMsg)
	}
	return err
}

// parseFecha parses a yyyy-mm-dd date already format-validated at the DTO
// boundary.
func parseFecha(s string) time.Time {
	t, _ := time.Parse(fechaLayout, s)
	return t
}

func fmtFecha(t time.Time) string { return t.Format(fechaLayout) }

func fmtFechaPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(fechaLayout)
	return &s
}
