package gormstore

import (
	"errors"
	"strings"

	"agrifin-backend/internal/domain/apperror"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// translate maps driver errors onto the domain taxonomy. Validation errors
// raised by model hooks pass through unchanged.
func translate(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NotFound(entity)
	case isDuplicate(err):
		return apperror.Duplicate(entity + " already exists")
	}
	return err
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// drivers opened without TranslateError
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "Duplicate entry")
}

// forUpdate adds SELECT ... FOR UPDATE where the dialect has row locks.
// SQLite serialises writers per database so it gets the plain query.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// noHooks is used for column-targeted updates on an empty model, where the
// full-record BeforeSave validation does not apply.
func noHooks(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{SkipHooks: true})
}
