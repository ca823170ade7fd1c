// Package apierror mendefinisikan taxonomy error lintas fitur:
// ValidationError (salah input, 400), ConflictError (melanggar keunikan, 409),
// StorageError (persistence gagal, 500). Pemetaan ke HTTP terjadi di
// helper.ErrorHandler.
package apierror

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

/* ===================== ValidationError ===================== */

type ValidationError struct {
	Message string
	Field   string // nama field/id yang bermasalah (opsional)
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) FieldErrors() map[string][]string {
	if e.Field == "" {
		return nil
	}
	return map[string][]string{e.Field: {e.Message}}
}

/* ===================== ConflictError ===================== */

type ConflictError struct {
	Message    string
	SubjectIDs []string // subjek yang bentrok (boleh kosong)
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflict(message string, subjectIDs ...string) *ConflictError {
	return &ConflictError{Message: message, SubjectIDs: subjectIDs}
}

/* ===================== StorageError ===================== */

type StorageError struct {
	Op  string // operasi yang gagal, mis. "teacher_attendances.insert_batch"
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

func NewStorage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

/* ===================== Postgres helpers ===================== */

// IsUniqueViolation: true kalau err adalah pelanggaran unique constraint (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// AsConflict mengubah pelanggaran unique menjadi ConflictError; selain itu StorageError.
func AsConflict(op, message string, err error) error {
	if IsUniqueViolation(err) {
		return NewConflict(message)
	}
	return NewStorage(op, err)
}
