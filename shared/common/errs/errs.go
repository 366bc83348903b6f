package errs

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type ErrorType string

const (
	ErrValidation  ErrorType = "validation_error"
	ErrNotFound    ErrorType = "not_found"
	ErrConflict    ErrorType = "conflict"
	ErrPersistence ErrorType = "persistence_error"
)

// AppError คือ error ที่ใช้ทั้งระบบ แยกประเภทด้วย Type
// Message คือข้อความที่ส่งให้ผู้เรียก ส่วน Err คือสาเหตุจริง (ถ้ามี)
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is เทียบ Type และ Message เพื่อให้ใช้ errors.Is กับ sentinel error ได้
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

func ValidationError(message string) error {
	return &AppError{Type: ErrValidation, Message: message}
}

func NotFoundError(message string) error {
	return &AppError{Type: ErrNotFound, Message: message}
}

func ConflictError(message string) error {
	return &AppError{Type: ErrConflict, Message: message}
}

func PersistenceError(message string, err error) error {
	return &AppError{Type: ErrPersistence, Message: message, Err: err}
}

// HandleDBError แปลง error จากฐานข้อมูลให้เป็น AppError
func HandleDBError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
		return &AppError{Type: ErrConflict, Message: "resource already exists", Err: err}
	}

	return PersistenceError("database error", err)
}

func TypeOf(err error) (ErrorType, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type, true
	}
	return "", false
}

func IsType(err error, t ErrorType) bool {
	got, ok := TypeOf(err)
	return ok && got == t
}

func IsValidation(err error) bool  { return IsType(err, ErrValidation) }
func IsNotFound(err error) bool    { return IsType(err, ErrNotFound) }
func IsConflict(err error) bool    { return IsType(err, ErrConflict) }
func IsPersistence(err error) bool { return IsType(err, ErrPersistence) }
