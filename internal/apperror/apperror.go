// internal/apperror/apperror.go
//
// Application error taxonomy.
//
// Context
// -------
// Handlers need to branch on error *kind* (validation, ownership, store
// failure) while showing users a Spanish-language message that never
// leaks store internals.  AppError pairs a sentinel kind, matched with
// errors.Is, with the user-facing message.  Repositories return these;
// the HTTP layer maps kinds to status codes and flash messages.
//
// PermissionDenied is deliberately absent from the public surface: an
// ownership mismatch is reported as NotFound so the existence of other
// users' sites is never revealed.
package apperror

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrNameTaken   = errors.New("name taken")
	ErrPersistence = errors.New("persistence failed")
)

// AppError carries a sentinel kind plus a message safe to show users.
type AppError struct {
	Err     error  // sentinel, for errors.Is
	Message string // user-facing, Spanish, no internals
	Field   string // optional offending field
}

func (e *AppError) Error() string { return e.Message }
func (e *AppError) Unwrap() error { return e.Err }

// NotFound covers both a genuinely missing record and an ownership
// mismatch; callers must not distinguish the two.
func NotFound(message string) *AppError {
	return &AppError{Err: ErrNotFound, Message: message}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message, Field: field}
}

func NameTaken(message string) *AppError {
	return &AppError{Err: ErrNameTaken, Message: message}
}

// Persistence wraps a store failure.  The underlying error is logged by
// the caller, never shown; message is the generic "could not save" copy.
func Persistence(message string) *AppError {
	return &AppError{Err: ErrPersistence, Message: message}
}
