package errors

import "errors"

// Sentinel errors shared by the service layer. Services wrap them with
// fmt.Errorf("%w: ...") and the API layer maps them to HTTP statuses with
// errors.Is, so no service depends on net/http.

var (
	// ErrNotFound: the thread, message or setting does not exist (404).
	ErrNotFound = errors.New("resource not found")

	// ErrValidation: the client sent unusable input (400). The wrapped
	// message is safe to show to the user.
	ErrValidation = errors.New("validation failed")

	// ErrConflict: the request clashes with the current state, such as a
	// second question while one is still being answered (409).
	ErrConflict = errors.New("resource conflict")

	// ErrPermission: the caller may not perform the action (403).
	ErrPermission = errors.New("permission denied")

	// ErrInternal: anything unexpected (500). Details are logged, never sent.
	ErrInternal = errors.New("internal server error")
)
