package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidAmount indicates a registration attempt with a non-positive amount.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrNoActiveSession indicates a registration attempt without a logged-in employee.
var ErrNoActiveSession = errors.New("no active employee session")

// ErrAuthFailed indicates an admin credential mismatch.
var ErrAuthFailed = errors.New("authentication failed")

// ErrForbidden indicates the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the resource is in a state that does not permit the action.
var ErrConflict = errors.New("conflicting resource state")
