package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrStorage indicates that the persistence layer failed to complete an operation.
var ErrStorage = errors.New("storage error")

// ErrFetch indicates that the exchange-rate endpoint was unreachable or returned
// a malformed response.
var ErrFetch = errors.New("fetch error")
