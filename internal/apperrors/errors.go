package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrRateFetch indicates that live exchange rates could not be fetched and the
// caller was served the built-in fallback table instead. Callers that only need
// a usable table may ignore it; handlers surface it as a warning.
var ErrRateFetch = errors.New("exchange rate fetch failed")
