package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConfig indicates that a locale configuration violates one of its
// structural invariants. Always detected when the configuration is
// constructed, never during a conversion.
var ErrConfig = errors.New("invalid locale configuration")

// ErrRange indicates that a magnitude exceeds what the locale's scales
// table can represent.
var ErrRange = errors.New("magnitude out of range for locale")

// ErrArgument indicates an internal contract violation, e.g. a negative
// value reaching the magnitude renderer. Unreachable through the public
// API; seeing it means a bug.
var ErrArgument = errors.New("invalid argument")
