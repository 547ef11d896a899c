package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks,
// e.g. a malformed amount or date fed into a contract derivation.
var ErrValidation = errors.New("validation error")

// ErrPrecondition indicates an operation was invoked on an entity in the
// wrong state, e.g. logging hours against a non-hourly contract.
var ErrPrecondition = errors.New("precondition failed")

// ErrAuthentication indicates a mutation was attempted without an
// authenticated principal.
var ErrAuthentication = errors.New("not authenticated")

// ErrPersistence indicates the backing store rejected a read or write.
var ErrPersistence = errors.New("persistence error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")
