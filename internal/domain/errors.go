package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Categories
	ErrMsgValidation             = "validation failure"
	ErrMsgNotFound               = "not found"
	ErrMsgConflictRetryExhausted = "conflict retry exhausted"
	ErrMsgIntegrityViolation     = "integrity violation"

	// Player errors
	ErrMsgPlayerNotFound      = "player not found"
	ErrMsgUsernameTaken       = "username already taken"
	ErrMsgInvalidCredentials  = "invalid username or password"
	ErrMsgInsufficientFunds   = "not enough creds"
	ErrMsgInsufficientStamina = "not enough stamina"
	ErrMsgSelfHack            = "cannot hack yourself"

	// Item / inventory errors
	ErrMsgItemNotFound      = "item not found"
	ErrMsgInventoryNotFound = "inventory item not found"
	ErrMsgNotOwner          = "inventory item belongs to another player"
	ErrMsgItemAlreadyActive = "item already activated"
	ErrMsgItemDepleted      = "item has no remaining quantity"

	// Task errors
	ErrMsgTaskNotFound      = "task not found"
	ErrMsgTemplateNotFound  = "task template not found"
	ErrMsgInvalidTaskState  = "task is not in the required state"
	ErrMsgTaskAlreadyExists = "task already assigned"

	// Quiz errors
	ErrMsgQuestionNotFound = "question not found"
	ErrMsgInvalidChoice    = "choice out of range"

	// Feed errors
	ErrMsgFeedItemNotFound = "feed item not found"
	ErrMsgInvalidReaction  = "unsupported reaction"

	// Storage errors
	ErrMsgTxConflict     = "transaction conflict"
	ErrMsgReadAfterWrite = "read issued after first write in transaction"
	ErrMsgInvalidInput   = "invalid input"
)

// Error categories. Every specific error below wraps exactly one of these so
// callers can branch with errors.Is on either level.
var (
	ErrValidation             = errors.New(ErrMsgValidation)
	ErrNotFound               = errors.New(ErrMsgNotFound)
	ErrConflictRetryExhausted = errors.New(ErrMsgConflictRetryExhausted)
	ErrIntegrityViolation     = errors.New(ErrMsgIntegrityViolation)
)

// Validation failures
var (
	ErrInsufficientFunds   = newValidation(ErrMsgInsufficientFunds)
	ErrInsufficientStamina = newValidation(ErrMsgInsufficientStamina)
	ErrSelfHack            = newValidation(ErrMsgSelfHack)
	ErrNotOwner            = newValidation(ErrMsgNotOwner)
	ErrItemAlreadyActive   = newValidation(ErrMsgItemAlreadyActive)
	ErrItemDepleted        = newValidation(ErrMsgItemDepleted)
	ErrInvalidTaskState    = newValidation(ErrMsgInvalidTaskState)
	ErrTaskAlreadyExists   = newValidation(ErrMsgTaskAlreadyExists)
	ErrInvalidChoice       = newValidation(ErrMsgInvalidChoice)
	ErrInvalidReaction     = newValidation(ErrMsgInvalidReaction)
	ErrInvalidInput        = newValidation(ErrMsgInvalidInput)
	ErrUsernameTaken       = newValidation(ErrMsgUsernameTaken)
	ErrInvalidCredentials  = newValidation(ErrMsgInvalidCredentials)
)

// Missing records
var (
	ErrPlayerNotFound    = newNotFound(ErrMsgPlayerNotFound)
	ErrItemNotFound      = newNotFound(ErrMsgItemNotFound)
	ErrInventoryNotFound = newNotFound(ErrMsgInventoryNotFound)
	ErrTaskNotFound      = newNotFound(ErrMsgTaskNotFound)
	ErrTemplateNotFound  = newNotFound(ErrMsgTemplateNotFound)
	ErrQuestionNotFound  = newNotFound(ErrMsgQuestionNotFound)
	ErrFeedItemNotFound  = newNotFound(ErrMsgFeedItemNotFound)
)

// Storage errors. ErrTxConflict never leaves the transaction engine: it is
// either retried or converted to ErrConflictRetryExhausted.
var (
	ErrTxConflict     = errors.New(ErrMsgTxConflict)
	ErrReadAfterWrite = errors.New(ErrMsgReadAfterWrite)
)

// categorizedError keeps the specific message while unwrapping to its category.
type categorizedError struct {
	category error
	msg      string
}

func (e *categorizedError) Error() string { return e.msg }

func (e *categorizedError) Unwrap() error { return e.category }

func newValidation(msg string) error {
	return &categorizedError{category: ErrValidation, msg: msg}
}

func newNotFound(msg string) error {
	return &categorizedError{category: ErrNotFound, msg: msg}
}

// IntegrityError reports which field of which record would have been broken.
func IntegrityError(record, field string, value int) error {
	return fmt.Errorf("%w: %s.%s=%d", ErrIntegrityViolation, record, field, value)
}
