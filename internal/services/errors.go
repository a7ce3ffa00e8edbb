package services

import "errors"

// Error kinds. Every DomainError unwraps to exactly one of these.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// DomainError is a rejected operation. Code is stable and machine readable,
// Message is meant for people.
type DomainError struct {
	Kind    error
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Kind }

func newError(kind error, code, message string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: message}
}

var (
	ErrInvalidCredentials = newError(ErrUnauthorized, "InvalidCredentials", "Invalid credentials")
	ErrDuplicateUser      = newError(ErrConflict, "DuplicateUser", "Username or email already registered")
	ErrDuplicateAction    = newError(ErrConflict, "DuplicateAction", "Action with this ID already exists")
	ErrProposerNotFound   = newError(ErrNotFound, "ProposerNotFound", "Proposer user not found")
	ErrUserNotFound       = newError(ErrNotFound, "UserNotFound", "User not found")
	ErrActionNotFound     = newError(ErrNotFound, "ActionNotFound", "Action not found")
	ErrAlreadyLiked       = newError(ErrConflict, "AlreadyLiked", "Action already liked by this user")
	ErrInvalidCode        = newError(ErrNotFound, "InvalidCode", "Code de participation invalide.")
	ErrCodeAlreadyUsed    = newError(ErrConflict, "CodeAlreadyUsed", "Ce code a déjà été utilisé.")
	// ErrOwnerNotFound is raised when a redeemed code belongs to a user that
	// no longer resolves. The code stays used.
	ErrOwnerNotFound = newError(ErrNotFound, "UserNotFound", "Utilisateur non trouvé.")
)
