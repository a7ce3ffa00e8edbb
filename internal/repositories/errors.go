package repositories

import "errors"

var (
	// ErrNotFound is wrapped by every lookup that matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is wrapped when Create is given an ID already in use.
	ErrDuplicateKey = errors.New("duplicate key")
)
