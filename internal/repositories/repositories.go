// Package repositories holds the three collections behind the domain: users,
// actions and participations. Two backends implement the same interfaces: a
// JSON snapshot backend that keeps the collections in memory and rewrites a
// file after every write, and a GORM backend for sqlite or postgres.
package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// Set groups the repositories one backend provides.
type Set struct {
	Users          UserRepository
	Actions        ActionRepository
	Participations ParticipationRepository
}

// NewFileSet loads all three collections from st.
func NewFileSet(st Snapshotter) (*Set, error) {
	users, err := NewFileUserRepository(st)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	actions, err := NewFileActionRepository(st)
	if err != nil {
		return nil, fmt.Errorf("failed to load actions: %w", err)
	}
	participations, err := NewFileParticipationRepository(st)
	if err != nil {
		return nil, fmt.Errorf("failed to load participations: %w", err)
	}
	return &Set{Users: users, Actions: actions, Participations: participations}, nil
}

// NewGORMSet wraps an already migrated database.
func NewGORMSet(db *gorm.DB) *Set {
	return &Set{
		Users:          NewGORMUserRepository(db),
		Actions:        NewGORMActionRepository(db),
		Participations: NewGORMParticipationRepository(db),
	}
}
