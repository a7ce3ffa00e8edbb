package repositories

import (
	"fmt"

	"civic/internal/models"
	"civic/internal/store"
)

// FileActionRepository keeps actions in memory and mirrors them to actions.json.
type FileActionRepository struct {
	actions *fileCollection[int64, models.Action]
}

// NewFileActionRepository loads the actions snapshot from st.
func NewFileActionRepository(st Snapshotter) (*FileActionRepository, error) {
	c, err := loadFileCollection(st, store.Actions,
		func(a *models.Action) int64 { return a.ID },
		models.Action.Clone,
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &FileActionRepository{actions: c}, nil
}

// GetAll returns all actions in insertion order.
func (r *FileActionRepository) GetAll() ([]models.Action, error) {
	return r.actions.all(), nil
}

// GetByID returns an action by its ID.
func (r *FileActionRepository) GetByID(id int64) (*models.Action, error) {
	action, ok := r.actions.get(id)
	if !ok {
		return nil, fmt.Errorf("action with ID %d: %w", id, ErrNotFound)
	}
	return &action, nil
}

// Create appends an action and persists the collection.
func (r *FileActionRepository) Create(action *models.Action) error {
	return r.actions.insert(*action)
}

// Update replaces a stored action and persists the collection.
func (r *FileActionRepository) Update(action *models.Action) error {
	return r.actions.replace(*action)
}
