package repositories

import "civic/internal/models"

// ActionRepository defines the interface for action data access.
type ActionRepository interface {
	GetAll() ([]models.Action, error)
	GetByID(id int64) (*models.Action, error)
	Create(action *models.Action) error
	Update(action *models.Action) error
}
