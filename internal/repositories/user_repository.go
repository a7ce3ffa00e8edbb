package repositories

import "civic/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id int64) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	// GetByCredentials returns the first user, in insertion order, whose email
	// and password both match exactly.
	GetByCredentials(email, password string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	// NextID returns one more than the highest user ID, or 1 when empty.
	NextID() (int64, error)
}
