package repositories

import (
	"fmt"

	"civic/internal/models"
	"civic/internal/store"
)

// FileUserRepository keeps users in memory and mirrors them to users.json.
type FileUserRepository struct {
	users *fileCollection[int64, models.User]
}

// NewFileUserRepository loads the users snapshot from st.
func NewFileUserRepository(st Snapshotter) (*FileUserRepository, error) {
	c, err := loadFileCollection(st, store.Users,
		func(u *models.User) int64 { return u.ID },
		models.User.Clone,
		(*models.User).Normalize,
	)
	if err != nil {
		return nil, err
	}
	return &FileUserRepository{users: c}, nil
}

// GetAll returns all users in insertion order.
func (r *FileUserRepository) GetAll() ([]models.User, error) {
	return r.users.all(), nil
}

// GetByID returns a user by its ID.
func (r *FileUserRepository) GetByID(id int64) (*models.User, error) {
	user, ok := r.users.get(id)
	if !ok {
		return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
	}
	return &user, nil
}

// GetByUsername returns the first user with the given username.
func (r *FileUserRepository) GetByUsername(username string) (*models.User, error) {
	user, ok := r.users.find(func(u *models.User) bool { return u.Username == username })
	if !ok {
		return nil, fmt.Errorf("user with username %s: %w", username, ErrNotFound)
	}
	return &user, nil
}

// GetByEmail returns the first user with the given email.
func (r *FileUserRepository) GetByEmail(email string) (*models.User, error) {
	user, ok := r.users.find(func(u *models.User) bool { return u.Email == email })
	if !ok {
		return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
	}
	return &user, nil
}

// GetByCredentials returns the first user matching both email and password.
func (r *FileUserRepository) GetByCredentials(email, password string) (*models.User, error) {
	user, ok := r.users.find(func(u *models.User) bool {
		return u.Email == email && u.Password == password
	})
	if !ok {
		return nil, fmt.Errorf("user with email %s and matching password: %w", email, ErrNotFound)
	}
	return &user, nil
}

// Create appends a user and persists the collection.
func (r *FileUserRepository) Create(user *models.User) error {
	user.Normalize()
	return r.users.insert(*user)
}

// Update replaces a stored user and persists the collection.
func (r *FileUserRepository) Update(user *models.User) error {
	user.Normalize()
	return r.users.replace(*user)
}

// NextID returns max(user_id)+1, or 1 for an empty collection.
func (r *FileUserRepository) NextID() (int64, error) {
	var max int64
	r.users.each(func(u *models.User) {
		if u.ID > max {
			max = u.ID
		}
	})
	return max + 1, nil
}
