package repositories

import (
	"errors"
	"fmt"

	"civic/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// GetAll retrieves all users in insertion order.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	users := []models.User{}
	if err := r.db.Order("seq").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	for i := range users {
		users[i].Normalize()
	}
	return users, nil
}

// GetByID retrieves a user by their ID.
func (r *GORMUserRepository) GetByID(id int64) (*models.User, error) {
	return r.first(fmt.Sprintf("user with ID %d", id), "user_id = ?", id)
}

// GetByUsername retrieves a user by their username.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	return r.first("user with username "+username, "username = ?", username)
}

// GetByEmail retrieves a user by their email.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.first("user with email "+email, "email = ?", email)
}

// GetByCredentials retrieves the first user matching email and password.
func (r *GORMUserRepository) GetByCredentials(email, password string) (*models.User, error) {
	return r.first("user with email "+email+" and matching password", "email = ? AND password = ?", email, password)
}

func (r *GORMUserRepository) first(what string, query string, args ...interface{}) (*models.User, error) {
	var user models.User
	if err := r.db.Where(query, args...).Order("seq").Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}
	user.Normalize()
	return &user, nil
}

// Create inserts a new user at the end of the insertion order.
func (r *GORMUserRepository) Create(user *models.User) error {
	user.Normalize()
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("user %d: %w", user.ID, ErrDuplicateKey)
		}
		seq, err := nextSeq(tx, &models.User{})
		if err != nil {
			return err
		}
		user.Seq = seq
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
}

// Update writes every field of an existing user except its insertion order.
func (r *GORMUserRepository) Update(user *models.User) error {
	user.Normalize()
	res := r.db.Model(&models.User{}).Where("user_id = ?", user.ID).Select("*").Omit("seq").Updates(user)
	if res.Error != nil {
		return fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with ID %d: %w", user.ID, ErrNotFound)
	}
	return nil
}

// NextID returns max(user_id)+1, or 1 for an empty table.
func (r *GORMUserRepository) NextID() (int64, error) {
	var max int64
	if err := r.db.Model(&models.User{}).Select("COALESCE(MAX(user_id), 0)").Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("failed to compute next user ID: %w", err)
	}
	return max + 1, nil
}
