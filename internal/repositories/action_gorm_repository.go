package repositories

import (
	"errors"
	"fmt"

	"civic/internal/models"

	"gorm.io/gorm"
)

// GORMActionRepository is a GORM implementation of ActionRepository.
type GORMActionRepository struct {
	db *gorm.DB
}

// NewGORMActionRepository creates a new instance of GORMActionRepository.
func NewGORMActionRepository(db *gorm.DB) *GORMActionRepository {
	return &GORMActionRepository{
		db: db,
	}
}

// GetAll retrieves all actions in insertion order.
func (r *GORMActionRepository) GetAll() ([]models.Action, error) {
	actions := []models.Action{}
	if err := r.db.Order("seq").Find(&actions).Error; err != nil {
		return nil, fmt.Errorf("failed to get all actions: %w", err)
	}
	return actions, nil
}

// GetByID retrieves a single action by its ID.
func (r *GORMActionRepository) GetByID(id int64) (*models.Action, error) {
	var action models.Action
	if err := r.db.Where("action_id = ?", id).Take(&action).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("action with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get action by ID %d: %w", id, err)
	}
	return &action, nil
}

// Create inserts a new action at the end of the insertion order.
func (r *GORMActionRepository) Create(action *models.Action) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Action{}).Where("action_id = ?", action.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to create action: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("action %d: %w", action.ID, ErrDuplicateKey)
		}
		seq, err := nextSeq(tx, &models.Action{})
		if err != nil {
			return err
		}
		action.Seq = seq
		if err := tx.Create(action).Error; err != nil {
			return fmt.Errorf("failed to create action: %w", err)
		}
		return nil
	})
}

// Update writes every field of an existing action except its insertion order.
func (r *GORMActionRepository) Update(action *models.Action) error {
	res := r.db.Model(&models.Action{}).Where("action_id = ?", action.ID).Select("*").Omit("seq").Updates(action)
	if res.Error != nil {
		return fmt.Errorf("failed to update action: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("action with ID %d: %w", action.ID, ErrNotFound)
	}
	return nil
}
