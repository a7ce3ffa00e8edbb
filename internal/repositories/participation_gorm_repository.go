package repositories

import (
	"errors"
	"fmt"

	"civic/internal/models"

	"gorm.io/gorm"
)

// GORMParticipationRepository is a GORM implementation of ParticipationRepository.
type GORMParticipationRepository struct {
	db *gorm.DB
}

// NewGORMParticipationRepository creates a new instance of GORMParticipationRepository.
func NewGORMParticipationRepository(db *gorm.DB) *GORMParticipationRepository {
	return &GORMParticipationRepository{
		db: db,
	}
}

// GetAll retrieves all participations in insertion order.
func (r *GORMParticipationRepository) GetAll() ([]models.Participation, error) {
	participations := []models.Participation{}
	if err := r.db.Order("seq").Find(&participations).Error; err != nil {
		return nil, fmt.Errorf("failed to get all participations: %w", err)
	}
	return participations, nil
}

// GetByID retrieves a participation by its code.
func (r *GORMParticipationRepository) GetByID(id string) (*models.Participation, error) {
	var p models.Participation
	if err := r.db.Where("participation_id = ?", id).Take(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("participation %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get participation %s: %w", id, err)
	}
	return &p, nil
}

// Create inserts a new participation at the end of the insertion order.
func (r *GORMParticipationRepository) Create(participation *models.Participation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeq(tx, &models.Participation{})
		if err != nil {
			return err
		}
		participation.Seq = seq
		if err := tx.Create(participation).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("participation %s: %w", participation.ID, ErrDuplicateKey)
			}
			return fmt.Errorf("failed to create participation: %w", err)
		}
		return nil
	})
}

// Update writes every field of an existing participation except its insertion order.
func (r *GORMParticipationRepository) Update(participation *models.Participation) error {
	res := r.db.Model(&models.Participation{}).Where("participation_id = ?", participation.ID).Select("*").Omit("seq").Updates(participation)
	if res.Error != nil {
		return fmt.Errorf("failed to update participation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("participation %s: %w", participation.ID, ErrNotFound)
	}
	return nil
}
