package repositories

import (
	"fmt"

	"civic/internal/models"
	"civic/internal/store"
)

// FileParticipationRepository keeps participations in memory and mirrors them
// to participations.json.
type FileParticipationRepository struct {
	participations *fileCollection[string, models.Participation]
}

// NewFileParticipationRepository loads the participations snapshot from st.
func NewFileParticipationRepository(st Snapshotter) (*FileParticipationRepository, error) {
	c, err := loadFileCollection(st, store.Participations,
		func(p *models.Participation) string { return p.ID },
		identity[models.Participation],
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &FileParticipationRepository{participations: c}, nil
}

// GetAll returns all participations in insertion order.
func (r *FileParticipationRepository) GetAll() ([]models.Participation, error) {
	return r.participations.all(), nil
}

// GetByID returns the participation whose code is id.
func (r *FileParticipationRepository) GetByID(id string) (*models.Participation, error) {
	p, ok := r.participations.get(id)
	if !ok {
		return nil, fmt.Errorf("participation %s: %w", id, ErrNotFound)
	}
	return &p, nil
}

// Create appends a participation and persists the collection.
func (r *FileParticipationRepository) Create(participation *models.Participation) error {
	return r.participations.insert(*participation)
}

// Update replaces a stored participation and persists the collection.
func (r *FileParticipationRepository) Update(participation *models.Participation) error {
	return r.participations.replace(*participation)
}
