package repositories

import "civic/internal/models"

// ParticipationRepository defines the interface for participation data access.
type ParticipationRepository interface {
	GetAll() ([]models.Participation, error)
	GetByID(id string) (*models.Participation, error)
	Create(participation *models.Participation) error
	Update(participation *models.Participation) error
}
