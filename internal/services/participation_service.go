package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"civic/internal/models"
	"civic/internal/repositories"

	log "github.com/sirupsen/logrus"
)

// PointsPerValidation is awarded for every redeemed participation code.
const PointsPerValidation = 10

// ParticipationService redeems participation codes for points.
type ParticipationService struct {
	participationRepo repositories.ParticipationRepository
	userRepo          repositories.UserRepository
	actionRepo        repositories.ActionRepository
	writeMu           *sync.Mutex
	events            EventPublisher
	now               func() time.Time
}

// NewParticipationService creates a new ParticipationService.
func NewParticipationService(
	participationRepo repositories.ParticipationRepository,
	userRepo repositories.UserRepository,
	actionRepo repositories.ActionRepository,
	writeMu *sync.Mutex,
	events EventPublisher,
) *ParticipationService {
	return &ParticipationService{
		participationRepo: participationRepo,
		userRepo:          userRepo,
		actionRepo:        actionRepo,
		writeMu:           writeMu,
		events:            events,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

// ValidateCode redeems code and returns the credited user.
//
// The participation is marked used and persisted before any points move, so
// a failure later in the flow can lose an award but never grant it twice.
func (s *ParticipationService) ValidateCode(code string) (*models.User, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	participation, err := s.participationRepo.GetByID(code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, fmt.Errorf("failed to look up participation code: %w", err)
	}
	if participation.Used {
		return nil, ErrCodeAlreadyUsed
	}

	participation.Used = true
	if err := s.participationRepo.Update(participation); err != nil {
		return nil, fmt.Errorf("failed to mark participation used: %w", err)
	}

	user, err := s.userRepo.GetByID(participation.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.WithField("user_id", participation.UserID).Warn("Participation code redeemed for a missing user")
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", participation.UserID, err)
	}

	action, err := s.actionRepo.GetByID(participation.ActionID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to get action %d: %w", participation.ActionID, err)
		}
		action = nil
	}

	entry := models.NewHistoryEntry(participation.ActionID, action, *user, s.now())
	user.Points += PointsPerValidation
	user.Historique = append(user.Historique, entry)

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to award points to user %d: %w", user.ID, err)
	}

	log.WithFields(log.Fields{
		"user_id":   user.ID,
		"action_id": participation.ActionID,
		"points":    user.Points,
	}).Info("Participation validated")
	publish(s.events, EventParticipationValidated, map[string]interface{}{
		"user_id":   user.ID,
		"action_id": participation.ActionID,
		"awarded":   PointsPerValidation,
		"points":    user.Points,
	})
	return user, nil
}
