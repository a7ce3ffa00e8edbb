package services

import (
	"errors"
	"fmt"
	"sync"

	"civic/internal/models"
	"civic/internal/repositories"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ActionService handles business logic for actions: listing, proposing,
// liking and issuing participation codes.
type ActionService struct {
	actionRepo        repositories.ActionRepository
	userRepo          repositories.UserRepository
	participationRepo repositories.ParticipationRepository
	writeMu           *sync.Mutex
	events            EventPublisher
	newCode           func() string
}

// NewActionService creates a new ActionService.
func NewActionService(
	actionRepo repositories.ActionRepository,
	userRepo repositories.UserRepository,
	participationRepo repositories.ParticipationRepository,
	writeMu *sync.Mutex,
	events EventPublisher,
) *ActionService {
	return &ActionService{
		actionRepo:        actionRepo,
		userRepo:          userRepo,
		participationRepo: participationRepo,
		writeMu:           writeMu,
		events:            events,
		newCode:           func() string { return uuid.New().String() },
	}
}

// GetAllActions returns every action in storage order, each with its
// proposer's username ("Unknown" when the proposer does not resolve).
func (s *ActionService) GetAllActions() ([]models.ActionView, error) {
	actions, err := s.actionRepo.GetAll()
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}

	usernames := make(map[int64]string, len(users))
	for _, u := range users {
		if _, seen := usernames[u.ID]; !seen {
			usernames[u.ID] = u.Username
		}
	}

	views := make([]models.ActionView, 0, len(actions))
	for _, a := range actions {
		name, ok := usernames[a.ProposerID]
		if !ok {
			name = models.UnknownProposer
		}
		views = append(views, models.ActionView{Action: a, ProposerUsername: name})
	}
	return views, nil
}

// CreateAction stores a proposed action under its caller-chosen ID.
func (s *ActionService) CreateAction(action *models.Action) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, err := s.actionRepo.GetByID(action.ID); err == nil {
		return ErrDuplicateAction
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check action %d: %w", action.ID, err)
	}
	if _, err := s.userRepo.GetByID(action.ProposerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProposerNotFound
		}
		return fmt.Errorf("failed to check proposer %d: %w", action.ProposerID, err)
	}

	action.Normalize()
	if err := s.actionRepo.Create(action); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return ErrDuplicateAction
		}
		return fmt.Errorf("failed to create action: %w", err)
	}

	log.WithFields(log.Fields{"action_id": action.ID, "proposer_id": action.ProposerID}).Info("Action created")
	publish(s.events, EventActionCreated, map[string]interface{}{
		"action_id":   action.ID,
		"proposer_id": action.ProposerID,
		"title":       action.Title,
	})
	return nil
}

// LikeAction records that userID likes actionID. The user is resolved and
// checked for a previous like before the action is looked up.
func (s *ActionService) LikeAction(actionID, userID int64) (*models.Action, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	if user.HasLiked(actionID) {
		return nil, ErrAlreadyLiked
	}

	action, err := s.actionRepo.GetByID(actionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrActionNotFound
		}
		return nil, fmt.Errorf("failed to get action %d: %w", actionID, err)
	}

	action.Likes++
	user.LikedActions = append(user.LikedActions, actionID)

	if err := s.actionRepo.Update(action); err != nil {
		return nil, fmt.Errorf("failed to save like on action %d: %w", actionID, err)
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to save liked action for user %d: %w", userID, err)
	}

	log.WithFields(log.Fields{"action_id": actionID, "user_id": userID, "likes": action.Likes}).Info("Action liked")
	publish(s.events, EventActionLiked, map[string]interface{}{
		"action_id": actionID,
		"user_id":   userID,
		"likes":     action.Likes,
	})
	return action, nil
}

// Participate issues a fresh, unused participation code for userID on actionID.
func (s *ActionService) Participate(actionID, userID int64) (*models.Participation, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, err := s.actionRepo.GetByID(actionID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrActionNotFound
		}
		return nil, fmt.Errorf("failed to get action %d: %w", actionID, err)
	}
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	participation := &models.Participation{
		ID:       s.newCode(),
		ActionID: actionID,
		UserID:   userID,
		Used:     false,
	}
	if err := s.participationRepo.Create(participation); err != nil {
		return nil, fmt.Errorf("failed to create participation: %w", err)
	}

	log.WithFields(log.Fields{"action_id": actionID, "user_id": userID}).Info("Participation code issued")
	publish(s.events, EventParticipationCreated, map[string]interface{}{
		"action_id": actionID,
		"user_id":   userID,
	})
	return participation, nil
}
