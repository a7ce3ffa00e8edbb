package services

import (
	"errors"
	"fmt"
	"sync"

	"civic/internal/models"
	"civic/internal/repositories"

	log "github.com/sirupsen/logrus"
)

// UserService handles registration and listing of users.
type UserService struct {
	userRepo repositories.UserRepository
	writeMu  *sync.Mutex
	events   EventPublisher
}

// NewUserService creates a new UserService. writeMu is shared by every service
// that mutates the collections.
func NewUserService(userRepo repositories.UserRepository, writeMu *sync.Mutex, events EventPublisher) *UserService {
	return &UserService{
		userRepo: userRepo,
		writeMu:  writeMu,
		events:   events,
	}
}

// GetAllUsers returns every user in storage order.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// Register creates a participant with zero points. Username and email must
// both be unused.
func (s *UserService) Register(username, email, password string, age int) (*models.User, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if taken, err := s.exists(s.userRepo.GetByUsername(username)); err != nil || taken {
		return nil, orDuplicate(err)
	}
	if taken, err := s.exists(s.userRepo.GetByEmail(email)); err != nil || taken {
		return nil, orDuplicate(err)
	}

	id, err := s.userRepo.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to assign user ID: %w", err)
	}

	user := &models.User{
		ID:           id,
		Username:     username,
		Email:        email,
		Password:     password,
		Role:         models.RoleParticipant,
		Points:       0,
		Historique:   []models.HistoryEntry{},
		Age:          age,
		LikedActions: []int64{},
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	log.WithFields(log.Fields{"user_id": user.ID, "username": user.Username}).Info("User registered")
	publish(s.events, EventUserRegistered, map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, nil
}

func (s *UserService) exists(_ *models.User, err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check existing users: %w", err)
}

func orDuplicate(err error) error {
	if err != nil {
		return err
	}
	return ErrDuplicateUser
}
