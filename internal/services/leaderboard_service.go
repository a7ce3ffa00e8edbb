package services

import (
	"sort"

	"civic/internal/models"
	"civic/internal/repositories"
)

// LeaderboardService ranks users by points.
type LeaderboardService struct {
	userRepo repositories.UserRepository
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(userRepo repositories.UserRepository) *LeaderboardService {
	return &LeaderboardService{userRepo: userRepo}
}

// Leaderboard returns all users by points, highest first. Users with equal
// points keep their storage order.
func (s *LeaderboardService) Leaderboard() ([]models.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Points > users[j].Points
	})
	return users, nil
}
