package services_test

import (
	"fmt"
	"testing"

	"civic/internal/models"
	"civic/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardService_SortsByPointsStable(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewLeaderboardService(mockRepo)

	mockRepo.On("GetAll").Return([]models.User{
		{ID: 1, Username: "a", Points: 10},
		{ID: 2, Username: "b", Points: 30},
		{ID: 3, Username: "c", Points: 10},
		{ID: 4, Username: "d", Points: 0},
		{ID: 5, Username: "e", Points: 30},
	}, nil).Once()

	ranked, err := service.Leaderboard()
	require.NoError(t, err)

	var order []int64
	for _, u := range ranked {
		order = append(order, u.ID)
	}
	assert.Equal(t, []int64{2, 5, 1, 3, 4}, order)
	mockRepo.AssertExpectations(t)
}

func TestLeaderboardService_Empty(t *testing.T) {
	f := newFixture(t, nil)

	ranked, err := f.leaderboard.Leaderboard()
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestLeaderboardService_RepositoryError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewLeaderboardService(mockRepo)
	mockRepo.On("GetAll").Return(nil, fmt.Errorf("database error")).Once()

	_, err := service.Leaderboard()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}
