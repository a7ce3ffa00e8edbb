package services_test

import (
	"sync"
	"testing"

	"civic/internal/models"
	"civic/internal/repositories"
	"civic/internal/services"
	"civic/internal/store"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repos          *repositories.Set
	store          *store.JSONStore
	users          *services.UserService
	actions        *services.ActionService
	participations *services.ParticipationService
	leaderboard    *services.LeaderboardService
	auth           *services.AuthService
}

// newFixture wires every service over file repositories on an in-memory filesystem.
func newFixture(t *testing.T, events services.EventPublisher) *fixture {
	t.Helper()
	st := store.NewJSONStore(afero.NewMemMapFs(), "/data")
	repos, err := repositories.NewFileSet(st)
	require.NoError(t, err)

	var mu sync.Mutex
	return &fixture{
		repos:          repos,
		store:          st,
		users:          services.NewUserService(repos.Users, &mu, events),
		actions:        services.NewActionService(repos.Actions, repos.Users, repos.Participations, &mu, events),
		participations: services.NewParticipationService(repos.Participations, repos.Users, repos.Actions, &mu, events),
		leaderboard:    services.NewLeaderboardService(repos.Users),
		auth:           services.NewAuthService(repos.Users),
	}
}

func (f *fixture) register(t *testing.T, username string, age int) *models.User {
	t.Helper()
	u, err := f.users.Register(username, username+"@example.com", "secret-"+username, age)
	require.NoError(t, err)
	return u
}

func (f *fixture) propose(t *testing.T, id, proposer int64, title string) *models.Action {
	t.Helper()
	a := &models.Action{ID: id, ProposerID: proposer, Title: title, Type: "environnement", Impact: "moyen"}
	require.NoError(t, f.actions.CreateAction(a))
	return a
}
