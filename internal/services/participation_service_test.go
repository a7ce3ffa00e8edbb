package services_test

import (
	"testing"
	"time"

	"civic/internal/models"
	"civic/internal/services"
	"civic/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipationService_ValidateCode(t *testing.T) {
	f := newFixture(t, nil)
	alice := f.register(t, "alice", 30)
	bob := f.register(t, "bob", 25)

	deadline := models.NewTimestamp(time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, f.actions.CreateAction(&models.Action{
		ID: 100, ProposerID: alice.ID, Title: "Clean the beach", Type: "environnement",
		Impact: "eleve", RequiredParticipants: 4, Deadline: &deadline,
	}))

	p, err := f.actions.Participate(100, bob.ID)
	require.NoError(t, err)

	before := time.Now().UTC()
	user, err := f.participations.ValidateCode(p.ID)
	require.NoError(t, err)

	assert.Equal(t, services.PointsPerValidation, user.Points)
	require.Len(t, user.Historique, 1)
	entry := user.Historique[0]
	assert.Equal(t, int64(100), entry.ActionID)
	assert.Equal(t, "Clean the beach", entry.ActionTitle)
	assert.Equal(t, 1, entry.Participated)
	assert.False(t, entry.Date.Before(before))
	require.NotNil(t, entry.ActionType)
	assert.Equal(t, "environnement", *entry.ActionType)
	require.NotNil(t, entry.ActionImpact)
	assert.Equal(t, "eleve", *entry.ActionImpact)
	require.NotNil(t, entry.ActionRequiredParticipants)
	assert.Equal(t, 4, *entry.ActionRequiredParticipants)
	require.NotNil(t, entry.ActionDeadline)
	assert.True(t, deadline.Equal(entry.ActionDeadline.Time))
	assert.Equal(t, 25, entry.UserAge)
	assert.Equal(t, models.RoleParticipant, entry.UserRole)
	assert.Equal(t, 0, entry.UserPoints, "snapshot holds points before the award")

	stored, err := f.repos.Participations.GetByID(p.ID)
	require.NoError(t, err)
	assert.True(t, stored.Used)

	// Second redemption is rejected and changes nothing.
	_, err = f.participations.ValidateCode(p.ID)
	assert.ErrorIs(t, err, services.ErrCodeAlreadyUsed)

	again, err := f.repos.Users.GetByID(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, services.PointsPerValidation, again.Points)
	assert.Len(t, again.Historique, 1)
}

func TestParticipationService_SnapshotsPointsBeforeEachAward(t *testing.T) {
	f := newFixture(t, nil)
	alice := f.register(t, "alice", 30)
	f.propose(t, 100, alice.ID, "Clean the beach")

	for i := 0; i < 3; i++ {
		p, err := f.actions.Participate(100, alice.ID)
		require.NoError(t, err)
		_, err = f.participations.ValidateCode(p.ID)
		require.NoError(t, err)
	}

	user, err := f.repos.Users.GetByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, user.Points)
	require.Len(t, user.Historique, 3)
	for i, entry := range user.Historique {
		assert.Equal(t, i*services.PointsPerValidation, entry.UserPoints)
	}
}

func TestParticipationService_InvalidCode(t *testing.T) {
	f := newFixture(t, nil)
	bob := f.register(t, "bob", 25)

	_, err := f.participations.ValidateCode("bogus")
	assert.ErrorIs(t, err, services.ErrInvalidCode)
	assert.ErrorIs(t, err, services.ErrNotFound)

	user, err := f.repos.Users.GetByID(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, user.Points)
	assert.Empty(t, user.Historique)
}

func TestParticipationService_MissingAction(t *testing.T) {
	f := newFixture(t, nil)
	bob := f.register(t, "bob", 25)
	// The code references an action that does not exist.
	require.NoError(t, f.repos.Participations.Create(&models.Participation{ID: "orphan", ActionID: 404, UserID: bob.ID}))

	user, err := f.participations.ValidateCode("orphan")
	require.NoError(t, err)
	assert.Equal(t, services.PointsPerValidation, user.Points)
	require.Len(t, user.Historique, 1)

	entry := user.Historique[0]
	assert.Equal(t, int64(404), entry.ActionID)
	assert.Equal(t, models.UnknownActionTitle, entry.ActionTitle)
	assert.Nil(t, entry.ActionType)
	assert.Nil(t, entry.ActionImpact)
	assert.Nil(t, entry.ActionRequiredParticipants)
	assert.Nil(t, entry.ActionDeadline)
}

func TestParticipationService_MissingUserStillConsumesCode(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.repos.Participations.Create(&models.Participation{ID: "ghost", ActionID: 1, UserID: 999}))

	_, err := f.participations.ValidateCode("ghost")
	assert.ErrorIs(t, err, services.ErrOwnerNotFound)

	// The code was persisted as used before the user lookup.
	var onDisk []models.Participation
	require.NoError(t, f.store.Load(store.Participations, &onDisk))
	require.Len(t, onDisk, 1)
	assert.True(t, onDisk[0].Used)

	_, err = f.participations.ValidateCode("ghost")
	assert.ErrorIs(t, err, services.ErrCodeAlreadyUsed)
}

func TestEndToEnd_ParticipationFlow(t *testing.T) {
	f := newFixture(t, nil)

	a := f.register(t, "alice", 30)
	b := f.register(t, "bob", 22)
	f.propose(t, 100, a.ID, "Clean the beach")

	p, err := f.actions.Participate(100, b.ID)
	require.NoError(t, err)

	user, err := f.participations.ValidateCode(p.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, user.ID)
	assert.Equal(t, 10, user.Points)
	require.Len(t, user.Historique, 1)
	assert.Equal(t, int64(100), user.Historique[0].ActionID)
	assert.Equal(t, 1, user.Historique[0].Participated)
}
