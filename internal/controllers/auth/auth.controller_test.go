package authController

import (
	"context"
	"testing"

	"rentalos/config"
	"rentalos/internal/models"
	"rentalos/internal/services"
	"rentalos/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) (AuthControllerInterface, *store.Store, models.Member, models.Member) {
	t.Helper()

	domainStore := store.New(nil)

	owner := models.Member{ID: uuid.New(), Name: "Maren Holt", Role: models.RoleOwner}
	guest := models.Member{ID: uuid.New(), Name: "Priya Raman", Role: models.RoleGuest}
	domainStore.Dispatch(store.SetPropertyGroup(models.PropertyGroup{
		Base:    models.NewBase(),
		Name:    "Lakeside Family",
		Members: []models.Member{owner, guest},
	}))

	tokenService, err := services.NewTokenService(config.Config{SessionSecret: "test-secret"})
	require.NoError(t, err)

	return New(domainStore, tokenService), domainStore, owner, guest
}

func TestCreateSession(t *testing.T) {
	controller, _, owner, _ := newTestController(t)
	ctx := context.Background()

	session, err := controller.CreateSession(ctx, owner.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, owner.ID, session.Member.ID)
	assert.Equal(t, models.RoleOwner, session.Member.Role)
	assert.Contains(t, session.Member.Permissions, models.PermManageData)

	_, err = controller.CreateSession(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestListMembers(t *testing.T) {
	controller, _, _, _ := newTestController(t)

	members := controller.ListMembers(context.Background())
	assert.Len(t, members, 2)
}

func TestOnboardingFlow(t *testing.T) {
	controller, domainStore, owner, guest := newTestController(t)
	ctx := context.Background()

	t.Run("owners have no onboarding", func(t *testing.T) {
		_, err := controller.GetOnboarding(ctx, owner.ID)
		assert.ErrorIs(t, err, ErrNotAGuest)
	})

	t.Run("fresh guests start empty", func(t *testing.T) {
		record, err := controller.GetOnboarding(ctx, guest.ID)
		require.NoError(t, err)
		assert.Empty(t, record.CompletedSteps)
		assert.False(t, record.RulesAcknowledged)
	})

	t.Run("steps accumulate without duplicates", func(t *testing.T) {
		_, err := controller.CompleteOnboardingStep(ctx, guest.ID, "welcome")
		require.NoError(t, err)

		record, err := controller.CompleteOnboardingStep(ctx, guest.ID, "welcome")
		require.NoError(t, err)
		assert.Equal(t, []string{"welcome"}, record.CompletedSteps)

		record, err = controller.CompleteOnboardingStep(ctx, guest.ID, "house-tour")
		require.NoError(t, err)
		assert.Len(t, record.CompletedSteps, 2)
	})

	t.Run("rules acknowledgment persists", func(t *testing.T) {
		record, err := controller.AcknowledgeOnboardingRules(ctx, guest.ID)
		require.NoError(t, err)
		assert.True(t, record.RulesAcknowledged)

		stored := domainStore.Snapshot().Onboarding
		require.Len(t, stored, 1)
		assert.True(t, stored[0].RulesAcknowledged)
		assert.Len(t, stored[0].CompletedSteps, 2)
	})
}
