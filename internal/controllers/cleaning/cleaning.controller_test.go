package cleaningController

import (
	"context"
	"testing"

	"rentalos/internal/models"
	"rentalos/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) (CleaningControllerInterface, *store.Store, models.CleaningTask) {
	t.Helper()

	domainStore := store.New(nil)

	task := models.CleaningTask{
		Base:      models.NewBase(),
		HouseID:   uuid.New(),
		StayID:    uuid.New(),
		Checklist: models.NewChecklist("Vacuum", "Change sheets"),
		Status:    models.CleaningPending,
	}
	domainStore.Dispatch(store.UpsertCleaningTask(task))

	return New(domainStore), domainStore, task
}

func TestAssignTask(t *testing.T) {
	controller, _, task := newTestController(t)
	cleaner := uuid.New()

	assigned, err := controller.AssignTask(context.Background(), task.ID, cleaner)
	require.NoError(t, err)
	require.NotNil(t, assigned.AssignedTo)
	assert.Equal(t, cleaner, *assigned.AssignedTo)

	_, err = controller.AssignTask(context.Background(), uuid.New(), cleaner)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestToggleChecklistItemDerivesStatus(t *testing.T) {
	controller, _, task := newTestController(t)
	ctx := context.Background()
	cleaner := uuid.New()

	// First item checked moves the task to in progress
	updated, err := controller.ToggleChecklistItem(ctx, task.ID, task.Checklist[0].ID, cleaner, true)
	require.NoError(t, err)
	assert.Equal(t, models.CleaningInProgress, updated.Status)
	assert.Nil(t, updated.CompletedAt)
	require.NotNil(t, updated.Checklist[0].CheckedBy)
	assert.Equal(t, cleaner, *updated.Checklist[0].CheckedBy)

	// Last item completes the task and stamps CompletedAt
	updated, err = controller.ToggleChecklistItem(ctx, task.ID, task.Checklist[1].ID, cleaner, true)
	require.NoError(t, err)
	assert.Equal(t, models.CleaningCompleted, updated.Status)
	assert.NotNil(t, updated.CompletedAt)

	// Unchecking reopens the task
	updated, err = controller.ToggleChecklistItem(ctx, task.ID, task.Checklist[1].ID, cleaner, false)
	require.NoError(t, err)
	assert.Equal(t, models.CleaningInProgress, updated.Status)
	assert.Nil(t, updated.CompletedAt)
}

func TestToggleChecklistItemUnknown(t *testing.T) {
	controller, _, task := newTestController(t)

	_, err := controller.ToggleChecklistItem(context.Background(), task.ID, uuid.New(), uuid.New(), true)
	assert.ErrorIs(t, err, ErrChecklistNotFound)
}

func TestLinkIssue(t *testing.T) {
	controller, domainStore, task := newTestController(t)
	ctx := context.Background()

	issue := models.Issue{
		Base:    models.NewBase(),
		HouseID: task.HouseID,
		Title:   "Stained carpet",
		Status:  models.IssueOpen,
	}
	domainStore.Dispatch(store.UpsertIssue(issue))

	linked, err := controller.LinkIssue(ctx, task.ID, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{issue.ID}, linked.IssuesFound)

	// Linking the same issue twice is a no-op
	linked, err = controller.LinkIssue(ctx, task.ID, issue.ID)
	require.NoError(t, err)
	assert.Len(t, linked.IssuesFound, 1)

	_, err = controller.LinkIssue(ctx, task.ID, uuid.New())
	assert.ErrorIs(t, err, ErrIssueNotFound)
}
