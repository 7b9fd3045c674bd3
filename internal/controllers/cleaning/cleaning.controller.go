package cleaningController

import (
	"context"
	"errors"
	"time"

	"rentalos/internal/logger"
	"rentalos/internal/models"
	"rentalos/internal/queries"
	"rentalos/internal/store"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound      = errors.New("cleaning task not found")
	ErrIssueNotFound     = errors.New("issue not found")
	ErrChecklistNotFound = errors.New("checklist item not found")
)

type CleaningControllerInterface interface {
	GetTask(ctx context.Context, id uuid.UUID) (*models.CleaningTask, error)
	AssignTask(ctx context.Context, id, cleanerID uuid.UUID) (*models.CleaningTask, error)
	ToggleChecklistItem(ctx context.Context, taskID, itemID, memberID uuid.UUID, checked bool) (*models.CleaningTask, error)
	LinkIssue(ctx context.Context, taskID, issueID uuid.UUID) (*models.CleaningTask, error)
}

type CleaningController struct {
	store *store.Store
	log   logger.Logger
}

func New(domainStore *store.Store) CleaningControllerInterface {
	return &CleaningController{
		store: domainStore,
		log:   logger.New("cleaningController"),
	}
}

func (cc *CleaningController) GetTask(
	ctx context.Context,
	id uuid.UUID,
) (*models.CleaningTask, error) {
	log := cc.log.Function("GetTask")

	task, found := queries.CleaningTaskByID(cc.store.Snapshot(), id)
	if !found {
		return nil, log.Err("cleaning task not found", ErrTaskNotFound, "taskID", id)
	}

	return &task, nil
}

func (cc *CleaningController) AssignTask(
	ctx context.Context,
	id, cleanerID uuid.UUID,
) (*models.CleaningTask, error) {
	log := cc.log.Function("AssignTask")

	task, found := queries.CleaningTaskByID(cc.store.Snapshot(), id)
	if !found {
		return nil, log.Err("cleaning task not found", ErrTaskNotFound, "taskID", id)
	}

	task.AssignedTo = &cleanerID
	task.Touch()
	cc.store.Dispatch(store.UpsertCleaningTask(task))

	return &task, nil
}

// ToggleChecklistItem checks or unchecks one cleaning item and re-derives the
// task status from checklist completion. CompletedAt is stamped when the last
// item is checked and cleared if an item is later unchecked.
func (cc *CleaningController) ToggleChecklistItem(
	ctx context.Context,
	taskID, itemID, memberID uuid.UUID,
	checked bool,
) (*models.CleaningTask, error) {
	log := cc.log.Function("ToggleChecklistItem")

	task, found := queries.CleaningTaskByID(cc.store.Snapshot(), taskID)
	if !found {
		return nil, log.Err("cleaning task not found", ErrTaskNotFound, "taskID", taskID)
	}

	toggled := false
	for i := range task.Checklist {
		if task.Checklist[i].ID != itemID {
			continue
		}
		task.Checklist[i].Checked = checked
		if checked {
			now := time.Now()
			task.Checklist[i].CheckedBy = &memberID
			task.Checklist[i].CheckedAt = &now
		} else {
			task.Checklist[i].CheckedBy = nil
			task.Checklist[i].CheckedAt = nil
		}
		toggled = true
		break
	}
	if !toggled {
		return nil, log.Err(
			"checklist item not found",
			ErrChecklistNotFound,
			"taskID", taskID,
			"itemID", itemID,
		)
	}

	task.Status = task.DeriveStatus()
	if task.Status == models.CleaningCompleted {
		if task.CompletedAt == nil {
			now := time.Now()
			task.CompletedAt = &now
		}
	} else {
		task.CompletedAt = nil
	}
	task.Touch()

	cc.store.Dispatch(store.UpsertCleaningTask(task))

	return &task, nil
}

// LinkIssue attaches an issue the cleaner found while working the task
func (cc *CleaningController) LinkIssue(
	ctx context.Context,
	taskID, issueID uuid.UUID,
) (*models.CleaningTask, error) {
	log := cc.log.Function("LinkIssue")

	state := cc.store.Snapshot()

	task, found := queries.CleaningTaskByID(state, taskID)
	if !found {
		return nil, log.Err("cleaning task not found", ErrTaskNotFound, "taskID", taskID)
	}

	if _, found := queries.IssueByID(state, issueID); !found {
		return nil, log.Err("issue not found", ErrIssueNotFound, "issueID", issueID)
	}

	for _, linked := range task.IssuesFound {
		if linked == issueID {
			return &task, nil
		}
	}

	task.IssuesFound = append(task.IssuesFound, issueID)
	task.Touch()
	cc.store.Dispatch(store.UpsertCleaningTask(task))

	return &task, nil
}
