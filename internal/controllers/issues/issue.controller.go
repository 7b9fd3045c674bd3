package issueController

import (
	"context"
	"errors"
	"fmt"
	"time"

	notificationController "rentalos/internal/controllers/notifications"
	"rentalos/internal/logger"
	"rentalos/internal/models"
	"rentalos/internal/queries"
	"rentalos/internal/store"

	"github.com/google/uuid"
)

var (
	ErrIssueNotFound     = errors.New("issue not found")
	ErrHouseNotFound     = errors.New("house not found")
	ErrRoomNotFound      = errors.New("room not found")
	ErrTitleRequired     = errors.New("issue title is required")
	ErrInvalidTransition = errors.New("issue status can only move forward")
)

type ReportIssueRequest struct {
	HouseID     uuid.UUID            `json:"houseId"`
	StayID      *uuid.UUID           `json:"stayId"`
	RoomID      *uuid.UUID           `json:"roomId"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Type        models.IssueType     `json:"type"`
	Severity    models.IssueSeverity `json:"severity"`
	ReportedBy  uuid.UUID            `json:"-"`
}

type IssueControllerInterface interface {
	GetIssue(ctx context.Context, id uuid.UUID) (*models.Issue, error)
	ReportIssue(ctx context.Context, request ReportIssueRequest) (*models.Issue, error)
	AssignIssue(ctx context.Context, id, memberID uuid.UUID) (*models.Issue, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next models.IssueStatus, updatedBy uuid.UUID) (*models.Issue, error)
}

type IssueController struct {
	store         *store.Store
	notifications notificationController.NotificationControllerInterface
	log           logger.Logger
}

func New(
	domainStore *store.Store,
	notifications notificationController.NotificationControllerInterface,
) IssueControllerInterface {
	return &IssueController{
		store:         domainStore,
		notifications: notifications,
		log:           logger.New("issueController"),
	}
}

func (ic *IssueController) GetIssue(ctx context.Context, id uuid.UUID) (*models.Issue, error) {
	log := ic.log.Function("GetIssue")

	issue, found := queries.IssueByID(ic.store.Snapshot(), id)
	if !found {
		return nil, log.Err("issue not found", ErrIssueNotFound, "issueID", id)
	}

	return &issue, nil
}

// ReportIssue files a new issue against a house, optionally pinned to a stay
// or a specific room. New issues always start open.
func (ic *IssueController) ReportIssue(
	ctx context.Context,
	request ReportIssueRequest,
) (*models.Issue, error) {
	log := ic.log.Function("ReportIssue")

	state := ic.store.Snapshot()

	house, found := queries.HouseByID(state, request.HouseID)
	if !found {
		return nil, log.Err("house not found", ErrHouseNotFound, "houseID", request.HouseID)
	}

	if request.Title == "" {
		return nil, log.Err("issue title is required", ErrTitleRequired, "houseID", request.HouseID)
	}

	if request.RoomID != nil {
		if _, found := house.RoomByID(*request.RoomID); !found {
			return nil, log.Err("room not found", ErrRoomNotFound, "houseID", house.ID, "roomID", *request.RoomID)
		}
	}

	severity := request.Severity
	if severity == "" {
		severity = models.SeverityMedium
	}

	issue := models.Issue{
		Base:        models.NewBase(),
		HouseID:     request.HouseID,
		StayID:      request.StayID,
		RoomID:      request.RoomID,
		Title:       request.Title,
		Description: request.Description,
		Type:        request.Type,
		Severity:    severity,
		Status:      models.IssueOpen,
		ReportedBy:  request.ReportedBy,
	}

	ic.store.Dispatch(store.UpsertIssue(issue))

	ownerRole := models.RoleOwner
	ic.notifications.Push(
		ctx,
		models.NotificationIssueReported,
		"Issue reported",
		fmt.Sprintf("%s at %s (%s severity)", issue.Title, house.Name, issue.Severity),
		&ownerRole,
	)

	log.Info("issue reported", "issueID", issue.ID, "houseID", house.ID, "severity", severity)
	return &issue, nil
}

func (ic *IssueController) AssignIssue(
	ctx context.Context,
	id, memberID uuid.UUID,
) (*models.Issue, error) {
	log := ic.log.Function("AssignIssue")

	issue, found := queries.IssueByID(ic.store.Snapshot(), id)
	if !found {
		return nil, log.Err("issue not found", ErrIssueNotFound, "issueID", id)
	}

	issue.AssignedTo = &memberID
	issue.Touch()
	ic.store.Dispatch(store.UpsertIssue(issue))

	return &issue, nil
}

// UpdateStatus moves an issue forward through open, planned, in progress, and
// fixed. Backward moves are rejected. Resolution metadata is stamped exactly
// once, on the transition into fixed.
func (ic *IssueController) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	next models.IssueStatus,
	updatedBy uuid.UUID,
) (*models.Issue, error) {
	log := ic.log.Function("UpdateStatus")

	issue, found := queries.IssueByID(ic.store.Snapshot(), id)
	if !found {
		return nil, log.Err("issue not found", ErrIssueNotFound, "issueID", id)
	}

	if !issue.Status.CanTransitionTo(next) {
		return nil, log.Err(
			"issue status can only move forward",
			ErrInvalidTransition,
			"issueID", id,
			"from", issue.Status,
			"to", next,
		)
	}

	issue.Status = next
	if next == models.IssueFixed && issue.ResolvedAt == nil {
		now := time.Now()
		issue.ResolvedAt = &now
		issue.ResolvedBy = &updatedBy
	}
	issue.Touch()

	ic.store.Dispatch(store.UpsertIssue(issue))

	log.Info("issue status updated", "issueID", id, "status", next)
	return &issue, nil
}
