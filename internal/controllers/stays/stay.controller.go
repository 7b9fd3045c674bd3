package stayController

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	notificationController "rentalos/internal/controllers/notifications"
	"rentalos/internal/events"
	"rentalos/internal/logger"
	"rentalos/internal/models"
	"rentalos/internal/queries"
	"rentalos/internal/store"

	"github.com/google/uuid"
)

var (
	ErrHouseNotFound      = errors.New("house not found")
	ErrStayNotFound       = errors.New("stay not found")
	ErrInvalidDates       = errors.New("start date must not be after end date")
	ErrInvalidStatus      = errors.New("new stays must be requested or planned")
	ErrInvalidTransition  = errors.New("stay status transition not allowed")
	ErrStayOverlap        = errors.New("stay overlaps an existing booking")
	ErrChecklistNotFound  = errors.New("checklist item not found")
	ErrChecklistInactive  = errors.New("checklist is not active yet")
	ErrUnknownChecklist   = errors.New("unknown checklist kind")
	ErrStayNotConfirmable = errors.New("only requested stays can be confirmed")
)

type ChecklistKind string

const (
	ArrivalChecklist   ChecklistKind = "arrival"
	DepartureChecklist ChecklistKind = "departure"
)

// OverlapError carries the conflicting stay ids alongside ErrStayOverlap so
// callers can surface them to the requester.
type OverlapError struct {
	Conflicts []uuid.UUID
}

func (e *OverlapError) Error() string {
	ids := make([]string, 0, len(e.Conflicts))
	for _, id := range e.Conflicts {
		ids = append(ids, id.String())
	}
	return fmt.Sprintf("stay overlaps existing bookings: %s", strings.Join(ids, ", "))
}

func (e *OverlapError) Is(target error) bool {
	return target == ErrStayOverlap
}

type CreateStayRequest struct {
	HouseID      uuid.UUID         `json:"houseId"`
	StartDate    time.Time         `json:"startDate"`
	EndDate      time.Time         `json:"endDate"`
	Status       models.StayStatus `json:"status"`
	Attendees    []uuid.UUID       `json:"attendees"`
	AllowOverlap bool              `json:"allowOverlap"`
	CreatedBy    uuid.UUID         `json:"-"`
}

type StayControllerInterface interface {
	GetStay(ctx context.Context, id uuid.UUID) (*models.Stay, error)
	CreateStay(ctx context.Context, request CreateStayRequest) (*models.Stay, error)
	ConfirmStay(ctx context.Context, id, confirmedBy uuid.UUID) (*models.Stay, error)
	ActivateStay(ctx context.Context, id uuid.UUID) (*models.Stay, error)
	CompleteStay(ctx context.Context, id uuid.UUID) (*models.Stay, error)
	CancelStay(ctx context.Context, id uuid.UUID) (*models.Stay, error)
	ActivateArrivalChecklist(ctx context.Context, id uuid.UUID) (*models.Stay, error)
	ActivateDepartureChecklist(ctx context.Context, id uuid.UUID) (*models.Stay, error)
	ToggleChecklistItem(ctx context.Context, stayID uuid.UUID, kind ChecklistKind, itemID, memberID uuid.UUID, checked bool) (*models.Stay, error)
	AcknowledgeRules(ctx context.Context, stayID, memberID uuid.UUID) (*models.Stay, error)
}

type StayController struct {
	store         *store.Store
	eventBus      *events.EventBus
	notifications notificationController.NotificationControllerInterface
	log           logger.Logger
}

func New(
	domainStore *store.Store,
	eventBus *events.EventBus,
	notifications notificationController.NotificationControllerInterface,
) StayControllerInterface {
	return &StayController{
		store:         domainStore,
		eventBus:      eventBus,
		notifications: notifications,
		log:           logger.New("stayController"),
	}
}

func (sc *StayController) GetStay(ctx context.Context, id uuid.UUID) (*models.Stay, error) {
	log := sc.log.Function("GetStay")

	stay, found := queries.StayByID(sc.store.Snapshot(), id)
	if !found {
		return nil, log.Err("stay not found", ErrStayNotFound, "stayID", id)
	}

	return &stay, nil
}

// CreateStay books a stay against a house. Checklists are deep copies of the
// house defaults taken now; later edits to the house templates never touch
// existing stays. Overlap with a non-cancelled stay is advisory: the request
// fails with ErrStayOverlap unless AllowOverlap is set.
func (sc *StayController) CreateStay(
	ctx context.Context,
	request CreateStayRequest,
) (*models.Stay, error) {
	log := sc.log.Function("CreateStay")

	state := sc.store.Snapshot()

	house, found := queries.HouseByID(state, request.HouseID)
	if !found {
		return nil, log.Err("house not found", ErrHouseNotFound, "houseID", request.HouseID)
	}

	if request.StartDate.After(request.EndDate) {
		return nil, log.Err(
			"invalid stay dates",
			ErrInvalidDates,
			"startDate", request.StartDate,
			"endDate", request.EndDate,
		)
	}

	status := request.Status
	if status == "" {
		status = models.StayRequested
	}
	if status != models.StayRequested && status != models.StayPlanned {
		return nil, log.Err("invalid initial status", ErrInvalidStatus, "status", status)
	}

	conflicts := queries.OverlappingStays(
		state,
		request.HouseID,
		request.StartDate,
		request.EndDate,
		uuid.Nil,
	)
	if len(conflicts) > 0 && !request.AllowOverlap {
		overlapErr := &OverlapError{}
		for _, conflict := range conflicts {
			overlapErr.Conflicts = append(overlapErr.Conflicts, conflict.ID)
		}
		return nil, log.Err(
			"stay overlaps existing bookings",
			overlapErr,
			"houseID", request.HouseID,
			"conflicts", len(conflicts),
		)
	}

	stay := models.Stay{
		Base:               models.NewBase(),
		HouseID:            request.HouseID,
		StartDate:          request.StartDate,
		EndDate:            request.EndDate,
		Status:             status,
		Attendees:          append([]uuid.UUID{}, request.Attendees...),
		ArrivalChecklist:   models.CopyChecklist(house.DefaultArrivalChecklist),
		DepartureChecklist: models.CopyChecklist(house.DefaultDepartureChecklist),
		CreatedBy:          request.CreatedBy,
	}

	sc.store.Dispatch(store.UpsertStay(stay))

	if status == models.StayRequested {
		ownerRole := models.RoleOwner
		sc.notifications.Push(
			ctx,
			models.NotificationStayRequested,
			"New stay request",
			fmt.Sprintf("A stay at %s was requested for %s", house.Name, stay.StartDate.Format("Jan 2")),
			&ownerRole,
		)
	}

	log.Info("stay created", "stayID", stay.ID, "houseID", house.ID, "status", status)
	return &stay, nil
}

// ConfirmStay approves a requested stay and notifies guests
func (sc *StayController) ConfirmStay(
	ctx context.Context,
	id, confirmedBy uuid.UUID,
) (*models.Stay, error) {
	log := sc.log.Function("ConfirmStay")

	stay, found := queries.StayByID(sc.store.Snapshot(), id)
	if !found {
		return nil, log.Err("stay not found", ErrStayNotFound, "stayID", id)
	}

	if stay.Status != models.StayRequested {
		return nil, log.Err(
			"stay is not awaiting confirmation",
			ErrStayNotConfirmable,
			"stayID", id,
			"status", stay.Status,
		)
	}

	now := time.Now()
	stay.Status = models.StayConfirmed
	stay.ConfirmedBy = &confirmedBy
	stay.ConfirmedAt = &now
	stay.Touch()

	sc.store.Dispatch(store.UpsertStay(stay))

	guestRole := models.RoleGuest
	sc.notifications.Push(
		ctx,
		models.NotificationStayConfirmed,
		"Stay confirmed",
		fmt.Sprintf("Your stay starting %s is confirmed", stay.StartDate.Format("Jan 2")),
		&guestRole,
	)

	sc.publishStayEvent(events.STAY_CONFIRMED, stay)

	return &stay, nil
}

// ActivateStay marks check-in: confirmed or planned stays become active
func (sc *StayController) ActivateStay(ctx context.Context, id uuid.UUID) (*models.Stay, error) {
	return sc.transition(ctx, id, models.StayActive)
}

// CompleteStay checks a stay out. It freezes a summary of checklist progress
// and linked issues on the stay and schedules exactly one pending cleaning
// task from the house's default cleaning checklist.
func (sc *StayController) CompleteStay(ctx context.Context, id uuid.UUID) (*models.Stay, error) {
	log := sc.log.Function("CompleteStay")

	state := sc.store.Snapshot()
	stay, found := queries.StayByID(state, id)
	if !found {
		return nil, log.Err("stay not found", ErrStayNotFound, "stayID", id)
	}

	if !stay.Status.CanTransitionTo(models.StayCompleted) {
		return nil, log.Err(
			"stay cannot be completed",
			ErrInvalidTransition,
			"stayID", id,
			"status", stay.Status,
		)
	}

	house, found := queries.HouseByID(state, stay.HouseID)
	if !found {
		return nil, log.Err("house not found", ErrHouseNotFound, "houseID", stay.HouseID)
	}

	arrivalChecked, arrivalTotal := models.ChecklistProgress(stay.ArrivalChecklist)
	departureChecked, departureTotal := models.ChecklistProgress(stay.DepartureChecklist)

	summary := models.StaySummary{
		ArrivalChecked:   arrivalChecked,
		ArrivalTotal:     arrivalTotal,
		DepartureChecked: departureChecked,
		DepartureTotal:   departureTotal,
		IssueIDs:         make([]uuid.UUID, 0),
	}
	for _, issue := range state.Issues {
		if issue.StayID != nil && *issue.StayID == stay.ID {
			summary.IssueIDs = append(summary.IssueIDs, issue.ID)
		}
	}

	now := time.Now()
	stay.Status = models.StayCompleted
	stay.Summary = &summary
	stay.Touch()

	task := models.CleaningTask{
		Base:      models.NewBase(),
		HouseID:   stay.HouseID,
		StayID:    stay.ID,
		Checklist: models.CopyChecklist(house.DefaultCleaningChecklist),
		Status:    models.CleaningPending,
	}

	sc.store.Dispatch(store.UpsertStay(stay), store.UpsertCleaningTask(task))

	cleanerRole := models.RoleCleaner
	sc.notifications.Push(
		ctx,
		models.NotificationCleaningTaskCreated,
		"Cleaning needed",
		fmt.Sprintf("%s needs cleaning after the stay that ended %s", house.Name, now.Format("Jan 2")),
		&cleanerRole,
	)

	sc.publishStayEvent(events.STAY_COMPLETED, stay)
	if err := sc.eventBus.Publish(events.STAY_CHANNEL, events.Event{
		Type: events.CLEANING_TASK_CREATED,
		Data: map[string]any{
			"taskId":  task.ID.String(),
			"houseId": task.HouseID.String(),
			"stayId":  stay.ID.String(),
		},
	}); err != nil {
		log.Warn("failed to publish cleaning task event", "taskID", task.ID, "error", err)
	}

	return &stay, nil
}

// CancelStay cancels a stay from any non-terminal, non-active status
func (sc *StayController) CancelStay(ctx context.Context, id uuid.UUID) (*models.Stay, error) {
	return sc.transition(ctx, id, models.StayCancelled)
}

// ActivateArrivalChecklist unlocks the arrival checklist. Idempotent: an
// already-active checklist is returned unchanged.
func (sc *StayController) ActivateArrivalChecklist(
	ctx context.Context,
	id uuid.UUID,
) (*models.Stay, error) {
	log := sc.log.Function("ActivateArrivalChecklist")

	stay, found := queries.StayByID(sc.store.Snapshot(), id)
	if !found {
		return nil, log.Err("stay not found", ErrStayNotFound, "stayID", id)
	}

	if stay.ArrivalChecklistActive {
		return &stay, nil
	}

	stay.ArrivalChecklistActive = true
	stay.Touch()
	sc.store.Dispatch(store.UpsertStay(stay))

	guestRole := models.RoleGuest
	sc.notifications.Push(
		ctx,
		models.NotificationChecklistActivated,
		"Arrival checklist ready",
		fmt.Sprintf("Your arrival checklist for the stay starting %s is now open", stay.StartDate.Format("Jan 2")),
		&guestRole,
	)
	sc.publishStayEvent(events.CHECKLIST_ACTIVATED, stay)

	log.Info("arrival checklist activated", "stayID", stay.ID)
	return &stay, nil
}

// ActivateDepartureChecklist unlocks the departure checklist. Idempotent.
func (sc *StayController) ActivateDepartureChecklist(
	ctx context.Context,
	id uuid.UUID,
) (*models.Stay, error) {
	log := sc.log.Function("ActivateDepartureChecklist")

	stay, found := queries.StayByID(sc.store.Snapshot(), id)
	if !found {
		return nil, log.Err("stay not found", ErrStayNotFound, "stayID", id)
	}

	if stay.DepartureChecklistActive {
		return &stay, nil
	}

	stay.DepartureChecklistActive = true
	stay.Touch()
	sc.store.Dispatch(store.UpsertStay(stay))

	guestRole := models.RoleGuest
	sc.notifications.Push(
		ctx,
		models.NotificationChecklistActivated,
		"Departure checklist ready",
		fmt.Sprintf("Your departure checklist for checkout on %s is now open", stay.EndDate.Format("Jan 2")),
		&guestRole,
	)
	sc.publishStayEvent(events.CHECKLIST_ACTIVATED, stay)

	log.Info("departure checklist activated", "stayID", stay.ID)
	return &stay, nil
}

// ToggleChecklistItem checks or unchecks one item on an active stay
// checklist, stamping who checked it and when.
func (sc *StayController) ToggleChecklistItem(
	ctx context.Context,
	stayID uuid.UUID,
	kind ChecklistKind,
	itemID, memberID uuid.UUID,
	checked bool,
) (*models.Stay, error) {
	log := sc.log.Function("ToggleChecklistItem")

	stay, found := queries.StayByID(sc.store.Snapshot(), stayID)
	if !found {
		return nil, log.Err("stay not found", ErrStayNotFound, "stayID", stayID)
	}

	var items []models.ChecklistItem
	switch kind {
	case ArrivalChecklist:
		if !stay.ArrivalChecklistActive {
			return nil, log.Err("arrival checklist not active", ErrChecklistInactive, "stayID", stayID)
		}
		items = stay.ArrivalChecklist
	case DepartureChecklist:
		if !stay.DepartureChecklistActive {
			return nil, log.Err("departure checklist not active", ErrChecklistInactive, "stayID", stayID)
		}
		items = stay.DepartureChecklist
	default:
		return nil, log.Err("unknown checklist kind", ErrUnknownChecklist, "kind", kind)
	}

	if !toggleItem(items, itemID, memberID, checked) {
		return nil, log.Err(
			"checklist item not found",
			ErrChecklistNotFound,
			"stayID", stayID,
			"itemID", itemID,
		)
	}

	stay.Touch()
	sc.store.Dispatch(store.UpsertStay(stay))

	return &stay, nil
}

// AcknowledgeRules records a member accepting the house rules at their
// current version. Acknowledging the same version twice is a no-op.
func (sc *StayController) AcknowledgeRules(
	ctx context.Context,
	stayID, memberID uuid.UUID,
) (*models.Stay, error) {
	log := sc.log.Function("AcknowledgeRules")

	state := sc.store.Snapshot()
	stay, found := queries.StayByID(state, stayID)
	if !found {
		return nil, log.Err("stay not found", ErrStayNotFound, "stayID", stayID)
	}

	house, found := queries.HouseByID(state, stay.HouseID)
	if !found {
		return nil, log.Err("house not found", ErrHouseNotFound, "houseID", stay.HouseID)
	}

	if stay.HasAcknowledged(memberID, house.RulesVersion) {
		return &stay, nil
	}

	stay.RulesAcknowledgments = append(stay.RulesAcknowledgments, models.RulesAcknowledgment{
		MemberID:       memberID,
		RulesVersion:   house.RulesVersion,
		AcknowledgedAt: time.Now(),
	})
	stay.Touch()
	sc.store.Dispatch(store.UpsertStay(stay))

	return &stay, nil
}

func (sc *StayController) transition(
	ctx context.Context,
	id uuid.UUID,
	next models.StayStatus,
) (*models.Stay, error) {
	log := sc.log.Function("transition")

	stay, found := queries.StayByID(sc.store.Snapshot(), id)
	if !found {
		return nil, log.Err("stay not found", ErrStayNotFound, "stayID", id)
	}

	if !stay.Status.CanTransitionTo(next) {
		return nil, log.Err(
			"stay status transition not allowed",
			ErrInvalidTransition,
			"stayID", id,
			"from", stay.Status,
			"to", next,
		)
	}

	stay.Status = next
	stay.Touch()
	sc.store.Dispatch(store.UpsertStay(stay))

	log.Info("stay transitioned", "stayID", id, "status", next)
	return &stay, nil
}

func (sc *StayController) publishStayEvent(messageType events.MessageType, stay models.Stay) {
	log := sc.log.Function("publishStayEvent")

	if err := sc.eventBus.Publish(events.STAY_CHANNEL, events.Event{
		Type: messageType,
		Data: map[string]any{
			"stayId":  stay.ID.String(),
			"houseId": stay.HouseID.String(),
			"status":  string(stay.Status),
		},
	}); err != nil {
		log.Warn("failed to publish stay event", "stayID", stay.ID, "error", err)
	}
}

func toggleItem(items []models.ChecklistItem, itemID, memberID uuid.UUID, checked bool) bool {
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		items[i].Checked = checked
		if checked {
			now := time.Now()
			items[i].CheckedBy = &memberID
			items[i].CheckedAt = &now
		} else {
			items[i].CheckedBy = nil
			items[i].CheckedAt = nil
		}
		return true
	}
	return false
}
