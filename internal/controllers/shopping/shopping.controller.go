package shoppingController

import (
	"context"
	"errors"
	"fmt"

	notificationController "rentalos/internal/controllers/notifications"
	"rentalos/internal/logger"
	"rentalos/internal/models"
	"rentalos/internal/queries"
	"rentalos/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound  = errors.New("shopping item not found")
	ErrHouseNotFound = errors.New("house not found")
	ErrNameRequired  = errors.New("item name is required")
	ErrNotSuggested  = errors.New("only suggested items can be reviewed")
)

type AddItemRequest struct {
	HouseID       uuid.UUID               `json:"houseId"`
	Name          string                  `json:"name"`
	Quantity      int                     `json:"quantity"`
	Priority      models.ShoppingPriority `json:"priority"`
	Category      string                  `json:"category"`
	EstimatedCost decimal.Decimal         `json:"estimatedCost"`
	AddedBy       uuid.UUID               `json:"-"`
	AddedByRole   models.Role             `json:"-"`
}

type ShoppingControllerInterface interface {
	GetItem(ctx context.Context, id uuid.UUID) (*models.ShoppingItem, error)
	AddItem(ctx context.Context, request AddItemRequest) (*models.ShoppingItem, error)
	ApproveItem(ctx context.Context, id uuid.UUID) (*models.ShoppingItem, error)
	RejectItem(ctx context.Context, id uuid.UUID) (*models.ShoppingItem, error)
	AssignItem(ctx context.Context, id, memberID uuid.UUID) (*models.ShoppingItem, error)
	RemoveItem(ctx context.Context, id uuid.UUID) error
}

type ShoppingController struct {
	store         *store.Store
	notifications notificationController.NotificationControllerInterface
	log           logger.Logger
}

func New(
	domainStore *store.Store,
	notifications notificationController.NotificationControllerInterface,
) ShoppingControllerInterface {
	return &ShoppingController{
		store:         domainStore,
		notifications: notifications,
		log:           logger.New("shoppingController"),
	}
}

func (sc *ShoppingController) GetItem(
	ctx context.Context,
	id uuid.UUID,
) (*models.ShoppingItem, error) {
	log := sc.log.Function("GetItem")

	item, found := queries.ShoppingItemByID(sc.store.Snapshot(), id)
	if !found {
		return nil, log.Err("shopping item not found", ErrItemNotFound, "itemID", id)
	}

	return &item, nil
}

// AddItem puts an item on the house shopping list. Items added by guests
// enter as suggestions and wait for owner review; everyone else's items go
// straight to the standard list.
func (sc *ShoppingController) AddItem(
	ctx context.Context,
	request AddItemRequest,
) (*models.ShoppingItem, error) {
	log := sc.log.Function("AddItem")

	state := sc.store.Snapshot()

	house, found := queries.HouseByID(state, request.HouseID)
	if !found {
		return nil, log.Err("house not found", ErrHouseNotFound, "houseID", request.HouseID)
	}

	if request.Name == "" {
		return nil, log.Err("item name is required", ErrNameRequired, "houseID", request.HouseID)
	}

	quantity := request.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	priority := request.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}

	status := models.ShoppingStandard
	if request.AddedByRole == models.RoleGuest {
		status = models.ShoppingSuggested
	}

	item := models.ShoppingItem{
		Base:          models.NewBase(),
		HouseID:       request.HouseID,
		Name:          request.Name,
		Quantity:      quantity,
		Priority:      priority,
		Category:      request.Category,
		Status:        status,
		AddedBy:       request.AddedBy,
		EstimatedCost: request.EstimatedCost,
	}

	sc.store.Dispatch(store.UpsertShoppingItem(item))

	if status == models.ShoppingSuggested {
		ownerRole := models.RoleOwner
		sc.notifications.Push(
			ctx,
			models.NotificationShoppingSuggested,
			"Shopping suggestion",
			fmt.Sprintf("A guest suggested %s for %s", item.Name, house.Name),
			&ownerRole,
		)
	}

	log.Info("shopping item added", "itemID", item.ID, "houseID", house.ID, "status", status)
	return &item, nil
}

// ApproveItem promotes a guest suggestion onto the standard list
func (sc *ShoppingController) ApproveItem(
	ctx context.Context,
	id uuid.UUID,
) (*models.ShoppingItem, error) {
	return sc.review(id, models.ShoppingApproved)
}

// RejectItem declines a guest suggestion; the item stays visible to its
// suggester but never joins the standard list.
func (sc *ShoppingController) RejectItem(
	ctx context.Context,
	id uuid.UUID,
) (*models.ShoppingItem, error) {
	return sc.review(id, models.ShoppingRejected)
}

func (sc *ShoppingController) AssignItem(
	ctx context.Context,
	id, memberID uuid.UUID,
) (*models.ShoppingItem, error) {
	log := sc.log.Function("AssignItem")

	item, found := queries.ShoppingItemByID(sc.store.Snapshot(), id)
	if !found {
		return nil, log.Err("shopping item not found", ErrItemNotFound, "itemID", id)
	}

	item.AssignedTo = &memberID
	item.Touch()
	sc.store.Dispatch(store.UpsertShoppingItem(item))

	return &item, nil
}

func (sc *ShoppingController) RemoveItem(ctx context.Context, id uuid.UUID) error {
	log := sc.log.Function("RemoveItem")

	if _, found := queries.ShoppingItemByID(sc.store.Snapshot(), id); !found {
		return log.Err("shopping item not found", ErrItemNotFound, "itemID", id)
	}

	sc.store.Dispatch(store.DeleteShoppingItem(id))
	return nil
}

func (sc *ShoppingController) review(
	id uuid.UUID,
	verdict models.ShoppingItemStatus,
) (*models.ShoppingItem, error) {
	log := sc.log.Function("review")

	item, found := queries.ShoppingItemByID(sc.store.Snapshot(), id)
	if !found {
		return nil, log.Err("shopping item not found", ErrItemNotFound, "itemID", id)
	}

	if item.Status != models.ShoppingSuggested {
		return nil, log.Err(
			"only suggested items can be reviewed",
			ErrNotSuggested,
			"itemID", id,
			"status", item.Status,
		)
	}

	item.Status = verdict
	item.Touch()
	sc.store.Dispatch(store.UpsertShoppingItem(item))

	log.Info("shopping suggestion reviewed", "itemID", id, "verdict", verdict)
	return &item, nil
}
