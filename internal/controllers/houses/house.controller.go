package houseController

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
	ErrHouseNotFound = errors.New("house not found")
	ErrRoomNotFound  = errors.New("room not found")
	ErrNameRequired  = errors.New("house name is required")
)

type CreateHouseRequest struct {
	Name                      string   `json:"name"`
	Address                   string   `json:"address"`
	SafetyInfo                string   `json:"safetyInfo"`
	Rules                     []string `json:"rules"`
	DefaultArrivalChecklist   []string `json:"defaultArrivalChecklist"`
	DefaultDepartureChecklist []string `json:"defaultDepartureChecklist"`
	DefaultCleaningChecklist  []string `json:"defaultCleaningChecklist"`
}

type UpdateHouseRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	SafetyInfo string `json:"safetyInfo"`
}

type RoomRequest struct {
	Name     string          `json:"name"`
	Type     models.RoomType `json:"type"`
	Capacity int             `json:"capacity"`
	Notes    string          `json:"notes"`
}

type HouseControllerInterface interface {
	ListHouses(ctx context.Context) []models.House
	GetHouse(ctx context.Context, id uuid.UUID) (*models.House, error)
	CreateHouse(ctx context.Context, request CreateHouseRequest) (*models.House, error)
	UpdateHouse(ctx context.Context, id uuid.UUID, request UpdateHouseRequest) (*models.House, error)
	DeleteHouse(ctx context.Context, id uuid.UUID) error
	AddRoom(ctx context.Context, houseID uuid.UUID, request RoomRequest) (*models.House, error)
	UpdateRoom(ctx context.Context, houseID, roomID uuid.UUID, request RoomRequest) (*models.House, error)
	RemoveRoom(ctx context.Context, houseID, roomID uuid.UUID) (*models.House, error)
	UpdateRules(ctx context.Context, houseID uuid.UUID, rules []string, updatedBy uuid.UUID) (*models.House, error)
}

type HouseController struct {
	store *store.Store
	log   logger.Logger
}

func New(domainStore *store.Store) HouseControllerInterface {
	return &HouseController{
		store: domainStore,
		log:   logger.New("houseController"),
	}
}

func (hc *HouseController) ListHouses(ctx context.Context) []models.House {
	state := hc.store.Snapshot()
	houses := make([]models.House, 0, len(state.Houses))
	houses = append(houses, state.Houses...)
	return houses
}

func (hc *HouseController) GetHouse(ctx context.Context, id uuid.UUID) (*models.House, error) {
	log := hc.log.Function("GetHouse")

	house, found := queries.HouseByID(hc.store.Snapshot(), id)
	if !found {
		return nil, log.Err("house not found", ErrHouseNotFound, "houseID", id)
	}

	return &house, nil
}

func (hc *HouseController) CreateHouse(
	ctx context.Context,
	request CreateHouseRequest,
) (*models.House, error) {
	log := hc.log.Function("CreateHouse")

	if request.Name == "" {
		return nil, log.Err("house name is required", ErrNameRequired)
	}

	house := models.House{
		Base:                      models.NewBase(),
		Name:                      request.Name,
		Address:                   request.Address,
		SafetyInfo:                request.SafetyInfo,
		Rooms:                     make([]models.Room, 0),
		Rules:                     append([]string{}, request.Rules...),
		RulesVersion:              1,
		RulesHistory:              make([]models.RulesSnapshot, 0),
		DefaultArrivalChecklist:   models.NewChecklist(request.DefaultArrivalChecklist...),
		DefaultDepartureChecklist: models.NewChecklist(request.DefaultDepartureChecklist...),
		DefaultCleaningChecklist:  models.NewChecklist(request.DefaultCleaningChecklist...),
	}

	hc.store.Dispatch(store.UpsertHouse(house))

	log.Info("house created", "houseID", house.ID, "name", house.Name)
	return &house, nil
}

func (hc *HouseController) UpdateHouse(
	ctx context.Context,
	id uuid.UUID,
	request UpdateHouseRequest,
) (*models.House, error) {
	log := hc.log.Function("UpdateHouse")

	house, found := queries.HouseByID(hc.store.Snapshot(), id)
	if !found {
		return nil, log.Err("house not found", ErrHouseNotFound, "houseID", id)
	}

	if request.Name != "" {
		house.Name = request.Name
	}
	house.Address = request.Address
	house.SafetyInfo = request.SafetyInfo
	house.Touch()

	hc.store.Dispatch(store.UpsertHouse(house))

	return &house, nil
}

// DeleteHouse removes the house. Rooms live inside the house record and die
// with it.
func (hc *HouseController) DeleteHouse(ctx context.Context, id uuid.UUID) error {
	log := hc.log.Function("DeleteHouse")

	if _, found := queries.HouseByID(hc.store.Snapshot(), id); !found {
		return log.Err("house not found", ErrHouseNotFound, "houseID", id)
	}

	hc.store.Dispatch(store.DeleteHouse(id))

	log.Info("house deleted", "houseID", id)
	return nil
}

func (hc *HouseController) AddRoom(
	ctx context.Context,
	houseID uuid.UUID,
	request RoomRequest,
) (*models.House, error) {
	log := hc.log.Function("AddRoom")

	house, found := queries.HouseByID(hc.store.Snapshot(), houseID)
	if !found {
		return nil, log.Err("house not found", ErrHouseNotFound, "houseID", houseID)
	}

	house.Rooms = append(house.Rooms, models.Room{
		ID:       uuid.New(),
		Name:     request.Name,
		Type:     request.Type,
		Capacity: request.Capacity,
		Notes:    request.Notes,
	})
	house.Touch()

	hc.store.Dispatch(store.UpsertHouse(house))

	return &house, nil
}

func (hc *HouseController) UpdateRoom(
	ctx context.Context,
	houseID, roomID uuid.UUID,
	request RoomRequest,
) (*models.House, error) {
	log := hc.log.Function("UpdateRoom")

	house, found := queries.HouseByID(hc.store.Snapshot(), houseID)
	if !found {
		return nil, log.Err("house not found", ErrHouseNotFound, "houseID", houseID)
	}

	updated := false
	for i := range house.Rooms {
		if house.Rooms[i].ID != roomID {
			continue
		}
		house.Rooms[i].Name = request.Name
		house.Rooms[i].Type = request.Type
		house.Rooms[i].Capacity = request.Capacity
		house.Rooms[i].Notes = request.Notes
		updated = true
		break
	}
	if !updated {
		return nil, log.Err("room not found", ErrRoomNotFound, "houseID", houseID, "roomID", roomID)
	}

	house.Touch()
	hc.store.Dispatch(store.UpsertHouse(house))

	return &house, nil
}

func (hc *HouseController) RemoveRoom(
	ctx context.Context,
	houseID, roomID uuid.UUID,
) (*models.House, error) {
	log := hc.log.Function("RemoveRoom")

	house, found := queries.HouseByID(hc.store.Snapshot(), houseID)
	if !found {
		return nil, log.Err("house not found", ErrHouseNotFound, "houseID", houseID)
	}

	rooms := make([]models.Room, 0, len(house.Rooms))
	removed := false
	for _, room := range house.Rooms {
		if room.ID == roomID {
			removed = true
			continue
		}
		rooms = append(rooms, room)
	}
	if !removed {
		return nil, log.Err("room not found", ErrRoomNotFound, "houseID", houseID, "roomID", roomID)
	}

	house.Rooms = rooms
	house.Touch()
	hc.store.Dispatch(store.UpsertHouse(house))

	return &house, nil
}

// UpdateRules replaces the rules list, bumps the version, and snapshots the
// outgoing revision into the history. Existing acknowledgments reference the
// old version, so guests must re-acknowledge.
func (hc *HouseController) UpdateRules(
	ctx context.Context,
	houseID uuid.UUID,
	rules []string,
	updatedBy uuid.UUID,
) (*models.House, error) {
	log := hc.log.Function("UpdateRules")

	house, found := queries.HouseByID(hc.store.Snapshot(), houseID)
	if !found {
		return nil, log.Err("house not found", ErrHouseNotFound, "houseID", houseID)
	}

	house.RulesHistory = append(house.RulesHistory, models.RulesSnapshot{
		Version:   house.RulesVersion,
		Rules:     append([]string{}, house.Rules...),
		UpdatedBy: updatedBy,
		UpdatedAt: time.Now(),
	})
	house.Rules = append([]string{}, rules...)
	house.RulesVersion++
	house.Touch()

	hc.store.Dispatch(store.UpsertHouse(house))

	log.Info("house rules updated", "houseID", houseID, "rulesVersion", house.RulesVersion)
	return &house, nil
}
