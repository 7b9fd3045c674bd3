package database

import (
	"fmt"

	"rentalos/config"
	"rentalos/internal/logger"

	"github.com/valkey-io/valkey-go"
)

type CacheClient valkey.Client

// Valkey Database Index Organization
const (
	// STATE_DB_INDEX (DB 0) - persisted domain state, one key per collection
	STATE_DB_INDEX = iota

	// EVENTS_DB_INDEX (DB 1) - pub/sub transport for notification events
	EVENTS_DB_INDEX
)

type DB struct {
	State  CacheClient
	Events CacheClient
	log    logger.Logger
}

func New(config config.Config) (DB, error) {
	log := logger.New("database").Function("New")
	log.Info("Initializing database")

	address := config.CacheAddress
	port := config.CachePort
	if address == "" || port == 0 {
		return DB{}, log.Errorf("failed to initialize database", "address or port is empty")
	}

	db := DB{log: log}

	var err error
	db.State, err = valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    STATE_DB_INDEX,
		},
	)
	if err != nil {
		return DB{}, log.Err("failed to create state valkey client", err)
	}

	db.Events, err = valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    EVENTS_DB_INDEX,
		},
	)
	if err != nil {
		return DB{}, log.Err("failed to create events valkey client", err)
	}

	log.Info("Successfully connected to valkey", "address", address, "port", port)
	return db, nil
}

func (db *DB) Close() (err error) {
	if db.State != nil {
		db.State.Close()
	}

	if db.Events != nil {
		db.Events.Close()
	}

	return err
}
