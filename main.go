package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/greeny34/alfred-fantasy-football-sub000/internal/analytics"
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/catalog"
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/config"
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/dal"
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/logger"
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/mocks"
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/optimizer"
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/pubsub"
)

func main() {
	// Initialize logger first
	logger.Init()

	logger.Info("Starting draft strategy optimizer service")

	cfg := config.FromEnv()

	// Initialize data store
	var store dal.StrategyStore
	var err error
	switch cfg.DBDriver {
	case "memory":
		store = dal.NewMemoryStore()
		logger.Info("Using in-memory strategy store")
	case "sqlite":
		store, err = dal.NewSQLiteStore(cfg.SQLiteFile)
		if err != nil {
			logger.Error("Failed to initialize SQLite", "error", err)
			log.Fatalf("Failed to initialize SQLite: %v", err)
		}
		logger.Info("Connected to SQLite database", "file", cfg.SQLiteFile)
	case "postgres":
		if cfg.Development() {
			store, err = mocks.NewMockPostgresStore(cfg.SQLiteFile)
			if err != nil {
				logger.Error("Failed to initialize mock Postgres", "error", err)
				log.Fatalf("Failed to initialize mock Postgres: %v", err)
			}
		} else {
			if cfg.DatabaseURL == "" {
				logger.Error("DATABASE_URL environment variable is required for postgres driver")
				log.Fatal("DATABASE_URL environment variable is required for postgres driver")
			}
			store, err = dal.NewPostgresStore(cfg.DatabaseURL)
			if err != nil {
				logger.Error("Failed to initialize Postgres", "error", err)
				log.Fatalf("Failed to initialize Postgres: %v", err)
			}
			logger.Info("Connected to Postgres database")
		}
	default:
		logger.Error("Unknown DB_DRIVER", "driver", cfg.DBDriver)
		log.Fatalf("Unknown DB_DRIVER: %s (valid: memory, sqlite, postgres)", cfg.DBDriver)
	}
	defer store.Close()

	// Load the reference tables once; the catalog is read-only afterwards
	cat, params := loadReferenceData(store)
	cat.SetThreshold(cfg.AvailabilityThreshold)

	// Calibrate tier decay from observed draft history (production only)
	if !cfg.Development() {
		chClient, chErr := analytics.NewClient(cfg.ClickHouseAddr, cfg.ClickHouseDB, cfg.ClickHouseUser, cfg.ClickHousePassword)
		if chErr != nil {
			logger.Warn("ClickHouse unavailable, keeping default decay constants", "error", chErr, "address", cfg.ClickHouseAddr)
		} else {
			if err := chClient.CalibrateDecay(cat.SetDecay); err != nil {
				logger.Warn("Decay calibration failed, keeping defaults", "error", err)
			} else {
				logger.Info("Calibrated tier decay from draft history", "address", cfg.ClickHouseAddr)
			}
			chClient.Close()
		}
	} else {
		logger.Info("Skipping decay calibration (ClickHouse not configured in development)")
	}

	// Initialize pub/sub: local bus in development, NATS JetStream in
	// production
	var bus *pubsub.Bus
	var natsPubSub *pubsub.NATSPubSub
	if cfg.Development() {
		logger.Info("Using local pub/sub for development")
		bus = pubsub.New()
	} else {
		natsPubSub, err = pubsub.NewNATSPubSub(cfg.NATSURL, cfg.NATSSubject)
		if err != nil {
			logger.Error("Failed to initialize NATS", "error", err)
			log.Fatalf("Failed to initialize NATS: %v", err)
		}
		defer natsPubSub.Close()
		bus = pubsub.NewWithUpstream(natsPubSub)
		logger.Info("Connected to NATS", "url", cfg.NATSURL)
	}

	opts := optimizer.DefaultOptions()
	opts.TeamCount = cfg.TeamCount

	gen := optimizer.NewGenerator(opts)
	eval := optimizer.NewEvaluator(cat, params, opts)
	selector := optimizer.NewSelector(gen, eval, store, opts)

	handle := func(event pubsub.Event) {
		handleEvent(event, bus, store, selector)
	}

	if natsPubSub != nil {
		// Durable consumer so multiple optimizer instances split the work
		if err := natsPubSub.SubscribeDurable("strategy-optimizer", handle); err != nil {
			logger.Error("Failed to create durable consumer", "error", err)
			log.Fatalf("Failed to create durable consumer: %v", err)
		}
	} else {
		events := bus.Subscribe()
		defer bus.Unsubscribe(events)
		go func() {
			for event := range events {
				handle(event)
			}
		}()
	}

	logger.Info("Draft strategy optimizer ready",
		"driver", cfg.DBDriver, "teams", cfg.TeamCount)

	// Block until shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Shutting down")
}

// loadReferenceData builds the tier catalog and parameter table from the
// store, falling back to built-in defaults when the tables are empty
func loadReferenceData(store dal.StrategyStore) (*catalog.Catalog, *catalog.ParamTable) {
	tiers, err := store.LoadTiers()
	if err != nil || len(tiers) == 0 {
		if err != nil {
			logger.Warn("Failed to load position tiers, using defaults", "error", err)
		}
		tiers = catalog.DefaultTiers()
	}

	rawParams, err := store.LoadStrategyParameters()
	if err != nil || len(rawParams) == 0 {
		if err != nil {
			logger.Warn("Failed to load strategy parameters, using defaults", "error", err)
		}
		rawParams = catalog.DefaultStrategyParameters()
	}

	logger.Info("Loaded reference data", "tiers", len(tiers), "parameters", len(rawParams))
	return catalog.New(tiers), catalog.NewParamTable(rawParams)
}

// handleEvent reacts to one recorded pick by recomputing and publishing
// the session's strategy. Failures are logged and the event dropped; the
// next pick triggers a fresh computation anyway.
func handleEvent(event pubsub.Event, bus *pubsub.Bus, store dal.StrategyStore, selector *optimizer.Selector) {
	if event.Type != pubsub.EventPickRecorded {
		return
	}

	session, err := store.Session(event.SessionID)
	if err != nil {
		logger.Error("Unknown draft session", "session", event.SessionID, "error", err)
		return
	}

	if pick, ok := pickFromPayload(event); ok {
		if err := store.RecordPick(pick); err != nil {
			// Duplicate delivery is normal with JetStream redelivery
			logger.Debug("Pick already recorded", "session", event.SessionID, "pick", pick.PickNumber, "error", err)
		}
	}

	roster, nextPick, err := store.DraftState(event.SessionID)
	if err != nil {
		logger.Error("Failed to load draft state", "session", event.SessionID, "error", err)
		return
	}

	path := selector.OptimalStrategy(*session, roster, nextPick)

	bus.Publish(pubsub.Event{
		Type:      pubsub.EventStrategyUpdated,
		SessionID: session.ID,
		Payload: map[string]any{
			"pickNumber":    nextPick,
			"nextPositions": path.Sequence,
			"confidence":    path.Confidence,
			"expectedValue": path.ExpectedValue,
			"rationale":     path.Rationale,
		},
	})

	logger.Info("Strategy updated",
		"session", session.ID,
		"pick", nextPick,
		"confidence", path.Confidence,
		"value", path.ExpectedValue)
}

// pickFromPayload extracts a draft pick from a pick.recorded event.
// Events published by the draft tracker carry the pick inline; events
// that only signal "state changed" carry no payload and we re-read the
// store instead.
func pickFromPayload(event pubsub.Event) (models.DraftPick, bool) {
	if event.Payload == nil {
		return models.DraftPick{}, false
	}

	pickNumber, ok := asInt(event.Payload["pickNumber"])
	if !ok {
		return models.DraftPick{}, false
	}
	position, _ := event.Payload["position"].(string)
	if position == "" {
		return models.DraftPick{}, false
	}

	round, _ := asInt(event.Payload["round"])
	teamSlot, _ := asInt(event.Payload["teamSlot"])
	playerName, _ := event.Payload["playerName"].(string)
	userPick, _ := event.Payload["userPick"].(bool)

	return models.DraftPick{
		SessionID:  event.SessionID,
		PickNumber: pickNumber,
		Round:      round,
		Position:   models.Position(position),
		PlayerName: playerName,
		TeamSlot:   teamSlot,
		UserPick:   userPick,
	}, true
}

// asInt handles the float64 that JSON decoding produces for numbers
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
