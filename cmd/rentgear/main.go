package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	planapp "rentgear/internal/app/handlers/plan"
	quoteapp "rentgear/internal/app/handlers/quote"
	windowapp "rentgear/internal/app/handlers/window"
	"rentgear/internal/app/policies"
	"rentgear/internal/app/queries"
	domainbooking "rentgear/internal/domain/booking"
	domainfreeplan "rentgear/internal/domain/freeplan"
	"rentgear/internal/domain/listings"
	domainpricing "rentgear/internal/domain/pricing"
	"rentgear/internal/domain/shared/money"
	"rentgear/internal/infra/broker/kafka"
	"rentgear/internal/infra/config"
	mongodb "rentgear/internal/infra/db/mongo"
	ginserver "rentgear/internal/infra/http/gin"
	"rentgear/internal/infra/obs"
	"rentgear/internal/infra/quotesource"
	"rentgear/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	cfg.Env = env

	app, cleanup, err := buildApplication(cfg, logger)
	if err != nil {
		logger.Error("application wiring failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: app.ready,
	}, app.handlers)

	if cfg.StorageMode == config.StorageMemory {
		fixturesPath := cfg.ListingsFixtures
		if fixturesPath == "" {
			fixturesPath = defaultListingFixturesPath()
		}
		if err := app.loadListingFixtures(ctx, fixturesPath, logger); err != nil {
			logger.Warn("listing fixtures load failed", "error", err, "path", fixturesPath)
		}
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "storage", cfg.StorageMode, "quote_mode", cfg.QuoteMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type application struct {
	handlers ginserver.Handlers
	listings listings.ListingRepository
	ready    func() error
}

func buildApplication(cfg config.Config, logger *slog.Logger) (application, func(), error) {
	cleanup := func() {}

	var repo listings.ListingRepository
	ready := func() error { return nil }
	switch cfg.StorageMode {
	case config.StorageMongo:
		client, err := mongodb.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return application{}, cleanup, fmt.Errorf("mongo connect: %w", err)
		}
		repo = mongodb.NewListingRepository(client.DB)
		ready = func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(pingCtx)
		}
	default:
		repo = memory.NewListingRepository()
	}

	assembler, err := domainpricing.NewAssembler(cfg.Currency, cfg.Commissions)
	if err != nil {
		return application{}, cleanup, fmt.Errorf("pricing assembler: %w", err)
	}

	var remote policies.QuoteSource
	if cfg.QuoteMode == config.QuoteRemote {
		remote = &quotesource.Client{
			Client:  &http.Client{Timeout: cfg.QuoteHTTPTimeout},
			BaseURL: cfg.MarketplaceAPIURL,
			Logger:  logger,
		}
	}

	var events policies.QuoteEvents
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
		if err != nil {
			return application{}, cleanup, fmt.Errorf("kafka producer: %w", err)
		}
		cleanup = func() {
			if err := producer.Close(); err != nil {
				logger.Warn("kafka producer close failed", "error", err)
			}
		}
		events = kafka.QuoteEventPublisher{Producer: producer, TopicPrefix: cfg.KafkaTopicPrefix}
	}

	queryBus := queries.NewInMemoryBus()
	estimateHandler := &quoteapp.EstimateHandler{
		Listings:  repo,
		Assembler: assembler,
		Remote:    remote,
		Events:    events,
		Logger:    logger,
	}
	queries.RegisterHandler(queryBus, quoteapp.EstimateQuery{}.Key(), estimateHandler)
	resolveHandler := &windowapp.ResolveHandler{Listings: repo}
	queries.RegisterHandler(queryBus, windowapp.ResolveQuery{}.Key(), resolveHandler)
	freePlanHandler := &planapp.GetFreePlanHandler{Listings: repo}
	queries.RegisterHandler(queryBus, planapp.GetFreePlanQuery{}.Key(), freePlanHandler)
	templateHandler := &planapp.TemplateHoursHandler{}
	queries.RegisterHandler(queryBus, planapp.TemplateHoursQuery{}.Key(), templateHandler)

	return application{
		handlers: ginserver.Handlers{
			Quote:  ginserver.QuoteHandler{Queries: queryBus},
			Window: ginserver.WindowHandler{Queries: queryBus},
			Plan:   ginserver.PlanHandler{Queries: queryBus},
		},
		listings: repo,
		ready:    ready,
	}, cleanup, nil
}

func (a application) loadListingFixtures(ctx context.Context, path string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("listing fixtures file not found, skipping", "path", path)
			return nil
		}
		return fmt.Errorf("read fixtures: %w", err)
	}
	if len(data) == 0 {
		logger.Warn("listing fixtures file empty", "path", path)
		return nil
	}

	var fixtures []listingFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}
	if len(fixtures) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, fx := range fixtures {
		freePlan := make([]domainfreeplan.Entry, 0, len(fx.FreePlan))
		for _, e := range fx.FreePlan {
			freePlan = append(freePlan, domainfreeplan.Entry{StartTime: e.StartTime, EndTime: e.EndTime})
		}
		params := listings.CreateListingParams{
			ID:            listings.ListingID(fx.ID),
			Host:          listings.HostID(fx.Host),
			Title:         fx.Title,
			Description:   fx.Description,
			Price:         money.Money{Amount: fx.PriceCents, Currency: fx.Currency},
			Unit:          domainbooking.UnitType(fx.UnitType),
			MaxUsageHours: fx.MaxUsageHours,
			FreePlan:      freePlan,
			Now:           now,
		}

		listing, err := listings.NewListing(params)
		if err != nil {
			logger.Error("fixture invalid", "listing_id", fx.ID, "error", err)
			continue
		}
		if err := a.listings.Save(ctx, listing); err != nil {
			logger.Error("cannot store fixture listing", "listing_id", fx.ID, "error", err)
			continue
		}
		logger.Info("listing fixture imported", "listing_id", listing.ID)
	}
	return nil
}

type listingFixture struct {
	ID            string         `json:"id"`
	Host          string         `json:"host"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	PriceCents    int64          `json:"price_cents"`
	Currency      string         `json:"currency"`
	UnitType      string         `json:"unit_type"`
	MaxUsageHours int            `json:"max_usage_hours"`
	FreePlan      []fixtureEntry `json:"free_plan"`
}

type fixtureEntry struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func defaultListingFixturesPath() string {
	return filepath.Join("data", "listings.json")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
