package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"session-service/app/config"
	"session-service/app/domain"
	"session-service/app/driver/kratos"
	"session-service/app/driver/postgres"
	"session-service/app/driver/rediscache"
	"session-service/app/gateway"
	"session-service/app/rest"
	"session-service/app/rest/handlers"
	"session-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KVStore      *rediscache.KVStore
	KratosClient *kratos.Client

	// Gateways
	IdentityGateway *gateway.IdentityGateway

	// Usecases
	Coordinator *usecase.SessionCoordinator
	Navigator   *rest.RedirectBroker

	watchCancel context.CancelFunc
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize drivers
	var err error

	// Initialize database connection
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis-backed key-value store
	container.KVStore, err = rediscache.NewKVStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize Kratos client
	container.KratosClient, err = kratos.NewClient(cfg.KratosPublicURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	// Initialize repositories and gateways
	profileRepository := postgres.NewProfileRepository(container.DB.Pool(), logger)
	frontend := kratos.NewFrontend(container.KratosClient, logger)
	container.IdentityGateway = gateway.NewIdentityGateway(frontend, container.KVStore, cfg.StorageNamespace, logger)

	// Initialize the coordinator
	container.Navigator = rest.NewRedirectBroker(cfg.LoginRoute, logger)
	container.Coordinator = usecase.NewSessionCoordinator(
		container.IdentityGateway,
		profileRepository,
		container.Navigator,
		container.KVStore,
		usecase.CoordinatorConfig{
			BootTimeout:        cfg.BootTimeout,
			HydrationTimeout:   cfg.HydrationTimeout,
			RedirectGuardDelay: cfg.RedirectGuardDelay,
			LoginRoute:         cfg.LoginRoute,
			DashboardRoute:     cfg.DashboardRoute,
			StorageNamespace:   cfg.StorageNamespace,
			AdminEmails:        cfg.AdminEmails,
			AdminTier:          adminTier(cfg.AdminTier),
		},
		logger,
	)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// Start boots the coordinator and begins watching the provider session
func (c *Container) Start(ctx context.Context) error {
	if err := c.Coordinator.Start(ctx); err != nil {
		return fmt.Errorf("failed to start coordinator: %w", err)
	}

	watchCtx, cancel := context.WithCancel(context.Background())
	c.watchCancel = cancel
	go c.IdentityGateway.Watch(watchCtx, c.Config.SessionPollInterval)

	return nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() (*echo.Echo, error) {
	routerConfig := rest.RouterConfig{
		Logger:      c.Logger,
		Coordinator: c.Coordinator,
		Navigator:   c.Navigator,
		HealthChecks: map[string]handlers.DependencyCheck{
			"database": c.DB.HealthCheck,
			"redis":    c.KVStore.HealthCheck,
			"kratos":   c.KratosClient.HealthCheck,
		},
		EnableDebug: c.Config.EnableDebug,
	}

	router, err := rest.NewRouter(routerConfig)
	if err != nil {
		return nil, err
	}

	c.Logger.Info("Full API router created")
	return router, nil
}

// Close closes all resources
func (c *Container) Close() error {
	if c.watchCancel != nil {
		c.watchCancel()
	}
	if c.Coordinator != nil {
		c.Coordinator.Close()
	}
	if c.IdentityGateway != nil {
		c.IdentityGateway.Close()
	}
	if c.KVStore != nil {
		if err := c.KVStore.Close(); err != nil {
			c.Logger.Warn("failed to close redis client", "error", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("Container closed successfully")
	return nil
}

func adminTier(tier string) domain.SubscriptionTier {
	switch tier {
	case "free":
		return domain.TierFree
	case "pro":
		return domain.TierPro
	default:
		return domain.TierElite
	}
}
