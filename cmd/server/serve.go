package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/spf13/cobra"

	"hostpro/application"
	"hostpro/domain/catalog"
	"hostpro/infrastructure/config"
	"hostpro/infrastructure/factories"
	"hostpro/infrastructure/serialization"
	"hostpro/interfaces/web"
	"hostpro/interfaces/web/handlers"
	"hostpro/interfaces/web/presenters"
	"hostpro/logging"
	"hostpro/platform/events"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

// ApplicationServices holds application services.
type ApplicationServices struct {
	Registry     *application.ContextRegistry
	EventBus     *events.AppEventBus
	Catalog      *application.CatalogService
	DomainSearch *application.DomainSearchService
	Contact      *application.ContactService
	Auth         *application.AuthService
	Profile      *application.ProfileService
	Support      *application.SupportService
	MockActions  *application.MockActionService
}

// PresentationLayer groups all presentation components
type PresentationLayer struct {
	ToastPresenter     *presenters.ToastPresenter
	SitePresenter      *presenters.SitePresenter
	DashboardPresenter *presenters.DashboardPresenter

	Handlers   *web.Handlers
	SSEManager *handlers.SSEManager
}

// Dependencies holds all application dependencies organized by layer
type Dependencies struct {
	Logger *logging.Logger
	Stores *factories.StoreBundle

	Services     *ApplicationServices
	Presentation *PresentationLayer
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	// App-wide context for graceful shutdown
	appCtx, appCancel := context.WithCancel(ctx)
	defer appCancel()

	loadEnvironment()
	cfg := config.LoadAppConfigFromEnv()
	logger := initializeLogging(cfg)

	stores, err := factories.NewPreferenceStoreFactory(cfg.Store, cfg.Database, logger).Create()
	if err != nil {
		return fmt.Errorf("opening preference store: %w", err)
	}
	defer stores.Close()

	c, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	deps := buildDependencies(appCtx, cfg, c, stores, logger)
	deps.Services.Registry.Start()
	defer deps.Services.Registry.Close()

	router := web.NewRouter(deps.Presentation.Handlers, web.RouterOptions{
		HTTPLogger:  newHTTPLogger(cfg, logger),
		Compression: cfg.Web.EnableCompression,
	})
	return startServer(router, cfg.HTTPAddr, logger, appCancel)
}

// buildApplicationServices creates application services with dependency injection.
func buildApplicationServices(cfg *config.AppConfig, c *catalog.Catalog, stores *factories.StoreBundle) *ApplicationServices {
	eventBus := events.NewAppEventBus()
	latency := application.Latency{Scale: cfg.UI.SimulatedLatencyScale}

	registry := application.NewContextRegistry(stores.Store, c, eventBus, application.ContextRegistryConfig{
		IdleTTL:              cfg.UI.ContextIdleTTL,
		ToastDefaultDuration: cfg.UI.ToastDefaultDuration,
	})

	return &ApplicationServices{
		Registry:     registry,
		EventBus:     eventBus,
		Catalog:      application.NewCatalogService(c),
		DomainSearch: application.NewDomainSearchService(c, latency),
		Contact:      application.NewContactService(latency),
		Auth:         application.NewAuthService(),
		Profile:      application.NewProfileService(latency),
		Support:      application.NewSupportService(),
		MockActions:  application.NewMockActionService(c),
	}
}

// buildPresentationLayer creates all presenters and handlers
func buildPresentationLayer(appCtx context.Context, cfg *config.AppConfig, services *ApplicationServices, stores *factories.StoreBundle) *PresentationLayer {
	// Build presenters (view logic)
	toastPresenter := presenters.NewToastPresenter()
	sitePresenter := presenters.NewSitePresenter()
	dashboardPresenter := presenters.NewDashboardPresenter()
	renderer := handlers.NewRenderer(presenters.NewPagePresenter(toastPresenter), cfg.Web.PrettyHTML)

	// Build handlers - orchestrate services & presenters
	sseManager := handlers.NewSSEManager(appCtx, services.Registry, toastPresenter)
	h := &web.Handlers{
		Client: handlers.NewClientMiddleware(services.Registry, cfg.Web.CookieSecure),
		Site: handlers.NewSiteHandlers(
			services.Catalog,
			services.DomainSearch,
			services.Contact,
			sitePresenter,
			renderer,
		),
		Auth: handlers.NewAuthHandlers(services.Auth, renderer),
		Dashboard: handlers.NewDashboardHandlers(
			services.Catalog,
			services.Profile,
			services.Support,
			dashboardPresenter,
			renderer,
		),
		Toasts: handlers.NewToastHandlers(
			services.MockActions,
			toastPresenter,
			serialization.NewToastSerializer(),
			renderer,
		),
		System: handlers.NewSystemHandlers(stores, services.Registry),
		SSE:    sseManager,
	}

	// Push client state changes to open tabs
	setupEventHandlers(services, sseManager)

	return &PresentationLayer{
		ToastPresenter:     toastPresenter,
		SitePresenter:      sitePresenter,
		DashboardPresenter: dashboardPresenter,
		Handlers:           h,
		SSEManager:         sseManager,
	}
}

// buildDependencies creates all application dependencies
func buildDependencies(appCtx context.Context, cfg *config.AppConfig, c *catalog.Catalog, stores *factories.StoreBundle, logger *logging.Logger) *Dependencies {
	services := buildApplicationServices(cfg, c, stores)
	presentation := buildPresentationLayer(appCtx, cfg, services, stores)

	return &Dependencies{
		Logger:       logger,
		Stores:       stores,
		Services:     services,
		Presentation: presentation,
	}
}

// setupEventHandlers wires client state events to the SSE manager
func setupEventHandlers(services *ApplicationServices, sseManager *handlers.SSEManager) {
	notificationHandlers := events.NewNotificationEventHandlers(sseManager)
	notificationHandlers.RegisterHandlers(services.EventBus)
}

func newHTTPLogger(cfg *config.AppConfig, logger *logging.Logger) *httplog.Logger {
	if cfg.HTTPLogPath == "" {
		// No HTTP logging configured, skip
		return nil
	}

	logFile, err := os.OpenFile(cfg.HTTPLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logger.Error("Failed to open HTTP log file", "error", err, "path", cfg.HTTPLogPath)
		return nil
	}
	// logFile stays open for the server lifetime

	logger.Info("HTTP request logging enabled", "path", cfg.HTTPLogPath)
	return httplog.NewLogger("hostpro", httplog.Options{
		Writer:          logFile,
		JSON:            true,
		Concise:         true,
		QuietDownRoutes: []string{"/health", "/events"},
		QuietDownPeriod: time.Minute,
	})
}

func startServer(router http.Handler, addr string, logger *logging.Logger, appCancel context.CancelFunc) error {
	server := &http.Server{Addr: addr, Handler: router, ReadHeaderTimeout: 10 * time.Second}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sig
		logger.Info("Shutdown signal received")

		// Cancelling the app context closes every SSE stream
		appCancel()

		shutdownCtx, cancel := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		serverStopCtx()
	}()

	logger.Info("Server starting", "address", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	<-serverCtx.Done()
	logger.Info("Server stopped")
	return nil
}
