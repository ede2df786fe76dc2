package routes

import (
	"context"
	"fmt"
	"net/http"

	_ "smartmenu/docs"
	"smartmenu/internal/adapter/http/handlers"
	"smartmenu/internal/adapter/http/middleware"
	"smartmenu/internal/adapter/persistence/repository"
	"smartmenu/internal/infrastructure/auth"
	"smartmenu/internal/infrastructure/catalog"
	"smartmenu/internal/infrastructure/config"
	"smartmenu/internal/infrastructure/database"
	"smartmenu/internal/infrastructure/metrics"
	"smartmenu/internal/usecase"
	"smartmenu/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the use cases and infrastructure the router serves.
type Dependencies struct {
	Catalog  usecase.ICatalogUseCase
	Sessions usecase.ISessionUseCase
	Orders   usecase.IOrderUseCase
	Admin    usecase.IAdminAuthUseCase
	Verifier middleware.TokenVerifier
	Gatherer prometheus.Gatherer
}

// Run wires the application from cfg and serves it until the listener fails.
func Run(ctx context.Context, cfg config.Config) error {
	gin.SetMode(cfg.GinMode)

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}

	router := NewRouter(deps)
	logrus.WithFields(logrus.Fields{"component": "http", "port": cfg.Port}).Info("server starting")
	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	sessionHandler := handlers.NewSessionHandler(deps.Sessions)
	orderHandler := handlers.NewOrderHandler(deps.Orders)
	adminHandler := handlers.NewAdminHandler(deps.Admin)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMenuRoutes(v1, catalogHandler)
	addSessionRoutes(v1, sessionHandler)
	addOrderRoutes(v1, orderHandler)
	addAdminRoutes(v1, adminHandler, orderHandler, deps.Verifier)

	return router
}

func buildDependencies(ctx context.Context, cfg config.Config) (Dependencies, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	orderMetrics := metrics.NewOrderMetrics(registry)

	provider, err := menuProvider(ctx, cfg)
	if err != nil {
		return Dependencies{}, err
	}
	catalogUseCase, err := usecase.NewCatalogUseCase(ctx, provider)
	if err != nil {
		return Dependencies{}, fmt.Errorf("load menu: %w", err)
	}

	orderRepo := repository.NewOrderMemoryRepository()

	// Without JWT_SECRET the admin routes still exist but every request is
	// rejected.
	var verifier middleware.TokenVerifier = denyAll{}
	var adminUseCase usecase.IAdminAuthUseCase = usecase.NewAdminAuthUseCase("", "", nil)
	if cfg.AdminEnabled() {
		jwtManager, err := auth.NewJWTManager(cfg.JWTSecret, cfg.AdminTokenTTL)
		if err != nil {
			return Dependencies{}, err
		}
		verifier = jwtManager
		adminUseCase = usecase.NewAdminAuthUseCase(cfg.AdminEmail, cfg.AdminPasswordHash, jwtManager)
	} else {
		logrus.WithField("component", "admin").Warn("admin login disabled: JWT_SECRET, ADMIN_EMAIL or ADMIN_PASSWORD_HASH not set")
	}

	sessions := usecase.NewSessionUseCase(catalogUseCase, orderRepo, orderMetrics)
	sessions.SetIdleTTL(cfg.SessionIdleTTL)

	return Dependencies{
		Catalog:  catalogUseCase,
		Sessions: sessions,
		Orders:   usecase.NewOrderUseCase(orderRepo, orderMetrics),
		Admin:    adminUseCase,
		Verifier: verifier,
		Gatherer: registry,
	}, nil
}

func menuProvider(ctx context.Context, cfg config.Config) (interfaces.ICatalogProvider, error) {
	if cfg.MenuSource != config.MenuSourceDynamoDB {
		return catalog.NewStaticProvider(catalog.DefaultMenu()...), nil
	}
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, err
	}
	return repository.NewMenuDynamoRepository(ddb), nil
}

type denyAll struct{}

func (denyAll) Verify(string) (*auth.Claims, error) {
	return nil, auth.ErrInvalidToken
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logrus.WithFields(logrus.Fields{"component": "http", "path": c.Request.URL.Path}).Errorf("recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
