package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/SscSPs/agency_backoffice/cmd/docs"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/middleware"
	"github.com/SscSPs/agency_backoffice/internal/platform/config"
	"github.com/SscSPs/agency_backoffice/internal/utils"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
	portalLimiter *limiter.Limiter,
) {
	registerHealthRoutes(r)

	// Signed document downloads carry their own token.
	RegisterFileRoutes(r, services.Document)

	setupBackOfficeRoutes(r, cfg, services, posthogClient)
	setupPortalRoutes(r, cfg, services, posthogClient, portalLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupBackOfficeRoutes configures the /api/v1 group used by staff.
func setupBackOfficeRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
		middleware.RequireRoles(middleware.RoleAdmin, middleware.RoleAgent),
		middleware.PosthogMiddleware(posthogClient),
	)

	maxUploadBytes := cfg.MaxUploadMB << 20
	RegisterFlightRoutes(v1, services.Flight, maxUploadBytes)
	RegisterTransferRoutes(v1, services.Transfer, maxUploadBytes)
	RegisterTranslationRoutes(v1, services.Translation, maxUploadBytes)
	RegisterCatalogRoutes(v1, services.Catalog)
	RegisterLedgerRoutes(v1, services.Ledger)
	RegisterDocumentRoutes(v1, services.Document)
}

// setupPortalRoutes configures the rate limited client portal.
func setupPortalRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
	portalLimiter *limiter.Limiter,
) {
	portal := r.Group("/api/v1/portal",
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
		middleware.RateLimit(portalLimiter),
		middleware.PosthogMiddleware(posthogClient),
	)
	RegisterPortalRoutes(portal, services.Portal)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
