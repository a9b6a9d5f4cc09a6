package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/expense_tracker_app/cmd/docs"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/SscSPs/expense_tracker_app/internal/platform/config"
	"github.com/SscSPs/expense_tracker_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	RegisterValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	registerHomeRoutes(r)

	rate := cfg.LoginRateLimit
	if rate == "" {
		rate = "5-M"
	}
	loginLimiter, err := middleware.NewIPRateLimiter(rate)
	if err != nil {
		return fmt.Errorf("login rate limiter: %w", err)
	}

	// Public credential endpoints share the /user prefix with the
	// authenticated user routes.
	public := r.Group("/user")
	registerAuthRoutes(public, services.Auth, middleware.RateLimit(loginLimiter))
	registerGoogleOAuthRoutes(public, services.Auth)

	setupAuthenticatedRoutes(r, cfg, services, posthogClient)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAuthenticatedRoutes mounts every route that needs a bearer token.
func setupAuthenticatedRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	authed := r.Group("", middleware.AuthMiddleware(cfg.JWTSecret), middleware.PosthogMiddleware(posthogClient))

	registerUserRoutes(authed.Group("/user"), services.User)
	registerRoleRoutes(authed, services.User)
	registerCategoryRoutes(authed, services.Category, services.Subcategory)
	registerVendorRoutes(authed, services.Vendor)
	registerAccountRoutes(authed, services.Account)
	registerExpenseRoutes(authed, services.Expense, UploadLimits{
		TmpDir:   cfg.UploadTmpDir,
		MaxBytes: cfg.MaxUploadBytes,
	})
	registerIncomeRoutes(authed, services.Income)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
