package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rentintel/internal/domain"
	"rentintel/internal/handler"
	"rentintel/internal/middleware"
	"rentintel/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	allowedOrigins []string,
	authH *handler.AuthHandler,
	extractH *handler.ExtractHandler,
	recordH *handler.RecordHandler,
	unitH *handler.UnitHandler,
	portfolioH *handler.PortfolioHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/landlord", authH.LoginLandlord)

	// Tenant-side routes. The tenant flow is unauthenticated: extraction,
	// review confirmation, and the personal ledger all run on-device.
	extract := v1.Group("/extract")
	extract.POST("/text", extractH.ExtractText)
	extract.POST("/image", extractH.ExtractImage)

	v1.POST("/records", recordH.Confirm)
	v1.GET("/records", recordH.List)
	v1.GET("/records/export", recordH.Export)
	v1.GET("/summary", recordH.Summary)

	// Landlord routes - require a landlord session
	landlord := v1.Group("")
	landlord.Use(middleware.AuthMiddleware(authSvc))
	landlord.Use(middleware.RequireRole(domain.RoleLandlord))

	units := landlord.Group("/units")
	units.POST("", unitH.Create)
	units.GET("", unitH.List)
	units.GET("/:id", unitH.Get)
	units.PUT("/:id", unitH.Update)
	units.DELETE("/:id", unitH.Delete)
	units.POST("/:id/vacate", unitH.Vacate)
	units.POST("/:id/collect", unitH.Collect)
	units.POST("/:id/remind", unitH.Remind)

	landlord.GET("/portfolio", portfolioH.Snapshot)
	landlord.GET("/portfolio/report", portfolioH.Report)

	return r
}
