package v1

import (
	"net/http"

	"ats-backend/config"
	"ats-backend/internal/delivery/http/middleware"
	"ats-backend/internal/delivery/http/response"
	"ats-backend/internal/domain"
	"ats-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	CandidateUC   domain.CandidateUsecase
	EducationUC   domain.EducationUsecase
	BackupUC      domain.BackupUsecase
	SpreadsheetUC domain.SpreadsheetUsecase
	DashboardUC   domain.DashboardUsecase
	Repo          domain.DataRepository
	Tokens        *auth.TokenManager
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes
	loginLimiter := middleware.RateLimit(middleware.LoginRateLimitConfig(
		deps.Config.LoginRateLimit, deps.Config.LoginRateWindowSeconds))
	NewAuthHandler(v1, deps.AuthUC, loginLimiter)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewCandidateHandler(protected, deps.CandidateUC, deps.SpreadsheetUC)
		NewEducationHandler(protected, deps.EducationUC)
		NewActivityHandler(protected, deps.Repo)
		NewDashboardHandler(protected, deps.DashboardUC)
		NewBackupHandler(protected, deps.BackupUC)
		NewUploadHandler(protected, deps.SpreadsheetUC)
	}

	return r
}
