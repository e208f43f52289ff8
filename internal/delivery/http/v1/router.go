package v1

import (
	"net/http"

	"go-profile-backend/internal/delivery/http/middleware"
	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/token"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC          domain.AuthUsecase
	ProfileUC       domain.ProfileUsecase
	SkillUC         domain.SkillUsecase
	EducationUC     domain.EducationUsecase
	CertificationUC domain.CertificationUsecase
	ProjectUC       domain.ProjectUsecase
	Tokens          *token.Service
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Everything except login/register/refresh/verify requires a valid bearer
	// token; the resource usecases rely on the caller identity this sets.
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(v1, protected, deps.AuthUC)
		NewProfileHandler(protected, deps.ProfileUC)
		NewSkillHandler(protected, deps.SkillUC)
		NewEducationHandler(protected, deps.EducationUC)
		NewCertificationHandler(protected, deps.CertificationUC)
		NewProjectHandler(protected, deps.ProjectUC)
	}

	return r
}
