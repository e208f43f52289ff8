package v1

import (
	"net/http"
	"time"

	"go-profile-backend/internal/delivery/http/middleware"
	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

func NewProjectHandler(protected *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	projects := protected.Group("/projects")
	{
		projects.GET("", handler.List)
		projects.POST("", handler.Create)
		projects.GET("/my_projects", handler.ListMine)
		projects.GET("/:id", handler.Get)
		projects.PUT("/:id", handler.Update)
		projects.PATCH("/:id", handler.PartialUpdate)
		projects.DELETE("/:id", handler.Delete)
	}
}

type CreateProjectRequest struct {
	Profile          int64      `json:"profile" binding:"required"`
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description" binding:"required"`
	TechnologiesUsed []string   `json:"technologies_used"`
	ProjectURL       *string    `json:"project_url"`
	Image            *string    `json:"image"`
	StartDate        time.Time  `json:"start_date" binding:"required"`
	EndDate          *time.Time `json:"end_date"`
}

func (h *ProjectHandler) List(c *gin.Context) {
	profileID, ok := profileQuery(c)
	if !ok {
		return
	}

	projects, err := h.projectUC.List(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project list", projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	project, err := h.projectUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project detail", project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	project := &domain.Project{
		ProfileID:        req.Profile,
		Title:            req.Title,
		Description:      req.Description,
		TechnologiesUsed: req.TechnologiesUsed,
		ProjectURL:       req.ProjectURL,
		Image:            req.Image,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
	}
	if err := h.projectUC.Create(c.Request.Context(), callerID, project); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Project created", project)
}

func (h *ProjectHandler) Update(c *gin.Context)        { h.update(c, false) }
func (h *ProjectHandler) PartialUpdate(c *gin.Context) { h.update(c, true) }

func (h *ProjectHandler) update(c *gin.Context, partial bool) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch domain.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	project, err := h.projectUC.Update(c.Request.Context(), callerID, id, patch, partial)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project updated", project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.projectUC.Delete(c.Request.Context(), callerID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project deleted", nil)
}

func (h *ProjectHandler) ListMine(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	projects, err := h.projectUC.ListMine(c.Request.Context(), callerID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My projects", projects)
}
