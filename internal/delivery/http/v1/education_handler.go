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

type EducationHandler struct {
	educationUC domain.EducationUsecase
}

func NewEducationHandler(protected *gin.RouterGroup, educationUC domain.EducationUsecase) {
	handler := &EducationHandler{educationUC: educationUC}

	education := protected.Group("/education")
	{
		education.GET("", handler.List)
		education.POST("", handler.Create)
		education.GET("/my_education", handler.ListMine)
		education.GET("/:id", handler.Get)
		education.PUT("/:id", handler.Update)
		education.PATCH("/:id", handler.PartialUpdate)
		education.DELETE("/:id", handler.Delete)
	}
}

type CreateEducationRequest struct {
	Profile     int64      `json:"profile" binding:"required"`
	Institution string     `json:"institution" binding:"required"`
	Degree      string     `json:"degree" binding:"required"`
	StartYear   time.Time  `json:"start_year" binding:"required"`
	EndYear     *time.Time `json:"end_year"`
}

func (h *EducationHandler) List(c *gin.Context) {
	profileID, ok := profileQuery(c)
	if !ok {
		return
	}

	records, err := h.educationUC.List(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education list", records)
}

func (h *EducationHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	record, err := h.educationUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education detail", record)
}

func (h *EducationHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	record := &domain.Education{
		ProfileID:   req.Profile,
		Institution: req.Institution,
		Degree:      req.Degree,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
	}
	if err := h.educationUC.Create(c.Request.Context(), callerID, record); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Education created", record)
}

func (h *EducationHandler) Update(c *gin.Context)        { h.update(c, false) }
func (h *EducationHandler) PartialUpdate(c *gin.Context) { h.update(c, true) }

func (h *EducationHandler) update(c *gin.Context, partial bool) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch domain.EducationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	record, err := h.educationUC.Update(c.Request.Context(), callerID, id, patch, partial)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education updated", record)
}

func (h *EducationHandler) Delete(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.educationUC.Delete(c.Request.Context(), callerID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education deleted", nil)
}

func (h *EducationHandler) ListMine(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	records, err := h.educationUC.ListMine(c.Request.Context(), callerID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My education", records)
}
