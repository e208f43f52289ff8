package v1

import (
	"net/http"

	"go-profile-backend/internal/delivery/http/middleware"
	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(protected *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	skills := protected.Group("/skills")
	{
		skills.GET("", handler.List)
		skills.POST("", handler.Create)
		skills.GET("/my_skills", handler.ListMine)
		skills.GET("/:id", handler.Get)
		skills.PUT("/:id", handler.Update)
		skills.PATCH("/:id", handler.PartialUpdate)
		skills.DELETE("/:id", handler.Delete)
	}
}

type CreateSkillRequest struct {
	Profile     int64  `json:"profile" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Proficiency string `json:"proficiency" binding:"required"`
}

// List returns all skills, optionally narrowed with ?profile=<id>.
func (h *SkillHandler) List(c *gin.Context) {
	profileID, ok := profileQuery(c)
	if !ok {
		return
	}

	skills, err := h.skillUC.List(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill list", skills)
}

func (h *SkillHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	skill, err := h.skillUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill detail", skill)
}

func (h *SkillHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill := &domain.Skill{
		ProfileID:   req.Profile,
		Name:        req.Name,
		Proficiency: req.Proficiency,
	}
	if err := h.skillUC.Create(c.Request.Context(), callerID, skill); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill created", skill)
}

func (h *SkillHandler) Update(c *gin.Context)        { h.update(c, false) }
func (h *SkillHandler) PartialUpdate(c *gin.Context) { h.update(c, true) }

func (h *SkillHandler) update(c *gin.Context, partial bool) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch domain.SkillPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill, err := h.skillUC.Update(c.Request.Context(), callerID, id, patch, partial)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill updated", skill)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.skillUC.Delete(c.Request.Context(), callerID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill deleted", nil)
}

// ListMine returns the skills attached to the caller's own profile.
func (h *SkillHandler) ListMine(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	skills, err := h.skillUC.ListMine(c.Request.Context(), callerID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My skills", skills)
}
