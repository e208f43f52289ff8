package v1

import (
	"net/http"
	"strconv"

	"go-profile-backend/internal/delivery/http/middleware"
	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := protected.Group("/profiles")
	{
		profiles.GET("", handler.List)
		profiles.POST("", handler.Create)
		profiles.GET("/my_profile", handler.GetMine)
		profiles.GET("/:id", handler.Get)
		profiles.PUT("/:id", handler.Update)
		profiles.PATCH("/:id", handler.PartialUpdate)
		profiles.DELETE("/:id", handler.Delete)
		profiles.GET("/:id/skills", handler.ListSkills)
		profiles.GET("/:id/projects", handler.ListProjects)
	}
}

// ProfileRequest is the write projection: owner and joined_at are
// server-assigned, so the request body carries neither.
type ProfileRequest struct {
	Bio      *string `json:"bio"`
	Position *string `json:"position"`
}

func (r ProfileRequest) patch() domain.ProfilePatch {
	return domain.ProfilePatch{Bio: r.Bio, Position: r.Position}
}

// List godoc
// @Summary      List profiles
// @Description  Lightweight projection with owner summary and child counts
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profiles [get]
// @Security     BearerAuth
func (h *ProfileHandler) List(c *gin.Context) {
	summaries, err := h.profileUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile list", summaries)
}

// Get godoc
// @Summary      Retrieve one profile with nested children
// @Tags         profiles
// @Produce      json
// @Param        id   path      int  true  "Profile ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/{id} [get]
// @Security     BearerAuth
func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	detail, err := h.profileUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile detail", detail)
}

// Create godoc
// @Summary      Create the caller's profile
// @Description  The new profile is owned by the authenticated caller; any
// @Description  client-supplied owner value is ignored.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request  body      ProfileRequest  true  "Profile data"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /profiles [post]
// @Security     BearerAuth
func (h *ProfileHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	detail, err := h.profileUC.Create(c.Request.Context(), callerID, req.patch())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Profile created", detail)
}

// Update godoc
// @Summary      Replace a profile's mutable fields
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "Profile ID"
// @Param        request  body      ProfileRequest  true  "Profile data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /profiles/{id} [put]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	h.update(c, false)
}

// PartialUpdate godoc
// @Summary      Merge supplied fields into a profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "Profile ID"
// @Param        request  body      ProfileRequest  true  "Fields to change"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /profiles/{id} [patch]
// @Security     BearerAuth
func (h *ProfileHandler) PartialUpdate(c *gin.Context) {
	h.update(c, true)
}

func (h *ProfileHandler) update(c *gin.Context, partial bool) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	detail, err := h.profileUC.Update(c.Request.Context(), callerID, id, req.patch(), partial)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", detail)
}

// Delete godoc
// @Summary      Delete a profile and all of its child records
// @Tags         profiles
// @Produce      json
// @Param        id   path      int  true  "Profile ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/{id} [delete]
// @Security     BearerAuth
func (h *ProfileHandler) Delete(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.profileUC.Delete(c.Request.Context(), callerID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile deleted", nil)
}

// GetMine godoc
// @Summary      Retrieve the caller's own profile
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/my_profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetMine(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	detail, err := h.profileUC.GetMine(c.Request.Context(), callerID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My profile", detail)
}

// ListSkills godoc
// @Summary      Skills of one named profile
// @Tags         profiles
// @Produce      json
// @Param        id   path      int  true  "Profile ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/{id}/skills [get]
// @Security     BearerAuth
func (h *ProfileHandler) ListSkills(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	skills, err := h.profileUC.ListSkills(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile skills", skills)
}

// ListProjects godoc
// @Summary      Projects of one named profile
// @Tags         profiles
// @Produce      json
// @Param        id   path      int  true  "Profile ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/{id}/projects [get]
// @Security     BearerAuth
func (h *ProfileHandler) ListProjects(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	projects, err := h.profileUC.ListProjects(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile projects", projects)
}

// idParam parses the :id path segment; on failure it records a 400 and reports
// false.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID"))
		return 0, false
	}
	return id, true
}

// profileQuery parses the optional ?profile= filter on child list endpoints.
func profileQuery(c *gin.Context) (*int64, bool) {
	raw := c.Query("profile")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid profile query parameter"))
		return nil, false
	}
	return &id, true
}
