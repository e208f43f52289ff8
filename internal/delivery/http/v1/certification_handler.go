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

type CertificationHandler struct {
	certificationUC domain.CertificationUsecase
}

func NewCertificationHandler(protected *gin.RouterGroup, certificationUC domain.CertificationUsecase) {
	handler := &CertificationHandler{certificationUC: certificationUC}

	certifications := protected.Group("/certifications")
	{
		certifications.GET("", handler.List)
		certifications.POST("", handler.Create)
		certifications.GET("/my_certifications", handler.ListMine)
		certifications.GET("/:id", handler.Get)
		certifications.PUT("/:id", handler.Update)
		certifications.PATCH("/:id", handler.PartialUpdate)
		certifications.DELETE("/:id", handler.Delete)
	}
}

type CreateCertificationRequest struct {
	Profile    int64      `json:"profile" binding:"required"`
	Title      string     `json:"title" binding:"required"`
	Issuer     string     `json:"issuer" binding:"required"`
	IssuedDate time.Time  `json:"issued_date" binding:"required"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

func (h *CertificationHandler) List(c *gin.Context) {
	profileID, ok := profileQuery(c)
	if !ok {
		return
	}

	records, err := h.certificationUC.List(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certification list", records)
}

func (h *CertificationHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	record, err := h.certificationUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certification detail", record)
}

func (h *CertificationHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req CreateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	record := &domain.Certification{
		ProfileID:  req.Profile,
		Title:      req.Title,
		Issuer:     req.Issuer,
		IssuedDate: req.IssuedDate,
		ExpiryDate: req.ExpiryDate,
	}
	if err := h.certificationUC.Create(c.Request.Context(), callerID, record); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Certification created", record)
}

func (h *CertificationHandler) Update(c *gin.Context)        { h.update(c, false) }
func (h *CertificationHandler) PartialUpdate(c *gin.Context) { h.update(c, true) }

func (h *CertificationHandler) update(c *gin.Context, partial bool) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch domain.CertificationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	record, err := h.certificationUC.Update(c.Request.Context(), callerID, id, patch, partial)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certification updated", record)
}

func (h *CertificationHandler) Delete(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.certificationUC.Delete(c.Request.Context(), callerID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certification deleted", nil)
}

func (h *CertificationHandler) ListMine(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	records, err := h.certificationUC.ListMine(c.Request.Context(), callerID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My certifications", records)
}
