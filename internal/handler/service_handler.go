package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/merrickdc/cms_api/internal/models"
	"github.com/merrickdc/cms_api/internal/repository"
	"github.com/merrickdc/cms_api/internal/utils"
)

// ServiceHandler handles the public service list and the admin patch
// surface. Services are seeded at startup; no create or delete exists here.
type ServiceHandler struct {
	serviceRepo *repository.ServiceRepository
}

// NewServiceHandler constructs a ServiceHandler.
func NewServiceHandler(serviceRepo *repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{serviceRepo: serviceRepo}
}

// ListPublished handles GET /api/services
func (h *ServiceHandler) ListPublished(c *gin.Context) {
	services, err := h.serviceRepo.ListPublished(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve services")
		return
	}
	if services == nil {
		services = []*models.Service{}
	}

	utils.Success(c, 200, "Services retrieved", services)
}

// ListAll handles GET /api/admin/services
func (h *ServiceHandler) ListAll(c *gin.Context) {
	services, err := h.serviceRepo.ListAll(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve services")
		return
	}
	if services == nil {
		services = []*models.Service{}
	}

	utils.Success(c, 200, "Services retrieved", gin.H{
		"services": services,
		"total":    len(services),
	})
}

// Update handles PUT /api/admin/services/:id. Partial-patch semantics:
// only the fields present in the request are written.
func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid service ID")
		return
	}

	var req models.ServiceUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if req.Empty() {
		utils.Error(c, 400, "EMPTY_UPDATE", "No fields to update")
		return
	}

	svc, err := h.serviceRepo.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "SERVICE_NOT_FOUND", "Service not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update service")
		return
	}

	utils.Success(c, 200, "Service updated", svc)
}
