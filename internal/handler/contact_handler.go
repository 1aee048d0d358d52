package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/merrickdc/cms_api/internal/models"
	"github.com/merrickdc/cms_api/internal/repository"
	"github.com/merrickdc/cms_api/internal/utils"
)

// ContactHandler handles public contact submissions and the admin pipeline.
type ContactHandler struct {
	contactRepo *repository.ContactRepository
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(contactRepo *repository.ContactRepository) *ContactHandler {
	return &ContactHandler{contactRepo: contactRepo}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	sub, err := h.contactRepo.Create(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to submit message")
		return
	}

	utils.Success(c, 200, "Thank you for your message. We'll get back to you within 24 hours.", gin.H{
		"id": sub.ID,
	})
}

// List handles GET /api/admin/contacts
func (h *ContactHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	subs, err := h.contactRepo.List(c.Request.Context(), skip, limit)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve contacts")
		return
	}
	if subs == nil {
		subs = []*models.ContactSubmission{}
	}

	utils.Success(c, 200, "Contacts retrieved", gin.H{
		"contacts": subs,
		"total":    len(subs),
	})
}

// UpdateStatus handles PUT /api/admin/contacts/:id
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid contact ID")
		return
	}

	var req models.ContactStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	sub, err := h.contactRepo.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "CONTACT_NOT_FOUND", "Contact submission not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update contact")
		return
	}

	utils.Success(c, 200, "Contact updated", sub)
}
