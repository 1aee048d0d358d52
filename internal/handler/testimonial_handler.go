package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/merrickdc/cms_api/internal/models"
	"github.com/merrickdc/cms_api/internal/repository"
	"github.com/merrickdc/cms_api/internal/utils"
)

// TestimonialHandler handles the public testimonial list and the admin CRUD.
type TestimonialHandler struct {
	testimonialRepo *repository.TestimonialRepository
}

// NewTestimonialHandler constructs a TestimonialHandler.
func NewTestimonialHandler(testimonialRepo *repository.TestimonialRepository) *TestimonialHandler {
	return &TestimonialHandler{testimonialRepo: testimonialRepo}
}

// ListPublished handles GET /api/testimonials
func (h *TestimonialHandler) ListPublished(c *gin.Context) {
	items, err := h.testimonialRepo.ListPublished(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve testimonials")
		return
	}
	if items == nil {
		items = []*models.Testimonial{}
	}

	utils.Success(c, 200, "Testimonials retrieved", items)
}

// ListAll handles GET /api/admin/testimonials, unpublished included.
func (h *TestimonialHandler) ListAll(c *gin.Context) {
	items, err := h.testimonialRepo.ListAll(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve testimonials")
		return
	}
	if items == nil {
		items = []*models.Testimonial{}
	}

	utils.Success(c, 200, "Testimonials retrieved", gin.H{
		"testimonials": items,
		"total":        len(items),
	})
}

// Create handles POST /api/admin/testimonials. Out-of-range ratings are
// rejected at binding, before anything is persisted.
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req models.TestimonialInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	req.Normalize()

	item, err := h.testimonialRepo.Create(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create testimonial")
		return
	}

	utils.Success(c, 201, "Testimonial created", item)
}

// Update handles PUT /api/admin/testimonials/:id. Full-replace semantics.
func (h *TestimonialHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid testimonial ID")
		return
	}

	var req models.TestimonialInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	req.Normalize()

	item, err := h.testimonialRepo.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "TESTIMONIAL_NOT_FOUND", "Testimonial not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update testimonial")
		return
	}

	utils.Success(c, 200, "Testimonial updated", item)
}

// Delete handles DELETE /api/admin/testimonials/:id
func (h *TestimonialHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid testimonial ID")
		return
	}

	err := h.testimonialRepo.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "TESTIMONIAL_NOT_FOUND", "Testimonial not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete testimonial")
		return
	}

	utils.Success(c, 200, "Testimonial deleted", nil)
}
