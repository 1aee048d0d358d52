package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/merrickdc/cms_api/internal/models"
	"github.com/merrickdc/cms_api/internal/repository"
	"github.com/merrickdc/cms_api/internal/utils"
)

// NewsletterHandler handles public newsletter subscriptions.
type NewsletterHandler struct {
	newsletterRepo *repository.NewsletterRepository
}

// NewNewsletterHandler constructs a NewsletterHandler.
func NewNewsletterHandler(newsletterRepo *repository.NewsletterRepository) *NewsletterHandler {
	return &NewsletterHandler{newsletterRepo: newsletterRepo}
}

// Subscribe handles POST /api/newsletter. Subscribing an already-subscribed
// email succeeds without creating a duplicate record.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req models.NewsletterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	already, err := h.newsletterRepo.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to subscribe")
		return
	}

	msg := "Successfully subscribed to newsletter"
	if already {
		msg = "Email already subscribed"
	}
	utils.Success(c, 200, msg, nil)
}
