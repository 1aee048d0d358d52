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

// BlogHandler handles both the public blog surface and the admin CRUD.
type BlogHandler struct {
	blogRepo *repository.BlogRepository
}

// NewBlogHandler constructs a BlogHandler.
func NewBlogHandler(blogRepo *repository.BlogRepository) *BlogHandler {
	return &BlogHandler{blogRepo: blogRepo}
}

// ListPublished handles GET /api/blog?skip&limit
func (h *BlogHandler) ListPublished(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	posts, err := h.blogRepo.ListPublished(c.Request.Context(), skip, limit)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve blog posts")
		return
	}
	if posts == nil {
		posts = []*models.BlogPost{}
	}

	utils.Success(c, 200, "Blog posts retrieved", posts)
}

// GetBySlug handles GET /api/blog/:slug. Only published posts are visible.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.blogRepo.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "POST_NOT_FOUND", "Blog post not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve blog post")
		return
	}

	utils.Success(c, 200, "Blog post retrieved", post)
}

// ListAll handles GET /api/admin/blog, drafts included.
func (h *BlogHandler) ListAll(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	posts, err := h.blogRepo.ListAll(c.Request.Context(), skip, limit)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve blog posts")
		return
	}
	if posts == nil {
		posts = []*models.BlogPost{}
	}

	utils.Success(c, 200, "Blog posts retrieved", gin.H{
		"posts": posts,
		"total": len(posts),
	})
}

// Create handles POST /api/admin/blog
func (h *BlogHandler) Create(c *gin.Context) {
	var req models.BlogPostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	req.Normalize()

	post, err := h.blogRepo.Create(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create blog post")
		return
	}

	utils.Success(c, 201, "Blog post created", post)
}

// Update handles PUT /api/admin/blog/:id. Full-replace semantics: the
// request must carry the complete editable object.
func (h *BlogHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid blog post ID")
		return
	}

	var req models.BlogPostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	req.Normalize()

	post, err := h.blogRepo.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "POST_NOT_FOUND", "Blog post not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update blog post")
		return
	}

	utils.Success(c, 200, "Blog post updated", post)
}

// Delete handles DELETE /api/admin/blog/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid blog post ID")
		return
	}

	err := h.blogRepo.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "POST_NOT_FOUND", "Blog post not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete blog post")
		return
	}

	utils.Success(c, 200, "Blog post deleted", nil)
}
