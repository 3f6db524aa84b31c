package handlers

import (
	"net/http"

	"civicmatch_backend/internal/middleware"
	"civicmatch_backend/internal/models"
	"civicmatch_backend/internal/repositories"
	"civicmatch_backend/internal/services"
	"civicmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	*BaseHandler
	resourceService services.ResourceService
}

func NewResourceHandler(base *BaseHandler, resourceService services.ResourceService) *ResourceHandler {
	return &ResourceHandler{
		BaseHandler:     base,
		resourceService: resourceService,
	}
}

func (h *ResourceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Public catalog: browsing needs no account.
	public := rg.Group("/resources")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("", h.Search)
		public.GET("/:id", h.Get)
	}

	admin := rg.Group("/admin/resources")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Deactivate)
	}
}

func (h *ResourceHandler) Search(c *gin.Context) {
	var criteria repositories.ResourceSearchCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}
	criteria.Page, criteria.PageSize = ParsePagination(c)

	// the public catalog hides deactivated entries unless asked
	if criteria.IsActive == nil {
		active := true
		criteria.IsActive = &active
	}

	db := h.GetDB(c)

	resources, total, err := h.resourceService.Search(db, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resources": resources,
		"total":     total,
		"page":      criteria.Page,
		"page_size": criteria.PageSize,
	})
}

// Get serves a single resource. When the caller is authenticated the
// read is recorded as a view event.
func (h *ResourceHandler) Get(c *gin.Context) {
	resourceID := c.Param("id")
	db := h.GetDB(c)

	if userID := middleware.GetUserID(c); userID != "" {
		resource, err := h.resourceService.GetForUser(db, resourceID, userID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resource)
		return
	}

	resource, err := h.resourceService.Get(db, resourceID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resource)
}

func (h *ResourceHandler) Create(c *gin.Context) {
	var req dto.CreateResourceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resource, err := h.resourceService.Create(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resource)
}

func (h *ResourceHandler) Update(c *gin.Context) {
	var req dto.UpdateResourceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resource, err := h.resourceService.Update(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resource)
}

func (h *ResourceHandler) Deactivate(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.resourceService.Deactivate(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "resource deactivated"})
}
