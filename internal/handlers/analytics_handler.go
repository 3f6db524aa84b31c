package handlers

import (
	"net/http"

	"civicmatch_backend/internal/auth"
	"civicmatch_backend/internal/middleware"
	"civicmatch_backend/internal/models"
	"civicmatch_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	*BaseHandler
	activityService services.ActivityService
}

func NewAnalyticsHandler(base *BaseHandler, activityService services.ActivityService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:     base,
		activityService: activityService,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin/analytics")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/activity", h.ActivityCounts)
	}

	me := rg.Group("/users/me/activity")
	me.Use(middleware.AuthMiddleware())
	me.Use(middleware.RequireLevel(auth.LevelActive))
	{
		me.GET("", h.OwnActivity)
	}
}

func (h *AnalyticsHandler) ActivityCounts(c *gin.Context) {
	db := h.GetDB(c)

	counts, err := h.activityService.CountsByType(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": counts})
}

func (h *AnalyticsHandler) OwnActivity(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	limit := ParseQueryInt(c, "limit", 50)
	db := h.GetDB(c)

	activities, err := h.activityService.RecentForUser(db, userID, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
