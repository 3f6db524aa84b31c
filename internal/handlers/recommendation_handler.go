package handlers

import (
	"net/http"

	"civicmatch_backend/internal/auth"
	"civicmatch_backend/internal/middleware"
	"civicmatch_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	*BaseHandler
	recommendationService services.RecommendationService
}

func NewRecommendationHandler(base *BaseHandler, recommendationService services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		BaseHandler:           base,
		recommendationService: recommendationService,
	}
}

func (h *RecommendationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	recs := rg.Group("/recommendations")
	recs.Use(middleware.AuthMiddleware())
	recs.Use(middleware.RequireLevel(auth.LevelActive))
	{
		recs.GET("", h.List)
	}
}

func (h *RecommendationHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	recommendations, err := h.recommendationService.Recommend(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
