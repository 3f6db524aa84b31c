package handlers

import (
	"civicmatch_backend/internal/services"
	"civicmatch_backend/internal/validator"
)

// AppHandlers holds every HTTP handler in the application.
type AppHandlers struct {
	AuthHandler           *AuthHandler
	UserHandler           *UserHandler
	ResourceHandler       *ResourceHandler
	DocumentHandler       *DocumentHandler
	RecommendationHandler *RecommendationHandler
	AnalyticsHandler      *AnalyticsHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:           NewAuthHandler(base, svc.AuthService),
		UserHandler:           NewUserHandler(base, svc.UserService),
		ResourceHandler:       NewResourceHandler(base, svc.ResourceService),
		DocumentHandler:       NewDocumentHandler(base, svc.DocumentService),
		RecommendationHandler: NewRecommendationHandler(base, svc.RecommendationService),
		AnalyticsHandler:      NewAnalyticsHandler(base, svc.ActivityService),
	}
}
