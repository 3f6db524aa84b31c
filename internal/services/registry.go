package services

import (
	"civicmatch_backend/internal/config"
	"civicmatch_backend/internal/repositories"
	"civicmatch_backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService           AuthService
	UserService           UserService
	ResourceService       ResourceService
	RecommendationService RecommendationService
	DocumentService       DocumentService
	ActivityService       ActivityService
}

// NewServiceContainer wires repositories, storage and external
// verifiers into the service layer.
func NewServiceContainer(cfg *config.Config, store storage.Storage) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	educationRepo := repositories.NewEducationRepository()
	resourceRepo := repositories.NewResourceRepository()
	documentRepo := repositories.NewDocumentRepository()
	activityRepo := repositories.NewActivityRepository()

	verifier := NewGoogleVerifier(cfg)

	return &ServiceContainer{
		AuthService:           NewAuthService(userRepo, activityRepo, verifier),
		UserService:           NewUserService(userRepo, educationRepo),
		ResourceService:       NewResourceService(resourceRepo, activityRepo),
		RecommendationService: NewRecommendationService(educationRepo, resourceRepo),
		DocumentService:       NewDocumentService(documentRepo, activityRepo, store, cfg),
		ActivityService:       NewActivityService(activityRepo),
	}
}
