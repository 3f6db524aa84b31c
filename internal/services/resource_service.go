package services

import (
	"errors"

	"civicmatch_backend/internal/logger"
	"civicmatch_backend/internal/models"
	"civicmatch_backend/internal/repositories"
	"civicmatch_backend/internal/services/dto"
	"civicmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ResourceService interface {
	Create(db *gorm.DB, req *dto.CreateResourceRequest) (*dto.ResourceResponse, error)
	Update(db *gorm.DB, resourceID string, req *dto.UpdateResourceRequest) (*dto.ResourceResponse, error)
	Get(db *gorm.DB, resourceID string) (*dto.ResourceResponse, error)
	GetForUser(db *gorm.DB, resourceID, userID string) (*dto.ResourceResponse, error)
	Search(db *gorm.DB, criteria repositories.ResourceSearchCriteria) ([]*dto.ResourceResponse, int64, error)
	Deactivate(db *gorm.DB, resourceID string) error
}

type ResourceServiceImpl struct {
	resourceRepo repositories.ResourceRepository
	activityRepo repositories.ActivityRepository
}

func NewResourceService(resourceRepo repositories.ResourceRepository, activityRepo repositories.ActivityRepository) ResourceService {
	return &ResourceServiceImpl{
		resourceRepo: resourceRepo,
		activityRepo: activityRepo,
	}
}

func (s *ResourceServiceImpl) Create(db *gorm.DB, req *dto.CreateResourceRequest) (*dto.ResourceResponse, error) {
	resource := &models.Resource{
		Title:               req.Title,
		Description:         req.Description,
		Type:                models.ResourceType(req.Type),
		Source:              req.Source,
		URL:                 req.URL,
		ImageURL:            req.ImageURL,
		MinEducationLevel:   req.MinEducationLevel,
		EligibilityCriteria: req.EligibilityCriteria,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		Location:            req.Location,
		IsActive:            true,
	}
	if len(req.RequiredSkills) > 0 {
		resource.SetRequiredSkills(req.RequiredSkills)
	}

	if err := s.resourceRepo.Create(db, resource); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("resource created", "resource_id", resource.ID, "type", resource.Type)
	return dto.NewResourceResponse(resource), nil
}

func (s *ResourceServiceImpl) Update(db *gorm.DB, resourceID string, req *dto.UpdateResourceRequest) (*dto.ResourceResponse, error) {
	resource, err := s.resourceRepo.FindByID(db, resourceID)
	if err != nil {
		if errors.Is(err, repositories.ErrResourceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		resource.Title = *req.Title
	}
	if req.Description != nil {
		resource.Description = *req.Description
	}
	if req.Type != nil {
		resource.Type = models.ResourceType(*req.Type)
	}
	if req.Source != nil {
		resource.Source = *req.Source
	}
	if req.URL != nil {
		resource.URL = *req.URL
	}
	if req.ImageURL != nil {
		resource.ImageURL = *req.ImageURL
	}
	if req.MinEducationLevel != nil {
		resource.MinEducationLevel = *req.MinEducationLevel
	}
	if req.RequiredSkills != nil {
		resource.SetRequiredSkills(req.RequiredSkills)
	}
	if req.EligibilityCriteria != nil {
		resource.EligibilityCriteria = *req.EligibilityCriteria
	}
	if req.StartDate != nil {
		resource.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		resource.EndDate = req.EndDate
	}
	if req.Location != nil {
		resource.Location = *req.Location
	}
	if req.IsActive != nil {
		resource.IsActive = *req.IsActive
	}

	if err := s.resourceRepo.Update(db, resource); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewResourceResponse(resource), nil
}

func (s *ResourceServiceImpl) Get(db *gorm.DB, resourceID string) (*dto.ResourceResponse, error) {
	resource, err := s.resourceRepo.FindByID(db, resourceID)
	if err != nil {
		if errors.Is(err, repositories.ErrResourceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewResourceResponse(resource), nil
}

// GetForUser is the authenticated read path: it additionally records a
// view event for the analytics counters.
func (s *ResourceServiceImpl) GetForUser(db *gorm.DB, resourceID, userID string) (*dto.ResourceResponse, error) {
	resp, err := s.Get(db, resourceID)
	if err != nil {
		return nil, err
	}

	activity := &models.UserActivity{
		UserID:       userID,
		ActivityType: models.ActivityTypeResourceView,
		EntityType:   "resource",
		EntityID:     resourceID,
	}
	if err := s.activityRepo.Create(db, activity); err != nil {
		logger.Warn("resource view not recorded", "resource_id", resourceID, "error", err)
	}
	return resp, nil
}

func (s *ResourceServiceImpl) Search(db *gorm.DB, criteria repositories.ResourceSearchCriteria) ([]*dto.ResourceResponse, int64, error) {
	resources, total, err := s.resourceRepo.Search(db, criteria)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return dto.NewResourceResponseList(resources), total, nil
}

// Deactivate soft-removes a resource from public listings and from the
// recommendation pool.
func (s *ResourceServiceImpl) Deactivate(db *gorm.DB, resourceID string) error {
	resource, err := s.resourceRepo.FindByID(db, resourceID)
	if err != nil {
		if errors.Is(err, repositories.ErrResourceNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	resource.IsActive = false
	if err := s.resourceRepo.Update(db, resource); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
