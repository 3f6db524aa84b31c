package repositories

import (
	"errors"
	"strings"

	"civicmatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrResourceNotFound = errors.New("resource not found")

// ResourceSearchCriteria filters the administrative resource listing.
type ResourceSearchCriteria struct {
	Query    string              `form:"query"`
	Type     models.ResourceType `form:"type"`
	IsActive *bool               `form:"is_active"`
	Page     int                 `form:"page"`
	PageSize int                 `form:"page_size"`
}

type ResourceRepository interface {
	Create(db *gorm.DB, resource *models.Resource) error
	FindByID(db *gorm.DB, id string) (*models.Resource, error)
	Update(db *gorm.DB, resource *models.Resource) error
	// FindActive returns active resources only, capped at limit. This is the
	// candidate set for ranking; the cap is a throughput guard, not a
	// business rule.
	FindActive(db *gorm.DB, limit int) ([]models.Resource, error)
	Search(db *gorm.DB, criteria ResourceSearchCriteria) ([]models.Resource, int64, error)
}

type resourceRepository struct{}

func NewResourceRepository() ResourceRepository {
	return &resourceRepository{}
}

func (r *resourceRepository) Create(db *gorm.DB, resource *models.Resource) error {
	return db.Create(resource).Error
}

func (r *resourceRepository) FindByID(db *gorm.DB, id string) (*models.Resource, error) {
	var resource models.Resource
	err := db.First(&resource, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) Update(db *gorm.DB, resource *models.Resource) error {
	result := db.Model(resource).Updates(map[string]interface{}{
		"title":                resource.Title,
		"description":          resource.Description,
		"type":                 resource.Type,
		"source":               resource.Source,
		"url":                  resource.URL,
		"image_url":            resource.ImageURL,
		"min_education_level":  resource.MinEducationLevel,
		"required_skills":      resource.RequiredSkills,
		"eligibility_criteria": resource.EligibilityCriteria,
		"start_date":           resource.StartDate,
		"end_date":             resource.EndDate,
		"location":             resource.Location,
		"is_active":            resource.IsActive,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResourceNotFound
	}
	return nil
}

func (r *resourceRepository) FindActive(db *gorm.DB, limit int) ([]models.Resource, error) {
	var resources []models.Resource
	err := db.Where("is_active = ?", true).
		Order("created_at ASC").
		Limit(limit).
		Find(&resources).Error
	return resources, err
}

func (r *resourceRepository) Search(db *gorm.DB, criteria ResourceSearchCriteria) ([]models.Resource, int64, error) {
	var resources []models.Resource
	query := db.Model(&models.Resource{})

	if criteria.Query != "" {
		// LOWER + LIKE keeps the match case-insensitive on every dialect.
		search := "%" + strings.ToLower(criteria.Query) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", search, search)
	}
	if criteria.Type != "" {
		query = query.Where("type = ?", criteria.Type)
	}
	if criteria.IsActive != nil {
		query = query.Where("is_active = ?", *criteria.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page <= 0 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	err := query.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&resources).Error

	return resources, total, err
}
