package services

import (
	"errors"

	"civicmatch_backend/internal/models"
	"civicmatch_backend/internal/repositories"
	"civicmatch_backend/internal/services/dto"
	"civicmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	GetEducation(db *gorm.DB, userID string) (*dto.EducationResponse, error)
	UpsertEducation(db *gorm.DB, userID string, req *dto.UpdateEducationRequest) (*dto.EducationResponse, error)
}

type UserServiceImpl struct {
	userRepo      repositories.UserRepository
	educationRepo repositories.EducationRepository
}

func NewUserService(userRepo repositories.UserRepository, educationRepo repositories.EducationRepository) UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		educationRepo: educationRepo,
	}
}

func (s *UserServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.PhoneNumber != nil {
		fields["phone_number"] = *req.PhoneNumber
	}
	if req.EmploymentStatus != nil {
		fields["employment_status"] = *req.EmploymentStatus
	}

	if len(fields) > 0 {
		if err := s.userRepo.Update(db, userID, fields); err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
	}
	return s.GetProfile(db, userID)
}

// GetEducation returns the profile, or an empty one if the user never
// filled it in. The empty profile is not persisted.
func (s *UserServiceImpl) GetEducation(db *gorm.DB, userID string) (*dto.EducationResponse, error) {
	profile, err := s.educationRepo.FindByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrEducationProfileNotFound) {
			return dto.NewEducationResponse(&models.EducationProfile{UserID: userID}), nil
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewEducationResponse(profile), nil
}

// UpsertEducation creates the profile on first write, then applies
// partial updates: only fields present in the request change.
func (s *UserServiceImpl) UpsertEducation(db *gorm.DB, userID string, req *dto.UpdateEducationRequest) (*dto.EducationResponse, error) {
	if err := validateMarks(req); err != nil {
		return nil, err
	}

	_, err := s.educationRepo.FindByUserID(db, userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrEducationProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profile := &models.EducationProfile{UserID: userID}
		applyEducationRequest(profile, req)
		if err := s.educationRepo.Create(db, profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return dto.NewEducationResponse(profile), nil
	}

	fields := educationUpdateFields(req)
	if len(fields) > 0 {
		if err := s.educationRepo.Update(db, userID, fields); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	profile, err := s.educationRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewEducationResponse(profile), nil
}

func validateMarks(req *dto.UpdateEducationRequest) error {
	for _, marks := range []*float64{req.PUMarks, req.DegreeMarks} {
		if marks != nil && (*marks < 0 || *marks > 100) {
			return apperrors.ErrMarksOutOfRange
		}
	}
	return nil
}

func applyEducationRequest(profile *models.EducationProfile, req *dto.UpdateEducationRequest) {
	if req.PUMarks != nil {
		profile.PUMarks = req.PUMarks
	}
	if req.PUStream != nil {
		profile.PUStream = *req.PUStream
	}
	if req.PUYear != nil {
		profile.PUYear = req.PUYear
	}
	if req.DegreeName != nil {
		profile.DegreeName = *req.DegreeName
	}
	if req.DegreeMarks != nil {
		profile.DegreeMarks = req.DegreeMarks
	}
	if req.DegreeYear != nil {
		profile.DegreeYear = req.DegreeYear
	}
	if req.Specialization != nil {
		profile.Specialization = *req.Specialization
	}
	if req.University != nil {
		profile.University = *req.University
	}
	if req.AdditionalQualifications != nil {
		profile.AdditionalQualifications = *req.AdditionalQualifications
	}
	if req.AreasOfInterest != nil {
		profile.AreasOfInterest = *req.AreasOfInterest
	}
}

func educationUpdateFields(req *dto.UpdateEducationRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	if req.PUMarks != nil {
		fields["pu_marks"] = *req.PUMarks
	}
	if req.PUStream != nil {
		fields["pu_stream"] = *req.PUStream
	}
	if req.PUYear != nil {
		fields["pu_year"] = *req.PUYear
	}
	if req.DegreeName != nil {
		fields["degree_name"] = *req.DegreeName
	}
	if req.DegreeMarks != nil {
		fields["degree_marks"] = *req.DegreeMarks
	}
	if req.DegreeYear != nil {
		fields["degree_year"] = *req.DegreeYear
	}
	if req.Specialization != nil {
		fields["specialization"] = *req.Specialization
	}
	if req.University != nil {
		fields["university"] = *req.University
	}
	if req.AdditionalQualifications != nil {
		fields["additional_qualifications"] = *req.AdditionalQualifications
	}
	if req.AreasOfInterest != nil {
		fields["areas_of_interest"] = *req.AreasOfInterest
	}
	return fields
}
