package services

import (
	"context"
	"errors"

	"civicmatch_backend/internal/auth"
	"civicmatch_backend/internal/logger"
	"civicmatch_backend/internal/models"
	"civicmatch_backend/internal/repositories"
	"civicmatch_backend/internal/services/dto"
	"civicmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GoogleLogin(ctx context.Context, db *gorm.DB, req *dto.GoogleLoginRequest) (*dto.LoginResponse, error)
	GoogleAuthURL(state string) string
	GoogleCallback(ctx context.Context, db *gorm.DB, code string) (*dto.LoginResponse, error)
	ChangePassword(db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error
}

type AuthServiceImpl struct {
	userRepo     repositories.UserRepository
	activityRepo repositories.ActivityRepository
	verifier     GoogleVerifier
}

func NewAuthService(
	userRepo repositories.UserRepository,
	activityRepo repositories.ActivityRepository,
	verifier GoogleVerifier,
) AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		verifier:     verifier,
	}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Role:         models.UserRoleUser,
		IsActive:     true,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return dto.NewUserResponse(user), nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	return s.issueSession(db, user)
}

// GoogleLogin signs a user in with a Google-issued ID token. Unknown emails
// get an account created on the spot, already marked verified.
func (s *AuthServiceImpl) GoogleLogin(ctx context.Context, db *gorm.DB, req *dto.GoogleLoginRequest) (*dto.LoginResponse, error) {
	info, err := s.verifier.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		logger.Warn("google id-token rejected", "error", err)
		return nil, apperrors.ErrUpstreamRejected("google token verification failed")
	}
	return s.loginFederated(db, info)
}

func (s *AuthServiceImpl) GoogleAuthURL(state string) string {
	return s.verifier.AuthCodeURL(state)
}

func (s *AuthServiceImpl) GoogleCallback(ctx context.Context, db *gorm.DB, code string) (*dto.LoginResponse, error) {
	info, err := s.verifier.ExchangeCode(ctx, code)
	if err != nil {
		logger.Warn("google code exchange failed", "error", err)
		return nil, apperrors.ErrUpstreamRejected("google authorization failed")
	}
	return s.loginFederated(db, info)
}

func (s *AuthServiceImpl) loginFederated(db *gorm.DB, info *GoogleUserInfo) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, info.Email)
	if err != nil {
		if !errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.InternalError(err)
		}
		user = &models.User{
			Email:      info.Email,
			FullName:   info.Name,
			Role:       models.UserRoleUser,
			IsActive:   true,
			IsVerified: true,
		}
		if err := s.userRepo.Create(db, user); err != nil {
			return nil, apperrors.InternalError(err)
		}
		logger.Info("user provisioned via google", "user_id", user.ID)
	}

	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}
	return s.issueSession(db, user)
}

func (s *AuthServiceImpl) issueSession(db *gorm.DB, user *models.User) (*dto.LoginResponse, error) {
	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	activity := &models.UserActivity{
		UserID:       user.ID,
		ActivityType: models.ActivityTypeLogin,
	}
	if err := s.activityRepo.Create(db, activity); err != nil {
		// a failed audit row should not block the login itself
		logger.Warn("login activity not recorded", "user_id", user.ID, "error", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.NewUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.Update(db, userID, map[string]interface{}{"password_hash": hash}); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
