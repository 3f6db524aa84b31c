package services

import (
	"context"
	"errors"
	"testing"

	"civicmatch_backend/internal/config"
	"civicmatch_backend/internal/models"
	"civicmatch_backend/internal/repositories"
	"civicmatch_backend/internal/services/dto"
	"civicmatch_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeVerifier struct {
	info *GoogleUserInfo
	err  error
}

func (f *fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (*GoogleUserInfo, error) {
	return f.info, f.err
}

func (f *fakeVerifier) AuthCodeURL(state string) string { return "https://accounts.test/auth" }

func (f *fakeVerifier) ExchangeCode(ctx context.Context, code string) (*GoogleUserInfo, error) {
	return f.info, f.err
}

func newAuthTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.UserActivity{}))

	cfg := &config.Config{}
	cfg.JWT.Secret = "auth-service-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	return db
}

func newAuthTestService(verifier GoogleVerifier) AuthService {
	return NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewActivityRepository(),
		verifier,
	)
}

func TestGoogleLogin_ProvisionsNewUser(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthTestService(&fakeVerifier{
		info: &GoogleUserInfo{Email: "new@gmail.test", Name: "New Person"},
	})

	resp, err := svc.GoogleLogin(context.Background(), db, &dto.GoogleLoginRequest{IDToken: "token"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "new@gmail.test", resp.User.Email)
	assert.True(t, resp.User.IsVerified)

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "new@gmail.test").Error)
	assert.Equal(t, models.UserRoleUser, user.Role)
}

func TestGoogleLogin_ReusesExistingAccount(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthTestService(&fakeVerifier{
		info: &GoogleUserInfo{Email: "known@gmail.test", Name: "Known Person"},
	})

	existing := &models.User{
		Email:    "known@gmail.test",
		FullName: "Known Person",
		Role:     models.UserRoleVerifier,
		IsActive: true,
	}
	require.NoError(t, db.Create(existing).Error)

	resp, err := svc.GoogleLogin(context.Background(), db, &dto.GoogleLoginRequest{IDToken: "token"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, resp.User.ID)
	assert.Equal(t, models.UserRoleVerifier, resp.User.Role)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGoogleLogin_RejectedUpstream(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthTestService(&fakeVerifier{err: errors.New("audience mismatch")})

	_, err := svc.GoogleLogin(context.Background(), db, &dto.GoogleLoginRequest{IDToken: "token"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPCode)
}

func TestGoogleLogin_InactiveAccountBlocked(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthTestService(&fakeVerifier{
		info: &GoogleUserInfo{Email: "frozen@gmail.test", Name: "Frozen"},
	})

	frozen := &models.User{
		Email:    "frozen@gmail.test",
		FullName: "Frozen",
		Role:     models.UserRoleUser,
	}
	require.NoError(t, db.Create(frozen).Error)
	// default:true on the column, so deactivate explicitly
	require.NoError(t, db.Model(frozen).Update("is_active", false).Error)

	_, err := svc.GoogleLogin(context.Background(), db, &dto.GoogleLoginRequest{IDToken: "token"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
}
