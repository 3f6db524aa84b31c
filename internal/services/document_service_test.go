package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

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

var (
	reviewVerify         = dto.ReviewDecision{Action: "verify"}
	reviewReject         = dto.ReviewDecision{Action: "reject", Reason: "document is illegible"}
	reviewRejectNoReason = dto.ReviewDecision{Action: "reject"}
)

// fakeStorage records operations in memory and can be told to fail.
type fakeStorage struct {
	objects map[string][]byte
	deleted []string
	failAll bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	if f.failAll {
		return errors.New("storage unavailable")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.objects[path] = data
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := f.objects[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(f.objects, path)
	f.deleted = append(f.deleted, path)
	return nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := f.objects[path]
	return ok, nil
}

func (f *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/files/" + path, nil
}

func (f *fakeStorage) GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "/signed/" + path, nil
}

func (f *fakeStorage) GetSize(ctx context.Context, path string) (int64, error) {
	return int64(len(f.objects[path])), nil
}

func newDocumentTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Document{},
		&models.UserActivity{},
	))
	return db
}

func newDocumentTestService(store *fakeStorage) DocumentService {
	cfg := &config.Config{}
	cfg.Upload.MaxSize = 1024
	cfg.Upload.AllowedTypes = []string{"application/pdf", "image/jpeg", "image/png"}

	return NewDocumentService(
		repositories.NewDocumentRepository(),
		repositories.NewActivityRepository(),
		store,
		cfg,
	)
}

func newDocumentTestUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	user := &models.User{
		Email:    string(role) + "@test.local",
		FullName: "Test " + string(role),
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func uploadInput(userID string, size int64, mimeType string) *UploadInput {
	return &UploadInput{
		UserID:   userID,
		Type:     models.DocumentTypeIDProof,
		FileName: "scan.pdf",
		Size:     size,
		MimeType: mimeType,
		Reader:   bytes.NewReader(bytes.Repeat([]byte("a"), int(size))),
	}
}

func TestDocumentUpload_Succeeds(t *testing.T) {
	db := newDocumentTestDB(t)
	store := newFakeStorage()
	svc := newDocumentTestService(store)
	user := newDocumentTestUser(t, db, models.UserRoleUser)

	doc, err := svc.Upload(context.Background(), db, uploadInput(user.ID, 100, "application/pdf"))
	require.NoError(t, err)

	assert.Equal(t, string(models.DocumentStatusPending), doc.Status)
	assert.Equal(t, "scan.pdf", doc.FileName)
	assert.Len(t, store.objects, 1)

	var count int64
	db.Model(&models.Document{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDocumentUpload_RejectsUnsupportedMime(t *testing.T) {
	db := newDocumentTestDB(t)
	store := newFakeStorage()
	svc := newDocumentTestService(store)
	user := newDocumentTestUser(t, db, models.UserRoleUser)

	_, err := svc.Upload(context.Background(), db, uploadInput(user.ID, 100, "application/zip"))
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 415, appErr.HTTPCode)
	assert.Empty(t, store.objects, "nothing should reach storage")
}

func TestDocumentUpload_RejectsOversizedFile(t *testing.T) {
	db := newDocumentTestDB(t)
	store := newFakeStorage()
	svc := newDocumentTestService(store)
	user := newDocumentTestUser(t, db, models.UserRoleUser)

	_, err := svc.Upload(context.Background(), db, uploadInput(user.ID, 2048, "application/pdf"))
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 413, appErr.HTTPCode)
	assert.Empty(t, store.objects)
}

func TestDocumentUpload_CleansUpWhenRecordFails(t *testing.T) {
	db := newDocumentTestDB(t)
	store := newFakeStorage()
	svc := newDocumentTestService(store)
	user := newDocumentTestUser(t, db, models.UserRoleUser)

	// dropping the table makes the insert fail after storage succeeded
	require.NoError(t, db.Migrator().DropTable(&models.Document{}))

	_, err := svc.Upload(context.Background(), db, uploadInput(user.ID, 100, "application/pdf"))
	require.Error(t, err)

	assert.Empty(t, store.objects, "orphaned object must be deleted")
	assert.Len(t, store.deleted, 1)
}

func TestDocumentReview_Verify(t *testing.T) {
	db := newDocumentTestDB(t)
	store := newFakeStorage()
	svc := newDocumentTestService(store)
	user := newDocumentTestUser(t, db, models.UserRoleUser)
	reviewer := newDocumentTestUser(t, db, models.UserRoleVerifier)

	uploaded, err := svc.Upload(context.Background(), db, uploadInput(user.ID, 100, "application/pdf"))
	require.NoError(t, err)

	reviewed, err := svc.Review(db, uploaded.ID, reviewer.ID, &reviewVerify)
	require.NoError(t, err)

	assert.Equal(t, string(models.DocumentStatusVerified), reviewed.Status)
	require.NotNil(t, reviewed.VerifiedBy)
	assert.Equal(t, reviewer.ID, *reviewed.VerifiedBy)
	assert.NotNil(t, reviewed.VerifiedAt)
	assert.Empty(t, reviewed.RejectionReason)
}

func TestDocumentReview_RejectWithoutReason(t *testing.T) {
	db := newDocumentTestDB(t)
	store := newFakeStorage()
	svc := newDocumentTestService(store)
	user := newDocumentTestUser(t, db, models.UserRoleUser)
	reviewer := newDocumentTestUser(t, db, models.UserRoleAdmin)

	uploaded, err := svc.Upload(context.Background(), db, uploadInput(user.ID, 100, "application/pdf"))
	require.NoError(t, err)

	reviewed, err := svc.Review(db, uploaded.ID, reviewer.ID, &reviewRejectNoReason)
	require.NoError(t, err)

	assert.Equal(t, string(models.DocumentStatusRejected), reviewed.Status)
	assert.Empty(t, reviewed.RejectionReason)
	require.NotNil(t, reviewed.VerifiedBy)
	assert.Equal(t, reviewer.ID, *reviewed.VerifiedBy)
}

func TestDocumentReview_RejectStoresReason(t *testing.T) {
	db := newDocumentTestDB(t)
	store := newFakeStorage()
	svc := newDocumentTestService(store)
	user := newDocumentTestUser(t, db, models.UserRoleUser)
	reviewer := newDocumentTestUser(t, db, models.UserRoleAdmin)

	uploaded, err := svc.Upload(context.Background(), db, uploadInput(user.ID, 100, "application/pdf"))
	require.NoError(t, err)

	reviewed, err := svc.Review(db, uploaded.ID, reviewer.ID, &reviewReject)
	require.NoError(t, err)

	assert.Equal(t, string(models.DocumentStatusRejected), reviewed.Status)
	assert.Equal(t, "document is illegible", reviewed.RejectionReason)
}

func TestDocumentReview_VerdictCanBeOverridden(t *testing.T) {
	db := newDocumentTestDB(t)
	store := newFakeStorage()
	svc := newDocumentTestService(store)
	user := newDocumentTestUser(t, db, models.UserRoleUser)
	reviewer := newDocumentTestUser(t, db, models.UserRoleAdmin)

	uploaded, err := svc.Upload(context.Background(), db, uploadInput(user.ID, 100, "application/pdf"))
	require.NoError(t, err)

	_, err = svc.Review(db, uploaded.ID, reviewer.ID, &reviewReject)
	require.NoError(t, err)

	reviewed, err := svc.Review(db, uploaded.ID, reviewer.ID, &reviewVerify)
	require.NoError(t, err)
	assert.Equal(t, string(models.DocumentStatusVerified), reviewed.Status)
}

func TestDocumentReview_MissingDocument(t *testing.T) {
	db := newDocumentTestDB(t)
	svc := newDocumentTestService(newFakeStorage())
	reviewer := newDocumentTestUser(t, db, models.UserRoleAdmin)

	_, err := svc.Review(db, "1b671a64-40d5-491e-99b0-da01ff1f3341", reviewer.ID, &reviewVerify)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestDocumentDownload_OwnerAndReviewerOnly(t *testing.T) {
	db := newDocumentTestDB(t)
	store := newFakeStorage()
	svc := newDocumentTestService(store)
	owner := newDocumentTestUser(t, db, models.UserRoleUser)
	stranger := newDocumentTestUser(t, db, models.UserRoleVerifier)

	uploaded, err := svc.Upload(context.Background(), db, uploadInput(owner.ID, 100, "application/pdf"))
	require.NoError(t, err)

	url, err := svc.Download(context.Background(), db, uploaded.ID, owner.ID, false)
	require.NoError(t, err)
	assert.NotEmpty(t, url)

	_, err = svc.Download(context.Background(), db, uploaded.ID, stranger.ID, false)
	require.Error(t, err)

	url, err = svc.Download(context.Background(), db, uploaded.ID, stranger.ID, true)
	require.NoError(t, err)
	assert.NotEmpty(t, url)
}
