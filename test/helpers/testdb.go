package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"civicmatch_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the password if a raw one was given.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && user.PasswordHash[0] != '$' {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Failed to hash test password: %v", err)
		}
		user.PasswordHash = string(hashed)
	}

	if user.Role == "" {
		user.Role = models.UserRoleUser
	}
	user.IsActive = true

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("Failed to create user %s: %v", user.Email, result.Error)
		return result.Error
	}
	return nil
}

// CreateAndLoginUser creates a user and logs in through the API,
// returning the bearer token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		FullName:     name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	err := CreateUser(t, ts.DB, user)
	assert.NoError(t, err, "Creating a test user must succeed")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Login must succeed. Response: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Login response must be valid JSON")
	assert.NotEmpty(t, loginResponse.Token, "Token must not be empty")

	return loginResponse.Token, user
}

// CreateAndLoginAdmin creates an administrator with a unique email.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("admin_%d@test.local", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Admin", email, "password123", models.UserRoleAdmin)
}

// CreateAndLoginVerifier creates a verifier with a unique email.
func CreateAndLoginVerifier(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("verifier_%d@test.local", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Verifier", email, "password123", models.UserRoleVerifier)
}

// CreateAndLoginCitizen creates a regular user with a unique email.
func CreateAndLoginCitizen(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("citizen_%d@test.local", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Citizen", email, "password123", models.UserRoleUser)
}

// CreateTestResource inserts an active resource with a backdated
// creation time so pool ordering stays deterministic.
func CreateTestResource(t *testing.T, db *gorm.DB, title, description string, age time.Duration) *models.Resource {
	res := &models.Resource{
		Title:       title,
		Description: description,
		Type:        models.ResourceTypeJob,
		URL:         "https://example.gov/resources",
		IsActive:    true,
	}
	res.CreatedAt = time.Now().Add(-age)
	if err := db.Create(res).Error; err != nil {
		t.Fatalf("Failed to create test resource: %v", err)
	}
	return res
}
