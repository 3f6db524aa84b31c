package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"civicmatch_backend/internal/models"
	"civicmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	registerBody := map[string]interface{}{
		"email":     "asha@test.local",
		"password":  "password123",
		"full_name": "Asha Verma",
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "asha@test.local", created.Email)
	assert.Equal(t, "user", created.Role)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "asha@test.local",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var login struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))
	assert.NotEmpty(t, login.AccessToken)
	assert.Equal(t, "bearer", login.TokenType)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	body := map[string]interface{}{
		"email":     "dup@test.local",
		"password":  "password123",
		"full_name": "First One",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, respBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, res.StatusCode, respBody)
}

func TestRegister_WeakPassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":     "weak@test.local",
		"password":  "short",
		"full_name": "Weak Password",
	})
	// the validator rejects passwords under the minimum length
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	helpers.CreateAndLoginCitizen(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "nobody@test.local",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
}

func TestLogin_InactiveAccount(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, user := helpers.CreateAndLoginCitizen(t, ts)
	require.NoError(t, ts.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestProtectedRoute_RequiresToken(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/users/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestChangePassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateAndLoginCitizen(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/change-password", token, map[string]interface{}{
		"current_password": "password123",
		"new_password":     "newpassword456",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// old password no longer works
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "newpassword456",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestLogin_RecordsActivity(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, user := helpers.CreateAndLoginCitizen(t, ts)

	var count int64
	ts.DB.Model(&models.UserActivity{}).
		Where("user_id = ? AND activity_type = ?", user.ID, models.ActivityTypeLogin).
		Count(&count)
	assert.Equal(t, int64(1), count)
}
