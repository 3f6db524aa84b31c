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

type educationPayload struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id"`
	DegreeName      string   `json:"degree_name"`
	DegreeMarks     *float64 `json:"degree_marks"`
	Specialization  string   `json:"specialization"`
	AreasOfInterest string   `json:"areas_of_interest"`
	PUStream        string   `json:"pu_stream"`
}

func TestGetEducation_EmptyBeforeFirstWrite(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateAndLoginCitizen(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/users/me/education", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var edu educationPayload
	require.NoError(t, json.Unmarshal([]byte(body), &edu))
	assert.Equal(t, user.ID, edu.UserID)
	assert.Empty(t, edu.DegreeName)

	// reading must not create a row
	var count int64
	ts.DB.Model(&models.EducationProfile{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpsertEducation_CreatesOnFirstWrite(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateAndLoginCitizen(t, ts)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/users/me/education", token, map[string]interface{}{
		"degree_name":       "B.Sc",
		"specialization":    "Computer Science",
		"areas_of_interest": "react, internship",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var edu educationPayload
	require.NoError(t, json.Unmarshal([]byte(body), &edu))
	assert.Equal(t, user.ID, edu.UserID)
	assert.Equal(t, "B.Sc", edu.DegreeName)
	assert.Equal(t, "Computer Science", edu.Specialization)

	var count int64
	ts.DB.Model(&models.EducationProfile{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpsertEducation_PartialUpdateKeepsOtherFields(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginCitizen(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/users/me/education", token, map[string]interface{}{
		"degree_name":    "B.Tech",
		"specialization": "Electronics",
		"pu_stream":      "science",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// second write touches only the specialization
	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/users/me/education", token, map[string]interface{}{
		"specialization": "Embedded Systems",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var edu educationPayload
	require.NoError(t, json.Unmarshal([]byte(body), &edu))
	assert.Equal(t, "Embedded Systems", edu.Specialization)
	assert.Equal(t, "B.Tech", edu.DegreeName)
	assert.Equal(t, "science", edu.PUStream)
}

func TestUpsertEducation_RejectsMarksOutOfRange(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginCitizen(t, ts)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/users/me/education", token, map[string]interface{}{
		"degree_marks": 105.0,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/users/me/education", token, map[string]interface{}{
		"pu_marks": -3.0,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginCitizen(t, ts)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/users/me", token, map[string]interface{}{
		"employment_status": "seeking",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var user struct {
		FullName         string `json:"full_name"`
		EmploymentStatus string `json:"employment_status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &user))
	assert.Equal(t, "seeking", user.EmploymentStatus)
	assert.Equal(t, "Test Citizen", user.FullName)
}
