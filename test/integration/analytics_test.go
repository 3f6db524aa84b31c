package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"civicmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalytics_ActivityCounts(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	userToken, _ := helpers.CreateAndLoginCitizen(t, ts)

	uploadDocument(t, ts, userToken)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/analytics/activity", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Activity map[string]int64 `json:"activity"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	// two logins (admin and citizen) plus one upload
	assert.Equal(t, int64(2), resp.Activity["login"])
	assert.Equal(t, int64(1), resp.Activity["document_upload"])
}

func TestAnalytics_ForbiddenForNonAdmin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	verifierToken, _ := helpers.CreateAndLoginVerifier(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/analytics/activity", verifierToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestOwnActivityFeed(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginCitizen(t, ts)
	uploadDocument(t, ts, token)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/users/me/activity", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Activities []struct {
			ActivityType string `json:"activity_type"`
		} `json:"activities"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Len(t, resp.Activities, 2)
}
