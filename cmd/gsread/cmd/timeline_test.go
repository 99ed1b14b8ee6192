package cmd

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/gsread/internal/present"
)

const timelineBody = `{"result":true,"data":{"records":[
	{"Gsid":"1I00ABCDEFGHIJ","ActivityDate":"2024-03-05T14:07:00Z","contextname":"Company",
	 "Subject":"Quarterly business review follow-up with the team!!","GsCompanyId":"c1"},
	{"Gsid":"1I00ZZZZZZZZZZ","CreatedDate":"2024-03-01T08:00:00Z","contextname":"Relationship",
	 "Subject":"Renewal","GsCompanyId":"c2"}
]}}`

func TestTimeline_Success(t *testing.T) {
	api, server := newFakeAPI(t)
	api.bodies["/v1/data/objects/query/activity_timeline"] = timelineBody
	setGainsightEnv(t, server.URL)

	out, err := executeCommand(t, "timeline", "--user-email", "csm@example.com", "--limit", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "🔍 Querying Timeline activities for csm@example.com (limit: 2)...")
	assert.Contains(t, out, "📊 Found 2 Timeline activities:")
	assert.Contains(t, out, "1. [2024-03-05 14:07] Company context")
	assert.Contains(t, out, "📧 Quarterly business review follow-up with the team!...")
	assert.Contains(t, out, "🆔 1I00ABCDEF...")
	assert.Contains(t, out, "2. [2024-03-01 08:00] Relationship context")
	assert.Contains(t, out, "✅ Successfully accessed Timeline API!")
	assert.NotContains(t, out, "Raw JSON")
	assert.Contains(t, out, present.ReadOnlyNotice)
}

func TestTimeline_Debug(t *testing.T) {
	api, server := newFakeAPI(t)
	api.bodies["/v1/data/objects/query/activity_timeline"] = `{"result":true,"data":[]}`
	setGainsightEnv(t, server.URL)
	t.Setenv("GAINSIGHT_USER_EMAIL", "csm@example.com")

	out, err := executeCommand(t, "timeline", "--debug")
	require.NoError(t, err)

	assert.Contains(t, out, "📝 Raw JSON:\n{\n  \"result\": true,\n  \"data\": []\n}")
	assert.Contains(t, out, "No activities found in Timeline")
}

func TestTimeline_DebugLogsGoToCommandErrWriter(t *testing.T) {
	api, server := newFakeAPI(t)
	api.bodies["/v1/data/objects/query/activity_timeline"] = timelineBody
	setGainsightEnv(t, server.URL)

	out, errOut, err := executeCommandCapture(t, "timeline", "--user-email", "csm@example.com", "--debug")
	require.NoError(t, err)

	assert.Contains(t, errOut, "api exchange")
	assert.NotContains(t, errOut, "test-key")
	assert.NotContains(t, out, "api exchange")
	assert.Contains(t, out, "Successfully accessed Timeline API!")
}

func TestTimeline_MissingEmail(t *testing.T) {
	api, server := newFakeAPI(t)
	setGainsightEnv(t, server.URL)

	_, err := executeCommand(t, "timeline")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--user-email")
	assert.Equal(t, 0, api.hitCount())
}

func TestTimeline_APIErrorPrintsFailure(t *testing.T) {
	api, server := newFakeAPI(t)
	api.bodies["/v1/data/objects/query/activity_timeline"] = `{"result":false,"errorDesc":"Timeline disabled"}`
	setGainsightEnv(t, server.URL)

	out, err := executeCommand(t, "timeline", "--user-email", "csm@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "❌ API Error: Timeline disabled")
	assert.Contains(t, out, "❌ Timeline API not accessible")
	assert.True(t, strings.HasSuffix(out, present.ReadOnlyNotice+"\n"))
}

func TestTimeline_NotFound(t *testing.T) {
	api, server := newFakeAPI(t)
	api.status["/v1/data/objects/query/activity_timeline"] = http.StatusNotFound
	setGainsightEnv(t, server.URL)

	out, err := executeCommand(t, "timeline", "--user-email", "csm@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "❌ HTTP 404")
}
