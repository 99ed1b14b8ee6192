package cmd

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/gsread/internal/config"
	"github.com/dbsmedya/gsread/internal/present"
)

func TestMissingDomain_NoNetworkCall(t *testing.T) {
	commands := [][]string{
		{"ping"},
		{"company", "--company-id", "c1"},
		{"contacts", "--company-id", "c1"},
		{"timeline", "--user-email", "csm@example.com"},
		{"dashboard", "--user-email", "csm@example.com"},
	}

	for _, args := range commands {
		t.Run(args[0], func(t *testing.T) {
			api, _ := newFakeAPI(t)
			setGainsightEnv(t, "")

			out, err := executeCommand(t, args...)
			require.Error(t, err)

			var verrs config.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, "api.domain", verrs[0].Field)
			assert.Contains(t, err.Error(), "GAINSIGHT_DOMAIN")

			assert.Equal(t, 0, api.hitCount())
			assert.Empty(t, out)
		})
	}
}

func TestMissingAccessKey(t *testing.T) {
	api, server := newFakeAPI(t)
	setGainsightEnv(t, server.URL)
	t.Setenv("GAINSIGHT_ACCESS_KEY", "")

	_, err := executeCommand(t, "company", "--company-id", "c1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GAINSIGHT_ACCESS_KEY")
	assert.Equal(t, 0, api.hitCount())
}

func TestCompany_MissingID(t *testing.T) {
	api, server := newFakeAPI(t)
	setGainsightEnv(t, server.URL)

	out, err := executeCommand(t, "company")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--company-id")
	assert.Empty(t, out)
	assert.Equal(t, 0, api.hitCount())
}

func TestCompany_Success(t *testing.T) {
	api, server := newFakeAPI(t)
	api.bodies["/v1/data/objects/query/Company"] =
		`{"result":true,"data":{"records":[{"Gsid":"c1","Name":"Acme","Industry":"Rockets"}]}}`
	setGainsightEnv(t, server.URL+"/")

	out, err := executeCommand(t, "company", "--company-id", "c1")
	require.NoError(t, err)

	assert.Contains(t, out, "🏢 Company Name Lookup (READ-ONLY)")
	assert.Contains(t, out, "🔍 Looking up company with ID: c1")
	assert.Contains(t, out, "📊 Name: Acme")
	assert.Contains(t, out, "🏭 Industry: Rockets")
	assert.Contains(t, out, "✅ Company lookup completed!")
	assert.Contains(t, out, present.ReadOnlyNotice)
	assert.Equal(t, []string{"/v1/data/objects/query/Company"}, api.paths())
}

func TestCompany_IDFromEnvironment(t *testing.T) {
	api, server := newFakeAPI(t)
	setGainsightEnv(t, server.URL)
	t.Setenv("GAINSIGHT_COMPANY_ID", "env-company")

	out, err := executeCommand(t, "company")
	require.NoError(t, err)
	assert.Contains(t, out, "Target Company ID: env-company")
	assert.Contains(t, out, "No company found with that ID")
	assert.Equal(t, 1, api.hitCount())
}

func TestCompany_HTTP404PrintsFailureAndSucceeds(t *testing.T) {
	api, server := newFakeAPI(t)
	api.status["/v1/data/objects/query/Company"] = http.StatusNotFound
	setGainsightEnv(t, server.URL)

	out, err := executeCommand(t, "company", "--company-id", "c1")
	require.NoError(t, err)

	assert.Contains(t, out, "❌ HTTP 404: {\"message\":\"not found\"}")
	assert.Contains(t, out, "❌ Company lookup failed")
	assert.Contains(t, out, "💡 Possible reasons:")
	assert.Contains(t, out, present.ReadOnlyNotice)
	assert.NotContains(t, out, "Company lookup completed")
}

func TestCompany_ConnectionRefused(t *testing.T) {
	_, server := newFakeAPI(t)
	url := server.URL
	server.Close()
	setGainsightEnv(t, url)

	out, err := executeCommand(t, "company", "--company-id", "c1", "--timeout", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "❌ Request error:")
	assert.Contains(t, out, present.ReadOnlyNotice)
}
