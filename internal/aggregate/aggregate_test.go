package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/gsread/internal/types"
)

const emailField = "Person_ID__gr.Email"

func contacts(emails ...interface{}) []types.Record {
	records := make([]types.Record, 0, len(emails))
	for _, e := range emails {
		records = append(records, types.Record{emailField: e})
	}
	return records
}

func TestCount_EmailDomains(t *testing.T) {
	counts := Count(contacts("x@a.com", "y@a.com", "z@b.com"), EmailDomain(emailField))

	assert.Equal(t, map[string]int{"a.com": 2, "b.com": 1}, counts.Map())

	top, ok := counts.Top()
	require.True(t, ok)
	assert.Equal(t, "a.com", top)
}

func TestEmailDomain_LowercasesAndSkips(t *testing.T) {
	records := contacts("Ann@ACME.com", "bob@acme.COM", "no-at-sign", "", nil)
	records = append(records, types.Record{"Other": "x@y.com"})

	counts := Count(records, EmailDomain(emailField))

	assert.Equal(t, map[string]int{"acme.com": 2}, counts.Map())
}

func TestEmailDomain_StopsAtSecondAt(t *testing.T) {
	counts := Count(contacts("x@B.com@evil", "y@b.com"), EmailDomain(emailField))

	assert.Equal(t, map[string]int{"b.com": 2}, counts.Map())
	assert.Equal(t, []Entry{{Key: "b.com", Count: 2}}, counts.MostCommon())
}

func TestMostCommon_TiesKeepFirstSeenOrder(t *testing.T) {
	counts := Count(contacts("a@z.com", "b@y.com", "c@x.com", "d@y.com", "e@x.com"), EmailDomain(emailField))

	assert.Equal(t, []Entry{
		{Key: "y.com", Count: 2},
		{Key: "x.com", Count: 2},
		{Key: "z.com", Count: 1},
	}, counts.MostCommon())

	top, _ := counts.Top()
	assert.Equal(t, "y.com", top)
}

func TestCounts_Empty(t *testing.T) {
	counts := Count(nil, EmailDomain(emailField))

	assert.Equal(t, 0, counts.Len())
	assert.Empty(t, counts.MostCommon())
	assert.Empty(t, counts.Map())

	_, ok := counts.Top()
	assert.False(t, ok)
}

func TestCounts_Add(t *testing.T) {
	c := NewCounts()
	c.Add("second")
	c.Add("first")
	c.Add("second")
	c.Add("first")

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []Entry{{Key: "second", Count: 2}, {Key: "first", Count: 2}}, c.MostCommon())
}

func TestCount_CustomExtractor(t *testing.T) {
	records := []types.Record{
		{"contextname": "Company"},
		{"contextname": "Relationship"},
		{"contextname": "Company"},
	}
	byContext := func(r types.Record) (string, bool) { return r.String("contextname") }

	counts := Count(records, byContext)
	assert.Equal(t, map[string]int{"Company": 2, "Relationship": 1}, counts.Map())
}

func TestUniqueValues(t *testing.T) {
	records := []types.Record{
		{"GsCompanyId": "c1"},
		{"GsCompanyId": "c2"},
		{"GsCompanyId": "c1"},
		{"GsCompanyId": nil},
		{"GsCompanyId": ""},
		{},
		{"GsCompanyId": "c3"},
	}

	assert.Equal(t, []string{"c1", "c2", "c3"}, UniqueValues(records, "GsCompanyId"))
	assert.Empty(t, UniqueValues(nil, "GsCompanyId"))
}
