package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "Gsid", true},
		{"lowercase", "contextname", true},
		{"underscore", "Company_ID", true},
		{"lookup path", "Person_ID__gr.Email", true},
		{"nested lookup", "AuthorId__gr.Manager__gr.Email", true},
		{"empty", "", false},
		{"leading digit", "1Name", false},
		{"trailing dot", "Person_ID__gr.", false},
		{"double dot", "a..b", false},
		{"space", "First Name", false},
		{"quote", `Name"`, false},
		{"injection attempt", "Name; DROP", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidField(tt.input))
		})
	}
}

func TestInvalidFieldError(t *testing.T) {
	err := checkFields("Gsid", "bad field")
	assert.Error(t, err)

	var fieldErr *InvalidFieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "bad field", fieldErr.Name)
	assert.Contains(t, err.Error(), "invalid field: bad field")

	assert.NoError(t, checkFields("Gsid", "Name"))
}
