package query

import "regexp"

// validFieldRegex matches field names accepted by the query endpoint: an
// identifier, optionally followed by dotted lookup segments such as
// "Person_ID__gr.Email".
var validFieldRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// IsValidField checks if a name is a valid field or lookup path.
func IsValidField(name string) bool {
	return validFieldRegex.MatchString(name)
}

// InvalidFieldError is returned when a field name contains invalid characters.
type InvalidFieldError struct {
	Name string
}

func (e *InvalidFieldError) Error() string {
	return "invalid field: " + e.Name + " (must be an identifier or dotted lookup path)"
}

func checkFields(names ...string) error {
	for _, name := range names {
		if !IsValidField(name) {
			return &InvalidFieldError{Name: name}
		}
	}
	return nil
}
