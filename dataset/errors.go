package dataset

import "fmt"

// MissingFieldError reports a required column absent from the input table.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("required column %q missing from input table", e.Field)
}
