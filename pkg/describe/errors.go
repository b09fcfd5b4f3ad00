package describe

import "fmt"

// LoadError reports why a description could not be turned into a value.
type LoadError struct {
	// File is the path of the description, empty for Parse.
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	prefix := ""
	if e.File != "" {
		prefix = e.File + ": "
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %v", prefix, e.Message, e.Cause)
	}
	return prefix + e.Message
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Cause
}
