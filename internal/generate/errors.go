package generate

import "fmt"

// Kinds of generation failure.
const (
	KindConfig  = "config"
	KindRequest = "request"
	KindEmpty   = "empty"
)

// GenerateError describes why a thank-you message could not be produced.
// It never leaves this package; Generate maps it to a fallback string.
type GenerateError struct {
	Kind string
	Err  error
}

func (e *GenerateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("thank-you generation %s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("thank-you generation %s error", e.Kind)
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}
