package entities

import "fmt"

// ProcessorError is a failure reported by the processor itself: a non-2xx
// answer carrying the processor's structured {name, message} payload.
type ProcessorError struct {
	StatusCode int
	Name       string
	Message    string
	Data       []byte
}

func (e *ProcessorError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("processor error %d: %s", e.StatusCode, e.Name)
	}
	return fmt.Sprintf("processor error %d: %s: %s", e.StatusCode, e.Name, e.Message)
}
