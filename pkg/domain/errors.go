package domain

import "fmt"

// NotFoundError indicates a referenced record does not exist. It is surfaced
// to the immediate caller and never retried.
type NotFoundError struct {
	Kind string // "website", "scan", "user"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// NotFound builds a NotFoundError for the given record kind and id
func NotFound(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}
