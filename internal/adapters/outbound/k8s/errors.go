package k8s

import (
	"errors"
	"fmt"
)

var ErrNoServicePorts = errors.New("service exposes no ports")

// NotFoundError represents a missing object; callers treat it as "absent"
// rather than as a failure.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *NotFoundError) IsNotFound() {}
