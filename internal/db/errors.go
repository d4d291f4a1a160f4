package db

import (
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError indicates the target row does not exist
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}
