package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskFilter narrows task reads. At most one of the ids is usually set.
type TaskFilter struct {
	ContractID *uuid.UUID
	AssignedTo *uuid.UUID
	Status     *TaskStatus
	DueBefore  *time.Time
}
