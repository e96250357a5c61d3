package domain

import (
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Task is a unit of work attached to a contract.
type Task struct {
	ID            uuid.UUID
	Title         string
	Description   *string
	Type          TaskType
	Category      TaskCategory
	Status        TaskStatus
	Priority      Priority
	DueDate       *time.Time
	CompletedDate *time.Time
	Metadata      map[string]any
	ContractID    uuid.UUID
	AssignedTo    *uuid.UUID
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAssignedTo reports whether userID is the current assignee.
func (t Task) IsAssignedTo(userID uuid.UUID) bool {
	return t.AssignedTo != nil && *t.AssignedTo == userID
}

// CanBeEditedBy reports whether the actor may update or delete the task:
// the current assignee, or an admin or legal user.
func (t Task) CanBeEditedBy(actor Actor) bool {
	return actor.Role.CanManageContracts() || t.IsAssignedTo(actor.ID)
}

// TaskPatch holds optional task updates. nil means "don't change".
type TaskPatch struct {
	Title       *string
	Description *string
	Type        *TaskType
	Status      *TaskStatus
	Priority    *Priority
	DueDate     *time.Time
	Metadata    map[string]any
	AssignedTo  *uuid.UUID
}

// Apply merges the patch over t and returns the result.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		d := *p.Description
		t.Description = &d
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		d := *p.DueDate
		t.DueDate = &d
	}
	if p.Metadata != nil {
		t.Metadata = p.Metadata
	}
	if p.AssignedTo != nil {
		id := *p.AssignedTo
		t.AssignedTo = &id
	}
	return t
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Type == nil && p.Status == nil &&
		p.Priority == nil && p.DueDate == nil && p.Metadata == nil && p.AssignedTo == nil
}

// ---------------------------------------------------------------------------
// Category gate
// ---------------------------------------------------------------------------

// TaskCategory decides which role a task's assignee must hold.
type TaskCategory string

const (
	TaskCategoryGeneral TaskCategory = "general"
	TaskCategoryLegal   TaskCategory = "legal"
	TaskCategoryFinance TaskCategory = "finance"
	TaskCategoryHR      TaskCategory = "hr"
)

func (c TaskCategory) String() string { return string(c) }

func (c TaskCategory) IsValid() bool {
	switch c {
	case TaskCategoryGeneral, TaskCategoryLegal, TaskCategoryFinance, TaskCategoryHR:
		return true
	}
	return false
}

// RequiredRole returns the role an assignee must hold, or false when any
// role is acceptable.
func (c TaskCategory) RequiredRole() (Role, bool) {
	switch c {
	case TaskCategoryLegal:
		return RoleLegal, true
	case TaskCategoryFinance:
		return RoleFinance, true
	case TaskCategoryHR:
		return RoleHR, true
	}
	return "", false
}

// AllowsAssignee reports whether a user with the given role may be assigned.
func (c TaskCategory) AllowsAssignee(role Role) bool {
	required, gated := c.RequiredRole()
	return !gated || role == required
}

var categoryKeywords = map[string]TaskCategory{
	"legal":   TaskCategoryLegal,
	"finance": TaskCategoryFinance,
	"hr":      TaskCategoryHR,
}

// MatchTaskCategories returns the gated categories named by whole words in
// the title, in order of first appearance. "Legal review" matches legal;
// "paralegal notes" matches nothing.
func MatchTaskCategories(title string) []TaskCategory {
	words := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var matched []TaskCategory
	for _, w := range words {
		cat, ok := categoryKeywords[w]
		if ok && !slices.Contains(matched, cat) {
			matched = append(matched, cat)
		}
	}
	return matched
}

// DeriveTaskCategory infers a category from the title. A title naming more
// than one category is ambiguous and must carry an explicit category.
func DeriveTaskCategory(title string) (TaskCategory, error) {
	matched := MatchTaskCategories(title)
	switch len(matched) {
	case 0:
		return TaskCategoryGeneral, nil
	case 1:
		return matched[0], nil
	}
	return "", NewValidationError("category", "title matches several categories, set category explicitly")
}

// ---------------------------------------------------------------------------
// Dependencies
// ---------------------------------------------------------------------------

// TaskDependency is a directed edge: TaskID depends on DependsOnID.
type TaskDependency struct {
	TaskID      uuid.UUID
	DependsOnID uuid.UUID
	CreatedAt   time.Time
}

// DependencyGraph is an adjacency list keyed by dependent task.
type DependencyGraph map[uuid.UUID][]uuid.UUID

// NewDependencyGraph builds a graph from edges.
func NewDependencyGraph(edges []TaskDependency) DependencyGraph {
	g := make(DependencyGraph, len(edges))
	for _, e := range edges {
		g[e.TaskID] = append(g[e.TaskID], e.DependsOnID)
	}
	return g
}

// WouldCycle reports whether adding the edge from -> to closes a cycle,
// i.e. whether from is already reachable from to.
func (g DependencyGraph) WouldCycle(from, to uuid.UUID) bool {
	if from == to {
		return true
	}
	seen := make(map[uuid.UUID]bool)
	stack := []uuid.UUID{to}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == from {
			return true
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		stack = append(stack, g[n]...)
	}
	return false
}
