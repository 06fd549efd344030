package assignment

import (
	"time"

	"github.com/abdelrhmanQ/shc2/core"
)

// Due-date filters.
const (
	FilterAll      = "all"
	FilterUpcoming = "upcoming"
	FilterOverdue  = "overdue"
)

type Assignment struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	DueDate     time.Time `json:"due_date" bson:"due_date"`
	AuthorEmail string    `json:"author_email" bson:"author_email"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"` // UTC
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`   // store-assigned
}

// Overdue is evaluated at render time, never cached, so the status can flip
// between renders without explicit invalidation.
func (a Assignment) Overdue(now time.Time) bool {
	return a.DueDate.Before(now)
}

// NewAssignment contains the fields required to post an assignment.
type NewAssignment struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	DueDate     time.Time `json:"due_date" validate:"required"`
}

func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)
	return core.Validate.Struct(na)
}

// Query narrows a listing. Zero value returns the whole collection.
type Query struct {
	Search string // case-insensitive substring match on title+description
	Filter string // all | upcoming | overdue
}

// ListResult distinguishes an empty collection from an empty match set so
// renderers can show the right "no results" state.
type ListResult struct {
	Items []Assignment `json:"items"`
	Total int          `json:"total"` // collection size before search/filter
}
