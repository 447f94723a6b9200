package ports

import (
	"context"
	"time"

	"github.com/notable/notes-api/internal/core/domain"
)

// ListNotesFilter carries the query parameters for listing notes. UserID is
// always enforced by the service layer; the remaining predicates are a
// conjunction of optional filters.
type ListNotesFilter struct {
	UserID         string
	Type           domain.NoteType // optional: exact type match
	Tag            string          // optional: note's tag set contains the value
	Search         string          // optional: case-insensitive substring on title or body
	IncludeDeleted bool            // default false: soft-deleted notes excluded
}

// NoteRepository defines persistence operations for notes. Lookups by id
// always include soft-deleted rows; list and count operations scope deleted
// rows out unless explicitly told otherwise.
type NoteRepository interface {
	// Create inserts a new note and assigns its ID.
	Create(ctx context.Context, n *domain.Note) error
	// FindByID retrieves a note by id, soft-deleted or not.
	FindByID(ctx context.Context, id string) (*domain.Note, error)
	// List returns the notes matching filter, most-recently-modified first,
	// each with items ordered ascending.
	List(ctx context.Context, filter ListNotesFilter) ([]*domain.Note, error)
	// Update persists the full mutable state of the note, including the item
	// set, as a single atomic write.
	Update(ctx context.Context, n *domain.Note) error
	// SetDeletedAt stamps (soft delete) or clears (restore) the deletion
	// marker.
	SetDeletedAt(ctx context.Context, id string, deletedAt *time.Time) error
	// Delete permanently removes the note and its items.
	Delete(ctx context.Context, id string) error
	// Count counts the user's notes, optionally narrowed to one type
	// (empty noteType counts all) and optionally including soft-deleted rows.
	Count(ctx context.Context, userID string, noteType domain.NoteType, includeDeleted bool) (int64, error)
	// ListTags returns the raw tag lists of the user's active notes.
	ListTags(ctx context.Context, userID string) ([][]string, error)
}
