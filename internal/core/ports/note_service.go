package ports

import (
	"context"

	"github.com/notable/notes-api/internal/core/domain"
)

// NoteItemInput carries one checklist item from the transport layer.
// Checked defaults to false and Order to the array position when omitted.
type NoteItemInput struct {
	Checked *bool
	Body    string
	Order   *int
}

// CreateNoteInput carries all data needed to create a note.
type CreateNoteInput struct {
	UserID string
	Title  string
	Type   domain.NoteType
	Body   *string
	Items  []NoteItemInput
	Tags   []string
}

// UpdateNotePatch is a sparse patch: nil fields are left untouched. A non-nil
// Items pointer replaces the entire item set atomically.
type UpdateNotePatch struct {
	Title *string
	Type  *domain.NoteType
	Body  *string
	Items *[]NoteItemInput
	Tags  *[]string
}

// NoteStats are per-owner counters. Total, Notes and Checklists cover active
// notes only; Deleted is the soft-deleted remainder.
type NoteStats struct {
	Total      int64 `json:"total"`
	Notes      int64 `json:"notes"`
	Checklists int64 `json:"checklists"`
	Deleted    int64 `json:"deleted"`
}

// NoteService defines the note lifecycle use-cases. Every operation except
// Create enforces ownership against the requester id.
type NoteService interface {
	Create(ctx context.Context, input CreateNoteInput) (*domain.Note, error)
	FindOne(ctx context.Context, id, requesterID string) (*domain.Note, error)
	FindAll(ctx context.Context, filter ListNotesFilter) ([]*domain.Note, error)
	Update(ctx context.Context, id, requesterID string, patch UpdateNotePatch) (*domain.Note, error)
	Remove(ctx context.Context, id, requesterID string) error
	HardDelete(ctx context.Context, id, requesterID string) error
	Restore(ctx context.Context, id, requesterID string) (*domain.Note, error)
	GetTags(ctx context.Context, requesterID string) ([]string, error)
	GetStats(ctx context.Context, requesterID string) (*NoteStats, error)
}
