package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// NoteType discriminates the two payload shapes a note can take.
type NoteType string

const (
	TypeNote      NoteType = "note"
	TypeChecklist NoteType = "checklist"
)

// Valid reports whether t is one of the known note types.
func (t NoteType) Valid() bool {
	return t == TypeNote || t == TypeChecklist
}

var ErrValidation = errors.New("validation failed")
var ErrNoteNotFound = errors.New("note not found")
var ErrForbidden = errors.New("access forbidden")

// ErrNoteNotDeleted is returned by restore when the note is still active.
// It is a validation failure, not a lookup failure.
var ErrNoteNotDeleted = fmt.Errorf("%w: note is not deleted", ErrValidation)

// NoteItem is a single entry of a checklist. Items live and die with their
// owning note; there is no standalone item operation.
type NoteItem struct {
	Checked bool   `json:"checked" bson:"checked"`
	Body    string `json:"body" bson:"body"`
	Order   int    `json:"order" bson:"order"`
}

// Note is the core aggregate root. Exactly one of {Body, Items} is the
// active payload for the current Type: a "note" carries a body and no items,
// a "checklist" carries items and no body.
type Note struct {
	ID         string     `json:"id" bson:"_id,omitempty"`
	UserID     string     `json:"user_id" bson:"user_id"`
	Title      string     `json:"title" bson:"title"`
	Type       NoteType   `json:"type" bson:"type"`
	Body       *string    `json:"body,omitempty" bson:"body,omitempty"`
	Items      []NoteItem `json:"items,omitempty" bson:"items,omitempty"`
	Tags       []string   `json:"tags" bson:"tags"`
	CreatedAt  time.Time  `json:"created_at" bson:"created_at"`
	ModifiedAt time.Time  `json:"modified_at" bson:"modified_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" bson:"deleted_at,omitempty"`
}

// IsDeleted reports whether the note is currently soft-deleted.
func (n *Note) IsDeleted() bool {
	return n.DeletedAt != nil
}

// SortItems orders the item slice ascending by Order for display.
// The sort is stable so items sharing an order keep their insertion order.
func (n *Note) SortItems() {
	sort.SliceStable(n.Items, func(i, j int) bool {
		return n.Items[i].Order < n.Items[j].Order
	})
}

// ItemInput carries one checklist item as supplied by the caller. Checked and
// Order are optional: Checked defaults to false, Order to the array position.
type ItemInput struct {
	Checked *bool
	Body    string
	Order   *int
}

// BuildItems applies the creation defaults to a caller-supplied item list.
func BuildItems(inputs []ItemInput) []NoteItem {
	items := make([]NoteItem, len(inputs))
	for i, in := range inputs {
		item := NoteItem{Body: in.Body, Order: i}
		if in.Checked != nil {
			item.Checked = *in.Checked
		}
		if in.Order != nil {
			item.Order = *in.Order
		}
		items[i] = item
	}
	return items
}

// NewNote validates the typed constructor rules and builds a fresh note.
// A "note" requires a non-empty body; a "checklist" requires at least one
// item. Body is persisted only for the "note" type; tags default to an empty
// list.
func NewNote(userID, title string, noteType NoteType, body *string, items []ItemInput, tags []string, now time.Time) (*Note, error) {
	if !noteType.Valid() {
		return nil, fmt.Errorf("%w: invalid note type %q", ErrValidation, noteType)
	}
	if noteType == TypeNote && (body == nil || *body == "") {
		return nil, fmt.Errorf("%w: body is required for note type", ErrValidation)
	}
	if noteType == TypeChecklist && len(items) == 0 {
		return nil, fmt.Errorf("%w: items are required for checklist type", ErrValidation)
	}

	n := &Note{
		UserID:     userID,
		Title:      title,
		Type:       noteType,
		Tags:       tags,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	if noteType == TypeNote {
		n.Body = body
	} else {
		n.Items = BuildItems(items)
	}
	return n, nil
}

// NotePatch is a sparse update: nil fields are left untouched. A non-nil
// Items pointer replaces the entire item set, even when the slice is empty.
type NotePatch struct {
	Title *string
	Type  *NoteType
	Body  *string
	Items *[]ItemInput
	Tags  *[]string
}

// ApplyPatch validates and applies p to the note in place, stamping
// ModifiedAt. Changing the type re-validates as if creating fresh in the new
// type: switching to "note" requires a body in the same patch (the stored
// body does not satisfy this), switching to "checklist" requires a non-empty
// item list in the same patch.
func (n *Note) ApplyPatch(p NotePatch, now time.Time) error {
	if p.Type != nil && !p.Type.Valid() {
		return fmt.Errorf("%w: invalid note type %q", ErrValidation, *p.Type)
	}
	if p.Type != nil && *p.Type != n.Type {
		if *p.Type == TypeNote && (p.Body == nil || *p.Body == "") {
			return fmt.Errorf("%w: body is required when changing to note type", ErrValidation)
		}
		if *p.Type == TypeChecklist && (p.Items == nil || len(*p.Items) == 0) {
			return fmt.Errorf("%w: items are required when changing to checklist type", ErrValidation)
		}
	}

	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Type != nil {
		n.Type = *p.Type
	}
	if p.Body != nil {
		n.Body = p.Body
	}
	if p.Tags != nil {
		n.Tags = *p.Tags
	}
	if p.Items != nil {
		n.Items = BuildItems(*p.Items)
	}

	n.ModifiedAt = now
	return nil
}
