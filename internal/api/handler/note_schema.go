package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type noteItemRequest struct {
	Checked *bool  `json:"checked"`
	Body    string `json:"body"  validate:"required"`
	Order   *int   `json:"order"`
}

type createNoteRequest struct {
	Title string            `json:"title" validate:"required"`
	Type  string            `json:"type"  validate:"required,oneof=note checklist"`
	Body  *string           `json:"body"`
	Items []noteItemRequest `json:"items" validate:"omitempty,dive"`
	Tags  []string          `json:"tags"`
}

// updateNoteRequest is a sparse patch: absent fields are left untouched.
// A present-but-empty items array wipes the item set.
type updateNoteRequest struct {
	Title *string            `json:"title"`
	Type  *string            `json:"type" validate:"omitempty,oneof=note checklist"`
	Body  *string            `json:"body"`
	Items *[]noteItemRequest `json:"items" validate:"omitempty,dive"`
	Tags  *[]string          `json:"tags"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type noteItemResponse struct {
	Checked bool   `json:"checked"`
	Body    string `json:"body"`
	Order   int    `json:"order"`
}

type noteResponse struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	Title      string             `json:"title"`
	Type       string             `json:"type"`
	Body       *string            `json:"body,omitempty"`
	Items      []noteItemResponse `json:"items,omitempty"`
	Tags       []string           `json:"tags"`
	CreatedAt  time.Time          `json:"created_at"`
	ModifiedAt time.Time          `json:"modified_at"`
	DeletedAt  *time.Time         `json:"deleted_at,omitempty"`
}

type listNotesResponse struct {
	Notes []noteResponse `json:"notes"`
	Total int            `json:"total"`
}

type noteStatsResponse struct {
	Total      int64 `json:"total"`
	Notes      int64 `json:"notes"`
	Checklists int64 `json:"checklists"`
	Deleted    int64 `json:"deleted"`
}

type tagsResponse struct {
	Tags []string `json:"tags"`
}
