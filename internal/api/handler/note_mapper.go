package handler

import (
	"github.com/notable/notes-api/internal/core/domain"
	"github.com/notable/notes-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createNoteRequest, userID string) ports.CreateNoteInput {
	return ports.CreateNoteInput{
		UserID: userID,
		Title:  req.Title,
		Type:   domain.NoteType(req.Type),
		Body:   req.Body,
		Items:  toItemInputs(req.Items),
		Tags:   req.Tags,
	}
}

func toUpdatePatch(req updateNoteRequest) ports.UpdateNotePatch {
	patch := ports.UpdateNotePatch{
		Title: req.Title,
		Body:  req.Body,
		Tags:  req.Tags,
	}
	if req.Type != nil {
		t := domain.NoteType(*req.Type)
		patch.Type = &t
	}
	if req.Items != nil {
		items := toItemInputs(*req.Items)
		patch.Items = &items
	}
	return patch
}

func toItemInputs(items []noteItemRequest) []ports.NoteItemInput {
	out := make([]ports.NoteItemInput, len(items))
	for i, item := range items {
		out[i] = ports.NoteItemInput{Checked: item.Checked, Body: item.Body, Order: item.Order}
	}
	return out
}

// --- Service result → HTTP response ---

func toNoteResponse(n *domain.Note) noteResponse {
	resp := noteResponse{
		ID:         n.ID,
		UserID:     n.UserID,
		Title:      n.Title,
		Type:       string(n.Type),
		Body:       n.Body,
		Tags:       n.Tags,
		CreatedAt:  n.CreatedAt.UTC(),
		ModifiedAt: n.ModifiedAt.UTC(),
		DeletedAt:  n.DeletedAt,
	}
	if n.Items != nil {
		resp.Items = make([]noteItemResponse, len(n.Items))
		for i, item := range n.Items {
			resp.Items[i] = noteItemResponse{Checked: item.Checked, Body: item.Body, Order: item.Order}
		}
	}
	return resp
}

func toListResponse(notes []*domain.Note) listNotesResponse {
	out := make([]noteResponse, len(notes))
	for i, n := range notes {
		out[i] = toNoteResponse(n)
	}
	return listNotesResponse{Notes: out, Total: len(out)}
}
