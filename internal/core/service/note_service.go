package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/notable/notes-api/internal/core/domain"
	"github.com/notable/notes-api/internal/core/ports"
)

// NoteService implements the note lifecycle use-cases on top of a
// NoteRepository. Ownership is enforced here on every non-create path.
type NoteService struct {
	repo   ports.NoteRepository
	logger zerolog.Logger
}

func NewNoteService(repo ports.NoteRepository, logger zerolog.Logger) *NoteService {
	return &NoteService{repo: repo, logger: logger}
}

// Create validates the typed constructor rules, persists the note and returns
// the fully hydrated view.
func (s *NoteService) Create(ctx context.Context, input ports.CreateNoteInput) (*domain.Note, error) {
	note, err := domain.NewNote(
		input.UserID,
		input.Title,
		input.Type,
		input.Body,
		toItemInputs(input.Items),
		input.Tags,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, note); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create note")
		return nil, err
	}

	s.logger.Info().
		Str("note_id", note.ID).
		Str("user_id", input.UserID).
		Str("type", string(note.Type)).
		Msg("note created")

	return s.FindOne(ctx, note.ID, input.UserID)
}

// FindOne fetches a note by id, soft-deleted or not. Existence is checked
// before ownership: a missing note is NotFound, an existing note owned by
// someone else is Forbidden.
func (s *NoteService) FindOne(ctx context.Context, id, requesterID string) (*domain.Note, error) {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note.UserID != requesterID {
		return nil, domain.ErrForbidden
	}
	return note, nil
}

// FindAll lists the requester's notes matching the filter, scoped to the
// requester regardless of what the filter says.
func (s *NoteService) FindAll(ctx context.Context, filter ports.ListNotesFilter) ([]*domain.Note, error) {
	return s.repo.List(ctx, filter)
}

// Update applies a sparse patch: load, ownership check, pure in-memory
// transform, persist. A patch carrying items replaces the entire item set in
// the same atomic write.
func (s *NoteService) Update(ctx context.Context, id, requesterID string, patch ports.UpdateNotePatch) (*domain.Note, error) {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note.UserID != requesterID {
		return nil, domain.ErrForbidden
	}

	domainPatch := domain.NotePatch{
		Title: patch.Title,
		Type:  patch.Type,
		Body:  patch.Body,
		Tags:  patch.Tags,
	}
	if patch.Items != nil {
		items := toItemInputs(*patch.Items)
		domainPatch.Items = &items
	}

	if err := note.ApplyPatch(domainPatch, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, note); err != nil {
		s.logger.Error().Err(err).Str("note_id", id).Msg("failed to update note")
		return nil, err
	}

	s.logger.Info().Str("note_id", id).Str("user_id", requesterID).Msg("note updated")

	return s.FindOne(ctx, id, requesterID)
}

// Remove soft-deletes a note by stamping its deletion marker. Removing an
// already-deleted note is not rejected; it simply re-stamps the marker.
func (s *NoteService) Remove(ctx context.Context, id, requesterID string) error {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if note.UserID != requesterID {
		return domain.ErrForbidden
	}

	now := time.Now().UTC()
	if err := s.repo.SetDeletedAt(ctx, id, &now); err != nil {
		return err
	}

	s.logger.Info().Str("note_id", id).Str("user_id", requesterID).Msg("note soft-deleted")
	return nil
}

// HardDelete permanently removes a note and its items. Terminal: no further
// operation references the id.
func (s *NoteService) HardDelete(ctx context.Context, id, requesterID string) error {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if note.UserID != requesterID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("note_id", id).Str("user_id", requesterID).Msg("note hard-deleted")
	return nil
}

// Restore clears the deletion marker of a soft-deleted note. Restoring an
// active note is a validation failure, not a lookup failure.
func (s *NoteService) Restore(ctx context.Context, id, requesterID string) (*domain.Note, error) {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note.UserID != requesterID {
		return nil, domain.ErrForbidden
	}
	if !note.IsDeleted() {
		return nil, domain.ErrNoteNotDeleted
	}

	if err := s.repo.SetDeletedAt(ctx, id, nil); err != nil {
		return nil, err
	}

	s.logger.Info().Str("note_id", id).Str("user_id", requesterID).Msg("note restored")

	return s.FindOne(ctx, id, requesterID)
}

// GetTags flattens the tag lists of the requester's active notes into a
// deduplicated, lexicographically sorted slice. Recomputed on every call.
func (s *NoteService) GetTags(ctx context.Context, requesterID string) ([]string, error) {
	tagLists, err := s.repo.ListTags(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, list := range tagLists {
		for _, tag := range list {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// GetStats counts the requester's notes. Deleted is derived as the count
// including soft-deleted minus the active count; the subtraction is the
// defined semantics.
func (s *NoteService) GetStats(ctx context.Context, requesterID string) (*ports.NoteStats, error) {
	total, err := s.repo.Count(ctx, requesterID, "", false)
	if err != nil {
		return nil, err
	}
	notes, err := s.repo.Count(ctx, requesterID, domain.TypeNote, false)
	if err != nil {
		return nil, err
	}
	checklists, err := s.repo.Count(ctx, requesterID, domain.TypeChecklist, false)
	if err != nil {
		return nil, err
	}
	totalIncludingDeleted, err := s.repo.Count(ctx, requesterID, "", true)
	if err != nil {
		return nil, err
	}

	return &ports.NoteStats{
		Total:      total,
		Notes:      notes,
		Checklists: checklists,
		Deleted:    totalIncludingDeleted - total,
	}, nil
}

func toItemInputs(items []ports.NoteItemInput) []domain.ItemInput {
	out := make([]domain.ItemInput, len(items))
	for i, item := range items {
		out[i] = domain.ItemInput{Checked: item.Checked, Body: item.Body, Order: item.Order}
	}
	return out
}
