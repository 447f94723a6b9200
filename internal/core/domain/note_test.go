package domain

import (
	"errors"
	"testing"
	"time"
)

func strPtr(s string) *string    { return &s }
func boolPtr(b bool) *bool       { return &b }
func intPtr(i int) *int          { return &i }
func typePtr(t NoteType) *NoteType { return &t }

func TestNewNote_TextNote(t *testing.T) {
	now := time.Now().UTC()
	n, err := NewNote("u1", "groceries", TypeNote, strPtr("milk and eggs"), nil, []string{"home"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Body == nil || *n.Body != "milk and eggs" {
		t.Fatalf("body not stored")
	}
	if len(n.Items) != 0 {
		t.Fatalf("text note must not carry items, got %d", len(n.Items))
	}
	if !n.CreatedAt.Equal(now) || !n.ModifiedAt.Equal(now) {
		t.Fatalf("timestamps not stamped")
	}
}

func TestNewNote_ChecklistIgnoresBody(t *testing.T) {
	items := []ItemInput{{Body: "a"}, {Body: "b"}}
	n, err := NewNote("u1", "todo", TypeChecklist, strPtr("stray body"), items, nil, time.Now().UTC())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Body != nil {
		t.Fatalf("checklist must not persist a body")
	}
	if len(n.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(n.Items))
	}
}

func TestNewNote_TagsDefaultEmpty(t *testing.T) {
	n, err := NewNote("u1", "t", TypeNote, strPtr("b"), nil, nil, time.Now().UTC())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Tags == nil || len(n.Tags) != 0 {
		t.Fatalf("tags must default to an empty list, got %v", n.Tags)
	}
}

func TestNewNote_ValidationFailures(t *testing.T) {
	now := time.Now().UTC()
	cases := []struct {
		name     string
		noteType NoteType
		body     *string
		items    []ItemInput
	}{
		{"note without body", TypeNote, nil, nil},
		{"note with empty body", TypeNote, strPtr(""), nil},
		{"checklist without items", TypeChecklist, nil, nil},
		{"unknown type", NoteType("memo"), strPtr("b"), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewNote("u1", "t", tc.noteType, tc.body, tc.items, nil, now)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestBuildItems_Defaults(t *testing.T) {
	items := BuildItems([]ItemInput{
		{Body: "first"},
		{Body: "second", Checked: boolPtr(true)},
		{Body: "third", Order: intPtr(10)},
	})

	if items[0].Order != 0 || items[1].Order != 1 {
		t.Fatalf("order must default to array position, got %d %d", items[0].Order, items[1].Order)
	}
	if items[0].Checked || !items[1].Checked {
		t.Fatalf("checked defaults wrong: %v %v", items[0].Checked, items[1].Checked)
	}
	if items[2].Order != 10 {
		t.Fatalf("explicit order must win, got %d", items[2].Order)
	}
}

func TestSortItems_StableByOrder(t *testing.T) {
	n := &Note{Items: []NoteItem{
		{Body: "c", Order: 2},
		{Body: "a1", Order: 0},
		{Body: "a2", Order: 0},
	}}
	n.SortItems()

	got := []string{n.Items[0].Body, n.Items[1].Body, n.Items[2].Body}
	want := []string{"a1", "a2", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestApplyPatch_SparseFields(t *testing.T) {
	n, _ := NewNote("u1", "old title", TypeNote, strPtr("old body"), nil, []string{"x"}, time.Now().UTC())
	later := time.Now().UTC().Add(time.Minute)

	err := n.ApplyPatch(NotePatch{Title: strPtr("new title")}, later)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Title != "new title" {
		t.Fatalf("title not applied")
	}
	if *n.Body != "old body" {
		t.Fatalf("untouched body changed")
	}
	if len(n.Tags) != 1 || n.Tags[0] != "x" {
		t.Fatalf("untouched tags changed")
	}
	if !n.ModifiedAt.Equal(later) {
		t.Fatalf("modified_at not stamped")
	}
}

func TestApplyPatch_ItemsReplaceWholeSet(t *testing.T) {
	n, _ := NewNote("u1", "todo", TypeChecklist, nil, []ItemInput{{Body: "a"}, {Body: "b"}}, nil, time.Now().UTC())

	patch := NotePatch{Items: &[]ItemInput{{Body: "c"}}}
	if err := n.ApplyPatch(patch, time.Now().UTC()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(n.Items) != 1 || n.Items[0].Body != "c" || n.Items[0].Order != 0 {
		t.Fatalf("item set not fully replaced: %+v", n.Items)
	}
}

func TestApplyPatch_EmptyItemsWipes(t *testing.T) {
	n, _ := NewNote("u1", "todo", TypeChecklist, nil, []ItemInput{{Body: "a"}}, nil, time.Now().UTC())

	patch := NotePatch{Items: &[]ItemInput{}}
	if err := n.ApplyPatch(patch, time.Now().UTC()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(n.Items) != 0 {
		t.Fatalf("non-nil empty item list must wipe the set, got %d items", len(n.Items))
	}
}

func TestApplyPatch_TypeChangeToNoteRequiresPatchBody(t *testing.T) {
	// A stored body does not satisfy the constraint; the patch itself must
	// carry one.
	n, _ := NewNote("u1", "todo", TypeChecklist, nil, []ItemInput{{Body: "a"}}, nil, time.Now().UTC())
	stored := "stored"
	n.Body = &stored

	err := n.ApplyPatch(NotePatch{Type: typePtr(TypeNote)}, time.Now().UTC())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	err = n.ApplyPatch(NotePatch{Type: typePtr(TypeNote), Body: strPtr("fresh")}, time.Now().UTC())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Type != TypeNote || *n.Body != "fresh" {
		t.Fatalf("type change not applied")
	}
}

func TestApplyPatch_TypeChangeToChecklistRequiresItems(t *testing.T) {
	n, _ := NewNote("u1", "note", TypeNote, strPtr("b"), nil, nil, time.Now().UTC())

	err := n.ApplyPatch(NotePatch{Type: typePtr(TypeChecklist)}, time.Now().UTC())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	err = n.ApplyPatch(NotePatch{Type: typePtr(TypeChecklist), Items: &[]ItemInput{{Body: "a"}}}, time.Now().UTC())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Type != TypeChecklist || len(n.Items) != 1 {
		t.Fatalf("type change not applied")
	}
}

func TestApplyPatch_InvalidType(t *testing.T) {
	n, _ := NewNote("u1", "note", TypeNote, strPtr("b"), nil, nil, time.Now().UTC())
	bad := NoteType("memo")
	err := n.ApplyPatch(NotePatch{Type: &bad}, time.Now().UTC())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestIsDeleted(t *testing.T) {
	n := &Note{}
	if n.IsDeleted() {
		t.Fatalf("fresh note must not be deleted")
	}
	now := time.Now().UTC()
	n.DeletedAt = &now
	if !n.IsDeleted() {
		t.Fatalf("stamped note must be deleted")
	}
}
