package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"main/repository"

	"github.com/google/uuid"
)

func newTestNotesService() *NotesService {
	return &NotesService{NotesRepo: repository.NewMemoryNotesRepo()}
}

func TestCreateNoteValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestNotesService()
	userID := uuid.New().String()

	t.Run("Success", func(t *testing.T) {
		note, err := svc.CreateNote(ctx, userID, "T", "C")
		if err != nil {
			t.Fatalf("CreateNote failed: %v", err)
		}
		if note.ID == "" {
			t.Error("expected a generated note id")
		}
		if note.UserID != userID {
			t.Errorf("owner should be %s, got %s", userID, note.UserID)
		}
		if !note.CreatedAt.Equal(note.UpdatedAt) {
			t.Error("both timestamps should be the creation instant")
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		cases := [][2]string{
			{"", "content"},
			{"   ", "content"},
			{"title", ""},
			{"title", "   "},
		}
		for _, tc := range cases {
			if _, err := svc.CreateNote(ctx, userID, tc[0], tc[1]); !errors.Is(err, ErrInvalidNote) {
				t.Errorf("CreateNote(%q,%q): expected ErrInvalidNote, got %v", tc[0], tc[1], err)
			}
		}
	})
}

func TestNotesOrdering(t *testing.T) {
	ctx := context.Background()
	svc := newTestNotesService()
	userID := uuid.New().String()

	var noteAID string
	for _, title := range []string{"A", "B", "C"} {
		note, err := svc.CreateNote(ctx, userID, title, "content")
		if err != nil {
			t.Fatalf("CreateNote failed: %v", err)
		}
		if title == "A" {
			noteAID = note.ID
		}
		time.Sleep(5 * time.Millisecond)
	}

	if _, err := svc.UpdateNote(ctx, userID, noteAID, "A updated", ""); err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}

	notes, err := svc.GetUserNotes(ctx, userID)
	if err != nil {
		t.Fatalf("GetUserNotes failed: %v", err)
	}

	var titles []string
	for _, note := range notes {
		titles = append(titles, note.Title)
	}
	expected := []string{"A updated", "C", "B"}
	if len(titles) != len(expected) {
		t.Fatalf("expected %d notes, got %d", len(expected), len(titles))
	}
	for i := range expected {
		if titles[i] != expected[i] {
			t.Fatalf("expected order %v, got %v", expected, titles)
		}
	}
}

func TestPartialUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newTestNotesService()
	userID := uuid.New().String()

	note, err := svc.CreateNote(ctx, userID, "Title", "Content")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	t.Run("TitleOnly", func(t *testing.T) {
		updated, err := svc.UpdateNote(ctx, userID, note.ID, "New Title", "")
		if err != nil {
			t.Fatalf("UpdateNote failed: %v", err)
		}
		if updated.Title != "New Title" {
			t.Errorf("expected new title, got %q", updated.Title)
		}
		if updated.Content != "Content" {
			t.Errorf("content should be unchanged, got %q", updated.Content)
		}
		if !updated.UpdatedAt.After(note.UpdatedAt) {
			t.Error("updated_at should advance")
		}
	})

	t.Run("EmptyBodyStillAdvancesTimestamp", func(t *testing.T) {
		before, err := svc.GetNote(ctx, userID, note.ID)
		if err != nil {
			t.Fatalf("GetNote failed: %v", err)
		}
		time.Sleep(5 * time.Millisecond)

		updated, err := svc.UpdateNote(ctx, userID, note.ID, "", "")
		if err != nil {
			t.Fatalf("UpdateNote failed: %v", err)
		}
		if updated.Title != before.Title || updated.Content != before.Content {
			t.Error("empty fields should leave stored values unchanged")
		}
		if !updated.UpdatedAt.After(before.UpdatedAt) {
			t.Error("updated_at should advance even when nothing changes")
		}
	})
}

func TestNoteOwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	svc := newTestNotesService()
	userA := uuid.New().String()
	userB := uuid.New().String()

	note, err := svc.CreateNote(ctx, userA, "A's note", "secret")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if _, err := svc.GetNote(ctx, userB, note.ID); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("get: expected ErrNoteNotFound, got %v", err)
	}
	if _, err := svc.UpdateNote(ctx, userB, note.ID, "stolen", ""); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("update: expected ErrNoteNotFound, got %v", err)
	}
	if err := svc.DeleteNote(ctx, userB, note.ID); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("delete: expected ErrNoteNotFound, got %v", err)
	}

	// The missing-note case produces the same error
	if _, err := svc.GetNote(ctx, userB, uuid.New().String()); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("missing id: expected ErrNoteNotFound, got %v", err)
	}
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()
	svc := newTestNotesService()
	userID := uuid.New().String()

	note, err := svc.CreateNote(ctx, userID, "T", "C")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if err := svc.DeleteNote(ctx, userID, note.ID); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
	if err := svc.DeleteNote(ctx, userID, note.ID); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("second delete: expected ErrNoteNotFound, got %v", err)
	}

	notes, err := svc.GetUserNotes(ctx, userID)
	if err != nil {
		t.Fatalf("GetUserNotes failed: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(notes))
	}
}
