package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/google/uuid"
)

var (
	// ErrNoteNotFound covers both a missing note and a note owned by a
	// different user.
	ErrNoteNotFound = errors.New("note not found")

	ErrInvalidNote = errors.New("note title and content are required")
)

// NotesService runs CRUD over notes. Every operation takes the
// authenticated user id as its scoping parameter; no operation accepts a
// caller-supplied owner.
type NotesService struct {
	NotesRepo repository.NotesStore
}

func (s *NotesService) validateNote(note *model.Note) error {
	note.Title = strings.TrimSpace(note.Title)
	if note.Title == "" {
		return ErrInvalidNote
	}
	if len(note.Title) > 200 {
		return errors.New("note title exceeds maximum length")
	}

	if strings.TrimSpace(note.Content) == "" {
		return ErrInvalidNote
	}

	return nil
}

// CreateNote creates a note owned by userID with both timestamps set to
// the creation instant.
func (s *NotesService) CreateNote(ctx context.Context, userID, title, content string) (*model.Note, error) {
	now := time.Now().UTC()
	note := &model.Note{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.validateNote(note); err != nil {
		return nil, err
	}

	if err := s.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// GetUserNotes lists the user's notes, most recently updated first.
func (s *NotesService) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	notes, err := s.NotesRepo.GetUserNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	utils.TrackNoteOperation("list")
	return notes, nil
}

// GetNote fetches one note scoped to the caller.
func (s *NotesService) GetNote(ctx context.Context, userID, noteID string) (*model.Note, error) {
	note, err := s.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	utils.TrackNoteOperation("get")
	return note, nil
}

// UpdateNote applies a partial edit: a non-empty field replaces the stored
// value, an empty field is left unchanged. The update timestamp always
// advances, even for a body that changes nothing. Returns the note as
// stored after the edit.
func (s *NotesService) UpdateNote(ctx context.Context, userID, noteID, title, content string) (*model.Note, error) {
	updates := &model.Note{
		Title:   strings.TrimSpace(title),
		Content: content,
	}

	if err := s.NotesRepo.UpdateNote(ctx, noteID, userID, updates); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	note, err := s.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload note: %w", err)
	}

	utils.TrackNoteOperation("update")
	return note, nil
}

// DeleteNote removes one note scoped to the caller. Irreversible.
func (s *NotesService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if err := s.NotesRepo.DeleteNote(ctx, noteID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}

	utils.TrackNoteOperation("delete")
	return nil
}
