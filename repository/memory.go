package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"main/model"
)

// In-memory stores used as the development fallback when MongoDB is not
// reachable, and by the test suite. Data does not survive a restart.

type MemoryUsersRepo struct {
	mu      sync.RWMutex
	byID    map[string]*model.User
	byEmail map[string]string // email -> user_id
}

func NewMemoryUsersRepo() *MemoryUsersRepo {
	return &MemoryUsersRepo{
		byID:    make(map[string]*model.User),
		byEmail: make(map[string]string),
	}
}

func (r *MemoryUsersRepo) CreateUser(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Uniqueness check and insert happen under one lock, so concurrent
	// signups with the same email cannot both succeed.
	if _, exists := r.byEmail[user.Email]; exists {
		return ErrDuplicateEmail
	}

	stored := *user
	r.byID[user.UserID] = &stored
	r.byEmail[user.Email] = user.UserID
	return nil
}

func (r *MemoryUsersRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	user := *r.byID[userID]
	return &user, nil
}

func (r *MemoryUsersRepo) FindByID(ctx context.Context, userID string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[userID]
	if !ok {
		return nil, ErrNotFound
	}
	user := *stored
	return &user, nil
}

func (r *MemoryUsersRepo) DeleteUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[userID]
	if !ok {
		return ErrNotFound
	}
	delete(r.byEmail, stored.Email)
	delete(r.byID, userID)
	return nil
}

type MemoryNotesRepo struct {
	mu    sync.RWMutex
	notes map[string]*model.Note // note_id -> note
}

func NewMemoryNotesRepo() *MemoryNotesRepo {
	return &MemoryNotesRepo{
		notes: make(map[string]*model.Note),
	}
}

func (r *MemoryNotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if note.UserID == "" {
		return errors.New("note owner is required")
	}

	stored := *note
	r.notes[note.ID] = &stored
	return nil
}

func (r *MemoryNotesRepo) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := []*model.Note{}
	for _, stored := range r.notes {
		if stored.UserID == userID {
			note := *stored
			notes = append(notes, &note)
		}
	}

	// Most recently updated first
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})

	return notes, nil
}

func (r *MemoryNotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.notes[noteID]
	if !ok || stored.UserID != userID {
		return nil, ErrNotFound
	}
	note := *stored
	return &note, nil
}

func (r *MemoryNotesRepo) UpdateNote(ctx context.Context, noteID, userID string, updates *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.notes[noteID]
	if !ok || stored.UserID != userID {
		return ErrNotFound
	}

	if updates.Title != "" {
		stored.Title = updates.Title
	}
	if updates.Content != "" {
		stored.Content = updates.Content
	}
	stored.UpdatedAt = time.Now().UTC()

	return nil
}

func (r *MemoryNotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.notes[noteID]
	if !ok || stored.UserID != userID {
		return ErrNotFound
	}
	delete(r.notes, noteID)
	return nil
}

func (r *MemoryNotesRepo) DeleteUserNotes(ctx context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for id, stored := range r.notes {
		if stored.UserID == userID {
			delete(r.notes, id)
			deleted++
		}
	}
	return deleted, nil
}
