package repository

import (
	"context"
	"errors"

	"main/model"
)

var (
	// ErrNotFound covers both a missing record and a record owned by a
	// different user. Callers cannot tell the two apart.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail signals the store-level email uniqueness constraint.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UsersStore holds user records with hashed passwords. Implementations must
// enforce email uniqueness at the store level so that concurrent signups
// with the same email cannot both succeed.
type UsersStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, userID string) (*model.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

var (
	_ UsersStore = (*UserRepo)(nil)
	_ UsersStore = (*MemoryUsersRepo)(nil)
	_ NotesStore = (*NotesRepo)(nil)
	_ NotesStore = (*MemoryNotesRepo)(nil)
)

// NotesStore holds note records, each tagged with its owning user id. Every
// operation is scoped to that owner.
type NotesStore interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error)
	GetNote(ctx context.Context, noteID, userID string) (*model.Note, error)
	// UpdateNote applies a partial update: empty fields in updates keep the
	// stored value; updated_at is always refreshed.
	UpdateNote(ctx context.Context, noteID, userID string, updates *model.Note) error
	DeleteNote(ctx context.Context, noteID, userID string) error
	// DeleteUserNotes removes every note owned by the user and returns the
	// number deleted. Used by the explicit delete-user cascade.
	DeleteUserNotes(ctx context.Context, userID string) (int64, error)
}
