package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"main/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Integration test against a real MongoDB. Set MONGO_URI to run it, e.g.
// MONGO_URI=mongodb://localhost:27017 go test ./repository/...
func newMongoTestClient(t *testing.T) *mongo.Client {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set, skipping MongoDB integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("error connecting to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Fatalf("error pinging MongoDB: %v", err)
	}

	return client
}

func TestMongoStores(t *testing.T) {
	client := newMongoTestClient(t)
	defer client.Disconnect(context.Background())

	ctx := context.Background()
	db := client.Database("notes_test")
	if err := db.Drop(ctx); err != nil {
		t.Fatalf("failed to drop test database: %v", err)
	}
	if err := SetupIndexes(db); err != nil {
		t.Fatalf("failed to set up indexes: %v", err)
	}

	usersRepo := &UserRepo{MongoCollection: db.Collection("users")}
	notesRepo := &NotesRepo{MongoCollection: db.Collection("notes")}

	now := time.Now().UTC()
	user := &model.User{
		UserID:    uuid.New().String(),
		Name:      "Test User",
		Email:     "mongo@example.com",
		Password:  "salt$hash",
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.Run("CreateUser", func(t *testing.T) {
		if err := usersRepo.CreateUser(ctx, user); err != nil {
			t.Fatal("create user failed", err)
		}
	})

	t.Run("DuplicateEmailRejectedByIndex", func(t *testing.T) {
		dup := *user
		dup.UserID = uuid.New().String()
		err := usersRepo.CreateUser(ctx, &dup)
		if !errors.Is(err, ErrDuplicateEmail) {
			t.Fatalf("expected ErrDuplicateEmail, got %v", err)
		}
	})

	t.Run("FindUser", func(t *testing.T) {
		found, err := usersRepo.FindByEmail(ctx, user.Email)
		if err != nil {
			t.Fatal("find by email failed", err)
		}
		if found.UserID != user.UserID {
			t.Fatalf("expected %s, got %s", user.UserID, found.UserID)
		}
	})

	t.Run("NotesCRUD", func(t *testing.T) {
		note := &model.Note{
			ID:        uuid.New().String(),
			UserID:    user.UserID,
			Title:     "TESTING NOTES",
			Content:   "the quick brown fox jumps over the lazy dog",
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		if err := notesRepo.CreateNote(ctx, note); err != nil {
			t.Fatal("insert note failed", err)
		}

		if err := notesRepo.UpdateNote(ctx, note.ID, user.UserID, &model.Note{Content: "TEST SUCCESS."}); err != nil {
			t.Fatal("update note failed", err)
		}

		got, err := notesRepo.GetNote(ctx, note.ID, user.UserID)
		if err != nil {
			t.Fatal("get note failed", err)
		}
		if got.Content != "TEST SUCCESS." || got.Title != "TESTING NOTES" {
			t.Fatalf("partial update wrong: %+v", got)
		}

		if _, err := notesRepo.GetNote(ctx, note.ID, "someone-else"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("foreign owner should see ErrNotFound, got %v", err)
		}

		if err := notesRepo.DeleteNote(ctx, note.ID, user.UserID); err != nil {
			t.Fatal("delete note failed", err)
		}
	})

	t.Run("DeleteUserNotes", func(t *testing.T) {
		for _, title := range []string{"one", "two"} {
			note := &model.Note{
				ID:        uuid.New().String(),
				UserID:    user.UserID,
				Title:     title,
				Content:   "c",
				CreatedAt: time.Now().UTC(),
				UpdatedAt: time.Now().UTC(),
			}
			if err := notesRepo.CreateNote(ctx, note); err != nil {
				t.Fatal("insert note failed", err)
			}
		}

		deleted, err := notesRepo.DeleteUserNotes(ctx, user.UserID)
		if err != nil {
			t.Fatal("delete user notes failed", err)
		}
		if deleted != 2 {
			t.Fatalf("expected 2 deleted, got %d", deleted)
		}
	})
}
