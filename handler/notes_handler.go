package handler

import (
	"errors"
	"log"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetUserNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	user := currentUser(c)
	if user == nil {
		utils.Unauthorized(c, "Unauthorized")
		return
	}

	notes, err := notesService.GetUserNotes(c.Request.Context(), user.UserID)
	if err != nil {
		log.Printf("Failed to list notes for user %s: %v", user.UserID, err)
		utils.InternalError(c, "Failed to list notes")
		return
	}

	utils.Success(c, gin.H{
		"notes": dto.ToNoteResponses(notes),
	})
}

func GetNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	user := currentUser(c)
	if user == nil {
		utils.Unauthorized(c, "Unauthorized")
		return
	}

	note, err := notesService.GetNote(c.Request.Context(), user.UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		log.Printf("Failed to get note: %v", err)
		utils.InternalError(c, "Failed to get note")
		return
	}

	utils.Success(c, gin.H{
		"note": dto.ToNoteResponse(note),
	})
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	user := currentUser(c)
	if user == nil {
		utils.Unauthorized(c, "Unauthorized")
		return
	}

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Missing required fields")
		return
	}

	note, err := notesService.CreateNote(c.Request.Context(), user.UserID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidNote) {
			utils.BadRequest(c, "Missing required fields")
			return
		}
		log.Printf("Failed to create note: %v", err)
		utils.InternalError(c, "Failed to create note")
		return
	}

	utils.Created(c, "Note created successfully", gin.H{
		"note": dto.ToNoteResponse(note),
	})
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	user := currentUser(c)
	if user == nil {
		utils.Unauthorized(c, "Unauthorized")
		return
	}

	// Both fields optional: empty values leave the stored field unchanged
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.UpdateNote(c.Request.Context(), user.UserID, c.Param("id"), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		log.Printf("Failed to update note: %v", err)
		utils.InternalError(c, "Failed to update note")
		return
	}

	utils.SuccessWithMessage(c, "Note updated successfully", gin.H{
		"note": dto.ToNoteResponse(note),
	})
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	user := currentUser(c)
	if user == nil {
		utils.Unauthorized(c, "Unauthorized")
		return
	}

	if err := notesService.DeleteNote(c.Request.Context(), user.UserID, c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		log.Printf("Failed to delete note: %v", err)
		utils.InternalError(c, "Failed to delete note")
		return
	}

	utils.SuccessWithMessage(c, "Note deleted successfully", nil)
}
