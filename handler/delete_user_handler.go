package handler

import (
	"errors"
	"log"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// DeleteUserHandler removes the authenticated user and all of their notes.
func DeleteUserHandler(c *gin.Context, users *usecase.UserService) {
	user := currentUser(c)
	if user == nil {
		utils.Unauthorized(c, "Unauthorized")
		return
	}

	if err := users.DeleteUser(c.Request.Context(), user.UserID); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		log.Printf("Failed to delete user %s: %v", user.UserID, err)
		utils.InternalError(c, "Failed to delete user")
		return
	}

	log.Printf("User deleted: %s", user.UserID)
	utils.SuccessWithMessage(c, "User deleted successfully", nil)
}
