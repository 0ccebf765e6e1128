package handler

import (
	"errors"
	"log"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func SigninHandler(c *gin.Context, users *usecase.UserService) {
	var req dto.SigninRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Missing email or password")
		return
	}

	user, token, err := users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			// Unknown email and wrong password are deliberately the same
			utils.Unauthorized(c, "Invalid credentials")
		case errors.Is(err, usecase.ErrMissingFields):
			utils.BadRequest(c, "Missing email or password")
		default:
			log.Printf("Signin failed: %v", err)
			utils.InternalError(c, "Failed to sign in")
		}
		return
	}

	utils.Success(c, gin.H{
		"token": token,
		"user":  dto.ToUserResponse(user),
	})
}
