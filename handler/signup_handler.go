package handler

import (
	"errors"
	"log"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func SignupHandler(c *gin.Context, users *usecase.UserService) {
	var req dto.SignupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Missing required fields")
		return
	}

	user, err := users.CreateUser(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			utils.Conflict(c, "Email already exists")
		case errors.Is(err, usecase.ErrMissingFields):
			utils.BadRequest(c, "Missing required fields")
		default:
			log.Printf("Signup failed: %v", err)
			utils.InternalError(c, "Failed to create user")
		}
		return
	}

	utils.Created(c, "User created successfully", gin.H{
		"user": dto.ToUserResponse(user),
	})
}
