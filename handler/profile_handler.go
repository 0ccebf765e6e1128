package handler

import (
	"main/dto"
	"main/middleware"
	"main/model"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// CurrentUserHandler returns the public fields of the user the auth
// middleware resolved for this request.
func CurrentUserHandler(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		utils.Unauthorized(c, "Unauthorized")
		return
	}

	utils.Success(c, gin.H{
		"user": dto.ToUserResponse(user),
	})
}

func currentUser(c *gin.Context) *model.User {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}
