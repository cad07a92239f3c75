package users

import (
	"codeberg.org/clipcast/server/clipcast/users"
	"github.com/gin-gonic/gin"
)

// registers user routes
func RegisterRoutes(router *gin.RouterGroup, userRepo users.Repository) {
	usersGroup := router.Group("/users")
	{
		usersGroup.GET("/:handle/avatar", AvatarHandler(userRepo))
	}
}
