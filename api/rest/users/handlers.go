package users

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/clipcast/server/clipcast/users"
	"codeberg.org/clipcast/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// AvatarHandler godoc
// @Summary Get a user's profile image
// @Description Serves the stored profile image for the given handle
// @Tags users
// @Produce image/jpeg
// @Param handle path string true "User handle"
// @Success 200 {file} binary
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/users/{handle}/avatar [get]
func AvatarHandler(userRepo users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle := c.Param("handle")

		img, err := userRepo.GetProfileImage(c.Request.Context(), handle)
		if err != nil {
			if stderrors.Is(err, users.ErrNotFound) {
				errors.NotFound(c, "Profile image")
				return
			}

			errors.InternalError(c, "Failed to load profile image", err)
			return
		}

		c.Data(http.StatusOK, img.ContentType, img.Data)
	}
}
