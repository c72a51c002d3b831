package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hooklabe/cmd/api/dto"
	"hooklabe/cmd/api/services"
)

// GetUserProfileHandler godoc
// @Summary      Current user profile
// @Description  Returns the signed-in user's plan and credit balance. An identity with no ledger yet reads as a Free user with zero credits.
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.UserProfileDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /users/me [get]
func GetUserProfileHandler(userSvc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		profile, err := userSvc.Profile(c.Request.Context(), userID, c.GetString("email"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_load_profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
