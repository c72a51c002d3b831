package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hooklabe/cmd/api/auth"
	"hooklabe/cmd/api/dto"
	"hooklabe/cmd/api/services"
	"hooklabe/cmd/internal/logger"
)

// RegisterHandler godoc
// @Summary      Sign up
// @Description  Creates an account with the hosted identity service and returns a session when the account is immediately usable.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "sign-up request"
// @Success      200   {object}  dto.SessionDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /auth/register [post]
func RegisterHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		session, err := authSvc.Register(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			// identity service error text is the user-facing message
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, session)
	}
}

// LoginHandler godoc
// @Summary      Sign in
// @Description  Password sign-in against the hosted identity service. Returns the API JWT plus the hosted access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "sign-in request"
// @Success      200   {object}  dto.SessionDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Router       /auth/login [post]
func LoginHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		session, err := authSvc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			logger.InfoWithFields("login refused", logger.Fields{
				"email": req.Email,
				"error": err.Error(),
			})
			c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, session)
	}
}

// LogoutHandler godoc
// @Summary      Sign out
// @Description  Revokes the hosted identity session behind the bearer token.
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /auth/logout [post]
func LogoutHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		if err := authSvc.Logout(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "sign_out_failed"})
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "signed out successfully"})
	}
}

// SessionHandler godoc
// @Summary      Current hosted session
// @Description  Resolves the identity behind the hosted access token. Faults read as no identity rather than an error.
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  object{identity=dto.SessionDTO}
// @Router       /auth/session [get]
func SessionHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"identity": nil})
			return
		}

		identity := authSvc.Session(c.Request.Context(), token)
		if identity == nil {
			c.JSON(http.StatusOK, gin.H{"identity": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"identity": identity})
	}
}
