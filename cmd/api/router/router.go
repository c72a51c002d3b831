package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"hooklabe/cmd/api/handlers"
	"hooklabe/cmd/api/middleware"
	"hooklabe/cmd/api/services"
	"hooklabe/db"
)

// Deps bundles the wired services the routes are built from.
type Deps struct {
	Auth       *services.AuthService
	Generation *services.GenerationService
	User       *services.UserService
	Plans      *services.PlanService
	Payments   *services.PaymentService
	Pages      *services.PageService
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if client := db.Client(); client != nil {
			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", handlers.RegisterHandler(deps.Auth))
		api.POST("/auth/login", handlers.LoginHandler(deps.Auth))
		api.POST("/auth/logout", handlers.LogoutHandler(deps.Auth))
		api.GET("/auth/session", handlers.SessionHandler(deps.Auth))

		api.GET("/plans", handlers.ListPlansHandler(deps.Plans))
		api.GET("/pages", handlers.ListPagesHandler(deps.Pages))
		api.GET("/pages/:slug", handlers.GetPageHandler(deps.Pages))

		authed := api.Group("")
		authed.Use(middleware.UserAuthMiddleware(deps.Auth))
		{
			authed.GET("/users/me", handlers.GetUserProfileHandler(deps.User))
			authed.POST("/generate", handlers.GenerateHandler(deps.Generation))
			authed.POST("/generate/stream", handlers.GenerateStreamHandler(deps.Generation))
			authed.POST("/payments/checkout", handlers.CheckoutHandler(deps.Payments))
			authed.POST("/payments/confirm", handlers.ConfirmPaymentHandler(deps.Payments))
		}
	}

	return r
}
