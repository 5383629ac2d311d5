package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"gradpath/cmd/api/handlers"
	"gradpath/cmd/internal/middleware"
	"gradpath/db"
	_ "gradpath/docs"
	"gradpath/repositories"
	"gradpath/services"
)

// New wires the read-only content API over database.
// ping reports store health; db.Ping is used in production.
func New(database *mongo.Database, ping func(ctx context.Context) error) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace("content-api"))

	health := func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	r.GET("/health", health)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	api.GET("/health", health)
	{
		svc := services.NewServiceService(repositories.NewServiceRepository(database))
		api.GET("/services", handlers.ListServicesHandler(svc))
		api.GET("/services/:id", handlers.GetServiceHandler(svc))
		api.GET("/services/slug/:slug", handlers.GetServiceBySlugHandler(svc))
	}
	{
		svc := services.NewBlogService(repositories.NewBlogRepository(database))
		api.GET("/blogs", handlers.ListBlogsHandler(svc))
		api.GET("/blogs/:id", handlers.GetBlogHandler(svc))
		api.GET("/blogs/slug/:slug", handlers.GetBlogBySlugHandler(svc))
	}
	{
		svc := services.NewEventService(repositories.NewEventRepository(database))
		api.GET("/events", handlers.ListEventsHandler(svc))
		api.GET("/events/:id", handlers.GetEventHandler(svc))
		api.GET("/events/slug/:slug", handlers.GetEventBySlugHandler(svc))
	}

	return r
}

// Default wires New against the process-wide Mongo connection.
func Default() *gin.Engine {
	return New(db.Database(), db.Ping)
}
