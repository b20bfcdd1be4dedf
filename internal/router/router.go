package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/movieweb-dev/movieweb/internal/handlers"
	"github.com/movieweb-dev/movieweb/internal/middleware"
	"github.com/movieweb-dev/movieweb/internal/repository"
	"github.com/movieweb-dev/movieweb/internal/services"
	"github.com/movieweb-dev/movieweb/internal/types"
	"gorm.io/gorm"
)

func NewRouter(conn *gorm.DB, provider services.MetadataProvider) *gin.Engine {
	users := repository.NewUsers(conn)
	movies := repository.NewMovies(conn)

	usersHandler := handlers.NewUsersHandler(users)
	moviesHandler := handlers.NewMoviesHandler(movies, services.NewMovies(movies, provider))

	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	})

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/users", usersHandler.CreateUser)
		api.GET("/users", usersHandler.ListUsers)

		userMovies := api.Group("/users/:user_id/movies", middleware.UserLoader(users))
		{
			userMovies.GET("", moviesHandler.ListMovies)
			userMovies.POST("", moviesHandler.AddMovie)
			userMovies.PUT("/:movie_id", moviesHandler.UpdateMovie)
			userMovies.DELETE("/:movie_id", moviesHandler.DeleteMovie)
		}
	}

	return r
}
