package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/movieweb-dev/movieweb/internal/repository"
	"github.com/movieweb-dev/movieweb/internal/services"
	"github.com/movieweb-dev/movieweb/internal/types"
	"github.com/movieweb-dev/movieweb/internal/utils"
)

type AddMovieRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateMovieRequest struct {
	Title string `json:"title" binding:"required"`
}

type MoviesHandler struct {
	movies  *repository.Movies
	service *services.Movies
}

func NewMoviesHandler(movies *repository.Movies, service *services.Movies) *MoviesHandler {
	return &MoviesHandler{movies: movies, service: service}
}

func (h *MoviesHandler) ListMovies(ctx *gin.Context) {
	user, err := utils.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	movies, err := h.movies.ByUser(ctx.Request.Context(), user.ID)

	if err != nil {
		log.Printf("Failed to list movies for user %d: %v", user.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve movies"})
		return
	}

	response := make([]types.MovieResponse, 0, len(movies))

	for _, movie := range movies {
		response = append(response, types.MovieResponse{
			ID:        movie.ID,
			Name:      movie.Name,
			Director:  movie.Director,
			Year:      movie.Year,
			PosterURL: movie.PosterURL,
			UserID:    movie.UserID,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"movies": response})
}

func (h *MoviesHandler) AddMovie(ctx *gin.Context) {
	user, err := utils.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var body AddMovieRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	movie, err := h.service.Add(ctx.Request.Context(), user.ID, body.Title)

	if err != nil {
		status, message := addMovieError(err)

		if status == http.StatusInternalServerError {
			log.Printf("Failed to add movie for user %d: %v", user.ID, err)
		}

		ctx.JSON(status, gin.H{"error": message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Added " + movie.Name,
		"movie": types.MovieResponse{
			ID:        movie.ID,
			Name:      movie.Name,
			Director:  movie.Director,
			Year:      movie.Year,
			PosterURL: movie.PosterURL,
			UserID:    movie.UserID,
		},
	})
}

func (h *MoviesHandler) UpdateMovie(ctx *gin.Context) {
	movieID, err := utils.GetMovieID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
		return
	}

	var body UpdateMovieRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	err = h.service.Rename(ctx.Request.Context(), movieID, body.Title)

	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTitle):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Title must not be empty"})
		case errors.Is(err, repository.ErrMovieNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		default:
			log.Printf("Failed to rename movie %d: %v", movieID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Movie renamed"})
}

func (h *MoviesHandler) DeleteMovie(ctx *gin.Context) {
	movieID, err := utils.GetMovieID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
		return
	}

	err = h.service.Delete(ctx.Request.Context(), movieID)

	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			return
		}

		log.Printf("Failed to delete movie %d: %v", movieID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Movie deleted"})
}

// addMovieError maps pipeline failures onto HTTP statuses and user-facing
// category messages. No raw fault text reaches the response body.
func addMovieError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidTitle):
		return http.StatusUnprocessableEntity, "Movie title must not be empty"
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, "Movie not found in the movie database"
	case errors.Is(err, services.ErrDuplicateMovie):
		return http.StatusConflict, "Movie is already in this list"
	case errors.Is(err, services.ErrBadYearFormat):
		return http.StatusUnprocessableEntity, "Movie year could not be read"
	case errors.Is(err, services.ErrMissingDirector):
		return http.StatusUnprocessableEntity, "Movie metadata is missing a director"
	case errors.Is(err, services.ErrMissingPoster):
		return http.StatusUnprocessableEntity, "Movie metadata is missing a poster"
	case errors.Is(err, services.ErrMalformedResponse):
		return http.StatusBadGateway, "Movie database returned an unexpected response"
	case errors.Is(err, services.ErrProviderUnreachable):
		return http.StatusBadGateway, "Movie database is unreachable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
