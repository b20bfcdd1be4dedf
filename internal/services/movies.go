// Package services holds the movie enrichment flow: turning a raw title
// into a fully populated, persisted movie via one external metadata lookup.
package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/movieweb-dev/movieweb/internal/models"
	"github.com/movieweb-dev/movieweb/internal/omdb"
	"github.com/movieweb-dev/movieweb/internal/repository"
)

// MetadataProvider is the slice of the omdb client the flow needs.
type MetadataProvider interface {
	Lookup(ctx context.Context, title string) (*omdb.Result, error)
}

type Movies struct {
	movies   *repository.Movies
	provider MetadataProvider
}

func NewMovies(movies *repository.Movies, provider MetadataProvider) *Movies {
	return &Movies{movies: movies, provider: provider}
}

// Add runs the enrichment pipeline for one title: validate, look the title
// up with the provider, fold the provider's fields into a draft, reject
// duplicates against the name that will actually be persisted, then insert.
// Exactly one lookup per call; no write happens on any error path.
func (s *Movies) Add(ctx context.Context, userID uint, title string) (models.Movie, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return models.Movie{}, ErrInvalidTitle
	}

	result, err := s.provider.Lookup(ctx, title)

	if err != nil {
		switch {
		case errors.Is(err, omdb.ErrNotFound):
			return models.Movie{}, ErrNotFound
		case errors.Is(err, omdb.ErrMalformed):
			return models.Movie{}, ErrMalformedResponse
		default:
			return models.Movie{}, ErrProviderUnreachable
		}
	}

	movie := models.Movie{
		Name:      title,
		Director:  "",
		Year:      nil,
		PosterURL: "",
		UserID:    userID,
	}

	// The provider's title supersedes the user's input when present.
	if result.Title != nil {
		name := strings.TrimSpace(*result.Title)

		if name == "" {
			return models.Movie{}, ErrInvalidTitle
		}

		movie.Name = name
	}

	// Duplicate check runs against the final name, after any substitution.
	exists, err := s.movies.ExistsByName(ctx, userID, movie.Name)

	if err != nil {
		return models.Movie{}, err
	}

	if exists {
		return models.Movie{}, ErrDuplicateMovie
	}

	if result.Year != nil {
		year, err := strconv.Atoi(strings.TrimSpace(*result.Year))

		if err != nil || year < 0 {
			return models.Movie{}, ErrBadYearFormat
		}

		movie.Year = &year
	}

	if result.Director != nil {
		director := strings.TrimSpace(*result.Director)

		if director == "" {
			return models.Movie{}, ErrMissingDirector
		}

		movie.Director = director
	}

	if result.Poster != nil {
		poster := strings.TrimSpace(*result.Poster)

		if poster == "" {
			return models.Movie{}, ErrMissingPoster
		}

		movie.PosterURL = poster
	}

	if err := s.movies.Add(ctx, &movie); err != nil {
		return models.Movie{}, err
	}

	return movie, nil
}

// Rename updates a movie's title. The not-found case surfaces as
// repository.ErrMovieNotFound so callers can report it distinctly.
func (s *Movies) Rename(ctx context.Context, movieID uint, newTitle string) error {
	newTitle = strings.TrimSpace(newTitle)

	if newTitle == "" {
		return ErrInvalidTitle
	}

	return s.movies.Rename(ctx, movieID, newTitle)
}

// Delete removes a movie, surfacing repository.ErrMovieNotFound when the
// id does not resolve.
func (s *Movies) Delete(ctx context.Context, movieID uint) error {
	return s.movies.Delete(ctx, movieID)
}
