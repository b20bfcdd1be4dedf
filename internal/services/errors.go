package services

import "errors"

// Reasons the add-movie pipeline can stop. The first failure wins; no row
// is written once any of these fires.
var (
	ErrInvalidTitle        = errors.New("movie title is empty")
	ErrProviderUnreachable = errors.New("metadata provider unreachable")
	ErrMalformedResponse   = errors.New("metadata provider returned an unexpected response")
	ErrNotFound            = errors.New("movie not found")
	ErrDuplicateMovie      = errors.New("movie already in list")
	ErrBadYearFormat       = errors.New("movie year is not a valid number")
	ErrMissingDirector     = errors.New("movie metadata is missing a director")
	ErrMissingPoster       = errors.New("movie metadata is missing a poster")
)
