// Package repository is the storage façade for users and movies. Every
// operation takes the *gorm.DB it was constructed with, never a package
// global, and converts driver faults into plain error values: a missing
// row comes back as ErrUserNotFound/ErrMovieNotFound so callers can tell
// "row absent" apart from "store broken".
package repository

import "errors"

// ErrUserNotFound is returned when a user id does not resolve to a row.
var ErrUserNotFound = errors.New("user not found")

// ErrMovieNotFound is returned when a movie id does not resolve to a row.
var ErrMovieNotFound = errors.New("movie not found")
