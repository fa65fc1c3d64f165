package store

import "errors"

var (
	// ErrDirectorNotFound is returned when no director matches the given id.
	ErrDirectorNotFound = errors.New("director not found")

	// ErrMovieNotFound is returned when no movie matches the (director id, movie id) pair.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrDuplicateUID is returned when a director with the same uid already exists.
	ErrDuplicateUID = errors.New("director uid already exists")
)
