package store

import (
	"context"
	"fmt"

	"movie_catalog/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) ListMovies(ctx context.Context, opts MovieListOptions) ([]model.Movie, error) {
	var movies []model.Movie
	q := s.session(ctx).
		Preload("Director").
		Order(orderBy("movies", opts.SortBy.Column(), opts.Order))
	if err := applyLimit(q, opts.Limit).Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// SearchMovies returns movies whose title contains title. No match is an empty slice.
func (s *Store) SearchMovies(ctx context.Context, title string, limit int) ([]model.Movie, error) {
	var movies []model.Movie
	q := s.session(ctx).
		Preload("Director").
		Where(`movies.title LIKE ? ESCAPE '\'`, containsPattern(title)).
		Order(orderBy("movies", "id", Ascending))
	if err := applyLimit(q, limit).Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	return movies, nil
}

// ownedMovie joins movies to directors so that a movie id paired with the
// wrong director id finds nothing.
func ownedMovie(db *gorm.DB, directorID, movieID uint) *gorm.DB {
	return db.
		Joins("JOIN directors ON directors.id = movies.director_id").
		Where("directors.id = ? AND movies.id = ?", directorID, movieID)
}

func (s *Store) GetMovie(ctx context.Context, directorID, movieID uint) (model.Movie, error) {
	var movie model.Movie
	err := ownedMovie(s.session(ctx).Preload("Director"), directorID, movieID).First(&movie).Error
	if err != nil {
		return movie, fmt.Errorf("get movie %d of director %d: %w", movieID, directorID, translate(err, ErrMovieNotFound))
	}
	return movie, nil
}

// CreateMovie adds m to the movies of director directorID.
func (s *Store) CreateMovie(ctx context.Context, directorID uint, m *model.Movie) error {
	err := s.session(ctx).Transaction(func(tx *gorm.DB) error {
		var director model.Director
		if err := tx.First(&director, directorID).Error; err != nil {
			return translate(err, ErrDirectorNotFound)
		}
		m.DirectorID = &director.ID
		m.Director = nil
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return err
		}
		m.Director = &director
		return nil
	})
	if err != nil {
		return fmt.Errorf("create movie for director %d: %w", directorID, err)
	}
	return nil
}

// UpdateMovie replaces every column of the movie with those of m, keeping its id and director.
func (s *Store) UpdateMovie(ctx context.Context, directorID, movieID uint, m model.Movie) (model.Movie, error) {
	var updated model.Movie
	err := s.session(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Movie
		if err := ownedMovie(tx, directorID, movieID).First(&existing).Error; err != nil {
			return err
		}
		m.ID = existing.ID
		m.DirectorID = existing.DirectorID
		m.Director = nil
		if err := tx.Omit(clause.Associations).Save(&m).Error; err != nil {
			return err
		}
		return tx.Preload("Director").First(&updated, existing.ID).Error
	})
	if err != nil {
		return updated, fmt.Errorf("update movie %d of director %d: %w", movieID, directorID, translate(err, ErrMovieNotFound))
	}
	return updated, nil
}

func (s *Store) DeleteMovie(ctx context.Context, directorID, movieID uint) error {
	err := s.session(ctx).Transaction(func(tx *gorm.DB) error {
		var movie model.Movie
		if err := ownedMovie(tx, directorID, movieID).First(&movie).Error; err != nil {
			return err
		}
		return tx.Delete(&movie).Error
	})
	if err != nil {
		return fmt.Errorf("delete movie %d of director %d: %w", movieID, directorID, translate(err, ErrMovieNotFound))
	}
	return nil
}
