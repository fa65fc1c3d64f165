package store

import (
	"context"
	"errors"
	"fmt"

	"movie_catalog/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) ListDirectors(ctx context.Context, opts DirectorListOptions) ([]model.Director, error) {
	var directors []model.Director
	q := s.session(ctx).
		Preload("Movies", moviesByID).
		Order(orderBy("directors", opts.SortBy.Column(), opts.Order))
	if err := applyLimit(q, opts.Limit).Find(&directors).Error; err != nil {
		return nil, fmt.Errorf("list directors: %w", err)
	}
	return directors, nil
}

// SearchDirectors returns directors whose name contains name. No match is an empty slice.
func (s *Store) SearchDirectors(ctx context.Context, name string, limit int) ([]model.Director, error) {
	var directors []model.Director
	q := s.session(ctx).
		Preload("Movies", moviesByID).
		Where(`directors.name LIKE ? ESCAPE '\'`, containsPattern(name)).
		Order(orderBy("directors", "id", Ascending))
	if err := applyLimit(q, limit).Find(&directors).Error; err != nil {
		return nil, fmt.Errorf("search directors: %w", err)
	}
	return directors, nil
}

func (s *Store) GetDirector(ctx context.Context, id uint) (model.Director, error) {
	var director model.Director
	err := s.session(ctx).Preload("Movies", moviesByID).First(&director, id).Error
	if err != nil {
		return director, fmt.Errorf("get director %d: %w", id, translate(err, ErrDirectorNotFound))
	}
	return director, nil
}

// CreateDirector inserts d and fills in its id. A director with the same uid
// yields ErrDuplicateUID, whether caught by the lookup or by the unique index.
func (s *Store) CreateDirector(ctx context.Context, d *model.Director) error {
	err := s.session(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Director{}).Where("uid = ?", d.UID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateUID
		}
		return tx.Omit(clause.Associations).Create(d).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			err = ErrDuplicateUID
		}
		return fmt.Errorf("create director uid %d: %w", d.UID, err)
	}
	return nil
}

// UpdateDirector replaces every column of director id with those of d, keeping the id.
// The uid is not checked against other directors here.
func (s *Store) UpdateDirector(ctx context.Context, id uint, d model.Director) (model.Director, error) {
	var updated model.Director
	err := s.session(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Director
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		d.ID = existing.ID
		d.Movies = nil
		if err := tx.Omit(clause.Associations).Save(&d).Error; err != nil {
			return err
		}
		return tx.Preload("Movies", moviesByID).First(&updated, existing.ID).Error
	})
	if err != nil {
		return updated, fmt.Errorf("update director %d: %w", id, translate(err, ErrDirectorNotFound))
	}
	return updated, nil
}

// DeleteDirector removes director id together with every movie it owns.
func (s *Store) DeleteDirector(ctx context.Context, id uint) error {
	err := s.session(ctx).Transaction(func(tx *gorm.DB) error {
		var director model.Director
		if err := tx.First(&director, id).Error; err != nil {
			return err
		}
		if err := tx.Where("director_id = ?", director.ID).Delete(&model.Movie{}).Error; err != nil {
			return err
		}
		return tx.Delete(&director).Error
	})
	if err != nil {
		return fmt.Errorf("delete director %d: %w", id, translate(err, ErrDirectorNotFound))
	}
	return nil
}
