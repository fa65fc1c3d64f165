package handler

import (
	"errors"
	"fmt"
	"net/url"

	"movie_catalog/constants"
	"movie_catalog/helper"
	"movie_catalog/model"
	"movie_catalog/store"
	"movie_catalog/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetMovies(c *fiber.Ctx) error {
	q, ok := c.Locals(constants.LOCALS_LIST_QUERY).(model.ListQuery)
	if !ok {
		return h.missingLocals(c, constants.LOCALS_LIST_QUERY)
	}

	movies, err := h.store.ListMovies(c.UserContext(), store.MovieListOptions{
		SortBy: store.ParseMovieSortKey(q.OrderBy),
		Order:  store.ParseOrder(q.Order),
		Limit:  q.Limit,
	})
	if err != nil {
		return h.internalError(c, "list movies", err)
	}
	return c.Status(fiber.StatusOK).JSON(helper.ToMovieRecords(movies))
}

// movieIds reads the director and movie ids stored by the path validators.
func (h *Handler) movieIds(c *fiber.Ctx) (directorId, movieId uint, ok bool) {
	directorId, ok = c.Locals(constants.LOCALS_DIRECTOR_ID).(uint)
	if !ok {
		return 0, 0, false
	}
	movieId, ok = c.Locals(constants.LOCALS_MOVIE_ID).(uint)
	return directorId, movieId, ok
}

// GetMovieById answers 404 both for an unknown movie and for a movie owned by another director.
func (h *Handler) GetMovieById(c *fiber.Ctx) error {
	directorId, movieId, ok := h.movieIds(c)
	if !ok {
		return h.missingLocals(c, constants.LOCALS_MOVIE_ID)
	}

	movie, err := h.store.GetMovie(c.UserContext(), directorId, movieId)
	if err != nil {
		if errors.Is(err, store.ErrMovieNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("Movie not found for Id: %d", movieId), nil)
		}
		return h.internalError(c, "get movie", err)
	}
	return c.Status(fiber.StatusOK).JSON(helper.ToMovieRecord(movie))
}

func (h *Handler) SearchMovies(c *fiber.Ctx) error {
	q, ok := c.Locals(constants.LOCALS_SEARCH_QUERY).(model.SearchQuery)
	if !ok {
		return h.missingLocals(c, constants.LOCALS_SEARCH_QUERY)
	}
	title, err := url.PathUnescape(c.Params("title"))
	if err != nil {
		return utils.ValidationErrorResponse(c, constants.ERROR_INPUT, []model.FieldError{
			{Field: "title", Message: "title is not a valid path segment"},
		})
	}

	movies, err := h.store.SearchMovies(c.UserContext(), title, q.Limit)
	if err != nil {
		return h.internalError(c, "search movies", err)
	}
	return c.Status(fiber.StatusOK).JSON(helper.ToMovieRecords(movies))
}

func (h *Handler) CreateMovie(c *fiber.Ctx) error {
	directorId, ok := c.Locals(constants.LOCALS_DIRECTOR_ID).(uint)
	if !ok {
		return h.missingLocals(c, constants.LOCALS_DIRECTOR_ID)
	}
	input, ok := c.Locals(constants.LOCALS_MOVIE_INPUT).(model.MovieInput)
	if !ok {
		return h.missingLocals(c, constants.LOCALS_MOVIE_INPUT)
	}

	movie := helper.MovieFromInput(input)
	if err := h.store.CreateMovie(c.UserContext(), directorId, &movie); err != nil {
		if errors.Is(err, store.ErrDirectorNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("Director not found for Id: %d", directorId), nil)
		}
		return h.internalError(c, "create movie", err)
	}
	h.log.Debug("movie created", "id", movie.ID, "director_id", directorId)
	return c.Status(fiber.StatusCreated).JSON(helper.ToMovieRecord(movie))
}

// UpdateMovie replaces the whole movie except its id and director.
func (h *Handler) UpdateMovie(c *fiber.Ctx) error {
	directorId, movieId, ok := h.movieIds(c)
	if !ok {
		return h.missingLocals(c, constants.LOCALS_MOVIE_ID)
	}
	input, ok := c.Locals(constants.LOCALS_MOVIE_INPUT).(model.MovieInput)
	if !ok {
		return h.missingLocals(c, constants.LOCALS_MOVIE_INPUT)
	}

	movie, err := h.store.UpdateMovie(c.UserContext(), directorId, movieId, helper.MovieFromInput(input))
	if err != nil {
		if errors.Is(err, store.ErrMovieNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("Movie not found for Id: %d", movieId), nil)
		}
		return h.internalError(c, "update movie", err)
	}
	return c.Status(fiber.StatusOK).JSON(helper.ToMovieRecord(movie))
}

func (h *Handler) DeleteMovie(c *fiber.Ctx) error {
	directorId, movieId, ok := h.movieIds(c)
	if !ok {
		return h.missingLocals(c, constants.LOCALS_MOVIE_ID)
	}

	if err := h.store.DeleteMovie(c.UserContext(), directorId, movieId); err != nil {
		if errors.Is(err, store.ErrMovieNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("Movie not found for Id: %d", movieId), nil)
		}
		return h.internalError(c, "delete movie", err)
	}
	return c.Status(fiber.StatusOK).SendString(fmt.Sprintf("Movie %d deleted", movieId))
}
