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

func (h *Handler) GetDirectors(c *fiber.Ctx) error {
	q, ok := c.Locals(constants.LOCALS_LIST_QUERY).(model.ListQuery)
	if !ok {
		return h.missingLocals(c, constants.LOCALS_LIST_QUERY)
	}

	directors, err := h.store.ListDirectors(c.UserContext(), store.DirectorListOptions{
		SortBy: store.ParseDirectorSortKey(q.OrderBy),
		Order:  store.ParseOrder(q.Order),
		Limit:  q.Limit,
	})
	if err != nil {
		return h.internalError(c, "list directors", err)
	}
	return c.Status(fiber.StatusOK).JSON(helper.ToDirectorRecords(directors))
}

func (h *Handler) GetDirectorById(c *fiber.Ctx) error {
	directorId, ok := c.Locals(constants.LOCALS_DIRECTOR_ID).(uint)
	if !ok {
		return h.missingLocals(c, constants.LOCALS_DIRECTOR_ID)
	}

	director, err := h.store.GetDirector(c.UserContext(), directorId)
	if err != nil {
		if errors.Is(err, store.ErrDirectorNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("Director not found for Id: %d", directorId), nil)
		}
		return h.internalError(c, "get director", err)
	}
	return c.Status(fiber.StatusOK).JSON(helper.ToDirectorRecord(director))
}

// SearchDirectors never answers 404; no match is an empty list.
func (h *Handler) SearchDirectors(c *fiber.Ctx) error {
	q, ok := c.Locals(constants.LOCALS_SEARCH_QUERY).(model.SearchQuery)
	if !ok {
		return h.missingLocals(c, constants.LOCALS_SEARCH_QUERY)
	}
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return utils.ValidationErrorResponse(c, constants.ERROR_INPUT, []model.FieldError{
			{Field: "name", Message: "name is not a valid path segment"},
		})
	}

	directors, err := h.store.SearchDirectors(c.UserContext(), name, q.Limit)
	if err != nil {
		return h.internalError(c, "search directors", err)
	}
	return c.Status(fiber.StatusOK).JSON(helper.ToDirectorRecords(directors))
}

func (h *Handler) CreateDirector(c *fiber.Ctx) error {
	input, ok := c.Locals(constants.LOCALS_DIRECTOR_INPUT).(model.DirectorInput)
	if !ok {
		return h.missingLocals(c, constants.LOCALS_DIRECTOR_INPUT)
	}

	director := helper.DirectorFromInput(input)
	if err := h.store.CreateDirector(c.UserContext(), &director); err != nil {
		if errors.Is(err, store.ErrDuplicateUID) {
			return utils.ErrorResponse(c, fiber.StatusConflict, fmt.Sprintf("Directors uid %d exists already", director.UID), nil)
		}
		return h.internalError(c, "create director", err)
	}
	h.log.Debug("director created", "id", director.ID, "uid", director.UID)
	return c.Status(fiber.StatusCreated).JSON(helper.ToDirectorRecord(director))
}

// UpdateDirector replaces the whole director except its id.
func (h *Handler) UpdateDirector(c *fiber.Ctx) error {
	directorId, ok := c.Locals(constants.LOCALS_DIRECTOR_ID).(uint)
	if !ok {
		return h.missingLocals(c, constants.LOCALS_DIRECTOR_ID)
	}
	input, ok := c.Locals(constants.LOCALS_DIRECTOR_INPUT).(model.DirectorInput)
	if !ok {
		return h.missingLocals(c, constants.LOCALS_DIRECTOR_INPUT)
	}

	director, err := h.store.UpdateDirector(c.UserContext(), directorId, helper.DirectorFromInput(input))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDirectorNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("Director not found for Id: %d", directorId), nil)
		case errors.Is(err, store.ErrDuplicateUID):
			return utils.ErrorResponse(c, fiber.StatusConflict, fmt.Sprintf("Directors uid %d exists already", *input.UID), nil)
		}
		return h.internalError(c, "update director", err)
	}
	return c.Status(fiber.StatusOK).JSON(helper.ToDirectorRecord(director))
}

// DeleteDirector removes the director and, with it, all of its movies.
func (h *Handler) DeleteDirector(c *fiber.Ctx) error {
	directorId, ok := c.Locals(constants.LOCALS_DIRECTOR_ID).(uint)
	if !ok {
		return h.missingLocals(c, constants.LOCALS_DIRECTOR_ID)
	}

	if err := h.store.DeleteDirector(c.UserContext(), directorId); err != nil {
		if errors.Is(err, store.ErrDirectorNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("Director not found for Id: %d", directorId), nil)
		}
		return h.internalError(c, "delete director", err)
	}
	h.log.Debug("director deleted", "id", directorId)
	return c.Status(fiber.StatusOK).SendString(fmt.Sprintf("Director %d deleted", directorId))
}
