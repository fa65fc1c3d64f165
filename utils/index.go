package utils

import (
	"errors"

	"movie_catalog/constants"
	"movie_catalog/model"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
)

const problemContentType = "application/problem+json"

func problem(status int, detail string) model.Problem {
	return model.Problem{
		Type:   "about:blank",
		Title:  fiberutils.StatusMessage(status),
		Status: status,
		Detail: detail,
	}
}

// ErrorResponse writes a problem body whose title is the reason phrase of status.
// err is kept out of the body; callers log it when it matters.
func ErrorResponse(c *fiber.Ctx, status int, detail string, err error) error {
	if detail == "" && err != nil {
		detail = err.Error()
	}
	return writeProblem(c, problem(status, detail))
}

// ValidationErrorResponse writes a 400 problem listing the rejected fields.
func ValidationErrorResponse(c *fiber.Ctx, detail string, fields []model.FieldError) error {
	p := problem(fiber.StatusBadRequest, detail)
	p.Errors = fields
	return writeProblem(c, p)
}

func writeProblem(c *fiber.Ctx, p model.Problem) error {
	if err := c.Status(p.Status).JSON(p); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, problemContentType)
	return nil
}

// ErrorHandler renders errors that escape handlers, such as unknown routes, as problem bodies.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	detail := constants.ERROR_INTERNAL
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		detail = fe.Message
	}
	return writeProblem(c, problem(status, detail))
}
