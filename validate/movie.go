package validate

import (
	"movie_catalog/constants"
	"movie_catalog/model"

	"github.com/gofiber/fiber/v2"
)

// MovieBody validates the body of create and update movie requests.
func MovieBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.MovieInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		c.Locals(constants.LOCALS_MOVIE_INPUT, input)
		return c.Next()
	}
}
