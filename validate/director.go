package validate

import (
	"movie_catalog/constants"
	"movie_catalog/model"

	"github.com/gofiber/fiber/v2"
)

// DirectorBody validates the body of create and update director requests.
func DirectorBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.DirectorInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		c.Locals(constants.LOCALS_DIRECTOR_INPUT, input)
		return c.Next()
	}
}
