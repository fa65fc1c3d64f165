package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"movie_catalog/constants"
	"movie_catalog/model"
	"movie_catalog/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// GetById parses the path parameter key as an id and stores it under localsKey.
func GetById(key, localsKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value, err := strconv.ParseUint(c.Params(key), 10, 0)
		if err != nil {
			return utils.ValidationErrorResponse(c, constants.DATA_INPUT_IS_NOT_NUMBER, []model.FieldError{
				{Field: key, Message: fmt.Sprintf("%s must be an unsigned integer", key)},
			})
		}
		c.Locals(localsKey, uint(value))
		return c.Next()
	}
}

// ListQuery parses limit, order_by and order. Sort keys are resolved by the store,
// so only a malformed limit is rejected here.
func ListQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q model.ListQuery
		if err := c.QueryParser(&q); err != nil {
			return utils.ValidationErrorResponse(c, constants.ERROR_INPUT, []model.FieldError{
				{Field: "limit", Message: "limit must be an integer"},
			})
		}
		c.Locals(constants.LOCALS_LIST_QUERY, q)
		return c.Next()
	}
}

func SearchQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q model.SearchQuery
		if err := c.QueryParser(&q); err != nil {
			return utils.ValidationErrorResponse(c, constants.ERROR_INPUT, []model.FieldError{
				{Field: "limit", Message: "limit must be an integer"},
			})
		}
		c.Locals(constants.LOCALS_SEARCH_QUERY, q)
		return c.Next()
	}
}

// parseBody decodes the JSON body into input and runs the struct tags on it.
// On failure the 400 response has already been written and ok is false.
func parseBody(c *fiber.Ctx, input any) (ok bool, err error) {
	if err := c.BodyParser(input); err != nil {
		return false, utils.ValidationErrorResponse(c, constants.ERROR_BODY, nil)
	}
	if err := validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return false, utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL, err)
		}
		return false, utils.ValidationErrorResponse(c, constants.ERROR_VALIDATION, fieldErrors(fieldErrs))
	}
	return true, nil
}

func fieldErrors(errs validator.ValidationErrors) []model.FieldError {
	out := make([]model.FieldError, 0, len(errs))
	for _, fe := range errs {
		out = append(out, model.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("%s failed the %s check", fe.Field(), fe.Tag())
	}
}
