package middleware

import (
	"fmt"
	"strings"

	"movie_catalog/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// RequestID tags every request with a UUID, reusing X-Request-ID when the client sends one.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: constants.LOCALS_REQUEST_ID,
	})
}

// Recover turns panics into 500 responses and logs the panic value with its stack.
func Recover(log hclog.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error("panic recovered",
				"method", c.Method(),
				"path", c.Path(),
				"request_id", c.Locals(constants.LOCALS_REQUEST_ID),
				"panic", fmt.Sprint(e))
		},
	})
}

// Cors allows the configured comma separated origins, or any origin for "*".
func Cors(origins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: strings.ReplaceAll(origins, " ", ""),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		MaxAge:       600,
	})
}

// AccessLog writes one line per request through log.
func AccessLog(log hclog.Logger) fiber.Handler {
	return logger.New(logger.Config{
		Format:     "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		TimeFormat: "2006-01-02T15:04:05.000Z0700",
		Output:     log.Named("access").StandardWriter(&hclog.StandardLoggerOptions{ForceLevel: hclog.Info}),
	})
}
