package handler

import (
	"context"
	"errors"
	"time"

	"movie_catalog/constants"
	"movie_catalog/store"
	"movie_catalog/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-hclog"
)

// Handler serves the director and movie endpoints from a single store handle.
type Handler struct {
	store *store.Store
	log   hclog.Logger
}

func New(s *store.Store, log hclog.Logger) *Handler {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Handler{store: s, log: log}
}

// Health reports whether the store answers a ping.
func (h *Handler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn("health check failed", "error", err)
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "database unreachable", err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) internalError(c *fiber.Ctx, op string, err error) error {
	h.log.Error("request failed",
		"op", op,
		"method", c.Method(),
		"path", c.Path(),
		"request_id", c.Locals(constants.LOCALS_REQUEST_ID),
		"error", err)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL, err)
}

func (h *Handler) missingLocals(c *fiber.Ctx, key string) error {
	return h.internalError(c, "read locals", errors.New("missing or mistyped locals value "+key))
}
