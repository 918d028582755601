package handlers

import (
	"errors"
	"log"
	"strconv"

	"footballapi/internal/models"
	"footballapi/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// parseID reads the :id route parameter as an unsigned integer.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parsePagination reads the limit and offset query parameters. Pagination is
// applied only when both are supplied and valid; otherwise both come back -1
// and the listing is unbounded.
func parsePagination(c *fiber.Ctx) (limit, offset int) {
	limitParam := c.Query("limit")
	offsetParam := c.Query("offset")
	if limitParam == "" || offsetParam == "" {
		return -1, -1
	}
	limit, err := strconv.Atoi(limitParam)
	if err != nil || limit < 0 {
		return -1, -1
	}
	offset, err = strconv.Atoi(offsetParam)
	if err != nil || offset < 0 {
		return -1, -1
	}
	return limit, offset
}

// invalidID renders the 400 response for an unparseable id parameter.
func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid id parameter",
	})
}

// invalidBody renders the 400 response for an unparseable request body.
func invalidBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// validationFailed maps validator failures to a 400 with field messages.
func validationFailed(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  models.NewValidationErrors(validationErrors),
		})
	}
	return invalidBody(c, err)
}

// respondError maps a service error to a response: not-found to 404,
// validation and constraint faults to 400, anything else to 500 with a
// generic message. The underlying error is logged, never exposed.
func respondError(c *fiber.Ctx, err error) error {
	var fields models.ValidationErrors
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.As(err, &fields):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fields,
		})
	case errors.Is(err, repositories.ErrConflict):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   repositories.ErrConflict.Error(),
		})
	}

	log.Printf("Internal error handling %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}
