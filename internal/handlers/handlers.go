// Package handlers exposes the domain services over HTTP with Fiber.
package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"civic/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// requestError is a body or path parameter the server could not accept.
type requestError struct {
	detail string
	fields map[string]string
}

func (e *requestError) Error() string { return e.detail }

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bind parses the JSON body of c into out and validates it.
func bind(c *fiber.Ctx, validate *validator.Validate, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return &requestError{detail: "Invalid request body: " + err.Error()}
	}

	if err := validate.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return &requestError{detail: err.Error()}
		}
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return &requestError{detail: "Validation failed", fields: errorMessages}
	}
	return nil
}

// idParam reads a numeric path parameter.
func idParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, &requestError{detail: fmt.Sprintf("Invalid %s: must be an integer", name)}
	}
	return id, nil
}

// respondError writes err with the status its kind maps to.
func respondError(c *fiber.Ctx, err error) error {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		body := fiber.Map{"detail": reqErr.detail}
		if len(reqErr.fields) > 0 {
			body["errors"] = reqErr.fields
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(body)
	}

	var domainErr *services.DomainError
	if errors.As(err, &domainErr) {
		return c.Status(statusFor(domainErr)).JSON(fiber.Map{
			"detail": domainErr.Message,
			"error":  domainErr.Code,
		})
	}

	log.WithError(err).WithFields(log.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Error("Request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"detail": "Internal server error",
	})
}

func statusFor(err *services.DomainError) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler renders errors that escape the handlers, such as unknown
// routes, in the same {"detail": ...} shape as domain errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"detail": fiberErr.Message})
	}
	return respondError(c, err)
}

// Health answers the root route.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"Hello": "World"})
}
