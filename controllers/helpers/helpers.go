package helpers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gookit/validate"

	"github.com/zsmartex/mocktrade/config"
	"github.com/zsmartex/mocktrade/services"
)

var (
	ServerInternalError       = "server.internal_error"
	ServerInvalidMessageBody  = "server.method.invalid_message_body"
	ServerInvalidMessageQuery = "server.method.invalid_query"
)

type Errors struct {
	Errors []string `json:"errors"`
}

func (e Errors) Size() int {
	return len(e.Errors)
}

func (e *Errors) Add(message string) {
	e.Errors = append(e.Errors, message)
}

func Vaildate(payload interface{}, err_src *Errors) {
	v := validate.Struct(payload)
	if !v.Validate() {
		for _, errs := range v.Errors.All() {
			for _, err := range errs {
				err_src.Errors = append(err_src.Errors, err)
			}
		}
	}
}

// VaildateMessage is the message table shared by every params struct; scope
// is the entity prefix, e.g. "order".
func VaildateMessage(scope string) map[string]string {
	invalid_message := scope + ".invalid_{field}"

	return validate.MS{
		"required": invalid_message,
		"min":      invalid_message,
	}
}

// RespondError renders a service error. Not-found keeps the bare
// {"error": "not found"} body callers already inspect.
func RespondError(c *fiber.Ctx, scope string, err error) error {
	var invalidField *services.InvalidFieldError
	var transition *services.TransitionError

	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{
			"error": services.ErrNotFound.Error(),
		})
	case errors.As(err, &invalidField):
		return c.Status(422).JSON(Errors{
			Errors: []string{invalidField.Error()},
		})
	case errors.As(err, &transition):
		return c.Status(422).JSON(Errors{
			Errors: []string{scope + ".invalid_transition"},
		})
	}

	config.Logger.WithError(err).WithField("path", c.Path()).Error("Storage operation failed")

	return c.Status(500).JSON(Errors{
		Errors: []string{ServerInternalError},
	})
}
