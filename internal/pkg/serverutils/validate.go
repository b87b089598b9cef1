package serverutils

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest checks the `validate` tags on a request struct and rejects
// the call with a 400 before it reaches the service layer.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		field := errs[0].Field()
		return NewAppError(fiber.StatusBadRequest, strings.ToLower(field)+" is "+errs[0].Tag(), nil)
	}
	return NewAppError(fiber.StatusBadRequest, "invalid request body", nil)
}
