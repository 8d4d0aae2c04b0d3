// file: internals/helpers/validation.go
package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Validate menjalankan validator.v10 terhadap sebuah DTO.
func Validate(s any) error {
	return validate.Struct(s)
}

// ValidationErrorResponse menerjemahkan error validator menjadi 422 dengan
// map field → pesan. Error lain jatuh ke 400 generic.
func ValidationErrorResponse(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], validationMessage(fe))
	}
	return JsonValidationError(c, fieldErrors)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " wajib diisi."
	case "email":
		return "Format email tidak valid."
	case "min":
		return fe.Field() + " minimal " + fe.Param() + "."
	case "max":
		return fe.Field() + " maksimal " + fe.Param() + "."
	case "oneof":
		return fe.Field() + " harus salah satu dari: " + fe.Param() + "."
	case "gte":
		return fe.Field() + " harus >= " + fe.Param() + "."
	case "lte":
		return fe.Field() + " harus <= " + fe.Param() + "."
	default:
		return "Format tidak valid."
	}
}
