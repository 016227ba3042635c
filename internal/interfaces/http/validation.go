package http

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/boutique-api/internal/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// validatorInstance devuelve el validador compartido; los campos se reportan con su
// nombre JSON (o query) para que el panel pueda marcarlos.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
			}
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// bindBody decodifica el JSON del body en dst y aplica las reglas validate.
func bindBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return domain.ErrInvalidInput
	}
	return validatorInstance().Struct(dst)
}

// bindQuery igual que bindBody para los query params.
func bindQuery(c *fiber.Ctx, dst any) error {
	if err := c.QueryParser(dst); err != nil {
		return domain.ErrInvalidInput
	}
	return validatorInstance().Struct(dst)
}

// paramID lee un id numérico positivo de la ruta.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

func describeValidation(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field()+": "+validationMessage(e))
	}
	return strings.Join(parts, "; ")
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "email inválido"
	case "url":
		return "URL inválida"
	case "min":
		if e.Kind() == reflect.String {
			return "mínimo " + e.Param() + " caracteres"
		}
		return "mínimo " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "máximo " + e.Param() + " caracteres"
		}
		return "máximo " + e.Param()
	case "gt":
		return "debe ser mayor que " + e.Param()
	case "oneof":
		return "valores permitidos: " + e.Param()
	case "datetime":
		return "formato esperado " + e.Param()
	case "hexcolor":
		return "color hexadecimal inválido"
	case "len":
		return "debe tener " + e.Param() + " caracteres"
	case "numeric":
		return "solo dígitos"
	}
	return "no cumple la regla " + e.Tag()
}
