package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"imobiliaria-crm-be/internal/pkg/apperror"
)

// ParamUint parses a positive numeric route parameter. Anything else fails as
// a validation error rather than reaching the database.
func ParamUint(ctx *fiber.Ctx, name string) (uint, error) {
	v, err := ctx.ParamsInt(name)
	if err != nil || v <= 0 {
		return 0, apperror.Validation("Parâmetro '%s' inválido.", name)
	}
	return uint(v), nil
}
