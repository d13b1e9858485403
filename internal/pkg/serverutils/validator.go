package serverutils

import (
	"errors"
	"strings"

	"imobiliaria-crm-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs the struct tags of a decoded payload and converts the
// first violation into the validation error taxonomy, naming the field and
// the broken rule.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return apperror.Validation("Campo '%s' inválido: regra '%s' violada.", fieldName(f), f.Tag())
	}
	return apperror.Validation("Payload inválido.")
}

func fieldName(f validator.FieldError) string {
	// Namespace comes as "ImovelRequest.Endereco.Cidade"; keep everything
	// after the root struct.
	parts := strings.SplitN(f.Namespace(), ".", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return f.Field()
}
