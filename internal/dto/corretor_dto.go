package dto

import (
	"time"

	"imobiliaria-crm-be/pkg/optional"
)

// CreateCorretorRequest carries the full broker payload. Required fields and
// formats are checked by the service in a fixed order, so no validate tags
// here.
type CreateCorretorRequest struct {
	Nome     string `json:"nome"`
	Cpf      string `json:"cpf"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Creci    string `json:"creci"`
}

// UpdateCorretorRequest overwrites a scalar field only when it arrives
// non-null and non-blank; everything else keeps its current value.
type UpdateCorretorRequest struct {
	Nome     optional.Optional[string] `json:"nome"`
	Cpf      optional.Optional[string] `json:"cpf"`
	Email    optional.Optional[string] `json:"email"`
	Telefone optional.Optional[string] `json:"telefone"`
	Creci    optional.Optional[string] `json:"creci"`
	Ativo    optional.Optional[bool]   `json:"ativo"`
}

type CorretorResponse struct {
	Id           uint      `json:"id"`
	Nome         string    `json:"nome"`
	Cpf          string    `json:"cpf"`
	Email        string    `json:"email"`
	Telefone     string    `json:"telefone,omitempty"`
	Creci        string    `json:"creci,omitempty"`
	DataCadastro time.Time `json:"dataCadastro"`
	Ativo        bool      `json:"ativo"`
}
