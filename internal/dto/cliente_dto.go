package dto

import (
	"time"

	"imobiliaria-crm-be/pkg/optional"
)

// ClienteRequest is the complete desired state of a client: create and update
// both overwrite every scalar field. The broker association follows the
// synchronizer rules (resolve when an id is supplied, clear otherwise).
type ClienteRequest struct {
	Nome        string                  `json:"nome" validate:"required,max=255"`
	Email       string                  `json:"email" validate:"omitempty,max=100"`
	Telefone    string                  `json:"telefone" validate:"max=20"`
	Cpf         string                  `json:"cpf" validate:"required,max=14"`
	Observacoes string                  `json:"observacoes"`
	CorretorId  optional.Optional[uint] `json:"corretorId"`
}

type ClienteResponse struct {
	Id           uint              `json:"id"`
	Nome         string            `json:"nome"`
	Email        string            `json:"email,omitempty"`
	Telefone     string            `json:"telefone,omitempty"`
	Cpf          string            `json:"cpf"`
	Observacoes  string            `json:"observacoes,omitempty"`
	DataCadastro time.Time         `json:"dataCadastro"`
	CorretorId   *uint             `json:"corretorId,omitempty"`
	Corretor     *CorretorResponse `json:"corretor,omitempty"`
}
