package entity

import "time"

// Corretor is a licensed real-estate agent. Cpf, Email and Creci are unique
// across the whole collection; Creci only when present.
type Corretor struct {
	Id           uint
	Nome         string
	Cpf          string
	Email        string
	Telefone     string
	Creci        string
	DataCadastro time.Time
	Ativo        bool
}
