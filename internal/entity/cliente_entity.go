package entity

import "time"

type Cliente struct {
	Id           uint
	Nome         string
	Email        string
	Telefone     string
	Cpf          string
	Observacoes  string
	DataCadastro time.Time

	CorretorId *uint
	Corretor   *Corretor
}
