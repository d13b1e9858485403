package dto

import (
	"time"

	"imobiliaria-crm-be/pkg/optional"
)

type EnderecoDTO struct {
	Logradouro  string `json:"logradouro" validate:"required,max=255"`
	Bairro      string `json:"bairro" validate:"max=100"`
	Cidade      string `json:"cidade" validate:"required,max=100"`
	Estado      string `json:"estado" validate:"required,len=2"`
	Cep         string `json:"cep" validate:"max=9"`
	Complemento string `json:"complemento" validate:"max=50"`
}

// ImovelRequest is the complete desired state of a property's scalar and
// embedded fields. The association fields are partial-by-presence:
// corretorId clears the broker when absent or null, caracteristicaIds leaves
// the feature set untouched when absent or null and clears it when present
// and empty.
type ImovelRequest struct {
	Codigo     string       `json:"codigo" validate:"required,max=50"`
	Tipo       string       `json:"tipo" validate:"required,max=50"`
	Finalidade string       `json:"finalidade" validate:"required,max=20"`
	Endereco   *EnderecoDTO `json:"endereco" validate:"required"`

	Preco           float64  `json:"preco" validate:"required,gt=0"`
	ValorCondominio *float64 `json:"valorCondominio" validate:"omitempty,gte=0"`
	ValorIptu       *float64 `json:"valorIptu" validate:"omitempty,gte=0"`

	AreaTotal     *float64 `json:"areaTotal" validate:"omitempty,gt=0"`
	AreaUtil      *float64 `json:"areaUtil" validate:"omitempty,gt=0"`
	Quartos       *int     `json:"quartos" validate:"omitempty,gte=0"`
	Suites        *int     `json:"suites" validate:"omitempty,gte=0"`
	Banheiros     *int     `json:"banheiros" validate:"omitempty,gte=0"`
	VagasGaragem  *int     `json:"vagasGaragem" validate:"omitempty,gte=0"`
	AnoConstrucao *int     `json:"anoConstrucao"`

	Descricao string `json:"descricao"`
	Status    string `json:"status" validate:"max=20"`
	Publicado bool   `json:"publicado"`

	CorretorId        optional.Optional[uint]   `json:"corretorId"`
	CaracteristicaIds optional.Optional[[]uint] `json:"caracteristicaIds"`
}

type ImovelResponse struct {
	Id         uint         `json:"id"`
	Codigo     string       `json:"codigo"`
	Tipo       string       `json:"tipo"`
	Finalidade string       `json:"finalidade"`
	Endereco   *EnderecoDTO `json:"endereco"`

	Preco           float64  `json:"preco"`
	ValorCondominio *float64 `json:"valorCondominio,omitempty"`
	ValorIptu       *float64 `json:"valorIptu,omitempty"`

	AreaTotal     *float64 `json:"areaTotal,omitempty"`
	AreaUtil      *float64 `json:"areaUtil,omitempty"`
	Quartos       *int     `json:"quartos,omitempty"`
	Suites        *int     `json:"suites,omitempty"`
	Banheiros     *int     `json:"banheiros,omitempty"`
	VagasGaragem  *int     `json:"vagasGaragem,omitempty"`
	AnoConstrucao *int     `json:"anoConstrucao,omitempty"`

	Descricao string `json:"descricao,omitempty"`
	Status    string `json:"status"`
	Publicado bool   `json:"publicado"`

	DataCadastro    time.Time  `json:"dataCadastro"`
	DataAtualizacao *time.Time `json:"dataAtualizacao,omitempty"`

	CorretorId      *uint                     `json:"corretorId,omitempty"`
	Corretor        *CorretorResponse         `json:"corretor,omitempty"`
	Imagens         []*ImagemResponse         `json:"imagens"`
	Caracteristicas []*CaracteristicaResponse `json:"caracteristicas"`
}
