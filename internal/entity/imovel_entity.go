package entity

import "time"

// Endereco groups the address fields of an Imovel. It is mapped as an atomic
// embedded group, never flattened away.
type Endereco struct {
	Logradouro  string
	Bairro      string
	Cidade      string
	Estado      string
	Cep         string
	Complemento string
}

// Imovel is a real-estate listing. Caracteristicas and Imagens are never nil
// once loaded; an empty association set is an empty slice.
type Imovel struct {
	Id         uint
	Codigo     string
	Tipo       string
	Finalidade string
	Endereco   *Endereco

	Preco           float64
	ValorCondominio *float64
	ValorIptu       *float64

	AreaTotal     *float64
	AreaUtil      *float64
	Quartos       *int
	Suites        *int
	Banheiros     *int
	VagasGaragem  *int
	AnoConstrucao *int

	Descricao string
	Status    string
	Publicado bool

	DataCadastro    time.Time
	DataAtualizacao *time.Time

	CorretorId      *uint
	Corretor        *Corretor
	Imagens         []*Imagem
	Caracteristicas []*Caracteristica
}
