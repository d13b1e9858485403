package model

import "time"

type Endereco struct {
	Logradouro  string `gorm:"column:endereco;type:varchar(255);not null"`
	Bairro      string `gorm:"type:varchar(100)"`
	Cidade      string `gorm:"type:varchar(100);not null"`
	Estado      string `gorm:"type:varchar(2);not null"`
	Cep         string `gorm:"type:varchar(9)"`
	Complemento string `gorm:"type:varchar(50)"`
}

type Imovel struct {
	Id         uint     `gorm:"primaryKey;autoIncrement"`
	Codigo     string   `gorm:"type:varchar(50);uniqueIndex;not null"`
	Tipo       string   `gorm:"type:varchar(50);not null"`
	Finalidade string   `gorm:"type:varchar(20);not null;default:VENDA"`
	Endereco   Endereco `gorm:"embedded"`

	Preco           float64  `gorm:"type:numeric(15,2);not null"`
	ValorCondominio *float64 `gorm:"column:valor_condominio;type:numeric(10,2)"`
	ValorIptu       *float64 `gorm:"column:valor_iptu;type:numeric(10,2)"`

	AreaTotal     *float64 `gorm:"column:area_total;type:numeric(10,2)"`
	AreaUtil      *float64 `gorm:"column:area_util;type:numeric(10,2)"`
	Quartos       *int
	Suites        *int
	Banheiros     *int
	VagasGaragem  *int `gorm:"column:vagas_garagem"`
	AnoConstrucao *int `gorm:"column:ano_construcao"`

	Descricao string `gorm:"type:text"`
	Status    string `gorm:"type:varchar(20)"`
	Publicado bool   `gorm:"not null;default:false"`

	DataCadastro    time.Time  `gorm:"autoCreateTime"`
	DataAtualizacao *time.Time `gorm:"autoUpdateTime"`

	CorretorId      *uint             `gorm:"index"`
	Corretor        *Corretor         `gorm:"foreignKey:CorretorId"`
	Imagens         []*Imagem         `gorm:"foreignKey:ImovelId;constraint:OnDelete:CASCADE"`
	Caracteristicas []*Caracteristica `gorm:"many2many:imovel_caracteristicas"`
}

func (Imovel) TableName() string {
	return "imoveis"
}
