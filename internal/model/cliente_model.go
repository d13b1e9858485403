package model

import "time"

type Cliente struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	Nome         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(100);index"`
	Telefone     string    `gorm:"type:varchar(20)"`
	Cpf          string    `gorm:"type:varchar(14);not null;index"`
	Observacoes  string    `gorm:"type:text"`
	DataCadastro time.Time `gorm:"autoCreateTime"`

	CorretorId *uint     `gorm:"index"`
	Corretor   *Corretor `gorm:"foreignKey:CorretorId"`
}

func (Cliente) TableName() string {
	return "clientes"
}
