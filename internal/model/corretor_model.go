package model

import "time"

type Corretor struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	Nome         string    `gorm:"type:varchar(255);not null"`
	Cpf          string    `gorm:"type:varchar(14);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Telefone     string    `gorm:"type:varchar(20)"`
	Creci        string    `gorm:"type:varchar(20)"`
	DataCadastro time.Time `gorm:"autoCreateTime"`
	Ativo        bool      `gorm:"not null;default:true"`
}

func (Corretor) TableName() string {
	return "corretores"
}
