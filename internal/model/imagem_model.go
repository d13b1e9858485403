package model

import "time"

type Imagem struct {
	Id         uint      `gorm:"primaryKey;autoIncrement"`
	ImovelId   uint      `gorm:"not null;index"`
	Url        string    `gorm:"type:varchar(255);not null"`
	Legenda    string    `gorm:"type:varchar(255)"`
	Ordem      int       `gorm:"not null;default:0"`
	DataUpload time.Time `gorm:"autoCreateTime"`
}

func (Imagem) TableName() string {
	return "imagens"
}
