package model

type Caracteristica struct {
	Id   uint   `gorm:"primaryKey;autoIncrement"`
	Nome string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

func (Caracteristica) TableName() string {
	return "caracteristicas"
}
