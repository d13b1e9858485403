package entity

import "time"

// Imagem belongs to exactly one Imovel. ImovelId is set on creation and never
// changes; deleting the parent deletes the image.
type Imagem struct {
	Id         uint
	ImovelId   uint
	Url        string
	Legenda    string
	Ordem      int
	DataUpload time.Time
}
