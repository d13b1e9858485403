package dto

import "time"

type CreateImagemRequest struct {
	Url     string `json:"url" validate:"required,max=255"`
	Legenda string `json:"legenda" validate:"max=255"`
	Ordem   *int   `json:"ordem"`
}

// UpdateImagemRequest: only caption and display order are mutable, each
// overwritten only when supplied. Url and the parent property are immutable.
type UpdateImagemRequest struct {
	Legenda *string `json:"legenda"`
	Ordem   *int    `json:"ordem"`
}

type ImagemResponse struct {
	Id         uint      `json:"id"`
	ImovelId   uint      `json:"imovelId"`
	Url        string    `json:"url"`
	Legenda    string    `json:"legenda,omitempty"`
	Ordem      int       `json:"ordem"`
	DataUpload time.Time `json:"dataUpload"`
}
