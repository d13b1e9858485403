package dto

// CaracteristicaRequest carries just a name; updates replace it entirely.
type CaracteristicaRequest struct {
	Nome string `json:"nome" validate:"required,max=100"`
}

type CaracteristicaResponse struct {
	Id   uint   `json:"id"`
	Nome string `json:"nome"`
}
