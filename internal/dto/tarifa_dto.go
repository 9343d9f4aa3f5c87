package dto

type GuardarTarifaRequest struct {
	CategoriaID string `json:"categoria_id" validate:"required,uuid"`
	Porcentaje  int    `json:"porcentaje"   validate:"min=0,max=100"`
}

type TarifaComisionResponse struct {
	ID          string `json:"id"`
	CategoriaID string `json:"categoria_id"`
	Categoria   string `json:"categoria,omitempty"`
	Porcentaje  int    `json:"porcentaje"`
}
