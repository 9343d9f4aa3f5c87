package dto

import "github.com/shopspring/decimal"

type RegistrarFinancieroRequest struct {
	Tipo        string          `json:"tipo"        validate:"required,oneof=ingreso egreso"`
	Descripcion string          `json:"descripcion" validate:"required"`
	Monto       decimal.Decimal `json:"monto"       validate:"required"`
}

type MovimientoFinancieroResponse struct {
	ID          string          `json:"id"`
	Tipo        string          `json:"tipo"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	CreatedAt   string          `json:"created_at"`
}

type FinancieroFilter struct {
	Tipo  string `form:"tipo"`  // ingreso | egreso | all
	Fecha string `form:"fecha"` // YYYY-MM-DD
	Page  int    `form:"page,default=1"    validate:"min=1"`
	Limit int    `form:"limit,default=100" validate:"min=1,max=500"`
}

type FinancieroListResponse struct {
	Data  []MovimientoFinancieroResponse `json:"data"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

// ResumenFinancieroResponse es el agregado en memoria de ingresos y egresos.
type ResumenFinancieroResponse struct {
	TotalIngresos decimal.Decimal `json:"total_ingresos"`
	TotalEgresos  decimal.Decimal `json:"total_egresos"`
	Balance       decimal.Decimal `json:"balance"`
}
