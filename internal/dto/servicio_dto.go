package dto

import "github.com/shopspring/decimal"

type CrearServicioRequest struct {
	Nombre           string          `json:"nombre"            validate:"required"`
	Descripcion      *string         `json:"descripcion"`
	CategoriaID      string          `json:"categoria_id"      validate:"required,uuid"`
	PrecioReferencia decimal.Decimal `json:"precio_referencia" validate:"required"`
}

type ActualizarServicioRequest struct {
	Nombre           *string          `json:"nombre"`
	Descripcion      *string          `json:"descripcion"`
	CategoriaID      *string          `json:"categoria_id" validate:"omitempty,uuid"`
	PrecioReferencia *decimal.Decimal `json:"precio_referencia"`
}

type ServicioResponse struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	Descripcion      *string         `json:"descripcion,omitempty"`
	CategoriaID      string          `json:"categoria_id"`
	Categoria        string          `json:"categoria,omitempty"`
	PrecioReferencia decimal.Decimal `json:"precio_referencia"`
	Activo           bool            `json:"activo"`
}

type ServicioFilter struct {
	Nombre      string `form:"nombre"`
	CategoriaID string `form:"categoria_id"`
	Activo      string `form:"activo"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ServicioListResponse struct {
	Data  []ServicioResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
