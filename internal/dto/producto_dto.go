package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"       validate:"required"`
	CategoriaID string          `json:"categoria_id" validate:"required,uuid"`
	PrecioCosto decimal.Decimal `json:"precio_costo" validate:"min=0"`
	PrecioVenta decimal.Decimal `json:"precio_venta" validate:"required"`
	StockActual int             `json:"stock_actual" validate:"min=0"`
	StockMinimo int             `json:"stock_minimo" validate:"min=0"`
}

type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"`
	CategoriaID *string          `json:"categoria_id" validate:"omitempty,uuid"`
	PrecioCosto *decimal.Decimal `json:"precio_costo"`
	PrecioVenta *decimal.Decimal `json:"precio_venta"`
	StockMinimo *int             `json:"stock_minimo"`
}

type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	CategoriaID string          `json:"categoria_id"`
	Categoria   string          `json:"categoria,omitempty"`
	PrecioCosto decimal.Decimal `json:"precio_costo"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	StockActual int             `json:"stock_actual"`
	StockMinimo int             `json:"stock_minimo"`
	Estado      string          `json:"estado"`
	Activo      bool            `json:"activo"`
}

// ProductoFilter is bound from query string of GET /v1/productos.
type ProductoFilter struct {
	Nombre      string `form:"nombre"`
	CategoriaID string `form:"categoria_id"`
	Estado      string `form:"estado"` // disponible | stock_bajo | agotado
	Activo      string `form:"activo"` // "false" = inactivos, "all" = todos, default activos
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// ConsultaPrecioResponse is the public price check payload (cached in redis).
type ConsultaPrecioResponse struct {
	Nombre          string          `json:"nombre"`
	PrecioVenta     decimal.Decimal `json:"precio_venta"`
	StockDisponible int             `json:"stock_disponible"`
	Estado          string          `json:"estado"`
}
