package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemProductoRequest es una línea de producto del carrito.
type ItemProductoRequest struct {
	ProductoID  string          `json:"producto_id"  validate:"required,uuid"`
	Cantidad    int             `json:"cantidad"     validate:"required,min=1"`
	PrecioFinal decimal.Decimal `json:"precio_final" validate:"required"`
	Nota        *string         `json:"nota"`
}

// ItemServicioRequest es una línea de servicio del carrito.
type ItemServicioRequest struct {
	ServicioID  string          `json:"servicio_id"  validate:"required,uuid"`
	Cantidad    int             `json:"cantidad"     validate:"required,min=1"`
	PrecioFinal decimal.Decimal `json:"precio_final" validate:"required"`
	Nota        *string         `json:"nota"`
}

// RegistrarVentaRequest es el carrito completo. Debe traer al menos una
// línea entre productos y servicios (validado en el servicio).
type RegistrarVentaRequest struct {
	Items     []ItemProductoRequest `json:"items"     validate:"dive"`
	Servicios []ItemServicioRequest `json:"servicios" validate:"dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemProductoResponse struct {
	Producto    string          `json:"producto"`
	Cantidad    int             `json:"cantidad"`
	PrecioFinal decimal.Decimal `json:"precio_final"`
	Nota        *string         `json:"nota,omitempty"`
}

type ItemServicioResponse struct {
	Servicio    string          `json:"servicio"`
	Cantidad    int             `json:"cantidad"`
	PrecioFinal decimal.Decimal `json:"precio_final"`
	Nota        *string         `json:"nota,omitempty"`
}

type VentaResponse struct {
	ID        string                 `json:"id"`
	UsuarioID string                 `json:"usuario_id"`
	Vendedor  string                 `json:"vendedor,omitempty"`
	Total     decimal.Decimal        `json:"total"`
	Items     []ItemProductoResponse `json:"items"`
	Servicios []ItemServicioResponse `json:"servicios"`
	// Advertencias recoge fallos no fatales (p.ej. una comisión automática
	// que no pudo crearse); la venta en sí quedó registrada.
	Advertencias []string `json:"advertencias,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

// ─── Filter / List ──────────────────────────────────────────────────────────

// VentaFilter is bound from query string of GET /v1/ventas.
type VentaFilter struct {
	Fecha     string `form:"fecha"` // YYYY-MM-DD; empty = hoy
	UsuarioID string `form:"usuario_id"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
