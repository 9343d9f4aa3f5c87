package dto

import "github.com/shopspring/decimal"

type CrearComisionManualRequest struct {
	UsuarioID  string          `json:"usuario_id" validate:"required,uuid"`
	Monto      decimal.Decimal `json:"monto"      validate:"required"`
	Comentario string          `json:"comentario" validate:"required"`
	VentaID    *string         `json:"venta_id"    validate:"omitempty,uuid"`
	ServicioID *string         `json:"servicio_id" validate:"omitempty,uuid"`
}

type CambiarEstadoComisionRequest struct {
	Estado          string  `json:"estado" validate:"required"`
	ComentarioAdmin *string `json:"comentario_admin"`
}

type ActualizarComentarioRequest struct {
	Comentario string `json:"comentario" validate:"required"`
}

type ComisionResponse struct {
	ID                 string          `json:"id"`
	UsuarioID          string          `json:"usuario_id"`
	VentaID            *string         `json:"venta_id,omitempty"`
	ServicioID         *string         `json:"servicio_id,omitempty"`
	Monto              decimal.Decimal `json:"monto"`
	Estado             string          `json:"estado"`
	ComentarioVendedor string          `json:"comentario_vendedor"`
	EsManual           bool            `json:"es_manual"`
	ComentarioAdmin    *string         `json:"comentario_admin,omitempty"`
	CreatedAt          string          `json:"created_at"`
}

// ComisionFilter is bound from query string of GET /v1/comisiones.
type ComisionFilter struct {
	UsuarioID string `form:"usuario_id"`
	Estado    string `form:"estado"` // pendiente | aprobada | rechazada | pagada | all
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ComisionListResponse struct {
	Data  []ComisionResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
