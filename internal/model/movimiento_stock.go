package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de movimiento de stock.
const (
	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
)

// MovimientoStock registra cada cambio de stock de un producto: la venta lo
// escribe explícitamente dentro de su transacción, y los ajustes manuales lo
// escriben desde InventarioService. Cantidad siempre es positiva; el sentido
// lo da Tipo.
type MovimientoStock struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Tipo          string    `gorm:"type:varchar(10);not null"` // entrada | salida
	Cantidad      int       `gorm:"not null"`
	StockAnterior int       `gorm:"not null"`
	StockNuevo    int       `gorm:"not null"`
	Motivo        string
	ReferenciaID  *uuid.UUID `gorm:"type:uuid"` // venta_id cuando aplica
	CreatedAt     time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

// TableName overrides GORM's default pluralization (movimiento_stocks → movimientos_stock).
func (MovimientoStock) TableName() string { return "movimientos_stock" }
