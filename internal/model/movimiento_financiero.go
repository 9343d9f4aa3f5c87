package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipos de movimiento financiero.
const (
	FinancieroIngreso = "ingreso"
	FinancieroEgreso  = "egreso"
)

// MovimientoFinanciero es un asiento del libro de ingresos/egresos del
// negocio, independiente de ventas y comisiones. Inmutable: no hay flujo de
// edición ni borrado.
type MovimientoFinanciero struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo        string          `gorm:"type:varchar(10);not null;index"` // ingreso | egreso
	Descripcion string          `gorm:"not null"`
	Monto       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time
}

func (MovimientoFinanciero) TableName() string { return "movimientos_financieros" }
