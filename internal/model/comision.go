package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una comisión. Solo el administrador mueve una
// comisión fuera de "pendiente"; cualquier otro estado es terminal para el
// vendedor.
const (
	ComisionPendiente = "pendiente"
	ComisionAprobada  = "aprobada"
	ComisionRechazada = "rechazada"
	ComisionPagada    = "pagada"
)

// EstadoComisionValido reporta si s pertenece al conjunto de estados permitidos.
func EstadoComisionValido(s string) bool {
	switch s {
	case ComisionPendiente, ComisionAprobada, ComisionRechazada, ComisionPagada:
		return true
	}
	return false
}

// Comision es una comisión a favor de un vendedor. EsManual=false cuando la
// generó el sistema al registrar una venta; true cuando la cargó un
// administrador. VentaID/ServicioID son referencias débiles opcionales:
// la comisión no es dueña de la venta ni del servicio que la originó.
type Comision struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	VentaID            *uuid.UUID `gorm:"type:uuid;index"`
	ServicioID         *uuid.UUID `gorm:"type:uuid"`
	Monto              decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Estado             string          `gorm:"type:varchar(20);not null;default:'pendiente';index"`
	ComentarioVendedor string
	EsManual           bool `gorm:"not null;default:false"`
	ComentarioAdmin    *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (Comision) TableName() string { return "comisiones" }
