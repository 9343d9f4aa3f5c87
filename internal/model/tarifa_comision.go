package model

import (
	"time"

	"github.com/google/uuid"
)

// TarifaComision define el porcentaje de comisión sobre el margen unitario
// para los productos de una categoría. A lo sumo una tarifa por categoría.
// Los servicios no tienen tabla propia: usan un 5% fijo (ver ComisionService).
type TarifaComision struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoriaID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Porcentaje  int       `gorm:"not null"` // 0–100
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria *CategoriaProducto `gorm:"foreignKey:CategoriaID"`
}

func (TarifaComision) TableName() string { return "tarifas_comision" }
