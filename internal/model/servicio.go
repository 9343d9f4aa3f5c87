package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Servicio es una prestación de cerrajería (apertura, copia de llave,
// instalación). No maneja stock; PrecioReferencia es orientativo y el
// vendedor puede pactar otro precio final al registrar la venta.
type Servicio struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre           string    `gorm:"index;not null"`
	Descripcion      *string
	CategoriaID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	PrecioReferencia decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Activo           bool            `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Categoria *CategoriaServicio `gorm:"foreignKey:CategoriaID"`
}

func (Servicio) TableName() string { return "servicios" }
