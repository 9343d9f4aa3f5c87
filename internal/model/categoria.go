package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoriaProducto clasifica productos. Las tarifas de comisión por
// categoría (TarifaComision) referencian esta tabla.
type CategoriaProducto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CategoriaProducto) TableName() string { return "categorias_producto" }

// CategoriaServicio clasifica servicios. Desactivar una categoría no toca
// sus servicios: la relación es solo una clave foránea, no un ciclo de vida.
type CategoriaServicio struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CategoriaServicio) TableName() string { return "categorias_servicio" }
