package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta es la cabecera de una venta. Total es la suma de todas sus líneas
// (precio final × cantidad); lo deriva la capa de almacenamiento
// (VentaRepository.RefreshTotalTx) una vez que existen las líneas — el
// servicio nunca lo recalcula en línea.
type Venta struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Usuario   *Usuario        `gorm:"foreignKey:UsuarioID"`
	Items     []VentaProducto `gorm:"foreignKey:VentaID"`
	Servicios []VentaServicio `gorm:"foreignKey:VentaID"`
}

func (Venta) TableName() string { return "ventas" }

// VentaProducto es una línea de producto. PrecioFinal lo ingresa el vendedor
// y puede diferir del precio de catálogo. Las líneas se crean una única vez
// por venta y son inmutables después.
type VentaProducto struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad   int             `gorm:"not null"`
	PrecioFinal decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Nota       *string
	CreatedAt  time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (VentaProducto) TableName() string { return "venta_productos" }

// VentaServicio es una línea de servicio. Sin efecto sobre stock.
type VentaServicio struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServicioID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad    int             `gorm:"not null"`
	PrecioFinal decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Nota        *string
	CreatedAt   time.Time

	Servicio *Servicio `gorm:"foreignKey:ServicioID"`
}

func (VentaServicio) TableName() string { return "venta_servicios" }
