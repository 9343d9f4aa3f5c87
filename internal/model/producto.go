package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados derivados de un producto según su stock.
const (
	EstadoDisponible = "disponible"
	EstadoStockBajo  = "stock_bajo"
	EstadoAgotado    = "agotado"
)

// Producto es un artículo físico del catálogo (cerraduras, llaves en bruto,
// candados, herrajes). Los servicios de cerrajería se modelan aparte en
// Servicio: no tienen stock.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	CategoriaID uuid.UUID `gorm:"type:uuid;not null;index"`
	// PrecioCosto es el costo interno; la comisión del vendedor se calcula
	// sobre el margen (precio final - costo), nunca sobre el precio bruto.
	PrecioCosto decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioVenta decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockActual int             `gorm:"not null;default:0"`
	StockMinimo int             `gorm:"not null;default:5"`
	// Estado se deriva siempre de StockActual/StockMinimo vía
	// RecalcularEstado(); nunca se asigna de forma independiente.
	Estado    string `gorm:"not null;default:'disponible'"`
	Activo    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Categoria *CategoriaProducto `gorm:"foreignKey:CategoriaID"`
}

func (Producto) TableName() string { return "productos" }

// RecalcularEstado fija Estado a partir del stock actual. Debe llamarse
// después de toda mutación de stock, antes de persistir.
func (p *Producto) RecalcularEstado() {
	switch {
	case p.StockActual <= 0:
		p.Estado = EstadoAgotado
	case p.StockActual <= p.StockMinimo:
		p.Estado = EstadoStockBajo
	default:
		p.Estado = EstadoDisponible
	}
}
