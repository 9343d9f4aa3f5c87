package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FilaResumenVentas es el agregado de ventas de un día.
type FilaResumenVentas struct {
	CantidadVentas int64
	TotalVendido   decimal.Decimal
}

// FilaTopProducto es una fila del ranking de productos por unidades vendidas.
type FilaTopProducto struct {
	ProductoID       string
	Nombre           string
	UnidadesVendidas int64
	TotalVendido     decimal.Decimal
}

// FilaComisionVendedor agrega las comisiones de un vendedor por estado.
type FilaComisionVendedor struct {
	UsuarioID      string
	Vendedor       string
	TotalPendiente decimal.Decimal
	TotalAprobada  decimal.Decimal
	TotalPagada    decimal.Decimal
}

// ReporteRepository ejecuta las consultas agregadas de reportes. Los agregados
// se calculan en SQL: el servicio solo mapea filas a DTOs.
type ReporteRepository interface {
	ResumenVentasDia(ctx context.Context, fecha string) (*FilaResumenVentas, error)
	TopProductos(ctx context.Context, fecha string, limite int) ([]FilaTopProducto, error)
	ComisionesPorVendedor(ctx context.Context) ([]FilaComisionVendedor, error)
}

type reporteRepo struct{ db *gorm.DB }

func NewReporteRepository(db *gorm.DB) ReporteRepository { return &reporteRepo{db: db} }

func (r *reporteRepo) ResumenVentasDia(ctx context.Context, fecha string) (*FilaResumenVentas, error) {
	var fila FilaResumenVentas
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)               AS cantidad_ventas,
		       COALESCE(SUM(total),0) AS total_vendido
		FROM ventas
		WHERE DATE(created_at) = ?`, fecha).Scan(&fila).Error
	if err != nil {
		return nil, err
	}
	return &fila, nil
}

func (r *reporteRepo) TopProductos(ctx context.Context, fecha string, limite int) ([]FilaTopProducto, error) {
	var filas []FilaTopProducto
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id                                   AS producto_id,
		       p.nombre                               AS nombre,
		       SUM(vp.cantidad)                       AS unidades_vendidas,
		       SUM(vp.precio_final * vp.cantidad)     AS total_vendido
		FROM venta_productos vp
		JOIN productos p ON p.id = vp.producto_id
		JOIN ventas v    ON v.id = vp.venta_id
		WHERE DATE(v.created_at) = ?
		GROUP BY p.id, p.nombre
		ORDER BY unidades_vendidas DESC, total_vendido DESC
		LIMIT ?`, fecha, limite).Scan(&filas).Error
	return filas, err
}

func (r *reporteRepo) ComisionesPorVendedor(ctx context.Context) ([]FilaComisionVendedor, error) {
	var filas []FilaComisionVendedor
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id     AS usuario_id,
		       u.nombre AS vendedor,
		       COALESCE(SUM(c.monto) FILTER (WHERE c.estado = 'pendiente'), 0) AS total_pendiente,
		       COALESCE(SUM(c.monto) FILTER (WHERE c.estado = 'aprobada'), 0)  AS total_aprobada,
		       COALESCE(SUM(c.monto) FILTER (WHERE c.estado = 'pagada'), 0)    AS total_pagada
		FROM usuarios u
		JOIN comisiones c ON c.usuario_id = u.id
		GROUP BY u.id, u.nombre
		ORDER BY u.nombre ASC`).Scan(&filas).Error
	return filas, err
}
