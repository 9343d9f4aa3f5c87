package dto

import "github.com/shopspring/decimal"

// ResumenVentasResponse agrega las ventas de un día.
type ResumenVentasResponse struct {
	Fecha          string          `json:"fecha"`
	CantidadVentas int64           `json:"cantidad_ventas"`
	TotalVendido   decimal.Decimal `json:"total_vendido"`
}

// TopProductoResponse es una fila del ranking de productos por unidades vendidas.
type TopProductoResponse struct {
	ProductoID       string          `json:"producto_id"`
	Nombre           string          `json:"nombre"`
	UnidadesVendidas int64           `json:"unidades_vendidas"`
	TotalVendido     decimal.Decimal `json:"total_vendido"`
}

// ComisionesVendedorResponse agrega las comisiones de un vendedor por estado.
type ComisionesVendedorResponse struct {
	UsuarioID      string          `json:"usuario_id"`
	Vendedor       string          `json:"vendedor"`
	TotalPendiente decimal.Decimal `json:"total_pendiente"`
	TotalAprobada  decimal.Decimal `json:"total_aprobada"`
	TotalPagada    decimal.Decimal `json:"total_pagada"`
}
