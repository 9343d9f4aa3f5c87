package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/apierror"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	RegistrarVenta(ctx context.Context, vendedorID uuid.UUID, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	ObtenerVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	ListVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	inventario   InventarioService
	comisiones   ComisionService
	productoRepo repository.ProductoRepository
	servicioRepo repository.ServicioRepository
}

func NewVentaService(
	repo repository.VentaRepository,
	inventario InventarioService,
	comisiones ComisionService,
	productoRepo repository.ProductoRepository,
	servicioRepo repository.ServicioRepository,
) VentaService {
	return &ventaService{
		repo:         repo,
		inventario:   inventario,
		comisiones:   comisiones,
		productoRepo: productoRepo,
		servicioRepo: servicioRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// esErrorDominio reports whether err is one of the typed domain failures that
// must surface to the caller as-is instead of wrapped as StorageError.
func esErrorDominio(err error) bool {
	var nf *apierror.NotFoundError
	var ve *apierror.ValidationError
	var is *apierror.InsufficientStockError
	var ce *apierror.ConflictError
	return errors.As(err, &nf) || errors.As(err, &ve) || errors.As(err, &is) || errors.As(err, &ce)
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// Transacción ACID completa:
//   1. Pre-vuelo fuera de la tx: resolver productos/servicios, validar
//      existencia, actividad y suficiencia de stock.
//   2. BEGIN TX: crear cabecera (total = 0), crear líneas, descontar stock,
//      registrar movimientos de stock tipo "salida".
//   3. Generar comisiones automáticas (fallos individuales = advertencia,
//      nunca rollback).
//   4. Derivar el total desde las líneas persistidas y COMMIT.
//
// Limitación conocida: la relectura dentro de la tx no toma bloqueo de fila,
// así que dos ventas concurrentes pueden pasar ambas la re-validación con el
// aislamiento por defecto del motor. El descuento se aplica como delta
// atómico, de modo que ningún débito confirmado se pierde en ese caso.

func (s *ventaService) RegistrarVenta(ctx context.Context, vendedorID uuid.UUID, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if len(req.Items) == 0 && len(req.Servicios) == 0 {
		return nil, apierror.NewValidation("la venta debe incluir al menos una línea")
	}

	type lineaProducto struct {
		producto    *model.Producto
		cantidad    int
		precioFinal decimal.Decimal
		nota        *string
	}
	type lineaServicio struct {
		servicio    *model.Servicio
		cantidad    int
		precioFinal decimal.Decimal
		nota        *string
	}

	// 1. Pre-vuelo: resolver y validar todas las líneas antes de escribir nada.
	var productos []lineaProducto
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, apierror.NewValidation("producto_id inválido: %s", item.ProductoID)
		}
		p, err := s.productoRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, apierror.NewNotFound("producto", item.ProductoID)
		}
		if !p.Activo {
			return nil, apierror.NewValidation("el producto %s está inactivo y no puede venderse", p.Nombre)
		}
		if p.StockActual < item.Cantidad {
			return nil, &apierror.InsufficientStockError{
				Producto:    p.Nombre,
				StockActual: p.StockActual,
				Solicitado:  item.Cantidad,
			}
		}
		productos = append(productos, lineaProducto{
			producto:    p,
			cantidad:    item.Cantidad,
			precioFinal: item.PrecioFinal,
			nota:        item.Nota,
		})
	}

	var servicios []lineaServicio
	for _, item := range req.Servicios {
		sid, err := uuid.Parse(item.ServicioID)
		if err != nil {
			return nil, apierror.NewValidation("servicio_id inválido: %s", item.ServicioID)
		}
		sv, err := s.servicioRepo.FindByID(ctx, sid)
		if err != nil {
			return nil, apierror.NewNotFound("servicio", item.ServicioID)
		}
		if !sv.Activo {
			return nil, apierror.NewValidation("el servicio %s está inactivo y no puede venderse", sv.Nombre)
		}
		servicios = append(servicios, lineaServicio{
			servicio:    sv,
			cantidad:    item.Cantidad,
			precioFinal: item.PrecioFinal,
			nota:        item.Nota,
		})
	}

	// 2. Transacción ACID.
	var venta model.Venta
	var advertencias []string
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		venta = model.Venta{
			UsuarioID: vendedorID,
			Total:     decimal.Zero,
		}
		if err := s.repo.CreateTx(ctx, tx, &venta); err != nil {
			return err
		}

		for i := range productos {
			l := &productos[i]
			item := model.VentaProducto{
				VentaID:     venta.ID,
				ProductoID:  l.producto.ID,
				Cantidad:    l.cantidad,
				PrecioFinal: l.precioFinal,
				Nota:        l.nota,
			}
			if err := s.repo.CreateItemTx(tx, &item); err != nil {
				return err
			}

			// Relectura dentro de la tx: la instantánea del pre-vuelo puede
			// estar vieja si otra venta confirmó entre medio. La precondición
			// de stock se re-valida sobre este valor fresco y el descuento se
			// persiste como delta, no como valor absoluto.
			fresco, err := s.productoRepo.FindByIDTx(tx, l.producto.ID)
			if err != nil {
				return err
			}
			l.producto = fresco
			stockAntes := fresco.StockActual
			if err := s.inventario.DescontarStockTx(ctx, tx, l.producto, l.cantidad); err != nil {
				return fmt.Errorf("error descontando stock de %s: %w", l.producto.Nombre, err)
			}

			// El movimiento de stock lo escribe siempre esta transacción de
			// forma explícita: nada más lo produce.
			ventaRef := venta.ID
			mov := &model.MovimientoStock{
				ProductoID:    l.producto.ID,
				Tipo:          model.MovimientoSalida,
				Cantidad:      l.cantidad,
				StockAnterior: stockAntes,
				StockNuevo:    l.producto.StockActual,
				Motivo:        fmt.Sprintf("Venta %s: %s", venta.ID, l.producto.Nombre),
				ReferenciaID:  &ventaRef,
			}
			if err := s.inventario.RegistrarMovimientoTx(tx, mov); err != nil {
				return err
			}
		}

		for i := range servicios {
			l := &servicios[i]
			item := model.VentaServicio{
				VentaID:     venta.ID,
				ServicioID:  l.servicio.ID,
				Cantidad:    l.cantidad,
				PrecioFinal: l.precioFinal,
				Nota:        l.nota,
			}
			if err := s.repo.CreateServicioTx(tx, &item); err != nil {
				return err
			}
		}

		// 3. Comisiones automáticas — no fatales para la venta.
		for i := range productos {
			l := &productos[i]
			if err := s.comisiones.GenerarPorProductoTx(tx, venta.ID, vendedorID, l.producto, l.precioFinal, l.cantidad); err != nil {
				log.Warn().Err(err).
					Str("venta_id", venta.ID.String()).
					Str("producto", l.producto.Nombre).
					Msg("no se pudo generar la comisión automática")
				advertencias = append(advertencias, fmt.Sprintf("comisión no generada para producto %s", l.producto.Nombre))
			}
		}
		for i := range servicios {
			l := &servicios[i]
			if err := s.comisiones.GenerarPorServicioTx(tx, venta.ID, vendedorID, l.servicio, l.precioFinal, l.cantidad); err != nil {
				log.Warn().Err(err).
					Str("venta_id", venta.ID.String()).
					Str("servicio", l.servicio.Nombre).
					Msg("no se pudo generar la comisión automática")
				advertencias = append(advertencias, fmt.Sprintf("comisión no generada para servicio %s", l.servicio.Nombre))
			}
		}

		// 4. Total derivado por la capa de almacenamiento.
		return s.repo.RefreshTotalTx(tx, venta.ID)
	})
	if txErr != nil {
		if esErrorDominio(txErr) {
			return nil, txErr
		}
		return nil, apierror.NewStorage("registrar venta", txErr)
	}

	// Releer para obtener el total derivado y las líneas con sus nombres.
	full, err := s.repo.FindByID(ctx, venta.ID)
	if err != nil {
		log.Warn().Err(err).Str("venta_id", venta.ID.String()).Msg("venta registrada pero no se pudo releer")
		full = &venta
	}
	resp := ventaToResponse(full)
	resp.Advertencias = advertencias
	return resp, nil
}

func (s *ventaService) ObtenerVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("venta", id.String())
	}
	return ventaToResponse(v), nil
}

// ListVentas returns a paginated list of sales. Default filter: today.
func (s *ventaService) ListVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	ventas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.NewStorage("listar ventas", err)
	}
	items := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		items = append(items, *ventaToResponse(&ventas[i]))
	}
	return &dto.VentaListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	items := make([]dto.ItemProductoResponse, 0, len(v.Items))
	for _, item := range v.Items {
		nombre := ""
		if item.Producto != nil {
			nombre = item.Producto.Nombre
		}
		items = append(items, dto.ItemProductoResponse{
			Producto:    nombre,
			Cantidad:    item.Cantidad,
			PrecioFinal: item.PrecioFinal,
			Nota:        item.Nota,
		})
	}
	servicios := make([]dto.ItemServicioResponse, 0, len(v.Servicios))
	for _, item := range v.Servicios {
		nombre := ""
		if item.Servicio != nil {
			nombre = item.Servicio.Nombre
		}
		servicios = append(servicios, dto.ItemServicioResponse{
			Servicio:    nombre,
			Cantidad:    item.Cantidad,
			PrecioFinal: item.PrecioFinal,
			Nota:        item.Nota,
		})
	}
	resp := &dto.VentaResponse{
		ID:        v.ID.String(),
		UsuarioID: v.UsuarioID.String(),
		Total:     v.Total,
		Items:     items,
		Servicios: servicios,
		CreatedAt: v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if v.Usuario != nil {
		resp.Vendedor = v.Usuario.Nombre
	}
	return resp
}
