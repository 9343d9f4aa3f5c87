package service

import (
	"context"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/apierror"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventarioService defines the contract for stock management: applying
// signed stock deltas with the estado invariant, and the movement audit log.
type InventarioService interface {
	// AjustarStock aplica un delta manual (positivo = entrada, negativo =
	// salida) y registra el movimiento correspondiente.
	AjustarStock(ctx context.Context, productoID uuid.UUID, req dto.AjustarStockRequest) (*dto.ProductoResponse, error)
	// DescontarStockTx is called within a sale transaction; p must be the
	// product re-read inside that tx. Re-validates the stock precondition,
	// mutates p in place (stock + estado) and persists the debit as an
	// atomic delta through the tx.
	DescontarStockTx(ctx context.Context, tx *gorm.DB, p *model.Producto, cantidad int) error
	RegistrarMovimientoTx(tx *gorm.DB, m *model.MovimientoStock) error
	ListarMovimientos(ctx context.Context, filter repository.MovimientoStockFilter) (*dto.MovimientoStockListResponse, error)
	// ObtenerAlertas lista los productos activos con stock bajo o agotado.
	ObtenerAlertas(ctx context.Context) ([]dto.AlertaStockResponse, error)
}

type inventarioService struct {
	repo    repository.ProductoRepository
	movRepo repository.MovimientoStockRepository
}

func NewInventarioService(repo repository.ProductoRepository, movRepo repository.MovimientoStockRepository) InventarioService {
	return &inventarioService{repo: repo, movRepo: movRepo}
}

// aplicarCambioStock es la única ruta por la que muta el stock de un
// producto: valida la precondición stock+delta >= 0 y recalcula el estado
// derivado antes de que el llamador persista.
func aplicarCambioStock(p *model.Producto, delta int) error {
	if p.StockActual+delta < 0 {
		return &apierror.InsufficientStockError{
			Producto:    p.Nombre,
			StockActual: p.StockActual,
			Solicitado:  -delta,
		}
	}
	p.StockActual += delta
	p.RecalcularEstado()
	return nil
}

func (s *inventarioService) AjustarStock(ctx context.Context, productoID uuid.UUID, req dto.AjustarStockRequest) (*dto.ProductoResponse, error) {
	if req.Delta == 0 {
		return nil, apierror.NewValidation("el delta no puede ser cero")
	}

	p, err := s.repo.FindByID(ctx, productoID)
	if err != nil {
		return nil, apierror.NewNotFound("producto", productoID.String())
	}

	stockAntes := p.StockActual
	if err := aplicarCambioStock(p, req.Delta); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apierror.NewStorage("actualizar stock", err)
	}

	tipo := model.MovimientoEntrada
	cantidad := req.Delta
	if req.Delta < 0 {
		tipo = model.MovimientoSalida
		cantidad = -req.Delta
	}
	mov := &model.MovimientoStock{
		ProductoID:    p.ID,
		Tipo:          tipo,
		Cantidad:      cantidad,
		StockAnterior: stockAntes,
		StockNuevo:    p.StockActual,
		Motivo:        req.Motivo,
	}
	if err := s.movRepo.Create(ctx, mov); err != nil {
		return nil, apierror.NewStorage("registrar movimiento de stock", err)
	}

	return productoToResponse(p), nil
}

func (s *inventarioService) DescontarStockTx(ctx context.Context, tx *gorm.DB, p *model.Producto, cantidad int) error {
	if err := aplicarCambioStock(p, -cantidad); err != nil {
		return err
	}
	// Delta atómico, nunca el valor absoluto de p: un Save de fila completa
	// pisaría descuentos confirmados por ventas concurrentes.
	return s.repo.UpdateStockTx(tx, p.ID, -cantidad, p.Estado)
}

func (s *inventarioService) RegistrarMovimientoTx(tx *gorm.DB, m *model.MovimientoStock) error {
	return s.movRepo.CreateTx(tx, m)
}

func (s *inventarioService) ListarMovimientos(ctx context.Context, filter repository.MovimientoStockFilter) (*dto.MovimientoStockListResponse, error) {
	movimientos, total, err := s.movRepo.List(ctx, filter)
	if err != nil {
		return nil, apierror.NewStorage("listar movimientos", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 500 {
		limit = 100
	}

	items := make([]dto.MovimientoStockResponse, 0, len(movimientos))
	for i := range movimientos {
		items = append(items, movimientoToResponse(&movimientos[i]))
	}
	return &dto.MovimientoStockListResponse{Data: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *inventarioService) ObtenerAlertas(ctx context.Context) ([]dto.AlertaStockResponse, error) {
	productos, err := s.repo.ListBajoStock(ctx)
	if err != nil {
		return nil, apierror.NewStorage("listar alertas de stock", err)
	}
	alertas := make([]dto.AlertaStockResponse, 0, len(productos))
	for _, p := range productos {
		alertas = append(alertas, dto.AlertaStockResponse{
			ProductoID:  p.ID.String(),
			Nombre:      p.Nombre,
			StockActual: p.StockActual,
			StockMinimo: p.StockMinimo,
			Estado:      p.Estado,
		})
	}
	return alertas, nil
}

func movimientoToResponse(m *model.MovimientoStock) dto.MovimientoStockResponse {
	resp := dto.MovimientoStockResponse{
		ID:            m.ID.String(),
		ProductoID:    m.ProductoID.String(),
		Tipo:          m.Tipo,
		Cantidad:      m.Cantidad,
		StockAnterior: m.StockAnterior,
		StockNuevo:    m.StockNuevo,
		Motivo:        m.Motivo,
		CreatedAt:     m.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if m.Producto != nil {
		resp.Producto = m.Producto.Nombre
	}
	if m.ReferenciaID != nil {
		ref := m.ReferenciaID.String()
		resp.ReferenciaID = &ref
	}
	return resp
}
