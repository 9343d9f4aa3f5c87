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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// tasaComisionServicio es el 5% fijo aplicado a líneas de servicio. No hay
// tabla configurable por categoría de servicio (a diferencia de productos);
// es una simplificación deliberada del negocio, no un valor a parametrizar.
var tasaComisionServicio = decimal.New(5, -2)

type ComisionService interface {
	// Política pura de cálculo — sin efectos.
	CalcularComisionProducto(p *model.Producto, precioFinal decimal.Decimal, cantidad int, tarifa *model.TarifaComision) decimal.Decimal
	CalcularComisionServicio(precioFinal decimal.Decimal, cantidad int) decimal.Decimal

	// Generación automática dentro de la transacción de venta.
	GenerarPorProductoTx(tx *gorm.DB, ventaID, vendedorID uuid.UUID, p *model.Producto, precioFinal decimal.Decimal, cantidad int) error
	GenerarPorServicioTx(tx *gorm.DB, ventaID, vendedorID uuid.UUID, s *model.Servicio, precioFinal decimal.Decimal, cantidad int) error

	// Ciclo de vida.
	CrearManual(ctx context.Context, req dto.CrearComisionManualRequest) (*dto.ComisionResponse, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, req dto.CambiarEstadoComisionRequest) (*dto.ComisionResponse, error)
	ActualizarComentario(ctx context.Context, id, usuarioID uuid.UUID, comentario string) (*dto.ComisionResponse, error)
	Eliminar(ctx context.Context, id, usuarioID uuid.UUID, rol string) error
	Listar(ctx context.Context, filter dto.ComisionFilter) (*dto.ComisionListResponse, error)
}

type comisionService struct {
	repo        repository.ComisionRepository
	tarifaRepo  repository.TarifaComisionRepository
	usuarioRepo repository.UsuarioRepository
}

func NewComisionService(
	repo repository.ComisionRepository,
	tarifaRepo repository.TarifaComisionRepository,
	usuarioRepo repository.UsuarioRepository,
) ComisionService {
	return &comisionService{repo: repo, tarifaRepo: tarifaRepo, usuarioRepo: usuarioRepo}
}

// ── Cálculo ───────────────────────────────────────────────────────────────────

// CalcularComisionProducto aplica la tarifa de la categoría al margen
// unitario. El redondeo a 2 decimales ocurre POR UNIDAD, antes de multiplicar
// por la cantidad: el orden importa y debe preservarse aunque acumule
// diferencias de centavos frente a redondear el agregado.
func (s *comisionService) CalcularComisionProducto(p *model.Producto, precioFinal decimal.Decimal, cantidad int, tarifa *model.TarifaComision) decimal.Decimal {
	if tarifa == nil {
		return decimal.Zero
	}
	pct := decimal.NewFromInt(int64(tarifa.Porcentaje)).Div(decimal.NewFromInt(100))
	margenUnitario := precioFinal.Sub(p.PrecioCosto)
	comisionUnitaria := margenUnitario.Mul(pct).Round(2)
	return comisionUnitaria.Mul(decimal.NewFromInt(int64(cantidad)))
}

// CalcularComisionServicio aplica el 5% fijo sobre el total de la línea.
func (s *comisionService) CalcularComisionServicio(precioFinal decimal.Decimal, cantidad int) decimal.Decimal {
	total := precioFinal.Mul(decimal.NewFromInt(int64(cantidad)))
	return total.Mul(tasaComisionServicio).Round(2)
}

// ── Generación automática ─────────────────────────────────────────────────────

func (s *comisionService) GenerarPorProductoTx(tx *gorm.DB, ventaID, vendedorID uuid.UUID, p *model.Producto, precioFinal decimal.Decimal, cantidad int) error {
	tarifa, err := s.tarifaRepo.FindByCategoriaTx(tx, p.CategoriaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Sin tarifa configurada: comisión cero, no se crea fila.
			return nil
		}
		return err
	}

	monto := s.CalcularComisionProducto(p, precioFinal, cantidad, tarifa)
	if monto.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	ventaRef := ventaID
	c := &model.Comision{
		UsuarioID:          vendedorID,
		VentaID:            &ventaRef,
		Monto:              monto,
		Estado:             model.ComisionPendiente,
		ComentarioVendedor: fmt.Sprintf("Comisión automática por venta de %s (x%d)", p.Nombre, cantidad),
		EsManual:           false,
	}
	return s.repo.CreateTx(tx, c)
}

func (s *comisionService) GenerarPorServicioTx(tx *gorm.DB, ventaID, vendedorID uuid.UUID, sv *model.Servicio, precioFinal decimal.Decimal, cantidad int) error {
	monto := s.CalcularComisionServicio(precioFinal, cantidad)
	if monto.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	ventaRef := ventaID
	servicioRef := sv.ID
	c := &model.Comision{
		UsuarioID:          vendedorID,
		VentaID:            &ventaRef,
		ServicioID:         &servicioRef,
		Monto:              monto,
		Estado:             model.ComisionPendiente,
		ComentarioVendedor: fmt.Sprintf("Comisión automática por servicio %s (x%d)", sv.Nombre, cantidad),
		EsManual:           false,
	}
	return s.repo.CreateTx(tx, c)
}

// ── Ciclo de vida ─────────────────────────────────────────────────────────────

func (s *comisionService) CrearManual(ctx context.Context, req dto.CrearComisionManualRequest) (*dto.ComisionResponse, error) {
	usuarioID, err := uuid.Parse(req.UsuarioID)
	if err != nil {
		return nil, apierror.NewValidation("usuario_id inválido")
	}
	if req.Monto.LessThanOrEqual(decimal.Zero) {
		return nil, apierror.NewValidation("el monto debe ser mayor a cero")
	}
	if req.Comentario == "" {
		return nil, apierror.NewValidation("el comentario es obligatorio")
	}

	usuario, err := s.usuarioRepo.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, apierror.NewNotFound("usuario", req.UsuarioID)
	}
	if !usuario.Activo {
		return nil, apierror.NewValidation("el usuario %s está inactivo", usuario.Username)
	}

	c := &model.Comision{
		UsuarioID:          usuarioID,
		Monto:              req.Monto,
		Estado:             model.ComisionPendiente,
		ComentarioVendedor: req.Comentario,
		EsManual:           true,
	}
	if req.VentaID != nil {
		vid, err := uuid.Parse(*req.VentaID)
		if err != nil {
			return nil, apierror.NewValidation("venta_id inválido: %s", *req.VentaID)
		}
		c.VentaID = &vid
	}
	if req.ServicioID != nil {
		sid, err := uuid.Parse(*req.ServicioID)
		if err != nil {
			return nil, apierror.NewValidation("servicio_id inválido: %s", *req.ServicioID)
		}
		c.ServicioID = &sid
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apierror.NewStorage("crear comisión", err)
	}
	return comisionToResponse(c), nil
}

func (s *comisionService) CambiarEstado(ctx context.Context, id uuid.UUID, req dto.CambiarEstadoComisionRequest) (*dto.ComisionResponse, error) {
	// Validación antes de cualquier carga: un estado inválido nunca toca la fila.
	if !model.EstadoComisionValido(req.Estado) {
		return nil, apierror.NewValidation("estado de comisión inválido: %s", req.Estado)
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("comision", id.String())
	}

	c.Estado = req.Estado
	if req.ComentarioAdmin != nil {
		c.ComentarioAdmin = req.ComentarioAdmin
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, apierror.NewStorage("actualizar comisión", err)
	}
	return comisionToResponse(c), nil
}

func (s *comisionService) ActualizarComentario(ctx context.Context, id, usuarioID uuid.UUID, comentario string) (*dto.ComisionResponse, error) {
	if comentario == "" {
		return nil, apierror.NewValidation("el comentario es obligatorio")
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("comision", id.String())
	}
	if c.Estado != model.ComisionPendiente {
		return nil, apierror.NewConflict("solo se puede editar el comentario de una comisión pendiente")
	}
	if c.UsuarioID != usuarioID {
		return nil, apierror.NewConflict("solo el beneficiario puede editar el comentario")
	}

	c.ComentarioVendedor = comentario
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, apierror.NewStorage("actualizar comisión", err)
	}
	return comisionToResponse(c), nil
}

// Eliminar borra una comisión pendiente. El administrador puede borrar
// cualquier pendiente; el vendedor solo las propias, manuales y pendientes.
func (s *comisionService) Eliminar(ctx context.Context, id, usuarioID uuid.UUID, rol string) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NewNotFound("comision", id.String())
	}
	if c.Estado != model.ComisionPendiente {
		return apierror.NewConflict("solo se puede eliminar una comisión pendiente")
	}
	if rol != model.RolAdministrador {
		if c.UsuarioID != usuarioID || !c.EsManual {
			return apierror.NewConflict("un vendedor solo puede eliminar sus propias comisiones manuales pendientes")
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.NewStorage("eliminar comisión", err)
	}
	return nil
}

func (s *comisionService) Listar(ctx context.Context, filter dto.ComisionFilter) (*dto.ComisionListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	comisiones, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.NewStorage("listar comisiones", err)
	}
	items := make([]dto.ComisionResponse, 0, len(comisiones))
	for i := range comisiones {
		items = append(items, *comisionToResponse(&comisiones[i]))
	}
	return &dto.ComisionListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func comisionToResponse(c *model.Comision) *dto.ComisionResponse {
	resp := &dto.ComisionResponse{
		ID:                 c.ID.String(),
		UsuarioID:          c.UsuarioID.String(),
		Monto:              c.Monto,
		Estado:             c.Estado,
		ComentarioVendedor: c.ComentarioVendedor,
		EsManual:           c.EsManual,
		ComentarioAdmin:    c.ComentarioAdmin,
		CreatedAt:          c.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if c.VentaID != nil {
		v := c.VentaID.String()
		resp.VentaID = &v
	}
	if c.ServicioID != nil {
		sv := c.ServicioID.String()
		resp.ServicioID = &sv
	}
	return resp
}
