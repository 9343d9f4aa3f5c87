package service

import (
	"context"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/apierror"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ProductoService defines the business logic contract for products.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
}

type productoService struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaProductoRepository
	rdb           *redis.Client
}

func NewProductoService(repo repository.ProductoRepository, categoriaRepo repository.CategoriaProductoRepository, rdb *redis.Client) ProductoService {
	return &productoService{repo: repo, categoriaRepo: categoriaRepo, rdb: rdb}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return nil, apierror.NewValidation("categoria_id inválido")
	}
	if _, err := s.categoriaRepo.ObtenerPorID(ctx, categoriaID); err != nil {
		return nil, apierror.NewNotFound("categoria", req.CategoriaID)
	}
	if req.PrecioVenta.IsNegative() {
		return nil, apierror.NewValidation("el precio de venta no puede ser negativo")
	}

	p := &model.Producto{
		Nombre:      req.Nombre,
		CategoriaID: categoriaID,
		PrecioCosto: req.PrecioCosto,
		PrecioVenta: req.PrecioVenta,
		StockActual: req.StockActual,
		StockMinimo: req.StockMinimo,
		Activo:      true,
	}
	p.RecalcularEstado()

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.NewStorage("crear producto", err)
	}
	return productoToResponse(p), nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("producto", id.String())
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.NewStorage("listar productos", err)
	}
	items := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		items = append(items, *productoToResponse(&productos[i]))
	}
	return &dto.ProductoListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("producto", id.String())
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.CategoriaID != nil {
		categoriaID, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, apierror.NewValidation("categoria_id inválido")
		}
		if _, err := s.categoriaRepo.ObtenerPorID(ctx, categoriaID); err != nil {
			return nil, apierror.NewNotFound("categoria", *req.CategoriaID)
		}
		p.CategoriaID = categoriaID
	}
	if req.PrecioCosto != nil {
		if req.PrecioCosto.IsNegative() {
			return nil, apierror.NewValidation("el precio de costo no puede ser negativo")
		}
		p.PrecioCosto = *req.PrecioCosto
	}
	if req.PrecioVenta != nil {
		if req.PrecioVenta.IsNegative() {
			return nil, apierror.NewValidation("el precio de venta no puede ser negativo")
		}
		p.PrecioVenta = *req.PrecioVenta
	}
	if req.StockMinimo != nil {
		if *req.StockMinimo < 0 {
			return nil, apierror.NewValidation("el stock mínimo no puede ser negativo")
		}
		p.StockMinimo = *req.StockMinimo
		// El umbral cambió: el estado derivado puede cambiar con él.
		p.RecalcularEstado()
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apierror.NewStorage("actualizar producto", err)
	}
	s.invalidarPrecio(ctx, p.ID)
	return productoToResponse(p), nil
}

func (s *productoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NewNotFound("producto", id.String())
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apierror.NewStorage("desactivar producto", err)
	}
	s.invalidarPrecio(ctx, id)
	return nil
}

func (s *productoService) Reactivar(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	if err := s.repo.Reactivar(ctx, id); err != nil {
		return nil, apierror.NewStorage("reactivar producto", err)
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("producto", id.String())
	}
	return productoToResponse(p), nil
}

// invalidarPrecio borra la entrada cacheada de consulta de precio. Mejor
// esfuerzo: un fallo de redis no afecta la operación principal.
func (s *productoService) invalidarPrecio(ctx context.Context, id uuid.UUID) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, "precio:"+id.String()).Err()
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	resp := &dto.ProductoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		CategoriaID: p.CategoriaID.String(),
		PrecioCosto: p.PrecioCosto,
		PrecioVenta: p.PrecioVenta,
		StockActual: p.StockActual,
		StockMinimo: p.StockMinimo,
		Estado:      p.Estado,
		Activo:      p.Activo,
	}
	if p.Categoria != nil {
		resp.Categoria = p.Categoria.Nombre
	}
	return resp
}
