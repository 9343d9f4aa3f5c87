package service

import (
	"context"
	"errors"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/apierror"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoriaService maneja ambas taxonomías (productos y servicios) con las
// mismas reglas: nombre único sin distinguir mayúsculas y baja lógica.
type CategoriaService interface {
	CrearProducto(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	ListarProducto(ctx context.Context) ([]dto.CategoriaResponse, error)
	ActualizarProducto(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	DesactivarProducto(ctx context.Context, id uuid.UUID) error

	CrearServicio(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	ListarServicio(ctx context.Context) ([]dto.CategoriaResponse, error)
	ActualizarServicio(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	DesactivarServicio(ctx context.Context, id uuid.UUID) error
}

type categoriaService struct {
	productoRepo repository.CategoriaProductoRepository
	servicioRepo repository.CategoriaServicioRepository
}

func NewCategoriaService(productoRepo repository.CategoriaProductoRepository, servicioRepo repository.CategoriaServicioRepository) CategoriaService {
	return &categoriaService{productoRepo: productoRepo, servicioRepo: servicioRepo}
}

// ── Categorías de producto ────────────────────────────────────────────────────

func (s *categoriaService) CrearProducto(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	if _, err := s.productoRepo.ObtenerPorNombre(ctx, req.Nombre); err == nil {
		return nil, apierror.NewConflict("ya existe una categoría de producto con el nombre %s", req.Nombre)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NewStorage("buscar categoría", err)
	}

	c := &model.CategoriaProducto{Nombre: req.Nombre, Descripcion: req.Descripcion, Activo: true}
	if err := s.productoRepo.Crear(ctx, c); err != nil {
		return nil, apierror.NewStorage("crear categoría", err)
	}
	return categoriaProductoToResponse(c), nil
}

func (s *categoriaService) ListarProducto(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := s.productoRepo.Listar(ctx)
	if err != nil {
		return nil, apierror.NewStorage("listar categorías", err)
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for i := range categorias {
		out = append(out, *categoriaProductoToResponse(&categorias[i]))
	}
	return out, nil
}

func (s *categoriaService) ActualizarProducto(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.productoRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("categoria", id.String())
	}
	if req.Nombre != nil && *req.Nombre != c.Nombre {
		if existente, err := s.productoRepo.ObtenerPorNombre(ctx, *req.Nombre); err == nil && existente.ID != c.ID {
			return nil, apierror.NewConflict("ya existe una categoría de producto con el nombre %s", *req.Nombre)
		}
		c.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
	}
	if req.Activo != nil {
		c.Activo = *req.Activo
	}
	if err := s.productoRepo.Actualizar(ctx, c); err != nil {
		return nil, apierror.NewStorage("actualizar categoría", err)
	}
	return categoriaProductoToResponse(c), nil
}

func (s *categoriaService) DesactivarProducto(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productoRepo.ObtenerPorID(ctx, id); err != nil {
		return apierror.NewNotFound("categoria", id.String())
	}
	if err := s.productoRepo.Desactivar(ctx, id); err != nil {
		return apierror.NewStorage("desactivar categoría", err)
	}
	return nil
}

// ── Categorías de servicio ────────────────────────────────────────────────────

func (s *categoriaService) CrearServicio(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	if _, err := s.servicioRepo.ObtenerPorNombre(ctx, req.Nombre); err == nil {
		return nil, apierror.NewConflict("ya existe una categoría de servicio con el nombre %s", req.Nombre)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NewStorage("buscar categoría", err)
	}

	c := &model.CategoriaServicio{Nombre: req.Nombre, Descripcion: req.Descripcion, Activo: true}
	if err := s.servicioRepo.Crear(ctx, c); err != nil {
		return nil, apierror.NewStorage("crear categoría", err)
	}
	return categoriaServicioToResponse(c), nil
}

func (s *categoriaService) ListarServicio(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := s.servicioRepo.Listar(ctx)
	if err != nil {
		return nil, apierror.NewStorage("listar categorías", err)
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for i := range categorias {
		out = append(out, *categoriaServicioToResponse(&categorias[i]))
	}
	return out, nil
}

func (s *categoriaService) ActualizarServicio(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.servicioRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("categoria", id.String())
	}
	if req.Nombre != nil && *req.Nombre != c.Nombre {
		if existente, err := s.servicioRepo.ObtenerPorNombre(ctx, *req.Nombre); err == nil && existente.ID != c.ID {
			return nil, apierror.NewConflict("ya existe una categoría de servicio con el nombre %s", *req.Nombre)
		}
		c.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
	}
	if req.Activo != nil {
		c.Activo = *req.Activo
	}
	if err := s.servicioRepo.Actualizar(ctx, c); err != nil {
		return nil, apierror.NewStorage("actualizar categoría", err)
	}
	return categoriaServicioToResponse(c), nil
}

func (s *categoriaService) DesactivarServicio(ctx context.Context, id uuid.UUID) error {
	if _, err := s.servicioRepo.ObtenerPorID(ctx, id); err != nil {
		return apierror.NewNotFound("categoria", id.String())
	}
	if err := s.servicioRepo.Desactivar(ctx, id); err != nil {
		return apierror.NewStorage("desactivar categoría", err)
	}
	return nil
}

func categoriaProductoToResponse(c *model.CategoriaProducto) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre, Descripcion: c.Descripcion, Activo: c.Activo}
}

func categoriaServicioToResponse(c *model.CategoriaServicio) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre, Descripcion: c.Descripcion, Activo: c.Activo}
}
