package repository

import (
	"context"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoriaProductoRepository defines CRUD operations for product categories.
type CategoriaProductoRepository interface {
	Crear(ctx context.Context, c *model.CategoriaProducto) error
	Listar(ctx context.Context) ([]model.CategoriaProducto, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.CategoriaProducto, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.CategoriaProducto, error)
	Actualizar(ctx context.Context, c *model.CategoriaProducto) error
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type categoriaProductoRepo struct{ db *gorm.DB }

func NewCategoriaProductoRepository(db *gorm.DB) CategoriaProductoRepository {
	return &categoriaProductoRepo{db: db}
}

func (r *categoriaProductoRepo) Crear(ctx context.Context, c *model.CategoriaProducto) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaProductoRepo) Listar(ctx context.Context) ([]model.CategoriaProducto, error) {
	var list []model.CategoriaProducto
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *categoriaProductoRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.CategoriaProducto, error) {
	var c model.CategoriaProducto
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaProductoRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.CategoriaProducto, error) {
	var c model.CategoriaProducto
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaProductoRepo) Actualizar(ctx context.Context, c *model.CategoriaProducto) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaProductoRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.CategoriaProducto{}).Where("id = ?", id).Update("activo", false).Error
}

// CategoriaServicioRepository defines CRUD operations for service categories.
type CategoriaServicioRepository interface {
	Crear(ctx context.Context, c *model.CategoriaServicio) error
	Listar(ctx context.Context) ([]model.CategoriaServicio, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.CategoriaServicio, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.CategoriaServicio, error)
	Actualizar(ctx context.Context, c *model.CategoriaServicio) error
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type categoriaServicioRepo struct{ db *gorm.DB }

func NewCategoriaServicioRepository(db *gorm.DB) CategoriaServicioRepository {
	return &categoriaServicioRepo{db: db}
}

func (r *categoriaServicioRepo) Crear(ctx context.Context, c *model.CategoriaServicio) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaServicioRepo) Listar(ctx context.Context) ([]model.CategoriaServicio, error) {
	var list []model.CategoriaServicio
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *categoriaServicioRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.CategoriaServicio, error) {
	var c model.CategoriaServicio
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaServicioRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.CategoriaServicio, error) {
	var c model.CategoriaServicio
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaServicioRepo) Actualizar(ctx context.Context, c *model.CategoriaServicio) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaServicioRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.CategoriaServicio{}).Where("id = ?", id).Update("activo", false).Error
}
