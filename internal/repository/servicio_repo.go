package repository

import (
	"context"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicioRepository interface {
	Create(ctx context.Context, s *model.Servicio) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Servicio, error)
	List(ctx context.Context, filter dto.ServicioFilter) ([]model.Servicio, int64, error)
	Update(ctx context.Context, s *model.Servicio) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
}

type servicioRepo struct{ db *gorm.DB }

func NewServicioRepository(db *gorm.DB) ServicioRepository { return &servicioRepo{db: db} }

func (r *servicioRepo) Create(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *servicioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Servicio, error) {
	var s model.Servicio
	err := r.db.WithContext(ctx).Preload("Categoria").First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *servicioRepo) List(ctx context.Context, filter dto.ServicioFilter) ([]model.Servicio, int64, error) {
	var servicios []model.Servicio
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Servicio{})

	switch filter.Activo {
	case "false":
		q = q.Where("activo = false")
	case "all":
	default:
		q = q.Where("activo = true")
	}

	if filter.Nombre != "" {
		q = q.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.CategoriaID != "" {
		q = q.Where("categoria_id = ?", filter.CategoriaID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Categoria").Order("nombre ASC").Limit(filter.Limit).Offset(offset).Find(&servicios).Error
	return servicios, total, err
}

func (r *servicioRepo) Update(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *servicioRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Servicio{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *servicioRepo) Reactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Servicio{}).Where("id = ?", id).Update("activo", true).Error
}
