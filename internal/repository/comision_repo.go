package repository

import (
	"context"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComisionRepository interface {
	Create(ctx context.Context, c *model.Comision) error
	CreateTx(tx *gorm.DB, c *model.Comision) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Comision, error)
	Update(ctx context.Context, c *model.Comision) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter dto.ComisionFilter) ([]model.Comision, int64, error)
	ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Comision, error)
}

type comisionRepo struct{ db *gorm.DB }

func NewComisionRepository(db *gorm.DB) ComisionRepository { return &comisionRepo{db: db} }

func (r *comisionRepo) Create(ctx context.Context, c *model.Comision) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *comisionRepo) CreateTx(tx *gorm.DB, c *model.Comision) error {
	return tx.Create(c).Error
}

func (r *comisionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Comision, error) {
	var c model.Comision
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *comisionRepo) Update(ctx context.Context, c *model.Comision) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *comisionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Comision{}, "id = ?", id).Error
}

func (r *comisionRepo) List(ctx context.Context, filter dto.ComisionFilter) ([]model.Comision, int64, error) {
	var comisiones []model.Comision
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Comision{})

	if filter.UsuarioID != "" {
		q = q.Where("usuario_id = ?", filter.UsuarioID)
	}
	if filter.Estado != "" && filter.Estado != "all" {
		q = q.Where("estado = ?", filter.Estado)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Usuario").Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&comisiones).Error
	return comisiones, total, err
}

func (r *comisionRepo) ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Comision, error) {
	var comisiones []model.Comision
	err := r.db.WithContext(ctx).Where("usuario_id = ?", usuarioID).Order("created_at DESC").Find(&comisiones).Error
	return comisiones, err
}
