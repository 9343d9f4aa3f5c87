package repository

import (
	"context"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TarifaComisionRepository interface {
	// Upsert creates or replaces the single rate for a product category.
	Upsert(ctx context.Context, t *model.TarifaComision) error
	// FindByCategoria returns gorm.ErrRecordNotFound when no rate is configured.
	FindByCategoria(ctx context.Context, categoriaID uuid.UUID) (*model.TarifaComision, error)
	FindByCategoriaTx(tx *gorm.DB, categoriaID uuid.UUID) (*model.TarifaComision, error)
	List(ctx context.Context) ([]model.TarifaComision, error)
	Delete(ctx context.Context, categoriaID uuid.UUID) error
}

type tarifaComisionRepo struct{ db *gorm.DB }

func NewTarifaComisionRepository(db *gorm.DB) TarifaComisionRepository {
	return &tarifaComisionRepo{db: db}
}

func (r *tarifaComisionRepo) Upsert(ctx context.Context, t *model.TarifaComision) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "categoria_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"porcentaje", "updated_at"}),
	}).Create(t).Error
}

func (r *tarifaComisionRepo) FindByCategoria(ctx context.Context, categoriaID uuid.UUID) (*model.TarifaComision, error) {
	var t model.TarifaComision
	err := r.db.WithContext(ctx).Where("categoria_id = ?", categoriaID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tarifaComisionRepo) FindByCategoriaTx(tx *gorm.DB, categoriaID uuid.UUID) (*model.TarifaComision, error) {
	var t model.TarifaComision
	err := tx.Where("categoria_id = ?", categoriaID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tarifaComisionRepo) List(ctx context.Context) ([]model.TarifaComision, error) {
	var tarifas []model.TarifaComision
	err := r.db.WithContext(ctx).Preload("Categoria").Find(&tarifas).Error
	return tarifas, err
}

func (r *tarifaComisionRepo) Delete(ctx context.Context, categoriaID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TarifaComision{}, "categoria_id = ?", categoriaID).Error
}
