package repository

import (
	"context"

	"skillswitch-service/src/internal/entity"

	"gorm.io/gorm"
)

var resourceOrder = map[string]string{
	"popular":    "downloads DESC",
	"rating":     "rating DESC",
	"newest":     "created_at DESC",
	"price-low":  "price ASC",
	"price-high": "price DESC",
}

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{
		DB: db,
	}
}

// List filters by category ("" or "all" means every category) and sorts by one of resourceOrder.
func (r *ResourceRepository) List(ctx context.Context, category, sort string) ([]entity.Resource, error) {
	order, ok := resourceOrder[sort]
	if !ok {
		order = resourceOrder["popular"]
	}

	q := r.DB.WithContext(ctx).Model(&entity.Resource{})
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}

	resources := []entity.Resource{}
	err := q.Order(order).Order("id ASC").Find(&resources).Error
	return resources, err
}

func (r *ResourceRepository) FindByID(ctx context.Context, id string) (*entity.Resource, error) {
	var res entity.Resource
	if err := r.DB.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

func (r *ResourceRepository) IncrementDownloads(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Model(&entity.Resource{}).
		Where("id = ?", id).
		UpdateColumn("downloads", gorm.Expr("downloads + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SeedIfEmpty inserts the catalogue only on a fresh database.
func (r *ResourceRepository) SeedIfEmpty(ctx context.Context, resources []entity.Resource) (bool, error) {
	var count int64
	db := r.DB.WithContext(ctx)
	if err := db.Model(&entity.Resource{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 || len(resources) == 0 {
		return false, nil
	}
	if err := db.CreateInBatches(resources, 50).Error; err != nil {
		return false, err
	}
	return true, nil
}
