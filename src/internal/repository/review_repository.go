package repository

import (
	"context"

	"skillswitch-service/src/internal/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		DB: db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return translate(r.DB.WithContext(ctx).Create(review).Error)
}

func (r *ReviewRepository) ListByReviewee(ctx context.Context, revieweeID string) ([]entity.Review, error) {
	reviews := []entity.Review{}
	err := r.DB.WithContext(ctx).
		Where("reviewee_id = ?", revieweeID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) IncrementHelpful(ctx context.Context, id string) (*entity.Review, error) {
	db := r.DB.WithContext(ctx)
	res := db.Model(&entity.Review{}).
		Where("id = ?", id).
		UpdateColumn("helpful", gorm.Expr("helpful + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var review entity.Review
	if err := db.First(&review, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &review, nil
}
