package repository

import (
	"context"

	"anoa.com/ramadhanpitstop/internal/model"
	"gorm.io/gorm"
)

type CommentRepository interface {
	FindAll(ctx context.Context) ([]model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) FindAll(ctx context.Context) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	return comments, nil
}
