package repository

import (
	"context"

	"novepus/internal/model"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.PostComment) error
	CommentsOfPost(ctx context.Context, postID uint64) ([]*model.PostComment, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.PostComment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentRepoImpl) CommentsOfPost(ctx context.Context, postID uint64) ([]*model.PostComment, error) {
	var comments []*model.PostComment
	err := s.db.WithContext(ctx).Preload("User").
		Where("post_id = ?", postID).
		Order("id").
		Find(&comments).Error
	return comments, err
}
