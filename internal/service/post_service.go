package service

import (
	"context"
	"errors"
	"fmt"

	"novepus/internal/dto"
	"novepus/internal/model"
	"novepus/internal/repository"

	"gorm.io/gorm"
)

type PostService interface {
	Create(ctx context.Context, author string, input *dto.PostInput) (*model.Post, error)
	Get(ctx context.Context, id uint64) (*model.Post, error)
	Delete(ctx context.Context, author string, postID uint64) error
	MyPosts(ctx context.Context, author string) ([]*model.Post, error)
	AllPosts(ctx context.Context) ([]*model.Post, error)
	InterestFeed(ctx context.Context, username string) ([]*model.Post, error)
	Search(ctx context.Context, keyword string) ([]*model.Post, error)
	Detail(ctx context.Context, postID uint64) (*dto.PostDetail, error)
	Like(ctx context.Context, username string, postID uint64) error
	Comment(ctx context.Context, username string, postID uint64, content string) error
}

type PostServiceImpl struct {
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	userRepo    repository.UserRepo
}

func NewPostService(postRepo repository.PostRepo, commentRepo repository.CommentRepo, userRepo repository.UserRepo) PostService {
	return &PostServiceImpl{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
	}
}

func (s *PostServiceImpl) Create(ctx context.Context, author string, input *dto.PostInput) (*model.Post, error) {
	if err := dto.Validate(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	user, err := s.userRepo.GetUserByName(ctx, author)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	post := &model.Post{
		UserID:  user.ID,
		Title:   input.Title,
		Content: input.Content,
	}
	if err := s.postRepo.CreatePost(ctx, post, input.Labels); err != nil {
		return nil, err
	}
	post.Labels = input.Labels
	return post, nil
}

// Get resolves a live post. A missing row and a soft-deleted row look the
// same to callers selecting from a listing.
func (s *PostServiceImpl) Get(ctx context.Context, id uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if post.IsDeleted {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Delete soft-deletes the author's own post. Ownership is decided by the
// author resolved from storage, never by the id the caller typed.
func (s *PostServiceImpl) Delete(ctx context.Context, author string, postID uint64) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if post.User.Username != author {
		return ErrNotOwner
	}
	return s.postRepo.SetDeleted(ctx, postID, true)
}

func (s *PostServiceImpl) MyPosts(ctx context.Context, author string) ([]*model.Post, error) {
	user, err := s.userRepo.GetUserByName(ctx, author)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	ids, err := s.postRepo.PostIDsByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.postRepo.GetPostsByIDs(ctx, ids)
}

func (s *PostServiceImpl) AllPosts(ctx context.Context) ([]*model.Post, error) {
	ids, err := s.postRepo.AllPostIDs(ctx)
	if err != nil {
		return nil, err
	}
	return s.postRepo.GetPostsByIDs(ctx, ids)
}

// InterestFeed lists live posts tagged with any of the user's declared
// interests.
func (s *PostServiceImpl) InterestFeed(ctx context.Context, username string) ([]*model.Post, error) {
	user, err := s.userRepo.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	ids, err := s.postRepo.PostIDsByInterests(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.postRepo.GetPostsByIDs(ctx, ids)
}

func (s *PostServiceImpl) Search(ctx context.Context, keyword string) ([]*model.Post, error) {
	ids, err := s.postRepo.SearchByKeyword(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return s.postRepo.GetPostsByIDs(ctx, ids)
}

func (s *PostServiceImpl) Detail(ctx context.Context, postID uint64) (*dto.PostDetail, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	likes, err := s.postRepo.LikeCount(ctx, postID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.CommentsOfPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &dto.PostDetail{Post: post, Likes: likes, Comments: comments}, nil
}

func (s *PostServiceImpl) Like(ctx context.Context, username string, postID uint64) error {
	user, err := s.userRepo.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if _, err := s.Get(ctx, postID); err != nil {
		return err
	}
	return s.postRepo.LikePost(ctx, user.ID, postID)
}

func (s *PostServiceImpl) Comment(ctx context.Context, username string, postID uint64, content string) error {
	user, err := s.userRepo.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if _, err := s.Get(ctx, postID); err != nil {
		return err
	}
	return s.commentRepo.CreateComment(ctx, &model.PostComment{
		PostID:  postID,
		UserID:  user.ID,
		Content: content,
	})
}
