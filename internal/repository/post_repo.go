package repository

import (
	"context"
	"strings"

	"novepus/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, labels []string) error
	GetPostByID(ctx context.Context, id uint64) (*model.Post, error)
	GetPostsByIDs(ctx context.Context, ids []uint64) ([]*model.Post, error)
	PostExists(ctx context.Context, id uint64) (bool, error)
	SetDeleted(ctx context.Context, id uint64, deleted bool) error
	AllPostIDs(ctx context.Context) ([]uint64, error)
	PostIDsByAuthor(ctx context.Context, userID uint64) ([]uint64, error)
	PostIDsByInterests(ctx context.Context, userID uint64) ([]uint64, error)
	SearchByKeyword(ctx context.Context, keyword string) ([]uint64, error)
	LikePost(ctx context.Context, userID uint64, postID uint64) error
	LikeCount(ctx context.Context, postID uint64) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

// CreatePost inserts the post row, resolves every label against the
// interest catalog and writes the interest_posts junctions, all in one
// transaction. A post with labels is never visible without them.
func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, labels []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		for _, label := range labels {
			interestID, err := upsertInterest(tx, label)
			if err != nil {
				return err
			}
			junction := &model.InterestPost{InterestID: interestID, PostID: post.ID}
			if err := tx.Where(junction).FirstOrCreate(junction).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetPostByID resolves soft-deleted posts as well, callers inspect
// IsDeleted themselves.
func (s *PostRepoImpl) GetPostByID(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Preload("User").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	labels, err := s.labelsByPost(ctx, []uint64{id})
	if err != nil {
		return nil, err
	}
	post.Labels = labels[id]
	return &post, nil
}

func (s *PostRepoImpl) GetPostsByIDs(ctx context.Context, ids []uint64) ([]*model.Post, error) {
	if len(ids) == 0 {
		return []*model.Post{}, nil
	}
	var posts []*model.Post
	err := s.db.WithContext(ctx).Preload("User").
		Where("id IN ?", ids).
		Order("id").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	labels, err := s.labelsByPost(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		post.Labels = labels[post.ID]
	}
	return posts, nil
}

func (s *PostRepoImpl) labelsByPost(ctx context.Context, postIDs []uint64) (map[uint64][]string, error) {
	type row struct {
		PostID uint64
		Label  string
	}
	var rows []row
	err := s.db.WithContext(ctx).Table("interest_posts").
		Select("interest_posts.post_id, interests.label").
		Joins("JOIN interests ON interests.id = interest_posts.interest_id").
		Where("interest_posts.post_id IN ?", postIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	labels := make(map[uint64][]string, len(rows))
	for _, r := range rows {
		labels[r.PostID] = append(labels[r.PostID], r.Label)
	}
	return labels, nil
}

func (s *PostRepoImpl) PostExists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (s *PostRepoImpl) SetDeleted(ctx context.Context, id uint64, deleted bool) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Update("is_deleted", deleted).Error
}

func (s *PostRepoImpl) AllPostIDs(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("is_deleted = ?", false).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (s *PostRepoImpl) PostIDsByAuthor(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

// PostIDsByInterests returns non-deleted posts tagged with any interest
// the user declared.
func (s *PostRepoImpl) PostIDsByInterests(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Table("interest_posts").
		Select("DISTINCT interest_posts.post_id").
		Joins("JOIN interest_users ON interest_users.interest_id = interest_posts.interest_id").
		Joins("JOIN posts ON posts.id = interest_posts.post_id").
		Where("interest_users.user_id = ? AND posts.is_deleted = ?", userID, false).
		Scan(&ids).Error
	return ids, err
}

// SearchByKeyword is a substring match over post content, case handling
// follows the column collation. Deleted posts are excluded. LIKE
// metacharacters in the keyword are escaped so user input never acts as
// a pattern.
func (s *PostRepoImpl) SearchByKeyword(ctx context.Context, keyword string) ([]uint64, error) {
	escaped := strings.NewReplacer(`|`, `||`, `%`, `|%`, `_`, `|_`).Replace(keyword)
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("content LIKE ? ESCAPE '|' AND is_deleted = ?", "%"+escaped+"%", false).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

// LikePost is idempotent, liking twice keeps a single row.
func (s *PostRepoImpl) LikePost(ctx context.Context, userID uint64, postID uint64) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.PostLike{UserID: userID, PostID: postID}).Error
}

func (s *PostRepoImpl) LikeCount(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
