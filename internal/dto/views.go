package dto

import (
	"novepus/internal/model"
)

// UserProfile is a user together with the interest labels resolved from
// the catalog.
type UserProfile struct {
	User      *model.User
	Interests []string
}

// PostDetail is everything the post detail view renders in one piece.
type PostDetail struct {
	Post     *model.Post
	Likes    int64
	Comments []*model.PostComment
}

// FollowGraph pairs the resolved followings and followers of one user.
type FollowGraph struct {
	Followings []*model.User
	Followers  []*model.User
}
