package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillshare-backend/internal/db"
	"skillshare-backend/internal/db/query"
	"skillshare-backend/internal/model"
)

type PostRepository interface {
	CreatePost(post *model.Post) error
	GetAllPosts() ([]model.Post, error)
	GetPostByID(id string) (*model.Post, error)
	GetPostsByUser(userID string) ([]model.Post, error)
	UpdatePost(post *model.Post) error
	DeletePost(id string) error
	SearchPosts(term string) ([]model.Post, error)
}

type postRepository struct{}

func NewPostRepository() PostRepository {
	return &postRepository{}
}

func (r *postRepository) CreatePost(post *model.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	return db.GetDB().Create(post).Error
}

func (r *postRepository) GetAllPosts() ([]model.Post, error) {
	var posts []model.Post
	err := db.GetDB().Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *postRepository) GetPostByID(id string) (*model.Post, error) {
	var post model.Post
	err := db.GetDB().Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetPostsByUser(userID string) ([]model.Post, error) {
	var posts []model.Post
	err := db.GetDB().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) UpdatePost(post *model.Post) error {
	return db.GetDB().Save(post).Error
}

func (r *postRepository) DeletePost(id string) error {
	return db.GetDB().Delete(&model.Post{}, "id = ?", id).Error
}

func (r *postRepository) SearchPosts(term string) ([]model.Post, error) {
	predicate, args := query.NewFilterPredicate().
		Open().
		Like("title", term).
		Or().
		Like("content", term).
		Close().
		Build()

	sql, values := query.NewQueryBuilder().
		From("posts").
		Where(predicate, args...).
		OrderBy("created_at DESC").
		Build()

	var posts []model.Post
	err := db.GetDB().Raw(sql, values...).Scan(&posts).Error
	return posts, err
}
