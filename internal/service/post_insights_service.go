package service

import (
	"fmt"

	"gorm.io/gorm"

	"skillshare-backend/internal/db"
	"skillshare-backend/internal/db/query"
	"skillshare-backend/internal/model"
	"skillshare-backend/internal/repository"
)

// PostInsights aggregates engagement numbers for one post.
type PostInsights struct {
	PostID        string `json:"post_id"`
	Views         int64  `json:"views"`
	UniqueViewers int64  `json:"unique_viewers"`
}

type PostInsightsService interface {
	RecordView(postID, viewerID string) error
	GetInsights(postID string) (*PostInsights, error)
}

type postInsightsService struct {
	executor *db.QueryExecutor
	postRepo repository.PostRepository
}

func NewPostInsightsService(executor *db.QueryExecutor, postRepo repository.PostRepository) PostInsightsService {
	return &postInsightsService{
		executor: executor,
		postRepo: postRepo,
	}
}

func (s *postInsightsService) RecordView(postID, viewerID string) error {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	return s.executor.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&model.PostView{PostID: postID, ViewerID: viewerID}).Error
	})
}

func (s *postInsightsService) GetInsights(postID string) (*PostInsights, error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	views, err := s.executor.Count("post_views", map[string]interface{}{"post_id": postID})
	if err != nil {
		return nil, fmt.Errorf("failed to count views: %w", err)
	}

	sql, args := query.NewQueryBuilder().
		Select("COUNT(DISTINCT viewer_id) AS unique_viewers").
		From("post_views").
		Where("post_id = ?", postID).
		Build()

	rows, err := s.executor.Select(sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count unique viewers: %w", err)
	}

	var uniqueViewers int64
	if len(rows) > 0 {
		if v, ok := rows[0]["unique_viewers"].(int64); ok {
			uniqueViewers = v
		}
	}

	return &PostInsights{
		PostID:        postID,
		Views:         views,
		UniqueViewers: uniqueViewers,
	}, nil
}
