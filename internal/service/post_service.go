package service

import (
	"fmt"

	"skillshare-backend/internal/model"
	"skillshare-backend/internal/repository"
)

type PostService interface {
	CreatePost(post *model.Post) (*model.Post, error)
	GetAllPosts() ([]model.Post, error)
	GetPostByID(postID string) (*model.Post, error)
	GetPostsByUser(userID string) ([]model.Post, error)
	// UpdatePost applies title/content changes and, when provided, new media
	// URLs. The actor must be the post's recorded owner.
	UpdatePost(postID, actorID string, updated *model.Post) (*model.Post, error)
	DeletePost(postID, actorID string) error
	SearchPosts(term string) ([]model.Post, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (s *postService) CreatePost(post *model.Post) (*model.Post, error) {
	exists, err := s.userRepo.UserExists(post.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	if err := s.postRepo.CreatePost(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (s *postService) GetAllPosts() ([]model.Post, error) {
	return s.postRepo.GetAllPosts()
}

func (s *postService) GetPostByID(postID string) (*model.Post, error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *postService) GetPostsByUser(userID string) ([]model.Post, error) {
	exists, err := s.userRepo.UserExists(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	return s.postRepo.GetPostsByUser(userID)
}

func (s *postService) UpdatePost(postID, actorID string, updated *model.Post) (*model.Post, error) {
	existing, err := s.authorizeMutation(postID, actorID)
	if err != nil {
		return nil, err
	}

	existing.Title = updated.Title
	existing.Content = updated.Content
	if updated.ImageURL != "" {
		existing.ImageURL = updated.ImageURL
	}
	if updated.VideoURL != "" {
		existing.VideoURL = updated.VideoURL
	}

	if err := s.postRepo.UpdatePost(existing); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return existing, nil
}

func (s *postService) DeletePost(postID, actorID string) error {
	if _, err := s.authorizeMutation(postID, actorID); err != nil {
		return err
	}
	if err := s.postRepo.DeletePost(postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

func (s *postService) SearchPosts(term string) ([]model.Post, error) {
	return s.postRepo.SearchPosts(term)
}

// authorizeMutation loads the post and enforces the ownership capability
// check: mutate is permitted iff the actor id equals the recorded owner id.
func (s *postService) authorizeMutation(postID, actorID string) (*model.Post, error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	exists, err := s.userRepo.UserExists(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	if post.UserID != actorID {
		return nil, ErrNotOwner
	}
	return post, nil
}
