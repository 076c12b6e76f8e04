package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, userID, text string) (*models.Post, error)
	DeletePost(ctx context.Context, userID, postID string) (*models.Post, error)
	LikePost(ctx context.Context, userID, postID string) (models.LikeList, error)
	UnlikePost(ctx context.Context, userID, postID string) (models.LikeList, error)
	AddComment(ctx context.Context, userID, postID, text string) (models.CommentList, error)
	DeleteComment(ctx context.Context, userID, postID, commentID string) (models.CommentList, error)
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

// CreatePost snapshots the author's name and avatar into the post at
// creation time; later profile edits do not propagate back.
func (s *postService) CreatePost(ctx context.Context, userID, text string) (*models.Post, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID: user.UserID,
		Name:   user.Name,
		Avatar: user.Avatar,
		Text:   text,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, userID, postID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.UserID != userID {
		return nil, ErrNotAuthor
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) LikePost(ctx context.Context, userID, postID string) (models.LikeList, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.HasLike(userID) {
		return nil, ErrAlreadyLiked
	}

	post.Likes = append(models.LikeList{{UserID: userID}}, post.Likes...)

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post.Likes, nil
}

func (s *postService) UnlikePost(ctx context.Context, userID, postID string) (models.LikeList, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !post.HasLike(userID) {
		return nil, ErrNotLiked
	}

	kept := make(models.LikeList, 0, len(post.Likes))
	for _, like := range post.Likes {
		if like.UserID != userID {
			kept = append(kept, like)
		}
	}
	post.Likes = kept

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post.Likes, nil
}

func (s *postService) AddComment(ctx context.Context, userID, postID, text string) (models.CommentList, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		CommentID: uuid.New().String(),
		UserID:    user.UserID,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Text:      text,
		CreatedAt: time.Now(),
	}

	post.Comments = append(models.CommentList{comment}, post.Comments...)

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post.Comments, nil
}

// DeleteComment removes the comment only when both the comment id and
// the caller match; a foreign comment id is indistinguishable from a
// missing one.
func (s *postService) DeleteComment(ctx context.Context, userID, postID, commentID string) (models.CommentList, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, comment := range post.Comments {
		if comment.CommentID == commentID && comment.UserID == userID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, repository.ErrNotFound
	}

	post.Comments = append(post.Comments[:index], post.Comments[index+1:]...)

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post.Comments, nil
}
