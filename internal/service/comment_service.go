package service

import (
	"errors"
	"strings"

	"github.com/mutantsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound      = errors.New("comment not found")
	ErrCommentBodyMissing   = errors.New("comment body is required")
	ErrCommentAuthorMissing = errors.New("comment author is required")
)

// CommentService handles reader comments and their moderation.
type CommentService struct {
	db *gorm.DB
}

// CommentInput represents fields accepted when submitting a comment.
type CommentInput struct {
	PostID uint
	Author string
	Email  string
	Body   string
}

// NewCommentService creates a CommentService instance.
func NewCommentService(gdb *gorm.DB) *CommentService {
	return &CommentService{db: gdb}
}

// Submit stores a new comment awaiting moderation. The referenced post must
// exist and be published.
func (s *CommentService) Submit(input CommentInput) (*db.Comment, error) {
	author := strings.TrimSpace(input.Author)
	if author == "" {
		return nil, ErrCommentAuthorMissing
	}
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, ErrCommentBodyMissing
	}

	var post db.Post
	if err := s.db.Where("id = ? AND status = ?", input.PostID, db.PostStatusPublished).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comment := db.Comment{
		PostID: input.PostID,
		Author: author,
		Email:  strings.TrimSpace(input.Email),
		Body:   body,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListApproved returns the approved comments of a post, oldest first.
func (s *CommentService) ListApproved(postID uint) ([]db.Comment, error) {
	var comments []db.Comment
	if err := s.db.Where("post_id = ? AND approved = ?", postID, true).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// ListPending returns comments awaiting moderation, oldest first.
func (s *CommentService) ListPending() ([]db.Comment, error) {
	var comments []db.Comment
	if err := s.db.Where("approved = ?", false).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// CountPending returns how many comments await moderation.
func (s *CommentService) CountPending() (int64, error) {
	var count int64
	if err := s.db.Model(&db.Comment{}).Where("approved = ?", false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Approve marks a comment as visible.
func (s *CommentService) Approve(id uint) error {
	result := s.db.Model(&db.Comment{}).Where("id = ?", id).Update("approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// Delete removes a comment by id.
func (s *CommentService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
