package service

import (
	"errors"
	"strings"

	"github.com/mutantsite/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrVisitorTokenMissing reports a like without a visitor token.
var ErrVisitorTokenMissing = errors.New("visitor token is required")

// LikeService keeps the per-post like counters.
type LikeService struct {
	db *gorm.DB
}

// NewLikeService creates a LikeService instance.
func NewLikeService(gdb *gorm.DB) *LikeService {
	return &LikeService{db: gdb}
}

// Like bumps the counter of a published post and returns the new total plus
// whether this call counted. A visitor token that already liked the post is
// a no-op; the increment itself runs as a single conditional UPDATE, so
// concurrent likes from distinct visitors all land.
func (s *LikeService) Like(postID uint, visitorToken string) (uint64, bool, error) {
	var post db.Post
	if err := s.db.Where("id = ? AND status = ?", postID, db.PostStatusPublished).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, ErrPostNotFound
		}
		return 0, false, err
	}

	token := strings.TrimSpace(visitorToken)
	if token == "" {
		return 0, false, ErrVisitorTokenMissing
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&db.PostLikeVisitor{PostID: postID, VisitorToken: token}).Error; err != nil {
			return err
		}
		like := db.PostLike{PostID: postID, Count: 1}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "post_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count":      gorm.Expr("count + 1"),
				"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).Create(&like).Error
	})
	if err != nil {
		// The visitor row collided: this visitor already counted.
		if isUniqueViolation(err) {
			count, countErr := s.Count(postID)
			return count, false, countErr
		}
		return 0, false, err
	}

	count, err := s.Count(postID)
	return count, true, err
}

// Count returns the like total of a post; posts without a counter row have
// zero likes.
func (s *LikeService) Count(postID uint) (uint64, error) {
	var like db.PostLike
	if err := s.db.Where("post_id = ?", postID).First(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return like.Count, nil
}
