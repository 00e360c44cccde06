package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goliatone/go-slug"
	"github.com/mutantsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound      = errors.New("post not found")
	ErrPostTitleMissing  = errors.New("post title is required")
	ErrPostSlugTaken     = errors.New("post slug is already in use")
	ErrPostStatusInvalid = errors.New("post status is invalid")
)

// PostService wraps blog post database operations.
type PostService struct {
	db *gorm.DB
}

// PostFilter describes filters for listing posts.
type PostFilter struct {
	Search  string
	Status  string
	Page    int
	PerPage int
}

// PostListResult aggregates paginated list data and counters.
type PostListResult struct {
	Posts          []db.Post
	Total          int64
	PublishedCount int64
	DraftCount     int64
	TotalPages     int
	Page           int
	PerPage        int
}

// PostInput represents fields accepted when creating or updating a post.
type PostInput struct {
	Title    string
	Slug     string
	Summary  string
	Content  string
	CoverURL string
	Status   string
	UserID   uint
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// List returns posts matching the filter, newest first.
func (s *PostService) List(filter PostFilter) (PostListResult, error) {
	result := PostListResult{
		Page:    normalizePage(filter.Page),
		PerPage: normalizePerPage(filter.PerPage, 6),
	}

	query := s.db.Model(&db.Post{})
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR summary LIKE ? OR content LIKE ?", pattern, pattern, pattern)
	}

	if err := query.Count(&result.Total).Error; err != nil {
		return result, fmt.Errorf("count posts: %w", err)
	}

	if err := s.db.Model(&db.Post{}).Where("status = ?", db.PostStatusPublished).
		Count(&result.PublishedCount).Error; err != nil {
		return result, fmt.Errorf("count published posts: %w", err)
	}
	if err := s.db.Model(&db.Post{}).Where("status = ?", db.PostStatusDraft).
		Count(&result.DraftCount).Error; err != nil {
		return result, fmt.Errorf("count draft posts: %w", err)
	}

	result.TotalPages = totalPages(result.Total, result.PerPage)
	offset := (result.Page - 1) * result.PerPage

	if err := query.Order("created_at desc").
		Limit(result.PerPage).Offset(offset).
		Find(&result.Posts).Error; err != nil {
		return result, fmt.Errorf("list posts: %w", err)
	}

	return result, nil
}

// Get fetches a post by id.
func (s *PostService) Get(id uint) (*db.Post, error) {
	var post db.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetPublishedBySlug fetches a published post for public rendering.
func (s *PostService) GetPublishedBySlug(postSlug string) (*db.Post, error) {
	var post db.Post
	if err := s.db.Where("slug = ? AND status = ?", postSlug, db.PostStatusPublished).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create persists a new post as a draft unless a valid status is supplied.
func (s *PostService) Create(input PostInput) (*db.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrPostTitleMissing
	}

	postSlug, err := normalizeEntrySlug(input.Slug, title)
	if err != nil {
		return nil, err
	}

	status, err := normalizePostStatus(input.Status)
	if err != nil {
		return nil, err
	}

	post := db.Post{
		Title:       title,
		Slug:        postSlug,
		Summary:     strings.TrimSpace(input.Summary),
		Content:     input.Content,
		CoverURL:    strings.TrimSpace(input.CoverURL),
		Status:      status,
		ReadingTime: calculateReadingTime(input.Content),
		UserID:      input.UserID,
	}
	if status == db.PostStatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.db.Create(&post).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrPostSlugTaken
		}
		return nil, err
	}
	return &post, nil
}

// Update applies updates to an existing post.
func (s *PostService) Update(id uint, input PostInput) (*db.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrPostTitleMissing
	}

	postSlug, err := normalizeEntrySlug(input.Slug, title)
	if err != nil {
		return nil, err
	}

	status, err := normalizePostStatus(input.Status)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Slug = postSlug
	post.Summary = strings.TrimSpace(input.Summary)
	post.Content = input.Content
	post.CoverURL = strings.TrimSpace(input.CoverURL)
	post.ReadingTime = calculateReadingTime(input.Content)

	if status == db.PostStatusPublished && post.Status != db.PostStatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}
	post.Status = status

	if err := s.db.Save(post).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrPostSlugTaken
		}
		return nil, err
	}
	return post, nil
}

// Delete removes a post together with its comments and like counter.
func (s *PostService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Unscoped().Delete(&db.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPostNotFound
		}
		if err := tx.Unscoped().Where("post_id = ?", id).Delete(&db.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("post_id = ?", id).Delete(&db.PostLikeVisitor{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("post_id = ?", id).Delete(&db.PostLike{}).Error
	})
}

func normalizePostStatus(status string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(status))
	switch trimmed {
	case "":
		return db.PostStatusDraft, nil
	case db.PostStatusDraft, db.PostStatusPublished:
		return trimmed, nil
	default:
		return "", ErrPostStatusInvalid
	}
}

// normalizeEntrySlug derives a URL slug from an explicit value or, when
// blank, from the title.
func normalizeEntrySlug(explicit, title string) (string, error) {
	source := strings.TrimSpace(explicit)
	if source == "" {
		source = title
	}
	if slug.IsValid(source) {
		return source, nil
	}
	return slug.Normalize(source)
}

func calculateReadingTime(markdown string) int {
	words := len(strings.Fields(markdown))
	runes := utf8.RuneCountInString(markdown)

	// CJK text has no word boundaries; fall back to rune count when the
	// field split collapses most of the content.
	if runes > 0 && words*10 < runes {
		words = runes / 2
	}

	const wordsPerMinute = 200
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
