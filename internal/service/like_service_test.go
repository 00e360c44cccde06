package service

import (
	"errors"
	"testing"

	"github.com/mutantsite/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupLikeServiceTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Post{}, &db.PostLike{}, &db.PostLikeVisitor{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestLikeIncrementsCounter(t *testing.T) {
	cleanup := setupLikeServiceTestDB(t)
	defer cleanup()

	post, err := NewPostService(db.DB).Create(PostInput{Title: "Likeable", Status: db.PostStatusPublished})
	if err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}

	svc := NewLikeService(db.DB)
	if count, err := svc.Count(post.ID); err != nil || count != 0 {
		t.Fatalf("expected zero likes initially, got %d (%v)", count, err)
	}

	if total, counted, err := svc.Like(post.ID, "visitor-a"); err != nil || !counted || total != 1 {
		t.Fatalf("expected first like to total 1, got %d counted=%v (%v)", total, counted, err)
	}
	if total, counted, err := svc.Like(post.ID, "visitor-b"); err != nil || !counted || total != 2 {
		t.Fatalf("expected second visitor to total 2, got %d counted=%v (%v)", total, counted, err)
	}

	var rows int64
	if err := db.DB.Model(&db.PostLike{}).Count(&rows).Error; err != nil {
		t.Fatalf("failed to count like rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected a single counter row, got %d", rows)
	}
}

func TestLikeIgnoresRepeatVisitors(t *testing.T) {
	cleanup := setupLikeServiceTestDB(t)
	defer cleanup()

	post, err := NewPostService(db.DB).Create(PostInput{Title: "Once", Status: db.PostStatusPublished})
	if err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}

	svc := NewLikeService(db.DB)
	if _, _, err := svc.Like(post.ID, "visitor-a"); err != nil {
		t.Fatalf("first like returned error: %v", err)
	}
	total, counted, err := svc.Like(post.ID, "visitor-a")
	if err != nil {
		t.Fatalf("repeat like returned error: %v", err)
	}
	if counted || total != 1 {
		t.Fatalf("repeat visitor must not count, got total=%d counted=%v", total, counted)
	}

	var visitors int64
	if err := db.DB.Model(&db.PostLikeVisitor{}).Where("post_id = ?", post.ID).Count(&visitors).Error; err != nil {
		t.Fatalf("failed to count visitor rows: %v", err)
	}
	if visitors != 1 {
		t.Fatalf("expected one visitor row, got %d", visitors)
	}

	if _, _, err := svc.Like(post.ID, "  "); !errors.Is(err, ErrVisitorTokenMissing) {
		t.Fatalf("expected ErrVisitorTokenMissing for blank token, got %v", err)
	}
}

func TestLikeRejectsDraftAndUnknownPosts(t *testing.T) {
	cleanup := setupLikeServiceTestDB(t)
	defer cleanup()

	draft, err := NewPostService(db.DB).Create(PostInput{Title: "Draft"})
	if err != nil {
		t.Fatalf("failed to seed draft: %v", err)
	}

	svc := NewLikeService(db.DB)
	if _, _, err := svc.Like(draft.ID, "visitor-a"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound for draft, got %v", err)
	}
	if _, _, err := svc.Like(999, "visitor-a"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound for unknown post, got %v", err)
	}
}
