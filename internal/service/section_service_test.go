package service

import (
	"errors"
	"testing"

	"github.com/mutantsite/internal/content"
	"github.com/mutantsite/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSectionServiceTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.PageSection{}); err != nil {
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

func TestResolveEmptyPageYieldsEmptyMapping(t *testing.T) {
	cleanup := setupSectionServiceTestDB(t)
	defer cleanup()

	svc := NewSectionService(db.DB)
	resolved := svc.Resolve("home")
	if resolved == nil {
		t.Fatal("expected a non-nil mapping")
	}
	if len(resolved) != 0 {
		t.Fatalf("expected empty mapping, got %v", resolved)
	}
}

func TestResolveKeepsContentVerbatim(t *testing.T) {
	cleanup := setupSectionServiceTestDB(t)
	defer cleanup()

	svc := NewSectionService(db.DB)

	if _, err := svc.Upsert(SectionInput{
		PageSlug:   "home",
		SectionKey: "hero",
		Content: content.Fields{
			"title":    content.Scalar("We mutate ideas into products"),
			"subtitle": content.Scalar("Digital agency"),
		},
	}); err != nil {
		t.Fatalf("failed to upsert hero: %v", err)
	}
	if _, err := svc.Upsert(SectionInput{
		PageSlug:   "home",
		SectionKey: "clients",
		Content: content.Fields{
			"logos": content.Repeater([]map[string]string{
				{"name": "Acme", "logo": "/img/acme.svg"},
				{"name": "Globex", "logo": "/img/globex.svg"},
			}),
		},
	}); err != nil {
		t.Fatalf("failed to upsert clients: %v", err)
	}
	if _, err := svc.Upsert(SectionInput{
		PageSlug:   "about",
		SectionKey: "hero",
		Content:    content.Fields{"title": content.Scalar("About")},
	}); err != nil {
		t.Fatalf("failed to upsert about hero: %v", err)
	}

	resolved := svc.Resolve("home")
	if len(resolved) != 2 {
		t.Fatalf("expected 2 sections for home, got %d", len(resolved))
	}

	if resolved["hero"]["title"].Text() != "We mutate ideas into products" {
		t.Fatalf("unexpected hero title: %q", resolved["hero"]["title"].Text())
	}
	logos := resolved["clients"]["logos"].Items()
	if len(logos) != 2 || logos[1]["name"] != "Globex" {
		t.Fatalf("unexpected client logos: %v", logos)
	}
	if _, exists := resolved["missing"]; exists {
		t.Fatal("unknown keys must be absent, not empty")
	}
}

func TestResolveIsRepeatable(t *testing.T) {
	cleanup := setupSectionServiceTestDB(t)
	defer cleanup()

	svc := NewSectionService(db.DB)
	if _, err := svc.Upsert(SectionInput{
		PageSlug:   "services",
		SectionKey: "intro",
		Content:    content.Fields{"title": content.Scalar("Services")},
	}); err != nil {
		t.Fatalf("failed to upsert: %v", err)
	}

	first := svc.Resolve("services")
	second := svc.Resolve("services")
	if first["intro"]["title"].Text() != second["intro"]["title"].Text() {
		t.Fatal("resolving twice must give the same result")
	}
}

func TestUpsertReplacesExistingSection(t *testing.T) {
	cleanup := setupSectionServiceTestDB(t)
	defer cleanup()

	svc := NewSectionService(db.DB)
	if _, err := svc.Upsert(SectionInput{
		PageSlug:   "home",
		SectionKey: "hero",
		Content:    content.Fields{"title": content.Scalar("First")},
	}); err != nil {
		t.Fatalf("failed to create section: %v", err)
	}

	saved, err := svc.Upsert(SectionInput{
		PageSlug:   "home",
		SectionKey: "hero",
		Content:    content.Fields{"title": content.Scalar("Second")},
	})
	if err != nil {
		t.Fatalf("failed to upsert section: %v", err)
	}
	if saved.Content["title"].Text() != "Second" {
		t.Fatalf("expected replacement content, got %q", saved.Content["title"].Text())
	}

	var count int64
	if err := db.DB.Model(&db.PageSection{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count sections: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single row after upsert, got %d", count)
	}

	if svc.Resolve("home")["hero"]["title"].Text() != "Second" {
		t.Fatal("resolve must see the replacement content")
	}
}

func TestUpsertRejectsMissingKeys(t *testing.T) {
	cleanup := setupSectionServiceTestDB(t)
	defer cleanup()

	svc := NewSectionService(db.DB)
	if _, err := svc.Upsert(SectionInput{PageSlug: " ", SectionKey: "hero"}); !errors.Is(err, ErrSectionKeyMissing) {
		t.Fatalf("expected ErrSectionKeyMissing, got %v", err)
	}
	if _, err := svc.Upsert(SectionInput{PageSlug: "home", SectionKey: ""}); !errors.Is(err, ErrSectionKeyMissing) {
		t.Fatalf("expected ErrSectionKeyMissing, got %v", err)
	}
}

func TestListPagesReturnsDistinctSlugs(t *testing.T) {
	cleanup := setupSectionServiceTestDB(t)
	defer cleanup()

	svc := NewSectionService(db.DB)
	for _, seed := range []SectionInput{
		{PageSlug: "home", SectionKey: "hero"},
		{PageSlug: "home", SectionKey: "clients"},
		{PageSlug: "about", SectionKey: "team"},
	} {
		seed.Content = content.Fields{}
		if _, err := svc.Upsert(seed); err != nil {
			t.Fatalf("failed to seed section: %v", err)
		}
	}

	pages, err := svc.ListPages()
	if err != nil {
		t.Fatalf("ListPages returned error: %v", err)
	}
	if len(pages) != 2 || pages[0] != "about" || pages[1] != "home" {
		t.Fatalf("expected [about home], got %v", pages)
	}
}

func TestDeleteSectionReportsMissing(t *testing.T) {
	cleanup := setupSectionServiceTestDB(t)
	defer cleanup()

	svc := NewSectionService(db.DB)
	if err := svc.Delete(99); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}

	saved, err := svc.Upsert(SectionInput{
		PageSlug:   "home",
		SectionKey: "hero",
		Content:    content.Fields{},
	})
	if err != nil {
		t.Fatalf("failed to create section: %v", err)
	}
	if err := svc.Delete(saved.ID); err != nil {
		t.Fatalf("failed to delete section: %v", err)
	}
	if len(svc.Resolve("home")) != 0 {
		t.Fatal("deleted section must not resolve")
	}
}
