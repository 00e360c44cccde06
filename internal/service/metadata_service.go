package service

import (
	"errors"
	"log"
	"strings"

	"github.com/mutantsite/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrMetadataNotFound    = errors.New("page metadata not found")
	ErrMetadataSlugMissing = errors.New("metadata page slug is required")
)

// MetadataDefaults is the caller-supplied fallback bundle for one page.
// Title and description are required; the image lists are optional.
type MetadataDefaults struct {
	Title         string
	Description   string
	OGImages      []string
	TwitterImages []string
}

// OpenGraph is the resolved Open Graph block.
type OpenGraph struct {
	Title       string
	Description string
	Images      []string
	URL         string
	SiteName    string
	Type        string
}

// TwitterMeta is the resolved Twitter Card block.
type TwitterMeta struct {
	Card        string
	Title       string
	Description string
	Images      []string
}

// MetadataBundle is the complete, request-scoped set of SEO and social tags
// for one page. Every field is defined regardless of what the store held.
type MetadataBundle struct {
	Title        string
	Description  string
	CanonicalURL string
	OpenGraph    OpenGraph
	Twitter      TwitterMeta
	Robots       string
}

// MetadataInput represents fields accepted when upserting a metadata record.
type MetadataInput struct {
	PageSlug      string
	Title         string
	Description   string
	CanonicalURL  string
	OGTitle       string
	OGDescription string
	OGImage       string
	TwitterCard   string
	TwitterImage  string
	Robots        string
}

// MetadataService merges stored per-page metadata records against caller
// defaults and site-level constants.
type MetadataService struct {
	db       *gorm.DB
	siteName string
	baseURL  string
}

// NewMetadataService creates a MetadataService bound to the site identity
// used for title branding and URL derivation.
func NewMetadataService(gdb *gorm.DB, siteName, baseURL string) *MetadataService {
	return &MetadataService{
		db:       gdb,
		siteName: siteName,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// Resolve builds the metadata bundle for a page. Slugs are matched exactly;
// callers supply them with the leading slash. A missing record or a fetch
// failure falls back to the defaults without the site-name suffix. Page
// rendering never fails because metadata was unavailable.
func (s *MetadataService) Resolve(slug string, defaults MetadataDefaults) MetadataBundle {
	var record db.PageMetadata
	err := s.db.Where("page_slug = ?", slug).First(&record).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("resolve metadata for %q: %v", slug, err)
		}
		return s.defaultBundle(slug, defaults)
	}

	pageTitle := firstNonEmpty(record.Title, defaults.Title)
	title := pageTitle
	if !strings.Contains(title, s.siteName) {
		title = title + " | " + s.siteName
	}

	description := firstNonEmpty(record.Description, defaults.Description)
	canonical := firstNonEmpty(record.CanonicalURL, s.pageURL(slug))

	ogImages := imageList(record.OGImage, defaults.OGImages)
	twitterImages := imageList(record.TwitterImage, defaults.TwitterImages)

	return MetadataBundle{
		Title:        title,
		Description:  description,
		CanonicalURL: canonical,
		OpenGraph: OpenGraph{
			// Social cards carry the page title, not the branded one.
			Title:       firstNonEmpty(record.OGTitle, pageTitle),
			Description: firstNonEmpty(record.OGDescription, description),
			Images:      ogImages,
			URL:         canonical,
			SiteName:    s.siteName,
			Type:        "website",
		},
		Twitter: TwitterMeta{
			Card:        firstNonEmpty(record.TwitterCard, db.TwitterCardSummaryLargeImage),
			Title:       firstNonEmpty(record.OGTitle, pageTitle),
			Description: firstNonEmpty(record.OGDescription, description),
			Images:      twitterImages,
		},
		Robots: firstNonEmpty(record.Robots, db.DefaultRobots),
	}
}

func (s *MetadataService) defaultBundle(slug string, defaults MetadataDefaults) MetadataBundle {
	pageURL := s.pageURL(slug)

	ogImages := defaults.OGImages
	if ogImages == nil {
		ogImages = []string{}
	}
	twitterImages := defaults.TwitterImages
	if twitterImages == nil {
		twitterImages = []string{}
	}

	return MetadataBundle{
		Title:        defaults.Title,
		Description:  defaults.Description,
		CanonicalURL: pageURL,
		OpenGraph: OpenGraph{
			Title:       defaults.Title,
			Description: defaults.Description,
			Images:      ogImages,
			URL:         pageURL,
			SiteName:    s.siteName,
			Type:        "website",
		},
		Twitter: TwitterMeta{
			Card:        db.TwitterCardSummaryLargeImage,
			Title:       defaults.Title,
			Description: defaults.Description,
			Images:      twitterImages,
		},
		Robots: db.DefaultRobots,
	}
}

func (s *MetadataService) pageURL(slug string) string {
	if slug == "/" {
		return s.baseURL
	}
	return s.baseURL + slug
}

// List returns all metadata records for the admin screen, ordered by slug.
func (s *MetadataService) List() ([]db.PageMetadata, error) {
	var records []db.PageMetadata
	if err := s.db.Order("page_slug asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetBySlug fetches one metadata record.
func (s *MetadataService) GetBySlug(slug string) (*db.PageMetadata, error) {
	var record db.PageMetadata
	if err := s.db.Where("page_slug = ?", slug).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMetadataNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Upsert creates or replaces the metadata record for a slug.
func (s *MetadataService) Upsert(input MetadataInput) (*db.PageMetadata, error) {
	slug := strings.TrimSpace(input.PageSlug)
	if slug == "" {
		return nil, ErrMetadataSlugMissing
	}

	record := db.PageMetadata{
		PageSlug:      slug,
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		CanonicalURL:  strings.TrimSpace(input.CanonicalURL),
		OGTitle:       strings.TrimSpace(input.OGTitle),
		OGDescription: strings.TrimSpace(input.OGDescription),
		OGImage:       strings.TrimSpace(input.OGImage),
		TwitterCard:   strings.TrimSpace(input.TwitterCard),
		TwitterImage:  strings.TrimSpace(input.TwitterImage),
		Robots:        strings.TrimSpace(input.Robots),
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "page_slug"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"title":          record.Title,
			"description":    record.Description,
			"canonical_url":  record.CanonicalURL,
			"og_title":       record.OGTitle,
			"og_description": record.OGDescription,
			"og_image":       record.OGImage,
			"twitter_card":   record.TwitterCard,
			"twitter_image":  record.TwitterImage,
			"robots":         record.Robots,
			"updated_at":     gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&record).Error; err != nil {
		return nil, err
	}

	return s.GetBySlug(slug)
}

// Delete removes the metadata record for a slug.
func (s *MetadataService) Delete(slug string) error {
	result := s.db.Unscoped().Where("page_slug = ?", slug).Delete(&db.PageMetadata{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMetadataNotFound
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func imageList(recordImage string, fallback []string) []string {
	if strings.TrimSpace(recordImage) != "" {
		return []string{recordImage}
	}
	if len(fallback) > 0 {
		return fallback
	}
	return []string{}
}
