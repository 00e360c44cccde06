package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mutantsite/internal/config"
	"github.com/mutantsite/internal/content"
	"github.com/mutantsite/internal/db"
	"github.com/mutantsite/internal/handler"
	"github.com/mutantsite/internal/router"
	"github.com/mutantsite/internal/service"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ginOnce sync.Once

// testRouterConfig points at the real templates so pages render end to end.
func testRouterConfig() config.AppConfig {
	return config.AppConfig{
		SessionSecret: "test-secret",
		TemplateGlob:  "../../web/template/*.html",
		StaticDir:     "../../web/static",
		UploadDir:     "../../web/static/uploads",
		UploadURLPath: "/static/uploads",
		SiteName:      "Mutant Technologies",
		SiteBaseURL:   "https://mutant.tech",
	}
}

func setupPublicTestDB(t *testing.T) func() {
	t.Helper()

	ginOnce.Do(func() {
		gin.SetMode(gin.TestMode)
	})

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.User{},
		&db.Post{},
		&db.Comment{},
		&db.PostLike{},
		&db.PostLikeVisitor{},
		&db.ServiceItem{},
		&db.PortfolioProject{},
		&db.Testimonial{},
		&db.OngoingProject{},
		&db.PageSection{},
		&db.SiteSetting{},
		&db.PageMetadata{},
		&db.Subscriber{},
	); err != nil {
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

func newPublicRouter() *gin.Engine {
	cfg := testRouterConfig()
	api := handler.NewAPI(db.DB, cfg)
	return router.New(cfg, api)
}

func TestShowHomeRendersSectionContent(t *testing.T) {
	cleanup := setupPublicTestDB(t)
	defer cleanup()

	sections := service.NewSectionService(db.DB)
	if _, err := sections.Upsert(service.SectionInput{
		PageSlug:   "home",
		SectionKey: "hero",
		Content: content.Fields{
			"title":    content.Scalar("We mutate ideas into products"),
			"subtitle": content.Scalar("Design, build, ship"),
		},
	}); err != nil {
		t.Fatalf("failed to seed hero section: %v", err)
	}

	r := newPublicRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "We mutate ideas into products") {
		t.Fatal("expected hero title in rendered home page")
	}
	if !strings.Contains(body, "hello@mutant.tech") {
		t.Fatal("expected contact email fallback in footer")
	}
}

func TestShowHomeSurvivesEmptyStore(t *testing.T) {
	cleanup := setupPublicTestDB(t)
	defer cleanup()

	r := newPublicRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("page must render without any stored content, got %d", w.Code)
	}
}

func TestShowPostRendersMarkdownAndExcludesDrafts(t *testing.T) {
	cleanup := setupPublicTestDB(t)
	defer cleanup()

	posts := service.NewPostService(db.DB)
	if _, err := posts.Create(service.PostInput{
		Title:   "Hello World",
		Content: "## Heading\n\nSome **bold** text.",
		Status:  db.PostStatusPublished,
	}); err != nil {
		t.Fatalf("failed to seed published post: %v", err)
	}
	if _, err := posts.Create(service.PostInput{Title: "Secret Draft"}); err != nil {
		t.Fatalf("failed to seed draft: %v", err)
	}

	r := newPublicRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blog/hello-world", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<strong>bold</strong>") {
		t.Fatal("expected markdown to render to html")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blog/secret-draft", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("draft must 404, got %d", w.Code)
	}
}

func TestMetadataTagsInRenderedPage(t *testing.T) {
	cleanup := setupPublicTestDB(t)
	defer cleanup()

	metadata := service.NewMetadataService(db.DB, "Mutant Technologies", "https://mutant.tech")
	if _, err := metadata.Upsert(service.MetadataInput{
		PageSlug:    "/about",
		Title:       "About Us",
		Description: "The people behind the mutations",
	}); err != nil {
		t.Fatalf("failed to seed metadata: %v", err)
	}

	r := newPublicRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/about", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<title>About Us | Mutant Technologies</title>") {
		t.Fatal("expected branded title tag")
	}
	if !strings.Contains(body, `<link rel="canonical" href="https://mutant.tech/about">`) {
		t.Fatal("expected synthesized canonical link")
	}
	if !strings.Contains(body, `<meta property="og:title" content="About Us">`) {
		t.Fatal("expected unbranded og title")
	}
	if !strings.Contains(body, `<meta name="robots" content="index, follow">`) {
		t.Fatal("expected default robots directive")
	}
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	cleanup := setupPublicTestDB(t)
	defer cleanup()

	r := newPublicRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

type builderDoer struct {
	status int
	body   string
}

func (d *builderDoer) Do(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: d.status,
		Status:     http.StatusText(d.status),
		Body:       io.NopCloser(strings.NewReader(d.body)),
	}, nil
}

func TestBuilderRouteGate(t *testing.T) {
	cleanup := setupAdminTestDB(t)
	defer cleanup()

	cfg := testRouterConfig()
	cfg.BuilderAPIURL = "https://builder.example.com/api/v3"
	cfg.BuilderAPIKey = "test-key"
	api := handler.NewAPI(db.DB, cfg)
	r := router.New(cfg, api)

	// No published content, no preview: terminal not found.
	api.Builder().SetHTTPClient(&builderDoer{status: http.StatusNotFound})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p/landing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without content, got %d", w.Code)
	}

	// The preview flag alone is not enough: anonymous requests stay 404.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p/landing?preview=true", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for anonymous preview, got %d", w.Code)
	}

	// A logged-in admin previewing gets the builder shell without content.
	cookies := loginAdmin(t, r)
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/p/landing?preview=true", nil)
	withCookies(req, cookies)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin preview, got %d", w.Code)
	}

	// Published content renders for everyone, preview or not.
	api.Builder().SetHTTPClient(&builderDoer{
		status: http.StatusOK,
		body:   `{"results":[{"id":"abc","name":"Landing","data":{"blocks":[]}}]}`,
	})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p/landing", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with content, got %d", w.Code)
	}
}
