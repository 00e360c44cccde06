package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mutantsite/internal/builder"
	"github.com/mutantsite/internal/config"
	"github.com/mutantsite/internal/db"
	"github.com/mutantsite/internal/mailer"
	"github.com/mutantsite/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	sections     *service.SectionService
	settings     *service.SettingService
	metadata     *service.MetadataService
	posts        *service.PostService
	portfolio    *service.PortfolioService
	items        *service.ServiceItemService
	testimonials *service.TestimonialService
	ongoing      *service.OngoingProjectService
	comments     *service.CommentService
	likes        *service.LikeService
	subscribers  *service.SubscriberService
	hooks        *service.HookService
	builder      *builder.Client
	mail         mailer.Mailer

	siteName  string
	baseURL   string
	uploadDir string
	uploadURL string
}

// siteViewModel carries the handful of settings every template needs.
type siteViewModel struct {
	Name         string
	ContactEmail string
	PhoneNumber  string
	MarqueeText  string
	Address      string
}

const siteSettingsContextKey = "__site_settings"

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig) *API {
	return &API{
		db:           gdb,
		sections:     service.NewSectionService(gdb),
		settings:     service.NewSettingService(gdb),
		metadata:     service.NewMetadataService(gdb, cfg.SiteName, cfg.SiteBaseURL),
		posts:        service.NewPostService(gdb),
		portfolio:    service.NewPortfolioService(gdb),
		items:        service.NewServiceItemService(gdb),
		testimonials: service.NewTestimonialService(gdb),
		ongoing:      service.NewOngoingProjectService(gdb),
		comments:     service.NewCommentService(gdb),
		likes:        service.NewLikeService(gdb),
		subscribers:  service.NewSubscriberService(gdb),
		hooks:        service.NewHookService(cfg.RevalidateURL, cfg.RevalidateSecret, cfg.DeployHookURL),
		builder:      builder.NewClient(cfg.BuilderAPIURL, cfg.BuilderAPIKey),
		mail: mailer.New(mailer.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			FromName: cfg.SMTPFromName,
		}),
		siteName:  cfg.SiteName,
		baseURL:   cfg.SiteBaseURL,
		uploadDir: cfg.UploadDir,
		uploadURL: cfg.UploadURLPath,
	}
}

// SetMailer swaps the outbound mailer, mainly for tests.
func (a *API) SetMailer(m mailer.Mailer) {
	a.mail = m
}

// Hooks exposes the revalidation trigger service, mainly for tests.
func (a *API) Hooks() *service.HookService {
	return a.hooks
}

// Builder exposes the visual builder client, mainly for tests.
func (a *API) Builder() *builder.Client {
	return a.builder
}

// siteSettings resolves the global settings once per request. Resolver
// absence is covered by literal fallbacks here, the single place they live.
func (a *API) siteSettings(c *gin.Context) siteViewModel {
	if cached, exists := c.Get(siteSettingsContextKey); exists {
		if view, ok := cached.(siteViewModel); ok {
			return view
		}
	}

	settings := a.settings.Resolve()
	view := siteViewModel{
		Name:         a.siteName,
		ContactEmail: service.Lookup(settings, db.SettingKeyContactEmail, "hello@mutant.tech"),
		PhoneNumber:  service.Lookup(settings, db.SettingKeyPhoneNumber, ""),
		MarqueeText:  service.Lookup(settings, db.SettingKeyMarqueeText, "We build mutant-grade digital products"),
		Address:      service.Lookup(settings, db.SettingKeyAddress, ""),
	}

	c.Set(siteSettingsContextKey, view)
	return view
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	view := a.siteSettings(c)

	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["site"]; !exists {
		payload["site"] = gin.H{
			"name":         view.Name,
			"contactEmail": view.ContactEmail,
			"phoneNumber":  view.PhoneNumber,
			"marqueeText":  view.MarqueeText,
			"address":      view.Address,
		}
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}

	c.HTML(status, template, payload)
}
