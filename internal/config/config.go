package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig collects everything the server needs at startup.
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	SessionSecret string
	GinMode       string

	UploadDir     string
	UploadURLPath string
	TemplateGlob  string
	StaticDir     string

	SiteName    string
	SiteBaseURL string

	SuperRootUserName string
	SuperRootPassword string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string

	BuilderAPIURL string
	BuilderAPIKey string

	RevalidateURL    string
	RevalidateSecret string
	DeployHookURL    string
}

// Load reads the application config from environment variables, providing
// safe defaults for anything missing.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "mutantsite.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "mutantsite-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if uploadDir == "" {
		uploadDir = "web/static/uploads"
	}

	uploadURLPath := strings.TrimSpace(os.Getenv("UPLOAD_URL_PATH"))
	if uploadURLPath == "" {
		uploadURLPath = "/static/uploads"
	}

	templateGlob := strings.TrimSpace(os.Getenv("TEMPLATE_GLOB"))
	if templateGlob == "" {
		templateGlob = "web/template/*.html"
	}

	staticDir := strings.TrimSpace(os.Getenv("STATIC_DIR"))
	if staticDir == "" {
		staticDir = "web/static"
	}

	siteName := strings.TrimSpace(os.Getenv("SITE_NAME"))
	if siteName == "" {
		siteName = "Mutant Technologies"
	}

	siteBaseURL := strings.TrimSpace(os.Getenv("SITE_BASE_URL"))
	if siteBaseURL == "" {
		siteBaseURL = "https://mutant.tech"
	}
	siteBaseURL = strings.TrimRight(siteBaseURL, "/")

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  databasePath,
		SessionSecret: sessionSecret,
		GinMode:       ginMode,

		UploadDir:     uploadDir,
		UploadURLPath: uploadURLPath,
		TemplateGlob:  templateGlob,
		StaticDir:     staticDir,

		SiteName:    siteName,
		SiteBaseURL: siteBaseURL,

		SuperRootUserName: strings.TrimSpace(os.Getenv("SUPER_ROOT_USER_NAME")),
		SuperRootPassword: strings.TrimSpace(os.Getenv("SUPER_ROOT_PASSWORD")),

		SMTPHost:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:     strings.TrimSpace(os.Getenv("SMTP_PORT")),
		SMTPUsername: strings.TrimSpace(os.Getenv("SMTP_USERNAME")),
		SMTPPassword: strings.TrimSpace(os.Getenv("SMTP_PASSWORD")),
		SMTPFrom:     strings.TrimSpace(os.Getenv("SMTP_FROM")),
		SMTPFromName: strings.TrimSpace(os.Getenv("SMTP_FROM_NAME")),

		BuilderAPIURL: strings.TrimRight(strings.TrimSpace(os.Getenv("BUILDER_API_URL")), "/"),
		BuilderAPIKey: strings.TrimSpace(os.Getenv("BUILDER_API_KEY")),

		RevalidateURL:    strings.TrimSpace(os.Getenv("REVALIDATE_URL")),
		RevalidateSecret: strings.TrimSpace(os.Getenv("REVALIDATE_SECRET")),
		DeployHookURL:    strings.TrimSpace(os.Getenv("DEPLOY_HOOK_URL")),
	}
}
