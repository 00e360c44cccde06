package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the process-wide database handle. Services receive it explicitly via
// their constructors; the global exists for startup wiring and scripts.
var DB *gorm.DB

// Init opens the database and runs auto-migration. An empty databasePath
// falls back to mutantsite.db.
func Init(databasePath string) error {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "mutantsite.db"
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}

	if err = DB.AutoMigrate(
		&User{},
		&Post{},
		&Comment{},
		&PostLike{},
		&PostLikeVisitor{},
		&ServiceItem{},
		&PortfolioProject{},
		&Testimonial{},
		&OngoingProject{},
		&PageSection{},
		&SiteSetting{},
		&PageMetadata{},
		&Subscriber{},
	); err != nil {
		return err
	}

	return SeedDefaultSettings(DB)
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
