package attendance

import (
	configsqlite "attendance-backend/lib/configutil/sqlite"
	"attendance-backend/lib/restyutil"
	"attendance-backend/lib/scrapers/profile"
	"attendance-backend/services/attendance/db"
	"database/sql"
	"os"
	"time"
)

type ScraperConfig struct {
	TimeoutSeconds   int    `json:"timeout_seconds"`
	UserAgent        string `json:"user_agent"`
	CloudflareBypass bool   `json:"cloudflare_bypass"`
}

type Config struct {
	AllowedHost string              `json:"allowed_host"`
	Timezone    string              `json:"timezone"`
	Database    configsqlite.Struct `json:"database"`
	Scraper     ScraperConfig       `json:"scraper"`
}

// ApplyEnv lets ATTENDANCE_* environment variables override values
// read from the config file.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("ATTENDANCE_DB_FILE"); v != "" {
		c.Database.File = v
	}
	if v := os.Getenv("ATTENDANCE_DB_URL"); v != "" {
		c.Database.Url = v
	}
	if v := os.Getenv("ATTENDANCE_DB_AUTH_TOKEN"); v != "" {
		c.Database.AuthToken = v
	}
	if v := os.Getenv("ATTENDANCE_ALLOWED_HOST"); v != "" {
		c.AllowedHost = v
	}
}

func (c Config) OpenDB() (*sql.DB, error) {
	if c.Database.File == "" && c.Database.Url == "" {
		c.Database.File = "attendance.db"
	}
	return c.Database.OpenDB(db.Schema)
}

// output may be nil.
func (c Config) NewScraper(output restyutil.InstrumentOutput) *profile.Client {
	return profile.NewClient(profile.Options{
		Timeout:          time.Duration(c.Scraper.TimeoutSeconds) * time.Second,
		UserAgent:        c.Scraper.UserAgent,
		CloudflareBypass: c.Scraper.CloudflareBypass,
		Output:           output,
	})
}
