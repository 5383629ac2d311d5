package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

const DefaultContentAPIBaseURL = "http://localhost:8081/api/v1"

type AppConfig struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	Mongo      MongoConfig      `yaml:"mongo"`
	ContentAPI ContentAPIConfig `yaml:"content_api"`
	Listing    ListingConfig    `yaml:"listing"`
	Importer   ImporterConfig   `yaml:"importer"`
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

type ServerConfig struct {
	APIAddr        string   `yaml:"api_addr" validate:"required"`
	WebAddr        string   `yaml:"web_addr" validate:"required"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name" validate:"required"`
}

// ContentAPIConfig points the web front end at the read-only content API.
// BaseURL includes the version prefix, e.g. http://localhost:8081/api/v1.
type ContentAPIConfig struct {
	BaseURL        string `yaml:"base_url" validate:"required,url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"gte=0"`
}

// ListingConfig holds the page size of every listing and the shape of its page controls.
type ListingConfig struct {
	ServicesPageSize int `yaml:"services_page_size" validate:"gt=0"`
	BlogsPageSize    int `yaml:"blogs_page_size" validate:"gt=0"`
	EventsPageSize   int `yaml:"events_page_size" validate:"gt=0"`
	// SiblingPages is how many pages are listed on each side of the current page.
	// Omitted means 1; 0 lists only the first, last and current page.
	SiblingPages *int `yaml:"sibling_pages" validate:"omitempty,gte=0"`
	// Navigation views untouched for ViewIdleMinutes are unmounted.
	ViewIdleMinutes int `yaml:"view_idle_minutes" validate:"gt=0"`
}

type ImporterConfig struct {
	Schedule       string       `yaml:"schedule"`
	FetchBatchSize int          `yaml:"fetch_batch_size" validate:"gte=0"`
	Feeds          []FeedSource `yaml:"feeds" validate:"dive"`
}

// FeedSource is a single external blog feed imported into the blogs collection
type FeedSource struct {
	Name     string `yaml:"name" validate:"required"`
	RSSURL   string `yaml:"rss_url" validate:"required,url"`
	Category string `yaml:"category"`
	Author   string `yaml:"author"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	config = c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// Parse decodes a config.yaml document, fills defaults, applies environment
// overrides and validates the result.
func Parse(data []byte) (*AppConfig, error) {
	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	c.applyEnv()
	c.setDefaults()

	if err := validator.New().Struct(&c); err != nil {
		return nil, fmt.Errorf("config: validation error: %w", err)
	}
	return &c, nil
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv("CONTENT_API_BASE_URL"); v != "" {
		c.ContentAPI.BaseURL = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DB_NAME"); v != "" {
		c.Mongo.DBName = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func (c *AppConfig) setDefaults() {
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.APIAddr == "" {
		c.Server.APIAddr = ":8081"
	}
	if c.Server.WebAddr == "" {
		c.Server.WebAddr = ":8080"
	}
	if c.Mongo.DBName == "" {
		c.Mongo.DBName = "gradpath"
	}
	if c.ContentAPI.BaseURL == "" {
		c.ContentAPI.BaseURL = DefaultContentAPIBaseURL
	}
	c.ContentAPI.BaseURL = strings.TrimRight(c.ContentAPI.BaseURL, "/")
	if c.ContentAPI.TimeoutSeconds == 0 {
		c.ContentAPI.TimeoutSeconds = 10
	}
	if c.Listing.ServicesPageSize == 0 {
		c.Listing.ServicesPageSize = 6
	}
	if c.Listing.BlogsPageSize == 0 {
		c.Listing.BlogsPageSize = 6
	}
	if c.Listing.EventsPageSize == 0 {
		c.Listing.EventsPageSize = 6
	}
	if c.Listing.SiblingPages == nil {
		siblings := 1
		c.Listing.SiblingPages = &siblings
	}
	if c.Listing.ViewIdleMinutes == 0 {
		c.Listing.ViewIdleMinutes = 30
	}
	if c.Importer.Schedule == "" {
		c.Importer.Schedule = "0 0 3 * * *"
	}
	if c.Importer.FetchBatchSize == 0 {
		c.Importer.FetchBatchSize = 10
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
