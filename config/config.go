package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Server   ServerConfig   `yaml:"server"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Insights InsightsConfig `yaml:"insights"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ServerConfig holds the API listen address and the dashboard origins
// allowed through CORS.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// MongoConfig holds connection settings. URI may be overridden by the
// MONGO_URI environment variable so deployments never put credentials
// into config.yaml.
type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

// InsightsConfig defines the delta thresholds (percentage points, or
// seconds for engagement time) above which a comparison insight is
// emitted. Zero values fall back to the product defaults.
type InsightsConfig struct {
	ConversionDelta float64 `yaml:"conversion_delta"`
	ViewToEditDelta float64 `yaml:"view_to_edit_delta"`
	EditToSaveDelta float64 `yaml:"edit_to_save_delta"`
	ShareDelta      float64 `yaml:"share_delta"`
	EngagementDelta float64 `yaml:"engagement_delta"`
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

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	if uri := os.Getenv("MONGO_URI"); uri != "" {
		c.Mongo.URI = uri
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
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
