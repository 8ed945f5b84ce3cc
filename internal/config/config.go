package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App     App     `mapstructure:"app"`
	Ingest  Ingest  `mapstructure:"ingest"`
	Fetch   Fetch   `mapstructure:"fetch"`
	Drafts  Drafts  `mapstructure:"drafts"`
	Logging Logging `mapstructure:"logging"`
}

// App holds general application configuration
type App struct {
	Debug      bool   `mapstructure:"debug"`
	LogLevel   string `mapstructure:"log_level"`
	DataDir    string `mapstructure:"data_dir"`
	ConfigFile string `mapstructure:"config_file"`
}

// Ingest holds ingestion configuration
type Ingest struct {
	SourcesFile      string `mapstructure:"sources_file"`
	MaxPerSource     int    `mapstructure:"max_per_source"`
	MaxPerSourceTech int    `mapstructure:"max_per_source_tech"`
	MinRelevance     int    `mapstructure:"min_relevance"`
}

// Fetch holds HTTP fetching configuration
type Fetch struct {
	UserAgent string `mapstructure:"user_agent"`
	Timeout   string `mapstructure:"timeout"`
}

// Drafts holds draft generation configuration
type Drafts struct {
	DefaultTone     string `mapstructure:"default_tone"`
	DefaultLanguage string `mapstructure:"default_language"`
	VariantCount    int    `mapstructure:"variant_count"`
}

// Logging holds logging configuration
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var globalConfig *Config

// Load loads the configuration from various sources
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	// Configure viper
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".newsstudio")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	viper.SetEnvPrefix("NEWSSTUDIO")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

// Reset clears the cached configuration. Used by tests.
func Reset() {
	globalConfig = nil
	viper.Reset()
}

// setDefaults sets default configuration values
func setDefaults() {
	// App defaults
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.data_dir", ".newsstudio")

	// Ingestion defaults
	viper.SetDefault("ingest.sources_file", "")
	viper.SetDefault("ingest.max_per_source", 10)
	viper.SetDefault("ingest.max_per_source_tech", 5)
	viper.SetDefault("ingest.min_relevance", 2)

	// Fetch defaults
	viper.SetDefault("fetch.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36")
	viper.SetDefault("fetch.timeout", "10s")

	// Draft generation defaults
	viper.SetDefault("drafts.default_tone", "informativo")
	viper.SetDefault("drafts.default_language", "es")
	viper.SetDefault("drafts.variant_count", 3)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}
