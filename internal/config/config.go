package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the admin console.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
	Export  ExportConfig  `mapstructure:"export"`
	S3      S3Config      `mapstructure:"s3"`
}

// APIConfig points the console at the gym backend.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig controls where the bearer token is mirrored so a restart
// restores the session without re-authentication.
type SessionConfig struct {
	TokenFile string `mapstructure:"token_file"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	FileName string `mapstructure:"file_name"`
	ToStdout bool   `mapstructure:"to_stdout"`
	JSON     bool   `mapstructure:"json"`
}

// ExportConfig drives PDF report generation. ChromePath may be empty, in
// which case the headless browser is located on PATH.
type ExportConfig struct {
	OutputDir  string `mapstructure:"output_dir"`
	ChromePath string `mapstructure:"chrome_path"`
	Archive    bool   `mapstructure:"archive"` // upload generated reports to S3
}

// S3Config configures the optional report archive bucket.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variable handling, e.g. api.base_url -> API_BASE_URL
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("api.base_url", "http://localhost:8000")
	viper.SetDefault("api.timeout", "15s")
	viper.SetDefault("session.token_file", ".gymadmin-token")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.to_stdout", false)
	viper.SetDefault("export.output_dir", ".")
	viper.SetDefault("export.archive", false)
	viper.SetDefault("s3.use_ssl", true)

	err = viper.ReadInConfig()
	// A missing config file is fine; env vars and defaults cover everything.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
