package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Assistant specifics
	Gemini      GeminiConfig
	OpenWeather OpenWeatherConfig
	News        NewsConfig
	Speech      SpeechConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenWeatherConfig struct {
	APIKey string
}

type NewsConfig struct {
	APIKey string
}

type SpeechConfig struct {
	Enabled bool
	Voice   string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	// OpenWeatherMap
	cfg.OpenWeather.APIKey = viper.GetString("openweather.api_key")
	if key := viper.GetString("weather_api_key"); key != "" {
		cfg.OpenWeather.APIKey = key
	}

	// NewsAPI
	cfg.News.APIKey = viper.GetString("news.api_key")
	if key := viper.GetString("news_api_key"); key != "" {
		cfg.News.APIKey = key
	}

	// Speech
	cfg.Speech.Enabled = viper.GetBool("speech.enabled")
	cfg.Speech.Voice = viper.GetString("speech.voice")

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini api key not configured - set gemini.api_key in config.yaml or GEMINI_API_KEY")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("speech.enabled", false)
	viper.SetDefault("speech.voice", "en-US-MichelleNeural")
}
