package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	MQTT      MQTTConfig
	Dashboard DashboardConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	Secret string
	Issuer string
}

type RateLimitConfig struct {
	GeneralRPS   float64 // Requests per second for general endpoints
	GeneralBurst int     // Burst size for general endpoints
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// MQTTConfig is optional; an empty Broker disables the diagnostics publisher.
type MQTTConfig struct {
	Broker         string
	ClientID       string
	Username       string
	Password       string
	KeepAlive      int
	ConnectTimeout int
	QoS            byte
}

type DashboardConfig struct {
	FetchConcurrency  int
	FetchTimeout      time.Duration
	RecentLimit       int
	SessionTTL        time.Duration
	JanitorInterval   time.Duration
	SnapshotTimeout   time.Duration
	UpcomingWindow    time.Duration
	DiagnosticsTopic  string
	MaxOpenSessions   int
	AssetListPageSize int
}

func setDefaults() {
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("JWT_ISSUER", "asset-inventory")
	viper.SetDefault("RATE_LIMIT_GENERAL_RPS", 20)
	viper.SetDefault("RATE_LIMIT_GENERAL_BURST", 40)
	viper.SetDefault("MQTT_CLIENT_ID", "asset-inventory-dashboard")
	viper.SetDefault("MQTT_KEEP_ALIVE", 30)
	viper.SetDefault("MQTT_CONNECT_TIMEOUT", 10)
	viper.SetDefault("MQTT_QOS", 1)
	viper.SetDefault("DASHBOARD_FETCH_CONCURRENCY", 1)
	viper.SetDefault("DASHBOARD_FETCH_TIMEOUT", 10*time.Second)
	viper.SetDefault("DASHBOARD_RECENT_LIMIT", 5)
	viper.SetDefault("DASHBOARD_SESSION_TTL", 15*time.Minute)
	viper.SetDefault("DASHBOARD_JANITOR_INTERVAL", time.Minute)
	viper.SetDefault("DASHBOARD_SNAPSHOT_TIMEOUT", 30*time.Second)
	viper.SetDefault("DASHBOARD_UPCOMING_WINDOW", 30*24*time.Hour)
	viper.SetDefault("DASHBOARD_DIAGNOSTICS_TOPIC", "assets/dashboard/diagnostics")
	viper.SetDefault("DASHBOARD_MAX_OPEN_SESSIONS", 256)
	viper.SetDefault("DASHBOARD_ASSET_PAGE_SIZE", 20)
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AddConfigPath(".")
	if homeDir, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(homeDir)
	}
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Printf("Warning: config file not found: %v. Falling back to environment variables only.", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			Host:        viper.GetString("SERVER_HOST"),
			Environment: viper.GetString("ENVIRONMENT"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			Issuer: viper.GetString("JWT_ISSUER"),
		},
		RateLimit: RateLimitConfig{
			GeneralRPS:   viper.GetFloat64("RATE_LIMIT_GENERAL_RPS"),
			GeneralBurst: viper.GetInt("RATE_LIMIT_GENERAL_BURST"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods:   viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders:   viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
			ExposedHeaders:   viper.GetStringSlice("CORS_EXPOSED_HEADERS"),
			AllowCredentials: viper.GetBool("CORS_ALLOW_CREDENTIALS"),
			MaxAge:           viper.GetInt("CORS_MAX_AGE"),
		},
		MQTT: MQTTConfig{
			Broker:         viper.GetString("MQTT_BROKER"),
			ClientID:       viper.GetString("MQTT_CLIENT_ID"),
			Username:       viper.GetString("MQTT_USERNAME"),
			Password:       viper.GetString("MQTT_PASSWORD"),
			KeepAlive:      viper.GetInt("MQTT_KEEP_ALIVE"),
			ConnectTimeout: viper.GetInt("MQTT_CONNECT_TIMEOUT"),
			QoS:            byte(viper.GetUint("MQTT_QOS")),
		},
		Dashboard: DashboardConfig{
			FetchConcurrency:  viper.GetInt("DASHBOARD_FETCH_CONCURRENCY"),
			FetchTimeout:      viper.GetDuration("DASHBOARD_FETCH_TIMEOUT"),
			RecentLimit:       viper.GetInt("DASHBOARD_RECENT_LIMIT"),
			SessionTTL:        viper.GetDuration("DASHBOARD_SESSION_TTL"),
			JanitorInterval:   viper.GetDuration("DASHBOARD_JANITOR_INTERVAL"),
			SnapshotTimeout:   viper.GetDuration("DASHBOARD_SNAPSHOT_TIMEOUT"),
			UpcomingWindow:    viper.GetDuration("DASHBOARD_UPCOMING_WINDOW"),
			DiagnosticsTopic:  viper.GetString("DASHBOARD_DIAGNOSTICS_TOPIC"),
			MaxOpenSessions:   viper.GetInt("DASHBOARD_MAX_OPEN_SESSIONS"),
			AssetListPageSize: viper.GetInt("DASHBOARD_ASSET_PAGE_SIZE"),
		},
	}

	if err := config.Dashboard.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Validate rejects dashboard settings that would break the enrichment pass.
func (c *DashboardConfig) Validate() error {
	if c.FetchConcurrency < 1 {
		return fmt.Errorf("DASHBOARD_FETCH_CONCURRENCY must be >= 1, got %d", c.FetchConcurrency)
	}
	if c.RecentLimit < 1 || c.RecentLimit > 5 {
		return fmt.Errorf("DASHBOARD_RECENT_LIMIT must be between 1 and 5, got %d", c.RecentLimit)
	}
	if c.FetchTimeout <= 0 {
		return errors.New("DASHBOARD_FETCH_TIMEOUT must be positive")
	}
	if c.SessionTTL <= 0 {
		return errors.New("DASHBOARD_SESSION_TTL must be positive")
	}
	if c.JanitorInterval <= 0 {
		return errors.New("DASHBOARD_JANITOR_INTERVAL must be positive")
	}
	return nil
}
