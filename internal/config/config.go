package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// MongoDB holds the media store used to resolve attachment references
	MongoDB MongoDBConfig `json:"mongodb"`

	Auth AuthConfig `json:"auth"`

	// Broker sizes the per-subscriber queues of the event hub
	Broker BrokerConfig `json:"broker"`

	Chat ChatConfig `json:"chat"`

	Retry RetryConfig `json:"retry"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host         string `json:"host"`
	GRPCPort     string `json:"grpc_port"`
	HTTPPort     string `json:"http_port"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	Environment  string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver       string `json:"driver"` // mysql, memory
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

type MongoDBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
	Bucket   string `json:"bucket"`
	Enabled  bool   `json:"enabled"`
}

type AuthConfig struct {
	JWTSecret string `json:"-"`
	Issuer    string `json:"issuer"`
	TokenTTL  int    `json:"token_ttl"` // hours
}

type BrokerConfig struct {
	SubscriberQueueSize int `json:"subscriber_queue_size"`
}

// ChatConfig holds the validation knobs of the messaging core
type ChatConfig struct {
	MaxParticipants  int `json:"max_participants"`
	MaxMessageLength int `json:"max_message_length"`
	DefaultPageSize  int `json:"default_page_size"`
	MaxPageSize      int `json:"max_page_size"`
}

// RetryConfig bounds the retry applied to transient store failures
type RetryConfig struct {
	MaxRetries  int `json:"max_retries"`
	BaseDelayMs int `json:"base_delay_ms"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `json:"level"`       // debug, info, warn, error
	OutputPath string `json:"output_path"` // stdout, stderr, or file path
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			GRPCPort:     getEnv("CHAT_SERVICE_PORT", "7003"),
			HTTPPort:     getEnv("CHAT_HTTP_PORT", "8083"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			Environment:  getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Driver:       getEnv("DB_DRIVER", "mysql"),
			Host:         getEnv("MYSQL_HOST", "localhost"),
			Port:         getEnv("MYSQL_PORT", "3306"),
			Username:     getEnv("MYSQL_USERNAME", "gigmarket"),
			Password:     getEnv("MYSQL_PASSWORD", "gigmarket123"),
			DatabaseName: getEnv("MYSQL_DATABASE", "gigmarket"),
			MaxOpenConns: getEnvAsInt("MYSQL_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("MYSQL_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoDBConfig{
			Host:     getEnv("MONGO_HOST", "localhost"),
			Port:     getEnv("MONGO_PORT", "27017"),
			Username: getEnv("MONGO_USERNAME", ""),
			Password: getEnv("MONGO_PASSWORD", ""),
			Database: getEnv("MONGO_DATABASE", "gigmarket"),
			Bucket:   getEnv("MONGO_MEDIA_BUCKET", "media_files"),
			Enabled:  getEnvAsBool("MONGO_ENABLED", false),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "change-me"),
			Issuer:    getEnv("JWT_ISSUER", "gigmarket"),
			TokenTTL:  getEnvAsInt("JWT_TTL_HOURS", 24),
		},
		Broker: BrokerConfig{
			SubscriberQueueSize: getEnvAsInt("BROKER_QUEUE_SIZE", 64),
		},
		Chat: ChatConfig{
			MaxParticipants:  getEnvAsInt("CHAT_MAX_PARTICIPANTS", 50),
			MaxMessageLength: getEnvAsInt("CHAT_MAX_MESSAGE_LENGTH", 4000),
			DefaultPageSize:  getEnvAsInt("CHAT_DEFAULT_PAGE_SIZE", 20),
			MaxPageSize:      getEnvAsInt("CHAT_MAX_PAGE_SIZE", 100),
		},
		Retry: RetryConfig{
			MaxRetries:  getEnvAsInt("STORE_MAX_RETRIES", 3),
			BaseDelayMs: getEnvAsInt("STORE_RETRY_DELAY_MS", 50),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			OutputPath: getEnv("LOG_OUTPUT", "stdout"),
		},
	}
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) GetMongoURI() string {
	m := cfg.MongoDB
	if m.Username == "" || m.Password == "" {
		return fmt.Sprintf("mongodb://%s:%s/%s", m.Host, m.Port, m.Database)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
		m.Username, m.Password, m.Host, m.Port, m.Database)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(getEnv(key, "")) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultValue
}
