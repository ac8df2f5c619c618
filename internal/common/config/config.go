// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Generation    GenerationConfig   `mapstructure:"generation"`
	GenAI         GenAIConfig        `mapstructure:"genai"`
	Cache         CacheConfig        `mapstructure:"cache"`
	Database      DatabaseConfig     `mapstructure:"database"`
	Sinks         SinksConfig        `mapstructure:"sinks"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
	Metrics       MetricsConfig      `mapstructure:"metrics"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// GenerationConfig holds the knobs of one pipeline run. TemplateRatio is an
// explicit value threaded through every component; it is never mutated after
// Load returns.
type GenerationConfig struct {
	Customers     int     `mapstructure:"customers"`
	TemplateRatio float64 `mapstructure:"template_ratio"`
	TemplatesOnly bool    `mapstructure:"templates_only"`
	Parallel      bool    `mapstructure:"parallel"`
	Seed          int64   `mapstructure:"seed"` // 0 = derive from wall clock
	MinTextLength int     `mapstructure:"min_text_length"`
}

// GenAIConfig holds settings for the generative text capability.
type GenAIConfig struct {
	Endpoint   string `mapstructure:"endpoint"` // OpenAI-compatible base URL
	Model      string `mapstructure:"model"`
	APIKey     string `mapstructure:"api_key"`
	Timeout    int    `mapstructure:"timeout"` // milliseconds
	MaxRetries int    `mapstructure:"max_retries"`
}

// CacheConfig holds settings for the optional generated-text cache.
type CacheConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	TTLSeconds int  `mapstructure:"ttl_seconds"`
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	URL       string   `mapstructure:"url"` // Single URL for backwards compatibility
}

// GetURL returns the first address or the URL field
func (e ElasticsearchConfig) GetURL() string {
	if e.URL != "" {
		return e.URL
	}
	if len(e.Addresses) > 0 {
		return e.Addresses[0]
	}
	return ""
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// --- Sink Configuration ---

// SinksConfig holds settings for every persistence target. The file sink is
// the mandatory one; the rest are opt-in.
type SinksConfig struct {
	Output    OutputConfig        `mapstructure:"output"`
	Kafka     KafkaSinkConfig     `mapstructure:"kafka"`
	Warehouse WarehouseSinkConfig `mapstructure:"warehouse"`
	Search    SearchSinkConfig    `mapstructure:"search"`
}

// OutputConfig names the four dataset files. Each run fully overwrites them.
type OutputConfig struct {
	Dir              string `mapstructure:"dir"`
	CustomersFile    string `mapstructure:"customers_file"`
	InteractionsFile string `mapstructure:"interactions_file"`
	ReviewsFile      string `mapstructure:"reviews_file"`
	TicketsFile      string `mapstructure:"tickets_file"`
	ValidateSchema   bool   `mapstructure:"validate_schema"`
}

type KafkaSinkConfig struct {
	Enabled     bool     `mapstructure:"enabled"`
	Brokers     []string `mapstructure:"brokers"`
	TopicPrefix string   `mapstructure:"topic_prefix"`
}

type WarehouseSinkConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type SearchSinkConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	IndexPrefix string `mapstructure:"index_prefix"`
}

// NotificationConfig holds settings for the run-completion notifier.
type NotificationConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
		ToEmail   string `mapstructure:"to_email"`
	} `mapstructure:"email"`
	SNS struct {
		Enabled  bool   `mapstructure:"enabled"`
		TopicARN string `mapstructure:"topic_arn"`
	} `mapstructure:"sns"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// MetricsConfig holds settings for the optional Prometheus listener. An
// empty Listen address disables the listener; counters are still recorded.
type MetricsConfig struct {
	Listen string `mapstructure:"listen"`
}
