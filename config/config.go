package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Elastic  ElasticsearchConfig
	Tracing  TracingConfig
	Jobs     JobsConfig
}

type ServerConfig struct {
	AppEnv      string
	GRPCPort    string
	AutoMigrate bool
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	StockTTL int
}

type KafkaConfig struct {
	Brokers       []string
	CatalogTopic  string
	EventsTopic   string
	GroupID       string
	EnableListen  bool
	EnablePublish bool
}

type ElasticsearchConfig struct {
	Addresses      []string
	Username       string
	Password       string
	MovementsIndex string
}

type TracingConfig struct {
	Endpoint    string
	URLPath     string
	Insecure    bool
	SampleRatio float64
}

type JobsConfig struct {
	ReconcileSchedule string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:      getEnv("APP_ENV", "dev"),
			GRPCPort:    getEnv("GRPC_PORT", ":8084"),
			AutoMigrate: getEnvBool("AUTO_MIGRATE", false),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5433"),
			User:            getEnv("POSTGRES_USER", "omnipos"),
			Password:        getEnv("POSTGRES_PASSWORD", "omnipos"),
			DBName:          getEnv("POSTGRES_DB", "omnipos_inventory"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			StockTTL: getEnvInt("REDIS_STOCK_TTL", 300),
		},
		Kafka: KafkaConfig{
			Brokers:       getEnvSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			CatalogTopic:  getEnv("KAFKA_TOPIC_CATALOG", "catalog.events"),
			EventsTopic:   getEnv("KAFKA_TOPIC_INVENTORY", "inventory.events"),
			GroupID:       getEnv("KAFKA_GROUP_INVENTORY", "inventory"),
			EnableListen:  getEnvBool("KAFKA_ENABLE_LISTENER", true),
			EnablePublish: getEnvBool("KAFKA_ENABLE_PUBLISHER", true),
		},
		Elastic: ElasticsearchConfig{
			Addresses:      getEnvSlice("ELASTICSEARCH_ADDRESSES", []string{"http://localhost:9200"}),
			Username:       getEnv("ELASTICSEARCH_USERNAME", ""),
			Password:       getEnv("ELASTICSEARCH_PASSWORD", ""),
			MovementsIndex: getEnv("ELASTICSEARCH_MOVEMENTS_INDEX", "stock_movements"),
		},
		Tracing: TracingConfig{
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			URLPath:     getEnv("OTEL_EXPORTER_OTLP_TRACES_PATH", ""),
			Insecure:    getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
			SampleRatio: getEnvFloat("OTEL_TRACES_SAMPLE_RATIO", 1),
		},
		Jobs: JobsConfig{
			ReconcileSchedule: getEnv("JOB_RECONCILE_SCHEDULE", "@every 1h"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.Split(value, ",")
	}
	return fallback
}
