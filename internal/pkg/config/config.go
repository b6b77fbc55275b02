package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds everything the composition roots need. Values come from an
// optional YAML file, with environment variables taking precedence.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	MySQL     MySQLConfig     `yaml:"mysql"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Zookeeper ZookeeperConfig `yaml:"zookeeper"`
	Jaeger    JaegerConfig    `yaml:"jaeger"`
	Auth      AuthConfig      `yaml:"auth"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// DSN renders the go-sql-driver connection string.
func (c MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers           []string `yaml:"brokers"`
	NotificationTopic string   `yaml:"notification_topic"`
}

// ZookeeperConfig is optional; with no servers configured the order service
// falls back to a no-op transition lock.
type ZookeeperConfig struct {
	Servers []string `yaml:"servers"`
}

type JaegerConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type AuthConfig struct {
	JWTSecret      string `yaml:"jwt_secret"`
	TokenTTLMinute int    `yaml:"token_ttl_minutes"`
}

// Load reads the YAML file at path (skipped when absent) and then applies
// environment overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Log:    LogConfig{Level: "info"},
		MySQL: MySQLConfig{
			Host:     "localhost",
			Port:     3306,
			User:     "root",
			Database: "frankies",
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Kafka: KafkaConfig{
			Brokers:           []string{"localhost:9092"},
			NotificationTopic: "notifications",
		},
		Jaeger: JaegerConfig{Endpoint: "http://localhost:14268/api/traces"},
		Auth:   AuthConfig{JWTSecret: "dev-only-secret", TokenTTLMinute: 60},
	}
}

func applyEnv(cfg *Config) {
	if v := getEnv("MYSQL_HOST", ""); v != "" {
		cfg.MySQL.Host = v
	}
	if v := getEnv("MYSQL_USER", ""); v != "" {
		cfg.MySQL.User = v
	}
	if v := getEnv("MYSQL_PASSWORD", ""); v != "" {
		cfg.MySQL.Password = v
	}
	if v := getEnv("MYSQL_DATABASE", ""); v != "" {
		cfg.MySQL.Database = v
	}
	if v := getEnv("REDIS_ADDR", ""); v != "" {
		cfg.Redis.Addr = v
	}
	if v := getEnv("KAFKA_BROKERS", ""); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := getEnv("ZOOKEEPER_SERVERS", ""); v != "" {
		cfg.Zookeeper.Servers = strings.Split(v, ",")
	}
	if v := getEnv("JAEGER_ENDPOINT", ""); v != "" {
		cfg.Jaeger.Endpoint = v
	}
	if v := getEnv("JWT_SECRET", ""); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := getEnv("LOG_LEVEL", ""); v != "" {
		cfg.Log.Level = v
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
