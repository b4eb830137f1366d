package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	CacheDriverRedis = "redis"
	CacheDriverLRU   = "lru"
	CacheDriverNone  = "none"
)

type Config struct {
	Env       string
	Database  Database
	Storage   Storage
	Redis     Redis
	Cache     Cache
	OpsServer OpsServer
	Posts     Posts
}

type Database struct {
	Username    string
	Password    string
	Host        string
	Port        string
	DbName      string
	SSLMode     string
	AutoMigrate bool
}

type Storage struct {
	Driver string
}

type Redis struct {
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int
}

type Cache struct {
	Driver string
	TTL    time.Duration
	Size   int
}

type OpsServer struct {
	Address string
	Port    int
}

type Posts struct {
	AtomicWrites    bool
	DefaultPageSize int
	MaxPageSize     int
}

// DSN returns the pgx connection string for the configured database.
func (d Database) DSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.Username, d.Password, d.Host, d.Port, d.DbName, d.SSLMode)
}

func MustLoad() *Config {
	cfg, err := Load("./config")
	if err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}
	return cfg
}

// Load reads config.yaml from dir. Every key can be overridden by an
// environment variable with the POSTADMIN_ prefix, e.g. POSTADMIN_DATABASE_HOST.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("postadmin")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "dev")

	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "post-db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "blogadmin")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("storage.driver", StorageDriverPostgres)

	v.SetDefault("redis.address", "redis")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("cache.driver", CacheDriverRedis)
	v.SetDefault("cache.ttl", 30*time.Minute)
	v.SetDefault("cache.size", 1024)

	v.SetDefault("ops_server.address", "0.0.0.0")
	v.SetDefault("ops_server.port", 9103)

	v.SetDefault("posts.atomic_writes", false)
	v.SetDefault("posts.default_page_size", 10)
	v.SetDefault("posts.max_page_size", 100)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	config := &Config{
		Env: v.GetString("env"),
		Database: Database{
			Username:    v.GetString("database.username"),
			Password:    v.GetString("database.password"),
			Host:        v.GetString("database.host"),
			Port:        v.GetString("database.port"),
			DbName:      v.GetString("database.db_name"),
			SSLMode:     v.GetString("database.ssl_mode"),
			AutoMigrate: v.GetBool("database.auto_migrate"),
		},
		Storage: Storage{
			Driver: v.GetString("storage.driver"),
		},
		Redis: Redis{
			Address:  v.GetString("redis.address"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			PoolSize: v.GetInt("redis.pool_size"),
		},
		Cache: Cache{
			Driver: v.GetString("cache.driver"),
			TTL:    v.GetDuration("cache.ttl"),
			Size:   v.GetInt("cache.size"),
		},
		OpsServer: OpsServer{
			Address: v.GetString("ops_server.address"),
			Port:    v.GetInt("ops_server.port"),
		},
		Posts: Posts{
			AtomicWrites:    v.GetBool("posts.atomic_writes"),
			DefaultPageSize: v.GetInt("posts.default_page_size"),
			MaxPageSize:     v.GetInt("posts.max_page_size"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	switch c.Cache.Driver {
	case CacheDriverRedis, CacheDriverLRU, CacheDriverNone:
	default:
		return fmt.Errorf("unknown cache driver %q", c.Cache.Driver)
	}
	if c.Posts.DefaultPageSize <= 0 || c.Posts.MaxPageSize < c.Posts.DefaultPageSize {
		return fmt.Errorf("invalid page sizes: default %d, max %d", c.Posts.DefaultPageSize, c.Posts.MaxPageSize)
	}
	return nil
}
