package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	SessionStorageMemory = "memory"
	SessionStorageRedis  = "redis"
)

type Config struct {
	Env               string        `env:"ENV" envDefault:"local"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	Storage           string        `env:"STORAGE" envDefault:"postgres"`
	SessionStorage    string        `env:"SESSION_STORAGE" envDefault:"memory"`
	SessionExpiration time.Duration `env:"SESSION_EXPIRATION" envDefault:"0s"`
	BooksPerPage      int           `env:"BOOKS_PER_PAGE" envDefault:"10"`
	HandlerTimeout    time.Duration `env:"HANDLER_TIMEOUT" envDefault:"15s"`
	Postgres          Postgres
	Telegram          Telegram
	Litres            Litres
	Redis             Redis
	RateLimit         RateLimit
}

type Postgres struct {
	Host            string `env:"PG_HOST" envDefault:"localhost"`
	Port            int    `env:"PG_PORT" envDefault:"5432"`
	DbName          string `env:"PG_DB_NAME" envDefault:"book_tracker"`
	Password        string `env:"PG_PASSWORD" envDefault:""`
	User            string `env:"PG_USER" envDefault:"postgres"`
	SSLMode         string `env:"PG_SSL_MODE" envDefault:"disable"`
	MaxOpenConns    int    `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	ConnMaxLifetime int    `env:"PG_CONN_MAX_LIFETIME" envDefault:"300"`
	MaxIdleConns    int    `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxIdleTime int    `env:"PG_CONN_MAX_IDLE_TIME" envDefault:"60"`
}

type Telegram struct {
	Token      string `env:"TELEGRAM_TOKEN"`
	UpdTimeout int    `env:"TELEGRAM_UPD_TIMEOUT" envDefault:"10"`
}

type Litres struct {
	BaseUrl        string        `env:"LITRES_BASE_URL" envDefault:"https://www.litres.ru"`
	SearchPage     string        `env:"LITRES_SEARCH_PAGE" envDefault:"/pages/rmd_search/"`
	MaxResults     int           `env:"LITRES_MAX_RESULTS" envDefault:"10"`
	RequestTimeout time.Duration `env:"LITRES_REQUEST_TIMEOUT" envDefault:"10s"`
	CacheTTL       time.Duration `env:"LITRES_CACHE_TTL" envDefault:"1h"`
	ProxyUrl       string        `env:"PROXY_URL" envDefault:""`
}

type Redis struct {
	Host     string `env:"REDIS_HOST" envDefault:""`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Enabled reports whether a redis host is configured.
func (r Redis) Enabled() bool {
	return r.Host != ""
}

type RateLimit struct {
	PerSecond float64 `env:"RATE_LIMIT_PER_SECOND" envDefault:"2"`
	Burst     int     `env:"RATE_LIMIT_BURST" envDefault:"5"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}
