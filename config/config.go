package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env               string `env:"ENV"`
	LogLevel          string `env:"LOG_LEVEL"`
	SiteUrl           string `env:"SITE_URL"`
	HTTP              HTTP
	LibraryApi        LibraryApi
	Redis             Redis
	Mail              Mail
	Watcher           Watcher
	BooksPerPage      int           `env:"BOOKS_PER_PAGE" envDefault:"12"`
	RelatedBooksLimit int           `env:"RELATED_BOOKS_LIMIT" envDefault:"5"`
	TopBooksLimit     int           `env:"TOP_BOOKS_LIMIT" envDefault:"10"`
	AnalyticsFetchCap int           `env:"ANALYTICS_FETCH_CAP" envDefault:"1000"`
	SessionExpiration time.Duration `env:"SESSION_EXPIRATION" envDefault:"24h"`
}

type HTTP struct {
	Host            string        `env:"HTTP_HOST"`
	Port            int           `env:"HTTP_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type LibraryApi struct {
	BaseUrl string        `env:"LIBRARY_API_BASE_URL"`
	Timeout time.Duration `env:"LIBRARY_API_TIMEOUT" envDefault:"15s"`
}

type Redis struct {
	Host     string `env:"REDIS_HOST"`
	Port     int    `env:"REDIS_PORT"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"`
}

type Mail struct {
	Host     string `env:"MAIL_HOST"`
	Port     int    `env:"MAIL_PORT"`
	Address  string `env:"MAIL_ADDRESS"`
	Password string `env:"MAIL_PASSWORD"`
}

type Watcher struct {
	Interval time.Duration `env:"WATCHER_INTERVAL" envDefault:"60s"`
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
