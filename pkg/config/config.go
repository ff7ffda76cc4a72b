package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "trendora"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "TRENDORA_APP_ENV"
	EnvDBDSN  = "TRENDORA_DB_DSN"
	EnvDBHost = "TRENDORA_DB_HOST"
	EnvDBUser = "TRENDORA_DB_USER"
	EnvDBName = "TRENDORA_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App      AppConfig
	DB       DBConfig
	Password PasswordConfig
	Media    MediaConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TRENDORA_APP_ENV" required:"true"`
	LogLevel     string `envconfig:"TRENDORA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TRENDORA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"TRENDORA_DB_DSN"`
	Driver string `envconfig:"TRENDORA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"TRENDORA_DB_HOST"`
	LegacyPort     int    `envconfig:"TRENDORA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"TRENDORA_DB_USER"`
	LegacyPassword string `envconfig:"TRENDORA_DB_PASSWORD"`
	LegacyName     string `envconfig:"TRENDORA_DB_NAME"`
	LegacySSLMode  string `envconfig:"TRENDORA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"TRENDORA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"TRENDORA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"TRENDORA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TRENDORA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"TRENDORA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"TRENDORA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"TRENDORA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"TRENDORA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"TRENDORA_ARGON_KEY_LEN" default:"32"`
}

// MediaConfig bounds product image processing.
type MediaConfig struct {
	MaxImageWidth  int `envconfig:"TRENDORA_MEDIA_MAX_IMAGE_WIDTH" default:"800"`
	MaxImageHeight int `envconfig:"TRENDORA_MEDIA_MAX_IMAGE_HEIGHT" default:"800"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
