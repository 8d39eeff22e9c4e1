package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const maxMessMenuDays = 31

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
			// TrustProxy keys clients by X-Forwarded-For / X-Real-IP; leave it
			// off unless a proxy in front rewrites those headers.
			TrustProxy bool `envconfig:"TRUST_PROXY"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry               int    `envconfig:"MAX_RETRY"                 default:"5"`
			RetryWaitTime          int    `envconfig:"RETRY_WAIT_TIME"           default:"2"`
			MaxOpenConns           int    `envconfig:"MAX_OPEN_CONNS"            default:"10"`
			MaxIdleConns           int    `envconfig:"MAX_IDLE_CONNS"            default:"10"`
			ConnMaxLifetimeMinutes int    `envconfig:"CONN_MAX_LIFETIME_MINUTES" default:"30"`
			MigrationTable         string `envconfig:"MIGRATION_TABLE"           default:"schema_migrations"`
			AutoMigrate            bool   `envconfig:"AUTO_MIGRATE"`
			Prefix                 string `envconfig:"PREFIX"`
			Read                   struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`

	Hostel struct {
		MessMenuDays        int    `envconfig:"MESS_MENU_DAYS"        default:"7"`
		ExportDir           string `envconfig:"EXPORT_DIR"            default:"exports"`
		DashboardTTLSeconds int    `envconfig:"DASHBOARD_TTL_SECONDS" default:"30"`
		ArchiveSchedule     string `envconfig:"ARCHIVE_SCHEDULE"      default:"0 2 * * *"`
		AuditSchedule       string `envconfig:"AUDIT_SCHEDULE"        default:"30 * * * *"`
		EnableJobs          bool   `envconfig:"ENABLE_JOBS"           default:"true"`
	} `envconfig:"HOSTEL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

// Validate reports settings the server cannot run without. Binaries call it
// after loading; Get does not, so packages that only need a timezone or a
// cache TTL still load in tests.
func (c *Config) Validate() error {
	var problems []error

	if c.JWT.AccessSecret == "" || c.JWT.RefreshSecret == "" {
		problems = append(problems, errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET are required"))
	}

	if c.JWT.AccessSecret != "" && c.JWT.AccessSecret == c.JWT.RefreshSecret {
		problems = append(problems, errors.New("access and refresh tokens must be signed with different secrets"))
	}

	if c.App.RateLimiter.Enable && (c.App.RateLimiter.MaxRequests <= 0 || c.App.RateLimiter.WindowSeconds <= 0) {
		problems = append(problems, errors.New("rate limiter needs a positive request count and window"))
	}

	if c.Hostel.MessMenuDays < 1 || c.Hostel.MessMenuDays > maxMessMenuDays {
		problems = append(problems, fmt.Errorf("HOSTEL_MESS_MENU_DAYS must be between 1 and %d", maxMessMenuDays))
	}

	return errors.Join(problems...)
}

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		if err = envconfig.Process("", &conf); err != nil {
			return
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
