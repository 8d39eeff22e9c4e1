package postgres

//nolint:revive
import (
	"fmt"
	"hostel/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Connection splits traffic: reports and listings go to Read, every
// transaction goes to Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	role     string
	username string
	password string
	host     string
	port     string
	name     string
	timezone string
	sslMode  string
}

func (e endpoint) dsn() string {
	query := url.Values{}
	query.Set("sslmode", e.sslMode)

	if e.timezone != "" {
		query.Set("timezone", e.timezone)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.username, e.password),
		Host:     net.JoinHostPort(e.host, e.port),
		Path:     "/" + e.name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read: connect(cfg, endpoint{
			role:     "read",
			username: pg.Read.Username,
			password: pg.Read.Password,
			host:     pg.Read.Host,
			port:     pg.Read.Port,
			name:     getDBName(*cfg, pg.Read.Name),
			timezone: pg.Read.Timezone,
			sslMode:  pg.Read.SSLMode,
		}),
		Write: connect(cfg, endpoint{
			role:     "write",
			username: pg.Write.Username,
			password: pg.Write.Password,
			host:     pg.Write.Host,
			port:     pg.Write.Port,
			name:     getDBName(*cfg, pg.Write.Name),
			timezone: pg.Write.Timezone,
			sslMode:  pg.Write.SSLMode,
		}),
	}
}

func getDBName(cfg config.Config, baseName string) string {
	return cfg.DB.Postgres.Prefix + baseName
}

// connect retries until the database answers. Running out of attempts is
// fatal since no operation can be served without postgres.
func connect(cfg *config.Config, target endpoint) *sqlx.DB {
	pg := cfg.DB.Postgres
	attempts := max(pg.MaxRetry, 1)

	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		var db *sqlx.DB

		db, err = sqlx.Connect("postgres", target.dsn())
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifetimeMinutes) * time.Minute)

			log.Info().
				Str("name", target.role).
				Str("host", target.host).
				Str("dbName", target.name).
				Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("name", target.role).
			Str("host", target.host).
			Int("attempt", attempt).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	log.Fatal().Err(err).Str("name", target.role).Msg(fmt.Sprintf("giving up on database after %d attempts", attempts))

	return nil
}
