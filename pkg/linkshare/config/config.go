// Package config maps command-line flags and LINKSHARE_* environment
// variables onto the server configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/events"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/linkpreview"
	"github.com/urfave/cli/v2"
)

// Store backends
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Flag names
const (
	FlagPort            = "port"
	FlagStore           = "store"
	FlagDBPath          = "db-path"
	FlagDemoData        = "demo-data"
	FlagPreviewTimeout  = "preview-timeout"
	FlagRedisAddr       = "redis-addr"
	FlagRedisPassword   = "redis-password"
	FlagRedisDB         = "redis-db"
	FlagPreviewCacheTTL = "preview-cache-ttl"
	FlagKafkaBrokers    = "kafka-brokers"
	FlagKafkaTopic      = "kafka-topic"
	FlagWebDist         = "web-dist"
	FlagLogLevel        = "log-level"
	FlagDev             = "dev"
)

// Config holds everything the server needs at startup
type Config struct {
	Port            string
	Store           string
	DBPath          string
	DemoData        bool
	PreviewTimeout  time.Duration
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	PreviewCacheTTL time.Duration
	KafkaBrokers    []string
	KafkaTopic      string
	WebDist         string
	LogLevel        string
	Dev             bool
}

var errInvalidStore = errors.New("invalid store backend")

func env(name string) []string {
	return []string{"LINKSHARE_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))}
}

// Flags returns the server flags. Each flag falls back to the matching
// LINKSHARE_* variable, and --port also honours PORT.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: FlagPort, Value: "5000", Usage: "HTTP listen port", EnvVars: append(env(FlagPort), "PORT")},
		&cli.StringFlag{Name: FlagStore, Value: StoreMemory, Usage: "group store backend: memory or sqlite", EnvVars: env(FlagStore)},
		&cli.StringFlag{Name: FlagDBPath, Value: "linkshare.db", Usage: "SQLite database path when --store=sqlite", EnvVars: env(FlagDBPath)},
		&cli.BoolFlag{Name: FlagDemoData, Value: true, Usage: "seed demonstration groups at startup", EnvVars: env(FlagDemoData)},
		&cli.DurationFlag{Name: FlagPreviewTimeout, Value: linkpreview.DefaultTimeout, Usage: "link preview fetch timeout", EnvVars: env(FlagPreviewTimeout)},
		&cli.StringFlag{Name: FlagRedisAddr, Usage: "Redis address for the link preview cache; empty disables caching", EnvVars: env(FlagRedisAddr)},
		&cli.StringFlag{Name: FlagRedisPassword, Usage: "Redis password", EnvVars: env(FlagRedisPassword)},
		&cli.IntFlag{Name: FlagRedisDB, Usage: "Redis database number", EnvVars: env(FlagRedisDB)},
		&cli.DurationFlag{Name: FlagPreviewCacheTTL, Value: linkpreview.DefaultCacheTTL, Usage: "how long fetched previews stay cached", EnvVars: env(FlagPreviewCacheTTL)},
		&cli.StringSliceFlag{Name: FlagKafkaBrokers, Usage: "Kafka brokers for group events; empty disables publishing", EnvVars: env(FlagKafkaBrokers)},
		&cli.StringFlag{Name: FlagKafkaTopic, Value: events.DefaultTopic, Usage: "Kafka topic for group events", EnvVars: env(FlagKafkaTopic)},
		&cli.StringFlag{Name: FlagWebDist, Value: "./web/dist", Usage: "directory holding the built frontend", EnvVars: env(FlagWebDist)},
		&cli.StringFlag{Name: FlagLogLevel, Value: "info", Usage: "log level: debug, info, warn, error", EnvVars: env(FlagLogLevel)},
		&cli.BoolFlag{Name: FlagDev, Usage: "development mode: console logs and gin debug output", EnvVars: env(FlagDev)},
	}
}

// FromContext reads a Config out of parsed flags and validates it
func FromContext(c *cli.Context) (Config, error) {
	cfg := Config{
		Port:            c.String(FlagPort),
		Store:           strings.ToLower(c.String(FlagStore)),
		DBPath:          c.String(FlagDBPath),
		DemoData:        c.Bool(FlagDemoData),
		PreviewTimeout:  c.Duration(FlagPreviewTimeout),
		RedisAddr:       c.String(FlagRedisAddr),
		RedisPassword:   c.String(FlagRedisPassword),
		RedisDB:         c.Int(FlagRedisDB),
		PreviewCacheTTL: c.Duration(FlagPreviewCacheTTL),
		KafkaTopic:      c.String(FlagKafkaTopic),
		WebDist:         c.String(FlagWebDist),
		LogLevel:        c.String(FlagLogLevel),
		Dev:             c.Bool(FlagDev),
	}
	for _, b := range c.StringSlice(FlagKafkaBrokers) {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects combinations the server cannot start with
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory:
	case StoreSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("--%s is required with --%s=%s", FlagDBPath, FlagStore, StoreSQLite)
		}
	default:
		return fmt.Errorf("%w %q: want %s or %s", errInvalidStore, c.Store, StoreMemory, StoreSQLite)
	}
	if c.Port == "" {
		return fmt.Errorf("--%s must not be empty", FlagPort)
	}
	if c.PreviewTimeout <= 0 {
		return fmt.Errorf("--%s must be positive", FlagPreviewTimeout)
	}
	return nil
}

// Addr is the listen address
func (c Config) Addr() string {
	return ":" + c.Port
}

// LoadDotEnv loads variables from the given files into the environment
// without overriding ones already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}
