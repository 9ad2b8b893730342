// Package config loads pushql settings from defaults, an optional YAML file,
// a .env file and the process environment, in increasing precedence.
package config

import (
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/pushql/internal/logger"
)

const (
	// DebugMode logs every generated statement.
	DebugMode = "debug"
	// TestMode is used by the test suites.
	TestMode = "test"
	// ReleaseMode logs at info level and above.
	ReleaseMode = "release"
)

// Config holds the defaults applied when a request does not carry them in
// its virtual schema properties.
type Config struct {
	Environment string `yaml:"environment"`
	LogLevel    string `yaml:"log_level"`

	// Dialect is used when a request has no SQL_DIALECT property.
	Dialect string `yaml:"dialect"`
	Catalog string `yaml:"catalog"`
	Schema  string `yaml:"schema"`

	QuoteIdentifiers bool `yaml:"quote_identifiers"`

	// Concurrency bounds batch generation. Zero means unbounded.
	Concurrency int `yaml:"concurrency"`

	// AdapterNotes are merged under the notes sent with each request.
	AdapterNotes map[string]string `yaml:"adapter_notes"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Environment:  ReleaseMode,
		LogLevel:     logger.LevelInfo,
		Dialect:      "EXASOL",
		Concurrency:  4,
		AdapterNotes: map[string]string{},
	}
}

// Load builds the configuration. path names an optional YAML file; a missing
// .env file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
		if cfg.AdapterNotes == nil {
			cfg.AdapterNotes = map[string]string{}
		}
	}

	_ = godotenv.Load(".env")
	envErr := cfg.applyEnv()

	if err := multierror.Append(envErr, cfg.Validate()).ErrorOrNil(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// applyEnv overlays the PUSHQL_ variables. A value that does not parse leaves
// its setting unchanged and is reported.
func (c *Config) applyEnv() *multierror.Error {
	var result *multierror.Error

	c.Environment = cast.ToString(getOrReturnDefaultValue("PUSHQL_ENVIRONMENT", c.Environment))
	c.LogLevel = cast.ToString(getOrReturnDefaultValue("PUSHQL_LOG_LEVEL", c.LogLevel))
	c.Dialect = cast.ToString(getOrReturnDefaultValue("PUSHQL_DIALECT", c.Dialect))
	c.Catalog = cast.ToString(getOrReturnDefaultValue("PUSHQL_CATALOG", c.Catalog))
	c.Schema = cast.ToString(getOrReturnDefaultValue("PUSHQL_SCHEMA", c.Schema))

	if quote, err := cast.ToBoolE(getOrReturnDefaultValue("PUSHQL_QUOTE_IDENTIFIERS", c.QuoteIdentifiers)); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "PUSHQL_QUOTE_IDENTIFIERS"))
	} else {
		c.QuoteIdentifiers = quote
	}
	if n, err := cast.ToIntE(getOrReturnDefaultValue("PUSHQL_CONCURRENCY", c.Concurrency)); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "PUSHQL_CONCURRENCY"))
	} else {
		c.Concurrency = n
	}

	// PUSHQL_NOTE_<KEY>=value sets a single adapter note
	for _, kv := range os.Environ() {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, "PUSHQL_NOTE_") {
			continue
		}
		note := strings.TrimPrefix(key, "PUSHQL_NOTE_")
		if note != "" {
			c.AdapterNotes[noteKey(note)] = val
		}
	}
	return result
}

// noteKey turns CATALOG_SEPARATOR into catalogSeparator, the spelling adapter notes use.
func noteKey(env string) string {
	parts := strings.Split(strings.ToLower(env), "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func getOrReturnDefaultValue(key string, defaultValue any) any {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultValue
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.Environment {
	case DebugMode, TestMode, ReleaseMode:
	default:
		result = multierror.Append(result, errors.Errorf("unknown environment %q", c.Environment))
	}
	if !logger.ValidLevel(c.LogLevel) {
		result = multierror.Append(result, errors.Errorf("unknown log level %q", c.LogLevel))
	}
	if strings.TrimSpace(c.Dialect) == "" {
		result = multierror.Append(result, errors.New("dialect is required"))
	}
	if c.Concurrency < 0 {
		result = multierror.Append(result, errors.Errorf("concurrency must not be negative, got %d", c.Concurrency))
	}
	return result.ErrorOrNil()
}

// LoggerLevel maps the environment to a log level unless one is set explicitly.
func (c *Config) LoggerLevel() string {
	if c.LogLevel != "" && c.LogLevel != logger.LevelInfo {
		return c.LogLevel
	}
	switch c.Environment {
	case DebugMode, TestMode:
		return logger.LevelDebug
	}
	return logger.LevelInfo
}
