package courier

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// App is the narrow capability set the composer needs from its host
// application: a mail-configuration lookup, a logger, and the template
// roots to probe. Implement it on your own application object, or use
// AppContext when there is nothing to hang it on.
type App interface {
	// MailConfig returns the application's partial mail configuration,
	// or nil when the application supplies none. Missing fields are
	// filled in from the compiled-in defaults.
	MailConfig() *Config

	// Logger returns the application logger. May return nil; logging is
	// then disabled.
	Logger() *slog.Logger

	// TemplatesDir returns the application-level template root, or ""
	// when the application has none.
	TemplatesDir() string

	// FrameworkDir returns the host-framework template root, or "" when
	// there is no encompassing framework.
	FrameworkDir() string
}

// AppContext is a ready-made App implementation backed by plain values.
type AppContext struct {
	Mail      *Config
	Log       *slog.Logger
	Templates string
	Framework string
}

func (a *AppContext) MailConfig() *Config  { return a.Mail }
func (a *AppContext) Logger() *slog.Logger { return a.Log }
func (a *AppContext) TemplatesDir() string { return a.Templates }
func (a *AppContext) FrameworkDir() string { return a.Framework }

// NopLogger returns a logger that discards all output.
// Used as the default when the application supplies no logger.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// appLogger returns the application's logger, or a no-op logger when the
// application has none.
func appLogger(app App) *slog.Logger {
	if app != nil {
		if l := app.Logger(); l != nil {
			return l
		}
	}
	return NopLogger()
}

// LoadConfigFile reads a partial mail configuration from a YAML file.
// The result is meant to be returned from App.MailConfig; absent fields
// fall back to defaults during the GetConfig merge.
func LoadConfigFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mail config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse mail config %s: %w", path, err)
	}
	return &cfg, nil
}
