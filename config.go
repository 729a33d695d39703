package courier

import (
	"os"
	"strconv"

	"dario.cat/mergo"
)

// Config holds the effective mail settings: sender address, transport
// selection and per-transport parameters, CSS-inlining options, and global
// template variables. Applications supply a partial Config; GetConfig
// merges it onto the compiled-in defaults.
type Config struct {
	// From is the default sender address used when a message carries none.
	From string `yaml:"from"`

	// Transport names the entry of Transports used for delivery.
	Transport string `yaml:"transport"`

	// Transports maps transport names to their settings.
	Transports map[string]TransportConfig `yaml:"transports"`

	// WebResources configures CSS inlining.
	WebResources WebResources `yaml:"webResources"`

	// GlobalVariables are exposed to every template render; request data
	// takes precedence on key collisions.
	GlobalVariables map[string]any `yaml:"globalVariables"`
}

// TransportConfig is the settings sub-object a transport factory is
// constructed from. Transports read only the fields they understand.
type TransportConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	APIKey     string `yaml:"apiKey"`
	SenderName string `yaml:"senderName"`
}

// WebResources configures how stylesheets are pulled into the rendered HTML.
type WebResources struct {
	// RelativeTo is the base directory for resolving relative
	// <link rel="stylesheet"> references found in the HTML.
	RelativeTo string `yaml:"relativeTo"`

	// KeepImportant preserves !important declarations when inlining.
	KeepImportant bool `yaml:"keepImportant"`

	// CSSToAttributes converts presentational CSS properties to the
	// corresponding HTML attributes where email clients expect them.
	CSSToAttributes bool `yaml:"cssToAttributes"`

	// RemoveClasses strips class attributes after their rules are inlined.
	RemoveClasses bool `yaml:"removeClasses"`
}

// defaultConfig builds a fresh default configuration. A new value is
// allocated on every call so the merge in GetConfig can never reach shared
// state.
func defaultConfig() Config {
	return Config{
		From:      "no-reply@localhost",
		Transport: "stub",
		Transports: map[string]TransportConfig{
			"stub": {},
			"smtp": {
				Host:     envOr("SMTP_HOST", "localhost"),
				Port:     envIntOr("SMTP_PORT", 587),
				Username: os.Getenv("SMTP_USERNAME"),
				Password: os.Getenv("SMTP_PASSWORD"),
			},
		},
		WebResources: WebResources{
			RelativeTo:      "assets",
			KeepImportant:   true,
			CSSToAttributes: true,
		},
		GlobalVariables: map[string]any{},
	}
}

// GetConfig merges the application's partial mail configuration onto the
// compiled-in defaults and returns the effective settings. It always
// succeeds: a missing override simply yields the defaults. The result is
// recomputed on every call, and the merge allocates a fresh structure, so
// neither the defaults nor the application's override are ever mutated.
func GetConfig(app App) Config {
	cfg := defaultConfig()
	if app == nil {
		return cfg
	}
	if override := app.MailConfig(); override != nil {
		// mergo's own deep-merge rule governs nested objects and slices.
		// Merge into the fresh defaults cannot fail for two values of the
		// same struct type.
		_ = mergo.Merge(&cfg, *override, mergo.WithOverride)
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
