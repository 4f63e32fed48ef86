package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App       ApplicationConfig `yaml:"app"`
	Templates TemplatesConfig   `yaml:"templates"`
	Output    OutputConfig      `yaml:"output"`
	Manifest  ManifestConfig    `yaml:"manifest"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Templates.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Manifest.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// TemplatesConfig points at the directory holding one template tree per phase.
type TemplatesConfig struct {
	Root string `yaml:"root"`
}

// Validate validates the templates configuration.
func (c *TemplatesConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
	)
}

// OutputConfig holds the default output root.
type OutputConfig struct {
	Root string `yaml:"root"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
	)
}

// ManifestConfig holds the identity written into MANIFEST.json.
type ManifestConfig struct {
	Name    string `yaml:"name"`
	Profile string `yaml:"profile"`
}

// Validate validates the manifest configuration.
func (c *ManifestConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Profile, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Templates: TemplatesConfig{
			Root: "/app/templates",
		},
		Output: OutputConfig{
			Root: "/out",
		},
		Manifest: ManifestConfig{
			Name:    "startup-terraform-phases",
			Profile: "EVALUATION",
		},
	}
}
