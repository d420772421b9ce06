package boostweb

// Default configuration values.
const (
	DefaultSiteTitle = "boostweb"
	DefaultPageSize  = 10
)

// Config holds site configuration.
type Config struct {
	// BasePath is the URL prefix where the site is mounted.
	// For example, if mounted at "/demo/", set BasePath to "/demo".
	// All navigation links will be prefixed with this path.
	// Defaults to empty string (root mount).
	BasePath string

	// SiteTitle is used in the document title and the page header.
	// Defaults to "boostweb".
	SiteTitle string

	// PageSize for the paginated entry list.
	// Defaults to 10.
	PageSize int

	// ReadOnly disables form submissions. Submitted forms render a
	// notice instead of storing an entry.
	ReadOnly bool

	// Logger for structured logging.
	// If nil, logging is disabled.
	Logger Logger
}

// Logger interface for structured logging. The args are alternating
// key-value pairs, compatible with log/slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		SiteTitle: DefaultSiteTitle,
		PageSize:  DefaultPageSize,
	}
}

// applyDefaults fills in default values for zero-valued fields.
func (c *Config) applyDefaults() {
	if c.SiteTitle == "" {
		c.SiteTitle = DefaultSiteTitle
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
}

// validate checks the configuration for errors.
func (c *Config) validate() error {
	if c.PageSize < 1 {
		return ErrInvalidConfig
	}
	if c.BasePath != "" && c.BasePath[len(c.BasePath)-1] == '/' {
		return ErrInvalidConfig
	}
	return nil
}
