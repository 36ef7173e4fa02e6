package portfolio

import (
	"github.com/goliatone/go-portfolio/internal/gallery"
)

// GalleryConfig re-exports the gallery configuration for consumers.
type GalleryConfig = gallery.Config

// Features toggles optional module behaviour.
type Features struct {
	// Shortcode enables [portfolio] expansion in processed content.
	Shortcode bool
	// FilterScript allows galleries to request the client-side feature
	// filter. When disabled the filter list still renders but the script
	// capability is never declared.
	FilterScript bool
}

// LoggingConfig configures the default go-logger provider used when the host
// does not supply its own.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// RoutesConfig names the urlkit group and route used to build item permalinks
// for the page link mode.
type RoutesConfig struct {
	Group string
	Route string
}

// Config is the module configuration.
type Config struct {
	Gallery  GalleryConfig
	Features Features
	Logging  LoggingConfig
	Routes   RoutesConfig
}

// DefaultConfig returns the stock configuration. The gallery defaults mirror
// DefaultGalleryConfig; every feature is enabled.
func DefaultConfig() Config {
	return Config{
		Gallery: gallery.DefaultConfig(),
		Features: Features{
			Shortcode:    true,
			FilterScript: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Routes: RoutesConfig{
			Group: "frontend",
			Route: "portfolio",
		},
	}
}

// DefaultGalleryConfig returns the stock gallery configuration.
func DefaultGalleryConfig() GalleryConfig {
	return gallery.DefaultConfig()
}
