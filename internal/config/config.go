package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

// Rakuten is the configuration for the upstream recipe API.
type Rakuten struct {
	// AppID is the Rakuten application ID. When empty, recipe searches
	// serve the bundled sample data instead of calling the API.
	AppID string `koanf:"appid"`

	// BaseURL overrides the API endpoint, mainly for local testing.
	BaseURL string `koanf:"baseurl"`
}

// Categories is the configuration for the category table source.
type Categories struct {
	// Path is a local path to the category TSV file.
	Path string `koanf:"path"`

	// URL is a static URL serving the category TSV. Used instead of Path
	// when set.
	URL string `koanf:"url"`
}

type Config struct {
	config.Common

	// Rakuten is the configuration for the upstream recipe API.
	Rakuten Rakuten `koanf:"rakuten"`

	// Categories is the configuration for the category table source.
	Categories Categories `koanf:"categories"`
}
