package pawsgo

// Config is the application configuration, loaded from the yaml config file
// in the config dir and rewritten from this struct on startup.
type Config struct {
	ConfigDir      string  `mapstructure:"config_dir"`       // Current config dir
	DataFile       string  `mapstructure:"data_file"`        // SQLite file name inside the config dir
	PricePerMinute float64 `mapstructure:"price_per_minute"` // Walk price per minute
	Currency       string  `mapstructure:"currency"`         // Display currency code
	SeedWalkers    bool    `mapstructure:"seed_walkers"`     // Include the demo walkers in listings
	LogLevel       string  `mapstructure:"log_level"`
	LogFormat      string  `mapstructure:"log_format"`
}

// Pricing defaults used when no configuration is loaded.
const (
	defaultPricePerMinute = 0.8
	defaultCurrency       = "MXN"
)

// pricePerMinute returns the configured rate, falling back to the default for
// a missing or zeroed config.
func (app *App) pricePerMinute() float64 {
	if app.Config != nil && app.Config.PricePerMinute > 0 {
		return app.Config.PricePerMinute
	}
	return defaultPricePerMinute
}

// Currency returns the configured display currency.
func (app *App) Currency() string {
	if app.Config != nil && app.Config.Currency != "" {
		return app.Config.Currency
	}
	return defaultCurrency
}

// seedWalkersEnabled reports whether the demo walkers should appear in
// listings. They do unless the config explicitly disables them.
func (app *App) seedWalkersEnabled() bool {
	return app.Config == nil || app.Config.SeedWalkers
}
