package pawsgo

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// WithOptions applies a series of configuration functions to the app instance.
// Each option function can modify the app configuration and return an error if it fails.
//
// Parameters:
//   - options: Variadic list of configuration functions
//
// Returns:
//   - error: First error encountered from any option function
func (app *App) WithOptions(options ...func(*App) error) error {
	for _, option := range options {
		err := option(app)
		if err != nil {
			return fmt.Errorf("applying option on pawsgo : %w", err)
		}
	}
	return nil
}

// WithConfigDir configures the app to use the specified configuration directory.
// It creates the directory if it doesn't exist and initializes the configuration file using Viper.
//
// Parameters:
//   - appConfigDir: Path to the configuration directory
//
// Returns:
//   - func(*App) error: Configuration function that sets up the config directory
func WithConfigDir(appConfigDir string) func(*App) error {
	return func(app *App) error {
		_, err := os.ReadDir(appConfigDir)
		if err != nil {
			if os.IsNotExist(err) {
				log.Println("[*] creating config dir")
				err := os.MkdirAll(appConfigDir, 0700)
				if err != nil {
					return fmt.Errorf("creating config dir %s: %w", appConfigDir, err)
				}
			} else {
				return fmt.Errorf("checking if directory exists %s: %w", appConfigDir, err)
			}
		}
		// At this point, the directory exists or was created successfully
		app.ConfigDir = appConfigDir

		// VIPER
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(appConfigDir)
		viper.SetDefault("data_file", "pawsgo.db")
		viper.SetDefault("price_per_minute", defaultPricePerMinute)
		viper.SetDefault("currency", defaultCurrency)
		viper.SetDefault("seed_walkers", true)
		viper.SetDefault("log_level", "info")
		viper.SetDefault("log_format", "console")
		err = viper.ReadInConfig()
		if err != nil {
			// need to check if the error is config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				// Config file is not found
				err = viper.SafeWriteConfig()
				if err != nil {
					return fmt.Errorf("writing config file : %w", err)
				}
			} else {
				return fmt.Errorf("reading config file : %w", err)
			}
		}
		if err := viper.Unmarshal(&app.Config); err != nil {
			return fmt.Errorf("unmarshalling config to struct : %w", err)
		}

		app.Config.ConfigDir = appConfigDir
		// Rewrite entire file from struct
		err = viper.WriteConfig()
		if err != nil {
			return fmt.Errorf("writing config after unmarshalling : %w", err)
		}
		return nil
	}
}

// WithRepo will set the Repository interface, closing any previously bound one
func WithRepo(repo Repository) func(*App) error {
	return func(app *App) error {
		// First we need to check if there is a repo
		if app.Repo != nil {
			if err := app.Repo.Close(); err != nil {
				return err
			}
			app.Repo = nil
		}
		app.Repo = repo
		return nil
	}
}

// WithLogger sets the structured logger used by the app
func WithLogger(logger *zap.Logger) func(*App) error {
	return func(app *App) error {
		if logger == nil {
			return fmt.Errorf("logger is nil")
		}
		app.Logger = logger
		return nil
	}
}

// WithClock overrides the clock used for entity timestamps
func WithClock(clock func() time.Time) func(*App) error {
	return func(app *App) error {
		if clock == nil {
			return fmt.Errorf("clock is nil")
		}
		app.Clock = clock
		return nil
	}
}
