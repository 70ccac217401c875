package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawsandgo/pawsgo"
	"github.com/pawsandgo/pawsgo/db"
	"github.com/pawsandgo/pawsgo/internal/ui"
	"github.com/pawsandgo/pawsgo/logger"
)

func main() {
	var configDir string
	flag.StringVar(&configDir, "config", "", "Path to the config directory (default: ~/.pawsgo)")
	flag.Parse()

	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to resolve home directory: %v\n", err)
			os.Exit(1)
		}
		configDir = filepath.Join(home, ".pawsgo")
	}

	app, err := pawsgo.New(pawsgo.WithConfigDir(configDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Log to a file so the fullscreen UI stays clean.
	zapLogger, err := logger.New(app.Config.LogLevel, app.Config.LogFormat, filepath.Join(configDir, "pawsgo.log"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}

	dbConn, err := db.New(filepath.Join(configDir, app.Config.DataFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	repo, err := db.NewRepository(db.NewStore(dbConn))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load repository: %v\n", err)
		os.Exit(1)
	}

	if err := app.WithOptions(pawsgo.WithLogger(zapLogger), pawsgo.WithRepo(repo)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure app: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	p := tea.NewProgram(ui.New(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
