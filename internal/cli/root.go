package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"stocko/internal/config"
	"stocko/internal/logging"
	"stocko/internal/portfolio"
	"stocko/internal/quotes"
	"stocko/internal/store"
)

// Version information
const Version = "0.3.0"

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Store     *store.FileStore
	Journal   *store.Journal
	Quotes    quotes.Client
	Portfolio *portfolio.Service
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
		Store:  store.NewFileStore(cfg.Data.File),
	}

	if cfg.Data.Journal {
		journal, err := store.NewJournal(config.JournalPath())
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize journal, order history will not be recorded")
		} else {
			app.Journal = journal
			logger.Debug().Msg("Order journal initialized")
		}
	}

	av := quotes.NewAlphaVantage(quotes.AlphaVantageConfig{
		APIKey:  cfg.Credentials.AlphaVantage.APIKey,
		BaseURL: cfg.Quotes.BaseURL,
	})
	if cfg.Quotes.Cache && app.Journal != nil {
		app.Quotes = store.NewCachedQuotes(av, app.Journal)
	} else {
		app.Quotes = av
	}

	app.Portfolio = portfolio.NewService(app.Store, app.Quotes, app.Journal, logger)

	rootCmd := &cobra.Command{
		Use:   "stocko",
		Short: "Stocko - personal stock portfolio tracker",
		Long: `Stocko tracks your stock holdings, watch list, and closed positions
in a local data file and reports gains against live market prices.

Use 'stocko help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newListCmd(app))
	rootCmd.AddCommand(newWatchCmd(app))
	rootCmd.AddCommand(newBuyCmd(app))
	rootCmd.AddCommand(newSellCmd(app))
	rootCmd.AddCommand(newArchiveCmd(app))
	rootCmd.AddCommand(newExportCmd(app))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("stocko v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			output.Bold("Data")
			output.Printf("  File:    %s\n", app.Config.Data.File)
			output.Printf("  Journal: %v\n", app.Config.Data.Journal)
			output.Println()
			output.Bold("Quotes")
			output.Printf("  Cache:   %v\n", app.Config.Quotes.Cache)
			keyState := "not set"
			if app.Config.Credentials.AlphaVantage.APIKey != "" {
				keyState = "configured"
			}
			output.Printf("  API key: %s\n", keyState)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}
