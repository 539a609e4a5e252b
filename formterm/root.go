package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"zolve/formkit/internal/config"
	"zolve/formkit/internal/logging"
	"zolve/formkit/internal/messages"
	"zolve/formkit/internal/views"
)

// Version is the semantic version (set by build flags)
var Version = "0.1.0"

const defaultTUILogFile = "formterm.log"

// environment holds what every command loads before it runs
type environment struct {
	config  *config.Config
	catalog *messages.Catalog
}

func (e *environment) load() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	catalog := messages.Default()
	if cfg.MessagesFile != "" {
		catalog, err = messages.Load(cfg.MessagesFile)
		if err != nil {
			return err
		}
	}

	e.config = cfg
	e.catalog = catalog
	return nil
}

// logger writes to the configured log file, or to fallbackFile when set, or
// to w otherwise.
func (e *environment) logger(fallbackFile string, w io.Writer) (*zap.Logger, func() error, error) {
	file := e.config.LogFile
	if file == "" {
		file = fallbackFile
	}
	return logging.New(logging.Options{
		Level:  e.config.LogLevel,
		File:   file,
		Output: w,
	})
}

func newRootCmd() *cobra.Command {
	env := &environment{}

	cmd := &cobra.Command{
		Use:   "formterm",
		Short: "Formterm - validated profile form for the terminal",
		Long: `Formterm renders a profile form whose fields validate themselves as you type.

Each field has a purpose (email, phone, pan, ssn, ...) that selects its
validation rule. Validation runs once typing pauses for the debounce delay.

Configuration is read from the environment and an optional .env file:
  FORMTERM_DEBOUNCE       quiet period before validation (default 200ms)
  FORMTERM_LOG_LEVEL      debug, info, warn or error (default info)
  FORMTERM_LOG_FILE       log file (default formterm.log for the form, stderr otherwise)
  FORMTERM_MESSAGES_FILE  YAML or TOML file overriding validation messages
  FORMTERM_COUNTRY        default phone country (default us)
  FORMTERM_DEBUG          enable debug logging`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd, env)
		},
	}

	cmd.AddCommand(
		newValidateCmd(env),
		newWatchCmd(env),
		newPurposesCmd(),
		newCountriesCmd(),
	)

	return cmd
}

func runForm(cmd *cobra.Command, env *environment) error {
	logger, closeLog, err := env.logger(defaultTUILogFile, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	app, err := views.NewAppModel(env.config, logger, env.catalog)
	if err != nil {
		return fmt.Errorf("error initializing application: %w", err)
	}

	logger.Info("starting form", zap.String("country", env.config.DefaultCountry))

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running application: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
