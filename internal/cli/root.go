package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/travelboard/internal/cli/formatter"
	"github.com/alexanderramin/travelboard/internal/config"
	"github.com/alexanderramin/travelboard/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// staticWidth is the layout width used when stdout is not a terminal.
const staticWidth = 100

// App holds references to the services used by the TUI.
type App struct {
	Destinations service.DestinationService

	// Now is the clock used for trip countdowns. Defaults to time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// Bootstrap builds an App for the resolved configuration. The returned
// cleanup func releases the session store.
type Bootstrap func(ctx context.Context, cfg config.Config) (app *App, cleanup func(), err error)

// rootFlags holds the values bound to the root command's flags.
type rootFlags struct {
	configPath string
	logFile    string
	logLevel   string
	noSeed     bool
}

func (f *rootFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "path to a YAML config file (env TRAVELBOARD_CONFIG)")
	fs.StringVar(&f.logFile, "log-file", "", "write use-case logs to this file (env TRAVELBOARD_LOG_FILE)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error (env TRAVELBOARD_LOG_LEVEL)")
	fs.BoolVar(&f.noSeed, "no-seed", false, "start with an empty dashboard")
}

// apply overlays flags that were set explicitly on top of cfg.
func (f *rootFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("log-file") {
		cfg.Logging.File = f.logFile
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(f.logLevel)
	}
	if fs.Changed("no-seed") {
		cfg.Seed = !f.noSeed
	}
}

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewRootCmd creates the top-level "travelboard" command. Running it
// loads configuration, builds the App through bootstrap and opens the
// dashboard.
func NewRootCmd(bootstrap Bootstrap) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "travelboard",
		Short:         "Plan and track your adventures around the world",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			flags.apply(cmd.Flags(), &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			app, cleanup, err := bootstrap(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			return runDashboard(cmd.Context(), app, cmd.OutOrStdout())
		},
	}
	flags.bind(root.Flags())

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the travelboard version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "travelboard %s\n", Version)
		},
	}
}

// runDashboard opens the interactive TUI on a terminal and prints a
// static rendering of the dashboard otherwise.
func runDashboard(ctx context.Context, app *App, out io.Writer) error {
	if !isTerminal(out) {
		return printDashboard(ctx, app, out)
	}
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

func printDashboard(ctx context.Context, app *App, out io.Writer) error {
	list, err := app.Destinations.List(ctx)
	if err != nil {
		return fmt.Errorf("listing destinations: %w", err)
	}
	summary, err := app.Destinations.Summary(ctx)
	if err != nil {
		return fmt.Errorf("summarizing destinations: %w", err)
	}
	_, err = fmt.Fprint(out, formatter.FormatDashboard(list, summary, staticWidth, -1, app.now()))
	return err
}
