// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"fjacquet/csv-ofx/cmd/common"
	"fjacquet/csv-ofx/internal/config"
	"fjacquet/csv-ofx/internal/container"
	"fjacquet/csv-ofx/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// configured logger once the configuration has been loaded.
	Log logging.Logger = config.ConfigureLogging()

	// AppContainer holds the wired dependencies of the running command.
	AppContainer *container.Container

	// ConfigFile is the --config flag.
	ConfigFile string

	// SharedFlags are the run overrides accepted by the conversion commands.
	SharedFlags = common.RunFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "csv-ofx <model> <input|-> <output|->",
		Short: "Convert bank CSV exports to OFX statements.",
		Long: `csv-ofx converts the CSV export of a bank into an OFX 2.0.2 statement.

The column layout of each export is described by a model in the configuration,
the OFX identifiers by an account. Use "-" as input or output for stdin or stdout.`,
		Args:              cobra.ExactArgs(3),
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              convertFunc,
	}

	initOnce sync.Once
)

// Init initializes the root command and all flags
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVarP(&ConfigFile, "config", "c", "", "Configuration file (default: config.yaml in ./config, $HOME/.csv-ofx or .)")
		AddRunFlags(Cmd)
	})
}

// Execute runs the root command and returns the process exit code. Errors
// are logged through Log.
func Execute() int {
	if err := Cmd.Execute(); err != nil {
		Log.WithError(err).Error("Command failed")
		return 1
	}
	return 0
}

// AddRunFlags registers the run override flags on cmd.
func AddRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&SharedFlags.Account, "account", "a", "", "Account identifier (overrides run.account)")
	cmd.Flags().StringVar(&SharedFlags.FromDate, "from-date", "", "Skip statements before this date, YYYY-MM-DD (overrides run.fromDate)")
	cmd.Flags().StringVar(&SharedFlags.ToDate, "to-date", "", "Skip statements after this date, YYYY-MM-DD (overrides run.toDate)")
}

// setup loads the environment and the configuration, then wires the
// container every command works with.
func setup(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	config.LoadEnv(Log)

	cfg, err := config.Load(ConfigFile)
	if err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppContainer = c
	Log = c.GetLogger()
	if cfg.File != "" {
		Log.Debug("Using configuration file", logging.Field{Key: logging.FieldConfigFile, Value: cfg.File})
	}
	return nil
}

func convertFunc(cmd *cobra.Command, args []string) error {
	req, err := common.BuildRequest(args, SharedFlags)
	if err != nil {
		return err
	}
	return AppContainer.GetConverter().Run(req)
}
