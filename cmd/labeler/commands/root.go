package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/perkrifj/adif-tools/internal/adif"
	"github.com/perkrifj/adif-tools/internal/dateformat"
	"github.com/perkrifj/adif-tools/internal/infrastructure/config"
	"github.com/perkrifj/adif-tools/internal/infrastructure/telemetry"
)

// app is the state shared by subcommands once the root has run
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

// Execute runs the labeler CLI with the process arguments
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "labeler",
		Short:        "Print QSL labels from ADIF contact logs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default "+config.DefaultPath+" when present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	root.AddCommand(printCmd(a), listCmd(a))
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	logger, err := telemetry.SetupLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) reader(inferBand bool) *adif.Reader {
	return adif.NewReader(adif.Options{
		InferBand:     inferBand,
		SkipInvalid:   a.cfg.Reader.SkipInvalid,
		DateFormatter: dateformat.New(a.cfg.Date.Layout, a.cfg.Date.DateOnlyLayout),
	}, a.logger)
}
