package commands

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/perkrifj/adif-tools/internal/render"
)

func printCmd(a *app) *cobra.Command {
	var (
		output    string
		columns   int
		noSort    bool
		inferBand bool
	)

	cmd := &cobra.Command{
		Use:   "print <log.adi>",
		Short: "Render labels for every contact in a log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := render.Options{
				Columns:      a.cfg.Render.Columns,
				ColumnWidth:  a.cfg.Render.ColumnWidth,
				ShowOperator: a.cfg.Render.ShowOperator,
				Sort:         a.cfg.Render.Sort && !noSort,
			}
			if cmd.Flags().Changed("columns") {
				opts.Columns = columns
			}
			if !cmd.Flags().Changed("infer-band") {
				inferBand = a.cfg.Reader.InferBand
			}

			labels, err := a.reader(inferBand).ReadFile(cmd.Context(), args[0])
			if err != nil {
				a.logger.Error("reading log failed", zap.String("path", args[0]), zap.Error(err))
				return err
			}

			printLabels := func(w io.Writer) error {
				return render.NewPrinter(opts, a.logger).Print(cmd.Context(), w, labels)
			}
			if output == "" {
				err = printLabels(cmd.OutOrStdout())
			} else {
				err = writeFile(output, printLabels)
			}
			if err != nil {
				a.logger.Error("printing labels failed", zap.String("output", output), zap.Error(err))
				return err
			}

			a.logger.Info("labels printed",
				zap.String("path", args[0]),
				zap.Int("labels", len(labels)),
				zap.String("output", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write labels to this file instead of stdout")
	cmd.Flags().IntVar(&columns, "columns", 1, "labels printed side by side")
	cmd.Flags().BoolVar(&noSort, "no-sort", false, "keep log order instead of sorting by call")
	cmd.Flags().BoolVar(&inferBand, "infer-band", false, "derive BAND from FREQ when missing")
	return cmd
}
