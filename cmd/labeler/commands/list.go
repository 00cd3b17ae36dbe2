package commands

import (
	"github.com/spf13/cobra"

	"github.com/perkrifj/adif-tools/internal/domain/label"
	"github.com/perkrifj/adif-tools/internal/render"
)

func listCmd(a *app) *cobra.Command {
	var (
		inferBand bool
		sorted    bool
	)

	cmd := &cobra.Command{
		Use:   "list <log.adi>",
		Short: "List contacts as call, date, frequency and mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("infer-band") {
				inferBand = a.cfg.Reader.InferBand
			}
			if !cmd.Flags().Changed("sort") {
				sorted = a.cfg.Render.Sort
			}

			labels, err := a.reader(inferBand).ReadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if sorted {
				label.SortByCall(labels)
			}
			return render.WriteList(cmd.OutOrStdout(), labels)
		},
	}

	cmd.Flags().BoolVar(&inferBand, "infer-band", false, "derive BAND from FREQ when missing")
	cmd.Flags().BoolVar(&sorted, "sort", false, "sort contacts by call (default from render.sort)")
	return cmd
}
