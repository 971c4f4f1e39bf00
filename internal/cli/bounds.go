package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hardcore/model"
)

type boundsOutput struct {
	Mass     float64 `json:"mass"`
	Iron     float64 `json:"corefull_radius"`
	Silicate float64 `json:"coreless_radius"`
}

func newBoundsCmd(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds MASS",
		Short: "Print the pure-iron and pure-silicate radii for a mass",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mass, err := parseArg("mass", args[0])
			if err != nil {
				return err
			}

			out := boundsOutput{
				Mass:     mass,
				Iron:     model.CorefullRadius(mass),
				Silicate: model.CorelessRadius(mass),
			}
			if st.cfg.Output.JSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			row(cmd.OutOrStdout(), st.cfg.Output.Precision, "Riron", out.Iron)
			row(cmd.OutOrStdout(), st.cfg.Output.Precision, "Rrock", out.Silicate)
			return nil
		},
	}
}
