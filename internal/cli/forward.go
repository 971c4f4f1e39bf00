package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hardcore/internal/logger"
	"github.com/katalvlaran/hardcore/model"
)

type forwardOutput struct {
	Mass   float64 `json:"mass"`
	CRF    float64 `json:"crf"`
	Radius float64 `json:"radius"`
}

func newForwardCmd(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "forward MASS CRF",
		Short: "Predict radius from mass and core radius fraction",
		Example: `  hardcore forward 1.0 0.5
  hardcore forward --json 5 0.3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mass, err := parseArg("mass", args[0])
			if err != nil {
				return err
			}
			crf, err := parseArg("crf", args[1])
			if err != nil {
				return err
			}
			if crf < 0 || crf > 1 {
				logger.Warn("crf=%g outside [0,1], result is extrapolated", crf)
			}

			out := forwardOutput{Mass: mass, CRF: crf, Radius: model.Forward(mass, crf)}
			if st.cfg.Output.JSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			row(cmd.OutOrStdout(), st.cfg.Output.Precision, "R", out.Radius)
			return nil
		},
	}
}
