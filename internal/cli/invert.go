package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hardcore/internal/logger"
	"github.com/katalvlaran/hardcore/inversion"
	"github.com/katalvlaran/hardcore/model"
)

type invertFlags struct {
	seed      int64
	policy    string
	strict    bool
	tolerance float64
	minSteps  int
	maxSteps  int
}

type invertOutput struct {
	Mass         float64 `json:"mass"`
	Radius       float64 `json:"radius"`
	CRFMin       float64 `json:"crf_min"`
	CRFMax       float64 `json:"crf_max"`
	CRFMarg      float64 `json:"crf_marg"`
	Method       string  `json:"method"`
	Steps        int     `json:"steps"`
	Converged    bool    `json:"converged"`
	Inconsistent bool    `json:"inconsistent"`
}

func newInvertCmd(st *appState) *cobra.Command {
	f := &invertFlags{}

	cmd := &cobra.Command{
		Use:   "invert MASS RADIUS",
		Short: "Recover CRFmin, CRFmax and a marginal CRF from mass and radius",
		Long: `Inverts an observed mass and radius into the range of core radius
fractions consistent with it. CRFmin is solved by damped Newton iteration,
CRFmax is the pure-iron radius over the observed radius, and CRFmarg is
one uniform draw between them.`,
		Example: `  hardcore invert 1.0 1.0
  hardcore invert --seed 42 --policy swap 10 1.4066`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvert(cmd, st, f, args)
		},
	}

	fl := cmd.Flags()
	fl.Int64Var(&f.seed, "seed", 0, "seed for CRFmarg (0 = unseeded)")
	fl.StringVar(&f.policy, "policy", "sample", "CRFmin > CRFmax policy: sample, swap or reject")
	fl.BoolVar(&f.strict, "strict", false, "reject non-positive or non-finite inputs")
	fl.Float64Var(&f.tolerance, "tolerance", inversion.DefaultTolerance, "Newton convergence threshold on |dx|")
	fl.IntVar(&f.minSteps, "min-steps", inversion.DefaultMinSteps, "minimum Newton steps")
	fl.IntVar(&f.maxSteps, "max-steps", inversion.DefaultMaxSteps, "maximum Newton steps")

	return cmd
}

func runInvert(cmd *cobra.Command, st *appState, f *invertFlags, args []string) error {
	mass, err := parseArg("mass", args[0])
	if err != nil {
		return err
	}
	radius, err := parseArg("radius", args[1])
	if err != nil {
		return err
	}

	section := st.cfg.Inversion
	flags := cmd.Flags()
	if flags.Changed("seed") {
		section.Seed = f.seed
	}
	if flags.Changed("policy") {
		section.Policy = f.policy
	}
	if flags.Changed("strict") {
		section.Strict = f.strict
	}
	if flags.Changed("tolerance") {
		section.Tolerance = f.tolerance
	}
	if flags.Changed("min-steps") {
		section.MinSteps = f.minSteps
	}
	if flags.Changed("max-steps") {
		section.MaxSteps = f.maxSteps
	}

	opts, err := section.Options()
	if err != nil {
		return err
	}
	if logger.IsVerbose() {
		opts.OnStep = logger.Step
		logger.Section("Inversion")
		logger.Debug("iron radius=%.6f silicate radius=%.6f", model.CorefullRadius(mass), model.CorelessRadius(mass))
	}

	res, err := inversion.Invert(mass, radius, &opts)
	if err != nil {
		return fmt.Errorf("invert failed: %w", err)
	}
	if res.Inconsistent {
		logger.Warn("CRFmin > CRFmax, applied policy %q", opts.Inconsistent)
	}
	if !res.Converged {
		logger.Warn("Newton iteration stopped after %d steps without converging", res.Steps)
	}

	out := invertOutput{
		Mass:         mass,
		Radius:       radius,
		CRFMin:       res.Min,
		CRFMax:       res.Max,
		CRFMarg:      res.Marg,
		Method:       res.Method.String(),
		Steps:        res.Steps,
		Converged:    res.Converged,
		Inconsistent: res.Inconsistent,
	}
	if st.cfg.Output.JSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}

	w := cmd.OutOrStdout()
	prec := st.cfg.Output.Precision
	row(w, prec, "CRFmin", out.CRFMin)
	row(w, prec, "CRFmax", out.CRFMax)
	row(w, prec, "CRFmarg", out.CRFMarg)
	status := "converged"
	if !out.Converged {
		status = "not converged"
	}
	fmt.Fprintf(w, "%-8s= %s (%d steps, %s)\n", "method", out.Method, out.Steps, status)
	return nil
}
