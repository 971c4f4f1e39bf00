// Package cli implements the hardcore command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hardcore/internal/config"
	"github.com/katalvlaran/hardcore/internal/logger"
)

// version is overridden at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// appState is shared by all subcommands of one root command.
type appState struct {
	configPath string
	verbose    bool
	json       bool
	precision  int

	cfg config.Config
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	st := &appState{}

	root := &cobra.Command{
		Use:   "hardcore",
		Short: "Convert between planet mass, radius and core radius fraction",
		Long: `hardcore relates a rocky planet's mass and radius to its core radius
fraction (CRF) under a two-layer iron-core + silicate-mantle model.
Masses are in Earth masses, radii in Earth radii.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.configPath, "config", "", "config file (default ~/.hardcore/config.toml)")
	pf.BoolVarP(&st.verbose, "verbose", "v", false, "print diagnostics to stderr")
	pf.BoolVar(&st.json, "json", false, "output results as JSON")
	pf.IntVar(&st.precision, "precision", config.DefaultPrecision, "decimals in text output")

	root.AddCommand(
		newForwardCmd(st),
		newInvertCmd(st),
		newBoundsCmd(st),
		newConfigCmd(st),
		newVersionCmd(),
	)

	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// load resolves the config file and applies global flag overrides.
func (st *appState) load(cmd *cobra.Command) error {
	logger.SetVerbose(st.verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if st.configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Warn("no home directory, using defaults: %v", err)
			st.cfg = config.Default()
			return nil
		}
		st.configPath = p
	}

	cfg, err := config.Load(st.configPath)
	if err != nil {
		return err
	}
	logger.Debug("config: %s", st.configPath)

	flags := cmd.Flags()
	if flags.Changed("json") {
		cfg.Output.JSON = st.json
	}
	if flags.Changed("precision") {
		cfg.Output.Precision = st.precision
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	st.cfg = cfg

	return nil
}
