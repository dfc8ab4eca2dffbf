package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/trid/internal/config"
	"github.com/gravitas-games/trid/internal/logging"
)

const defaultConfigPath = "./configs/trid.yaml"

// app carries the settings resolved before any subcommand runs.
type app struct {
	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: logging.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "tridctl",
		Short: "tridctl inspects triangular tessellation coordinates",
		Long: `tridctl snaps, classifies, rotates and walks positions on a triangular
tessellation addressed by integer axial coordinates (X, Y, Z = -X-Y), where one
vertex step is six lattice units.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", configPathFromEnv(), "Path to the YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Override log.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")

	rootCmd.AddCommand(
		newSnapCmd(a),
		newClassifyCmd(a),
		newNeighborsCmd(a),
		newRotateCmd(a),
		newPathCmd(a),
		newRingCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func configPathFromEnv() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return defaultConfigPath
}

// setup loads the config file and applies flag overrides. Only the implicit
// default path may be missing.
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	var (
		cfg *config.Config
		err error
	)
	if path == defaultConfigPath {
		cfg, err = config.LoadOptional(path)
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return err
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		cfg.Output.Format = "json"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.NewWriter(cmd.ErrOrStderr(), level)
	a.log.Debug("configuration loaded", "path", path, "format", cfg.Output.Format, "unit_length", cfg.Lattice.UnitLength)
	return nil
}

// run executes the command tree with explicit arguments and streams.
func run(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// Execute runs the command tree against the process arguments.
func Execute() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
