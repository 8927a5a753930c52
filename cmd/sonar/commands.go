package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sonar/internal/config"
	"github.com/katalvlaran/sonar/internal/puzzle"
)

var errInputWithManyDays = errors.New("--input needs exactly one day")

// app carries state shared by the subcommands of one invocation.
type app struct {
	stdout, stderr io.Writer

	configPath string
	inputDir   string
	logLevel   string
	inputFile  string

	cfg      config.Config
	logger   *slog.Logger
	registry *puzzle.Registry
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "sonar",
		Short:         "Solve the submarine's daily puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.inputDir, "input-dir", "", "directory holding dayN.input files (overrides config)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		RunE:  a.runList,
	}

	runCmd := &cobra.Command{
		Use:   "run DAY...",
		Short: "Solve the given days",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runDays,
	}
	runCmd.Flags().StringVar(&a.inputFile, "input", "", "input file for a single day")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.cfg.Encode(a.stdout)
		},
	}

	root.AddCommand(listCmd, runCmd, configCmd)
	return root
}

// setup loads configuration, applies flag overrides and builds the logger
// and registry.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("input-dir") {
		cfg.InputDir = a.inputDir
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	a.registry = puzzle.Default(cfg, a.logger)
	a.logger.Debug("configuration loaded", "path", a.configPath, "input_dir", cfg.InputDir)
	return nil
}

func (a *app) runList(*cobra.Command, []string) error {
	for _, d := range a.registry.Days() {
		fmt.Fprintf(a.stdout, "%2d  %s\n", d.Number, d.Title)
	}
	return nil
}

func (a *app) runDays(cmd *cobra.Command, args []string) error {
	if a.inputFile != "" && len(args) != 1 {
		return errInputWithManyDays
	}
	days := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("day %q: %w", arg, err)
		}
		if _, ok := a.registry.Lookup(n); !ok {
			return fmt.Errorf("%w: %d", puzzle.ErrUnknownDay, n)
		}
		days[i] = n
	}

	for _, n := range days {
		path := a.inputFile
		if path == "" {
			path = filepath.Join(a.cfg.InputDir, fmt.Sprintf("day%d.input", n))
		}
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("day %d: %w", n, err)
		}
		a.logger.Info("solving", "day", n, "input", path)

		ans, err := a.registry.Solve(cmd.Context(), n, string(text))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "day %d part 1: %s\n", n, ans.Part1)
		fmt.Fprintf(a.stdout, "day %d part 2: %s\n", n, strings.TrimRight(ans.Part2, "\n"))
	}
	return nil
}
