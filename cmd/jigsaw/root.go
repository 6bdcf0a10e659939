package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jigsaw"
	"github.com/katalvlaran/jigsaw/config"
)

const appVersion = "0.3.0"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:   "jigsaw",
		Short: "Reassemble edge-matched tiles and hunt for sea monsters",
		Long: `jigsaw reads tiles ("Tile <id>:" followed by rows of '#' and '.'),
rebuilds the picture by matching tile edges, and searches it for sea monsters.

Examples:
  jigsaw solve puzzle.txt
  jigsaw solve --exact-overlap --bmp picture.bmp puzzle.txt
  cat puzzle.txt | jigsaw render`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&gf.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false, "Log stage timings and search statistics")

	root.AddCommand(newSolveCmd(gf), newRenderCmd(gf), newVersionCmd())

	return root
}

// settings resolves the config file and the flags that override it.
func (gf *globalFlags) settings(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()
	if gf.configPath != "" {
		var err error
		if cfg, err = config.Load(gf.configPath); err != nil {
			return cfg, err
		}
	}
	if gf.verbose {
		cfg.Verbose = true
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}

	return cfg, nil
}

// newLogger writes timestamped lines with file:line to stderr, or nothing unless verbose.
func newLogger(cmd *cobra.Command, verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}

	return log.New(cmd.ErrOrStderr(), "jigsaw: ", log.LstdFlags|log.Lshortfile)
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return string(data), nil
}

// run loads the input, solves it and logs each stage.
func run(cmd *cobra.Command, cfg config.Config, logger *log.Logger) (*jigsaw.Result, error) {
	mask, err := cfg.Mask()
	if err != nil {
		return nil, err
	}
	opts := jigsaw.Options{Mask: mask, Overlap: cfg.OverlapMode()}

	input, err := readInput(cmd, cfg.Input)
	if err != nil {
		return nil, err
	}
	logger.Printf("read %d bytes from %s", len(input), inputName(cfg.Input))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	res, err := jigsaw.Solve(ctx, input, opts)
	if err != nil {
		return nil, err
	}
	logger.Printf("solved %d tiles in %s", len(res.Tiles), time.Since(start))
	logger.Printf("layout %dx%d: %d placements, %d backtracks",
		res.Layout.Size, res.Layout.Size, res.Layout.Stats.Placements, res.Layout.Stats.Backtracks)
	logger.Printf("picture %dx%d, %d matches in orientation %s (%s overlap)",
		res.Image.Size(), res.Image.Size(), len(res.Detection.Matches), res.Detection.Orientation, opts.Overlap)

	return res, nil
}

func inputName(path string) string {
	if strings.TrimSpace(path) == "" || path == "-" {
		return "stdin"
	}

	return path
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the jigsaw version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "jigsaw", appVersion)
		},
	}
}
