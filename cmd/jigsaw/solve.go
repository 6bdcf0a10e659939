package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jigsaw/bitgrid"
	"github.com/katalvlaran/jigsaw/config"
	"github.com/katalvlaran/jigsaw/pattern"
	"github.com/katalvlaran/jigsaw/render"
)

type solveFlags struct {
	exactOverlap bool
	bmpPath      string
	bmpScale     int
	textPath     string
}

func newSolveCmd(gf *globalFlags) *cobra.Command {
	sf := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the corner product and the rough-water count",
		Long: `Solve assembles the tiles read from file (or stdin when omitted or "-")
and prints two numbers: the product of the four corner tile ids and the
number of set pixels not covered by a sea monster.

Examples:
  jigsaw solve puzzle.txt
  jigsaw solve -c jigsaw.yaml --bmp picture.bmp --bmp-scale 8`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, gf, sf)
		},
	}
	cmd.Flags().BoolVar(&sf.exactOverlap, "exact-overlap", false, "Count the exact union of monster pixels instead of matches × size")
	cmd.Flags().StringVar(&sf.bmpPath, "bmp", "", "Write the merged picture as BMP to this path")
	cmd.Flags().IntVar(&sf.bmpScale, "bmp-scale", config.DefaultScale, "BMP pixel magnification")
	cmd.Flags().StringVar(&sf.textPath, "text", "", "Write the merged picture as text to this path")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string, gf *globalFlags, sf *solveFlags) error {
	cfg, err := gf.settings(cmd, args)
	if err != nil {
		return err
	}
	if sf.exactOverlap {
		cfg.Overlap = pattern.ExactUnion.String()
	}
	if cmd.Flags().Changed("bmp") {
		cfg.Export.BMP = sf.bmpPath
	}
	if cmd.Flags().Changed("bmp-scale") {
		cfg.Export.Scale = sf.bmpScale
	}
	if cmd.Flags().Changed("text") {
		cfg.Export.Text = sf.textPath
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cmd, cfg.Verbose)
	res, err := run(cmd, cfg, logger)
	if err != nil {
		return err
	}

	corners, rough := res.Answers()
	fmt.Fprintf(cmd.OutOrStdout(), "corner product: %s\nroughness: %s\n", corners, rough)

	covered := res.Covered()
	if cfg.Export.BMP != "" {
		if err = writeBMP(cfg.Export.BMP, res.Detection.Image, covered, cfg.Export.Scale); err != nil {
			return err
		}
		logger.Printf("wrote %s", cfg.Export.BMP)
	}
	if cfg.Export.Text != "" {
		text := render.Text(res.Detection.Image, covered) + "\n"
		if err = os.WriteFile(cfg.Export.Text, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write text: %w", err)
		}
		logger.Printf("wrote %s", cfg.Export.Text)
	}

	return nil
}

func writeBMP(path string, img, covered bitgrid.Grid, scale int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create bmp: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close bmp: %w", cerr)
		}
	}()

	return render.WriteBMP(f, img, covered, scale)
}
