package main

import (
	"fmt"
	"os"

	"github.com/hailam/chessheat/internal/export"
	"github.com/hailam/chessheat/internal/tui"
	"github.com/hailam/chessheat/internal/util/style"
	"github.com/spf13/cobra"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Args:  cobra.ExactArgs(0),
	Short: "Print the board with attack counts",
}

func init() {
	p := textCmd.Flags()
	noColor := p.Bool("no-color", false, "disable colors even on a terminal")

	textCmd.RunE = func(cmd *cobra.Command, _args []string) error {
		_, eng, _, err := setup()
		if err != nil {
			return err
		}
		opts := export.DefaultTextOptions()
		opts.Color = !*noColor && style.SupportsColor(os.Stdout)
		return export.WriteText(cmd.OutOrStdout(), eng.Board(), eng.Attacks(), opts)
	}
}

var svgCmd = &cobra.Command{
	Use:   "svg",
	Args:  cobra.ExactArgs(0),
	Short: "Render the attack map as SVG",
}

func init() {
	p := svgCmd.Flags()
	out := p.StringP("out", "O", "", "output file (stdout if empty)")
	noCounts := p.Bool("no-counts", false, "omit attack counts")
	noPieces := p.Bool("no-pieces", false, "omit pieces")

	svgCmd.RunE = func(cmd *cobra.Command, _args []string) error {
		opts, eng, log, err := setup()
		if err != nil {
			return err
		}
		svgOpts := export.DefaultSVGOptions()
		svgOpts.CellSize = opts.CellSize
		svgOpts.Counts = !*noCounts
		svgOpts.Pieces = !*noPieces

		if *out == "" {
			return export.WriteSVG(cmd.OutOrStdout(), eng.Board(), eng.Attacks(), svgOpts)
		}
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		if err := export.WriteSVG(f, eng.Board(), eng.Attacks(), svgOpts); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close output: %w", err)
		}
		log.Info("wrote svg", "file", *out)
		return nil
	}
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Args:  cobra.ExactArgs(0),
	Short: "Explore the attack map in the terminal",
}

func init() {
	tuiCmd.RunE = func(cmd *cobra.Command, _args []string) error {
		opts, eng, log, err := setup()
		if err != nil {
			return err
		}
		return tui.Run(eng, opts.Position, log)
	}
}
