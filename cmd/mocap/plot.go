package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Zuo-Peng/mocap-results/internal/open"
	"github.com/Zuo-Peng/mocap-results/internal/plot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func plotCmd() *cobra.Command {
	var input, dir, subject, groupKey, format string
	var types []string
	var show bool

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render 3D and 2D scatter plots of the cleaned table, one pair per body part",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := finishConfig(cmd, map[string]func(){
				"input":     func() { cfg.Plot.Input = input },
				"dir":       func() { cfg.Plot.Dir = dir },
				"types":     func() { cfg.Plot.Types = types },
				"subject":   func() { cfg.Plot.Subject = subject },
				"group-key": func() { cfg.Plot.GroupKey = groupKey },
				"format":    func() { cfg.Plot.Format = format },
				"show":      func() { cfg.Plot.Show = show },
			})
			if err != nil {
				return err
			}

			t, err := plot.LoadTable(cfg.Plot.Input, logger)
			if errors.Is(err, plot.ErrNoData) {
				fmt.Fprintln(os.Stderr, "No data to plot.")
				return nil
			}
			if err != nil {
				return err
			}

			r := plot.NewRenderer(plot.Options{
				Dir:       cfg.Plot.Dir,
				Format:    cfg.Plot.Format,
				Width:     cfg.Plot.Width,
				Height:    cfg.Plot.Height,
				Azimuth:   cfg.Plot.Azimuth,
				Elevation: cfg.Plot.Elevation,
			}, logger)

			figs, err := plot.RenderParts(r, t, plot.Selection{
				Types:    cfg.Plot.Types,
				Subject:  cfg.Plot.Subject,
				GroupKey: cfg.Plot.GroupKey,
			})
			if errors.Is(err, plot.ErrNoData) {
				fmt.Fprintln(os.Stderr, "No data to plot.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("plot: %w", err)
			}

			for _, f := range figs {
				fmt.Println(f.Path)
				if cfg.Plot.Show {
					if err := open.ShowFigure(f.Path); err != nil {
						logger.Warn("viewer failed", zap.String("path", f.Path), zap.Error(err))
					}
				}
			}
			fmt.Fprintf(os.Stderr, "Done. figures=%d\n", len(figs))
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Cleaned CSV file (default: clean output)")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory for rendered figures (default data/plots)")
	cmd.Flags().StringSliceVar(&types, "types", nil, "Tackle types to include (default R,L)")
	cmd.Flags().StringVar(&subject, "subject", "", "Only plot this subject")
	cmd.Flags().StringVar(&groupKey, "group-key", "", "Colour points by Subject, Type, Part or Side (default Type)")
	cmd.Flags().StringVar(&format, "format", "", "Figure format: png or svg (default png)")
	cmd.Flags().BoolVar(&show, "show", false, "Open each figure in the system viewer")

	return cmd
}
