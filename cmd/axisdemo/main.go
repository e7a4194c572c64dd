// Command axisdemo renders a sample chart axis to a PNG file.
//
// Categorical axes rotate and truncate labels that outgrow their band;
// try long category names with a narrow width to see it. Temporal axes
// drop colliding labels instead:
//
//	axisdemo --width 400 --categories "January,February,March,April"
//	axisdemo --temporal --span 6h --output temporal.png
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sdd330/kibana"
	"github.com/sdd330/kibana/ggsurface"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		width      float64
		height     float64
		output     string
		categories []string
		temporal   bool
		span       time.Duration
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "axisdemo",
		Short:         "Render a sample chart axis to PNG",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			kibana.SetLogger(slog.New(logger))

			root, err := ggsurface.New(width, height)
			if err != nil {
				return err
			}

			opts := []kibana.Option{}
			if temporal {
				now := time.Now()
				opts = append(opts,
					kibana.WithOrdering(kibana.Ordering{
						Temporal: true,
						Min:      now.Add(-span),
						Max:      now,
					}),
					kibana.WithFormatter(func(t kibana.Tick) string {
						return t.Time.Format("15:04")
					}),
				)
			} else {
				opts = append(opts, kibana.WithCategories(categories))
			}

			axis, err := kibana.New(root, opts...)
			if err != nil {
				return err
			}
			if err := axis.Render(); err != nil {
				return err
			}

			dc, err := root.Render()
			if err != nil {
				return err
			}
			if err := dc.SavePNG(output); err != nil {
				return err
			}

			attrs := axis.Attributes()
			logger.Info("axis rendered",
				"output", output,
				"rotated", attrs.Rotated,
				"labelHeight", attrs.LabelHeight)
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 600, "surface width in pixels")
	cmd.Flags().Float64Var(&height, "height", 60, "surface height in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "axis.png", "output PNG file")
	cmd.Flags().StringSliceVar(&categories, "categories",
		[]string{"January", "February", "March", "April", "May", "June"},
		"category values for a categorical axis")
	cmd.Flags().BoolVar(&temporal, "temporal", false, "render a temporal axis instead")
	cmd.Flags().DurationVar(&span, "span", 24*time.Hour, "time span for a temporal axis")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}
