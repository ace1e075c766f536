package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/seatwise/seatwise/pkg/errors"
	"github.com/seatwise/seatwise/pkg/render"
	"github.com/seatwise/seatwise/pkg/roster"
	"github.com/seatwise/seatwise/pkg/seating"
)

// graphCommand creates the graph export command.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		configPath  string
		rosterPath  string
		output      string
		format      string
		hideSevered bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the preference graph as DOT or SVG",
		Long: `Export the preference graph as DOT or SVG.

People are nodes; "with" preferences are solid edges and preferences
severed by "without" constraints are dashed. The DOT output can be fed to
any Graphviz tool; SVG is rendered in-process.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(configPath)
			if err != nil {
				return err
			}
			if rosterPath != "" {
				cfg.Roster = rosterPath
			}
			if cfg.Roster == "" {
				return apperrors.New(apperrors.ErrCodeInvalidConfig, "no roster file: set roster in seatwise.toml or pass --roster")
			}
			people, err := roster.ImportCSV(cfg.Roster)
			if err != nil {
				return err
			}

			// Severed edges come from a dry organising run.
			org, err := seating.New(seating.Config{Capacity: cfg.Capacity, Logger: c.Logger})
			if err != nil {
				return err
			}
			if err := org.Organise(people, cfg.Preferences, false); err != nil {
				return err
			}

			dot := render.ToDOT(people, cfg.Preferences, org.RemovedEdges(), render.Options{HideSevered: hideSevered})

			switch format {
			case "dot":
				if output == "" {
					fmt.Print(dot)
					return nil
				}
				if err := os.WriteFile(output, []byte(dot), 0644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
			case "svg":
				if output == "" {
					output = "preferences.svg"
				}
				spinner := newSpinnerWithContext(cmd.Context(), "Rendering graph...")
				spinner.Start()
				svg, err := render.RenderSVG(cmd.Context(), dot)
				if err != nil {
					spinner.StopWithError("Graph rendering failed")
					return err
				}
				spinner.Stop()
				if err := os.WriteFile(output, svg, 0644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
			default:
				return apperrors.New(apperrors.ErrCodeInvalidFormat, "unknown format %q: use dot or svg", format)
			}

			printSuccess("Exported %s graph", strings.ToUpper(format))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default seatwise.toml)")
	cmd.Flags().StringVarP(&rosterPath, "roster", "r", "", "roster CSV file (overrides config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout for dot, preferences.svg for svg)")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot or svg")
	cmd.Flags().BoolVar(&hideSevered, "hide-severed", false, "omit severed preference edges")

	return cmd
}
