package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phyten/palettex/internal/analysis"
	"github.com/phyten/palettex/internal/colorutil"
	"github.com/phyten/palettex/internal/output"
	"github.com/phyten/palettex/internal/termcolor"
	"github.com/phyten/palettex/internal/textutil"
)

type contrastResult struct {
	Foreground string          `json:"foreground"`
	Background string          `json:"background"`
	Ratio      float64         `json:"ratio"`
	Level      colorutil.Level `json:"level"`
	Suggestion string          `json:"suggestion,omitempty"`
}

func contrastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Print the WCAG contrast ratio of two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := colorutil.ParseHex(args[0])
			if err != nil {
				return fmt.Errorf("foreground: %w", err)
			}
			bg, err := colorutil.ParseHex(args[1])
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}
			ratio := colorutil.ContrastRatio(fg, bg)
			res := contrastResult{Foreground: fg.Hex(), Background: bg.Hex(), Ratio: ratio, Level: colorutil.ContrastLevel(ratio)}
			if res.Level == colorutil.LevelFail {
				res.Suggestion = colorutil.EnsureContrast(fg, bg, colorutil.MinRatioAA).Hex()
			}

			w := cmd.OutOrStdout()
			if a.settings.UI.Output == "json" || a.settings.UI.Output == "ndjson" {
				return output.WriteJSON(w, res)
			}
			opts := a.outputOptions(w, "")
			sample := termcolor.Apply(termcolor.Style{FG: termcolor.ColorFor(fg, opts.Profile), BG: termcolor.ColorFor(bg, opts.Profile)}, " Aa ", opts.Color)
			level := termcolor.Apply(termcolor.LevelStyle(res.Level), string(res.Level), opts.Color)
			line := fmt.Sprintf("%s on %s  %.2f:1  %s  %s", res.Foreground, res.Background, res.Ratio, level, sample)
			if res.Suggestion != "" {
				line += "  try " + res.Suggestion
			}
			_, err = fmt.Fprintln(w, line)
			return err
		},
	}
}

func simulateCmd(a *app) *cobra.Command {
	var types []string
	c := &cobra.Command{
		Use:   "simulate <color>",
		Short: "Show how a color looks under color vision deficiencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := colorutil.ParseHex(args[0])
			if err != nil {
				return err
			}
			deficiencies := colorutil.Deficiencies()
			if len(types) > 0 {
				deficiencies = deficiencies[:0:0]
				for _, t := range types {
					d, err := colorutil.ParseDeficiency(t)
					if err != nil {
						return err
					}
					deficiencies = append(deficiencies, d)
				}
			}

			sims := make(map[colorutil.Deficiency]string, len(deficiencies))
			for _, d := range deficiencies {
				sim, err := colorutil.Simulate(base.Hex(), d)
				if err != nil {
					return err
				}
				sims[d] = sim
			}

			w := cmd.OutOrStdout()
			if a.settings.UI.Output == "json" || a.settings.UI.Output == "ndjson" {
				return output.WriteJSON(w, map[string]any{"color": base.Hex(), "simulations": sims})
			}
			opts := a.outputOptions(w, "")
			swatch := func(rgb colorutil.RGB) string {
				return termcolor.Apply(termcolor.Swatch(rgb, opts.Profile), "    ", opts.Color)
			}
			fmt.Fprintf(w, "%s %s %s\n", textutil.PadRight("original", 14), swatch(base), base.Hex())
			for _, d := range deficiencies {
				sim := colorutil.MustParseHex(sims[d])
				fmt.Fprintf(w, "%s %s %s\n", textutil.PadRight(string(d), 14), swatch(sim), sims[d])
			}
			return nil
		},
	}
	c.Flags().StringSliceVarP(&types, "type", "t", nil, "deuteranopia|protanopia|tritanopia|achromatopsia (default: all)")
	return c
}

func analyzeCmd(a *app, flags *flagLayer) *cobra.Command {
	c := &cobra.Command{
		Use:   "analyze <color...>",
		Short: "Audit colors for contrast and color vision deficiency collisions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := analysis.Analyze(args, a.settings.UI.Background)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			return output.Write(w, a.settings.UI.Output, report, a.outputOptions(w, ""))
		},
	}
	c.Flags().StringVar(&flags.background, "background", "", "background color (default #FFFFFF)")
	return c
}
