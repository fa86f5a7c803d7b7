package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/phyten/palettex/internal/analysis"
	"github.com/phyten/palettex/internal/output"
	"github.com/phyten/palettex/internal/palette"
)

type generateResult struct {
	Palette  *palette.Response `json:"palette"`
	Analysis analysis.Report   `json:"analysis"`
}

func generateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <prompt...>",
		Short: "Ask the palette API for a palette and audit it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			res, err := a.client().GeneratePalette(cmd.Context(), prompt)
			if err != nil {
				return err
			}
			report, err := analysis.Analyze(res.Colors, a.settings.UI.Background)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if a.settings.UI.Output == "json" {
				return output.WriteJSON(w, generateResult{Palette: res, Analysis: report})
			}
			return output.Write(w, a.settings.UI.Output, report, a.outputOptions(w, res.Description))
		},
	}
}

func healthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the palette API is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.client().Health(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch a.settings.UI.Output {
			case "json", "ndjson":
				if err := output.WriteJSON(w, status); err != nil {
					return err
				}
			default:
				ai := "offline generator"
				if status.AI {
					ai = "AI enabled"
				}
				fmt.Fprintf(w, "%s: %s (%s, %s)\n", a.settings.Client.BaseURL, status.Status, ai,
					time.Unix(status.Time, 0).UTC().Format(time.RFC3339))
			}
			if !status.OK() {
				return fmt.Errorf("palette api reported status %q", status.Status)
			}
			return nil
		},
	}
}
