package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/phyten/palettex/internal/generator"
	"github.com/phyten/palettex/internal/server"
)

func serveCmd(a *app, flags *flagLayer) *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the palette API and web UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.settings
			ai := generator.NewAI(generator.AIConfig{
				APIKey:  s.AI.APIKey,
				BaseURL: s.AI.BaseURL,
				Model:   s.AI.Model,
				Timeout: s.AI.Timeout,
			})
			chain := &generator.Chain{Fallback: generator.Fallback{}, Logger: a.logger}
			if ai.Enabled() {
				chain.Primary = ai
			} else {
				a.logger.Warn("ai.disabled", "reason", "no API key; using the offline generator")
			}

			srv := server.New(server.Options{
				Addr:         s.Server.Addr,
				AllowOrigins: s.Server.AllowOrigins,
				Generator:    chain,
				AIEnabled:    ai.Enabled(),
				Background:   s.UI.Background,
				Logger:       a.logger,
				OnListen: func(addr net.Addr) {
					url := browserURL(addr)
					fmt.Fprintf(cmd.OutOrStdout(), "palettex listening on %s\n", url)
					if !s.Server.Open {
						return
					}
					if err := browser.OpenURL(url); err != nil {
						a.logger.Warn("browser.open.failed", "url", url, "err", err)
					}
				},
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}
	c.Flags().StringVar(&flags.addr, "addr", "", "listen address (default :8080)")
	c.Flags().BoolVar(&flags.open, "open", false, "open the web UI in a browser")
	c.Flags().StringSliceVar(&flags.origins, "allow-origin", nil, "CORS allowed origin (repeatable)")
	return c
}

// browserURL turns a listener address into something a browser can reach;
// wildcard hosts become localhost.
func browserURL(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "http://" + addr.String() + "/"
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}
