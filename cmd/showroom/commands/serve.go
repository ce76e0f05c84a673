package commands

import (
	"html/template"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"showroom/internal/catalog"
	"showroom/internal/config"
	"showroom/internal/handoff"
	"showroom/internal/session"
	"showroom/internal/web"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the showroom",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			cat, err := catalog.Load(cfg.CatalogPath)
			if err != nil {
				return err
			}

			tmpl := template.Must(template.ParseFiles(
				"templates/layout.html",
				"templates/viewer.html",
				"templates/payment.html",
				"templates/qr_overlay.html",
				"templates/notice.html",
			))

			srv := web.NewServer(cat, session.NewMemoryStore[*handoff.Negotiator](), tmpl, cfg)

			if cfg.WatchCatalog {
				w, err := catalog.Watch(cfg.CatalogPath, func(c *catalog.Catalog) {
					log.Printf("catalog reloaded: %d products", len(c.Products))
					srv.SetCatalog(c)
				})
				if err != nil {
					return err
				}
				defer w.Close()
			}

			log.Printf("listening on %s", cfg.Addr)
			return http.ListenAndServe(cfg.Addr, srv.Routes())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
