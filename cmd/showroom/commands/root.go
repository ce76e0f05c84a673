// Package commands holds the showroom CLI: serving the demo and linting
// catalog files.
package commands

import (
	"github.com/spf13/cobra"
)

var configPath string

func Execute() error {
	root := &cobra.Command{
		Use:   "showroom",
		Short: "Furniture 3D/AR showroom demo server",
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file (optional)")

	root.AddCommand(serveCmd(), catalogCmd())
	return root.Execute()
}
