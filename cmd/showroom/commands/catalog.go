package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"showroom/internal/catalog"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog utilities",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate <path>",
		Short: "Check a catalog file for errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Load(args[0])
			if err != nil {
				return err
			}
			variants := 0
			for _, p := range c.Products {
				variants += len(p.Variants)
			}
			fmt.Printf("ok: %d products, %d variants\n", len(c.Products), variants)
			return nil
		},
	})
	return cmd
}
