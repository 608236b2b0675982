package main

import (
	"github.com/spf13/cobra"

	"github.com/wholesalemart/orderdesk/internal/nav"
)

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "catalog",
		Short:   "Browse the product catalog",
		GroupID: "shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.guard(nav.RouteCustomerCatalog); err != nil {
				return err
			}

			products, err := application.gateway.PublicCatalog(cmd.Context())
			if err != nil {
				return err
			}
			renderProducts(products)
			return nil
		},
	}
}
