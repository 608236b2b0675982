// Package main provides the orderdesk CLI: the terminal client of the
// wholesale ordering platform. Retailers browse the catalog, manage a cart
// and place orders; wholesalers manage products, orders and the dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var application *app

func main() {
	rootCmd := &cobra.Command{
		Use:   "orderdesk",
		Short: "Wholesale ordering client",
		Long: `orderdesk: terminal client for the wholesale ordering platform.

Retailers:
  orderdesk login customer --phone +52...   Sign in with an SMS code
  orderdesk catalog                         Browse products
  orderdesk cart add <product-id>           Build an order
  orderdesk checkout                        Place it

Wholesalers:
  orderdesk login admin -e <email>          Sign in with email/password
  orderdesk admin products ls               Manage the catalog
  orderdesk admin dashboard                 KPI overview`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			application, err = newApp(cmd.Context())
			return err
		},
	}

	rootCmd.AddGroup(
		&cobra.Group{ID: "session", Title: "Session:"},
		&cobra.Group{ID: "shop", Title: "Shopping:"},
		&cobra.Group{ID: "admin", Title: "Administration:"},
	)

	for _, cmd := range []*cobra.Command{
		loginCmd(), logoutCmd(), whoamiCmd(),
		catalogCmd(), cartCmd(), checkoutCmd(), ordersCmd(),
		adminCmd(),
	} {
		rootCmd.AddCommand(cmd)
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errRedirected) {
			fmt.Fprintln(os.Stderr, renderError(err))
		}
		os.Exit(1)
	}
}
