package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wholesalemart/orderdesk/internal/core/domain"
	"github.com/wholesalemart/orderdesk/internal/nav"
)

func cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cart",
		Short:   "Manage the shopping cart",
		GroupID: "shop",
	}
	cmd.AddCommand(cartAddCmd(), cartListCmd(), cartSetCmd(), cartRemoveCmd(), cartClearCmd())
	return cmd
}

func cartAddCmd() *cobra.Command {
	var quantity int
	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.guard(nav.RouteCustomerCatalog); err != nil {
				return err
			}
			ctx := cmd.Context()

			// Snapshot the product from the live catalog; the cart keeps
			// this copy even if the catalog changes afterwards.
			products, err := application.gateway.PublicCatalog(ctx)
			if err != nil {
				return err
			}
			for _, p := range products {
				if p.ID == args[0] || p.SKU == args[0] {
					if err := application.cart.Add(ctx, p, quantity); err != nil {
						return err
					}
					color.Green("Added %d × %s. Cart: %d items, $%.2f.",
						quantity, p.Name, application.cart.Count(), application.cart.Total())
					return nil
				}
			}
			return fmt.Errorf("%w: %q", domain.ErrProductNotFound, args[0])
		},
	}
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "Units to add")
	return cmd
}

func cartListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"show"},
		Short:   "Show the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.guard(nav.RouteCustomerCart); err != nil {
				return err
			}
			renderCart(application.cart.Lines(), application.cart.Total(), application.cart.Count())
			return nil
		},
	}
}

func cartSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <product-id> <quantity>",
		Short: "Set a line's quantity (0 removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.guard(nav.RouteCustomerCart); err != nil {
				return err
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity must be a number: %q", args[1])
			}
			if err := application.cart.UpdateQuantity(cmd.Context(), args[0], quantity); err != nil {
				return err
			}
			renderCart(application.cart.Lines(), application.cart.Total(), application.cart.Count())
			return nil
		},
	}
}

func cartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <product-id>",
		Aliases: []string{"remove"},
		Short:   "Remove a line from the cart",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.guard(nav.RouteCustomerCart); err != nil {
				return err
			}
			if err := application.cart.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			renderCart(application.cart.Lines(), application.cart.Total(), application.cart.Count())
			return nil
		},
	}
}

func cartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.guard(nav.RouteCustomerCart); err != nil {
				return err
			}
			if err := application.cart.Clear(cmd.Context()); err != nil {
				return err
			}
			color.Green("Cart cleared.")
			return nil
		},
	}
}
