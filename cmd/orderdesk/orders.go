package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wholesalemart/orderdesk/internal/core/ports"
	"github.com/wholesalemart/orderdesk/internal/nav"
)

func checkoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "checkout",
		Short:   "Place an order for the cart's contents",
		GroupID: "shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.guard(nav.RouteCustomerCheckout); err != nil {
				return err
			}
			ctx := cmd.Context()

			lines := application.cart.Lines()
			if len(lines) == 0 {
				color.Yellow("Your cart is empty.")
				return nil
			}

			items := make([]ports.OrderItemInput, len(lines))
			for i, line := range lines {
				items[i] = ports.OrderItemInput{ProductID: line.ProductID, Quantity: line.Quantity}
			}

			order, err := application.gateway.PlaceOrder(ctx, items)
			if err != nil {
				return err
			}

			// The order is the server's now; the local working copy is done.
			if err := application.cart.Clear(ctx); err != nil {
				return err
			}
			color.Green("Order placed: %s ($%.2f).", orderLabel(*order), order.Total)
			application.nav.NavigateTo(nav.RouteCustomerOrders)
			return nil
		},
	}
}

func ordersCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "orders",
		Short:   "Track your orders",
		GroupID: "shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.guard(nav.RouteCustomerOrders); err != nil {
				return err
			}
			orders, err := application.gateway.Orders(cmd.Context())
			if err != nil {
				return err
			}
			renderOrders(orders)
			return nil
		},
	}
}
