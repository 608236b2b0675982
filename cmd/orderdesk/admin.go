package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wholesalemart/orderdesk/internal/core/domain"
	"github.com/wholesalemart/orderdesk/internal/core/ports"
	"github.com/wholesalemart/orderdesk/internal/nav"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "admin",
		Short:   "Wholesaler administration",
		GroupID: "admin",
	}
	cmd.AddCommand(adminDashboardCmd(), adminProductsCmd(), adminOrdersCmd())
	return cmd
}

func adminDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "KPI overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.guard(nav.RouteAdminDashboard); err != nil {
				return err
			}
			stats, err := application.gateway.Stats(cmd.Context())
			if err != nil {
				return err
			}
			renderDashboard(stats)
			return nil
		},
	}
}

func adminProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage the catalog",
	}
	cmd.AddCommand(
		adminProductListCmd(),
		adminProductAddCmd(),
		adminProductUpdateCmd(),
		adminProductRemoveCmd(),
		adminProductStatusCmd(),
	)
	return cmd
}

func adminProductListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List all products, active or not",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.guard(nav.RouteAdminProducts); err != nil {
				return err
			}
			products, err := application.gateway.AdminCatalog(cmd.Context())
			if err != nil {
				return err
			}
			renderProducts(products)
			return nil
		},
	}
}

func adminProductAddCmd() *cobra.Command {
	var input ports.ProductInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.guard(nav.RouteAdminProducts); err != nil {
				return err
			}
			product, err := application.gateway.CreateProduct(cmd.Context(), input)
			if err != nil {
				return err
			}
			color.Green("Created %s (%s).", product.Name, product.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.SKU, "sku", "", "Stock keeping unit")
	cmd.Flags().StringVar(&input.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&input.Description, "description", "", "Description")
	cmd.Flags().Float64Var(&input.Price, "price", 0, "Unit price")
	cmd.Flags().IntVar(&input.Stock, "stock", 0, "Units in stock")
	cmd.Flags().StringVar(&input.Status, "status", domain.ProductActive, "active or inactive")
	cmd.Flags().StringVar(&input.Category, "category", "", "Category")
	_ = cmd.MarkFlagRequired("sku")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func adminProductUpdateCmd() *cobra.Command {
	var (
		name, description, status, category string
		price                               float64
		stock                               int
	)
	cmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Update product fields (only provided flags change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.guard(nav.RouteAdminProducts); err != nil {
				return err
			}

			var update ports.ProductUpdate
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("description") {
				update.Description = &description
			}
			if cmd.Flags().Changed("price") {
				update.Price = &price
			}
			if cmd.Flags().Changed("stock") {
				update.Stock = &stock
			}
			if cmd.Flags().Changed("status") {
				update.Status = &status
			}
			if cmd.Flags().Changed("category") {
				update.Category = &category
			}

			product, err := application.gateway.UpdateProduct(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}
			color.Green("Updated %s.", product.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().Float64Var(&price, "price", 0, "Unit price")
	cmd.Flags().IntVar(&stock, "stock", 0, "Units in stock")
	cmd.Flags().StringVar(&status, "status", "", "active or inactive")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	return cmd
}

func adminProductRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <product-id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.guard(nav.RouteAdminProducts); err != nil {
				return err
			}
			if err := application.gateway.DeleteProduct(cmd.Context(), args[0]); err != nil {
				return err
			}
			color.Green("Deleted %s.", args[0])
			return nil
		},
	}
}

func adminProductStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <product-id> <active|inactive>",
		Short: "Toggle storefront visibility",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.guard(nav.RouteAdminProducts); err != nil {
				return err
			}
			product, err := application.gateway.SetProductStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			color.Green("%s is now %s.", product.Name, product.Status)
			return nil
		},
	}
}

func adminOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage orders",
	}
	cmd.AddCommand(adminOrderListCmd(), adminOrderStatusCmd())
	return cmd
}

func adminOrderListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List all orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.guard(nav.RouteAdminOrders); err != nil {
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

func adminOrderStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Advance an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.guard(nav.RouteAdminOrders); err != nil {
				return err
			}
			ctx := cmd.Context()
			target := domain.OrderStatus(args[1])

			// Fail fast on impossible transitions; the server still has the
			// final say.
			orders, err := application.gateway.Orders(ctx)
			if err != nil {
				return err
			}
			for _, o := range orders {
				if o.ID == args[0] {
					if !o.Status.CanTransitionTo(target) {
						return fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, o.Status, target)
					}
					break
				}
			}

			order, err := application.gateway.SetOrderStatus(ctx, args[0], target)
			if err != nil {
				return err
			}
			color.Green("Order %s is now %s.", orderLabel(*order), order.Status)
			return nil
		},
	}
}
