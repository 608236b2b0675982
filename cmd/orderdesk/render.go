package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/wholesalemart/orderdesk/internal/core/domain"
	"github.com/wholesalemart/orderdesk/internal/core/ports"
	"github.com/wholesalemart/orderdesk/internal/infrastructure/api"
)

// renderError maps internal errors to a one-line message for the terminal.
func renderError(err error) string {
	var apiErr *api.APIError
	switch {
	case errors.As(err, &apiErr):
		switch apiErr.Status {
		case http.StatusUnauthorized:
			return color.RedString("Authentication failed: %s", apiErr.Message)
		case http.StatusForbidden:
			return color.RedString("Not allowed: %s", apiErr.Message)
		case http.StatusNotFound:
			return color.RedString("Not found: %s", apiErr.Message)
		default:
			return color.RedString("Server error: %s", apiErr.Message)
		}
	case errors.Is(err, domain.ErrNotAuthenticated):
		return color.YellowString("You are not signed in. Run `orderdesk login` first.")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return color.RedString("Invalid credentials.")
	case errors.Is(err, domain.ErrInvalidQuantity):
		return color.RedString("Quantity must be a positive number.")
	case errors.Is(err, domain.ErrProductNotFound):
		return color.RedString("%s.", capitalize(err.Error()))
	case errors.Is(err, domain.ErrOrderInFlight):
		return color.YellowString("An order is already being submitted. Please wait.")
	case errors.Is(err, domain.ErrInvalidTransition):
		return color.RedString("%s.", capitalize(err.Error()))
	case errors.Is(err, api.ErrBadResponse):
		return color.RedString("The server returned an unexpected response. Try again later.")
	default:
		return color.RedString("Error: %v", err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func renderProducts(products []domain.Product) {
	if len(products) == 0 {
		color.Yellow("No products.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SKU\tNAME\tPRICE\tSTOCK\tSTATUS\tCATEGORY")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t$%.2f\t%d\t%s\t%s\n",
			p.SKU, p.Name, p.Price, p.Stock, p.Status, p.Category)
	}
	w.Flush()
}

func renderCart(lines domain.Cart, total float64, count int) {
	if len(lines) == 0 {
		color.Yellow("Your cart is empty.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SKU\tNAME\tUNIT\tQTY\tSUBTOTAL")
	for _, line := range lines {
		fmt.Fprintf(w, "%s\t%s\t$%.2f\t%d\t$%.2f\n",
			line.Product.SKU, line.Product.Name, line.Product.Price,
			line.Quantity, line.Product.Price*float64(line.Quantity))
	}
	w.Flush()
	fmt.Printf("%d item(s), total %s\n", count, color.GreenString("$%.2f", total))
}

func renderOrders(orders []domain.Order) {
	if len(orders) == 0 {
		color.Yellow("No orders yet.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tITEMS\tTOTAL\tSTATUS\tPLACED")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%d\t$%.2f\t%s\t%s\n",
			orderLabel(o), len(o.Items), o.Total, o.Status, o.CreatedAt)
	}
	w.Flush()
}

// orderLabel prefers the short human-readable number when the backend
// assigned one, falling back to the UUID.
func orderLabel(o domain.Order) string {
	if o.ReadableID != nil {
		return fmt.Sprintf("#%d", *o.ReadableID)
	}
	return o.ID
}

func renderDashboard(stats *ports.DashboardStats) {
	bold := color.New(color.Bold)
	bold.Println("Key metrics")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Total revenue\t$%.2f\n", stats.KPIs.TotalRevenue)
	fmt.Fprintf(w, "Pending orders\t%d\n", stats.KPIs.PendingOrders)
	fmt.Fprintf(w, "Active products\t%d\n", stats.KPIs.ActiveProducts)
	fmt.Fprintf(w, "Customers\t%d\n", stats.KPIs.TotalCustomers)
	fmt.Fprintf(w, "Low stock\t%d\n", stats.KPIs.LowStockCount)
	w.Flush()

	if len(stats.RecentOrders) > 0 {
		fmt.Println()
		bold.Println("Recent orders")
		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ORDER\tCUSTOMER\tTOTAL\tSTATUS\tPLACED")
		for _, o := range stats.RecentOrders {
			label := o.ID
			if o.ReadableID != nil {
				label = fmt.Sprintf("#%d", *o.ReadableID)
			}
			fmt.Fprintf(w, "%s\t%s\t$%.2f\t%s\t%s\n",
				label, o.Customer, o.Total, o.Status, o.CreatedAt)
		}
		w.Flush()
	}

	if len(stats.LowStockItems) > 0 {
		fmt.Println()
		bold.Println("Low stock")
		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSTOCK\tPRICE")
		for _, item := range stats.LowStockItems {
			fmt.Fprintf(w, "%s\t%d\t$%.2f\n", item.Name, item.Stock, item.Price)
		}
		w.Flush()
	}

	if len(stats.RevenueTrend) > 0 {
		fmt.Println()
		bold.Println("Revenue trend")
		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, point := range stats.RevenueTrend {
			fmt.Fprintf(w, "%s\t$%.2f\n", point.Date, point.Revenue)
		}
		w.Flush()
	}
}
