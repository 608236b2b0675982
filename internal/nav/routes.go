package nav

import "github.com/wholesalemart/orderdesk/internal/core/domain"

// Client-side route paths.
const (
	RouteLanding       = "/"
	RouteAdminLogin    = "/admin/login"
	RouteCustomerLogin = "/customer/login"

	RouteAdminDashboard = "/admin/dashboard"
	RouteAdminProducts  = "/admin/products"
	RouteAdminOrders    = "/admin/orders"

	RouteCustomerCatalog  = "/customer/catalog"
	RouteCustomerCart     = "/customer/cart"
	RouteCustomerCheckout = "/customer/checkout"
	RouteCustomerOrders   = "/customer/orders"
)

// Route binds a path to its access requirement. Unprotected routes bypass
// the guard entirely; a protected route with RequireNone still demands a
// session, just no particular role.
type Route struct {
	Path        string
	Requirement Requirement
	Protected   bool
}

var routes = map[string]Route{
	RouteLanding:       {Path: RouteLanding},
	RouteAdminLogin:    {Path: RouteAdminLogin},
	RouteCustomerLogin: {Path: RouteCustomerLogin},

	RouteAdminDashboard: {Path: RouteAdminDashboard, Requirement: RequireAdmin, Protected: true},
	RouteAdminProducts:  {Path: RouteAdminProducts, Requirement: RequireAdmin, Protected: true},
	RouteAdminOrders:    {Path: RouteAdminOrders, Requirement: RequireAdmin, Protected: true},

	RouteCustomerCatalog:  {Path: RouteCustomerCatalog, Requirement: RequireCustomer, Protected: true},
	RouteCustomerCart:     {Path: RouteCustomerCart, Requirement: RequireCustomer, Protected: true},
	RouteCustomerCheckout: {Path: RouteCustomerCheckout, Requirement: RequireCustomer, Protected: true},
	RouteCustomerOrders:   {Path: RouteCustomerOrders, Requirement: RequireCustomer, Protected: true},
}

// Match resolves a path against the route table.
func Match(path string) (Route, bool) {
	r, ok := routes[path]
	return r, ok
}

// Guard combines route matching and access evaluation: unmatched paths
// redirect to the landing route, unprotected routes always render, and
// protected routes are gated by Evaluate.
func Guard(user *domain.User, loading bool, path string) Decision {
	route, ok := Match(path)
	if !ok {
		return redirect(RouteLanding)
	}
	if !route.Protected {
		return render()
	}
	return Evaluate(user, loading, route.Requirement)
}
