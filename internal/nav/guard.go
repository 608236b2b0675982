// Package nav holds the client-side route surface and the access guard that
// decides whether a protected view may render for the current session.
package nav

import "github.com/wholesalemart/orderdesk/internal/core/domain"

// Requirement is a route's declared access requirement.
type Requirement int

const (
	RequireNone Requirement = iota
	RequireAdmin
	RequireCustomer
)

// DecisionKind is the outcome class of a guard evaluation.
type DecisionKind int

const (
	// Pending renders a loading indicator: session restore has not finished,
	// so neither content nor a redirect may be produced yet.
	Pending DecisionKind = iota
	Render
	Redirect
)

// Decision is the guard's verdict; Target is set for Redirect only.
type Decision struct {
	Kind   DecisionKind
	Target string
}

func render() Decision            { return Decision{Kind: Render} }
func redirect(to string) Decision { return Decision{Kind: Redirect, Target: to} }

// Evaluate gates a protected view. Pure: a fixed (user, loading, requirement)
// triple always yields the same decision. Rules are checked in priority
// order, first match wins. Wrong-role users are bounced to the other role's
// home route rather than a generic forbidden page; that cross-redirect is a
// deliberate product choice.
func Evaluate(user *domain.User, loading bool, req Requirement) Decision {
	if loading {
		return Decision{Kind: Pending}
	}
	if user == nil {
		return redirect(RouteLanding)
	}
	if req == RequireAdmin && !user.IsAdmin() {
		return redirect(RouteCustomerCatalog)
	}
	if req == RequireCustomer && !user.IsCustomer() {
		return redirect(RouteAdminProducts)
	}
	return render()
}
