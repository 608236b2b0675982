package nav

import (
	"testing"

	"github.com/wholesalemart/orderdesk/internal/core/domain"
)

func admin() *domain.User {
	return &domain.User{ID: "1", Name: "Admin User", Role: domain.RoleAdmin}
}

func customer() *domain.User {
	return &domain.User{ID: "2", Name: "Retail Partner", Role: domain.RoleCustomer}
}

func TestEvaluate_DecisionTable(t *testing.T) {
	cases := []struct {
		name    string
		user    *domain.User
		loading bool
		req     Requirement
		want    Decision
	}{
		{"loading wins over everything", nil, true, RequireAdmin, Decision{Kind: Pending}},
		{"loading even with session", admin(), true, RequireAdmin, Decision{Kind: Pending}},
		{"no session redirects to landing", nil, false, RequireAdmin, Decision{Kind: Redirect, Target: "/"}},
		{"no session redirects even for open routes", nil, false, RequireNone, Decision{Kind: Redirect, Target: "/"}},
		{"customer on admin route bounces to customer home", customer(), false, RequireAdmin, Decision{Kind: Redirect, Target: "/customer/catalog"}},
		{"admin on customer route bounces to admin home", admin(), false, RequireCustomer, Decision{Kind: Redirect, Target: "/admin/products"}},
		{"admin renders admin route", admin(), false, RequireAdmin, Decision{Kind: Render}},
		{"customer renders customer route", customer(), false, RequireCustomer, Decision{Kind: Render}},
		{"any session renders unrequired route", customer(), false, RequireNone, Decision{Kind: Render}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Evaluate(c.user, c.loading, c.req); got != c.want {
				t.Fatalf("got %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	user := customer()
	first := Evaluate(user, false, RequireAdmin)
	for i := 0; i < 10; i++ {
		if got := Evaluate(user, false, RequireAdmin); got != first {
			t.Fatalf("evaluation %d differs: %+v vs %+v", i, got, first)
		}
	}
}
