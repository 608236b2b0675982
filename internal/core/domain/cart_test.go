package domain

import "testing"

func sampleCart() Cart {
	return Cart{
		{ProductID: "p1", Product: Product{ID: "p1", Name: "Rice 25kg", Price: 30}, Quantity: 2},
		{ProductID: "p2", Product: Product{ID: "p2", Name: "Flour 10kg", Price: 12.5}, Quantity: 4},
	}
}

func TestCart_TotalAndCount(t *testing.T) {
	cart := sampleCart()

	if got := cart.Total(); got != 2*30+4*12.5 {
		t.Fatalf("unexpected total: %v", got)
	}
	if got := cart.Count(); got != 6 {
		t.Fatalf("unexpected count: %d", got)
	}
}

func TestCart_DerivedValuesRecompute(t *testing.T) {
	cart := sampleCart()
	_ = cart.Total()
	_ = cart.Count()

	// Mutate lines directly; the derived values must follow immediately.
	cart[0].Quantity = 10
	cart[1].Product.Price = 20

	if got := cart.Total(); got != 10*30+4*20 {
		t.Fatalf("total did not recompute: %v", got)
	}
	if got := cart.Count(); got != 14 {
		t.Fatalf("count did not recompute: %d", got)
	}
}

func TestCart_Find(t *testing.T) {
	cart := sampleCart()

	if i := cart.Find("p2"); i != 1 {
		t.Fatalf("expected index 1, got %d", i)
	}
	if i := cart.Find("missing"); i != -1 {
		t.Fatalf("expected -1 for absent product, got %d", i)
	}
}

func TestCart_EmptyDerivedValues(t *testing.T) {
	var cart Cart
	if cart.Total() != 0 || cart.Count() != 0 {
		t.Fatalf("empty cart should derive zero total and count")
	}
}
