package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wholesalemart/orderdesk/internal/core/domain"
	"github.com/wholesalemart/orderdesk/internal/core/ports"
)

func testProduct(id string, price float64) domain.Product {
	return domain.Product{ID: id, SKU: "SKU-" + id, Name: "Product " + id, Price: price, Stock: 100, Status: domain.ProductActive}
}

func newTestCart(store ports.Store) *CartService {
	return NewCartService(store, NewSignals(), zerolog.Nop())
}

func TestCartService_AddAccumulatesSameProduct(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(newFakeStore())
	p := testProduct("p1", 10)

	for _, q := range []int{2, 3, 5} {
		if err := cart.Add(ctx, p, q); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected exactly one line, got %d", len(lines))
	}
	if lines[0].Quantity != 10 {
		t.Fatalf("expected accumulated quantity 10, got %d", lines[0].Quantity)
	}
}

func TestCartService_AddRejectsNonPositiveQuantity(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	cart := newTestCart(store)

	for _, q := range []int{0, -1} {
		if err := cart.Add(ctx, testProduct("p1", 10), q); err != domain.ErrInvalidQuantity {
			t.Fatalf("quantity %d: expected ErrInvalidQuantity, got %v", q, err)
		}
	}
	if len(cart.Lines()) != 0 {
		t.Fatalf("rejected adds must not create lines")
	}
	if store.sets != 0 {
		t.Fatalf("rejected adds must not persist")
	}
}

func TestCartService_AddPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(newFakeStore())

	for _, id := range []string{"a", "b", "c"} {
		if err := cart.Add(ctx, testProduct(id, 1), 1); err != nil {
			t.Fatalf("Add(%s): %v", id, err)
		}
	}
	// Bumping an existing line must not reorder.
	if err := cart.Add(ctx, testProduct("b", 1), 4); err != nil {
		t.Fatalf("Add(b): %v", err)
	}

	lines := cart.Lines()
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if lines[i].ProductID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, lines[i].ProductID)
		}
	}
	if lines[1].Quantity != 5 {
		t.Fatalf("expected b quantity 5, got %d", lines[1].Quantity)
	}
}

func TestCartService_UpdateQuantityAbsoluteSet(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(newFakeStore())
	_ = cart.Add(ctx, testProduct("p1", 10), 7)

	if err := cart.UpdateQuantity(ctx, "p1", 2); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if q := cart.Lines()[0].Quantity; q != 2 {
		t.Fatalf("expected quantity set to 2, got %d", q)
	}
}

func TestCartService_UpdateQuantityNonPositiveRemoves(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(newFakeStore())

	for _, q := range []int{0, -3} {
		_ = cart.Add(ctx, testProduct("p1", 10), 5)
		if err := cart.UpdateQuantity(ctx, "p1", q); err != nil {
			t.Fatalf("UpdateQuantity(%d): %v", q, err)
		}
		if cart.Lines().Find("p1") != -1 {
			t.Fatalf("UpdateQuantity(%d) should remove the line", q)
		}
	}
}

func TestCartService_UpdateQuantityAbsentNoOp(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	cart := newTestCart(store)
	_ = cart.Add(ctx, testProduct("p1", 10), 1)
	before := store.sets

	if err := cart.UpdateQuantity(ctx, "ghost", 4); err != nil {
		t.Fatalf("UpdateQuantity on absent product: %v", err)
	}
	if store.sets != before {
		t.Fatalf("no-op must not persist")
	}
}

func TestCartService_RemoveAbsentNoOp(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(newFakeStore())

	if err := cart.Remove(ctx, "ghost"); err != nil {
		t.Fatalf("Remove on absent product: %v", err)
	}
}

func TestCartService_EveryMutationPersists(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	cart := newTestCart(store)

	_ = cart.Add(ctx, testProduct("p1", 10), 1)
	_ = cart.Add(ctx, testProduct("p2", 20), 2)
	_ = cart.UpdateQuantity(ctx, "p1", 5)
	_ = cart.Remove(ctx, "p2")
	_ = cart.Clear(ctx)

	if store.sets != 5 {
		t.Fatalf("expected 5 persisted writes, got %d", store.sets)
	}
}

func TestCartService_DerivedValues(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(newFakeStore())
	_ = cart.Add(ctx, testProduct("p1", 10), 2)
	_ = cart.Add(ctx, testProduct("p2", 2.5), 4)

	if cart.Total() != 2*10+4*2.5 {
		t.Fatalf("unexpected total: %v", cart.Total())
	}
	if cart.Count() != 6 {
		t.Fatalf("unexpected count: %d", cart.Count())
	}
}

func TestCartService_RestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	cart := newTestCart(store)
	_ = cart.Add(ctx, testProduct("p1", 10), 2)
	_ = cart.Add(ctx, testProduct("p2", 20), 1)

	// Discard in-memory state, reload from the same store.
	reloaded := newTestCart(store)
	reloaded.Restore(ctx)

	got := reloaded.Lines()
	want := cart.Lines()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines after restore, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ProductID != want[i].ProductID || got[i].Quantity != want[i].Quantity {
			t.Fatalf("line %d differs after restore: %+v vs %+v", i, got[i], want[i])
		}
		if got[i].Product != want[i].Product {
			t.Fatalf("line %d snapshot differs after restore", i)
		}
	}
}

func TestCartService_RestoreCorruptResets(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.data[ports.KeyCart] = "{not json"

	cart := newTestCart(store)
	cart.Restore(ctx)

	if len(cart.Lines()) != 0 {
		t.Fatalf("corrupt cart must restore as empty")
	}
	if _, ok := store.data[ports.KeyCart]; ok {
		t.Fatalf("corrupt cart entry must be purged")
	}
}

func TestCartService_SessionEndedDropsCart(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	signals := NewSignals()
	cart := NewCartService(store, signals, zerolog.Nop())

	_ = cart.Add(ctx, testProduct("p1", 10), 1)
	_ = cart.Add(ctx, testProduct("p2", 20), 1)
	_ = cart.Add(ctx, testProduct("p3", 30), 1)

	signals.PublishSessionEnded(ctx)

	if len(cart.Lines()) != 0 {
		t.Fatalf("session end must empty the cart")
	}
	if _, ok := store.data[ports.KeyCart]; ok {
		t.Fatalf("session end must remove the persisted cart key")
	}
}

func TestCartService_PersistedShape(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	cart := newTestCart(store)
	_ = cart.Add(ctx, testProduct("p1", 10), 3)

	var lines []map[string]any
	if err := json.Unmarshal([]byte(store.data[ports.KeyCart]), &lines); err != nil {
		t.Fatalf("persisted cart is not valid JSON: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected one persisted line, got %d", len(lines))
	}
	if lines[0]["id"] != "p1" {
		t.Fatalf("persisted line id should carry the product id, got %v", lines[0]["id"])
	}
	if _, ok := lines[0]["product"].(map[string]any); !ok {
		t.Fatalf("persisted line must embed the product snapshot")
	}
}
