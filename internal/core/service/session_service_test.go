package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/wholesalemart/orderdesk/internal/core/domain"
	"github.com/wholesalemart/orderdesk/internal/core/ports"
)

type fakeNavigator struct {
	paths []string
}

func (n *fakeNavigator) NavigateTo(path string) {
	n.paths = append(n.paths, path)
}

func (n *fakeNavigator) last() string {
	if len(n.paths) == 0 {
		return ""
	}
	return n.paths[len(n.paths)-1]
}

func adminUser() domain.User {
	return domain.User{ID: "1", Email: "ops@wholesalemart.com", Name: "Admin User", Role: domain.RoleAdmin}
}

func customerUser() domain.User {
	return domain.User{ID: "2", Name: "Retail Partner", Phone: "+526641234567", Role: domain.RoleCustomer}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "2",
		"role": domain.RoleCustomer,
		"exp":  exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func newTestSession(store ports.Store, nav ports.Navigator) *SessionService {
	return NewSessionService(store, nav, NewSignals(), zerolog.Nop())
}

func TestSessionService_LoadingClearsAfterInitialize(t *testing.T) {
	sess := newTestSession(newFakeStore(), &fakeNavigator{})

	if !sess.Loading() {
		t.Fatalf("session must report loading before Initialize")
	}
	sess.Initialize(context.Background())
	if sess.Loading() {
		t.Fatalf("Initialize must terminate with loading false")
	}
}

func TestSessionService_InitializeRestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	user := customerUser()
	raw, _ := json.Marshal(user)
	store.data[ports.KeyUser] = string(raw)
	store.data[ports.KeyToken] = "opaque-token"

	sess := newTestSession(store, &fakeNavigator{})
	sess.Initialize(ctx)

	got := sess.Current()
	if got == nil || got.ID != user.ID || got.Phone != user.Phone {
		t.Fatalf("unexpected restored user: %+v", got)
	}
	if sess.Token() != "opaque-token" {
		t.Fatalf("unexpected restored token: %q", sess.Token())
	}
	if !sess.IsCustomer() || sess.IsAdmin() {
		t.Fatalf("role flags wrong after restore")
	}
}

func TestSessionService_InitializePurgesPartialSession(t *testing.T) {
	cases := map[string]map[string]string{
		"only user":  {ports.KeyUser: `{"id":"1","name":"x","role":"admin"}`},
		"only token": {ports.KeyToken: "tok"},
	}

	for name, data := range cases {
		store := newFakeStore()
		for k, v := range data {
			store.data[k] = v
		}

		sess := newTestSession(store, &fakeNavigator{})
		sess.Initialize(context.Background())

		if sess.Current() != nil {
			t.Fatalf("%s: expected logged-out state", name)
		}
		if _, ok := store.data[ports.KeyUser]; ok {
			t.Fatalf("%s: user key must be purged", name)
		}
		if _, ok := store.data[ports.KeyToken]; ok {
			t.Fatalf("%s: token key must be purged", name)
		}
	}
}

func TestSessionService_InitializeCorruptUserDegrades(t *testing.T) {
	store := newFakeStore()
	store.data[ports.KeyUser] = "{broken"
	store.data[ports.KeyToken] = "tok"

	sess := newTestSession(store, &fakeNavigator{})
	sess.Initialize(context.Background())

	if sess.Current() != nil || sess.Token() != "" {
		t.Fatalf("corrupt user data must degrade to logged-out")
	}
	if len(store.data) != 0 {
		t.Fatalf("corrupt session must be purged, store still has %v", store.data)
	}
	if sess.Loading() {
		t.Fatalf("loading must be false even after degraded restore")
	}
}

func TestSessionService_InitializeExpiredTokenPurges(t *testing.T) {
	store := newFakeStore()
	raw, _ := json.Marshal(customerUser())
	store.data[ports.KeyUser] = string(raw)
	store.data[ports.KeyToken] = signedToken(t, time.Now().Add(-time.Hour))

	sess := newTestSession(store, &fakeNavigator{})
	sess.Initialize(context.Background())

	if sess.Current() != nil {
		t.Fatalf("expired token must not restore a session")
	}
	if len(store.data) != 0 {
		t.Fatalf("expired session must be purged")
	}
}

func TestSessionService_InitializeOpaqueTokenAccepted(t *testing.T) {
	// Non-JWT credentials carry no client-readable expiry; the server stays
	// the authority on their validity.
	store := newFakeStore()
	raw, _ := json.Marshal(adminUser())
	store.data[ports.KeyUser] = string(raw)
	store.data[ports.KeyToken] = "not-a-jwt"

	sess := newTestSession(store, &fakeNavigator{})
	sess.Initialize(context.Background())

	if sess.Current() == nil {
		t.Fatalf("opaque token must restore the session")
	}
}

func TestSessionService_LoginAdminNavigatesToProducts(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	nav := &fakeNavigator{}
	sess := newTestSession(store, nav)

	if err := sess.Login(ctx, adminUser(), "tok-admin"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if nav.last() != "/admin/products" {
		t.Fatalf("admin login must navigate to /admin/products, got %q", nav.last())
	}
	if store.data[ports.KeyToken] != "tok-admin" {
		t.Fatalf("token not persisted")
	}
	var persisted domain.User
	if err := json.Unmarshal([]byte(store.data[ports.KeyUser]), &persisted); err != nil {
		t.Fatalf("persisted user is not valid JSON: %v", err)
	}
	if persisted.Role != domain.RoleAdmin || persisted.Token != "tok-admin" {
		t.Fatalf("unexpected persisted user: %+v", persisted)
	}
	if !sess.IsAdmin() {
		t.Fatalf("IsAdmin must be true after admin login")
	}
}

func TestSessionService_LoginCustomerNavigatesToCatalog(t *testing.T) {
	nav := &fakeNavigator{}
	sess := newTestSession(newFakeStore(), nav)

	if err := sess.Login(context.Background(), customerUser(), "tok-cust"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if nav.last() != "/customer/catalog" {
		t.Fatalf("customer login must navigate to /customer/catalog, got %q", nav.last())
	}
	if !sess.IsCustomer() {
		t.Fatalf("IsCustomer must be true after customer login")
	}
}

func TestSessionService_LoginPersistFailureKeepsLoggedOut(t *testing.T) {
	store := newFakeStore()
	store.failAll = true
	sess := newTestSession(store, &fakeNavigator{})

	if err := sess.Login(context.Background(), adminUser(), "tok"); err == nil {
		t.Fatalf("expected error when persistence fails")
	}
	if sess.Current() != nil {
		t.Fatalf("failed login must not set a session")
	}
}

func TestSessionService_LoginTokenPersistFailureLeavesNoHalfSession(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.failKey = ports.KeyToken
	sess := newTestSession(store, &fakeNavigator{})

	if err := sess.Login(ctx, customerUser(), "tok"); err == nil {
		t.Fatalf("expected error when token persistence fails")
	}
	if _, ok := store.data[ports.KeyUser]; ok {
		t.Fatalf("user key must be rolled back when the token write fails")
	}
	if sess.Current() != nil || sess.Token() != "" {
		t.Fatalf("failed login must not set a session")
	}

	// A restart must see a clean logged-out state, not a purge of leftovers.
	store.failKey = ""
	sess2 := newTestSession(store, &fakeNavigator{})
	sess2.Initialize(ctx)
	if sess2.Current() != nil {
		t.Fatalf("no session should survive a failed login")
	}
}

func TestSessionService_LogoutPurgesEverything(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	nav := &fakeNavigator{}
	signals := NewSignals()
	sess := NewSessionService(store, nav, signals, zerolog.Nop())
	cart := NewCartService(store, signals, zerolog.Nop())

	_ = sess.Login(ctx, customerUser(), "tok")
	_ = cart.Add(ctx, testProduct("p1", 10), 1)
	_ = cart.Add(ctx, testProduct("p2", 20), 1)
	_ = cart.Add(ctx, testProduct("p3", 30), 1)

	if err := sess.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	for _, key := range []string{ports.KeyUser, ports.KeyToken, ports.KeyCart} {
		if _, ok := store.data[key]; ok {
			t.Fatalf("key %q must be removed on logout", key)
		}
	}
	if sess.Current() != nil || sess.Token() != "" {
		t.Fatalf("logout must clear the in-memory session")
	}
	if len(cart.Lines()) != 0 {
		t.Fatalf("logout must clear the cart via session-ended")
	}
	if nav.last() != "/" {
		t.Fatalf("logout must navigate to /, got %q", nav.last())
	}

	// A fresh restart sees neither session nor cart.
	sess2 := newTestSession(store, &fakeNavigator{})
	sess2.Initialize(ctx)
	cart2 := newTestCart(store)
	cart2.Restore(ctx)
	if sess2.Current() != nil || len(cart2.Lines()) != 0 {
		t.Fatalf("state must stay empty after restart")
	}
}

func TestSessionService_RoleFlagsWhenLoggedOut(t *testing.T) {
	sess := newTestSession(newFakeStore(), &fakeNavigator{})
	sess.Initialize(context.Background())

	if sess.IsAdmin() || sess.IsCustomer() {
		t.Fatalf("logged-out session must derive no role flags")
	}
}
