package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/wholesalemart/orderdesk/internal/core/domain"
	"github.com/wholesalemart/orderdesk/internal/core/ports"
	"github.com/wholesalemart/orderdesk/internal/metrics"
)

// Routes the session service navigates to as a side effect of state changes.
const (
	adminHome    = "/admin/products"
	customerHome = "/customer/catalog"
	rootRoute    = "/"
)

// SessionService owns the authenticated-user identity, backed by the durable
// store so a restart does not log the user out.
type SessionService struct {
	store   ports.Store
	nav     ports.Navigator
	signals *Signals
	logger  zerolog.Logger

	user    *domain.User
	token   string
	loading bool
}

var _ ports.SessionService = (*SessionService)(nil)

func NewSessionService(store ports.Store, nav ports.Navigator, signals *Signals, logger zerolog.Logger) *SessionService {
	return &SessionService{
		store:   store,
		nav:     nav,
		signals: signals,
		logger:  logger,
		loading: true,
	}
}

// Initialize restores a persisted (user, token) pair. Partial pairs, corrupt
// user JSON and expired tokens all degrade to logged-out: the offending keys
// are purged and the failure is logged, never returned. Always terminates
// with Loading() == false.
func (s *SessionService) Initialize(ctx context.Context) {
	defer func() { s.loading = false }()

	rawUser, hasUser, err := s.store.Get(ctx, ports.KeyUser)
	if err != nil {
		s.logger.Error().Err(err).Msg("session: reading persisted user failed")
		return
	}
	token, hasToken, err := s.store.Get(ctx, ports.KeyToken)
	if err != nil {
		s.logger.Error().Err(err).Msg("session: reading persisted token failed")
		return
	}

	if !hasUser || !hasToken {
		// Never leave an inconsistent half-session behind.
		if hasUser != hasToken {
			s.purge(ctx, "partial persisted session")
		}
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.logger.Error().Err(err).Msg("session: persisted user data is corrupt")
		s.purge(ctx, "corrupt persisted session")
		return
	}

	if tokenExpired(token, time.Now()) {
		s.purge(ctx, "persisted token expired")
		return
	}

	s.user = &user
	s.token = token
	metrics.SessionEventsTotal.WithLabelValues("restored").Inc()
	s.logger.Debug().Str("role", user.Role).Msg("session restored")
}

// Login persists user and token, sets the in-memory session and navigates to
// the role's home route. This is the only operation that changes the visible
// route as a consequence of state change besides Logout.
func (s *SessionService) Login(ctx context.Context, user domain.User, token string) error {
	user.Token = token

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: serializing user: %w", err)
	}
	if err := s.store.Set(ctx, ports.KeyUser, string(raw)); err != nil {
		return fmt.Errorf("session: persisting user: %w", err)
	}
	if err := s.store.Set(ctx, ports.KeyToken, token); err != nil {
		// Roll the user key back so a half-session never reaches disk.
		if derr := s.store.Delete(ctx, ports.KeyUser, ports.KeyToken); derr != nil {
			s.logger.Error().Err(derr).Msg("session: rolling back partial login failed")
		}
		return fmt.Errorf("session: persisting token: %w", err)
	}

	s.user = &user
	s.token = token
	metrics.SessionEventsTotal.WithLabelValues("login").Inc()
	s.logger.Info().Str("role", user.Role).Msg("logged in")

	if user.Role == domain.RoleAdmin {
		s.nav.NavigateTo(adminHome)
	} else {
		s.nav.NavigateTo(customerHome)
	}
	return nil
}

// Logout purges the persisted session, publishes session-ended (the cart
// service reacts by clearing its own key) and navigates to the root route.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, ports.KeyUser, ports.KeyToken); err != nil {
		return fmt.Errorf("session: purging persisted session: %w", err)
	}

	s.user = nil
	s.token = ""
	metrics.SessionEventsTotal.WithLabelValues("logout").Inc()
	s.logger.Info().Msg("logged out")

	s.signals.PublishSessionEnded(ctx)
	s.nav.NavigateTo(rootRoute)
	return nil
}

func (s *SessionService) Current() *domain.User { return s.user }
func (s *SessionService) Token() string        { return s.token }
func (s *SessionService) Loading() bool        { return s.loading }
func (s *SessionService) IsAdmin() bool        { return s.user.IsAdmin() }
func (s *SessionService) IsCustomer() bool     { return s.user.IsCustomer() }

func (s *SessionService) purge(ctx context.Context, reason string) {
	if err := s.store.Delete(ctx, ports.KeyUser, ports.KeyToken); err != nil {
		s.logger.Error().Err(err).Msg("session: purging persisted session failed")
		return
	}
	metrics.SessionEventsTotal.WithLabelValues("purged").Inc()
	s.logger.Warn().Str("reason", reason).Msg("session discarded")
}

// tokenExpired reports whether token is a JWT whose exp claim is in the past.
// The credential is treated as opaque: anything that does not parse as a JWT,
// or carries no exp claim, is assumed still valid and left to the server to
// reject.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
