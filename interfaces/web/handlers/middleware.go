package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"hostpro/application"
	"hostpro/domain/navigation"
	"hostpro/logging"
)

// ClientCookieName holds the opaque id that ties a browser to its AppContext.
const ClientCookieName = "hostpro_client"

const clientCookieMaxAge = 365 * 24 * time.Hour

// ClientResolver returns the AppContext for a client id.
type ClientResolver interface {
	Resolve(ctx context.Context, clientID string, systemPrefersDark bool) (*application.AppContext, error)
}

// ClientMiddleware attaches the requesting client's AppContext to each request
// and guards the protected views.
type ClientMiddleware struct {
	registry     ClientResolver
	cookieSecure bool
	logger       *logging.Logger
}

// NewClientMiddleware creates the client middleware.
func NewClientMiddleware(registry ClientResolver, cookieSecure bool) *ClientMiddleware {
	return &ClientMiddleware{
		registry:     registry,
		cookieSecure: cookieSecure,
		logger:       logging.Default().WithComponent("client_middleware"),
	}
}

// Identify reads or issues the client cookie and resolves the AppContext.
// The Sec-CH-Prefers-Color-Scheme hint seeds the theme of new clients.
func (m *ClientMiddleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", "Sec-CH-Prefers-Color-Scheme")
		w.Header().Add("Vary", "Sec-CH-Prefers-Color-Scheme")

		clientID := ""
		if c, err := r.Cookie(ClientCookieName); err == nil {
			if _, perr := uuid.Parse(c.Value); perr == nil {
				clientID = c.Value
			}
		}
		if clientID == "" {
			clientID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     ClientCookieName,
				Value:    clientID,
				Path:     "/",
				MaxAge:   int(clientCookieMaxAge.Seconds()),
				HttpOnly: true,
				Secure:   m.cookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
			m.logger.Client("Issued client cookie", clientID)
		}

		prefersDark := r.Header.Get("Sec-CH-Prefers-Color-Scheme") == "dark"
		ac, err := m.registry.Resolve(r.Context(), clientID, prefersDark)
		if err != nil {
			m.logger.ClientError("Failed to resolve client context", err, clientID, slog.String("path", r.URL.Path))
			http.Error(w, "Service unavailable", http.StatusServiceUnavailable)
			return
		}

		next.ServeHTTP(w, r.WithContext(application.WithAppContext(r.Context(), ac)))
	})
}

// RequireAuth redirects unauthenticated clients away from protected views,
// carrying the requested path so login can return to it.
func (m *ClientMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, ok := navigation.ForPath(r.URL.Path)
		if !ok || !view.Protected {
			next.ServeHTTP(w, r)
			return
		}

		ac, ok := application.FromContext(r.Context())
		authenticated := ok && ac.Session.IsAuthenticated()

		decision := application.Guard(authenticated, view)
		if decision.Redirect {
			clientID := ""
			if ok {
				clientID = ac.ClientID
			}
			m.logger.Security("Redirecting unauthenticated request", "client_id", clientID, "path", r.URL.Path)
			Redirect(w, r, decision.Location())
			return
		}
		next.ServeHTTP(w, r)
	})
}
