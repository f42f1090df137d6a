package http

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tecnoreparos/frontend/login"
	"tecnoreparos/frontend/orders"
	"tecnoreparos/frontend/settings"
	sessioncontext "tecnoreparos/frontend/shared/context"
	"tecnoreparos/frontend/stock"
	"tecnoreparos/infrastructure/audit"
	"tecnoreparos/infrastructure/cache"
	"tecnoreparos/infrastructure/idle"
	sessioncookie "tecnoreparos/infrastructure/session"
)

//go:embed assets/*
var assets embed.FS

var ShutdownTimeout = 2 * time.Second

// Server bundles dependencies and route wiring.
type Server struct {
	Addr   string
	ln     net.Listener
	server *http.Server
	router *chi.Mux

	Auth         *login.Authenticator
	SessionCache *cache.UserSessionCache
	Monitors     *idle.Registry
	IdleCfg      login.IdleConfig
	Themes       *settings.ThemeManager
	Orders       *orders.Store
	Stock        *stock.Store
	Audit        *audit.Service
}

// NewServer creates a new http server.
func NewServer(addr string, auth *login.Authenticator, sessionCache *cache.UserSessionCache, monitors *idle.Registry, idleCfg login.IdleConfig, themes *settings.ThemeManager, orderStore *orders.Store, stockStore *stock.Store, auditSvc *audit.Service) *Server {
	s := &Server{
		Addr:         addr,
		router:       chi.NewRouter(),
		Auth:         auth,
		SessionCache: sessionCache,
		Monitors:     monitors,
		IdleCfg:      idleCfg,
		Themes:       themes,
		Orders:       orderStore,
		Stock:        stockStore,
		Audit:        auditSvc,
		server: &http.Server{
			MaxHeaderBytes: 1 << 20,
		},
	}

	// Secure headers first.
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("X-XSS-Protection", "1; mode=block")
			next.ServeHTTP(w, r)
		})
	})

	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Compress(5))
	s.router.Use(s.CSRFMiddleware)

	// Root requests route by auth state but don't require it.
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessioncookie.CookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		session, ok := s.SessionCache.FindSessionBySessionToken(cookie.Value)
		if !ok || session.Expired() {
			http.SetCookie(w, sessioncookie.SessionCookie("", -1))
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/tasker/orders", http.StatusSeeOther)
	})

	s.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Serve assets from embedded FS.
	var assetsFS fs.FS = assets
	if sub, err := fs.Sub(assets, "assets"); err == nil {
		assetsFS = sub
	} else {
		slog.Error("assets subfs init failed; serving fallback fs", slog.Any("err", err))
	}
	s.router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(assetsFS))))

	s.RegisterLoginRoutes()

	s.router.Group(func(r chi.Router) {
		r.Route("/tasker", func(r chi.Router) {
			r.Use(s.AuthenticateMiddleware)
			s.RegisterFrontendRoutes(r)
		})
	})

	s.server.Handler = s.router
	return s
}

// AuthenticateMiddleware resolves the session, feeds the idle watchdog and
// injects the session into the request context.
func (s *Server) AuthenticateMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessioncookie.CookieName)
		if err != nil || cookie.Value == "" {
			s.rejectUnauthenticated(w, r)
			return
		}

		token := cookie.Value
		session, ok := s.SessionCache.FindSessionBySessionToken(token)
		if !ok {
			// Session gone: either idle-logged-out or a stale cookie.
			s.Monitors.Remove(token)
			http.SetCookie(w, sessioncookie.SessionCookie("", -1))
			s.rejectUnauthenticated(w, r)
			return
		}

		if session.Expired() {
			s.SessionCache.DeleteSessionBySessionToken(token)
			s.Monitors.Remove(token)
			http.SetCookie(w, sessioncookie.SessionCookie("", -1))
			s.rejectUnauthenticated(w, r)
			return
		}

		// Every authenticated request except the idle-status poll counts as
		// user activity. The poll only observes the watchdog; treating it as
		// activity would keep every open tab signed in forever.
		if m, ok := s.Monitors.Get(token); ok && !isIdlePoll(r) {
			m.Activity()
		}

		ctx := sessioncontext.NewContextWithSession(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isIdlePoll(r *http.Request) bool {
	return r.Method == http.MethodGet && r.URL.Path == "/tasker/api/session/idle"
}

// rejectUnauthenticated sends API callers a 401 and everyone else to the
// login screen.
func (s *Server) rejectUnauthenticated(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/tasker/api/") {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	var err error
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go s.server.Serve(s.ln)
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.ln == nil {
		return fmt.Errorf("HTTP server has not been started or is already stopped")
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %v", err)
	}
	s.ln = nil
	return nil
}
