package http

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"savor/backend"
	"savor/frontend/favourites"
	loginflow "savor/frontend/login"
	"savor/frontend/pantry"
	"savor/frontend/search"
	sessioncontext "savor/frontend/shared/context"
	"savor/frontend/shared/sidebar"
	"savor/infrastructure/audit"
	"savor/infrastructure/cache"
	"savor/infrastructure/metrics"
	sessioncookie "savor/infrastructure/session"
	"savor/infrastructure/sqlite"
	"savor/models"
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

	DB            *sqlite.DB
	SessionCache  *cache.UserSessionCache
	UserCache     *cache.UserCache
	CriteriaCache *cache.CriteriaCache
	Audit         *audit.Service
	Backend       *backend.Client
	Sidebar       sidebar.Store

	SearchCtrl     *search.Controller
	PantryCtrl     *pantry.Controller
	FavouritesCtrl *favourites.Controller
}

// NewServer creates a new http server.
func NewServer(addr string, db *sqlite.DB, sessionCache *cache.UserSessionCache, userCache *cache.UserCache, criteriaCache *cache.CriteriaCache, auditSvc *audit.Service, backendClient *backend.Client) *Server {
	s := &Server{
		Addr:          addr,
		router:        chi.NewRouter(),
		DB:            db,
		SessionCache:  sessionCache,
		UserCache:     userCache,
		CriteriaCache: criteriaCache,
		Audit:         auditSvc,
		Backend:       backendClient,
		Sidebar:       sidebar.CookieStore{},

		SearchCtrl:     search.NewController(backendClient),
		PantryCtrl:     pantry.NewController(backendClient),
		FavouritesCtrl: favourites.NewController(backendClient),

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

	s.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Handle("/metrics", metrics.Handler())

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
		r.Use(s.AuthenticateMiddleware)
		s.RegisterFrontendRoutes(r)
	})

	s.server.Handler = s.router
	return s
}

// AuthenticateMiddleware resolves the session cookie and stores the
// session in the request context. Page requests bounce to the login
// screen; fetch requests get a bare 401 the page glue turns into a
// redirect itself.
func (s *Server) AuthenticateMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionCookie, err := r.Cookie(sessioncookie.CookieName)
		if err != nil || sessionCookie.Value == "" {
			rejectUnauthenticated(w, r)
			return
		}

		sessionToken := sessionCookie.Value
		session, ok := s.resolveSession(r.Context(), sessionToken)
		if !ok {
			slog.Warn("session not found", slog.String("method", r.Method), slog.String("path", r.URL.Path))
			rejectUnauthenticated(w, r)
			return
		}

		if session.Expired() {
			http.SetCookie(w, sessioncookie.SessionCookie("", -1))
			s.SessionCache.DeleteSessionBySessionToken(sessionToken)
			if err := loginflow.DeleteSessionByToken(r.Context(), s.DB, sessionToken); err != nil {
				slog.Error("cannot delete session from DB", slog.String("session_id", sessionToken), slog.Any("err", err))
			}
			rejectUnauthenticated(w, r)
			return
		}

		ctx := sessioncontext.NewContextWithSession(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func rejectUnauthenticated(w http.ResponseWriter, r *http.Request) {
	if isFetchRequest(r) {
		http.Error(w, "session expired", http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// isFetchRequest distinguishes page-glue fetches from navigations so the
// right unauthenticated response shape goes back.
func isFetchRequest(r *http.Request) bool {
	return r.Header.Get("X-CSRFToken") != "" || r.Header.Get("X-Requested-With") == "fetch"
}

func (s *Server) resolveSession(ctx context.Context, token string) (session models.Session, ok bool) {
	if cached, found := s.SessionCache.FindSessionBySessionToken(token); found {
		return cached, true
	}

	dbSession, err := loginflow.LoadSessionByToken(ctx, s.DB, token)
	if err != nil {
		if err != sql.ErrNoRows {
			slog.Error("load session from db failed", slog.String("session_id", token), slog.Any("err", err))
		}
		return session, false
	}

	s.SessionCache.AddSession(dbSession)
	s.UserCache.Add(dbSession.User.Username, dbSession.User)
	return dbSession, true
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
