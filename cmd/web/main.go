// cmd/web/main.go
//
// Gestularia – HTTP entry point.
//
// Request life-cycle
// ------------------
//
//  1. Load configuration (conf/global.yaml + .env + GEST_ env overlay).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Open the control-plane DB and log the site count.
//
//  4. Build the site-record cache (lazy-loads each site on first hit).
//
//  5. Build the platform router: every registered component mounts its
//     routes, plus the Prometheus /metrics endpoint.
//
//  6. Split traffic by Host header: subdomains of the root domain go to
//     the public site renderer, everything else to the platform router.
//
//  7. Wrap the whole stack in security headers, request enrichment, and
//     access logging; optionally enforce HTTPS.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gestularia/gestularia/internal/auth"
	"github.com/gestularia/gestularia/internal/component"
	"github.com/gestularia/gestularia/internal/config"
	"github.com/gestularia/gestularia/internal/database"
	"github.com/gestularia/gestularia/internal/form"
	"github.com/gestularia/gestularia/internal/logger"
	"github.com/gestularia/gestularia/internal/middleware"
	"github.com/gestularia/gestularia/internal/requestinfo"
	"github.com/gestularia/gestularia/internal/server"
	"github.com/gestularia/gestularia/internal/session"
	"github.com/gestularia/gestularia/internal/site"
	"github.com/gestularia/gestularia/internal/sitepage"
	"github.com/gestularia/gestularia/internal/tenant"
	"github.com/gestularia/gestularia/internal/view"

	// Components self-register via init().
	_ "github.com/gestularia/gestularia/components/auth"
	_ "github.com/gestularia/gestularia/components/dashboard"
	_ "github.com/gestularia/gestularia/components/editor"
)

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	//
	// ── 1.  Config + logger ─────────────────────────────────────────────
	//
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.Paths.Root, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	// CSRF tokens are signed with the same secret as session cookies.
	form.SetKey(cfg.Auth.SessionKey)

	//
	// ── 2.  Control-plane DB connect ────────────────────────────────────
	//
	zlog.Infow("connecting to control-plane DB")
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		zlog.Fatalw("connect DB", "err", err)
	}
	defer db.Close()

	// Log the site count as an early sanity check.
	var total int
	_ = db.Get(&total, `SELECT COUNT(*) FROM site`)
	zlog.Infow("control-plane DB online", "sites", total)

	sites := site.NewRepository(db, zlog.Desugar())
	users := auth.NewRepository(db, zlog.Desugar())
	sessions := session.NewManager(cfg.Auth.SessionKey)

	//
	// ── 3.  Site-record cache (lazy loader) ─────────────────────────────
	//
	idleTTL := tenant.IdleTTL
	if cfg.Cache.IdleTTLMin > 0 {
		idleTTL = time.Duration(cfg.Cache.IdleTTLMin) * time.Minute
	}
	maxEntries := tenant.MaxEntries
	if cfg.Cache.MaxEntries > 0 {
		maxEntries = cfg.Cache.MaxEntries
	}
	cache := tenant.NewCache(sites, zlog.Desugar(), idleTTL, maxEntries)
	defer cache.Close()

	views := view.NewEngine()

	//
	// ── 4.  Platform router: components + metrics ───────────────────────
	//
	deps := &component.Deps{
		Log:        zlog.Desugar(),
		Sites:      sites,
		Users:      users,
		Sessions:   sessions,
		Cache:      cache,
		Views:      views,
		RootDomain: cfg.HTTP.RootDomain,
	}

	platform := chi.NewRouter()
	platform.Use(auth.Attach(sessions, users))
	for _, c := range component.All() {
		zlog.Infow("component mounted", "name", c.Name())
		c.Mount(platform, deps)
	}
	platform.Handle("/metrics", promhttp.Handler())

	//
	// ── 5.  Host split + middleware stack ───────────────────────────────
	//
	public := sitepage.New(cache, sites, views, zlog.Desugar())

	var handler http.Handler = middleware.Hosts(cfg.HTTP.RootDomain, public, platform)
	handler = middleware.Security(handler)
	handler = middleware.AccessLog(zlog.Desugar())(handler)
	// Enrich sits outside AccessLog so the log line can see UA and IP.
	handler = requestinfo.Enrich(handler)
	if cfg.HTTP.ForceHTTPS {
		handler = middleware.ForceHTTPS(handler)
	}

	//
	// ── 6.  Serve until SIGINT/SIGTERM, then drain ──────────────────────
	//
	srv := server.New(cfg.HTTP.ListenAddr, handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zlog.Infow("listening", "addr", cfg.HTTP.ListenAddr, "root_domain", cfg.HTTP.RootDomain)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalw("http server", "err", err)
		}
	}()

	<-ctx.Done()
	zlog.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Errorw("shutdown", "err", err)
	}
}
