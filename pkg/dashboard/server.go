package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wallet-health/pkg/analysis"
	"github.com/wallet-health/pkg/config"
	"github.com/wallet-health/pkg/db"
)

// LookupStore is the slice of db.Store the dashboard needs. A nil store
// disables the lookup history.
type LookupStore interface {
	RecordLookup(address string, chain config.Chain, isDemo bool) (int64, error)
	RecentLookups(limit int) ([]db.Lookup, error)
}

type Dashboard struct {
	store LookupStore
	cfg   *config.Config
	port  int
	tmpl  *template.Template
}

func New(store LookupStore, cfg *config.Config, port int) *Dashboard {
	return &Dashboard{store: store, cfg: cfg, port: port, tmpl: parseTemplates()}
}

func (d *Dashboard) Handler() http.Handler {
	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("GET /{$}", d.handleHome)
	mux.HandleFunc("POST /analyze", d.handleAnalyze)
	mux.HandleFunc("GET /analysis/demo", d.handleAnalysis)
	mux.HandleFunc("GET /analysis/{address}", d.handleAnalysis)
	mux.HandleFunc("GET /analysis/{$}", d.handleAnalysis)
	mux.HandleFunc("POST /change-wallet", d.handleChangeWallet)

	// API endpoints
	mux.HandleFunc("GET /api/analysis/demo", cors(d.handleAnalysisJSON))
	mux.HandleFunc("GET /api/analysis/{address}", cors(d.handleAnalysisJSON))
	mux.HandleFunc("GET /api/lookups", cors(d.handleLookups))
	mux.HandleFunc("OPTIONS /api/", cors(func(http.ResponseWriter, *http.Request) {}))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return logRequests(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (d *Dashboard) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", d.port),
		Handler:           d.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("🌐 dashboard started")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("dashboard: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("dashboard shutdown: %w", err)
	}
	return ctx.Err()
}

func cors(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// routeFrom maps a request onto the page route. API requests resolve as if
// they hit the matching page path.
func routeFrom(r *http.Request) analysis.Route {
	rt := analysis.Route{Path: strings.TrimPrefix(r.URL.Path, "/api")}
	if a := r.PathValue("address"); a != "" {
		rt.Address = &a
	}
	return rt
}

func (d *Dashboard) resolve(r *http.Request) analysis.View {
	v := analysis.Resolve(routeFrom(r))
	d.record(v)
	return v
}

// record stores the lookup. Views without an address are not recorded;
// failures are logged and otherwise ignored.
func (d *Dashboard) record(v analysis.View) {
	if d.store == nil || v.Wallet.Address == "" {
		return
	}
	if _, err := d.store.RecordLookup(v.Wallet.Address, config.Chain(v.Chain), v.IsDemo); err != nil {
		log.Warn().Err(err).Str("addr", analysis.Abbrev(v.Wallet.Address)).Msg("lookup not recorded")
	}
}

func (d *Dashboard) recent(limit int) []db.Lookup {
	if d.store == nil {
		return nil
	}
	lookups, err := d.store.RecentLookups(limit)
	if err != nil {
		log.Warn().Err(err).Msg("recent lookups")
		return nil
	}
	return lookups
}

func (d *Dashboard) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := d.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render failed")
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

func (d *Dashboard) handleHome(w http.ResponseWriter, r *http.Request) {
	d.render(w, "home", homePage{
		DemoPath: analysis.DemoPath,
		Recent:   d.recent(d.cfg.RecentLookupsLimit),
	})
}

func (d *Dashboard) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	address := strings.TrimSpace(r.FormValue("address"))
	if address == "" {
		http.Redirect(w, r, analysis.RootPath, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/analysis/"+url.PathEscape(address), http.StatusSeeOther)
}

func (d *Dashboard) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	v := d.resolve(r)
	log.Debug().Str("addr", analysis.Abbrev(v.Wallet.Address)).Bool("demo", v.IsDemo).Msg("📊 analysis rendered")
	d.render(w, "analysis", analysisPage{View: v, Path: r.URL.Path})
}

func (d *Dashboard) handleAnalysisJSON(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, d.resolve(r))
}

func (d *Dashboard) handleChangeWallet(w http.ResponseWriter, r *http.Request) {
	from := r.FormValue("from")
	rt := analysis.Route{Path: from}
	if a, ok := strings.CutPrefix(from, "/analysis/"); ok && a != "" {
		rt.Address = &a
	}
	analysis.Resolve(rt).ChangeWallet(redirectNavigator{w: w, r: r})
}

func (d *Dashboard) handleLookups(w http.ResponseWriter, r *http.Request) {
	limit := d.cfg.RecentLookupsLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}
	lookups := d.recent(limit)
	if lookups == nil {
		lookups = []db.Lookup{}
	}
	writeJSON(w, lookups)
}

// redirectNavigator turns a navigation request into a 303 redirect.
type redirectNavigator struct {
	w http.ResponseWriter
	r *http.Request
}

func (n redirectNavigator) Navigate(path string) {
	http.Redirect(n.w, n.r, path, http.StatusSeeOther)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("http")
	})
}
