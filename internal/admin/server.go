package admin

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bennu-impact-sim/internal/config"
	"bennu-impact-sim/internal/impact"
	"bennu-impact-sim/internal/scenario"
	"bennu-impact-sim/internal/sim"
)

//go:embed templates/index.html
var content embed.FS

// Server exposes the calculator over HTTP.
type Server struct {
	Sim       *sim.Simulator
	scenarios scenario.Catalog
	defaults  config.Defaults
	gatherer  prometheus.Gatherer
	limiter   *IPRateLimiter
	tpl       *template.Template
	mux       *http.ServeMux
}

// NewServer wires the handlers. gatherer may be nil to serve the default
// Prometheus registry.
func NewServer(s *sim.Simulator, catalog scenario.Catalog, cfg *config.Config, gatherer prometheus.Gatherer) *Server {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	tpl := template.Must(template.New("index.html").Funcs(template.FuncMap{"num": formatOptional}).ParseFS(content, "templates/index.html"))
	srv := &Server{
		Sim:       s,
		scenarios: catalog,
		defaults:  cfg.Defaults,
		gatherer:  gatherer,
		limiter:   NewIPRateLimiter(cfg.Server.RateLimitPerMin, cfg.Server.Burst),
		tpl:       tpl,
		mux:       http.NewServeMux(),
	}
	srv.routes()
	return srv
}

func (s *Server) routes() {
	s.mux.Handle("/", s.limiter.Middleware(http.HandlerFunc(s.handleIndex)))
	s.mux.Handle("/simulate", s.limiter.Middleware(http.HandlerFunc(s.handleSimulate)))
	s.mux.HandleFunc("/scenarios", s.handleScenarios)
	s.mux.HandleFunc("/stats", s.handleStats)
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	s.mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Start serves on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			log.Printf("[Admin] shutdown: %v", err)
		}
	}()
	return hs.ListenAndServe()
}

// formatOptional renders an optional form value, empty when unset.
func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

// simulateRequest carries optional overrides on top of a scenario or the
// configured defaults.
type simulateRequest struct {
	Scenario         string   `json:"scenario"`
	DiameterKM       *float64 `json:"diameter_km"`
	VelocityKMS      *float64 `json:"velocity_km_s"`
	DeflectionForce  *float64 `json:"deflection_force_cm_s"`
	ApproachAngleDeg *float64 `json:"approach_angle_deg"`
	LeadTimeYears    *float64 `json:"lead_time_years"`
}

var errUnknownScenario = errors.New("unknown scenario")

func (s *Server) resolve(req simulateRequest) (scenario.Scenario, error) {
	sc := scenario.Scenario{
		Name:             "custom",
		DiameterKM:       s.defaults.DiameterKM,
		VelocityKMS:      s.defaults.VelocityKMS,
		DeflectionForce:  s.defaults.DeflectionForce,
		ApproachAngleDeg: impact.Angle(s.defaults.ApproachAngleDeg),
		LeadTimeYears:    scenario.Years(s.defaults.LeadTimeYears),
	}
	if req.Scenario != "" {
		preset, ok := s.scenarios.Lookup(req.Scenario)
		if !ok {
			return sc, fmt.Errorf("%w: %s", errUnknownScenario, req.Scenario)
		}
		sc = preset
	}
	override := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	override(&sc.DiameterKM, req.DiameterKM)
	override(&sc.VelocityKMS, req.VelocityKMS)
	override(&sc.DeflectionForce, req.DeflectionForce)
	if req.ApproachAngleDeg != nil {
		sc.ApproachAngleDeg = impact.Angle(*req.ApproachAngleDeg)
	}
	if req.LeadTimeYears != nil {
		sc.LeadTimeYears = scenario.Years(*req.LeadTimeYears)
	}
	return sc, nil
}

// requestFromQuery reads simulateRequest fields from URL query parameters.
func requestFromQuery(q url.Values) (simulateRequest, error) {
	req := simulateRequest{Scenario: q.Get("scenario")}
	fields := []struct {
		key string
		dst **float64
	}{
		{"diameter_km", &req.DiameterKM},
		{"velocity_km_s", &req.VelocityKMS},
		{"deflection_force_cm_s", &req.DeflectionForce},
		{"approach_angle_deg", &req.ApproachAngleDeg},
		{"lead_time_years", &req.LeadTimeYears},
	}
	for _, f := range fields {
		raw := q.Get(f.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, &impact.ParamError{Field: f.key, Value: math.NaN(), Reason: fmt.Sprintf("not a number: %q", raw)}
		}
		*f.dst = &v
	}
	return req, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errUnknownScenario):
		return http.StatusNotFound
	case errors.Is(err, impact.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, impact.ErrArithmeticDegeneracy):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Admin] encode: %v", err)
	}
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	var err error
	switch r.Method {
	case http.MethodGet:
		req, err = requestFromQuery(r.URL.Query())
	case http.MethodPost:
		if decErr := json.NewDecoder(r.Body).Decode(&req); decErr != nil {
			err = &impact.ParamError{Field: "body", Reason: decErr.Error()}
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	sc, err := s.resolve(req)
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	row, err := s.Sim.RunScenario(sc)
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.scenarios.Sorted())
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Sim.Stats())
}

type indexData struct {
	Form      scenario.Scenario
	Scenarios []scenario.Scenario
	Row       *sim.ResultRow
	Error     string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	req, err := requestFromQuery(q)
	data := indexData{Scenarios: s.scenarios.Sorted()}
	if err == nil {
		data.Form, err = s.resolve(req)
	}
	status := http.StatusOK
	switch {
	case err != nil:
		data.Error = err.Error()
		status = statusFor(err)
	case len(q) > 0:
		row, runErr := s.Sim.RunScenario(data.Form)
		if runErr != nil {
			data.Error = runErr.Error()
			status = statusFor(runErr)
		} else {
			data.Row = &row
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tpl.Execute(w, data); err != nil {
		log.Printf("[Admin] render index: %v", err)
	}
}
