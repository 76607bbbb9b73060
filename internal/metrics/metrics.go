package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"bennu-impact-sim/internal/impact"
	"bennu-impact-sim/internal/sim"
)

// Collector bundles Prometheus metrics for impact simulations. It implements
// sim.Observer.
type Collector struct {
	gatherer prometheus.Gatherer

	Simulations *prometheus.CounterVec
	Errors      *prometheus.CounterVec
	Energy      prometheus.Histogram
	MissKM      prometheus.Histogram
}

// NewCollector registers the metrics against reg, defaulting to the global
// registry when nil. Registering twice against the same registry reuses the
// existing collectors.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	sims, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "impact_simulations_total",
		Help: "Completed simulations, labeled by outcome (miss, ocean, inland, regional, continental, global).",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}
	errs, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "impact_simulation_errors_total",
		Help: "Rejected simulations, labeled by error kind.",
	}, []string{"kind"}))
	if err != nil {
		return nil, err
	}
	energy, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "impact_energy_megatons",
		Help:    "Kinetic energy of simulated bodies in megatons of TNT.",
		Buckets: prometheus.ExponentialBuckets(0.01, 10, 12),
	}))
	if err != nil {
		return nil, err
	}
	miss, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "impact_miss_distance_km",
		Help:    "Modeled miss distance after deflection in km.",
		Buckets: []float64{0, 100, 500, 1000, 2500, 6371, 10000, 50000},
	}))
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:    gatherer,
		Simulations: sims,
		Errors:      errs,
		Energy:      energy,
		MissKM:      miss,
	}, nil
}

// Gatherer returns the gatherer paired with the registerer.
func (c *Collector) Gatherer() prometheus.Gatherer { return c.gatherer }

// ObserveResult implements sim.Observer.
func (c *Collector) ObserveResult(r impact.Result) {
	c.Simulations.WithLabelValues(OutcomeLabel(r)).Inc()
	c.Energy.Observe(r.EnergyMegatons)
	c.MissKM.Observe(r.MissDistanceKM)
}

// ObserveError implements sim.Observer.
func (c *Collector) ObserveError(err error) {
	c.Errors.WithLabelValues(sim.ErrKind(err)).Inc()
}

// OutcomeLabel condenses a result into a single label value.
func OutcomeLabel(r impact.Result) string {
	switch {
	case !r.WillImpact:
		return "miss"
	case r.Severity != "":
		return string(r.Severity)
	case r.Location != "":
		return string(r.Location)
	}
	return "impact"
}

func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register counter: %w", err)
	}
	return c, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register histogram: %w", err)
	}
	return h, nil
}
