// Simulator orchestrating calculator runs and result writers
package sim

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"bennu-impact-sim/internal/impact"
	"bennu-impact-sim/internal/logging"
	"bennu-impact-sim/internal/scenario"
)

// ResultWriter is an interface to support different output writers.
type ResultWriter interface {
	Write(ResultRow) error
}

// Optional: Writers can also support batch mode
type batchWriter interface {
	WriteBatch([]ResultRow) error
}

// Observer is notified of every evaluation, successful or not.
type Observer interface {
	ObserveResult(impact.Result)
	ObserveError(error)
}

// Stats aggregates outcomes since the simulator was created.
type Stats struct {
	Runs       int                     `json:"runs"`
	Impacts    int                     `json:"impacts"`
	Misses     int                     `json:"misses"`
	Errors     int                     `json:"errors"`
	ByLocation map[impact.Location]int `json:"by_location"`
	BySeverity map[impact.Severity]int `json:"by_severity"`
}

// Simulator evaluates scenarios with a calculator and forwards the rows to a
// writer.
type Simulator struct {
	calc     *impact.Calculator
	writer   ResultWriter
	observer Observer
	now      func() time.Time
	newID    func() string

	mu    sync.Mutex
	stats Stats
}

// NewSimulator creates a simulator. writer and observer may be nil.
func NewSimulator(calc *impact.Calculator, writer ResultWriter, observer Observer) *Simulator {
	return &Simulator{
		calc:     calc,
		writer:   writer,
		observer: observer,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.New().String() },
		stats: Stats{
			ByLocation: make(map[impact.Location]int),
			BySeverity: make(map[impact.Severity]int),
		},
	}
}

// Calculator returns the underlying calculator.
func (s *Simulator) Calculator() *impact.Calculator { return s.calc }

// Evaluate runs the calculator for one named scenario without writing the
// result.
func (s *Simulator) Evaluate(sc scenario.Scenario) (ResultRow, error) {
	return s.evaluate(sc.Name, sc.Params(), sc.LeadTime())
}

func (s *Simulator) evaluate(name string, p impact.Params, lead float64) (ResultRow, error) {
	res, err := s.calc.Simulate(p, lead)
	s.record(res, err)
	if err != nil {
		return ResultRow{}, fmt.Errorf("scenario %q: %w", name, err)
	}
	opts := s.calc.Options()
	return ResultRow{
		RunID:            s.newID(),
		Scenario:         name,
		Params:           p,
		LeadTimeYears:    lead,
		ThresholdModel:   string(opts.Threshold),
		ConsequenceModel: string(opts.Consequences),
		Result:           *res,
		Timestamp:        s.now(),
	}, nil
}

// RunScenario evaluates one scenario and writes the row.
func (s *Simulator) RunScenario(sc scenario.Scenario) (ResultRow, error) {
	row, err := s.Evaluate(sc)
	if err != nil {
		return ResultRow{}, err
	}
	if s.writer != nil {
		if err := s.writer.Write(row); err != nil {
			return ResultRow{}, fmt.Errorf("write result: %w", err)
		}
	}
	return row, nil
}

// Run evaluates scenarios in order and writes all rows in one batch. It stops
// at the first failure or when ctx is cancelled.
func (s *Simulator) Run(ctx context.Context, scenarios []scenario.Scenario) ([]ResultRow, error) {
	log := logging.FromContext(ctx)
	rows := make([]ResultRow, 0, len(scenarios))
	for _, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return rows, err
		}
		row, err := s.Evaluate(sc)
		if err != nil {
			return rows, err
		}
		log.Debug("evaluated scenario", "scenario", sc.Name, "impact", row.Result.WillImpact, "miss_km", row.Result.MissDistanceKM)
		rows = append(rows, row)
	}
	if err := s.writeRows(rows); err != nil {
		return rows, err
	}
	log.Info("run complete", "scenarios", len(rows))
	return rows, nil
}

func (s *Simulator) writeRows(rows []ResultRow) error {
	if s.writer == nil || len(rows) == 0 {
		return nil
	}
	if bw, ok := s.writer.(batchWriter); ok {
		return bw.WriteBatch(rows)
	}
	for _, r := range rows {
		if err := s.writer.Write(r); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulator) record(res *impact.Result, err error) {
	s.mu.Lock()
	s.stats.Runs++
	switch {
	case err != nil:
		s.stats.Errors++
	case res.WillImpact:
		s.stats.Impacts++
		if res.Location != "" {
			s.stats.ByLocation[res.Location]++
		}
		if res.Severity != "" {
			s.stats.BySeverity[res.Severity]++
		}
	default:
		s.stats.Misses++
	}
	s.mu.Unlock()

	if s.observer == nil {
		return
	}
	if err != nil {
		s.observer.ObserveError(err)
		return
	}
	s.observer.ObserveResult(*res)
}

// Stats returns a snapshot of the aggregate counters.
func (s *Simulator) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.stats
	out.ByLocation = make(map[impact.Location]int, len(s.stats.ByLocation))
	for k, v := range s.stats.ByLocation {
		out.ByLocation[k] = v
	}
	out.BySeverity = make(map[impact.Severity]int, len(s.stats.BySeverity))
	for k, v := range s.stats.BySeverity {
		out.BySeverity[k] = v
	}
	return out
}

// ErrKind classifies an evaluation error for reporting.
func ErrKind(err error) string {
	switch {
	case errors.Is(err, impact.ErrInvalidParameter):
		return "invalid_parameter"
	case errors.Is(err, impact.ErrArithmeticDegeneracy):
		return "arithmetic_degeneracy"
	default:
		return "other"
	}
}
