package sim

import (
	"time"

	"bennu-impact-sim/internal/impact"
)

// ResultRow is one evaluated scenario as written by the result writers.
type ResultRow struct {
	RunID            string        `json:"run_id"`
	Scenario         string        `json:"scenario"`
	Params           impact.Params `json:"params"`
	LeadTimeYears    float64       `json:"lead_time_years"`
	ThresholdModel   string        `json:"threshold_model"`
	ConsequenceModel string        `json:"consequence_model"`
	Result           impact.Result `json:"result"`
	Timestamp        time.Time     `json:"ts"`
}

// AngleDeg returns the approach angle or zero when unset.
func (r ResultRow) AngleDeg() float64 {
	if r.Params.ApproachAngleDeg == nil {
		return 0
	}
	return *r.Params.ApproachAngleDeg
}

// CraterDiameterKM returns whichever crater estimate the model produced.
func (r ResultRow) CraterDiameterKM() float64 {
	switch {
	case r.Result.Crater != nil:
		return r.Result.Crater.DiameterKM
	case r.Result.Consequences != nil:
		return r.Result.Consequences.CraterDiameterKM
	}
	return 0
}
